package bitpacker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteBits(0b10110, 5))
	require.NoError(t, w.WriteBits(0x3FF, 10))
	require.NoError(t, w.WriteBits(1, 1))

	r := NewReader(w.Bytes())
	v, err := r.ReadBits(5)
	require.NoError(t, err)
	assert.Equal(t, uint64(0b10110), v)

	v, err = r.ReadBits(10)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x3FF), v)

	v, err = r.ReadBits(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v)
}

func TestReadBitsShortBuffer(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteBits(1, 1))
	r := NewReader(w.Bytes())

	_, err := r.ReadBits(1)
	require.NoError(t, err)

	_, err = r.ReadBits(1)
	assert.ErrorIs(t, err, ErrShortBuffer)
}

func TestWriteBitsValueTooLarge(t *testing.T) {
	w := NewWriter()
	err := w.WriteBits(16, 4) // 16 needs 5 bits
	assert.ErrorIs(t, err, ErrInvalidBitWidth)
}

func TestWriteBitsInvalidWidth(t *testing.T) {
	w := NewWriter()
	assert.ErrorIs(t, w.WriteBits(0, 0), ErrInvalidBitWidth)
	assert.ErrorIs(t, w.WriteBits(0, 64), ErrInvalidBitWidth)
}

func TestBytesZeroPadsFinalByte(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteBits(0b101, 3))
	require.Len(t, w.Bytes(), 1)
	assert.Equal(t, byte(0b10100000), w.Bytes()[0])
}

func TestAvailable(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteBits(0, 12))
	r := NewReader(w.Bytes())
	assert.Equal(t, 16, r.Available())
	_, err := r.ReadBits(10)
	require.NoError(t, err)
	assert.Equal(t, 6, r.Available())
}

// TestManyFieldsRoundTrip exercises the bit widths actually used by the
// SLIP-39 share layout (15, 1, 4x6, arbitrary value bits) in one buffer.
func TestManyFieldsRoundTrip(t *testing.T) {
	w := NewWriter()
	fields := []struct {
		value uint64
		bits  int
	}{
		{12345, 15},
		{1, 1},
		{9, 4},
		{0, 4},
		{0, 4},
		{3, 4},
		{2, 4},
		{1, 4},
		{0xAB, 8},
		{0xCD, 8},
	}
	for _, f := range fields {
		require.NoError(t, w.WriteBits(f.value, f.bits))
	}

	r := NewReader(w.Bytes())
	for _, f := range fields {
		v, err := r.ReadBits(f.bits)
		require.NoError(t, err)
		assert.Equal(t, f.value, v)
	}
}
