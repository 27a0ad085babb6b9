package sharecodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xecrets/slip39/pkg/wordlist"
)

func sampleShare(value []byte) Share {
	return Share{
		Identifier:        0x1234 & 0x7FFF,
		Extendable:        false,
		IterationExponent: 2,
		GroupIndex:        3,
		GroupThreshold:    2,
		GroupCount:        5,
		MemberIndex:       4,
		MemberThreshold:   3,
		Value:             value,
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, n := range []int{16, 20, 32} {
		value := make([]byte, n)
		for i := range value {
			value[i] = byte(i*7 + 1)
		}
		s := sampleShare(value)

		indices, err := Encode(s)
		require.NoError(t, err)

		got, err := Decode(indices)
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestEncodeDecodeRoundTripExtendable(t *testing.T) {
	s := sampleShare(make([]byte, 16))
	s.Extendable = true

	indices, err := Encode(s)
	require.NoError(t, err)

	got, err := Decode(indices)
	require.NoError(t, err)
	assert.True(t, got.Extendable)
	assert.Equal(t, s, got)
}

func TestDecodeRejectsTamperedChecksum(t *testing.T) {
	s := sampleShare(make([]byte, 16))
	indices, err := Encode(s)
	require.NoError(t, err)

	indices[len(indices)-1] ^= 0x1

	_, err = Decode(indices)
	assert.ErrorIs(t, err, ErrBadChecksum)
}

func TestDecodeRejectsTooShort(t *testing.T) {
	_, err := Decode(make([]uint16, MinMnemonicWords-1))
	assert.ErrorIs(t, err, ErrTooShort)
}

func TestDecodeUsesCorrectCustomizationForExtendable(t *testing.T) {
	extendable := sampleShare(make([]byte, 16))
	extendable.Extendable = true
	indices, err := Encode(extendable)
	require.NoError(t, err)

	// Verifying with the non-extendable customization string must fail:
	// the two flavors of share must not cross-validate.
	assert.False(t, rs1024VerifyChecksum(customizationOriginal, toUint32(indices)))
	assert.True(t, rs1024VerifyChecksum(customizationExtendable, toUint32(indices)))
}

func TestToMnemonicFromMnemonicRoundTrip(t *testing.T) {
	l := wordlist.English()
	s := sampleShare([]byte("0123456789ABCDEF"))

	sentence, err := s.ToMnemonic(l)
	require.NoError(t, err)
	assert.NotEmpty(t, sentence)

	got, err := FromMnemonic(sentence, l)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestFromMnemonicPropagatesUnknownWord(t *testing.T) {
	l := wordlist.English()
	_, err := FromMnemonic("notarealword "+l.Word(0), l)
	assert.ErrorIs(t, err, wordlist.ErrUnknownWord)
}

func TestRS1024KnownSelfConsistency(t *testing.T) {
	values := []uint32{1, 2, 3, 4, 5}
	checksum := rs1024CreateChecksum("shamir", values)
	full := append(append([]uint32{}, values...), checksum[0], checksum[1], checksum[2])
	assert.True(t, rs1024VerifyChecksum("shamir", full))

	full[0] ^= 1
	assert.False(t, rs1024VerifyChecksum("shamir", full))
}
