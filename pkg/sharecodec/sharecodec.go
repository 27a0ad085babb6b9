// Package sharecodec implements the SLIP-39 share wire format: the
// bit-packed layout of a member share's metadata and value, its RS1024
// checksum, and the word-index encoding that a wordlist.List turns into a
// mnemonic sentence. It depends on no Shamir or Feistel logic, it only
// knows how to turn a fully-populated Share into word indices and back.
package sharecodec

import (
	"errors"
	"fmt"

	"github.com/xecrets/slip39/internal/bitpacker"
	"github.com/xecrets/slip39/pkg/wordlist"
)

const (
	radixBits = 10

	idBits                = 15
	extendableBits        = 1
	iterationExponentBits = 4
	groupIndexBits        = 4
	groupThresholdBits    = 4
	groupCountBits        = 4
	memberIndexBits       = 4
	memberThresholdBits   = 4

	idExpWords       = 2 // (id + extendable + e) packed into 2 words
	shareParamsWords = 2 // (group/member indices and thresholds) into 2 words
	checksumWords    = 3
	prefixWords      = idExpWords + shareParamsWords

	// MetadataWords is the number of words carrying everything but the
	// value: the four prefix words plus the three checksum words.
	MetadataWords = prefixWords + checksumWords

	// MinMnemonicWords is the minimum valid mnemonic length: metadata
	// plus the words needed for the smallest allowed value (128 bits).
	MinMnemonicWords = MetadataWords + 13

	customizationOriginal   = "shamir"
	customizationExtendable = "shamir_extendable"
)

// Share is the fully-dressed SLIP-39 member share: one Shamir Part plus
// the metadata needed to serialize it as a mnemonic.
type Share struct {
	Identifier        uint16
	Extendable        bool
	IterationExponent uint8
	GroupIndex        uint8
	GroupThreshold    uint8
	GroupCount        uint8
	MemberIndex       uint8
	MemberThreshold   uint8
	Value             []byte
}

func (s Share) customizationString() string {
	if s.Extendable {
		return customizationExtendable
	}
	return customizationOriginal
}

var (
	// ErrTooShort is returned when a mnemonic's word count is below
	// MinMnemonicWords.
	ErrTooShort = errors.New("sharecodec: mnemonic too short")

	// ErrBadChecksum is returned when the RS1024 checksum residue is not 1.
	ErrBadChecksum = errors.New("sharecodec: invalid checksum")

	// ErrInvalidPadding is returned when the recovered padding length
	// exceeds 8 bits, or the padding bits are not all zero.
	ErrInvalidPadding = errors.New("sharecodec: invalid padding")

	// ErrIndexOutOfRange is returned when a word index does not fit in
	// 10 bits.
	ErrIndexOutOfRange = errors.New("sharecodec: word index out of range")
)

// Encode renders share as a sequence of 10-bit word indices: the
// metadata prefix, the zero-padded value, and the RS1024 checksum.
func Encode(s Share) ([]uint16, error) {
	w := bitpacker.NewWriter()

	if err := writePrefix(w, s); err != nil {
		return nil, err
	}

	valueBits := 8 * len(s.Value)
	valueWords := bitsToWords(valueBits)
	padding := valueWords*radixBits - valueBits

	if padding > 0 {
		if err := w.WriteBits(0, padding); err != nil {
			return nil, err
		}
	}
	for _, b := range s.Value {
		if err := w.WriteBits(uint64(b), 8); err != nil {
			return nil, err
		}
	}

	bodyWords := prefixWords + valueWords
	indices, err := wordsFromBits(w.Bytes(), bodyWords)
	if err != nil {
		return nil, err
	}

	checksum := rs1024CreateChecksum(s.customizationString(), toUint32(indices))
	for _, c := range checksum {
		indices = append(indices, uint16(c))
	}
	return indices, nil
}

func writePrefix(w *bitpacker.Writer, s Share) error {
	fields := []struct {
		value uint64
		bits  int
	}{
		{uint64(s.Identifier), idBits},
		{boolToUint64(s.Extendable), extendableBits},
		{uint64(s.IterationExponent), iterationExponentBits},
		{uint64(s.GroupIndex), groupIndexBits},
		{uint64(s.GroupThreshold - 1), groupThresholdBits},
		{uint64(s.GroupCount - 1), groupCountBits},
		{uint64(s.MemberIndex), memberIndexBits},
		{uint64(s.MemberThreshold - 1), memberThresholdBits},
	}
	for _, f := range fields {
		if err := w.WriteBits(f.value, f.bits); err != nil {
			return fmt.Errorf("sharecodec: encoding prefix field: %w", err)
		}
	}
	return nil
}

// Decode parses a sequence of 10-bit word indices back into a Share,
// verifying the RS1024 checksum and padding along the way, in SLIP-39's
// prescribed order: prefix, checksum, remaining fields, padding, value.
func Decode(indices []uint16) (Share, error) {
	if len(indices) < MinMnemonicWords {
		return Share{}, ErrTooShort
	}

	idExp := uint32(indices[0])<<radixBits | uint32(indices[1])
	id := uint16(idExp >> (extendableBits + iterationExponentBits))
	extendable := (idExp>>iterationExponentBits)&1 == 1
	e := uint8(idExp & (1<<iterationExponentBits - 1))

	customization := customizationOriginal
	if extendable {
		customization = customizationExtendable
	}
	if !rs1024VerifyChecksum(customization, toUint32(indices)) {
		return Share{}, ErrBadChecksum
	}

	params := uint32(indices[2])<<radixBits | uint32(indices[3])
	groupIndex := uint8((params >> 16) & 0xF)
	groupThreshold := uint8((params>>12)&0xF) + 1
	groupCount := uint8((params>>8)&0xF) + 1
	memberIndex := uint8((params >> 4) & 0xF)
	memberThreshold := uint8(params&0xF) + 1

	valueWords := len(indices) - MetadataWords
	padding := (radixBits * valueWords) % 16
	if padding > 8 {
		return Share{}, ErrInvalidPadding
	}

	value, err := extractValue(indices[prefixWords:prefixWords+valueWords], padding)
	if err != nil {
		return Share{}, err
	}

	return Share{
		Identifier:        id,
		Extendable:        extendable,
		IterationExponent: e,
		GroupIndex:        groupIndex,
		GroupThreshold:    groupThreshold,
		GroupCount:        groupCount,
		MemberIndex:       memberIndex,
		MemberThreshold:   memberThreshold,
		Value:             value,
	}, nil
}

// extractValue reads padding zero bits followed by the value bytes out of
// the 10-bit words in valueIndices.
func extractValue(valueIndices []uint16, padding int) ([]byte, error) {
	w := bitpacker.NewWriter()
	for _, idx := range valueIndices {
		if err := w.WriteBits(uint64(idx), radixBits); err != nil {
			return nil, err
		}
	}
	r := bitpacker.NewReader(w.Bytes())

	if padding > 0 {
		padBits, err := r.ReadBits(padding)
		if err != nil {
			return nil, err
		}
		if padBits != 0 {
			return nil, ErrInvalidPadding
		}
	}

	valueBits := radixBits*len(valueIndices) - padding
	if valueBits%8 != 0 {
		return nil, ErrInvalidPadding
	}
	value := make([]byte, valueBits/8)
	for i := range value {
		b, err := r.ReadBits(8)
		if err != nil {
			return nil, err
		}
		value[i] = byte(b)
	}
	return value, nil
}

// ToMnemonic renders s as a space-joined, lowercase mnemonic sentence
// using l to translate word indices.
func (s Share) ToMnemonic(l *wordlist.List) (string, error) {
	indices, err := Encode(s)
	if err != nil {
		return "", err
	}
	return l.IndicesToWords(indices)
}

// FromMnemonic parses sentence into a validated Share using l to resolve
// words to indices.
func FromMnemonic(sentence string, l *wordlist.List) (Share, error) {
	indices, err := l.WordsToIndices(sentence)
	if err != nil {
		return Share{}, err
	}
	return Decode(indices)
}

func bitsToWords(bits int) int {
	return (bits + radixBits - 1) / radixBits
}

func boolToUint64(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

func toUint32(indices []uint16) []uint32 {
	out := make([]uint32, len(indices))
	for i, v := range indices {
		out[i] = uint32(v)
	}
	return out
}

// wordsFromBits slices the first wordCount*radixBits bits of buf into
// wordCount 10-bit word indices.
func wordsFromBits(buf []byte, wordCount int) ([]uint16, error) {
	r := bitpacker.NewReader(buf)
	out := make([]uint16, wordCount)
	for i := 0; i < wordCount; i++ {
		v, err := r.ReadBits(radixBits)
		if err != nil {
			return nil, err
		}
		if v >= 1024 {
			return nil, ErrIndexOutOfRange
		}
		out[i] = uint16(v)
	}
	return out, nil
}
