// Package feistel implements the 4-round Feistel network SLIP-39 uses to
// encrypt the master secret before it is split with Shamir's Secret
// Sharing, and to decrypt it after recovery. The round function is
// PBKDF2-HMAC-SHA256 (golang.org/x/crypto/pbkdf2), keyed by the round
// index, the passphrase, and the identifier-bound salt.
package feistel

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// BaseIterationCount is the minimum PBKDF2 iteration count, scaled by
	// << iterationExponent and divided across RoundCount rounds.
	BaseIterationCount = 10000

	// RoundCount is the number of Feistel rounds.
	RoundCount = 4

	customizationString = "shamir"
)

// ErrOddLength is returned when the value to encrypt/decrypt has odd
// length and cannot be split into equal left/right halves.
var ErrOddLength = errors.New("feistel: value length must be even")

// ErrNonASCIIPassphrase is returned when the passphrase contains a
// character outside the printable ASCII range.
var ErrNonASCIIPassphrase = errors.New("feistel: passphrase must be printable ASCII")

// ValidatePassphrase rejects passphrases containing any character outside
// printable ASCII (0x20..0x7E). The empty passphrase is valid.
func ValidatePassphrase(passphrase []byte) error {
	for _, b := range passphrase {
		if b < 0x20 || b > 0x7E {
			return ErrNonASCIIPassphrase
		}
	}
	return nil
}

// Iterations returns the PBKDF2 iteration count each round uses for the
// given iteration exponent, 2500 << e.
func Iterations(iterationExponent uint8) int {
	return (BaseIterationCount / RoundCount) << iterationExponent
}

// salt returns the PBKDF2 salt prefix for a given identifier. When
// extendable is true the prefix is empty, decoupling the derived secret
// from the identifier so share sets can be extended later without
// invalidating already-derived seeds.
func salt(identifier uint16, extendable bool) []byte {
	if extendable {
		return nil
	}
	idBytes := make([]byte, 2)
	binary.BigEndian.PutUint16(idBytes, identifier&0x7FFF)
	return append([]byte(customizationString), idBytes...)
}

func roundFunction(round int, passphrase []byte, iterationExponent uint8, saltPrefix, r []byte) []byte {
	password := append([]byte{byte(round)}, passphrase...)
	s := append(append([]byte{}, saltPrefix...), r...)
	return pbkdf2.Key(password, s, Iterations(iterationExponent), len(r), sha256.New)
}

func xorBytes(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}

func feistel(value, passphrase []byte, iterationExponent uint8, identifier uint16, extendable bool, rounds [4]int) ([]byte, error) {
	if len(value)%2 != 0 {
		return nil, ErrOddLength
	}
	if err := ValidatePassphrase(passphrase); err != nil {
		return nil, err
	}

	half := len(value) / 2
	l := append([]byte{}, value[:half]...)
	r := append([]byte{}, value[half:]...)
	saltPrefix := salt(identifier, extendable)

	for _, round := range rounds {
		f := roundFunction(round, passphrase, iterationExponent, saltPrefix, r)
		l, r = r, xorBytes(l, f)
	}

	return append(r, l...), nil
}

// Encrypt runs the Feistel network in round order [0,1,2,3], turning the
// master secret into its encrypted form prior to splitting.
func Encrypt(masterSecret, passphrase []byte, iterationExponent uint8, identifier uint16, extendable bool) ([]byte, error) {
	return feistel(masterSecret, passphrase, iterationExponent, identifier, extendable, [4]int{0, 1, 2, 3})
}

// Decrypt runs the Feistel network in round order [3,2,1,0], recovering
// the master secret from its encrypted form.
func Decrypt(encryptedMasterSecret, passphrase []byte, iterationExponent uint8, identifier uint16, extendable bool) ([]byte, error) {
	return feistel(encryptedMasterSecret, passphrase, iterationExponent, identifier, extendable, [4]int{3, 2, 1, 0})
}
