// Package shamir implements Shamir's Secret Sharing over GF(256) with the
// digest-share construction SLIP-39 uses to detect an insufficient or
// inconsistent set of shares without leaking information about the
// secret. The reserved x-coordinates (254 for the digest, 255 for the
// secret itself) are what SLIP-39's two-level hierarchy interpolates at.
package shamir

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"io"

	"github.com/xecrets/slip39/internal/gf256"
)

const (
	// SecretIndex is the reserved x-coordinate at which the shared secret
	// itself sits.
	SecretIndex = 255

	// DigestIndex is the reserved x-coordinate at which the digest share
	// (checksum + random pad) sits.
	DigestIndex = 254

	// DigestLength is the length, in bytes, of the HMAC-SHA256 digest
	// prefix stored in the digest share.
	DigestLength = 4
)

var (
	// ErrInvalidThreshold is returned when threshold < 1 or threshold > count.
	ErrInvalidThreshold = errors.New("shamir: invalid threshold")

	// ErrEmptySecret is returned when Split is given a zero-length secret.
	ErrEmptySecret = errors.New("shamir: secret must not be empty")

	// ErrSecretTooShort is returned when Split is asked to build a digest
	// share for a secret shorter than DigestLength.
	ErrSecretTooShort = errors.New("shamir: secret shorter than digest length")

	// ErrTooFewParts is returned when Recover/Interpolate is given no
	// parts at all.
	ErrTooFewParts = errors.New("shamir: not enough parts")

	// ErrDuplicateX is returned when two parts share the same x-coordinate.
	ErrDuplicateX = errors.New("shamir: duplicate x-coordinate among parts")

	// ErrMismatchedLength is returned when parts carry values of differing
	// length.
	ErrMismatchedLength = errors.New("shamir: part values have mismatched length")

	// ErrDigestMismatch is returned by Recover when the reconstructed
	// digest share does not match the recomputed HMAC prefix.
	ErrDigestMismatch = errors.New("shamir: digest mismatch")
)

// Part is one point (x, p(x)) of a Shamir polynomial. It is the raw
// interpolation unit; SLIP-39's wire-level Share in package slip39 wraps a
// Part with the metadata needed to serialize it as a mnemonic.
type Part struct {
	X     byte
	Value []byte
}

// Split divides secret into count Parts such that any threshold of them
// reconstruct it via Recover, while fewer reveal nothing.
//
// When threshold is 1, Split returns count identical copies of secret,
// there is nothing to interpolate and no digest share is needed. Otherwise
// it samples threshold-2 random parts, builds a digest share at
// DigestIndex and the secret itself at SecretIndex, and evaluates the
// degree-(threshold-1) polynomial those threshold reference points define at
// each of the count output x-coordinates.
func Split(rng io.Reader, threshold, count int, secret []byte) ([]Part, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	if threshold < 1 || threshold > count {
		return nil, ErrInvalidThreshold
	}

	if threshold == 1 {
		parts := make([]Part, count)
		for i := 0; i < count; i++ {
			parts[i] = Part{X: byte(i), Value: append([]byte{}, secret...)}
		}
		return parts, nil
	}

	if len(secret) < DigestLength {
		return nil, ErrSecretTooShort
	}

	digestShare, err := makeDigestShare(rng, secret)
	if err != nil {
		return nil, err
	}

	reference := make([]Part, 0, threshold)
	for i := 0; i < threshold-2; i++ {
		buf := make([]byte, len(secret))
		if _, err := io.ReadFull(rng, buf); err != nil {
			return nil, err
		}
		reference = append(reference, Part{X: byte(i), Value: buf})
	}
	reference = append(reference, Part{X: DigestIndex, Value: digestShare})
	reference = append(reference, Part{X: SecretIndex, Value: secret})

	parts := make([]Part, count)
	for i := 0; i < count; i++ {
		x := byte(i)
		value, err := Interpolate(reference, x)
		if err != nil {
			return nil, err
		}
		parts[i] = Part{X: x, Value: value}
	}
	return parts, nil
}

// Interpolate evaluates, at x, the unique polynomial of degree len(parts)-1
// passing through every point in parts. Used both to produce new shares
// during Split and to recover the secret/digest shares during Recover.
func Interpolate(parts []Part, x byte) ([]byte, error) {
	if len(parts) == 0 {
		return nil, ErrTooFewParts
	}
	length := len(parts[0].Value)
	for _, p := range parts {
		if len(p.Value) != length {
			return nil, ErrMismatchedLength
		}
	}
	if err := checkDistinctX(parts); err != nil {
		return nil, err
	}

	for _, p := range parts {
		if p.X == x {
			return append([]byte{}, p.Value...), nil
		}
	}

	result := make([]byte, length)
	for i := range parts {
		xi := parts[i].X
		var logBasis int
		for j := range parts {
			if i == j {
				continue
			}
			xj := parts[j].X
			// log(x - xj) - log(xi - xj), accumulated mod 255; the XOR
			// difference is never zero because x-coordinates are distinct.
			logBasis += int(gf256.Log(gf256.Sub(x, xj))) - int(gf256.Log(gf256.Sub(xi, xj)))
		}
		basis := gf256.Exp(mod255(logBasis))
		for b := 0; b < length; b++ {
			if parts[i].Value[b] == 0 {
				continue
			}
			result[b] = gf256.Add(result[b], gf256.Mul(parts[i].Value[b], basis))
		}
	}
	return result, nil
}

// Recover reconstructs the secret from exactly threshold parts (the
// caller must already have rejected too many or too few; Recover itself
// only knows len(parts)). When len(parts) == 1, the sole part's value is
// the secret directly. Otherwise Recover interpolates the secret and
// digest shares and verifies the digest in constant time, per the digest
// construction documented on Split.
func Recover(parts []Part) ([]byte, error) {
	if len(parts) == 0 {
		return nil, ErrTooFewParts
	}
	if len(parts) == 1 {
		return append([]byte{}, parts[0].Value...), nil
	}

	secret, err := Interpolate(parts, SecretIndex)
	if err != nil {
		return nil, err
	}
	digestShare, err := Interpolate(parts, DigestIndex)
	if err != nil {
		return nil, err
	}
	if len(digestShare) < DigestLength {
		return nil, ErrMismatchedLength
	}

	wantDigest := digestShare[:DigestLength]
	pad := digestShare[DigestLength:]
	gotDigest := digest(pad, secret)

	if !constantTimeEqual(wantDigest, gotDigest) {
		return nil, ErrDigestMismatch
	}
	return secret, nil
}

func makeDigestShare(rng io.Reader, secret []byte) ([]byte, error) {
	pad := make([]byte, len(secret)-DigestLength)
	if _, err := io.ReadFull(rng, pad); err != nil {
		return nil, err
	}
	return append(digest(pad, secret), pad...), nil
}

// digest returns the 4-byte HMAC-SHA256(pad, secret) prefix used to bind
// a random pad to the secret it accompanies.
func digest(pad, secret []byte) []byte {
	mac := hmac.New(sha256.New, pad)
	mac.Write(secret)
	return mac.Sum(nil)[:DigestLength]
}

// constantTimeEqual compares two equal-length byte slices by
// XOR-accumulation, avoiding an early return on the first differing byte.
// This is a best-effort mitigation, not a guarantee against all timing
// side channels in the surrounding interpolation.
func constantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var acc byte
	for i := range a {
		acc |= a[i] ^ b[i]
	}
	return acc == 0
}

func checkDistinctX(parts []Part) error {
	seen := make(map[byte]struct{}, len(parts))
	for _, p := range parts {
		if _, ok := seen[p.X]; ok {
			return ErrDuplicateX
		}
		seen[p.X] = struct{}{}
	}
	return nil
}

// mod255 reduces a signed sum of discrete logarithms into 0..254 before
// it is used as an exponent; the Lagrange basis accumulates such a sum
// across up to 16 factors, so it must be reduced once at the end rather
// than after each multiply.
func mod255(n int) int {
	n %= 255
	if n < 0 {
		n += 255
	}
	return n
}
