// Package slip39 implements SLIP-39, Shamir's Secret Sharing for Mnemonic
// Codes: a two-level Shamir hierarchy over GF(256), a passphrase-keyed
// Feistel cipher protecting the master secret, and a checksummed mnemonic
// wire format. Generate and Combine are the two entry points; everything
// else in this package exists to validate and translate between them and
// the lower-level pkg/shamir, internal/feistel, and pkg/sharecodec
// collaborators.
package slip39

import (
	"github.com/xecrets/slip39/pkg/sharecodec"
	"github.com/xecrets/slip39/pkg/wordlist"
)

// Share is the wire-level SLIP-39 member share: one Shamir point dressed
// with the metadata needed to serialize it as a mnemonic. It is defined
// in pkg/sharecodec, which owns the bit layout; this package re-exports
// it as its public vocabulary.
type Share = sharecodec.Share

// GroupConfig describes one group's member threshold and member count.
type GroupConfig struct {
	MemberThreshold int
	MemberCount     int
}

// RandomSource is the narrow capability Generate depends on: fill this
// buffer with bytes. Production code supplies pkg/csprng's
// crypto/rand-backed implementation; tests supply a deterministic one.
// It is satisfied by any io.Reader, including crypto/rand.Reader itself.
type RandomSource interface {
	Read(p []byte) (int, error)
}

// ToMnemonic renders s as a space-joined lowercase sentence using l to
// translate word indices. It is the package-level entry point; Share.ToMnemonic
// (promoted from pkg/sharecodec via the Share alias) does the actual work.
func ToMnemonic(s Share, l *wordlist.List) (string, error) {
	return s.ToMnemonic(l)
}

// FromMnemonic parses sentence into a validated Share using l to resolve
// words to indices, translating pkg/sharecodec and pkg/wordlist errors
// into this package's sentinel errors.
func FromMnemonic(sentence string, l *wordlist.List) (Share, error) {
	s, err := sharecodec.FromMnemonic(sentence, l)
	if err != nil {
		return Share{}, translateCodecError(err)
	}
	return s, nil
}
