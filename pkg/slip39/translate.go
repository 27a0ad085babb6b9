package slip39

import (
	"errors"
	"fmt"

	"github.com/xecrets/slip39/internal/bitpacker"
	"github.com/xecrets/slip39/internal/feistel"
	"github.com/xecrets/slip39/pkg/shamir"
	"github.com/xecrets/slip39/pkg/sharecodec"
	"github.com/xecrets/slip39/pkg/wordlist"
)

// translateCodecError maps a pkg/sharecodec or pkg/wordlist error to its
// package-level sentinel. The sentinel is wrapped with %w so
// errors.Is(err, slip39.ErrXxx) works; the original error is kept only as
// text in the message, for diagnostics.
func translateCodecError(err error) error {
	switch {
	case errors.Is(err, sharecodec.ErrTooShort):
		return fmt.Errorf("%w: %v", ErrTooShort, err)
	case errors.Is(err, sharecodec.ErrBadChecksum):
		return fmt.Errorf("%w: %v", ErrBadChecksum, err)
	case errors.Is(err, sharecodec.ErrInvalidPadding):
		return fmt.Errorf("%w: %v", ErrInvalidPadding, err)
	case errors.Is(err, wordlist.ErrUnknownWord):
		return fmt.Errorf("%w: %v", ErrUnknownWord, err)
	case errors.Is(err, bitpacker.ErrShortBuffer):
		return fmt.Errorf("%w: %v", ErrShortBuffer, err)
	default:
		return err
	}
}

// translateShamirError maps a pkg/shamir error encountered while
// recovering a group or member secret to its package-level sentinel.
func translateShamirError(err error) error {
	switch {
	case errors.Is(err, shamir.ErrDigestMismatch):
		return fmt.Errorf("%w: %v", ErrDigestMismatch, err)
	default:
		return err
	}
}

// translateFeistelError maps an internal/feistel error to its
// package-level sentinel.
func translateFeistelError(err error) error {
	switch {
	case errors.Is(err, feistel.ErrNonASCIIPassphrase):
		return fmt.Errorf("%w: %v", ErrNonASCIIPassphrase, err)
	default:
		return err
	}
}
