package slip39

import "errors"

// The error kinds below are the complete, finite tagged set this package
// returns. Every fallible entry point returns one of them, wrapped with
// %w at the boundary where a lower-level package's error is translated,
// so errors.Is keeps working through Generate and Combine.
var (
	// ErrInvalidSeedLength is returned when a master secret is shorter
	// than 16 bytes or has odd length.
	ErrInvalidSeedLength = errors.New("slip39: seed must be at least 16 bytes and even length")

	// ErrInvalidGroupConfig is returned when a group or member
	// threshold/count violates SLIP-39's configuration constraints.
	ErrInvalidGroupConfig = errors.New("slip39: invalid group configuration")

	// ErrUnknownWord is returned when a mnemonic token is absent from
	// the word list.
	ErrUnknownWord = errors.New("slip39: unknown word in mnemonic")

	// ErrTooShort is returned when a mnemonic's word count is below the
	// minimum.
	ErrTooShort = errors.New("slip39: mnemonic too short")

	// ErrBadChecksum is returned when the RS1024 residue is not 1 under
	// the chosen customization string.
	ErrBadChecksum = errors.New("slip39: invalid mnemonic checksum")

	// ErrInvalidPadding is returned when the value padding exceeds 8
	// bits or is not all zero.
	ErrInvalidPadding = errors.New("slip39: invalid value padding")

	// ErrMixedShareSet is returned when shares presented to Combine
	// disagree on id, extendable, e, GT, GN, or (within a group) MTg.
	ErrMixedShareSet = errors.New("slip39: shares belong to different share sets")

	// ErrWrongGroupCount is returned when the number of distinct groups
	// represented does not equal GT.
	ErrWrongGroupCount = errors.New("slip39: wrong number of groups")

	// ErrWrongMemberCount is returned when a group's member count does
	// not equal that group's MTg.
	ErrWrongMemberCount = errors.New("slip39: wrong number of members in group")

	// ErrDuplicateIndex is returned when a group_index or member_index
	// repeats within its scope.
	ErrDuplicateIndex = errors.New("slip39: duplicate group or member index")

	// ErrDigestMismatch is returned when the reconstructed digest share
	// does not match the recomputed HMAC prefix.
	ErrDigestMismatch = errors.New("slip39: digest mismatch")

	// ErrNonASCIIPassphrase is returned when the passphrase contains a
	// character outside printable ASCII.
	ErrNonASCIIPassphrase = errors.New("slip39: passphrase must be printable ASCII")

	// ErrShortBuffer is returned when a bit reader is exhausted
	// unexpectedly while decoding a mnemonic.
	ErrShortBuffer = errors.New("slip39: short buffer while decoding mnemonic")
)
