package slip39

import (
	"io"

	"github.com/xecrets/slip39/internal/feistel"
	"github.com/xecrets/slip39/pkg/shamir"
)

const (
	minSeedLength = 16
	maxGroupCount = 16
	idMask        = 0x7FFF // 15 bits
)

// Generate splits masterSecret into a two-level SLIP-39 share hierarchy:
// validate inputs, draw a random identifier, encrypt the master secret
// with the Feistel cipher, split the encrypted secret across groups, then
// split each group's secret across its members.
func Generate(rng RandomSource, groupThreshold int, groups []GroupConfig,
	masterSecret, passphrase []byte, iterationExponent uint8, extendable bool,
) ([]Share, error) {
	if err := validateSeed(masterSecret); err != nil {
		return nil, err
	}
	if err := validateGroupConfig(groupThreshold, groups); err != nil {
		return nil, err
	}

	id, err := randomIdentifier(rng)
	if err != nil {
		return nil, err
	}

	encrypted, err := feistel.Encrypt(masterSecret, passphrase, iterationExponent, id, extendable)
	if err != nil {
		return nil, translateFeistelError(err)
	}

	groupCount := len(groups)
	groupParts, err := shamir.Split(rng, groupThreshold, groupCount, encrypted)
	if err != nil {
		return nil, err
	}

	var shares []Share
	for g, cfg := range groups {
		groupSecret := groupParts[g].Value
		memberParts, err := shamir.Split(rng, cfg.MemberThreshold, cfg.MemberCount, groupSecret)
		if err != nil {
			return nil, err
		}
		for _, mp := range memberParts {
			shares = append(shares, Share{
				Identifier:        id,
				Extendable:        extendable,
				IterationExponent: iterationExponent,
				GroupIndex:        uint8(g),
				GroupThreshold:    uint8(groupThreshold),
				GroupCount:        uint8(groupCount),
				MemberIndex:       mp.X,
				MemberThreshold:   uint8(cfg.MemberThreshold),
				Value:             mp.Value,
			})
		}
	}
	return shares, nil
}

func validateSeed(secret []byte) error {
	if len(secret) < minSeedLength || len(secret)%2 != 0 {
		return ErrInvalidSeedLength
	}
	return nil
}

func validateGroupConfig(groupThreshold int, groups []GroupConfig) error {
	groupCount := len(groups)
	if groupThreshold < 1 || groupThreshold > groupCount || groupCount > maxGroupCount {
		return ErrInvalidGroupConfig
	}
	for _, g := range groups {
		if g.MemberThreshold < 1 || g.MemberThreshold > g.MemberCount || g.MemberCount > maxGroupCount {
			return ErrInvalidGroupConfig
		}
		if g.MemberThreshold == 1 && g.MemberCount != 1 {
			return ErrInvalidGroupConfig
		}
	}
	return nil
}

// randomIdentifier draws 4 random bytes and masks them to the low 15
// bits, the standard-compliant form of the SLIP-39 identifier.
func randomIdentifier(rng RandomSource) (uint16, error) {
	buf := make([]byte, 4)
	if _, err := io.ReadFull(rng, buf); err != nil {
		return 0, err
	}
	v := uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3])
	return uint16(v & idMask), nil
}
