package slip39

import (
	"sort"

	"github.com/xecrets/slip39/internal/feistel"
	"github.com/xecrets/slip39/pkg/shamir"
)

// Combine reconstructs the master secret from an unordered collection of
// shares: validate that every share belongs to the same split and that
// each represented group carries exactly its member threshold, recover
// each group's secret by member-level interpolation, recover the
// encrypted master by group-level interpolation, then run the Feistel
// cipher in reverse with passphrase.
func Combine(shares []Share, passphrase []byte) ([]byte, error) {
	byGroup, err := validateShareSet(shares)
	if err != nil {
		return nil, err
	}

	head := shares[0]
	groupIndices := make([]uint8, 0, len(byGroup))
	for g := range byGroup {
		groupIndices = append(groupIndices, g)
	}
	sort.Slice(groupIndices, func(i, j int) bool { return groupIndices[i] < groupIndices[j] })

	groupParts := make([]shamir.Part, 0, len(groupIndices))
	for _, g := range groupIndices {
		members := byGroup[g]
		memberParts := make([]shamir.Part, len(members))
		for i, m := range members {
			memberParts[i] = shamir.Part{X: m.MemberIndex, Value: m.Value}
		}
		groupSecret, err := shamir.Recover(memberParts)
		if err != nil {
			return nil, translateShamirError(err)
		}
		groupParts = append(groupParts, shamir.Part{X: g, Value: groupSecret})
	}

	encrypted, err := shamir.Recover(groupParts)
	if err != nil {
		return nil, translateShamirError(err)
	}

	masterSecret, err := feistel.Decrypt(encrypted, passphrase, head.IterationExponent, head.Identifier, head.Extendable)
	if err != nil {
		return nil, translateFeistelError(err)
	}
	return masterSecret, nil
}

// validateShareSet checks the SLIP-39 share-set consistency rules and
// returns the shares partitioned by group index.
func validateShareSet(shares []Share) (map[uint8][]Share, error) {
	if len(shares) == 0 {
		return nil, ErrMixedShareSet
	}

	head := shares[0]
	if head.GroupThreshold > head.GroupCount {
		return nil, ErrInvalidGroupConfig
	}

	byGroup := make(map[uint8][]Share)
	for _, s := range shares {
		if s.Identifier != head.Identifier || s.Extendable != head.Extendable ||
			s.IterationExponent != head.IterationExponent ||
			s.GroupThreshold != head.GroupThreshold || s.GroupCount != head.GroupCount {
			return nil, ErrMixedShareSet
		}
		byGroup[s.GroupIndex] = append(byGroup[s.GroupIndex], s)
	}

	if len(byGroup) != int(head.GroupThreshold) {
		return nil, ErrWrongGroupCount
	}

	for _, members := range byGroup {
		if err := validateGroupMembers(members); err != nil {
			return nil, err
		}
	}
	return byGroup, nil
}

func validateGroupMembers(members []Share) error {
	memberThreshold := members[0].MemberThreshold
	seen := make(map[uint8]struct{}, len(members))
	for _, m := range members {
		if m.MemberThreshold != memberThreshold {
			return ErrMixedShareSet
		}
		if _, dup := seen[m.MemberIndex]; dup {
			return ErrDuplicateIndex
		}
		seen[m.MemberIndex] = struct{}{}
	}
	if len(members) != int(memberThreshold) {
		return ErrWrongMemberCount
	}
	return nil
}
