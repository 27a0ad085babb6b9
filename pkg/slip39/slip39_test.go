package slip39

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xecrets/slip39/internal/testutil"
	"github.com/xecrets/slip39/pkg/wordlist"
)

var testSeed = []byte("ABCDEFGHIJKLMNOP") // 16 bytes, 0x41..0x50

func flatGroups(memberThreshold, memberCount int) []GroupConfig {
	return []GroupConfig{{MemberThreshold: memberThreshold, MemberCount: memberCount}}
}

// Scenario 1: no passphrase, flat (3,5).
func TestScenarioFlatNoPassphrase(t *testing.T) {
	shares, err := Generate(testutil.DeterministicRNG(0), 1, flatGroups(3, 5), testSeed, nil, 0, false)
	require.NoError(t, err)
	require.Len(t, shares, 5)

	recovered, err := Combine(shares[:3], nil)
	require.NoError(t, err)
	assert.Equal(t, testSeed, recovered)

	recovered, err = Combine([]Share{shares[1], shares[3], shares[4]}, nil)
	require.NoError(t, err)
	assert.Equal(t, testSeed, recovered)

	_, err = Combine(shares[:2], nil)
	assert.True(t, errIsAny(err, ErrWrongMemberCount, ErrDigestMismatch))
}

// Scenario 2: with passphrase.
func TestScenarioWithPassphrase(t *testing.T) {
	passphrase := []byte("TREZOR")
	shares, err := Generate(testutil.DeterministicRNG(1), 1, flatGroups(3, 5), testSeed, passphrase, 0, false)
	require.NoError(t, err)

	recovered, err := Combine(shares[:3], passphrase)
	require.NoError(t, err)
	assert.Equal(t, testSeed, recovered)

	wrong, err := Combine(shares[:3], nil)
	require.NoError(t, err)
	assert.Len(t, wrong, len(testSeed))
	assert.NotEqual(t, testSeed, wrong)
}

// Scenario 3: two-level sharing.
func TestScenarioTwoLevelSharing(t *testing.T) {
	groups := []GroupConfig{
		{MemberThreshold: 3, MemberCount: 5},
		{MemberThreshold: 2, MemberCount: 3},
		{MemberThreshold: 2, MemberCount: 5},
		{MemberThreshold: 1, MemberCount: 1},
	}
	shares, err := Generate(testutil.DeterministicRNG(2), 2, groups, testSeed, nil, 0, false)
	require.NoError(t, err)

	byGroup := map[uint8][]Share{}
	for _, s := range shares {
		byGroup[s.GroupIndex] = append(byGroup[s.GroupIndex], s)
	}

	groupPairs := [][2]uint8{{0, 1}, {0, 3}, {1, 2}, {2, 3}}
	for _, pair := range groupPairs {
		g0, g1 := byGroup[pair[0]], byGroup[pair[1]]
		subset := append(append([]Share{}, g0[:groups[pair[0]].MemberThreshold]...), g1[:groups[pair[1]].MemberThreshold]...)
		recovered, err := Combine(subset, nil)
		require.NoError(t, err, "pair %v", pair)
		assert.Equal(t, testSeed, recovered, "pair %v", pair)
	}
}

// Scenario 4: extendable=false, and bit-flip detection.
func TestScenarioExtendableFalseBitFlip(t *testing.T) {
	shares, err := Generate(testutil.DeterministicRNG(3), 1, flatGroups(3, 5), testSeed, nil, 0, false)
	require.NoError(t, err)

	recovered, err := Combine(shares[:3], nil)
	require.NoError(t, err)
	assert.Equal(t, testSeed, recovered)

	l := wordlist.English()
	mnemonic, err := shares[0].ToMnemonic(l)
	require.NoError(t, err)

	indices, err := l.WordsToIndices(mnemonic)
	require.NoError(t, err)
	indices[1] ^= 0x0010 // flip the extendable bit, packed into the second word

	flipped, err := l.IndicesToWords(indices)
	require.NoError(t, err)

	_, err = FromMnemonic(flipped, l)
	assert.ErrorIs(t, err, ErrBadChecksum)
}

// Scenario 6: invalid configurations.
func TestScenarioInvalidConfigurations(t *testing.T) {
	rng := testutil.DeterministicRNG(4)

	_, err := Generate(rng, 1, flatGroups(2, 3), testSeed[:14], nil, 0, false)
	assert.ErrorIs(t, err, ErrInvalidSeedLength)

	_, err = Generate(rng, 3, []GroupConfig{{3, 5}, {2, 5}}, testSeed, nil, 0, false)
	assert.ErrorIs(t, err, ErrInvalidGroupConfig)

	_, err = Generate(rng, 2, []GroupConfig{{1, 3}, {2, 5}}, testSeed, nil, 0, false)
	assert.ErrorIs(t, err, ErrInvalidGroupConfig)
}

func TestExtendableIndependence(t *testing.T) {
	sharesA, err := Generate(testutil.DeterministicRNG(10), 1, flatGroups(3, 5), testSeed, nil, 0, true)
	require.NoError(t, err)
	sharesB, err := Generate(testutil.DeterministicRNG(11), 1, flatGroups(3, 5), testSeed, nil, 0, true)
	require.NoError(t, err)
	require.NotEqual(t, sharesA[0].Identifier, sharesB[0].Identifier)

	recoveredA, err := Combine(sharesA[:3], nil)
	require.NoError(t, err)
	recoveredB, err := Combine(sharesB[:3], nil)
	require.NoError(t, err)
	assert.Equal(t, recoveredA, recoveredB, "extendable shares with different ids still recover the same seed")
}

func TestNonExtendableDifferentIdsDiverge(t *testing.T) {
	sharesA, err := Generate(testutil.DeterministicRNG(20), 1, flatGroups(3, 5), testSeed, nil, 0, false)
	require.NoError(t, err)
	sharesB, err := Generate(testutil.DeterministicRNG(21), 1, flatGroups(3, 5), testSeed, nil, 0, false)
	require.NoError(t, err)
	require.NotEqual(t, sharesA[0].Identifier, sharesB[0].Identifier)

	recoveredA, err := Combine(sharesA[:3], nil)
	require.NoError(t, err)
	recoveredB, err := Combine(sharesB[:3], nil)
	require.NoError(t, err)
	assert.Equal(t, testSeed, recoveredA)
	assert.Equal(t, testSeed, recoveredB)

	// Decrypting B's encrypted master secret under A's identifier yields a
	// different seed: without the extendable flag the id is bound into the
	// Feistel salt.
	relabelled := append([]Share{}, sharesB[:3]...)
	for i := range relabelled {
		relabelled[i].Identifier = sharesA[0].Identifier
	}
	diverged, err := Combine(relabelled, nil)
	require.NoError(t, err)
	assert.NotEqual(t, testSeed, diverged)
}

func TestMnemonicRoundTripForEveryGeneratedShare(t *testing.T) {
	l := wordlist.English()
	shares, err := Generate(testutil.DeterministicRNG(30), 2, []GroupConfig{
		{MemberThreshold: 2, MemberCount: 3},
		{MemberThreshold: 3, MemberCount: 4},
	}, testSeed, []byte("pw"), 1, false)
	require.NoError(t, err)

	for _, s := range shares {
		sentence, err := s.ToMnemonic(l)
		require.NoError(t, err)
		back, err := FromMnemonic(sentence, l)
		require.NoError(t, err)
		assert.Equal(t, s, back)
	}
}

func TestCombineRejectsMixedShareSet(t *testing.T) {
	sharesA, err := Generate(testutil.DeterministicRNG(40), 1, flatGroups(2, 3), testSeed, nil, 0, false)
	require.NoError(t, err)
	sharesB, err := Generate(testutil.DeterministicRNG(41), 1, flatGroups(2, 3), testSeed, nil, 0, false)
	require.NoError(t, err)

	_, err = Combine([]Share{sharesA[0], sharesB[1]}, nil)
	assert.ErrorIs(t, err, ErrMixedShareSet)
}

func TestCombineRejectsEmptyShareSet(t *testing.T) {
	_, err := Combine(nil, nil)
	assert.ErrorIs(t, err, ErrMixedShareSet)
}

func TestCombineRejectsDuplicateMemberIndex(t *testing.T) {
	shares, err := Generate(testutil.DeterministicRNG(42), 1, flatGroups(2, 3), testSeed, nil, 0, false)
	require.NoError(t, err)

	_, err = Combine([]Share{shares[0], shares[0]}, nil)
	assert.True(t, errIsAny(err, ErrDuplicateIndex, ErrWrongMemberCount))
}

func errIsAny(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
