package businessflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeConfigHashIsDeterministic(t *testing.T) {
	sel := testSelections()

	first, err := ComputeConfigHash(sel)
	require.NoError(t, err)
	second, err := ComputeConfigHash(sel)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 32)
	assert.Regexp(t, "^[0-9a-f]{32}$", first)
}

func TestComputeConfigHashChangesWithSelections(t *testing.T) {
	base := testSelections()
	baseHash, err := ComputeConfigHash(base)
	require.NoError(t, err)

	variants := []func(*Selections){
		func(s *Selections) { s.FinishCode = "WHT" },
		func(s *Selections) { s.RequestedLengthMM = 1050 },
		func(s *Selections) { s.TapeOfferingCode = "T24-40K-STD" },
		func(s *Selections) { s.EndcapColorCode = "WHT" },
	}

	for _, mutate := range variants {
		sel := base
		mutate(&sel)
		hash, err := ComputeConfigHash(sel)
		require.NoError(t, err)
		assert.NotEqual(t, baseHash, hash)
	}
}
