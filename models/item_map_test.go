package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQtyRuleTypeValid(t *testing.T) {
	assert.True(t, QtyRulePerFixture.Valid())
	assert.True(t, QtyRulePerSegment.Valid())
	assert.True(t, QtyRulePerRun.Valid())
	assert.True(t, QtyRulePerXMM.Valid())
	assert.False(t, QtyRuleType("PER_PALLET").Valid())
}

func TestQtyRuleTypeValueRejectsInvalid(t *testing.T) {
	_, err := QtyRuleType("PER_PALLET").Value()
	assert.Error(t, err)

	v, err := QtyRulePerXMM.Value()
	require.NoError(t, err)
	assert.Equal(t, "PER_X_MM", v)
}

func TestRoundingModeScan(t *testing.T) {
	var m RoundingMode
	require.NoError(t, m.Scan([]byte("FLOOR")))
	assert.Equal(t, RoundingFloor, m)

	require.NoError(t, m.Scan("CEIL"))
	assert.Equal(t, RoundingCeil, m)

	assert.Error(t, m.Scan(1.5))
}

func TestRoundingModeValueRejectsInvalid(t *testing.T) {
	_, err := RoundingMode("TRUNCATE").Value()
	assert.Error(t, err)
}
