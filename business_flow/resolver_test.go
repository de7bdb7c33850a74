package businessflow

import (
	"context"
	"testing"

	"github.com/illumenate-lighting/configurator/models"
	testingutil "github.com/illumenate-lighting/configurator/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSelections() Selections {
	return Selections{
		TemplateCode:          testingutil.TestTemplateCode,
		TapeOfferingCode:      testingutil.TestOfferingCode,
		RequestedLengthMM:     1000,
		FinishCode:            testingutil.TestFinishCode,
		LensAppearanceCode:    testingutil.TestLensCode,
		MountingMethodCode:    testingutil.TestMountingCode,
		EndcapStyleCode:       testingutil.TestEndcapStyleCode,
		EndcapColorCode:       testingutil.TestEndcapColorCode,
		PowerFeedTypeCode:     testingutil.TestPowerFeedCode,
		EnvironmentRatingCode: testingutil.TestEnvironmentCode,
	}
}

func TestResolveItemsCoversEveryRole(t *testing.T) {
	f := testingutil.NewCatalogFixtures()

	resolved, err := ResolveItems(context.Background(), f.ItemMaps, f.TapeSpec, testSelections())
	require.NoError(t, err)

	assert.Equal(t, "TAPE-24-STD", resolved.Items[RoleTape])
	assert.Equal(t, "PRF-REC-BLK", resolved.Items[RoleProfile])
	assert.Equal(t, "LENS-FROST-DRY", resolved.Items[RoleLens])
	assert.Equal(t, "EC-SQ-BLK", resolved.Items[RoleEndcap])
	assert.Equal(t, "LDR-END-24", resolved.Items[RoleLeader])
	assert.Equal(t, "MNT-CLIP", resolved.Items[RoleMounting])

	require.NotNil(t, resolved.Leader)
	assert.InDelta(t, 150, resolved.Leader.LeaderLengthMM, 1e-9)
	require.NotNil(t, resolved.Mounting)
	assert.Equal(t, models.QtyRulePerXMM, resolved.Mounting.QtyRuleType)
}

func TestResolveItemsMissingMapping(t *testing.T) {
	f := testingutil.NewCatalogFixtures()
	f.ItemMaps.Endcaps = nil

	_, err := ResolveItems(context.Background(), f.ItemMaps, f.TapeSpec, testSelections())
	require.Error(t, err)

	missing, ok := err.(*MissingMappingError)
	require.True(t, ok)
	assert.Equal(t, "endcap", missing.MapName)
	assert.Equal(t, testingutil.TestEndcapStyleCode, missing.Keys["endcap_style_code"])
	assert.Equal(t, testingutil.TestEndcapColorCode, missing.Keys["endcap_color_code"])
}

func TestResolveItemsInactiveMappingIsMissing(t *testing.T) {
	f := testingutil.NewCatalogFixtures()
	inactive := false
	f.ItemMaps.Lenses[0].IsActive = &inactive

	_, err := ResolveItems(context.Background(), f.ItemMaps, f.TapeSpec, testSelections())
	require.Error(t, err)

	missing, ok := err.(*MissingMappingError)
	require.True(t, ok)
	assert.Equal(t, "lens", missing.MapName)
}

func TestResolveItemsProfileKeyedByFinish(t *testing.T) {
	f := testingutil.NewCatalogFixtures()
	sel := testSelections()
	sel.FinishCode = "WHT"

	resolved, err := ResolveItems(context.Background(), f.ItemMaps, f.TapeSpec, sel)
	require.NoError(t, err)

	assert.Equal(t, "PRF-REC-WHT", resolved.Items[RoleProfile])
}

func TestComputeMountingQty(t *testing.T) {
	tests := []struct {
		name     string
		rule     *models.MountingAccessoryMap
		expected int
	}{
		{
			name:     "per segment",
			rule:     &models.MountingAccessoryMap{QtyRuleType: models.QtyRulePerSegment, QtyRuleValue: 2, Rounding: models.RoundingCeil},
			expected: 6,
		},
		{
			name:     "per run",
			rule:     &models.MountingAccessoryMap{QtyRuleType: models.QtyRulePerRun, QtyRuleValue: 1, Rounding: models.RoundingCeil},
			expected: 2,
		},
		{
			name:     "per distance with ceil",
			rule:     &models.MountingAccessoryMap{QtyRuleType: models.QtyRulePerXMM, QtyRuleValue: 500, Rounding: models.RoundingCeil},
			expected: 2,
		},
		{
			name:     "per distance with floor",
			rule:     &models.MountingAccessoryMap{QtyRuleType: models.QtyRulePerXMM, QtyRuleValue: 500, Rounding: models.RoundingFloor},
			expected: 1,
		},
		{
			name:     "per distance with round",
			rule:     &models.MountingAccessoryMap{QtyRuleType: models.QtyRulePerXMM, QtyRuleValue: 600, Rounding: models.RoundingRound},
			expected: 2,
		},
		{
			name:     "per fixture default",
			rule:     &models.MountingAccessoryMap{QtyRuleType: models.QtyRulePerFixture, QtyRuleValue: 4, Rounding: models.RoundingCeil},
			expected: 4,
		},
		{
			name:     "minimum quantity applies",
			rule:     &models.MountingAccessoryMap{QtyRuleType: models.QtyRulePerXMM, QtyRuleValue: 2000, MinQty: 2, Rounding: models.RoundingCeil},
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 980mm manufacturable across 3 segments and 2 runs
			qty := ComputeMountingQty(tt.rule, 980, 3, 2)
			assert.Equal(t, tt.expected, qty)
		})
	}
}

func TestComputeMountingQtyZeroDistanceRule(t *testing.T) {
	rule := &models.MountingAccessoryMap{QtyRuleType: models.QtyRulePerXMM, QtyRuleValue: 0, MinQty: 1, Rounding: models.RoundingCeil}
	assert.Equal(t, 1, ComputeMountingQty(rule, 980, 1, 1))
}
