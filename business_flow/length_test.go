package businessflow

import (
	"testing"

	"github.com/illumenate-lighting/configurator/models"
	"github.com/illumenate-lighting/configurator/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTemplate() *models.FixtureTemplate {
	return &models.FixtureTemplate{
		Code:                 "CHN-REC-01",
		ProfileStockLengthMM: 2000,
		AssembledMaxLengthMM: 2590,
		LeaderAllowanceMM:    15,
		PricingLengthBasis:   models.PricingBasisTapeCutLength,
		IsActive:             utils.ToPtr(true),
	}
}

func testSpec() *models.TapeSpec {
	return &models.TapeSpec{
		ID:              1,
		Code:            "TS-24-STD",
		InputVoltage:    24,
		WattsPerFt:      4.5,
		CutIncrementMM:  50,
		DimmingProtocol: "0-10V",
		TapeItem:        "TAPE-24-STD",
	}
}

func TestComputeLengthPlan(t *testing.T) {
	plan, err := ComputeLengthPlan(testTemplate(), testSpec(), 15, 1000)
	require.NoError(t, err)

	assert.InDelta(t, 955, plan.InternalLengthMM, 1e-9)
	assert.InDelta(t, 950, plan.TapeCutLengthMM, 1e-9)
	assert.InDelta(t, 980, plan.ManufacturableLengthMM, 1e-9)
	assert.InDelta(t, 20, plan.DifferenceMM, 1e-9)
	assert.Equal(t, 1, plan.SegmentsCount)
	require.Len(t, plan.Segments, 1)
	assert.Equal(t, 1, plan.Segments[0].Index)
	assert.InDelta(t, 980, plan.Segments[0].LengthMM, 1e-9)
	assert.Equal(t, models.AssemblyModeAssembled, plan.AssemblyMode)
}

func TestComputeLengthPlanExactIncrement(t *testing.T) {
	// 995mm leaves exactly 950mm internal; the floor must not lose an increment
	// to float error.
	plan, err := ComputeLengthPlan(testTemplate(), testSpec(), 15, 995)
	require.NoError(t, err)

	assert.InDelta(t, 950, plan.TapeCutLengthMM, 1e-9)
}

func TestComputeLengthPlanBelowMinimum(t *testing.T) {
	_, err := ComputeLengthPlan(testTemplate(), testSpec(), 15, 80)
	require.Error(t, err)

	belowMin, ok := err.(*LengthBelowMinimumError)
	require.True(t, ok)
	assert.InDelta(t, 80, belowMin.RequestedMM, 1e-9)
	// One increment plus both endcaps and the leader allowance.
	assert.InDelta(t, 95, belowMin.MinimumMM, 1e-9)
}

func TestComputeLengthPlanMultiSegment(t *testing.T) {
	plan, err := ComputeLengthPlan(testTemplate(), testSpec(), 15, 5000)
	require.NoError(t, err)

	// internal 4955 -> tape cut 4950 -> manufacturable 4995 over 2000mm stock
	assert.InDelta(t, 4950, plan.TapeCutLengthMM, 1e-9)
	assert.InDelta(t, 4995, plan.ManufacturableLengthMM, 1e-9)
	assert.InDelta(t, 5, plan.DifferenceMM, 1e-9)
	assert.Equal(t, 3, plan.SegmentsCount)
	require.Len(t, plan.Segments, 3)
	assert.InDelta(t, 2000, plan.Segments[0].LengthMM, 1e-9)
	assert.InDelta(t, 2000, plan.Segments[1].LengthMM, 1e-9)
	assert.InDelta(t, 995, plan.Segments[2].LengthMM, 1e-9)

	var total float64
	for _, seg := range plan.Segments {
		total += seg.LengthMM
	}
	assert.InDelta(t, plan.ManufacturableLengthMM, total, 1e-9)

	assert.Equal(t, models.AssemblyModeShipPieces, plan.AssemblyMode)
}

func TestComputeLengthPlanAssemblyBoundary(t *testing.T) {
	template := testTemplate()

	// 2645mm requested cuts cleanly: internal 2600, manufacturable 2645, just
	// past the 2590 assembled maximum.
	plan, err := ComputeLengthPlan(template, testSpec(), 15, 2645)
	require.NoError(t, err)
	assert.InDelta(t, 2645, plan.ManufacturableLengthMM, 1e-9)
	assert.Equal(t, models.AssemblyModeShipPieces, plan.AssemblyMode)

	// The assembled maximum is inclusive.
	template.AssembledMaxLengthMM = 2645
	plan, err = ComputeLengthPlan(template, testSpec(), 15, 2645)
	require.NoError(t, err)
	assert.Equal(t, models.AssemblyModeAssembled, plan.AssemblyMode)
}

func TestPricingLengthBasis(t *testing.T) {
	plan, err := ComputeLengthPlan(testTemplate(), testSpec(), 15, 1000)
	require.NoError(t, err)

	assert.InDelta(t, 950, plan.PricingLengthMM(models.PricingBasisTapeCutLength), 1e-9)
	assert.InDelta(t, 980, plan.PricingLengthMM(models.PricingBasisManufacturableLength), 1e-9)
}
