package businessflow

import (
	"testing"

	"github.com/illumenate-lighting/configurator/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeRunPlanSingleRun(t *testing.T) {
	plan, err := ComputeRunPlan(testSpec(), 950)
	require.NoError(t, err)

	// 950mm at 4.5W/ft is about 14W, far under the 85W ceiling.
	assert.InDelta(t, 85.0/4.5, plan.MaxRunFt, 1e-9)
	assert.Equal(t, 1, plan.RunsCount)
	require.Len(t, plan.Runs, 1)
	assert.InDelta(t, 950, plan.Runs[0].LengthMM, 1e-9)
	assert.InDelta(t, 14.03, plan.TotalWatts, 0.01)
}

func TestComputeRunPlanSplitsAtWattageCeiling(t *testing.T) {
	// 6000mm is about 19.7ft against an 18.89ft per-run limit.
	plan, err := ComputeRunPlan(testSpec(), 6000)
	require.NoError(t, err)

	assert.Equal(t, 2, plan.RunsCount)
	require.Len(t, plan.Runs, 2)

	var totalMM, totalWatts float64
	for _, run := range plan.Runs {
		assert.LessOrEqual(t, run.Watts, utils.MaxWattsPerRun)
		totalMM += run.LengthMM
		totalWatts += run.Watts
	}
	assert.InDelta(t, 6000, totalMM, 1e-9)
	assert.InDelta(t, plan.TotalWatts, totalWatts, 1e-6)
}

func TestComputeRunPlanVoltageDropLimit(t *testing.T) {
	spec := testSpec()
	spec.MaxRunFtVoltageDrop = utils.ToPtr(10.0)

	plan, err := ComputeRunPlan(spec, 6000)
	require.NoError(t, err)

	// The 10ft drop limit is tighter than the 18.89ft wattage limit.
	assert.InDelta(t, 10, plan.MaxRunFt, 1e-9)
	assert.Equal(t, 2, plan.RunsCount)
	// Full runs are whole millimeters: floor(10ft in mm) = 3048.
	assert.InDelta(t, 3048, plan.Runs[0].LengthMM, 1e-9)
	assert.InDelta(t, 2952, plan.Runs[1].LengthMM, 1e-9)
}

func TestComputeRunPlanIgnoresLooserVoltageDropLimit(t *testing.T) {
	spec := testSpec()
	spec.MaxRunFtVoltageDrop = utils.ToPtr(30.0)

	plan, err := ComputeRunPlan(spec, 6000)
	require.NoError(t, err)

	assert.InDelta(t, 85.0/4.5, plan.MaxRunFt, 1e-9)
}

func TestComputeRunPlanRejectsNonPositiveWattsPerFt(t *testing.T) {
	for _, watts := range []float64{0, -4.5} {
		spec := testSpec()
		spec.WattsPerFt = watts

		_, err := ComputeRunPlan(spec, 950)
		require.Error(t, err)
		assert.True(t, IsTapeSpecInvalid(err))

		invalid, ok := err.(*InvalidTapeSpecError)
		require.True(t, ok)
		assert.Equal(t, spec.Code, invalid.SpecCode)
		assert.InDelta(t, watts, invalid.WattsPerFt, 1e-9)
	}
}
