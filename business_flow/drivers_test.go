package businessflow

import (
	"testing"

	"github.com/illumenate-lighting/configurator/models"
	"github.com/illumenate-lighting/configurator/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eligibleDriver(item string, ratedWatts float64, outputs int, unitCost *float64) *models.DriverEligibility {
	return &models.DriverEligibility{
		DriverItem:       item,
		OutputVoltage:    24,
		DimmingProtocol:  "0-10V",
		RatedWatts:       ratedWatts,
		UsableLoadFactor: 0.8,
		OutputsPerUnit:   outputs,
		UnitCost:         unitCost,
		IsActive:         utils.ToPtr(true),
	}
}

func TestSelectDriverPicksCheapest(t *testing.T) {
	candidates := []*models.DriverEligibility{
		eligibleDriver("DRV-240", 240, 2, utils.ToPtr(95.0)),
		eligibleDriver("DRV-96", 96, 1, utils.ToPtr(42.0)),
	}

	plan, err := SelectDriver(candidates, 1, 14.0, 24, "0-10V")
	require.NoError(t, err)

	assert.Equal(t, "DRV-96", plan.DriverItem)
	assert.Equal(t, 1, plan.UnitsRequired)
	assert.InDelta(t, 76.8, plan.UsableWatts, 1e-9)
}

func TestSelectDriverUnknownCostSortsLast(t *testing.T) {
	candidates := []*models.DriverEligibility{
		eligibleDriver("DRV-NOCOST", 96, 1, nil),
		eligibleDriver("DRV-96", 96, 1, utils.ToPtr(42.0)),
	}

	plan, err := SelectDriver(candidates, 1, 14.0, 24, "0-10V")
	require.NoError(t, err)

	assert.Equal(t, "DRV-96", plan.DriverItem)
}

func TestSelectDriverCoversWattsAndRuns(t *testing.T) {
	// 3 runs at 200W total on a 2-output, 80W-usable driver: 2 units cover the
	// runs but only 160W, so the selector must escalate to 3 units.
	candidates := []*models.DriverEligibility{
		eligibleDriver("DRV-100", 100, 2, utils.ToPtr(50.0)),
	}

	plan, err := SelectDriver(candidates, 3, 200, 24, "0-10V")
	require.NoError(t, err)

	assert.Equal(t, 3, plan.UnitsRequired)
}

func TestSelectDriverRunsDominate(t *testing.T) {
	// Light load spread over many runs: outputs, not watts, set the unit count.
	candidates := []*models.DriverEligibility{
		eligibleDriver("DRV-100", 100, 1, utils.ToPtr(50.0)),
	}

	plan, err := SelectDriver(candidates, 3, 20, 24, "0-10V")
	require.NoError(t, err)

	assert.Equal(t, 3, plan.UnitsRequired)
}

func TestSelectDriverNoneEligible(t *testing.T) {
	inactive := eligibleDriver("DRV-OFF", 96, 1, utils.ToPtr(42.0))
	inactive.IsActive = utils.ToPtr(false)
	wrongVoltage := eligibleDriver("DRV-12V", 96, 1, utils.ToPtr(42.0))
	wrongVoltage.OutputVoltage = 12

	_, err := SelectDriver([]*models.DriverEligibility{inactive, wrongVoltage}, 1, 14.0, 24, "0-10V")
	require.Error(t, err)

	noDriver, ok := err.(*NoEligibleDriverError)
	require.True(t, ok)
	assert.InDelta(t, 24, noDriver.OutputVoltage, 1e-9)
	assert.Equal(t, "0-10V", noDriver.DimmingProtocol)
}

func TestSelectDriverCostTieBreaksTowardSmaller(t *testing.T) {
	candidates := []*models.DriverEligibility{
		eligibleDriver("DRV-B-240", 240, 1, utils.ToPtr(50.0)),
		eligibleDriver("DRV-A-96", 96, 1, utils.ToPtr(50.0)),
	}

	plan, err := SelectDriver(candidates, 1, 14.0, 24, "0-10V")
	require.NoError(t, err)

	assert.Equal(t, "DRV-A-96", plan.DriverItem)
}
