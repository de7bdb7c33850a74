package businessflow

import (
	"math"
	"sort"

	"github.com/illumenate-lighting/configurator/models"
	"github.com/illumenate-lighting/configurator/utils"
)

// SelectDriver picks the cheapest eligible driver and the unit count needed to
// power every run. A plan is valid only when the units cover BOTH the total
// wattage and one output per run.
func SelectDriver(candidates []*models.DriverEligibility, runsCount int, totalWatts float64, outputVoltage float64, dimmingProtocol string) (*models.DriverPlan, error) {
	eligible := make([]*models.DriverEligibility, 0, len(candidates))
	for _, d := range candidates {
		if d == nil || !utils.IsTrue(d.IsActive) {
			continue
		}
		if d.OutputVoltage != outputVoltage || d.DimmingProtocol != dimmingProtocol {
			continue
		}
		if d.UsableWatts() <= 0 || d.OutputsPerUnit < 1 {
			continue
		}
		eligible = append(eligible, d)
	}

	if len(eligible) == 0 {
		return nil, &NoEligibleDriverError{OutputVoltage: outputVoltage, DimmingProtocol: dimmingProtocol, TotalWatts: totalWatts}
	}

	// Cheapest unit cost first; unknown cost sorts last. Ties break toward the
	// smaller driver, then by item code for determinism.
	sort.SliceStable(eligible, func(i, j int) bool {
		ci, cj := driverUnitCost(eligible[i]), driverUnitCost(eligible[j])
		if ci != cj {
			return ci < cj
		}
		if eligible[i].RatedWatts != eligible[j].RatedWatts {
			return eligible[i].RatedWatts < eligible[j].RatedWatts
		}
		return eligible[i].DriverItem < eligible[j].DriverItem
	})

	chosen := eligible[0]
	unitsForWatts := int(math.Ceil((totalWatts - lengthEpsilon) / chosen.UsableWatts()))
	unitsForRuns := int(math.Ceil(float64(runsCount) / float64(chosen.OutputsPerUnit)))
	units := unitsForWatts
	if unitsForRuns > units {
		units = unitsForRuns
	}
	if units < 1 {
		units = 1
	}

	return &models.DriverPlan{
		DriverItem:     chosen.DriverItem,
		UnitsRequired:  units,
		RatedWatts:     chosen.RatedWatts,
		UsableWatts:    chosen.UsableWatts(),
		OutputsPerUnit: chosen.OutputsPerUnit,
		UnitCost:       chosen.UnitCost,
	}, nil
}

func driverUnitCost(d *models.DriverEligibility) float64 {
	if d.UnitCost == nil {
		return math.Inf(1)
	}
	return *d.UnitCost
}
