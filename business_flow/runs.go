package businessflow

import (
	"math"

	"github.com/illumenate-lighting/configurator/models"
	"github.com/illumenate-lighting/configurator/utils"
)

// RunPlan holds the electrical split of the tape cut into independent runs.
type RunPlan struct {
	TotalLengthFt float64
	TotalWatts    float64
	MaxRunFt      float64
	RunsCount     int
	Runs          models.RunList
}

// ComputeRunPlan splits the tape cut into runs so that no single run exceeds
// the wattage ceiling or the tape's voltage drop limit. The ceiling applies
// per run; the total load is handled by driver selection.
func ComputeRunPlan(spec *models.TapeSpec, tapeCutMM float64) (*RunPlan, error) {
	if spec.WattsPerFt <= 0 {
		return nil, &InvalidTapeSpecError{SpecCode: spec.Code, WattsPerFt: spec.WattsPerFt}
	}

	totalFt := tapeCutMM / utils.MMPerFoot
	totalWatts := totalFt * spec.WattsPerFt

	maxRunFt := utils.MaxWattsPerRun / spec.WattsPerFt
	if spec.MaxRunFtVoltageDrop != nil && *spec.MaxRunFtVoltageDrop < maxRunFt {
		maxRunFt = *spec.MaxRunFtVoltageDrop
	}

	runsCount := int(math.Ceil((totalFt - lengthEpsilon) / maxRunFt))
	if runsCount < 1 {
		runsCount = 1
	}

	// Full runs are sized to whole millimeters so cut instructions stay integral.
	fullRunMM := math.Floor(maxRunFt * utils.MMPerFoot)
	runs := make(models.RunList, 0, runsCount)
	remainingMM := tapeCutMM
	for i := 0; i < runsCount; i++ {
		lengthMM := fullRunMM
		if remainingMM < lengthMM {
			lengthMM = remainingMM
		}
		watts := (lengthMM / utils.MMPerFoot) * spec.WattsPerFt
		runs = append(runs, models.Run{Index: i + 1, LengthMM: lengthMM, Watts: watts})
		remainingMM -= lengthMM
	}

	return &RunPlan{
		TotalLengthFt: totalFt,
		TotalWatts:    totalWatts,
		MaxRunFt:      maxRunFt,
		RunsCount:     runsCount,
		Runs:          runs,
	}, nil
}
