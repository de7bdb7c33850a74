package businessflow

import (
	"math"

	"github.com/illumenate-lighting/configurator/models"
)

// float guard for mm arithmetic on catalog values
const lengthEpsilon = 1e-6

// LengthPlan holds every derived length for one configuration.
type LengthPlan struct {
	RequestedLengthMM      float64
	InternalLengthMM       float64
	TapeCutLengthMM        float64
	ManufacturableLengthMM float64
	// DifferenceMM is how much shorter the buildable fixture is than the
	// request, lost to increment flooring.
	DifferenceMM      float64
	EndcapAllowanceMM float64
	LeaderAllowanceMM float64
	SegmentsCount     int
	Segments          models.SegmentList
	AssemblyMode      models.AssemblyMode
}

// ComputeLengthPlan derives the cut and manufacturable lengths from the
// requested overall length. The tape cut always rounds DOWN to the nearest cut
// increment so the fixture never exceeds what the customer asked for.
func ComputeLengthPlan(template *models.FixtureTemplate, spec *models.TapeSpec, endcapAllowanceMM, requestedMM float64) (*LengthPlan, error) {
	increment := spec.CutIncrementMM
	leader := template.LeaderAllowanceMM
	allowances := 2*endcapAllowanceMM + leader

	internal := requestedMM - allowances

	// Below one full increment there is no valid tape cut. Report the smallest
	// requested length that yields one.
	minimum := increment + allowances
	if internal+lengthEpsilon < increment {
		return nil, &LengthBelowMinimumError{RequestedMM: requestedMM, MinimumMM: minimum}
	}

	tapeCut := math.Floor((internal+lengthEpsilon)/increment) * increment
	manufacturable := tapeCut + allowances

	segmentsCount := int(math.Ceil((manufacturable - lengthEpsilon) / template.ProfileStockLengthMM))
	if segmentsCount < 1 {
		segmentsCount = 1
	}

	segments := make(models.SegmentList, 0, segmentsCount)
	remaining := manufacturable
	for i := 0; i < segmentsCount; i++ {
		length := template.ProfileStockLengthMM
		if remaining < length {
			length = remaining
		}
		segments = append(segments, models.Segment{Index: i + 1, LengthMM: length})
		remaining -= length
	}

	mode := models.AssemblyModeShipPieces
	if manufacturable <= template.AssembledMaxLengthMM+lengthEpsilon {
		mode = models.AssemblyModeAssembled
	}

	return &LengthPlan{
		RequestedLengthMM:      requestedMM,
		InternalLengthMM:       internal,
		TapeCutLengthMM:        tapeCut,
		ManufacturableLengthMM: manufacturable,
		DifferenceMM:           requestedMM - manufacturable,
		EndcapAllowanceMM:      endcapAllowanceMM,
		LeaderAllowanceMM:      leader,
		SegmentsCount:          segmentsCount,
		Segments:               segments,
		AssemblyMode:           mode,
	}, nil
}

// PricingLengthMM returns the length the per-foot adder is computed from,
// according to the template's pricing basis.
func (p *LengthPlan) PricingLengthMM(basis models.PricingLengthBasis) float64 {
	if basis == models.PricingBasisManufacturableLength {
		return p.ManufacturableLengthMM
	}
	return p.TapeCutLengthMM
}
