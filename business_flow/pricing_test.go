package businessflow

import (
	"testing"

	"github.com/illumenate-lighting/configurator/models"
	"github.com/illumenate-lighting/configurator/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePricingBreakdownSumsToTotal(t *testing.T) {
	template := testTemplate()
	template.BasePriceMSRP = 100
	template.PricePerFtMSRP = 10

	plan, err := ComputeLengthPlan(template, testSpec(), 15, 1000)
	require.NoError(t, err)

	selected := map[models.OptionType]*models.TemplateAllowedOption{
		models.OptionTypeFinish:         {OptionType: models.OptionTypeFinish, OptionCode: "BLK", MSRPAdder: 0},
		models.OptionTypeLensAppearance: {OptionType: models.OptionTypeLensAppearance, OptionCode: "FROST", MSRPAdder: 8},
	}
	pricingClass := &models.PricingClass{Code: "PC-STD", DefaultAdder: 25}

	result := ComputePricing(template, selected, pricingClass, plan)

	assert.InDelta(t, result.Breakdown.Total(), result.MSRPTotal, 1e-9)

	// base 100 + length 950mm at $10/ft (31.17) + lens 8 + tape class 25
	assert.InDelta(t, 164.17, result.MSRPTotal, 1e-9)

	labels := make([]string, 0, len(result.Breakdown))
	for _, line := range result.Breakdown {
		labels = append(labels, line.Label)
	}
	assert.Equal(t, []string{"base", "length", "lens_appearance:FROST", "tape_class:PC-STD"}, labels)
}

func TestComputePricingOmitsZeroAdders(t *testing.T) {
	template := testTemplate()
	template.BasePriceMSRP = 50

	plan, err := ComputeLengthPlan(template, testSpec(), 15, 1000)
	require.NoError(t, err)

	selected := map[models.OptionType]*models.TemplateAllowedOption{
		models.OptionTypeFinish:         {OptionType: models.OptionTypeFinish, OptionCode: "BLK", MSRPAdder: 0},
		models.OptionTypeMountingMethod: {OptionType: models.OptionTypeMountingMethod, OptionCode: "SURFACE", MSRPAdder: 0},
	}

	result := ComputePricing(template, selected, nil, plan)

	require.Len(t, result.Breakdown, 2)
	assert.Equal(t, "base", result.Breakdown[0].Label)
	assert.Equal(t, "length", result.Breakdown[1].Label)
}

func TestComputePricingManufacturableBasis(t *testing.T) {
	template := testTemplate()
	template.BasePriceMSRP = 0
	template.PricePerFtMSRP = 10
	template.PricingLengthBasis = models.PricingBasisManufacturableLength

	plan, err := ComputeLengthPlan(template, testSpec(), 15, 1000)
	require.NoError(t, err)

	result := ComputePricing(template, nil, nil, plan)

	// 980mm instead of 950mm drives the length line.
	expected := roundCents(980 / utils.MMPerFoot * 10)
	require.Len(t, result.Breakdown, 2)
	assert.InDelta(t, expected, result.Breakdown[1].Amount, 1e-9)
}

func TestComputePricingOptionOrderFollowsBreakdownOrder(t *testing.T) {
	template := testTemplate()

	plan, err := ComputeLengthPlan(template, testSpec(), 15, 1000)
	require.NoError(t, err)

	selected := map[models.OptionType]*models.TemplateAllowedOption{
		models.OptionTypeEnvironmentRating: {OptionType: models.OptionTypeEnvironmentRating, OptionCode: "WET", MSRPAdder: 30},
		models.OptionTypeFinish:            {OptionType: models.OptionTypeFinish, OptionCode: "WHT", MSRPAdder: 12},
	}

	result := ComputePricing(template, selected, nil, plan)

	require.Len(t, result.Breakdown, 4)
	assert.Equal(t, "finish:WHT", result.Breakdown[2].Label)
	assert.Equal(t, "environment_rating:WET", result.Breakdown[3].Label)
}
