package businessflow

import (
	"fmt"

	"github.com/illumenate-lighting/configurator/models"
	"github.com/illumenate-lighting/configurator/utils"
)

// PricingResult is the MSRP total with its exact line breakdown. The total is
// computed as the sum of the lines, so the two can never drift apart.
type PricingResult struct {
	MSRPTotal float64
	Breakdown models.AdderBreakdown
}

// ComputePricing builds the MSRP breakdown for a single fixture:
// base price, the per-foot length adder, one line per selected option with a
// non-zero adder, and the tape's pricing class adder when one applies.
func ComputePricing(
	template *models.FixtureTemplate,
	selectedOptions map[models.OptionType]*models.TemplateAllowedOption,
	pricingClass *models.PricingClass,
	plan *LengthPlan,
) *PricingResult {
	breakdown := models.AdderBreakdown{
		{Label: "base", Amount: template.BasePriceMSRP},
	}

	lengthFt := plan.PricingLengthMM(template.PricingLengthBasis) / utils.MMPerFoot
	breakdown = append(breakdown, models.AdderLine{
		Label:  "length",
		Amount: roundCents(lengthFt * template.PricePerFtMSRP),
	})

	for _, optionType := range models.SelectableOptionTypes {
		opt := selectedOptions[optionType]
		if opt == nil || opt.MSRPAdder == 0 {
			continue
		}
		breakdown = append(breakdown, models.AdderLine{
			Label:  fmt.Sprintf("%s:%s", optionType, opt.OptionCode),
			Amount: opt.MSRPAdder,
		})
	}

	if pricingClass != nil && pricingClass.DefaultAdder != 0 {
		breakdown = append(breakdown, models.AdderLine{
			Label:  fmt.Sprintf("tape_class:%s", pricingClass.Code),
			Amount: pricingClass.DefaultAdder,
		})
	}

	return &PricingResult{
		MSRPTotal: breakdown.Total(),
		Breakdown: breakdown,
	}
}

func roundCents(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
