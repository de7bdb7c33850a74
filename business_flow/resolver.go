package businessflow

import (
	"context"
	"math"

	"github.com/illumenate-lighting/configurator/models"
	"github.com/illumenate-lighting/configurator/repository"
)

// BOM role names used as keys in the resolved item list.
const (
	RoleTape     = "tape"
	RoleProfile  = "profile"
	RoleLens     = "lens"
	RoleEndcap   = "endcap"
	RoleLeader   = "leader"
	RoleMounting = "mounting"
	RoleDriver   = "driver"
)

// ResolvedItems carries the concrete stock item for every BOM role plus the
// mapping rows whose extra fields feed downstream steps.
type ResolvedItems struct {
	Items    models.ResolvedItemList
	Leader   *models.LeaderItemMap
	Mounting *models.MountingAccessoryMap
}

// ResolveItems maps every selection to a concrete stock item. Coverage is
// total: any missing mapping is a hard MissingMappingError, never a partial
// result.
func ResolveItems(ctx context.Context, itemMaps repository.ItemMapRepository, spec *models.TapeSpec, sel Selections) (*ResolvedItems, error) {
	items := models.ResolvedItemList{RoleTape: spec.TapeItem}

	profile, err := itemMaps.ResolveProfile(ctx, sel.TemplateCode, sel.FinishCode)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, &MissingMappingError{MapName: "profile", Keys: map[string]string{
			"template_code": sel.TemplateCode,
			"finish_code":   sel.FinishCode,
		}}
	}
	items[RoleProfile] = profile.Item

	lens, err := itemMaps.ResolveLens(ctx, sel.LensAppearanceCode, sel.EnvironmentRatingCode)
	if err != nil {
		return nil, err
	}
	if lens == nil {
		return nil, &MissingMappingError{MapName: "lens", Keys: map[string]string{
			"lens_appearance_code":    sel.LensAppearanceCode,
			"environment_rating_code": sel.EnvironmentRatingCode,
		}}
	}
	items[RoleLens] = lens.Item

	endcap, err := itemMaps.ResolveEndcap(ctx, sel.EndcapStyleCode, sel.EndcapColorCode)
	if err != nil {
		return nil, err
	}
	if endcap == nil {
		return nil, &MissingMappingError{MapName: "endcap", Keys: map[string]string{
			"endcap_style_code": sel.EndcapStyleCode,
			"endcap_color_code": sel.EndcapColorCode,
		}}
	}
	items[RoleEndcap] = endcap.Item

	leader, err := itemMaps.ResolveLeader(ctx, sel.PowerFeedTypeCode, spec.ID)
	if err != nil {
		return nil, err
	}
	if leader == nil {
		return nil, &MissingMappingError{MapName: "leader", Keys: map[string]string{
			"power_feed_type_code": sel.PowerFeedTypeCode,
			"tape_spec_code":       spec.Code,
		}}
	}
	items[RoleLeader] = leader.Item

	mounting, err := itemMaps.ResolveMounting(ctx, sel.TemplateCode, sel.MountingMethodCode)
	if err != nil {
		return nil, err
	}
	if mounting == nil {
		return nil, &MissingMappingError{MapName: "mounting", Keys: map[string]string{
			"template_code":        sel.TemplateCode,
			"mounting_method_code": sel.MountingMethodCode,
		}}
	}
	items[RoleMounting] = mounting.Item

	return &ResolvedItems{
		Items:    items,
		Leader:   leader,
		Mounting: mounting,
	}, nil
}

// ComputeMountingQty evaluates the accessory quantity rule against the
// computed fixture geometry.
func ComputeMountingQty(m *models.MountingAccessoryMap, manufacturableMM float64, segmentsCount, runsCount int) int {
	var raw float64
	switch m.QtyRuleType {
	case models.QtyRulePerSegment:
		raw = m.QtyRuleValue * float64(segmentsCount)
	case models.QtyRulePerRun:
		raw = m.QtyRuleValue * float64(runsCount)
	case models.QtyRulePerXMM:
		if m.QtyRuleValue > 0 {
			raw = manufacturableMM / m.QtyRuleValue
		}
	default: // PER_FIXTURE
		raw = m.QtyRuleValue
	}

	var qty int
	switch m.Rounding {
	case models.RoundingFloor:
		qty = int(math.Floor(raw + lengthEpsilon))
	case models.RoundingRound:
		qty = int(math.Round(raw))
	default: // CEIL
		qty = int(math.Ceil(raw - lengthEpsilon))
	}

	if qty < m.MinQty {
		qty = m.MinQty
	}
	return qty
}
