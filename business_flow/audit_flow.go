package businessflow

import (
	"context"
	"fmt"

	"github.com/illumenate-lighting/configurator/app/dto"
	"github.com/illumenate-lighting/configurator/models"
	"github.com/illumenate-lighting/configurator/repository"
	"github.com/illumenate-lighting/configurator/utils"
)

// CoverageAuditFlow enumerates every selectable combination the catalog
// permits and reports the ones no item mapping covers. Catalog admins run this
// after edits so customers never hit a missing-mapping failure at quote time.
type CoverageAuditFlow interface {
	RunCoverageAudit(ctx context.Context) (*dto.CoverageAuditResponse, error)
}

// CoverageAuditFlowImpl implements the coverage audit business flow
type CoverageAuditFlowImpl struct {
	templateRepo repository.FixtureTemplateRepository
	tapeRepo     repository.TapeOfferingRepository
	itemMapRepo  repository.ItemMapRepository
}

// NewCoverageAuditFlow creates a new coverage audit flow instance
func NewCoverageAuditFlow(
	templateRepo repository.FixtureTemplateRepository,
	tapeRepo repository.TapeOfferingRepository,
	itemMapRepo repository.ItemMapRepository,
) CoverageAuditFlow {
	return &CoverageAuditFlowImpl{
		templateRepo: templateRepo,
		tapeRepo:     tapeRepo,
		itemMapRepo:  itemMapRepo,
	}
}

// RunCoverageAudit walks every active template's allowed combinations against
// the five mapping tables.
func (s *CoverageAuditFlowImpl) RunCoverageAudit(ctx context.Context) (*dto.CoverageAuditResponse, error) {
	templates, err := s.templateRepo.ListActive(ctx)
	if err != nil {
		return nil, NewBusinessError("TEMPLATE_LIST_FAILED", "Failed to list active templates", err)
	}

	var missing []dto.MissingMappingDTO
	checked := 0

	for _, template := range templates {
		byType := groupAllowedOptionCodes(template)

		// profile: template x finish
		for _, finish := range byType[models.OptionTypeFinish] {
			checked++
			m, err := s.itemMapRepo.ResolveProfile(ctx, template.Code, finish)
			if err != nil {
				return nil, NewBusinessError("AUDIT_LOOKUP_FAILED", "Profile mapping lookup failed", err)
			}
			if m == nil {
				missing = append(missing, dto.MissingMappingDTO{
					TemplateCode: template.Code,
					MapName:      "profile",
					Keys:         map[string]string{"template_code": template.Code, "finish_code": finish},
				})
			}
		}

		// lens: lens appearance x environment rating
		for _, lens := range byType[models.OptionTypeLensAppearance] {
			for _, env := range byType[models.OptionTypeEnvironmentRating] {
				checked++
				m, err := s.itemMapRepo.ResolveLens(ctx, lens, env)
				if err != nil {
					return nil, NewBusinessError("AUDIT_LOOKUP_FAILED", "Lens mapping lookup failed", err)
				}
				if m == nil {
					missing = append(missing, dto.MissingMappingDTO{
						TemplateCode: template.Code,
						MapName:      "lens",
						Keys:         map[string]string{"lens_appearance_code": lens, "environment_rating_code": env},
					})
				}
			}
		}

		// endcap: style x color
		for _, style := range byType[models.OptionTypeEndcapStyle] {
			for _, color := range byType[models.OptionTypeEndcapColor] {
				checked++
				m, err := s.itemMapRepo.ResolveEndcap(ctx, style, color)
				if err != nil {
					return nil, NewBusinessError("AUDIT_LOOKUP_FAILED", "Endcap mapping lookup failed", err)
				}
				if m == nil {
					missing = append(missing, dto.MissingMappingDTO{
						TemplateCode: template.Code,
						MapName:      "endcap",
						Keys:         map[string]string{"endcap_style_code": style, "endcap_color_code": color},
					})
				}
			}
		}

		// mounting: template x mounting method
		for _, mounting := range byType[models.OptionTypeMountingMethod] {
			checked++
			m, err := s.itemMapRepo.ResolveMounting(ctx, template.Code, mounting)
			if err != nil {
				return nil, NewBusinessError("AUDIT_LOOKUP_FAILED", "Mounting mapping lookup failed", err)
			}
			if m == nil {
				missing = append(missing, dto.MissingMappingDTO{
					TemplateCode: template.Code,
					MapName:      "mounting",
					Keys:         map[string]string{"template_code": template.Code, "mounting_method_code": mounting},
				})
			}
		}

		// leader: power feed x tape spec, via each allowed tape offering
		specSeen := make(map[uint]string)
		for _, at := range template.AllowedTapes {
			if !utils.IsTrue(at.IsActive) {
				continue
			}
			offering, err := s.tapeRepo.ByCode(ctx, at.TapeOfferingCode)
			if err != nil {
				return nil, NewBusinessError("AUDIT_LOOKUP_FAILED", "Tape offering lookup failed", err)
			}
			if offering == nil || offering.TapeSpec == nil {
				missing = append(missing, dto.MissingMappingDTO{
					TemplateCode: template.Code,
					MapName:      "tape_offering",
					Keys:         map[string]string{"tape_offering_code": at.TapeOfferingCode},
				})
				continue
			}
			specSeen[offering.TapeSpec.ID] = offering.TapeSpec.Code
		}
		for specID, specCode := range specSeen {
			for _, feed := range byType[models.OptionTypePowerFeedType] {
				checked++
				m, err := s.itemMapRepo.ResolveLeader(ctx, feed, specID)
				if err != nil {
					return nil, NewBusinessError("AUDIT_LOOKUP_FAILED", "Leader mapping lookup failed", err)
				}
				if m == nil {
					missing = append(missing, dto.MissingMappingDTO{
						TemplateCode: template.Code,
						MapName:      "leader",
						Keys:         map[string]string{"power_feed_type_code": feed, "tape_spec_code": specCode},
					})
				}
			}
		}
	}

	message := "All allowed combinations are covered"
	if len(missing) > 0 {
		message = fmt.Sprintf("%d combinations have no item mapping", len(missing))
	}

	return &dto.CoverageAuditResponse{
		Message:          message,
		GeneratedAt:      utils.UTCNowRFC3339(),
		TemplatesChecked: len(templates),
		MappingsChecked:  checked,
		MissingMappings:  missing,
	}, nil
}

func groupAllowedOptionCodes(template *models.FixtureTemplate) map[models.OptionType][]string {
	out := make(map[models.OptionType][]string)
	for _, opt := range template.AllowedOptions {
		if !utils.IsTrue(opt.IsActive) {
			continue
		}
		out[opt.OptionType] = append(out[opt.OptionType], opt.OptionCode)
	}
	return out
}
