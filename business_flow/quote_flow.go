// Package businessflow contains the core business logic and use cases for configuration workflows
package businessflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/illumenate-lighting/configurator/app/dto"
	"github.com/illumenate-lighting/configurator/config"
	"github.com/illumenate-lighting/configurator/models"
	"github.com/illumenate-lighting/configurator/repository"
	"github.com/illumenate-lighting/configurator/utils"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// QuoteFlow handles configuration validation, quoting, and persistence
type QuoteFlow interface {
	ValidateAndQuote(ctx context.Context, req *dto.QuoteRequest, metadata *ClientMetadata) (*dto.QuoteResponse, error)
	GetConfiguration(ctx context.Context, configUUID string) (*dto.GetConfigurationResponse, error)
}

// QuoteFlowImpl implements the quote business flow
type QuoteFlowImpl struct {
	templateRepo     repository.FixtureTemplateRepository
	tapeRepo         repository.TapeOfferingRepository
	attributeRepo    repository.OptionAttributeRepository
	pricingClassRepo repository.PricingClassRepository
	driverRepo       repository.DriverEligibilityRepository
	itemMapRepo      repository.ItemMapRepository
	configRepo       repository.ConfigurationRepository
	cacheConfig      *config.CacheConfig
	rc               *redis.Client
	db               *gorm.DB
}

// NewQuoteFlow creates a new quote flow instance
func NewQuoteFlow(
	templateRepo repository.FixtureTemplateRepository,
	tapeRepo repository.TapeOfferingRepository,
	attributeRepo repository.OptionAttributeRepository,
	pricingClassRepo repository.PricingClassRepository,
	driverRepo repository.DriverEligibilityRepository,
	itemMapRepo repository.ItemMapRepository,
	configRepo repository.ConfigurationRepository,
	db *gorm.DB,
	rc *redis.Client,
	cacheConfig *config.CacheConfig,
) QuoteFlow {
	return &QuoteFlowImpl{
		templateRepo:     templateRepo,
		tapeRepo:         tapeRepo,
		attributeRepo:    attributeRepo,
		pricingClassRepo: pricingClassRepo,
		driverRepo:       driverRepo,
		itemMapRepo:      itemMapRepo,
		configRepo:       configRepo,
		cacheConfig:      cacheConfig,
		rc:               rc,
		db:               db,
	}
}

func redisKey(cfg config.CacheConfig, suffix string) string {
	return cfg.RedisPrefix + suffix
}

// ValidateAndQuote runs the full engine over one request: catalog validation,
// length and run computation, driver selection, item resolution, pricing, and
// idempotent persistence keyed by the canonical hash. Domain problems come
// back inside the response with IsValid=false; only infrastructure failures
// surface as errors.
func (s *QuoteFlowImpl) ValidateAndQuote(ctx context.Context, req *dto.QuoteRequest, metadata *ClientMetadata) (*dto.QuoteResponse, error) {
	qty := req.Qty
	if qty == 0 {
		qty = 1
	}
	if qty < 1 {
		return invalidQuote(ErrQtyInvalid.Error()), nil
	}

	sel := Selections{
		TemplateCode:          req.TemplateCode,
		TapeOfferingCode:      req.TapeOfferingCode,
		RequestedLengthMM:     req.RequestedLengthMM,
		FinishCode:            req.FinishCode,
		LensAppearanceCode:    req.LensAppearanceCode,
		MountingMethodCode:    req.MountingMethodCode,
		EndcapStyleCode:       req.EndcapStyleCode,
		EndcapColorCode:       req.EndcapColorCode,
		PowerFeedTypeCode:     req.PowerFeedTypeCode,
		EnvironmentRatingCode: req.EnvironmentRatingCode,
	}

	configHash, err := ComputeConfigHash(sel)
	if err != nil {
		return nil, NewBusinessError("CONFIG_HASH_FAILED", "Failed to compute configuration hash", err)
	}

	if cached := s.cachedQuote(ctx, configHash); cached != nil {
		cached.Qty = qty
		return &dto.QuoteResponse{
			Message:       "Quote retrieved from cache",
			IsValid:       true,
			Warnings:      shipPiecesWarning(cached.AssemblyMode, cached.SegmentsCount),
			Configuration: cached,
		}, nil
	}

	template, offering, problems, err := s.validateCatalog(ctx, sel)
	if err != nil {
		return nil, err
	}
	if len(problems) > 0 {
		return invalidQuote(problems...), nil
	}

	selectedOptions := indexAllowedOptions(template, sel)
	spec := offering.TapeSpec

	endcapAttr, err := s.attributeRepo.ByTypeAndCode(ctx, models.OptionTypeEndcapStyle, sel.EndcapStyleCode)
	if err != nil {
		return nil, NewBusinessError("ATTRIBUTE_LOOKUP_FAILED", "Failed to lookup endcap style", err)
	}
	if endcapAttr == nil {
		return invalidQuote(fmt.Sprintf("unknown endcap style %q", sel.EndcapStyleCode)), nil
	}
	var endcapAllowance float64
	if endcapAttr.EndcapAllowanceMM != nil {
		endcapAllowance = *endcapAttr.EndcapAllowanceMM
	}

	lengthPlan, err := ComputeLengthPlan(template, spec, endcapAllowance, sel.RequestedLengthMM)
	if err != nil {
		var belowMin *LengthBelowMinimumError
		if errors.As(err, &belowMin) {
			return invalidQuote(belowMin.Error()), nil
		}
		return nil, NewBusinessError("LENGTH_PLAN_FAILED", "Failed to compute length plan", err)
	}

	runPlan, err := ComputeRunPlan(spec, lengthPlan.TapeCutLengthMM)
	if err != nil {
		return nil, NewBusinessError("TAPE_SPEC_INVALID", "Tape spec cannot be computed", err)
	}

	candidates, err := s.driverRepo.ListEligible(ctx, spec.InputVoltage, spec.DimmingProtocol)
	if err != nil {
		return nil, NewBusinessError("DRIVER_LOOKUP_FAILED", "Failed to lookup eligible drivers", err)
	}
	driverPlan, err := SelectDriver(candidates, runPlan.RunsCount, runPlan.TotalWatts, spec.InputVoltage, spec.DimmingProtocol)
	if err != nil {
		var noDriver *NoEligibleDriverError
		if errors.As(err, &noDriver) {
			return invalidQuote(noDriver.Error()), nil
		}
		return nil, NewBusinessError("DRIVER_SELECTION_FAILED", "Failed to select driver", err)
	}

	resolved, err := ResolveItems(ctx, s.itemMapRepo, spec, sel)
	if err != nil {
		var missing *MissingMappingError
		if errors.As(err, &missing) {
			return invalidQuote(missing.Error()), nil
		}
		return nil, NewBusinessError("ITEM_RESOLUTION_FAILED", "Failed to resolve items", err)
	}
	resolved.Items[RoleDriver] = driverPlan.DriverItem

	var pricingClass *models.PricingClass
	if offering.PricingClassCode != nil && *offering.PricingClassCode != "" {
		pricingClass, err = s.pricingClassRepo.ByCode(ctx, *offering.PricingClassCode)
		if err != nil {
			return nil, NewBusinessError("PRICING_CLASS_LOOKUP_FAILED", "Failed to lookup pricing class", err)
		}
		if pricingClass == nil {
			return invalidQuote(fmt.Sprintf("unknown pricing class %q", *offering.PricingClassCode)), nil
		}
	}

	pricing := ComputePricing(template, selectedOptions, pricingClass, lengthPlan)

	configuration := &models.Configuration{
		UUID:                   uuid.New(),
		ConfigHash:             configHash,
		TemplateCode:           sel.TemplateCode,
		TapeOfferingCode:       sel.TapeOfferingCode,
		RequestedLengthMM:      sel.RequestedLengthMM,
		FinishCode:             sel.FinishCode,
		LensAppearanceCode:     sel.LensAppearanceCode,
		MountingMethodCode:     sel.MountingMethodCode,
		EndcapStyleCode:        sel.EndcapStyleCode,
		EndcapColorCode:        sel.EndcapColorCode,
		PowerFeedTypeCode:      sel.PowerFeedTypeCode,
		EnvironmentRatingCode:  sel.EnvironmentRatingCode,
		Qty:                    qty,
		InternalLengthMM:       lengthPlan.InternalLengthMM,
		TapeCutLengthMM:        lengthPlan.TapeCutLengthMM,
		ManufacturableLengthMM: lengthPlan.ManufacturableLengthMM,
		DifferenceMM:           lengthPlan.DifferenceMM,
		SegmentsCount:          lengthPlan.SegmentsCount,
		RunsCount:              runPlan.RunsCount,
		TotalWatts:             runPlan.TotalWatts,
		AssemblyMode:           lengthPlan.AssemblyMode,
		Segments:               lengthPlan.Segments,
		Runs:                   runPlan.Runs,
		DriverPlan:             *driverPlan,
		ResolvedItems:          resolved.Items,
		MSRPTotal:              pricing.MSRPTotal,
		AdderBreakdown:         pricing.Breakdown,
		PartNumber:             PartNumberPreview(template, offering, sel),
		EngineVersion:          utils.EngineVersion,
		CreatedAt:              utils.UTCNow(),
	}

	var persisted *models.Configuration
	err = repository.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var txErr error
		persisted, txErr = s.configRepo.UpsertByHash(txCtx, configuration)
		return txErr
	})
	if err != nil {
		return nil, NewBusinessError("CONFIGURATION_UPSERT_FAILED", "Failed to persist configuration", err)
	}

	out := toConfigurationDTO(persisted)
	out.Qty = qty
	s.cacheQuote(ctx, configHash, out)

	return &dto.QuoteResponse{
		Message:       "Quote computed successfully",
		IsValid:       true,
		Warnings:      shipPiecesWarning(out.AssemblyMode, out.SegmentsCount),
		Configuration: out,
	}, nil
}

// shipPiecesWarning carries the field-assembly notice on quotes that exceed
// the assembled maximum. Informational only; the quote stays valid.
func shipPiecesWarning(assemblyMode string, segmentsCount int) []string {
	if assemblyMode != models.AssemblyModeShipPieces.String() {
		return nil
	}
	return []string{fmt.Sprintf("fixture exceeds the assembled maximum length and ships as %d pieces for field assembly", segmentsCount)}
}

// GetConfiguration retrieves a previously quoted configuration by its UUID
func (s *QuoteFlowImpl) GetConfiguration(ctx context.Context, configUUID string) (*dto.GetConfigurationResponse, error) {
	id, err := uuid.Parse(configUUID)
	if err != nil {
		return nil, NewBusinessError("INVALID_CONFIG_UUID", "Invalid configuration UUID", err)
	}

	configuration, err := s.configRepo.ByUUID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("CONFIGURATION_LOOKUP_FAILED", "Failed to lookup configuration", err)
	}
	if configuration == nil {
		return nil, NewBusinessError("CONFIGURATION_NOT_FOUND", "Configuration not found", ErrConfigurationNotFound)
	}

	return &dto.GetConfigurationResponse{
		Message:       "Configuration retrieved",
		Configuration: toConfigurationDTO(configuration),
	}, nil
}

// validateCatalog checks template, tape, and option selections against the
// catalog. Returned problems are customer-facing validation messages.
func (s *QuoteFlowImpl) validateCatalog(ctx context.Context, sel Selections) (*models.FixtureTemplate, *models.TapeOffering, []string, error) {
	var problems []string

	template, err := s.templateRepo.ByCode(ctx, sel.TemplateCode)
	if err != nil {
		return nil, nil, nil, NewBusinessError("TEMPLATE_LOOKUP_FAILED", "Failed to lookup fixture template", err)
	}
	if template == nil {
		return nil, nil, []string{fmt.Sprintf("unknown fixture template %q", sel.TemplateCode)}, nil
	}
	if !utils.IsTrue(template.IsActive) {
		return nil, nil, []string{fmt.Sprintf("fixture template %q is inactive", sel.TemplateCode)}, nil
	}

	offering, err := s.tapeRepo.ByCode(ctx, sel.TapeOfferingCode)
	if err != nil {
		return nil, nil, nil, NewBusinessError("TAPE_LOOKUP_FAILED", "Failed to lookup tape offering", err)
	}
	if offering == nil {
		return nil, nil, []string{fmt.Sprintf("unknown tape offering %q", sel.TapeOfferingCode)}, nil
	}
	if !utils.IsTrue(offering.IsActive) {
		problems = append(problems, fmt.Sprintf("tape offering %q is inactive", sel.TapeOfferingCode))
	}
	if offering.TapeSpec == nil {
		return nil, nil, nil, NewBusinessError("TAPE_SPEC_MISSING", "Tape offering has no tape spec", nil)
	}

	tapeAllowed := false
	for _, at := range template.AllowedTapes {
		if at.TapeOfferingCode == sel.TapeOfferingCode && utils.IsTrue(at.IsActive) {
			tapeAllowed = true
			break
		}
	}
	if !tapeAllowed {
		problems = append(problems, fmt.Sprintf("tape offering %q is not allowed for template %q", sel.TapeOfferingCode, sel.TemplateCode))
	}

	for _, optionType := range models.SelectableOptionTypes {
		code := selectionFor(sel, optionType)
		if findAllowedOption(template, optionType, code) == nil {
			problems = append(problems, fmt.Sprintf("%s %q is not allowed for template %q", optionType, code, sel.TemplateCode))
		}
	}

	return template, offering, problems, nil
}

func (s *QuoteFlowImpl) cachedQuote(ctx context.Context, configHash string) *dto.ConfigurationDTO {
	if s.rc == nil || s.cacheConfig == nil || !s.cacheConfig.Enabled {
		return nil
	}

	key := redisKey(*s.cacheConfig, utils.QuoteCacheKeyPrefix+configHash)
	bs, err := s.rc.Get(ctx, key).Bytes()
	if err != nil || len(bs) == 0 {
		return nil
	}

	var out dto.ConfigurationDTO
	if err := json.Unmarshal(bs, &out); err != nil {
		return nil
	}
	return &out
}

func (s *QuoteFlowImpl) cacheQuote(ctx context.Context, configHash string, out *dto.ConfigurationDTO) {
	if s.rc == nil || s.cacheConfig == nil || !s.cacheConfig.Enabled {
		return
	}

	key := redisKey(*s.cacheConfig, utils.QuoteCacheKeyPrefix+configHash)
	if bs, err := json.Marshal(out); err == nil {
		_ = s.rc.Set(ctx, key, bs, utils.QuoteCacheTTL).Err()
	}
}

func invalidQuote(problems ...string) *dto.QuoteResponse {
	return &dto.QuoteResponse{
		Message:  "Configuration is not valid",
		IsValid:  false,
		Problems: problems,
	}
}

func selectionFor(sel Selections, optionType models.OptionType) string {
	switch optionType {
	case models.OptionTypeFinish:
		return sel.FinishCode
	case models.OptionTypeLensAppearance:
		return sel.LensAppearanceCode
	case models.OptionTypeMountingMethod:
		return sel.MountingMethodCode
	case models.OptionTypeEndcapStyle:
		return sel.EndcapStyleCode
	case models.OptionTypeEndcapColor:
		return sel.EndcapColorCode
	case models.OptionTypePowerFeedType:
		return sel.PowerFeedTypeCode
	case models.OptionTypeEnvironmentRating:
		return sel.EnvironmentRatingCode
	default:
		return ""
	}
}

func findAllowedOption(template *models.FixtureTemplate, optionType models.OptionType, code string) *models.TemplateAllowedOption {
	for i := range template.AllowedOptions {
		opt := &template.AllowedOptions[i]
		if opt.OptionType == optionType && opt.OptionCode == code && utils.IsTrue(opt.IsActive) {
			return opt
		}
	}
	return nil
}

func indexAllowedOptions(template *models.FixtureTemplate, sel Selections) map[models.OptionType]*models.TemplateAllowedOption {
	out := make(map[models.OptionType]*models.TemplateAllowedOption, len(models.SelectableOptionTypes))
	for _, optionType := range models.SelectableOptionTypes {
		if opt := findAllowedOption(template, optionType, selectionFor(sel, optionType)); opt != nil {
			out[optionType] = opt
		}
	}
	return out
}

func toConfigurationDTO(c *models.Configuration) *dto.ConfigurationDTO {
	segments := make([]dto.SegmentDTO, 0, len(c.Segments))
	for _, s := range c.Segments {
		segments = append(segments, dto.SegmentDTO{Index: s.Index, LengthMM: s.LengthMM})
	}
	runs := make([]dto.RunDTO, 0, len(c.Runs))
	for _, r := range c.Runs {
		runs = append(runs, dto.RunDTO{Index: r.Index, LengthMM: r.LengthMM, Watts: r.Watts})
	}
	breakdown := make([]dto.AdderLineDTO, 0, len(c.AdderBreakdown))
	for _, line := range c.AdderBreakdown {
		breakdown = append(breakdown, dto.AdderLineDTO{Label: line.Label, Amount: line.Amount})
	}

	return &dto.ConfigurationDTO{
		UUID:                   c.UUID.String(),
		ConfigHash:             c.ConfigHash,
		TemplateCode:           c.TemplateCode,
		TapeOfferingCode:       c.TapeOfferingCode,
		RequestedLengthMM:      c.RequestedLengthMM,
		FinishCode:             c.FinishCode,
		LensAppearanceCode:     c.LensAppearanceCode,
		MountingMethodCode:     c.MountingMethodCode,
		EndcapStyleCode:        c.EndcapStyleCode,
		EndcapColorCode:        c.EndcapColorCode,
		PowerFeedTypeCode:      c.PowerFeedTypeCode,
		EnvironmentRatingCode:  c.EnvironmentRatingCode,
		Qty:                    c.Qty,
		InternalLengthMM:       c.InternalLengthMM,
		TapeCutLengthMM:        c.TapeCutLengthMM,
		ManufacturableLengthMM: c.ManufacturableLengthMM,
		DifferenceMM:           c.DifferenceMM,
		SegmentsCount:          c.SegmentsCount,
		RunsCount:              c.RunsCount,
		TotalWatts:             c.TotalWatts,
		AssemblyMode:           c.AssemblyMode.String(),
		Segments:               segments,
		Runs:                   runs,
		DriverPlan: dto.DriverPlanDTO{
			DriverItem:     c.DriverPlan.DriverItem,
			UnitsRequired:  c.DriverPlan.UnitsRequired,
			RatedWatts:     c.DriverPlan.RatedWatts,
			UsableWatts:    c.DriverPlan.UsableWatts,
			OutputsPerUnit: c.DriverPlan.OutputsPerUnit,
			UnitCost:       c.DriverPlan.UnitCost,
		},
		ResolvedItems:  c.ResolvedItems,
		MSRPTotal:      c.MSRPTotal,
		AdderBreakdown: breakdown,
		PartNumber:     c.PartNumber,
		ItemCode:       c.ItemCode,
		EngineVersion:  c.EngineVersion,
		CreatedAt:      c.CreatedAt.Format(time.RFC3339),
	}
}
