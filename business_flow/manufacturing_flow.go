package businessflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/illumenate-lighting/configurator/app/dto"
	"github.com/illumenate-lighting/configurator/models"
	"github.com/illumenate-lighting/configurator/repository"
	"github.com/illumenate-lighting/configurator/utils"
	"gorm.io/gorm"
)

// ManufacturingFlow turns a persisted configuration into manufacturing
// artifacts: a configured item code, a BOM, and traveler notes for the floor.
// Generation is idempotent per configuration hash.
type ManufacturingFlow interface {
	GenerateArtifacts(ctx context.Context, req *dto.GenerateArtifactsRequest, metadata *ClientMetadata) (*dto.GenerateArtifactsResponse, error)
}

// ManufacturingFlowImpl implements the manufacturing artifact business flow
type ManufacturingFlowImpl struct {
	configRepo repository.ConfigurationRepository
	db         *gorm.DB
}

// NewManufacturingFlow creates a new manufacturing flow instance
func NewManufacturingFlow(configRepo repository.ConfigurationRepository, db *gorm.DB) ManufacturingFlow {
	return &ManufacturingFlowImpl{
		configRepo: configRepo,
		db:         db,
	}
}

// GenerateArtifacts builds the item code, BOM lines, and traveler notes for a
// configuration. A second call for the same configuration returns the
// artifacts generated the first time.
func (s *ManufacturingFlowImpl) GenerateArtifacts(ctx context.Context, req *dto.GenerateArtifactsRequest, metadata *ClientMetadata) (*dto.GenerateArtifactsResponse, error) {
	id, err := uuid.Parse(req.ConfigUUID)
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

	if configuration.ItemCode != nil {
		resp := buildArtifactsResponse(configuration, *configuration.ItemCode, derefOr(configuration.BOMNo, ""), derefOr(configuration.TravelerNotes, ""))
		resp.Message = "Artifacts already generated"
		resp.AlreadyExisted = true
		return resp, nil
	}

	itemCode := ItemCodeForHash(configuration.ConfigHash)
	bomNo := "BOM-" + itemCode
	notes := buildTravelerNotes(configuration)

	err = repository.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		return s.configRepo.UpdateArtifacts(txCtx, configuration.ID, itemCode, bomNo, notes)
	})
	if err != nil {
		return nil, NewBusinessError("ARTIFACT_PERSIST_FAILED", "Failed to persist manufacturing artifacts", err)
	}

	resp := buildArtifactsResponse(configuration, itemCode, bomNo, notes)
	resp.Message = "Artifacts generated successfully"
	return resp, nil
}

// ItemCodeForHash derives the configured-item code from the first eight hex
// characters of the canonical hash.
func ItemCodeForHash(configHash string) string {
	short := configHash
	if len(short) > 8 {
		short = short[:8]
	}
	return utils.ItemCodePrefix + strings.ToUpper(short)
}

// BuildBOMLines derives per-fixture component quantities from the computed
// plans. Tape and lens quantities are expressed in feet, everything else in
// whole units.
func BuildBOMLines(c *models.Configuration) []dto.BOMLineDTO {
	lines := []dto.BOMLineDTO{
		{Role: RoleTape, Item: c.ResolvedItems[RoleTape], Qty: roundQty(c.TapeCutLengthMM / utils.MMPerFoot), UOM: "Foot"},
		{Role: RoleProfile, Item: c.ResolvedItems[RoleProfile], Qty: float64(c.SegmentsCount), UOM: "Each"},
		{Role: RoleLens, Item: c.ResolvedItems[RoleLens], Qty: roundQty(c.ManufacturableLengthMM / utils.MMPerFoot), UOM: "Foot"},
		// Two installed endcaps plus a spare pair ships with every fixture.
		{Role: RoleEndcap, Item: c.ResolvedItems[RoleEndcap], Qty: 4, UOM: "Each"},
		// One leader feeds each electrically independent run.
		{Role: RoleLeader, Item: c.ResolvedItems[RoleLeader], Qty: float64(c.RunsCount), UOM: "Each"},
		{Role: RoleDriver, Item: c.DriverPlan.DriverItem, Qty: float64(c.DriverPlan.UnitsRequired), UOM: "Each"},
	}

	if item, ok := c.ResolvedItems[RoleMounting]; ok && item != "" {
		// Quantity rules were evaluated at quote time against the same geometry;
		// default to one set per segment when the rule row is no longer loaded.
		lines = append(lines, dto.BOMLineDTO{Role: RoleMounting, Item: item, Qty: float64(c.SegmentsCount), UOM: "Each"})
	}

	return lines
}

func buildTravelerNotes(c *models.Configuration) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Configured fixture %s (%s)\n", c.TemplateCode, c.ConfigHash[:8])
	fmt.Fprintf(&b, "Requested length: %.1fmm; tape cut: %.1fmm; overall: %.1fmm\n", c.RequestedLengthMM, c.TapeCutLengthMM, c.ManufacturableLengthMM)
	fmt.Fprintf(&b, "Assembly: %s in %d segment(s)\n", c.AssemblyMode, c.SegmentsCount)
	for _, seg := range c.Segments {
		fmt.Fprintf(&b, "  Segment %d: cut profile and lens to %.1fmm\n", seg.Index, seg.LengthMM)
	}
	fmt.Fprintf(&b, "Electrical: %d run(s), %.2fW total on %s\n", c.RunsCount, c.TotalWatts, c.TapeOfferingCode)
	for _, run := range c.Runs {
		fmt.Fprintf(&b, "  Run %d: %.1fmm tape, %.2fW\n", run.Index, run.LengthMM, run.Watts)
	}
	fmt.Fprintf(&b, "Driver: %d x %s\n", c.DriverPlan.UnitsRequired, c.DriverPlan.DriverItem)
	fmt.Fprintf(&b, "Finish %s, lens %s, endcaps %s/%s, feed %s\n", c.FinishCode, c.LensAppearanceCode, c.EndcapStyleCode, c.EndcapColorCode, c.PowerFeedTypeCode)
	return b.String()
}

func buildArtifactsResponse(c *models.Configuration, itemCode, bomNo, notes string) *dto.GenerateArtifactsResponse {
	return &dto.GenerateArtifactsResponse{
		ConfigUUID:    c.UUID.String(),
		ConfigHash:    c.ConfigHash,
		ItemCode:      itemCode,
		BOMNo:         bomNo,
		BOMLines:      BuildBOMLines(c),
		TravelerNotes: notes,
	}
}

func roundQty(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
