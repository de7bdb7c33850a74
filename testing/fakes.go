package testing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/illumenate-lighting/configurator/models"
	"github.com/illumenate-lighting/configurator/utils"
)

// In-memory repository fakes. They mirror the lookup semantics of the real
// Postgres-backed repositories (missing rows come back as nil, nil; code
// lookups return the latest matching row) so flows can be exercised without a
// database.

// FakeFixtureTemplateRepository is an in-memory FixtureTemplateRepository
type FakeFixtureTemplateRepository struct {
	Templates []*models.FixtureTemplate
}

func (r *FakeFixtureTemplateRepository) ByID(ctx context.Context, id uint) (*models.FixtureTemplate, error) {
	for _, t := range r.Templates {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (r *FakeFixtureTemplateRepository) Save(ctx context.Context, entity *models.FixtureTemplate) error {
	if entity.ID == 0 {
		entity.ID = uint(len(r.Templates) + 1)
	}
	r.Templates = append(r.Templates, entity)
	return nil
}

func (r *FakeFixtureTemplateRepository) SaveBatch(ctx context.Context, entities []*models.FixtureTemplate) error {
	for _, e := range entities {
		if err := r.Save(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *FakeFixtureTemplateRepository) ByCode(ctx context.Context, code string) (*models.FixtureTemplate, error) {
	var found *models.FixtureTemplate
	for _, t := range r.Templates {
		if t.Code == code {
			found = t
		}
	}
	return found, nil
}

func (r *FakeFixtureTemplateRepository) ListActive(ctx context.Context) ([]*models.FixtureTemplate, error) {
	var active []*models.FixtureTemplate
	for _, t := range r.Templates {
		if utils.IsTrue(t.IsActive) {
			active = append(active, t)
		}
	}
	return active, nil
}

// FakeTapeOfferingRepository is an in-memory TapeOfferingRepository
type FakeTapeOfferingRepository struct {
	Offerings []*models.TapeOffering
}

func (r *FakeTapeOfferingRepository) ByID(ctx context.Context, id uint) (*models.TapeOffering, error) {
	for _, o := range r.Offerings {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (r *FakeTapeOfferingRepository) Save(ctx context.Context, entity *models.TapeOffering) error {
	if entity.ID == 0 {
		entity.ID = uint(len(r.Offerings) + 1)
	}
	r.Offerings = append(r.Offerings, entity)
	return nil
}

func (r *FakeTapeOfferingRepository) SaveBatch(ctx context.Context, entities []*models.TapeOffering) error {
	for _, e := range entities {
		if err := r.Save(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *FakeTapeOfferingRepository) ByCode(ctx context.Context, code string) (*models.TapeOffering, error) {
	var found *models.TapeOffering
	for _, o := range r.Offerings {
		if o.Code == code {
			found = o
		}
	}
	return found, nil
}

// FakeOptionAttributeRepository is an in-memory OptionAttributeRepository
type FakeOptionAttributeRepository struct {
	Attributes []*models.OptionAttribute
}

func (r *FakeOptionAttributeRepository) ByID(ctx context.Context, id uint) (*models.OptionAttribute, error) {
	for _, a := range r.Attributes {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (r *FakeOptionAttributeRepository) Save(ctx context.Context, entity *models.OptionAttribute) error {
	if entity.ID == 0 {
		entity.ID = uint(len(r.Attributes) + 1)
	}
	r.Attributes = append(r.Attributes, entity)
	return nil
}

func (r *FakeOptionAttributeRepository) SaveBatch(ctx context.Context, entities []*models.OptionAttribute) error {
	for _, e := range entities {
		if err := r.Save(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *FakeOptionAttributeRepository) ByTypeAndCode(ctx context.Context, optionType models.OptionType, code string) (*models.OptionAttribute, error) {
	var found *models.OptionAttribute
	for _, a := range r.Attributes {
		if a.OptionType == optionType && a.Code == code {
			found = a
		}
	}
	return found, nil
}

// FakePricingClassRepository is an in-memory PricingClassRepository
type FakePricingClassRepository struct {
	Classes []*models.PricingClass
}

func (r *FakePricingClassRepository) ByID(ctx context.Context, id uint) (*models.PricingClass, error) {
	for _, c := range r.Classes {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *FakePricingClassRepository) Save(ctx context.Context, entity *models.PricingClass) error {
	if entity.ID == 0 {
		entity.ID = uint(len(r.Classes) + 1)
	}
	r.Classes = append(r.Classes, entity)
	return nil
}

func (r *FakePricingClassRepository) SaveBatch(ctx context.Context, entities []*models.PricingClass) error {
	for _, e := range entities {
		if err := r.Save(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *FakePricingClassRepository) ByCode(ctx context.Context, code string) (*models.PricingClass, error) {
	var found *models.PricingClass
	for _, c := range r.Classes {
		if c.Code == code {
			found = c
		}
	}
	return found, nil
}

// FakeDriverEligibilityRepository is an in-memory DriverEligibilityRepository
type FakeDriverEligibilityRepository struct {
	Drivers []*models.DriverEligibility
}

func (r *FakeDriverEligibilityRepository) ByID(ctx context.Context, id uint) (*models.DriverEligibility, error) {
	for _, d := range r.Drivers {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}

func (r *FakeDriverEligibilityRepository) Save(ctx context.Context, entity *models.DriverEligibility) error {
	if entity.ID == 0 {
		entity.ID = uint(len(r.Drivers) + 1)
	}
	r.Drivers = append(r.Drivers, entity)
	return nil
}

func (r *FakeDriverEligibilityRepository) SaveBatch(ctx context.Context, entities []*models.DriverEligibility) error {
	for _, e := range entities {
		if err := r.Save(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *FakeDriverEligibilityRepository) ListEligible(ctx context.Context, outputVoltage float64, dimmingProtocol string) ([]*models.DriverEligibility, error) {
	var eligible []*models.DriverEligibility
	for _, d := range r.Drivers {
		if d.OutputVoltage == outputVoltage && d.DimmingProtocol == dimmingProtocol && utils.IsTrue(d.IsActive) {
			eligible = append(eligible, d)
		}
	}
	return eligible, nil
}

// FakeItemMapRepository is an in-memory ItemMapRepository
type FakeItemMapRepository struct {
	Profiles []*models.ProfileItemMap
	Lenses   []*models.LensItemMap
	Endcaps  []*models.EndcapItemMap
	Leaders  []*models.LeaderItemMap
	Mounting []*models.MountingAccessoryMap
}

func (r *FakeItemMapRepository) ResolveProfile(ctx context.Context, templateCode, finishCode string) (*models.ProfileItemMap, error) {
	var found *models.ProfileItemMap
	for _, m := range r.Profiles {
		if m.TemplateCode == templateCode && m.FinishCode == finishCode && utils.IsTrue(m.IsActive) {
			found = m
		}
	}
	return found, nil
}

func (r *FakeItemMapRepository) ResolveLens(ctx context.Context, lensAppearanceCode, environmentRatingCode string) (*models.LensItemMap, error) {
	var found *models.LensItemMap
	for _, m := range r.Lenses {
		if m.LensAppearanceCode == lensAppearanceCode && m.EnvironmentRatingCode == environmentRatingCode && utils.IsTrue(m.IsActive) {
			found = m
		}
	}
	return found, nil
}

func (r *FakeItemMapRepository) ResolveEndcap(ctx context.Context, endcapStyleCode, endcapColorCode string) (*models.EndcapItemMap, error) {
	var found *models.EndcapItemMap
	for _, m := range r.Endcaps {
		if m.EndcapStyleCode == endcapStyleCode && m.EndcapColorCode == endcapColorCode && utils.IsTrue(m.IsActive) {
			found = m
		}
	}
	return found, nil
}

func (r *FakeItemMapRepository) ResolveLeader(ctx context.Context, powerFeedTypeCode string, tapeSpecID uint) (*models.LeaderItemMap, error) {
	var found *models.LeaderItemMap
	for _, m := range r.Leaders {
		if m.PowerFeedTypeCode == powerFeedTypeCode && m.TapeSpecID == tapeSpecID && utils.IsTrue(m.IsActive) {
			found = m
		}
	}
	return found, nil
}

func (r *FakeItemMapRepository) ResolveMounting(ctx context.Context, templateCode, mountingMethodCode string) (*models.MountingAccessoryMap, error) {
	var found *models.MountingAccessoryMap
	for _, m := range r.Mounting {
		if m.TemplateCode == templateCode && m.MountingMethodCode == mountingMethodCode && utils.IsTrue(m.IsActive) {
			found = m
		}
	}
	return found, nil
}

// FakeConfigurationRepository is an in-memory ConfigurationRepository
type FakeConfigurationRepository struct {
	Configs []*models.Configuration
}

func (r *FakeConfigurationRepository) ByID(ctx context.Context, id uint) (*models.Configuration, error) {
	for _, c := range r.Configs {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *FakeConfigurationRepository) Save(ctx context.Context, entity *models.Configuration) error {
	if entity.ID == 0 {
		entity.ID = uint(len(r.Configs) + 1)
	}
	r.Configs = append(r.Configs, entity)
	return nil
}

func (r *FakeConfigurationRepository) SaveBatch(ctx context.Context, entities []*models.Configuration) error {
	for _, e := range entities {
		if err := r.Save(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *FakeConfigurationRepository) ByHash(ctx context.Context, configHash string) (*models.Configuration, error) {
	var found *models.Configuration
	for _, c := range r.Configs {
		if c.ConfigHash == configHash {
			found = c
		}
	}
	return found, nil
}

func (r *FakeConfigurationRepository) ByUUID(ctx context.Context, id uuid.UUID) (*models.Configuration, error) {
	var found *models.Configuration
	for _, c := range r.Configs {
		if c.UUID == id {
			found = c
		}
	}
	return found, nil
}

func (r *FakeConfigurationRepository) UpsertByHash(ctx context.Context, config *models.Configuration) (*models.Configuration, error) {
	existing, err := r.ByHash(ctx, config.ConfigHash)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		// Refresh the computed, resolved, and pricing fields in place; id, uuid,
		// created_at, and manufacturing artifacts keep their stored values.
		existing.Qty = config.Qty
		existing.InternalLengthMM = config.InternalLengthMM
		existing.TapeCutLengthMM = config.TapeCutLengthMM
		existing.ManufacturableLengthMM = config.ManufacturableLengthMM
		existing.DifferenceMM = config.DifferenceMM
		existing.SegmentsCount = config.SegmentsCount
		existing.RunsCount = config.RunsCount
		existing.TotalWatts = config.TotalWatts
		existing.AssemblyMode = config.AssemblyMode
		existing.Segments = config.Segments
		existing.Runs = config.Runs
		existing.DriverPlan = config.DriverPlan
		existing.ResolvedItems = config.ResolvedItems
		existing.MSRPTotal = config.MSRPTotal
		existing.AdderBreakdown = config.AdderBreakdown
		existing.PartNumber = config.PartNumber
		existing.EngineVersion = config.EngineVersion
		existing.UpdatedAt = utils.UTCNowPtr()
		return existing, nil
	}
	if err := r.Save(ctx, config); err != nil {
		return nil, err
	}
	return config, nil
}

func (r *FakeConfigurationRepository) UpdateArtifacts(ctx context.Context, configID uint, itemCode, bomNo, travelerNotes string) error {
	for _, c := range r.Configs {
		if c.ID == configID {
			c.ItemCode = &itemCode
			c.BOMNo = &bomNo
			c.TravelerNotes = &travelerNotes
			c.UpdatedAt = utils.UTCNowPtr()
			return nil
		}
	}
	return fmt.Errorf("configuration %d not found", configID)
}
