package testing

import (
	"github.com/illumenate-lighting/configurator/app/dto"
	"github.com/illumenate-lighting/configurator/models"
	"github.com/illumenate-lighting/configurator/utils"
)

// CatalogFixtures bundles pre-seeded repository fakes for flow tests. The seed
// catalog is one recessed channel template with a 24V tape, full option maps,
// and two eligible drivers, sized so a 1000mm request produces a single
// assembled segment on one run.
type CatalogFixtures struct {
	Templates    *FakeFixtureTemplateRepository
	Offerings    *FakeTapeOfferingRepository
	Attributes   *FakeOptionAttributeRepository
	PricingClass *FakePricingClassRepository
	Drivers      *FakeDriverEligibilityRepository
	ItemMaps     *FakeItemMapRepository
	Configs      *FakeConfigurationRepository
	Template     *models.FixtureTemplate
	TapeSpec     *models.TapeSpec
	Offering     *models.TapeOffering
}

// Standard seed catalog codes
const (
	TestTemplateCode    = "CHN-REC-01"
	TestOfferingCode    = "T24-30K-STD"
	TestPricingClass    = "PC-STD"
	TestFinishCode      = "BLK"
	TestLensCode        = "FROST"
	TestMountingCode    = "SURFACE"
	TestEndcapStyleCode = "EC-SQ"
	TestEndcapColorCode = "BLK"
	TestPowerFeedCode   = "END"
	TestEnvironmentCode = "DRY"
)

// NewCatalogFixtures builds the seed catalog
func NewCatalogFixtures() *CatalogFixtures {
	tapeSpec := &models.TapeSpec{
		ID:              1,
		Code:            "TS-24-STD",
		InputVoltage:    24,
		WattsPerFt:      4.5,
		LumensPerFt:     250,
		CutIncrementMM:  50,
		DimmingProtocol: "0-10V",
		TapeItem:        "TAPE-24-STD",
	}

	offering := &models.TapeOffering{
		ID:               1,
		Code:             TestOfferingCode,
		TapeSpecID:       tapeSpec.ID,
		CCT:              "3000K",
		CRI:              "90",
		LEDPackage:       "2835",
		OutputLevel:      "standard",
		PricingClassCode: utils.ToPtr(TestPricingClass),
		IsActive:         utils.ToPtr(true),
		TapeSpec:         tapeSpec,
	}

	template := &models.FixtureTemplate{
		ID:                   1,
		Code:                 TestTemplateCode,
		TemplateName:         "Recessed Channel 01",
		DefaultProfileFamily: "REC",
		ProfileStockLengthMM: 2000,
		AssembledMaxLengthMM: 2590,
		LeaderAllowanceMM:    15,
		BasePriceMSRP:        100,
		PricePerFtMSRP:       10,
		PricingLengthBasis:   models.PricingBasisTapeCutLength,
		IsActive:             utils.ToPtr(true),
		AllowedOptions: []models.TemplateAllowedOption{
			{ID: 1, TemplateID: 1, OptionType: models.OptionTypeFinish, OptionCode: TestFinishCode, IsActive: utils.ToPtr(true), MSRPAdder: 0},
			{ID: 2, TemplateID: 1, OptionType: models.OptionTypeFinish, OptionCode: "WHT", IsActive: utils.ToPtr(true), MSRPAdder: 12},
			{ID: 3, TemplateID: 1, OptionType: models.OptionTypeLensAppearance, OptionCode: TestLensCode, IsActive: utils.ToPtr(true), MSRPAdder: 8},
			{ID: 4, TemplateID: 1, OptionType: models.OptionTypeMountingMethod, OptionCode: TestMountingCode, IsActive: utils.ToPtr(true), MSRPAdder: 0},
			{ID: 5, TemplateID: 1, OptionType: models.OptionTypeEndcapStyle, OptionCode: TestEndcapStyleCode, IsActive: utils.ToPtr(true), MSRPAdder: 0},
			{ID: 6, TemplateID: 1, OptionType: models.OptionTypePowerFeedType, OptionCode: TestPowerFeedCode, IsActive: utils.ToPtr(true), MSRPAdder: 0},
			{ID: 7, TemplateID: 1, OptionType: models.OptionTypeEnvironmentRating, OptionCode: TestEnvironmentCode, IsActive: utils.ToPtr(true), MSRPAdder: 0},
		},
		AllowedTapes: []models.TemplateAllowedTape{
			{ID: 1, TemplateID: 1, TapeOfferingCode: TestOfferingCode, EnvironmentRatingCode: TestEnvironmentCode, IsActive: utils.ToPtr(true)},
		},
	}

	f := &CatalogFixtures{
		Templates: &FakeFixtureTemplateRepository{Templates: []*models.FixtureTemplate{template}},
		Offerings: &FakeTapeOfferingRepository{Offerings: []*models.TapeOffering{offering}},
		Attributes: &FakeOptionAttributeRepository{Attributes: []*models.OptionAttribute{
			{ID: 1, OptionType: models.OptionTypeFinish, Code: TestFinishCode, Label: "Black", IsActive: utils.ToPtr(true)},
			{ID: 2, OptionType: models.OptionTypeFinish, Code: "WHT", Label: "White", IsActive: utils.ToPtr(true)},
			{ID: 3, OptionType: models.OptionTypeLensAppearance, Code: TestLensCode, Label: "Frosted", IsActive: utils.ToPtr(true)},
			{ID: 4, OptionType: models.OptionTypeMountingMethod, Code: TestMountingCode, Label: "Surface mount", IsActive: utils.ToPtr(true)},
			{ID: 5, OptionType: models.OptionTypeEndcapStyle, Code: TestEndcapStyleCode, Label: "Square endcap", IsActive: utils.ToPtr(true), EndcapAllowanceMM: utils.ToPtr(15.0)},
			{ID: 6, OptionType: models.OptionTypeEndcapColor, Code: TestEndcapColorCode, Label: "Black", IsActive: utils.ToPtr(true)},
			{ID: 7, OptionType: models.OptionTypePowerFeedType, Code: TestPowerFeedCode, Label: "End feed", IsActive: utils.ToPtr(true)},
			{ID: 8, OptionType: models.OptionTypeEnvironmentRating, Code: TestEnvironmentCode, Label: "Dry location", IsActive: utils.ToPtr(true)},
		}},
		PricingClass: &FakePricingClassRepository{Classes: []*models.PricingClass{
			{ID: 1, Code: TestPricingClass, Description: "Standard output tape", DefaultAdder: 25},
		}},
		Drivers: &FakeDriverEligibilityRepository{Drivers: []*models.DriverEligibility{
			{ID: 1, DriverItem: "DRV-96-010V", OutputVoltage: 24, DimmingProtocol: "0-10V", RatedWatts: 96, UsableLoadFactor: 0.8, OutputsPerUnit: 1, UnitCost: utils.ToPtr(42.0), IsActive: utils.ToPtr(true)},
			{ID: 2, DriverItem: "DRV-240-010V", OutputVoltage: 24, DimmingProtocol: "0-10V", RatedWatts: 240, UsableLoadFactor: 0.8, OutputsPerUnit: 2, UnitCost: utils.ToPtr(95.0), IsActive: utils.ToPtr(true)},
		}},
		ItemMaps: &FakeItemMapRepository{
			Profiles: []*models.ProfileItemMap{
				{ID: 1, TemplateCode: TestTemplateCode, FinishCode: TestFinishCode, Item: "PRF-REC-BLK", IsActive: utils.ToPtr(true)},
				{ID: 2, TemplateCode: TestTemplateCode, FinishCode: "WHT", Item: "PRF-REC-WHT", IsActive: utils.ToPtr(true)},
			},
			Lenses: []*models.LensItemMap{
				{ID: 1, LensAppearanceCode: TestLensCode, EnvironmentRatingCode: TestEnvironmentCode, Item: "LENS-FROST-DRY", IsActive: utils.ToPtr(true)},
			},
			Endcaps: []*models.EndcapItemMap{
				{ID: 1, EndcapStyleCode: TestEndcapStyleCode, EndcapColorCode: TestEndcapColorCode, Item: "EC-SQ-BLK", IsActive: utils.ToPtr(true)},
			},
			Leaders: []*models.LeaderItemMap{
				{ID: 1, PowerFeedTypeCode: TestPowerFeedCode, TapeSpecID: tapeSpec.ID, Item: "LDR-END-24", LeaderLengthMM: 150, IsActive: utils.ToPtr(true)},
			},
			Mounting: []*models.MountingAccessoryMap{
				{ID: 1, TemplateCode: TestTemplateCode, MountingMethodCode: TestMountingCode, Item: "MNT-CLIP", QtyRuleType: models.QtyRulePerXMM, QtyRuleValue: 500, MinQty: 2, Rounding: models.RoundingCeil, IsActive: utils.ToPtr(true)},
			},
		},
		Configs:  &FakeConfigurationRepository{},
		Template: template,
		TapeSpec: tapeSpec,
		Offering: offering,
	}

	return f
}

// NewQuoteRequest returns a request against the seed catalog. 1000mm with the
// 15mm endcaps and 15mm leader allowance cuts to 950mm on the 50mm increment.
func (f *CatalogFixtures) NewQuoteRequest() *dto.QuoteRequest {
	return &dto.QuoteRequest{
		TemplateCode:          TestTemplateCode,
		TapeOfferingCode:      TestOfferingCode,
		RequestedLengthMM:     1000,
		FinishCode:            TestFinishCode,
		LensAppearanceCode:    TestLensCode,
		MountingMethodCode:    TestMountingCode,
		EndcapStyleCode:       TestEndcapStyleCode,
		EndcapColorCode:       TestEndcapColorCode,
		PowerFeedTypeCode:     TestPowerFeedCode,
		EnvironmentRatingCode: TestEnvironmentCode,
	}
}

// SeedTestDB writes the seed catalog into a Postgres test database so the real
// repositories can be exercised against it.
func (f *CatalogFixtures) SeedTestDB(tdb *TestDB) error {
	if err := tdb.DB.Create(f.TapeSpec).Error; err != nil {
		return err
	}
	if err := tdb.DB.Create(f.Offering).Error; err != nil {
		return err
	}
	if err := tdb.DB.Create(f.Template).Error; err != nil {
		return err
	}
	for _, a := range f.Attributes.Attributes {
		if err := tdb.DB.Create(a).Error; err != nil {
			return err
		}
	}
	for _, c := range f.PricingClass.Classes {
		if err := tdb.DB.Create(c).Error; err != nil {
			return err
		}
	}
	for _, d := range f.Drivers.Drivers {
		if err := tdb.DB.Create(d).Error; err != nil {
			return err
		}
	}
	for _, m := range f.ItemMaps.Profiles {
		if err := tdb.DB.Create(m).Error; err != nil {
			return err
		}
	}
	for _, m := range f.ItemMaps.Lenses {
		if err := tdb.DB.Create(m).Error; err != nil {
			return err
		}
	}
	for _, m := range f.ItemMaps.Endcaps {
		if err := tdb.DB.Create(m).Error; err != nil {
			return err
		}
	}
	for _, m := range f.ItemMaps.Leaders {
		if err := tdb.DB.Create(m).Error; err != nil {
			return err
		}
	}
	for _, m := range f.ItemMaps.Mounting {
		if err := tdb.DB.Create(m).Error; err != nil {
			return err
		}
	}
	return nil
}
