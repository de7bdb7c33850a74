package businessflow

import (
	"context"
	"testing"

	testingutil "github.com/illumenate-lighting/configurator/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQuoteFlow(f *testingutil.CatalogFixtures) QuoteFlow {
	return NewQuoteFlow(f.Templates, f.Offerings, f.Attributes, f.PricingClass, f.Drivers, f.ItemMaps, f.Configs, nil, nil, nil)
}

func TestValidateAndQuoteComputesFullQuote(t *testing.T) {
	f := testingutil.NewCatalogFixtures()
	flow := newTestQuoteFlow(f)

	resp, err := flow.ValidateAndQuote(context.Background(), f.NewQuoteRequest(), NewClientMetadata("127.0.0.1", "test"))
	require.NoError(t, err)
	require.True(t, resp.IsValid)
	require.NotNil(t, resp.Configuration)

	cfg := resp.Configuration
	assert.InDelta(t, 955, cfg.InternalLengthMM, 1e-9)
	assert.InDelta(t, 950, cfg.TapeCutLengthMM, 1e-9)
	assert.InDelta(t, 980, cfg.ManufacturableLengthMM, 1e-9)
	assert.InDelta(t, 20, cfg.DifferenceMM, 1e-9)
	assert.Equal(t, 1, cfg.SegmentsCount)
	assert.Equal(t, 1, cfg.RunsCount)
	assert.Equal(t, "ASSEMBLED", cfg.AssemblyMode)
	assert.InDelta(t, 14.03, cfg.TotalWatts, 0.01)

	assert.Equal(t, "DRV-96-010V", cfg.DriverPlan.DriverItem)
	assert.Equal(t, 1, cfg.DriverPlan.UnitsRequired)

	// base 100 + length 31.17 + frosted lens 8 + tape class 25
	assert.InDelta(t, 164.17, cfg.MSRPTotal, 1e-9)
	var sum float64
	for _, line := range cfg.AdderBreakdown {
		sum += line.Amount
	}
	assert.InDelta(t, cfg.MSRPTotal, sum, 1e-9)

	assert.Equal(t, "TAPE-24-STD", cfg.ResolvedItems[RoleTape])
	assert.Equal(t, "PRF-REC-BLK", cfg.ResolvedItems[RoleProfile])
	assert.Equal(t, "DRV-96-010V", cfg.ResolvedItems[RoleDriver])

	assert.Equal(t, "ILL-REC-2835-3000K-standard-FROST-SURFACE-BLK-39.37", cfg.PartNumber)
	assert.Len(t, cfg.ConfigHash, 32)
	assert.NotEmpty(t, cfg.UUID)
	assert.Equal(t, 1, cfg.Qty)

	// An assembled fixture carries no field-assembly warning.
	assert.Empty(t, resp.Warnings)
}

func TestValidateAndQuoteWarnsOnShipPieces(t *testing.T) {
	f := testingutil.NewCatalogFixtures()
	flow := newTestQuoteFlow(f)

	req := f.NewQuoteRequest()
	req.RequestedLengthMM = 6000

	resp, err := flow.ValidateAndQuote(context.Background(), req, NewClientMetadata("127.0.0.1", "test"))
	require.NoError(t, err)

	// Too long to assemble: still a valid quote, with the notice attached.
	require.True(t, resp.IsValid)
	assert.Empty(t, resp.Problems)
	assert.Equal(t, "SHIP_PIECES", resp.Configuration.AssemblyMode)
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "field assembly")
	assert.Contains(t, resp.Warnings[0], "3 pieces")
}

func TestValidateAndQuoteRefreshesStoredQuoteOnCatalogChange(t *testing.T) {
	f := testingutil.NewCatalogFixtures()
	flow := newTestQuoteFlow(f)
	meta := NewClientMetadata("127.0.0.1", "test")

	first, err := flow.ValidateAndQuote(context.Background(), f.NewQuoteRequest(), meta)
	require.NoError(t, err)
	assert.InDelta(t, 164.17, first.Configuration.MSRPTotal, 1e-9)

	// Same selections after a base price change: same identity, fresh pricing.
	f.Template.BasePriceMSRP = 120

	second, err := flow.ValidateAndQuote(context.Background(), f.NewQuoteRequest(), meta)
	require.NoError(t, err)

	assert.Equal(t, first.Configuration.UUID, second.Configuration.UUID)
	assert.InDelta(t, 184.17, second.Configuration.MSRPTotal, 1e-9)
	require.Len(t, f.Configs.Configs, 1)
	assert.InDelta(t, 184.17, f.Configs.Configs[0].MSRPTotal, 1e-9)
}

func TestValidateAndQuoteInvalidTapeSpecWatts(t *testing.T) {
	f := testingutil.NewCatalogFixtures()
	f.TapeSpec.WattsPerFt = 0
	flow := newTestQuoteFlow(f)

	_, err := flow.ValidateAndQuote(context.Background(), f.NewQuoteRequest(), NewClientMetadata("127.0.0.1", "test"))
	require.Error(t, err)
	assert.True(t, IsTapeSpecInvalid(err))
}

func TestValidateAndQuoteIsIdempotentPerHash(t *testing.T) {
	f := testingutil.NewCatalogFixtures()
	flow := newTestQuoteFlow(f)
	meta := NewClientMetadata("127.0.0.1", "test")

	first, err := flow.ValidateAndQuote(context.Background(), f.NewQuoteRequest(), meta)
	require.NoError(t, err)
	require.True(t, first.IsValid)

	second, err := flow.ValidateAndQuote(context.Background(), f.NewQuoteRequest(), meta)
	require.NoError(t, err)
	require.True(t, second.IsValid)

	assert.Equal(t, first.Configuration.UUID, second.Configuration.UUID)
	assert.Equal(t, first.Configuration.ConfigHash, second.Configuration.ConfigHash)
	assert.Len(t, f.Configs.Configs, 1)
}

func TestValidateAndQuoteQtyDoesNotChangeIdentity(t *testing.T) {
	f := testingutil.NewCatalogFixtures()
	flow := newTestQuoteFlow(f)
	meta := NewClientMetadata("127.0.0.1", "test")

	first, err := flow.ValidateAndQuote(context.Background(), f.NewQuoteRequest(), meta)
	require.NoError(t, err)

	req := f.NewQuoteRequest()
	req.Qty = 5
	second, err := flow.ValidateAndQuote(context.Background(), req, meta)
	require.NoError(t, err)

	assert.Equal(t, first.Configuration.ConfigHash, second.Configuration.ConfigHash)
	assert.Equal(t, 5, second.Configuration.Qty)
	assert.Len(t, f.Configs.Configs, 1)
}

func TestValidateAndQuoteUnknownTemplate(t *testing.T) {
	f := testingutil.NewCatalogFixtures()
	flow := newTestQuoteFlow(f)

	req := f.NewQuoteRequest()
	req.TemplateCode = "CHN-MISSING"

	resp, err := flow.ValidateAndQuote(context.Background(), req, NewClientMetadata("127.0.0.1", "test"))
	require.NoError(t, err)

	assert.False(t, resp.IsValid)
	require.Len(t, resp.Problems, 1)
	assert.Contains(t, resp.Problems[0], "CHN-MISSING")
	assert.Empty(t, f.Configs.Configs)
}

func TestValidateAndQuoteOptionNotAllowed(t *testing.T) {
	f := testingutil.NewCatalogFixtures()
	flow := newTestQuoteFlow(f)

	req := f.NewQuoteRequest()
	req.FinishCode = "RED"

	resp, err := flow.ValidateAndQuote(context.Background(), req, NewClientMetadata("127.0.0.1", "test"))
	require.NoError(t, err)

	assert.False(t, resp.IsValid)
	require.NotEmpty(t, resp.Problems)
	assert.Contains(t, resp.Problems[0], `"RED"`)
}

func TestValidateAndQuoteCollectsAllProblems(t *testing.T) {
	f := testingutil.NewCatalogFixtures()
	flow := newTestQuoteFlow(f)

	req := f.NewQuoteRequest()
	req.FinishCode = "RED"
	req.MountingMethodCode = "PENDANT"

	resp, err := flow.ValidateAndQuote(context.Background(), req, NewClientMetadata("127.0.0.1", "test"))
	require.NoError(t, err)

	assert.False(t, resp.IsValid)
	assert.Len(t, resp.Problems, 2)
}

func TestValidateAndQuoteLengthBelowMinimum(t *testing.T) {
	f := testingutil.NewCatalogFixtures()
	flow := newTestQuoteFlow(f)

	req := f.NewQuoteRequest()
	req.RequestedLengthMM = 50

	resp, err := flow.ValidateAndQuote(context.Background(), req, NewClientMetadata("127.0.0.1", "test"))
	require.NoError(t, err)

	assert.False(t, resp.IsValid)
	require.Len(t, resp.Problems, 1)
	assert.Contains(t, resp.Problems[0], "below")
	assert.Empty(t, f.Configs.Configs)
}

func TestValidateAndQuoteMissingItemMapping(t *testing.T) {
	f := testingutil.NewCatalogFixtures()
	f.ItemMaps.Endcaps = nil
	flow := newTestQuoteFlow(f)

	resp, err := flow.ValidateAndQuote(context.Background(), f.NewQuoteRequest(), NewClientMetadata("127.0.0.1", "test"))
	require.NoError(t, err)

	assert.False(t, resp.IsValid)
	require.Len(t, resp.Problems, 1)
	assert.Contains(t, resp.Problems[0], "endcap")
}

func TestValidateAndQuoteNoEligibleDriver(t *testing.T) {
	f := testingutil.NewCatalogFixtures()
	f.Drivers.Drivers = nil
	flow := newTestQuoteFlow(f)

	resp, err := flow.ValidateAndQuote(context.Background(), f.NewQuoteRequest(), NewClientMetadata("127.0.0.1", "test"))
	require.NoError(t, err)

	assert.False(t, resp.IsValid)
	require.Len(t, resp.Problems, 1)
	assert.Contains(t, resp.Problems[0], "driver")
}

func TestValidateAndQuoteRejectsNegativeQty(t *testing.T) {
	f := testingutil.NewCatalogFixtures()
	flow := newTestQuoteFlow(f)

	req := f.NewQuoteRequest()
	req.Qty = -1

	resp, err := flow.ValidateAndQuote(context.Background(), req, NewClientMetadata("127.0.0.1", "test"))
	require.NoError(t, err)
	assert.False(t, resp.IsValid)
}

func TestGetConfiguration(t *testing.T) {
	f := testingutil.NewCatalogFixtures()
	flow := newTestQuoteFlow(f)

	quoted, err := flow.ValidateAndQuote(context.Background(), f.NewQuoteRequest(), NewClientMetadata("127.0.0.1", "test"))
	require.NoError(t, err)
	require.True(t, quoted.IsValid)

	resp, err := flow.GetConfiguration(context.Background(), quoted.Configuration.UUID)
	require.NoError(t, err)
	assert.Equal(t, quoted.Configuration.ConfigHash, resp.Configuration.ConfigHash)
}

func TestGetConfigurationNotFound(t *testing.T) {
	f := testingutil.NewCatalogFixtures()
	flow := newTestQuoteFlow(f)

	_, err := flow.GetConfiguration(context.Background(), "7f1e2c44-9f6e-4a8e-8f34-3a8b8f2f9c01")
	require.Error(t, err)
	assert.True(t, IsConfigurationNotFound(err))
}

func TestGetConfigurationInvalidUUID(t *testing.T) {
	f := testingutil.NewCatalogFixtures()
	flow := newTestQuoteFlow(f)

	_, err := flow.GetConfiguration(context.Background(), "not-a-uuid")
	require.Error(t, err)
}
