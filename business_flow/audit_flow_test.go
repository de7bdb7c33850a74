package businessflow

import (
	"context"
	"testing"

	"github.com/illumenate-lighting/configurator/models"
	testingutil "github.com/illumenate-lighting/configurator/testing"
	"github.com/illumenate-lighting/configurator/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuditFlow(f *testingutil.CatalogFixtures) CoverageAuditFlow {
	return NewCoverageAuditFlow(f.Templates, f.Offerings, f.ItemMaps)
}

func TestRunCoverageAuditAllCovered(t *testing.T) {
	f := testingutil.NewCatalogFixtures()
	flow := newTestAuditFlow(f)

	resp, err := flow.RunCoverageAudit(context.Background())
	require.NoError(t, err)

	assert.Empty(t, resp.MissingMappings)
	assert.Equal(t, 1, resp.TemplatesChecked)
	// 2 finishes, 1 lens x environment, 1 mounting, 1 leader
	assert.Equal(t, 5, resp.MappingsChecked)
	assert.Equal(t, "All allowed combinations are covered", resp.Message)
}

func TestRunCoverageAuditReportsMissing(t *testing.T) {
	f := testingutil.NewCatalogFixtures()
	// Drop the white profile mapping while WHT stays an allowed finish.
	f.ItemMaps.Profiles = f.ItemMaps.Profiles[:1]
	flow := newTestAuditFlow(f)

	resp, err := flow.RunCoverageAudit(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.MissingMappings, 1)
	missing := resp.MissingMappings[0]
	assert.Equal(t, "profile", missing.MapName)
	assert.Equal(t, testingutil.TestTemplateCode, missing.TemplateCode)
	assert.Equal(t, "WHT", missing.Keys["finish_code"])
	assert.Contains(t, resp.Message, "1 combinations")
}

func TestRunCoverageAuditWalksEndcapCombinations(t *testing.T) {
	f := testingutil.NewCatalogFixtures()
	f.Template.AllowedOptions = append(f.Template.AllowedOptions,
		models.TemplateAllowedOption{OptionType: models.OptionTypeEndcapColor, OptionCode: testingutil.TestEndcapColorCode, IsActive: utils.ToPtr(true)},
		models.TemplateAllowedOption{OptionType: models.OptionTypeEndcapColor, OptionCode: "WHT", IsActive: utils.ToPtr(true)},
	)
	flow := newTestAuditFlow(f)

	resp, err := flow.RunCoverageAudit(context.Background())
	require.NoError(t, err)

	// EC-SQ x BLK is mapped, EC-SQ x WHT is not.
	require.Len(t, resp.MissingMappings, 1)
	assert.Equal(t, "endcap", resp.MissingMappings[0].MapName)
	assert.Equal(t, "WHT", resp.MissingMappings[0].Keys["endcap_color_code"])
}

func TestRunCoverageAuditSkipsInactiveTemplates(t *testing.T) {
	f := testingutil.NewCatalogFixtures()
	f.Template.IsActive = utils.ToPtr(false)
	flow := newTestAuditFlow(f)

	resp, err := flow.RunCoverageAudit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, resp.TemplatesChecked)
	assert.Equal(t, 0, resp.MappingsChecked)
	assert.Empty(t, resp.MissingMappings)
}

func TestRunCoverageAuditUnknownTapeOffering(t *testing.T) {
	f := testingutil.NewCatalogFixtures()
	f.Offerings.Offerings = nil
	flow := newTestAuditFlow(f)

	resp, err := flow.RunCoverageAudit(context.Background())
	require.NoError(t, err)

	require.NotEmpty(t, resp.MissingMappings)
	assert.Equal(t, "tape_offering", resp.MissingMappings[0].MapName)
}
