package businessflow

import (
	"context"
	"strings"
	"testing"

	"github.com/illumenate-lighting/configurator/app/dto"
	testingutil "github.com/illumenate-lighting/configurator/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quotedFixtures runs one quote through the flow so a persisted configuration
// exists for artifact and export tests.
func quotedFixtures(t *testing.T) (*testingutil.CatalogFixtures, string) {
	t.Helper()

	f := testingutil.NewCatalogFixtures()
	flow := newTestQuoteFlow(f)

	resp, err := flow.ValidateAndQuote(context.Background(), f.NewQuoteRequest(), NewClientMetadata("127.0.0.1", "test"))
	require.NoError(t, err)
	require.True(t, resp.IsValid)

	return f, resp.Configuration.UUID
}

func TestGenerateArtifacts(t *testing.T) {
	f, configUUID := quotedFixtures(t)
	flow := NewManufacturingFlow(f.Configs, nil)

	resp, err := flow.GenerateArtifacts(context.Background(), &dto.GenerateArtifactsRequest{ConfigUUID: configUUID}, NewClientMetadata("127.0.0.1", "test"))
	require.NoError(t, err)

	assert.False(t, resp.AlreadyExisted)

	hash := f.Configs.Configs[0].ConfigHash
	expectedItemCode := "ILL-" + strings.ToUpper(hash[:8])
	assert.Equal(t, expectedItemCode, resp.ItemCode)
	assert.Equal(t, "BOM-"+expectedItemCode, resp.BOMNo)

	byRole := make(map[string]dto.BOMLineDTO, len(resp.BOMLines))
	for _, line := range resp.BOMLines {
		byRole[line.Role] = line
	}

	// 950mm of tape is 3.12ft
	assert.Equal(t, "TAPE-24-STD", byRole[RoleTape].Item)
	assert.InDelta(t, 3.12, byRole[RoleTape].Qty, 1e-9)
	assert.Equal(t, "Foot", byRole[RoleTape].UOM)

	assert.InDelta(t, 1, byRole[RoleProfile].Qty, 1e-9)
	assert.InDelta(t, 4, byRole[RoleEndcap].Qty, 1e-9)
	assert.InDelta(t, 1, byRole[RoleLeader].Qty, 1e-9)
	assert.Equal(t, "DRV-96-010V", byRole[RoleDriver].Item)
	assert.InDelta(t, 1, byRole[RoleDriver].Qty, 1e-9)
	assert.Equal(t, "MNT-CLIP", byRole[RoleMounting].Item)

	assert.Contains(t, resp.TravelerNotes, "Segment 1")
	assert.Contains(t, resp.TravelerNotes, "DRV-96-010V")

	persisted := f.Configs.Configs[0]
	require.NotNil(t, persisted.ItemCode)
	assert.Equal(t, expectedItemCode, *persisted.ItemCode)
}

func TestGenerateArtifactsLeaderPerRun(t *testing.T) {
	f := testingutil.NewCatalogFixtures()
	quoteFlow := newTestQuoteFlow(f)

	// 6000mm cuts to 5950mm of tape, which splits across two runs.
	req := f.NewQuoteRequest()
	req.RequestedLengthMM = 6000
	quoted, err := quoteFlow.ValidateAndQuote(context.Background(), req, NewClientMetadata("127.0.0.1", "test"))
	require.NoError(t, err)
	require.True(t, quoted.IsValid)
	require.Equal(t, 2, quoted.Configuration.RunsCount)

	flow := NewManufacturingFlow(f.Configs, nil)
	resp, err := flow.GenerateArtifacts(context.Background(), &dto.GenerateArtifactsRequest{ConfigUUID: quoted.Configuration.UUID}, NewClientMetadata("127.0.0.1", "test"))
	require.NoError(t, err)

	var leader dto.BOMLineDTO
	for _, line := range resp.BOMLines {
		if line.Role == RoleLeader {
			leader = line
		}
	}
	assert.InDelta(t, 2, leader.Qty, 1e-9)
	assert.Equal(t, "Each", leader.UOM)
}

func TestGenerateArtifactsIsIdempotent(t *testing.T) {
	f, configUUID := quotedFixtures(t)
	flow := NewManufacturingFlow(f.Configs, nil)
	req := &dto.GenerateArtifactsRequest{ConfigUUID: configUUID}
	meta := NewClientMetadata("127.0.0.1", "test")

	first, err := flow.GenerateArtifacts(context.Background(), req, meta)
	require.NoError(t, err)
	require.False(t, first.AlreadyExisted)

	second, err := flow.GenerateArtifacts(context.Background(), req, meta)
	require.NoError(t, err)

	assert.True(t, second.AlreadyExisted)
	assert.Equal(t, first.ItemCode, second.ItemCode)
	assert.Equal(t, first.BOMNo, second.BOMNo)
}

func TestGenerateArtifactsConfigurationNotFound(t *testing.T) {
	f := testingutil.NewCatalogFixtures()
	flow := NewManufacturingFlow(f.Configs, nil)

	_, err := flow.GenerateArtifacts(context.Background(), &dto.GenerateArtifactsRequest{ConfigUUID: "7f1e2c44-9f6e-4a8e-8f34-3a8b8f2f9c01"}, NewClientMetadata("127.0.0.1", "test"))
	require.Error(t, err)
	assert.True(t, IsConfigurationNotFound(err))
}

func TestItemCodeForHash(t *testing.T) {
	assert.Equal(t, "ILL-AB12CD34", ItemCodeForHash("ab12cd34ef56ab12cd34ef56ab12cd34"))
	assert.Equal(t, "ILL-ABC", ItemCodeForHash("abc"))
}

func TestExportCutSheet(t *testing.T) {
	f, configUUID := quotedFixtures(t)
	flow := NewExportFlow(f.Configs)

	filename, content, err := flow.ExportCutSheet(context.Background(), configUUID)
	require.NoError(t, err)

	hash := f.Configs.Configs[0].ConfigHash
	assert.Equal(t, "cut_sheet_"+hash[:8]+".xlsx", filename)
	assert.NotEmpty(t, content)
	// xlsx files are zip archives
	assert.Equal(t, []byte{'P', 'K'}, content[:2])
}

func TestExportCutSheetNotFound(t *testing.T) {
	f := testingutil.NewCatalogFixtures()
	flow := NewExportFlow(f.Configs)

	_, _, err := flow.ExportCutSheet(context.Background(), "7f1e2c44-9f6e-4a8e-8f34-3a8b8f2f9c01")
	require.Error(t, err)
	assert.True(t, IsConfigurationNotFound(err))
}
