package businessflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/illumenate-lighting/configurator/models"
	"github.com/illumenate-lighting/configurator/repository"
	"github.com/xuri/excelize/v2"
)

// ExportFlow renders a configuration as a downloadable cut sheet workbook.
type ExportFlow interface {
	ExportCutSheet(ctx context.Context, configUUID string) (string, []byte, error)
}

// ExportFlowImpl implements the cut sheet export business flow
type ExportFlowImpl struct {
	configRepo repository.ConfigurationRepository
}

// NewExportFlow creates a new export flow instance
func NewExportFlow(configRepo repository.ConfigurationRepository) ExportFlow {
	return &ExportFlowImpl{configRepo: configRepo}
}

// ExportCutSheet builds an xlsx workbook with the configuration summary, the
// segment cut list, the run plan, and the BOM. Returns the filename and the
// workbook bytes.
func (f *ExportFlowImpl) ExportCutSheet(ctx context.Context, configUUID string) (string, []byte, error) {
	id, err := uuid.Parse(configUUID)
	if err != nil {
		return "", nil, NewBusinessError("INVALID_CONFIG_UUID", "Invalid configuration UUID", err)
	}

	configuration, err := f.configRepo.ByUUID(ctx, id)
	if err != nil {
		return "", nil, NewBusinessError("CONFIGURATION_LOOKUP_FAILED", "Failed to lookup configuration", err)
	}
	if configuration == nil {
		return "", nil, NewBusinessError("CONFIGURATION_NOT_FOUND", "Configuration not found", ErrConfigurationNotFound)
	}

	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	sheet := "Cut Sheet"
	xl.SetSheetName(xl.GetSheetName(0), sheet)

	row := 1
	writeRow := func(values ...any) {
		cellRef, _ := excelize.CoordinatesToCellName(1, row)
		_ = xl.SetSheetRow(sheet, cellRef, &values)
		row++
	}

	writeRow("Configuration", configuration.ConfigHash)
	writeRow("Template", configuration.TemplateCode)
	writeRow("Tape offering", configuration.TapeOfferingCode)
	writeRow("Requested length (mm)", configuration.RequestedLengthMM)
	writeRow("Tape cut length (mm)", configuration.TapeCutLengthMM)
	writeRow("Manufacturable length (mm)", configuration.ManufacturableLengthMM)
	writeRow("Assembly mode", configuration.AssemblyMode.String())
	writeRow("Total watts", configuration.TotalWatts)
	writeRow("MSRP", configuration.MSRPTotal)
	row++

	writeRow("Segments")
	writeRow("#", "length_mm")
	for _, seg := range configuration.Segments {
		writeRow(seg.Index, seg.LengthMM)
	}
	row++

	writeRow("Runs")
	writeRow("#", "length_mm", "watts")
	for _, run := range configuration.Runs {
		writeRow(run.Index, run.LengthMM, run.Watts)
	}
	row++

	writeRow("BOM")
	writeRow("role", "item", "qty", "uom")
	for _, line := range BuildBOMLines(configuration) {
		writeRow(line.Role, line.Item, line.Qty, line.UOM)
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return "", nil, NewBusinessError("EXCEL_WRITE_ERROR", "Failed to write Excel file", err)
	}

	filename := fmt.Sprintf("cut_sheet_%s.xlsx", shortHash(configuration))
	return filename, buf.Bytes(), nil
}

func shortHash(c *models.Configuration) string {
	if len(c.ConfigHash) > 8 {
		return c.ConfigHash[:8]
	}
	return c.ConfigHash
}
