package businessflow

import (
	"strconv"
	"strings"

	"github.com/illumenate-lighting/configurator/models"
	"github.com/illumenate-lighting/configurator/utils"
)

// PartNumberPreview derives the human-readable part number for a selection set:
// ILL-{profile family}-{LED package}-{CCT}-{output level}-{lens}-{mount}-{finish}-{length in}.
// Unlike the config hash this is a catalog-facing label and is not guaranteed
// unique across revisions.
func PartNumberPreview(template *models.FixtureTemplate, offering *models.TapeOffering, sel Selections) string {
	lengthIn := strconv.FormatFloat(roundCents(sel.RequestedLengthMM/utils.MMPerInch), 'f', -1, 64)

	parts := []string{
		"ILL",
		template.DefaultProfileFamily,
		offering.LEDPackage,
		offering.CCT,
		offering.OutputLevel,
		sel.LensAppearanceCode,
		sel.MountingMethodCode,
		sel.FinishCode,
		lengthIn,
	}
	return strings.Join(parts, "-")
}
