package businessflow

import (
	"testing"

	testingutil "github.com/illumenate-lighting/configurator/testing"
	"github.com/stretchr/testify/assert"
)

func TestPartNumberPreview(t *testing.T) {
	f := testingutil.NewCatalogFixtures()

	sel := testSelections()

	// 1000mm is 39.37in
	assert.Equal(t, "ILL-REC-2835-3000K-standard-FROST-SURFACE-BLK-39.37", PartNumberPreview(f.Template, f.Offering, sel))
}

func TestPartNumberPreviewWholeInchLength(t *testing.T) {
	f := testingutil.NewCatalogFixtures()

	sel := testSelections()
	sel.RequestedLengthMM = 2540

	assert.Equal(t, "ILL-REC-2835-3000K-standard-FROST-SURFACE-BLK-100", PartNumberPreview(f.Template, f.Offering, sel))
}
