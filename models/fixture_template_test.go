package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingLengthBasisValid(t *testing.T) {
	assert.True(t, PricingBasisTapeCutLength.Valid())
	assert.True(t, PricingBasisManufacturableLength.Valid())
	assert.False(t, PricingLengthBasis("requested_length").Valid())
}

func TestOptionTypeValid(t *testing.T) {
	for _, optionType := range SelectableOptionTypes {
		assert.True(t, optionType.Valid(), optionType)
	}
	assert.True(t, OptionTypeEndcapColor.Valid())
	assert.False(t, OptionType("cct").Valid())
}

func TestSelectableOptionTypesExcludeEndcapColor(t *testing.T) {
	// Endcap color has no MSRP adder and is validated through the endcap item
	// map, so it never appears in the allowed-option checks.
	for _, optionType := range SelectableOptionTypes {
		assert.NotEqual(t, OptionTypeEndcapColor, optionType)
	}
}

func TestOptionTypeScanAndValue(t *testing.T) {
	var optionType OptionType
	require.NoError(t, optionType.Scan("finish"))
	assert.Equal(t, OptionTypeFinish, optionType)

	v, err := OptionTypeLensAppearance.Value()
	require.NoError(t, err)
	assert.Equal(t, "lens_appearance", v)

	_, err = OptionType("cct").Value()
	assert.Error(t, err)
}
