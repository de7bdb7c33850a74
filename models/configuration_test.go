package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemblyModeValid(t *testing.T) {
	assert.True(t, AssemblyModeAssembled.Valid())
	assert.True(t, AssemblyModeShipPieces.Valid())
	assert.False(t, AssemblyMode("FOLDED").Valid())
}

func TestAssemblyModeValueRejectsInvalid(t *testing.T) {
	_, err := AssemblyMode("FOLDED").Value()
	assert.Error(t, err)

	v, err := AssemblyModeAssembled.Value()
	require.NoError(t, err)
	assert.Equal(t, "ASSEMBLED", v)
}

func TestAssemblyModeScan(t *testing.T) {
	var m AssemblyMode
	require.NoError(t, m.Scan("SHIP_PIECES"))
	assert.Equal(t, AssemblyModeShipPieces, m)

	require.NoError(t, m.Scan([]byte("ASSEMBLED")))
	assert.Equal(t, AssemblyModeAssembled, m)

	require.NoError(t, m.Scan(nil))
	assert.Equal(t, AssemblyMode(""), m)

	assert.Error(t, m.Scan(42))
}

func TestSegmentListRoundTrip(t *testing.T) {
	segments := SegmentList{
		{Index: 1, LengthMM: 2000},
		{Index: 2, LengthMM: 995},
	}

	v, err := segments.Value()
	require.NoError(t, err)

	var out SegmentList
	require.NoError(t, out.Scan(v))
	assert.Equal(t, segments, out)
}

func TestSegmentListNilValue(t *testing.T) {
	var segments SegmentList
	v, err := segments.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestRunListScanFromString(t *testing.T) {
	var runs RunList
	require.NoError(t, runs.Scan(`[{"index":1,"length_mm":3048,"watts":45.0}]`))

	require.Len(t, runs, 1)
	assert.Equal(t, 1, runs[0].Index)
	assert.InDelta(t, 3048, runs[0].LengthMM, 1e-9)
	assert.InDelta(t, 45.0, runs[0].Watts, 1e-9)
}

func TestDriverPlanRoundTrip(t *testing.T) {
	cost := 42.0
	plan := DriverPlan{
		DriverItem:     "DRV-96-010V",
		UnitsRequired:  2,
		RatedWatts:     96,
		UsableWatts:    76.8,
		OutputsPerUnit: 1,
		UnitCost:       &cost,
	}

	v, err := plan.Value()
	require.NoError(t, err)

	var out DriverPlan
	require.NoError(t, out.Scan(v))
	assert.Equal(t, plan, out)
}

func TestAdderBreakdownTotal(t *testing.T) {
	breakdown := AdderBreakdown{
		{Label: "base", Amount: 100},
		{Label: "length", Amount: 31.17},
		{Label: "lens_appearance:FROST", Amount: 8},
		{Label: "tape_class:PC-STD", Amount: 25},
	}

	assert.InDelta(t, 164.17, breakdown.Total(), 1e-9)
	assert.Zero(t, AdderBreakdown(nil).Total())
}

func TestAdderBreakdownRoundTrip(t *testing.T) {
	breakdown := AdderBreakdown{{Label: "base", Amount: 100}}

	v, err := breakdown.Value()
	require.NoError(t, err)

	var out AdderBreakdown
	require.NoError(t, out.Scan(v))
	assert.Equal(t, breakdown, out)
}

func TestResolvedItemListRoundTrip(t *testing.T) {
	items := ResolvedItemList{
		"tape":    "TAPE-24-STD",
		"profile": "PRF-REC-BLK",
		"driver":  "DRV-96-010V",
	}

	v, err := items.Value()
	require.NoError(t, err)

	var out ResolvedItemList
	require.NoError(t, out.Scan(v))
	assert.Equal(t, items, out)
}
