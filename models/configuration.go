package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AssemblyMode says whether the fixture ships as one assembled unit or as
// field-joined pieces.
type AssemblyMode string

const (
	AssemblyModeAssembled  AssemblyMode = "ASSEMBLED"
	AssemblyModeShipPieces AssemblyMode = "SHIP_PIECES"
)

// String returns the string representation of the assembly mode
func (m AssemblyMode) String() string {
	return string(m)
}

// Valid checks if the assembly mode is valid
func (m AssemblyMode) Valid() bool {
	switch m {
	case AssemblyModeAssembled, AssemblyModeShipPieces:
		return true
	default:
		return false
	}
}

// Scan implements the sql.Scanner interface for AssemblyMode
func (m *AssemblyMode) Scan(value any) error {
	if value == nil {
		*m = ""
		return nil
	}

	switch v := value.(type) {
	case string:
		*m = AssemblyMode(v)
	case []byte:
		*m = AssemblyMode(string(v))
	default:
		return fmt.Errorf("cannot scan %T into AssemblyMode", value)
	}

	return nil
}

// Value implements the driver.Valuer interface for AssemblyMode
func (m AssemblyMode) Value() (driver.Value, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid AssemblyMode: %s", m)
	}
	return string(m), nil
}

// Segment is one physical piece cut from profile stock.
type Segment struct {
	Index    int     `json:"index"`
	LengthMM float64 `json:"length_mm"`
}

// SegmentList is stored as a JSONB column.
type SegmentList []Segment

// Value implements the driver.Valuer interface for SegmentList
func (s SegmentList) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements the sql.Scanner interface for SegmentList
func (s *SegmentList) Scan(value any) error {
	if value == nil {
		*s = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into SegmentList", value)
	}

	return json.Unmarshal(data, s)
}

// Run is one electrically independent tape run with its load.
type Run struct {
	Index    int     `json:"index"`
	LengthMM float64 `json:"length_mm"`
	Watts    float64 `json:"watts"`
}

// RunList is stored as a JSONB column.
type RunList []Run

// Value implements the driver.Valuer interface for RunList
func (r RunList) Value() (driver.Value, error) {
	if r == nil {
		return nil, nil
	}
	return json.Marshal(r)
}

// Scan implements the sql.Scanner interface for RunList
func (r *RunList) Scan(value any) error {
	if value == nil {
		*r = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into RunList", value)
	}

	return json.Unmarshal(data, r)
}

// DriverPlan is the driver selection result stored as a JSONB column.
type DriverPlan struct {
	DriverItem     string   `json:"driver_item"`
	UnitsRequired  int      `json:"units_required"`
	RatedWatts     float64  `json:"rated_watts"`
	UsableWatts    float64  `json:"usable_watts"`
	OutputsPerUnit int      `json:"outputs_per_unit"`
	UnitCost       *float64 `json:"unit_cost,omitempty"`
}

// Value implements the driver.Valuer interface for DriverPlan
func (p DriverPlan) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements the sql.Scanner interface for DriverPlan
func (p *DriverPlan) Scan(value any) error {
	if value == nil {
		*p = DriverPlan{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into DriverPlan", value)
	}

	return json.Unmarshal(data, p)
}

// AdderLine is one priced component of the MSRP breakdown.
type AdderLine struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// AdderBreakdown is the full MSRP breakdown stored as a JSONB column. The line
// amounts sum exactly to the configuration's msrp_total.
type AdderBreakdown []AdderLine

// Value implements the driver.Valuer interface for AdderBreakdown
func (b AdderBreakdown) Value() (driver.Value, error) {
	if b == nil {
		return nil, nil
	}
	return json.Marshal(b)
}

// Scan implements the sql.Scanner interface for AdderBreakdown
func (b *AdderBreakdown) Scan(value any) error {
	if value == nil {
		*b = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into AdderBreakdown", value)
	}

	return json.Unmarshal(data, b)
}

// Total sums the breakdown lines.
func (b AdderBreakdown) Total() float64 {
	var total float64
	for _, line := range b {
		total += line.Amount
	}
	return total
}

// ResolvedItemList maps BOM roles to concrete stock items, stored as JSONB.
type ResolvedItemList map[string]string

// Value implements the driver.Valuer interface for ResolvedItemList
func (l ResolvedItemList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface for ResolvedItemList
func (l *ResolvedItemList) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into ResolvedItemList", value)
	}

	return json.Unmarshal(data, l)
}

// Configuration is the persisted outcome of a successful quote. Identity is the
// canonical hash of the configuration-defining inputs; two requests with the
// same selections land on the same row.
type Configuration struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UUID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_configurations_uuid" json:"uuid"`
	ConfigHash string    `gorm:"size:32;not null;uniqueIndex:uk_configurations_config_hash" json:"config_hash"`

	// Selections
	TemplateCode          string  `gorm:"size:64;not null;index:idx_configurations_template_code" json:"template_code"`
	TapeOfferingCode      string  `gorm:"size:64;not null" json:"tape_offering_code"`
	RequestedLengthMM     float64 `gorm:"type:numeric(10,2);not null" json:"requested_length_mm"`
	FinishCode            string  `gorm:"size:64;not null" json:"finish_code"`
	LensAppearanceCode    string  `gorm:"size:64;not null" json:"lens_appearance_code"`
	MountingMethodCode    string  `gorm:"size:64;not null" json:"mounting_method_code"`
	EndcapStyleCode       string  `gorm:"size:64;not null" json:"endcap_style_code"`
	EndcapColorCode       string  `gorm:"size:64;not null" json:"endcap_color_code"`
	PowerFeedTypeCode     string  `gorm:"size:64;not null" json:"power_feed_type_code"`
	EnvironmentRatingCode string  `gorm:"size:64;not null" json:"environment_rating_code"`
	Qty                   int     `gorm:"not null;default:1" json:"qty"`

	// Computed lengths
	InternalLengthMM       float64 `gorm:"type:numeric(10,2);not null" json:"internal_length_mm"`
	TapeCutLengthMM        float64 `gorm:"type:numeric(10,2);not null" json:"tape_cut_length_mm"`
	ManufacturableLengthMM float64 `gorm:"type:numeric(10,2);not null" json:"manufacturable_length_mm"`
	DifferenceMM           float64 `gorm:"type:numeric(10,2);not null;default:0" json:"difference_mm"`
	SegmentsCount          int     `gorm:"not null" json:"segments_count"`
	RunsCount              int     `gorm:"not null" json:"runs_count"`
	TotalWatts             float64 `gorm:"type:numeric(10,2);not null" json:"total_watts"`

	AssemblyMode AssemblyMode `gorm:"size:16;not null" json:"assembly_mode"`

	// Plans
	Segments      SegmentList      `gorm:"type:jsonb" json:"segments"`
	Runs          RunList          `gorm:"type:jsonb" json:"runs"`
	DriverPlan    DriverPlan       `gorm:"type:jsonb" json:"driver_plan"`
	ResolvedItems ResolvedItemList `gorm:"type:jsonb" json:"resolved_items"`

	// Pricing snapshot
	MSRPTotal      float64        `gorm:"type:numeric(12,2);not null" json:"msrp_total"`
	AdderBreakdown AdderBreakdown `gorm:"type:jsonb" json:"adder_breakdown"`

	// Catalog-facing label derived at quote time; not an identity.
	PartNumber string `gorm:"size:128;not null;default:''" json:"part_number"`

	// Manufacturing artifacts, set once generation has run for this hash.
	ItemCode      *string `gorm:"size:64;uniqueIndex:uk_configurations_item_code" json:"item_code,omitempty"`
	BOMNo         *string `gorm:"size:64" json:"bom_no,omitempty"`
	TravelerNotes *string `gorm:"type:text" json:"traveler_notes,omitempty"`

	EngineVersion string     `gorm:"size:16;not null" json:"engine_version"`
	CreatedAt     time.Time  `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

func (Configuration) TableName() string {
	return "configurations"
}

// ConfigurationFilter defines filter criteria for configuration queries
type ConfigurationFilter struct {
	ConfigHash   *string       `json:"config_hash,omitempty"`
	TemplateCode *string       `json:"template_code,omitempty"`
	AssemblyMode *AssemblyMode `json:"assembly_mode,omitempty"`
}
