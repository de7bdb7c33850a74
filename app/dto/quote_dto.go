// Package dto contains data transfer objects for API request and response handling
package dto

// QuoteRequest carries the full set of customer selections for one fixture.
type QuoteRequest struct {
	TemplateCode          string  `json:"template_code" validate:"required,max=64"`
	TapeOfferingCode      string  `json:"tape_offering_code" validate:"required,max=64"`
	RequestedLengthMM     float64 `json:"requested_length_mm" validate:"required,gt=0"`
	FinishCode            string  `json:"finish_code" validate:"required,max=64"`
	LensAppearanceCode    string  `json:"lens_appearance_code" validate:"required,max=64"`
	MountingMethodCode    string  `json:"mounting_method_code" validate:"required,max=64"`
	EndcapStyleCode       string  `json:"endcap_style_code" validate:"required,max=64"`
	EndcapColorCode       string  `json:"endcap_color_code" validate:"required,max=64"`
	PowerFeedTypeCode     string  `json:"power_feed_type_code" validate:"required,max=64"`
	EnvironmentRatingCode string  `json:"environment_rating_code" validate:"required,max=64"`
	Qty                   int     `json:"qty" validate:"omitempty,gte=1"`
}

// SegmentDTO is one physical piece in the cut list
type SegmentDTO struct {
	Index    int     `json:"index"`
	LengthMM float64 `json:"length_mm"`
}

// RunDTO is one electrical run with its load
type RunDTO struct {
	Index    int     `json:"index"`
	LengthMM float64 `json:"length_mm"`
	Watts    float64 `json:"watts"`
}

// DriverPlanDTO is the selected driver and unit count
type DriverPlanDTO struct {
	DriverItem     string   `json:"driver_item"`
	UnitsRequired  int      `json:"units_required"`
	RatedWatts     float64  `json:"rated_watts"`
	UsableWatts    float64  `json:"usable_watts"`
	OutputsPerUnit int      `json:"outputs_per_unit"`
	UnitCost       *float64 `json:"unit_cost,omitempty"`
}

// AdderLineDTO is one priced line in the MSRP breakdown
type AdderLineDTO struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// ConfigurationDTO is the full computed configuration returned to the caller.
type ConfigurationDTO struct {
	UUID                   string            `json:"uuid"`
	ConfigHash             string            `json:"config_hash"`
	TemplateCode           string            `json:"template_code"`
	TapeOfferingCode       string            `json:"tape_offering_code"`
	RequestedLengthMM      float64           `json:"requested_length_mm"`
	FinishCode             string            `json:"finish_code"`
	LensAppearanceCode     string            `json:"lens_appearance_code"`
	MountingMethodCode     string            `json:"mounting_method_code"`
	EndcapStyleCode        string            `json:"endcap_style_code"`
	EndcapColorCode        string            `json:"endcap_color_code"`
	PowerFeedTypeCode      string            `json:"power_feed_type_code"`
	EnvironmentRatingCode  string            `json:"environment_rating_code"`
	Qty                    int               `json:"qty"`
	InternalLengthMM       float64           `json:"internal_length_mm"`
	TapeCutLengthMM        float64           `json:"tape_cut_length_mm"`
	ManufacturableLengthMM float64           `json:"manufacturable_length_mm"`
	DifferenceMM           float64           `json:"difference_mm"`
	SegmentsCount          int               `json:"segments_count"`
	RunsCount              int               `json:"runs_count"`
	TotalWatts             float64           `json:"total_watts"`
	AssemblyMode           string            `json:"assembly_mode"`
	Segments               []SegmentDTO      `json:"segments"`
	Runs                   []RunDTO          `json:"runs"`
	DriverPlan             DriverPlanDTO     `json:"driver_plan"`
	ResolvedItems          map[string]string `json:"resolved_items"`
	MSRPTotal              float64           `json:"msrp_total"`
	AdderBreakdown         []AdderLineDTO    `json:"adder_breakdown"`
	PartNumber             string            `json:"part_number"`
	ItemCode               *string           `json:"item_code,omitempty"`
	EngineVersion          string            `json:"engine_version"`
	CreatedAt              string            `json:"created_at"`
}

// QuoteResponse is the validation-and-quote outcome. Domain problems come back
// as messages with is_valid=false; a valid request carries the configuration.
// Warnings are informational and leave the quote valid.
type QuoteResponse struct {
	Message       string            `json:"message"`
	IsValid       bool              `json:"is_valid"`
	Problems      []string          `json:"problems,omitempty"`
	Warnings      []string          `json:"warnings,omitempty"`
	Configuration *ConfigurationDTO `json:"configuration,omitempty"`
}

// GetConfigurationResponse wraps a single stored configuration
type GetConfigurationResponse struct {
	Message       string            `json:"message"`
	Configuration *ConfigurationDTO `json:"configuration"`
}
