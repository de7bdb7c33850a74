// Package models contains the catalog and configuration entities for the fixture engine.
package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// PricingLengthBasis selects which computed length drives the per-foot price adder
type PricingLengthBasis string

const (
	PricingBasisTapeCutLength        PricingLengthBasis = "tape_cut_length"
	PricingBasisManufacturableLength PricingLengthBasis = "manufacturable_length"
)

// String returns the string representation of the basis
func (b PricingLengthBasis) String() string {
	return string(b)
}

// Valid checks if the basis is valid
func (b PricingLengthBasis) Valid() bool {
	switch b {
	case PricingBasisTapeCutLength, PricingBasisManufacturableLength:
		return true
	default:
		return false
	}
}

// Scan implements the sql.Scanner interface for PricingLengthBasis
func (b *PricingLengthBasis) Scan(value any) error {
	if value == nil {
		*b = ""
		return nil
	}

	switch v := value.(type) {
	case string:
		*b = PricingLengthBasis(v)
	case []byte:
		*b = PricingLengthBasis(string(v))
	default:
		return fmt.Errorf("cannot scan %T into PricingLengthBasis", value)
	}

	return nil
}

// Value implements the driver.Valuer interface for PricingLengthBasis
func (b PricingLengthBasis) Value() (driver.Value, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("invalid PricingLengthBasis: %s", b)
	}
	return string(b), nil
}

// OptionType identifies which customer-facing selection an option row belongs to
type OptionType string

const (
	OptionTypeFinish            OptionType = "finish"
	OptionTypeLensAppearance    OptionType = "lens_appearance"
	OptionTypeMountingMethod    OptionType = "mounting_method"
	OptionTypeEndcapStyle       OptionType = "endcap_style"
	OptionTypeEndcapColor       OptionType = "endcap_color"
	OptionTypePowerFeedType     OptionType = "power_feed_type"
	OptionTypeEnvironmentRating OptionType = "environment_rating"
)

// SelectableOptionTypes lists the option types that carry MSRP adders and must be
// validated against a template's allowed options, in breakdown order.
var SelectableOptionTypes = []OptionType{
	OptionTypeFinish,
	OptionTypeLensAppearance,
	OptionTypeMountingMethod,
	OptionTypeEndcapStyle,
	OptionTypePowerFeedType,
	OptionTypeEnvironmentRating,
}

// String returns the string representation of the option type
func (t OptionType) String() string {
	return string(t)
}

// Valid checks if the option type is valid
func (t OptionType) Valid() bool {
	switch t {
	case OptionTypeFinish, OptionTypeLensAppearance, OptionTypeMountingMethod,
		OptionTypeEndcapStyle, OptionTypeEndcapColor, OptionTypePowerFeedType,
		OptionTypeEnvironmentRating:
		return true
	default:
		return false
	}
}

// Scan implements the sql.Scanner interface for OptionType
func (t *OptionType) Scan(value any) error {
	if value == nil {
		*t = ""
		return nil
	}

	switch v := value.(type) {
	case string:
		*t = OptionType(v)
	case []byte:
		*t = OptionType(string(v))
	default:
		return fmt.Errorf("cannot scan %T into OptionType", value)
	}

	return nil
}

// Value implements the driver.Valuer interface for OptionType
func (t OptionType) Value() (driver.Value, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid OptionType: %s", t)
	}
	return string(t), nil
}

// FixtureTemplate represents a manufacturable product family. Templates are
// maintained by catalog administrators and are read-only to the engine.
type FixtureTemplate struct {
	ID                   uint               `gorm:"primaryKey" json:"id"`
	Code                 string             `gorm:"size:64;not null;uniqueIndex:uk_fixture_templates_code" json:"code"`
	TemplateName         string             `gorm:"size:255;not null" json:"template_name"`
	DefaultProfileFamily string             `gorm:"size:64" json:"default_profile_family"`
	ProfileStockLengthMM float64            `gorm:"type:numeric(10,2);not null" json:"profile_stock_length_mm"`
	AssembledMaxLengthMM float64            `gorm:"type:numeric(10,2);not null" json:"assembled_max_length_mm"`
	LeaderAllowanceMM    float64            `gorm:"type:numeric(10,2);not null;default:0" json:"leader_allowance_mm"`
	BasePriceMSRP        float64            `gorm:"type:numeric(12,2);not null;default:0" json:"base_price_msrp"`
	PricePerFtMSRP       float64            `gorm:"type:numeric(12,2);not null;default:0" json:"price_per_ft_msrp"`
	PricingLengthBasis   PricingLengthBasis `gorm:"size:32;not null;default:'tape_cut_length'" json:"pricing_length_basis"`
	IsActive             *bool              `gorm:"not null;default:true" json:"is_active"`
	CreatedAt            time.Time          `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt            *time.Time         `json:"updated_at,omitempty"`

	// Relations
	AllowedOptions []TemplateAllowedOption `gorm:"foreignKey:TemplateID" json:"allowed_options,omitempty"`
	AllowedTapes   []TemplateAllowedTape   `gorm:"foreignKey:TemplateID" json:"allowed_tapes,omitempty"`
}

func (FixtureTemplate) TableName() string {
	return "fixture_templates"
}

// TemplateAllowedOption is one option code a template permits, with its MSRP adder.
type TemplateAllowedOption struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	TemplateID uint       `gorm:"not null;index:idx_template_allowed_options_template_id;uniqueIndex:uk_template_allowed_options" json:"template_id"`
	OptionType OptionType `gorm:"size:32;not null;uniqueIndex:uk_template_allowed_options" json:"option_type"`
	OptionCode string     `gorm:"size:64;not null;uniqueIndex:uk_template_allowed_options" json:"option_code"`
	IsDefault  *bool      `gorm:"not null;default:false" json:"is_default"`
	IsActive   *bool      `gorm:"not null;default:true" json:"is_active"`
	MSRPAdder  float64    `gorm:"type:numeric(12,2);not null;default:0" json:"msrp_adder"`
}

func (TemplateAllowedOption) TableName() string {
	return "template_allowed_options"
}

// TemplateAllowedTape binds a tape offering to a template, tagged with the
// environment rating and lens compatibility it serves.
type TemplateAllowedTape struct {
	ID                    uint   `gorm:"primaryKey" json:"id"`
	TemplateID            uint   `gorm:"not null;index:idx_template_allowed_tapes_template_id" json:"template_id"`
	TapeOfferingCode      string `gorm:"size:64;not null" json:"tape_offering_code"`
	EnvironmentRatingCode string `gorm:"size:64;not null" json:"environment_rating_code"`
	LensCompatibility     string `gorm:"size:255" json:"lens_compatibility"`
	IsActive              *bool  `gorm:"not null;default:true" json:"is_active"`
}

func (TemplateAllowedTape) TableName() string {
	return "template_allowed_tapes"
}

// FixtureTemplateFilter defines filter criteria for fixture template queries
type FixtureTemplateFilter struct {
	Code     *string `json:"code,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}
