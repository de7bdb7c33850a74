package models

import (
	"time"
)

// OptionAttribute is a catalog lookup row for a customer-facing option code.
// Endcap styles additionally carry a per-side length allowance. Allowances are
// immutable once a configuration references them; catalog edits create new rows
// rather than retroactively altering historical quotes.
type OptionAttribute struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	OptionType OptionType `gorm:"size:32;not null;uniqueIndex:uk_option_attributes" json:"option_type"`
	Code       string     `gorm:"size:64;not null;uniqueIndex:uk_option_attributes" json:"code"`
	Label      string     `gorm:"size:255;not null" json:"label"`
	SKUCode    string     `gorm:"size:16" json:"sku_code"`
	IsActive   *bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time  `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`

	// EndcapAllowanceMM is the per-side length allowance for endcap styles; nil
	// for every other option type.
	EndcapAllowanceMM *float64 `gorm:"type:numeric(8,2)" json:"endcap_allowance_mm,omitempty"`
}

func (OptionAttribute) TableName() string {
	return "option_attributes"
}

// OptionAttributeFilter defines filter criteria for option attribute queries
type OptionAttributeFilter struct {
	OptionType *OptionType `json:"option_type,omitempty"`
	Code       *string     `json:"code,omitempty"`
	IsActive   *bool       `json:"is_active,omitempty"`
}

// PricingClass attaches a default MSRP adder to tape offerings that override
// the template's base pricing.
type PricingClass struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Code         string     `gorm:"size:64;not null;uniqueIndex:uk_pricing_classes_code" json:"code"`
	Description  string     `gorm:"size:255" json:"description"`
	DefaultAdder float64    `gorm:"type:numeric(12,2);not null;default:0" json:"default_adder"`
	CreatedAt    time.Time  `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

func (PricingClass) TableName() string {
	return "pricing_classes"
}

// PricingClassFilter defines filter criteria for pricing class queries
type PricingClassFilter struct {
	Code *string `json:"code,omitempty"`
}
