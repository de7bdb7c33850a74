package models

import (
	"time"
)

// TapeSpec is the physical LED tape specification shared by one or more offerings.
type TapeSpec struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Code            string     `gorm:"size:64;not null;uniqueIndex:uk_tape_specs_code" json:"code"`
	InputVoltage    float64    `gorm:"type:numeric(6,2);not null" json:"input_voltage"`
	WattsPerFt      float64    `gorm:"type:numeric(8,3);not null" json:"watts_per_ft"`
	LumensPerFt     float64    `gorm:"type:numeric(8,2)" json:"lumens_per_ft"`
	CutIncrementMM  float64    `gorm:"type:numeric(8,2);not null" json:"cut_increment_mm"`
	DimmingProtocol string     `gorm:"size:64;not null" json:"dimming_protocol"`
	TapeItem        string     `gorm:"size:64;not null" json:"tape_item"`
	CreatedAt       time.Time  `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`

	// MaxRunFtVoltageDrop caps run length for voltage drop. Nil means the spec
	// imposes no limit beyond the wattage ceiling.
	MaxRunFtVoltageDrop *float64 `gorm:"type:numeric(8,2)" json:"max_run_ft_voltage_drop,omitempty"`
}

func (TapeSpec) TableName() string {
	return "tape_specs"
}

// TapeOffering is a sellable combination of CCT/CRI/SDCM/package/output bound to
// exactly one tape spec.
type TapeOffering struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Code             string     `gorm:"size:64;not null;uniqueIndex:uk_tape_offerings_code" json:"code"`
	TapeSpecID       uint       `gorm:"not null;index:idx_tape_offerings_tape_spec_id" json:"tape_spec_id"`
	CCT              string     `gorm:"size:32;not null" json:"cct"`
	CRI              string     `gorm:"size:16" json:"cri"`
	SDCM             string     `gorm:"size:16" json:"sdcm"`
	LEDPackage       string     `gorm:"size:32" json:"led_package"`
	OutputLevel      string     `gorm:"size:32;not null" json:"output_level"`
	OutputLevelCode  string     `gorm:"size:16" json:"output_level_code"`
	PricingClassCode *string    `gorm:"size:64" json:"pricing_class_code,omitempty"`
	IsActive         *bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt        time.Time  `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`

	// Relations
	TapeSpec *TapeSpec `gorm:"foreignKey:TapeSpecID;references:ID" json:"tape_spec,omitempty"`
}

func (TapeOffering) TableName() string {
	return "tape_offerings"
}

// TapeOfferingFilter defines filter criteria for tape offering queries
type TapeOfferingFilter struct {
	Code       *string `json:"code,omitempty"`
	TapeSpecID *uint   `json:"tape_spec_id,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

// TapeSpecFilter defines filter criteria for tape spec queries
type TapeSpecFilter struct {
	Code *string `json:"code,omitempty"`
}
