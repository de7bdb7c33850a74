package models

import (
	"time"
)

// DriverEligibility binds a driver item to the output voltage and dimming
// protocol it can serve, with its capacity data for the selection algorithm.
type DriverEligibility struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	DriverItem       string     `gorm:"size:64;not null;uniqueIndex:uk_driver_eligibilities" json:"driver_item"`
	OutputVoltage    float64    `gorm:"type:numeric(6,2);not null;uniqueIndex:uk_driver_eligibilities" json:"output_voltage"`
	DimmingProtocol  string     `gorm:"size:64;not null;uniqueIndex:uk_driver_eligibilities" json:"dimming_protocol"`
	RatedWatts       float64    `gorm:"type:numeric(8,2);not null" json:"rated_watts"`
	UsableLoadFactor float64    `gorm:"type:numeric(4,3);not null;default:0.8" json:"usable_load_factor"`
	OutputsPerUnit   int        `gorm:"not null;default:1" json:"outputs_per_unit"`
	UnitCost         *float64   `gorm:"type:numeric(12,2)" json:"unit_cost,omitempty"`
	IsActive         *bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt        time.Time  `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

func (DriverEligibility) TableName() string {
	return "driver_eligibilities"
}

// UsableWatts returns the safe continuous capacity of one unit.
func (d DriverEligibility) UsableWatts() float64 {
	factor := d.UsableLoadFactor
	if factor <= 0 {
		factor = 0.8
	}
	return factor * d.RatedWatts
}

// DriverEligibilityFilter defines filter criteria for driver eligibility queries
type DriverEligibilityFilter struct {
	OutputVoltage   *float64 `json:"output_voltage,omitempty"`
	DimmingProtocol *string  `json:"dimming_protocol,omitempty"`
	IsActive        *bool    `json:"is_active,omitempty"`
}
