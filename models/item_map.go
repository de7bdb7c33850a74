package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// QtyRuleType selects how a mounting accessory quantity scales with the fixture.
type QtyRuleType string

const (
	QtyRulePerFixture QtyRuleType = "PER_FIXTURE"
	QtyRulePerSegment QtyRuleType = "PER_SEGMENT"
	QtyRulePerRun     QtyRuleType = "PER_RUN"
	QtyRulePerXMM     QtyRuleType = "PER_X_MM"
)

// String returns the string representation of the rule type
func (t QtyRuleType) String() string {
	return string(t)
}

// Valid checks if the rule type is valid
func (t QtyRuleType) Valid() bool {
	switch t {
	case QtyRulePerFixture, QtyRulePerSegment, QtyRulePerRun, QtyRulePerXMM:
		return true
	default:
		return false
	}
}

// Scan implements the sql.Scanner interface for QtyRuleType
func (t *QtyRuleType) Scan(value any) error {
	if value == nil {
		*t = ""
		return nil
	}

	switch v := value.(type) {
	case string:
		*t = QtyRuleType(v)
	case []byte:
		*t = QtyRuleType(string(v))
	default:
		return fmt.Errorf("cannot scan %T into QtyRuleType", value)
	}

	return nil
}

// Value implements the driver.Valuer interface for QtyRuleType
func (t QtyRuleType) Value() (driver.Value, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid QtyRuleType: %s", t)
	}
	return string(t), nil
}

// RoundingMode selects how fractional accessory quantities are rounded.
type RoundingMode string

const (
	RoundingCeil  RoundingMode = "CEIL"
	RoundingFloor RoundingMode = "FLOOR"
	RoundingRound RoundingMode = "ROUND"
)

// String returns the string representation of the rounding mode
func (m RoundingMode) String() string {
	return string(m)
}

// Valid checks if the rounding mode is valid
func (m RoundingMode) Valid() bool {
	switch m {
	case RoundingCeil, RoundingFloor, RoundingRound:
		return true
	default:
		return false
	}
}

// Scan implements the sql.Scanner interface for RoundingMode
func (m *RoundingMode) Scan(value any) error {
	if value == nil {
		*m = ""
		return nil
	}

	switch v := value.(type) {
	case string:
		*m = RoundingMode(v)
	case []byte:
		*m = RoundingMode(string(v))
	default:
		return fmt.Errorf("cannot scan %T into RoundingMode", value)
	}

	return nil
}

// Value implements the driver.Valuer interface for RoundingMode
func (m RoundingMode) Value() (driver.Value, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid RoundingMode: %s", m)
	}
	return string(m), nil
}

// ProfileItemMap resolves template x finish to a concrete profile stock item.
type ProfileItemMap struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	TemplateCode string `gorm:"size:64;not null;uniqueIndex:uk_profile_item_maps" json:"template_code"`
	FinishCode   string `gorm:"size:64;not null;uniqueIndex:uk_profile_item_maps" json:"finish_code"`
	Item         string `gorm:"size:64;not null" json:"item"`
	IsActive     *bool  `gorm:"not null;default:true" json:"is_active"`
}

func (ProfileItemMap) TableName() string {
	return "profile_item_maps"
}

// LensItemMap resolves lens appearance x environment rating to a lens stock item.
type LensItemMap struct {
	ID                    uint   `gorm:"primaryKey" json:"id"`
	LensAppearanceCode    string `gorm:"size:64;not null;uniqueIndex:uk_lens_item_maps" json:"lens_appearance_code"`
	EnvironmentRatingCode string `gorm:"size:64;not null;uniqueIndex:uk_lens_item_maps" json:"environment_rating_code"`
	Item                  string `gorm:"size:64;not null" json:"item"`
	IsActive              *bool  `gorm:"not null;default:true" json:"is_active"`
}

func (LensItemMap) TableName() string {
	return "lens_item_maps"
}

// EndcapItemMap resolves endcap style x color to a concrete endcap item.
type EndcapItemMap struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	EndcapStyleCode string `gorm:"size:64;not null;uniqueIndex:uk_endcap_item_maps" json:"endcap_style_code"`
	EndcapColorCode string `gorm:"size:64;not null;uniqueIndex:uk_endcap_item_maps" json:"endcap_color_code"`
	Item            string `gorm:"size:64;not null" json:"item"`
	IsActive        *bool  `gorm:"not null;default:true" json:"is_active"`
}

func (EndcapItemMap) TableName() string {
	return "endcap_item_maps"
}

// LeaderItemMap resolves power feed type x tape spec to a leader cable item.
type LeaderItemMap struct {
	ID                uint    `gorm:"primaryKey" json:"id"`
	PowerFeedTypeCode string  `gorm:"size:64;not null;uniqueIndex:uk_leader_item_maps" json:"power_feed_type_code"`
	TapeSpecID        uint    `gorm:"not null;uniqueIndex:uk_leader_item_maps" json:"tape_spec_id"`
	Item              string  `gorm:"size:64;not null" json:"item"`
	LeaderLengthMM    float64 `gorm:"type:numeric(8,2);not null" json:"leader_length_mm"`
	IsActive          *bool   `gorm:"not null;default:true" json:"is_active"`
}

func (LeaderItemMap) TableName() string {
	return "leader_item_maps"
}

// MountingAccessoryMap resolves template x mounting method to an accessory item
// plus the quantity rule used by manufacturing artifact generation.
type MountingAccessoryMap struct {
	ID                 uint         `gorm:"primaryKey" json:"id"`
	TemplateCode       string       `gorm:"size:64;not null;uniqueIndex:uk_mounting_accessory_maps" json:"template_code"`
	MountingMethodCode string       `gorm:"size:64;not null;uniqueIndex:uk_mounting_accessory_maps" json:"mounting_method_code"`
	Item               string       `gorm:"size:64;not null" json:"item"`
	QtyRuleType        QtyRuleType  `gorm:"size:16;not null;default:'PER_FIXTURE'" json:"qty_rule_type"`
	QtyRuleValue       float64      `gorm:"type:numeric(10,2);not null;default:1" json:"qty_rule_value"`
	MinQty             int          `gorm:"not null;default:0" json:"min_qty"`
	Rounding           RoundingMode `gorm:"size:8;not null;default:'CEIL'" json:"rounding"`
	IsActive           *bool        `gorm:"not null;default:true" json:"is_active"`
	CreatedAt          time.Time    `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
}

func (MountingAccessoryMap) TableName() string {
	return "mounting_accessory_maps"
}
