package repository

import (
	"context"
	"fmt"

	"github.com/illumenate-lighting/configurator/models"
	"gorm.io/gorm"
)

// DriverEligibilityRepositoryImpl implements DriverEligibilityRepository interface
type DriverEligibilityRepositoryImpl struct {
	*BaseRepository[models.DriverEligibility, models.DriverEligibilityFilter]
}

// NewDriverEligibilityRepository creates a new driver eligibility repository
func NewDriverEligibilityRepository(db *gorm.DB) DriverEligibilityRepository {
	return &DriverEligibilityRepositoryImpl{
		BaseRepository: NewBaseRepository[models.DriverEligibility, models.DriverEligibilityFilter](db),
	}
}

// ListEligible retrieves active drivers matching the tape's output voltage and
// dimming protocol, cheapest first. Rows without a unit cost sort last.
func (r *DriverEligibilityRepositoryImpl) ListEligible(ctx context.Context, outputVoltage float64, dimmingProtocol string) ([]*models.DriverEligibility, error) {
	db := r.getDB(ctx)

	var drivers []*models.DriverEligibility
	err := db.Where("output_voltage = ? AND dimming_protocol = ? AND is_active = ?", outputVoltage, dimmingProtocol, true).
		Order("unit_cost ASC NULLS LAST, rated_watts ASC, driver_item ASC").
		Find(&drivers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list eligible drivers: %w", err)
	}

	return drivers, nil
}
