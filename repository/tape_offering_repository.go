package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/illumenate-lighting/configurator/models"
	"gorm.io/gorm"
)

// TapeOfferingRepositoryImpl implements TapeOfferingRepository interface
type TapeOfferingRepositoryImpl struct {
	*BaseRepository[models.TapeOffering, models.TapeOfferingFilter]
}

// NewTapeOfferingRepository creates a new tape offering repository
func NewTapeOfferingRepository(db *gorm.DB) TapeOfferingRepository {
	return &TapeOfferingRepositoryImpl{
		BaseRepository: NewBaseRepository[models.TapeOffering, models.TapeOfferingFilter](db),
	}
}

// ByCode retrieves a tape offering by its code with the tape spec preloaded
func (r *TapeOfferingRepositoryImpl) ByCode(ctx context.Context, code string) (*models.TapeOffering, error) {
	db := r.getDB(ctx)

	var offering models.TapeOffering
	err := db.Where("code = ?", code).
		Preload("TapeSpec").
		Last(&offering).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find tape offering by code: %w", err)
	}

	return &offering, nil
}
