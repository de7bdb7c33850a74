package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/illumenate-lighting/configurator/models"
	"gorm.io/gorm"
)

// OptionAttributeRepositoryImpl implements OptionAttributeRepository interface
type OptionAttributeRepositoryImpl struct {
	*BaseRepository[models.OptionAttribute, models.OptionAttributeFilter]
}

// NewOptionAttributeRepository creates a new option attribute repository
func NewOptionAttributeRepository(db *gorm.DB) OptionAttributeRepository {
	return &OptionAttributeRepositoryImpl{
		BaseRepository: NewBaseRepository[models.OptionAttribute, models.OptionAttributeFilter](db),
	}
}

// ByTypeAndCode retrieves an option attribute by its type and code
func (r *OptionAttributeRepositoryImpl) ByTypeAndCode(ctx context.Context, optionType models.OptionType, code string) (*models.OptionAttribute, error) {
	db := r.getDB(ctx)

	var attribute models.OptionAttribute
	err := db.Where("option_type = ? AND code = ?", optionType, code).
		Last(&attribute).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find option attribute by type and code: %w", err)
	}

	return &attribute, nil
}

// PricingClassRepositoryImpl implements PricingClassRepository interface
type PricingClassRepositoryImpl struct {
	*BaseRepository[models.PricingClass, models.PricingClassFilter]
}

// NewPricingClassRepository creates a new pricing class repository
func NewPricingClassRepository(db *gorm.DB) PricingClassRepository {
	return &PricingClassRepositoryImpl{
		BaseRepository: NewBaseRepository[models.PricingClass, models.PricingClassFilter](db),
	}
}

// ByCode retrieves a pricing class by its code
func (r *PricingClassRepositoryImpl) ByCode(ctx context.Context, code string) (*models.PricingClass, error) {
	db := r.getDB(ctx)

	var class models.PricingClass
	err := db.Where("code = ?", code).
		Last(&class).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find pricing class by code: %w", err)
	}

	return &class, nil
}
