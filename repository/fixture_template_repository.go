package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/illumenate-lighting/configurator/models"
	"gorm.io/gorm"
)

// FixtureTemplateRepositoryImpl implements FixtureTemplateRepository interface
type FixtureTemplateRepositoryImpl struct {
	*BaseRepository[models.FixtureTemplate, models.FixtureTemplateFilter]
}

// NewFixtureTemplateRepository creates a new fixture template repository
func NewFixtureTemplateRepository(db *gorm.DB) FixtureTemplateRepository {
	return &FixtureTemplateRepositoryImpl{
		BaseRepository: NewBaseRepository[models.FixtureTemplate, models.FixtureTemplateFilter](db),
	}
}

// ByCode retrieves a template by its code with allowed options and tapes preloaded
func (r *FixtureTemplateRepositoryImpl) ByCode(ctx context.Context, code string) (*models.FixtureTemplate, error) {
	db := r.getDB(ctx)

	var template models.FixtureTemplate
	err := db.Where("code = ?", code).
		Preload("AllowedOptions").
		Preload("AllowedTapes").
		Last(&template).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find fixture template by code: %w", err)
	}

	return &template, nil
}

// ListActive retrieves all active templates with relations preloaded
func (r *FixtureTemplateRepositoryImpl) ListActive(ctx context.Context) ([]*models.FixtureTemplate, error) {
	db := r.getDB(ctx)

	var templates []*models.FixtureTemplate
	err := db.Where("is_active = ?", true).
		Preload("AllowedOptions").
		Preload("AllowedTapes").
		Order("code ASC").
		Find(&templates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active fixture templates: %w", err)
	}

	return templates, nil
}
