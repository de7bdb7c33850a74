package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/illumenate-lighting/configurator/models"
	"gorm.io/gorm"
)

// ItemMapRepositoryImpl implements ItemMapRepository over the five mapping tables
type ItemMapRepositoryImpl struct {
	DB *gorm.DB
}

// NewItemMapRepository creates a new item map repository
func NewItemMapRepository(db *gorm.DB) ItemMapRepository {
	return &ItemMapRepositoryImpl{DB: db}
}

func (r *ItemMapRepositoryImpl) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(TxContextKey).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.DB
}

// ResolveProfile looks up the profile stock item for template x finish
func (r *ItemMapRepositoryImpl) ResolveProfile(ctx context.Context, templateCode, finishCode string) (*models.ProfileItemMap, error) {
	db := r.getDB(ctx)

	var m models.ProfileItemMap
	err := db.Where("template_code = ? AND finish_code = ? AND is_active = ?", templateCode, finishCode, true).
		Last(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve profile item: %w", err)
	}

	return &m, nil
}

// ResolveLens looks up the lens item for lens appearance x environment rating
func (r *ItemMapRepositoryImpl) ResolveLens(ctx context.Context, lensAppearanceCode, environmentRatingCode string) (*models.LensItemMap, error) {
	db := r.getDB(ctx)

	var m models.LensItemMap
	err := db.Where("lens_appearance_code = ? AND environment_rating_code = ? AND is_active = ?", lensAppearanceCode, environmentRatingCode, true).
		Last(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve lens item: %w", err)
	}

	return &m, nil
}

// ResolveEndcap looks up the endcap item for style x color
func (r *ItemMapRepositoryImpl) ResolveEndcap(ctx context.Context, endcapStyleCode, endcapColorCode string) (*models.EndcapItemMap, error) {
	db := r.getDB(ctx)

	var m models.EndcapItemMap
	err := db.Where("endcap_style_code = ? AND endcap_color_code = ? AND is_active = ?", endcapStyleCode, endcapColorCode, true).
		Last(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve endcap item: %w", err)
	}

	return &m, nil
}

// ResolveLeader looks up the leader cable item for power feed type x tape spec
func (r *ItemMapRepositoryImpl) ResolveLeader(ctx context.Context, powerFeedTypeCode string, tapeSpecID uint) (*models.LeaderItemMap, error) {
	db := r.getDB(ctx)

	var m models.LeaderItemMap
	err := db.Where("power_feed_type_code = ? AND tape_spec_id = ? AND is_active = ?", powerFeedTypeCode, tapeSpecID, true).
		Last(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve leader item: %w", err)
	}

	return &m, nil
}

// ResolveMounting looks up the mounting accessory for template x mounting method
func (r *ItemMapRepositoryImpl) ResolveMounting(ctx context.Context, templateCode, mountingMethodCode string) (*models.MountingAccessoryMap, error) {
	db := r.getDB(ctx)

	var m models.MountingAccessoryMap
	err := db.Where("template_code = ? AND mounting_method_code = ? AND is_active = ?", templateCode, mountingMethodCode, true).
		Last(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve mounting accessory: %w", err)
	}

	return &m, nil
}
