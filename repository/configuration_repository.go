package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/illumenate-lighting/configurator/models"
	"github.com/illumenate-lighting/configurator/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ConfigurationRepositoryImpl implements ConfigurationRepository interface
type ConfigurationRepositoryImpl struct {
	*BaseRepository[models.Configuration, models.ConfigurationFilter]
}

// NewConfigurationRepository creates a new configuration repository
func NewConfigurationRepository(db *gorm.DB) ConfigurationRepository {
	return &ConfigurationRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Configuration, models.ConfigurationFilter](db),
	}
}

// ByHash retrieves a configuration by its canonical hash
func (r *ConfigurationRepositoryImpl) ByHash(ctx context.Context, configHash string) (*models.Configuration, error) {
	db := r.getDB(ctx)

	var config models.Configuration
	err := db.Where("config_hash = ?", configHash).
		Last(&config).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find configuration by hash: %w", err)
	}

	return &config, nil
}

// ByUUID retrieves a configuration by its public UUID
func (r *ConfigurationRepositoryImpl) ByUUID(ctx context.Context, id uuid.UUID) (*models.Configuration, error) {
	db := r.getDB(ctx)

	var config models.Configuration
	err := db.Where("uuid = ?", id).
		Last(&config).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find configuration by uuid: %w", err)
	}

	return &config, nil
}

// UpsertByHash inserts the configuration, or when a row with the same hash
// already exists, overwrites its computed, resolved, and pricing fields so a
// re-quote reflects the current catalog. Identity (id, uuid, created_at) and
// manufacturing artifact fields survive the refresh, and concurrent inserts of
// the same hash land on the single existing row, never a duplicate.
func (r *ConfigurationRepositoryImpl) UpsertByHash(ctx context.Context, config *models.Configuration) (*models.Configuration, error) {
	db := r.getDB(ctx)

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "config_hash"}},
		DoUpdates: clause.Assignments(map[string]any{
			"qty":                      config.Qty,
			"internal_length_mm":       config.InternalLengthMM,
			"tape_cut_length_mm":       config.TapeCutLengthMM,
			"manufacturable_length_mm": config.ManufacturableLengthMM,
			"difference_mm":            config.DifferenceMM,
			"segments_count":           config.SegmentsCount,
			"runs_count":               config.RunsCount,
			"total_watts":              config.TotalWatts,
			"assembly_mode":            config.AssemblyMode,
			"segments":                 config.Segments,
			"runs":                     config.Runs,
			"driver_plan":              config.DriverPlan,
			"resolved_items":           config.ResolvedItems,
			"msrp_total":               config.MSRPTotal,
			"adder_breakdown":          config.AdderBreakdown,
			"part_number":              config.PartNumber,
			"engine_version":           config.EngineVersion,
			"updated_at":               utils.UTCNow(),
		}),
	}).Create(config).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert configuration: %w", err)
	}

	// Fetch whichever row owns the hash so callers see the surviving identity.
	existing, err := r.ByHash(ctx, config.ConfigHash)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("configuration vanished after upsert: hash %s", config.ConfigHash)
	}

	return existing, nil
}

// UpdateArtifacts records the generated manufacturing artifact identifiers
func (r *ConfigurationRepositoryImpl) UpdateArtifacts(ctx context.Context, configID uint, itemCode, bomNo, travelerNotes string) error {
	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return err
	}

	if shouldCommit {
		defer func() {
			if err != nil {
				db.Rollback()
			} else {
				db.Commit()
			}
		}()
	}

	err = db.Model(&models.Configuration{}).
		Where("id = ?", configID).
		Updates(map[string]any{
			"item_code":      itemCode,
			"bom_no":         bomNo,
			"traveler_notes": travelerNotes,
			"updated_at":     utils.UTCNow(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update configuration artifacts: %w", err)
	}

	return nil
}
