// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/illumenate-lighting/configurator/models"
)

// RepositoryContext key for transaction in context
type contextKey string

const TxContextKey contextKey = "tx"

type Repository[T any, F any] interface {
	ByID(ctx context.Context, id uint) (*T, error)
	Save(ctx context.Context, entity *T) error
	SaveBatch(ctx context.Context, entities []*T) error
}

// FixtureTemplateRepository defines operations for fixture templates
type FixtureTemplateRepository interface {
	Repository[models.FixtureTemplate, models.FixtureTemplateFilter]
	ByCode(ctx context.Context, code string) (*models.FixtureTemplate, error)
	ListActive(ctx context.Context) ([]*models.FixtureTemplate, error)
}

// TapeOfferingRepository defines operations for tape offerings and their specs
type TapeOfferingRepository interface {
	Repository[models.TapeOffering, models.TapeOfferingFilter]
	ByCode(ctx context.Context, code string) (*models.TapeOffering, error)
}

// OptionAttributeRepository defines operations for option attribute lookups
type OptionAttributeRepository interface {
	Repository[models.OptionAttribute, models.OptionAttributeFilter]
	ByTypeAndCode(ctx context.Context, optionType models.OptionType, code string) (*models.OptionAttribute, error)
}

// PricingClassRepository defines operations for pricing classes
type PricingClassRepository interface {
	Repository[models.PricingClass, models.PricingClassFilter]
	ByCode(ctx context.Context, code string) (*models.PricingClass, error)
}

// DriverEligibilityRepository defines operations for driver eligibility rows
type DriverEligibilityRepository interface {
	Repository[models.DriverEligibility, models.DriverEligibilityFilter]
	ListEligible(ctx context.Context, outputVoltage float64, dimmingProtocol string) ([]*models.DriverEligibility, error)
}

// ItemMapRepository resolves option selections to concrete stock items
type ItemMapRepository interface {
	ResolveProfile(ctx context.Context, templateCode, finishCode string) (*models.ProfileItemMap, error)
	ResolveLens(ctx context.Context, lensAppearanceCode, environmentRatingCode string) (*models.LensItemMap, error)
	ResolveEndcap(ctx context.Context, endcapStyleCode, endcapColorCode string) (*models.EndcapItemMap, error)
	ResolveLeader(ctx context.Context, powerFeedTypeCode string, tapeSpecID uint) (*models.LeaderItemMap, error)
	ResolveMounting(ctx context.Context, templateCode, mountingMethodCode string) (*models.MountingAccessoryMap, error)
}

// ConfigurationRepository defines operations for persisted configurations
type ConfigurationRepository interface {
	Repository[models.Configuration, models.ConfigurationFilter]
	ByHash(ctx context.Context, configHash string) (*models.Configuration, error)
	ByUUID(ctx context.Context, id uuid.UUID) (*models.Configuration, error)
	UpsertByHash(ctx context.Context, config *models.Configuration) (*models.Configuration, error)
	UpdateArtifacts(ctx context.Context, configID uint, itemCode, bomNo, travelerNotes string) error
}
