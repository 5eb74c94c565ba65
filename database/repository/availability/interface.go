// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"

	"beautybar/models"
)

// AvailabilityRepository defines data access for weekly templates and
// blocked-date overrides. At most one template entry exists per
// (categoryID, weekday); UpsertTemplateEntry enforces that by replacing.
type AvailabilityRepository interface {
	GetTemplateEntry(ctx context.Context, categoryID string, weekday int) (*models.WeeklyTemplateEntry, error)
	ListTemplate(ctx context.Context, categoryID string) ([]models.WeeklyTemplateEntry, error)
	UpsertTemplateEntry(ctx context.Context, entry *models.WeeklyTemplateEntry) error

	ListBlockedDates(ctx context.Context, categoryID, date string) ([]models.BlockedDate, error)
	ListBlockedDatesByCategory(ctx context.Context, categoryID string) ([]models.BlockedDate, error)
	GetBlockedDate(ctx context.Context, id string) (*models.BlockedDate, error)
	CreateBlockedDate(ctx context.Context, blocked *models.BlockedDate) error
	DeleteBlockedDate(ctx context.Context, id string) error
}
