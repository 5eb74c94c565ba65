// File: database/repository/catalog/interface.go
package catalogRepo

import (
	"context"

	"beautybar/models"
)

// CatalogRepository defines data access for categories and their services.
// Lookups return (nil, nil) when no document matches.
type CatalogRepository interface {
	GetCategoryByID(ctx context.Context, id string) (*models.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetServiceByID(ctx context.Context, id string) (*models.Service, error)
	ListServicesByCategory(ctx context.Context, categoryID string) ([]models.Service, error)
	ListServices(ctx context.Context) ([]models.Service, error)
}
