// File: database/repository/catalog/catalog_mongo.go
package catalogRepo

import (
	"context"
	"errors"
	"fmt"

	"beautybar/database"
	"beautybar/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoCatalogRepo struct {
	categoryColl *mongo.Collection
	serviceColl  *mongo.Collection
}

// NewMongoCatalogRepo constructs a new MongoDB CatalogRepository.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.DB()
	return &mongoCatalogRepo{
		categoryColl: db.Collection("categories"),
		serviceColl:  db.Collection("services"),
	}
}

func (repo *mongoCatalogRepo) GetCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	var cat models.Category
	err := repo.categoryColl.FindOne(ctx, bson.M{"id": id}).Decode(&cat)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch category %s: %w", id, err)
	}
	return &cat, nil
}

func (repo *mongoCatalogRepo) GetCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	var cat models.Category
	err := repo.categoryColl.FindOne(ctx, bson.M{"name": name}).Decode(&cat)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch category %q: %w", name, err)
	}
	return &cat, nil
}

func (repo *mongoCatalogRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	cursor, err := repo.categoryColl.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	var cats []models.Category
	if err := cursor.All(ctx, &cats); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return cats, nil
}

func (repo *mongoCatalogRepo) GetServiceByID(ctx context.Context, id string) (*models.Service, error) {
	var svc models.Service
	err := repo.serviceColl.FindOne(ctx, bson.M{"id": id}).Decode(&svc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service %s: %w", id, err)
	}
	return &svc, nil
}

func (repo *mongoCatalogRepo) ListServicesByCategory(ctx context.Context, categoryID string) ([]models.Service, error) {
	cursor, err := repo.serviceColl.Find(ctx, bson.M{"category_id": categoryID}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to list services for category %s: %w", categoryID, err)
	}
	var svcs []models.Service
	if err := cursor.All(ctx, &svcs); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return svcs, nil
}

func (repo *mongoCatalogRepo) ListServices(ctx context.Context) ([]models.Service, error) {
	cursor, err := repo.serviceColl.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	var svcs []models.Service
	if err := cursor.All(ctx, &svcs); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return svcs, nil
}
