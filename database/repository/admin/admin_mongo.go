// File: database/repository/admin/admin_mongo.go
package adminRepo

import (
	"context"
	"errors"
	"fmt"

	"beautybar/database"
	"beautybar/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoAdminRepo struct {
	coll *mongo.Collection
}

// NewMongoAdminRepo constructs a new MongoDB AdminRepository.
func NewMongoAdminRepo() AdminRepository {
	return &mongoAdminRepo{
		coll: database.DB().Collection("admins"),
	}
}

func (repo *mongoAdminRepo) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch admin %s: %w", email, err)
	}
	return &admin, nil
}
