// File: database/repository/availability/availability_mongo.go
package availabilityRepo

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

// ErrNotFound is returned when a delete targets a missing document.
var ErrNotFound = errors.New("availability: document not found")

type mongoAvailabilityRepo struct {
	templateColl *mongo.Collection
	blockedColl  *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.DB()
	return &mongoAvailabilityRepo{
		templateColl: db.Collection("weekly_templates"),
		blockedColl:  db.Collection("blocked_dates"),
	}
}

func (repo *mongoAvailabilityRepo) GetTemplateEntry(ctx context.Context, categoryID string, weekday int) (*models.WeeklyTemplateEntry, error) {
	var entry models.WeeklyTemplateEntry
	filter := bson.M{"category_id": categoryID, "weekday": weekday}
	err := repo.templateColl.FindOne(ctx, filter).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch template entry for category %s weekday %d: %w", categoryID, weekday, err)
	}
	return &entry, nil
}

func (repo *mongoAvailabilityRepo) ListTemplate(ctx context.Context, categoryID string) ([]models.WeeklyTemplateEntry, error) {
	cursor, err := repo.templateColl.Find(ctx,
		bson.M{"category_id": categoryID},
		options.Find().SetSort(bson.M{"weekday": 1}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list template for category %s: %w", categoryID, err)
	}
	var entries []models.WeeklyTemplateEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode template entries: %w", err)
	}
	return entries, nil
}

func (repo *mongoAvailabilityRepo) UpsertTemplateEntry(ctx context.Context, entry *models.WeeklyTemplateEntry) error {
	filter := bson.M{"category_id": entry.CategoryID, "weekday": entry.Weekday}
	opts := options.Replace().SetUpsert(true)
	if _, err := repo.templateColl.ReplaceOne(ctx, filter, entry, opts); err != nil {
		return fmt.Errorf("failed to upsert template entry for category %s weekday %d: %w", entry.CategoryID, entry.Weekday, err)
	}
	return nil
}

func (repo *mongoAvailabilityRepo) ListBlockedDates(ctx context.Context, categoryID, date string) ([]models.BlockedDate, error) {
	cursor, err := repo.blockedColl.Find(ctx, bson.M{"category_id": categoryID, "date": date})
	if err != nil {
		return nil, fmt.Errorf("failed to list blocked dates for category %s on %s: %w", categoryID, date, err)
	}
	var blocked []models.BlockedDate
	if err := cursor.All(ctx, &blocked); err != nil {
		return nil, fmt.Errorf("failed to decode blocked dates: %w", err)
	}
	return blocked, nil
}

func (repo *mongoAvailabilityRepo) ListBlockedDatesByCategory(ctx context.Context, categoryID string) ([]models.BlockedDate, error) {
	cursor, err := repo.blockedColl.Find(ctx,
		bson.M{"category_id": categoryID},
		options.Find().SetSort(bson.M{"date": 1}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list blocked dates for category %s: %w", categoryID, err)
	}
	var blocked []models.BlockedDate
	if err := cursor.All(ctx, &blocked); err != nil {
		return nil, fmt.Errorf("failed to decode blocked dates: %w", err)
	}
	return blocked, nil
}

func (repo *mongoAvailabilityRepo) GetBlockedDate(ctx context.Context, id string) (*models.BlockedDate, error) {
	var blocked models.BlockedDate
	err := repo.blockedColl.FindOne(ctx, bson.M{"id": id}).Decode(&blocked)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blocked date %s: %w", id, err)
	}
	return &blocked, nil
}

func (repo *mongoAvailabilityRepo) CreateBlockedDate(ctx context.Context, blocked *models.BlockedDate) error {
	if _, err := repo.blockedColl.InsertOne(ctx, blocked); err != nil {
		return fmt.Errorf("failed to create blocked date: %w", err)
	}
	return nil
}

func (repo *mongoAvailabilityRepo) DeleteBlockedDate(ctx context.Context, id string) error {
	res, err := repo.blockedColl.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete blocked date %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
