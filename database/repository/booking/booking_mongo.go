// File: database/repository/booking/booking_mongo.go
package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"beautybar/database"
	"beautybar/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
}

func (repo *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &booking, nil
}

func (repo *mongoBookingRepo) List(ctx context.Context) ([]models.Booking, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"appointment_start": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// overlapFilter matches non-cancelled bookings for serviceID whose
// [appointment_start, appointment_end) intersects [from, to). Touching
// endpoints do not intersect under half-open semantics, hence strict $lt/$gt.
func overlapFilter(serviceID string, from, to time.Time) bson.M {
	return bson.M{
		"service_id":        serviceID,
		"status":            bson.M{"$ne": models.BookingStatusCancelled},
		"appointment_start": bson.M{"$lt": to},
		"appointment_end":   bson.M{"$gt": from},
	}
}

func (repo *mongoBookingRepo) ListOverlapping(ctx context.Context, serviceID string, from, to time.Time) ([]models.Booking, error) {
	cursor, err := repo.coll.Find(ctx, overlapFilter(serviceID, from, to),
		options.Find().SetSort(bson.M{"appointment_start": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping bookings for service %s: %w", serviceID, err)
	}
	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode overlapping bookings: %w", err)
	}
	return bookings, nil
}

func (repo *mongoBookingRepo) CountForServicesInRange(ctx context.Context, serviceIDs []string, from, to time.Time) (int64, error) {
	if len(serviceIDs) == 0 {
		return 0, nil
	}
	filter := bson.M{
		"service_id":        bson.M{"$in": serviceIDs},
		"status":            bson.M{"$ne": models.BookingStatusCancelled},
		"appointment_start": bson.M{"$lt": to},
		"appointment_end":   bson.M{"$gt": from},
	}
	count, err := repo.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}

func (repo *mongoBookingRepo) CreateIfSlotFree(ctx context.Context, booking *models.Booking) error {
	client := repo.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		count, err := repo.coll.CountDocuments(sc,
			overlapFilter(booking.ServiceID, booking.AppointmentStart, booking.AppointmentEnd))
		if err != nil {
			return fmt.Errorf("overlap re-check failed: %w", err)
		}
		if count > 0 {
			return ErrConflict
		}
		if _, err := repo.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if errors.Is(err, ErrConflict) {
			return ErrConflict
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}

func (repo *mongoBookingRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	var booking models.Booking
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := repo.coll.FindOneAndUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": status}},
		opts,
	).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update booking %s status: %w", id, err)
	}
	return &booking, nil
}
