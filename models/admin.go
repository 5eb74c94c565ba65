package models

// Admin is a back-office account allowed to manage availability and bookings.
type Admin struct {
	ID           string `bson:"id" json:"id"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"password_hash" json:"-"`
	Name         string `bson:"name" json:"name"`
}
