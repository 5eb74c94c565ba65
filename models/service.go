package models

// Service is a bookable treatment owned by exactly one category.
type Service struct {
	ID              string  `bson:"id" json:"id"`
	CategoryID      string  `bson:"category_id" json:"categoryId"`
	Name            string  `bson:"name" json:"name"`
	DurationMinutes int     `bson:"duration_minutes" json:"durationMinutes"`
	Price           float64 `bson:"price" json:"price"`
	Discount        string  `bson:"discount,omitempty" json:"discount,omitempty"` // promo label, e.g. "Save 7%"
}
