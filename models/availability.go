package models

// WeeklyTemplateEntry defines a category's recurring opening hours for one
// weekday. Weekday numbering is canonical Sunday=0..Saturday=6; any caller
// using a different numbering must translate before reaching this model.
type WeeklyTemplateEntry struct {
	CategoryID   string `bson:"category_id" json:"categoryId"`
	Weekday      int    `bson:"weekday" json:"weekday"`                     // 0=Sunday .. 6=Saturday
	IsAvailable  bool   `bson:"is_available" json:"isAvailable"`
	OpenTime     string `bson:"open_time" json:"openTime"`                  // "HH:mm", business-local
	CloseTime    string `bson:"close_time" json:"closeTime"`                // "HH:mm", business-local
	MaxBookings  int    `bson:"max_bookings" json:"maxBookings"`            // 0 means no per-day cap
	BreakMinutes int    `bson:"break_minutes" json:"breakMinutes"`          // gap between consecutive slots
}
