package models

// BlockedDate is a one-off availability override for a category. When both
// StartTime and EndTime are nil the whole day is blocked; when both are set
// only that sub-range is blocked.
type BlockedDate struct {
	ID         string  `bson:"id" json:"id"`
	CategoryID string  `bson:"category_id" json:"categoryId"`
	Date       string  `bson:"date" json:"date"`                                 // "2006-01-02", business-local
	StartTime  *string `bson:"start_time,omitempty" json:"startTime,omitempty"`  // "HH:mm"
	EndTime    *string `bson:"end_time,omitempty" json:"endTime,omitempty"`      // "HH:mm"
	Reason     string  `bson:"reason,omitempty" json:"reason,omitempty"`
}

// WholeDay reports whether the block covers the full calendar date.
func (b BlockedDate) WholeDay() bool {
	return b.StartTime == nil && b.EndTime == nil
}
