package models

// Slot is a candidate appointment window of exactly one service's duration,
// scoped to a single calendar date. Slots are derived fresh on every query and
// never persisted. Occupied slots are returned tagged Available=false rather
// than omitted, so admin calendars can render them greyed out.
type Slot struct {
	StartTime string `json:"startTime"` // "HH:mm", business-local
	EndTime   string `json:"endTime"`   // "HH:mm", business-local
	Available bool   `json:"available"`
}
