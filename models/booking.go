package models

import "time"

// Booking status lifecycle. Bookings are created pending, transitioned by an
// administrative action, and never deleted (audit trail).
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a persisted appointment record. Appointment instants are
// stored in UTC; conversion to business-local wall clock happens only at the
// scheduling clock boundary.
type Booking struct {
	ID               string    `bson:"id" json:"id"`
	ServiceID        string    `bson:"service_id" json:"serviceId"`
	AppointmentStart time.Time `bson:"appointment_start" json:"appointmentStart"` // UTC instant
	AppointmentEnd   time.Time `bson:"appointment_end" json:"appointmentEnd"`     // UTC instant
	CustomerName     string    `bson:"customer_name" json:"customerName"`
	CustomerEmail    string    `bson:"customer_email" json:"customerEmail"`
	CustomerPhone    string    `bson:"customer_phone" json:"customerPhone"`
	Status           string    `bson:"status" json:"status"`
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`
}

// Occupies reports whether the booking still holds its slot. Cancelled
// bookings never occupy a slot.
func (b Booking) Occupies() bool {
	return b.Status != BookingStatusCancelled
}
