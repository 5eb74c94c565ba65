package notification

import "context"

// Asynq task types for outgoing booking email.
const (
	TypeBookingConfirmation = "email:booking_confirmation"
	TypeStatusUpdate        = "email:status_update"
	TypeReminder            = "email:reminder"
)

// EmailPayload is the queued representation of one booking email. Times are
// business-local display strings; the queue never carries instants.
type EmailPayload struct {
	To            string `json:"to"`
	CustomerName  string `json:"customerName"`
	ServiceName   string `json:"serviceName"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Status        string `json:"status"`
}

// MailerService delivers booking emails. Implementations must treat delivery
// as best-effort; a failed send is logged and retried by the queue, never
// surfaced to the booking path.
type MailerService interface {
	SendBookingConfirmation(ctx context.Context, p EmailPayload) error
	SendStatusUpdate(ctx context.Context, p EmailPayload) error
	SendReminder(ctx context.Context, p EmailPayload) error
}
