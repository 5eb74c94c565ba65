package notification

import (
	"encoding/json"
	"time"

	"beautybar/models"
	"beautybar/services/scheduling"
	"beautybar/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// AsynqNotifier implements scheduling.Notifier by enqueuing email tasks.
// Enqueue failures are logged and dropped: notification is decoupled from the
// booking write and must never roll it back.
type AsynqNotifier struct {
	client *asynq.Client
	clock  *scheduling.Clock
}

var _ scheduling.Notifier = (*AsynqNotifier)(nil)

// NewAsynqNotifier wraps an asynq client and the business clock used to
// render appointment instants as local display strings.
func NewAsynqNotifier(client *asynq.Client, clock *scheduling.Clock) *AsynqNotifier {
	return &AsynqNotifier{client: client, clock: clock}
}

func (n *AsynqNotifier) BookingCreated(booking models.Booking, serviceName string) {
	n.enqueue(TypeBookingConfirmation, n.payload(booking, serviceName), nil)
}

func (n *AsynqNotifier) BookingStatusChanged(booking models.Booking, serviceName string) {
	n.enqueue(TypeStatusUpdate, n.payload(booking, serviceName), nil)

	// A confirmed appointment also gets a reminder the day before, if there
	// is still a day to wait.
	if booking.Status == models.BookingStatusConfirmed {
		fireAt := booking.AppointmentStart.Add(-24 * time.Hour)
		if fireAt.After(n.clock.Now()) {
			n.enqueue(TypeReminder, n.payload(booking, serviceName), &fireAt)
		}
	}
}

func (n *AsynqNotifier) payload(booking models.Booking, serviceName string) EmailPayload {
	date, _ := n.clock.BusinessDate(booking.AppointmentStart)
	return EmailPayload{
		To:           booking.CustomerEmail,
		CustomerName: booking.CustomerName,
		ServiceName:  serviceName,
		Date:         date,
		StartTime:    scheduling.FormatClock(n.clock.LocalMinutes(booking.AppointmentStart)),
		EndTime:      scheduling.FormatClock(n.clock.LocalMinutes(booking.AppointmentEnd)),
		Status:       booking.Status,
	}
}

func (n *AsynqNotifier) enqueue(taskType string, p EmailPayload, processAt *time.Time) {
	logger := utils.GetLogger()
	data, err := json.Marshal(p)
	if err != nil {
		logger.Error("notification: failed to marshal email payload",
			zap.String("task", taskType), zap.Error(err))
		return
	}
	task := asynq.NewTask(taskType, data)

	opts := []asynq.Option{asynq.MaxRetry(5)}
	if processAt != nil {
		opts = append(opts, asynq.ProcessAt(*processAt))
	}
	if _, err := n.client.Enqueue(task, opts...); err != nil {
		logger.Error("notification: failed to enqueue email task",
			zap.String("task", taskType), zap.String("to", p.To), zap.Error(err))
	}
}
