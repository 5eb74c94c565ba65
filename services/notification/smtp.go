package notification

import (
	"context"
	"fmt"

	"beautybar/config"

	"gopkg.in/gomail.v2"
)

// SMTPMailerService is the production MailerService, sending plain-text email
// through the configured SMTP relay.
type SMTPMailerService struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailerService builds a mailer from the application config.
func NewSMTPMailerService() *SMTPMailerService {
	cfg := config.AppConfig
	return &SMTPMailerService{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   cfg.EmailFrom,
	}
}

func (s *SMTPMailerService) SendBookingConfirmation(ctx context.Context, p EmailPayload) error {
	subject := fmt.Sprintf("Booking received: %s on %s", p.ServiceName, p.Date)
	body := fmt.Sprintf(
		"Hi %s,\n\nWe received your booking for %s on %s from %s to %s.\n"+
			"It is currently pending confirmation; we will email you once it is confirmed.\n\nBeauty Bar",
		p.CustomerName, p.ServiceName, p.Date, p.StartTime, p.EndTime,
	)
	return s.send(p.To, subject, body)
}

func (s *SMTPMailerService) SendStatusUpdate(ctx context.Context, p EmailPayload) error {
	subject := fmt.Sprintf("Booking %s: %s on %s", p.Status, p.ServiceName, p.Date)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour booking for %s on %s from %s to %s is now %s.\n\nBeauty Bar",
		p.CustomerName, p.ServiceName, p.Date, p.StartTime, p.EndTime, p.Status,
	)
	return s.send(p.To, subject, body)
}

func (s *SMTPMailerService) SendReminder(ctx context.Context, p EmailPayload) error {
	subject := fmt.Sprintf("Reminder: %s tomorrow at %s", p.ServiceName, p.StartTime)
	body := fmt.Sprintf(
		"Hi %s,\n\nA reminder of your appointment for %s on %s from %s to %s.\nSee you soon!\n\nBeauty Bar",
		p.CustomerName, p.ServiceName, p.Date, p.StartTime, p.EndTime,
	)
	return s.send(p.To, subject, body)
}

func (s *SMTPMailerService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
