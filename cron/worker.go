package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"beautybar/config"
	"beautybar/services/notification"

	"github.com/hibiken/asynq"
)

// RedisQueueOpt returns the asynq redis connection options shared by the
// worker and the enqueue client.
func RedisQueueOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	}
}

// InitMailWorker runs the async email worker in background.
func InitMailWorker(mailer notification.MailerService) {
	srv := asynq.NewServer(
		RedisQueueOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeBookingConfirmation, handleEmailTask(mailer.SendBookingConfirmation))
	mux.HandleFunc(notification.TypeStatusUpdate, handleEmailTask(mailer.SendStatusUpdate))
	mux.HandleFunc(notification.TypeReminder, handleEmailTask(mailer.SendReminder))

	// Start async worker with retry logic
	go func() {
		log.Println("[MailWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[MailWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[MailWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleEmailTask(send func(context.Context, notification.EmailPayload) error) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p notification.EmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[MailWorker] invalid payload for %s: %v", task.Type(), err)
			return err
		}
		if err := send(ctx, p); err != nil {
			log.Printf("[MailWorker] failed to deliver %s to %s: %v", task.Type(), p.To, err)
			return err
		}
		return nil
	}
}
