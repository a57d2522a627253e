package cron

import (
	"context"
	"log"
	"time"

	"barberbook/config"
	"barberbook/services/booking"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeDraftRevalidate sweeps active booking drafts and clears selected
// times that became unavailable (e.g. the lead-time window passed).
const TypeDraftRevalidate = "draft:revalidate"

// revalidateInterval matches the storefront's periodic tick.
const revalidateInterval = "@every 1m"

// TypeConfirmationExpire prunes pending confirmations past their TTL.
const TypeConfirmationExpire = "confirmation:expire"

const expireInterval = "@every 1h"

// InitDraftWorker runs the async worker and its scheduler in background.
func InitDraftWorker(flow booking.FlowService, logger *zap.Logger) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWorkerDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeDraftRevalidate, handleDraftRevalidate(flow, logger))
	mux.HandleFunc(TypeConfirmationExpire, handleConfirmationExpire(flow, logger))

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register(revalidateInterval, asynq.NewTask(TypeDraftRevalidate, nil)); err != nil {
		log.Fatalf("[DraftWorker] failed to register revalidation schedule: %v", err)
	}
	if _, err := scheduler.Register(expireInterval, asynq.NewTask(TypeConfirmationExpire, nil)); err != nil {
		log.Fatalf("[DraftWorker] failed to register expiry schedule: %v", err)
	}

	// Start async worker with retry logic
	go func() {
		log.Println("[DraftWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[DraftWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[DraftWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[DraftWorker] scheduler stopped: %v", err)
		}
	}()
}

func handleConfirmationExpire(flow booking.FlowService, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		if err := flow.ExpirePendingConfirmations(ctx); err != nil {
			logger.Warn("pending confirmation sweep failed", zap.Error(err))
			return err
		}
		return nil
	}
}

func handleDraftRevalidate(flow booking.FlowService, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		clients, err := flow.ActiveDrafts(ctx)
		if err != nil {
			logger.Warn("revalidation sweep: failed to list active drafts", zap.Error(err))
			return err
		}
		for _, clientID := range clients {
			if err := flow.RevalidateDraft(ctx, clientID); err != nil {
				logger.Warn("revalidation sweep: draft check failed",
					zap.String("clientID", clientID), zap.Error(err))
			}
		}
		logger.Debug("revalidation sweep complete", zap.Int("drafts", len(clients)))
		return nil
	}
}
