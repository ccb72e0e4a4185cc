package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"lilac/config"
	orderRepo "lilac/database/repository/order"
	"lilac/models"
	"lilac/services/tasks"

	"github.com/hibiken/asynq"
)

// InitConfirmationWorker runs the async confirmation worker in background.
func InitConfirmationWorker(orders orderRepo.OrderRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeOrderConfirmation, handleConfirmationTask(orders))

	go func() {
		log.Println("[ConfirmationWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ConfirmationWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ConfirmationWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleConfirmationTask(orders orderRepo.OrderRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.OrderConfirmationPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ConfirmationHandler] Invalid payload: %v", err)
			return err
		}

		order, err := orders.GetByID(p.OrderID)
		if err != nil {
			log.Printf("[ConfirmationHandler] Failed to load order %s: %v", p.OrderID, err)
			return err
		}
		if order == nil {
			log.Printf("[ConfirmationHandler] Order %s no longer exists; dropping task", p.OrderID)
			return nil
		}

		// Mail dispatch is owned by the host platform; record the send here.
		log.Printf("[ConfirmationHandler] Order %s confirmed for %s <%s>", p.OrderID, p.Name, p.Email)

		if order.Status == "pending" {
			if err := orders.UpdateStatus(order.ID, "confirmed"); err != nil {
				log.Printf("[ConfirmationHandler] Failed to mark order %s confirmed: %v", order.ID, err)
				return err
			}
		}
		return nil
	}
}
