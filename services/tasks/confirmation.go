package tasks

import (
	"encoding/json"

	"lilac/config"
	"lilac/models"

	"github.com/hibiken/asynq"
)

const TypeOrderConfirmation = "order:confirmation"

// NewOrderConfirmationTask builds the asynq task for an order confirmation.
func NewOrderConfirmationTask(payload models.OrderConfirmationPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeOrderConfirmation, b), nil
}

// AsynqConfirmationQueue enqueues confirmation tasks onto the Redis-backed queue.
type AsynqConfirmationQueue struct {
	client *asynq.Client
}

// NewAsynqConfirmationQueue creates a queue client from the app configuration.
func NewAsynqConfirmationQueue() *AsynqConfirmationQueue {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	return &AsynqConfirmationQueue{client: client}
}

// Enqueue queues an order confirmation for the background worker.
func (q *AsynqConfirmationQueue) Enqueue(payload models.OrderConfirmationPayload) error {
	task, err := NewOrderConfirmationTask(payload)
	if err != nil {
		return err
	}
	_, err = q.client.Enqueue(task)
	return err
}
