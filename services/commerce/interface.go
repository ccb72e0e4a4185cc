package commerce

import (
	"context"

	orderRepo "lilac/database/repository/order"
	"lilac/hooks"
	"lilac/models"
)

// Service is the companion commerce engine: it owns the checkout field schema,
// runs the extension hooks around render and submission, and turns accepted
// submissions into orders.
type Service interface {
	// Enabled reports whether the commerce engine is active. Extensions
	// check this before registering hooks.
	Enabled() bool
	// RenderCheckout builds the checkout view for the current request:
	// default schema through the field filters, then per-field value priming.
	// draft carries any values the client already entered.
	RenderCheckout(ctx context.Context, draft models.Submission) *models.CheckoutView
	// SubmitCheckout runs the pre-validation hooks over the submission,
	// validates it against the filtered schema, and creates the order.
	SubmitCheckout(ctx context.Context, req models.CheckoutRequest) (*models.Order, error)
}

// ConfirmationQueue enqueues order-confirmation work for the async worker.
type ConfirmationQueue interface {
	Enqueue(payload models.OrderConfirmationPayload) error
}

// DefaultCommerceService is the production implementation.
type DefaultCommerceService struct {
	Hooks    *hooks.Engine
	Orders   orderRepo.OrderRepository
	Payments PaymentHandler
	Queue    ConfirmationQueue
}
