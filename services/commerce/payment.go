package commerce

import (
	"context"
	"fmt"
	"math"

	"lilac/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentHandler creates payment intents for card checkouts.
type PaymentHandler interface {
	CreateIntent(ctx context.Context, order *models.Order) (string, error)
}

// StripePaymentHandler implements PaymentHandler against Stripe.
type StripePaymentHandler struct {
	logger *zap.Logger
}

// NewStripePaymentHandler returns a Stripe-backed payment handler.
func NewStripePaymentHandler(logger *zap.Logger) *StripePaymentHandler {
	return &StripePaymentHandler{logger: logger}
}

// CreateIntent creates a Stripe PaymentIntent for the order amount and returns
// its ID. The billing email of record becomes the receipt address.
func (h *StripePaymentHandler) CreateIntent(ctx context.Context, order *models.Order) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(order.Amount * 100))),
		Currency: stripe.String(order.Currency),
		Metadata: map[string]string{"orderId": order.ID},
	}
	params.Context = ctx
	if email := order.Billing.Value(models.FieldBillingEmail); email != "" {
		params.ReceiptEmail = stripe.String(email)
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe payment intent: %w", err)
	}

	h.logger.Info("Payment intent created",
		zap.String("orderID", order.ID), zap.String("paymentIntent", intent.ID))
	return intent.ID, nil
}
