package commerce

import (
	"context"
	"fmt"
	"sort"
	"time"

	"lilac/config"
	"lilac/models"
	"lilac/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// defaultCheckoutSchema builds the stock field schema shown to guests. It is
// reconstructed for every render so field filters can mutate it freely.
func defaultCheckoutSchema() models.FieldSchema {
	return models.FieldSchema{
		models.SectionBilling: {
			models.FieldBillingFirstName: {Label: "First name", Type: "text", Required: true, Priority: 10},
			models.FieldBillingLastName:  {Label: "Last name", Type: "text", Required: true, Priority: 20},
			"billing_company":            {Label: "Company name", Type: "text", Priority: 30},
			"billing_country":            {Label: "Country / Region", Type: "country", Required: true, Priority: 40},
			"billing_address_1":          {Label: "Street address", Type: "text", Required: true, Priority: 50},
			"billing_address_2":          {Label: "Apartment, suite, unit", Type: "text", Priority: 60},
			"billing_city":               {Label: "Town / City", Type: "text", Required: true, Priority: 70},
			"billing_postcode":           {Label: "Postcode / ZIP", Type: "text", Required: true, Priority: 80},
			models.FieldBillingEmail:     {Label: "Email address", Type: "email", Required: true, Priority: 90},
			models.FieldBillingPhone:     {Label: "Phone", Type: "tel", Priority: 100},
		},
		models.SectionShipping: {
			"shipping_first_name": {Label: "First name", Type: "text", Required: true, Priority: 10},
			"shipping_last_name":  {Label: "Last name", Type: "text", Required: true, Priority: 20},
			"shipping_country":    {Label: "Country / Region", Type: "country", Required: true, Priority: 30},
			"shipping_address_1":  {Label: "Street address", Type: "text", Required: true, Priority: 40},
			"shipping_address_2":  {Label: "Apartment, suite, unit", Type: "text", Priority: 50},
			"shipping_city":       {Label: "Town / City", Type: "text", Required: true, Priority: 60},
			"shipping_postcode":   {Label: "Postcode / ZIP", Type: "text", Required: true, Priority: 70},
		},
	}
}

// Enabled reports whether the commerce engine is active.
func (s *DefaultCommerceService) Enabled() bool {
	return config.AppConfig.CommerceEnabled
}

// RenderCheckout builds the checkout view for the current request.
func (s *DefaultCommerceService) RenderCheckout(ctx context.Context, draft models.Submission) *models.CheckoutView {
	schema := s.Hooks.ApplyFieldFilters(ctx, defaultCheckoutSchema())

	values := make(map[string]string)
	for _, section := range schema {
		for key := range section {
			values[key] = s.Hooks.PrimeValue(ctx, key, draft.Value(key))
		}
	}

	return &models.CheckoutView{Fields: schema, Values: values}
}

// SubmitCheckout runs the submission through the pre-validation hooks,
// validates required fields against the filtered schema, persists the order,
// and hands card payments to the payment handler.
func (s *DefaultCommerceService) SubmitCheckout(ctx context.Context, req models.CheckoutRequest) (*models.Order, error) {
	logger := utils.GetLogger()

	if req.Amount <= 0 {
		return nil, fmt.Errorf("invalid order amount: %.2f", req.Amount)
	}
	submission := req.Fields
	if submission == nil {
		submission = models.Submission{}
	}

	// Extensions get the submission before any validation.
	s.Hooks.RunPreValidators(ctx, submission)

	schema := s.Hooks.ApplyFieldFilters(ctx, defaultCheckoutSchema())
	if err := validateRequired(schema, submission); err != nil {
		return nil, err
	}

	order := &models.Order{
		ID:            uuid.New().String(),
		CustomerID:    utils.CustomerIDFrom(ctx),
		Billing:       submission,
		Amount:        req.Amount,
		Currency:      config.AppConfig.Currency,
		PaymentMethod: req.PaymentMethod,
		Status:        "pending",
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if req.PaymentMethod == "card" {
		paymentID, err := s.Payments.CreateIntent(ctx, order)
		if err != nil {
			return nil, fmt.Errorf("failed to create payment intent: %w", err)
		}
		order.PaymentID = paymentID
		order.Status = "processing"
	}

	if err := s.Orders.Create(order); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	if s.Queue != nil {
		payload := models.OrderConfirmationPayload{
			OrderID: order.ID,
			Email:   submission.Value(models.FieldBillingEmail),
			Name:    submission.Value(models.FieldBillingFirstName),
		}
		if err := s.Queue.Enqueue(payload); err != nil {
			// Confirmation is best effort; the order already exists.
			logger.Warn("Failed to enqueue order confirmation",
				zap.String("orderID", order.ID), zap.Error(err))
		}
	}

	logger.Info("Checkout submitted",
		zap.String("orderID", order.ID), zap.String("customerID", order.CustomerID))
	return order, nil
}

// validateRequired checks every required field of the filtered schema against
// the submission. Field keys are reported in a stable order.
func validateRequired(schema models.FieldSchema, submission models.Submission) error {
	var missing []string
	for _, section := range schema {
		for key, field := range section {
			if field.Required && submission.Value(key) == "" {
				missing = append(missing, key)
			}
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return fmt.Errorf("missing required fields: %v", missing)
}
