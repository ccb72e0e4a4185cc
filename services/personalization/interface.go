package personalization

import (
	"context"
	"sync"

	customerRepo "lilac/database/repository/customer"
	"lilac/models"
	"lilac/utils"

	"go.uber.org/zap"
)

// Service personalizes the checkout flow for authenticated customers: it
// narrows the editable billing fields, pre-fills them from the stored profile,
// and enforces that order processing uses stored contact details. Guest
// checkout passes through untouched.
type Service interface {
	// FilterCheckoutFields reduces the billing section to the personalized
	// allow-list and disables shipping collection for authenticated customers.
	FilterCheckoutFields(ctx context.Context, schema models.FieldSchema) models.FieldSchema
	// PrimeFieldValue overrides a field's proposed display value from the
	// stored profile where one exists.
	PrimeFieldValue(ctx context.Context, fieldKey, candidate string) string
	// EnforceSubmission rewrites the submission in place so that contact
	// details of record cannot be overridden by the client.
	EnforceSubmission(ctx context.Context, submission models.Submission)
}

// DefaultPersonalizationService is the production implementation.
type DefaultPersonalizationService struct {
	Repo customerRepo.CustomerRepository

	mu         sync.Mutex
	configured bool
}

// profileFor loads the stored profile for the request's customer. It returns
// nil for guests and degrades to nil (a per-request no-op) when the lookup fails.
func (s *DefaultPersonalizationService) profileFor(ctx context.Context) *models.Customer {
	customerID := utils.CustomerIDFrom(ctx)
	if customerID == "" {
		return nil
	}
	customer, err := s.Repo.GetByID(customerID)
	if err != nil {
		utils.GetLogger().Warn("Failed to load customer profile; skipping personalization",
			zap.String("customerID", customerID), zap.Error(err))
		return nil
	}
	return customer
}
