package customerRepo

import (
	"lilac/models"

	"go.mongodb.org/mongo-driver/bson"
)

// CustomerRepository defines methods for customer account data access.
// Checkout personalization only uses the read side.
type CustomerRepository interface {
	// GetByID retrieves a customer by its unique ID.
	GetByID(id string) (*models.Customer, error)
	// GetByEmail retrieves a customer by its email address. Returns nil
	// without error when no customer matches.
	GetByEmail(email string) (*models.Customer, error)
	// Create inserts a new customer record.
	Create(customer *models.Customer) error
	// Update modifies an existing customer record.
	Update(customer *models.Customer) error
	// Delete removes a customer record by its ID.
	Delete(id string) error
	// GetByIDWithProjection retrieves a customer by its unique ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.Customer, error)
}
