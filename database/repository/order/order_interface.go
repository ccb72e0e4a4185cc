package orderRepo

import "lilac/models"

// OrderRepository defines methods for order persistence.
type OrderRepository interface {
	// Create inserts a new order record.
	Create(order *models.Order) error
	// GetByID retrieves an order by its unique ID.
	GetByID(id string) (*models.Order, error)
	// UpdateStatus sets the status of an existing order.
	UpdateStatus(id, status string) error
}
