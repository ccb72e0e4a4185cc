package models

import "time"

// Order is a persisted checkout result.
type Order struct {
	ID            string     `bson:"id" json:"id"`
	CustomerID    string     `bson:"customerId,omitempty" json:"customerId,omitempty"`
	Billing       Submission `bson:"billing" json:"billing"`
	Amount        float64    `bson:"amount" json:"amount"`
	Currency      string     `bson:"currency" json:"currency"`
	PaymentMethod string     `bson:"paymentMethod" json:"paymentMethod"`
	PaymentID     string     `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	Status        string     `bson:"status" json:"status"`
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// OrderConfirmationPayload is the queued payload for the confirmation worker.
type OrderConfirmationPayload struct {
	OrderID string `json:"orderId"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}
