package models

import "time"

// Customer is the account record for a registered shopper, including the
// per-customer metadata store maintained by the account system. Checkout
// personalization reads it; it never writes it.
type Customer struct {
	ID           string            `bson:"id" json:"id"`
	Email        string            `bson:"email" json:"email"`
	FirstName    string            `bson:"firstName" json:"firstName"`
	LastName     string            `bson:"lastName" json:"lastName"`
	PhoneNumber  string            `bson:"phoneNumber" json:"phoneNumber"`
	PasswordHash string            `bson:"password_hash" json:"-"`
	Meta         map[string]string `bson:"meta" json:"meta,omitempty"`
	CreatedAt    time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// MetaValue returns the stored metadata value for key, or "" when absent.
func (c *Customer) MetaValue(key string) string {
	if c == nil || c.Meta == nil {
		return ""
	}
	return c.Meta[key]
}
