package utils

import "context"

type customerIDKey struct{}

// WithCustomerID returns a context carrying the authenticated customer's ID.
func WithCustomerID(ctx context.Context, customerID string) context.Context {
	return context.WithValue(ctx, customerIDKey{}, customerID)
}

// CustomerIDFrom extracts the authenticated customer's ID from the context.
// It returns the empty string for guest (unauthenticated) requests.
func CustomerIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(customerIDKey{}).(string)
	return id
}
