package models

// Checkout section names.
const (
	SectionBilling  = "billing"
	SectionShipping = "shipping"
)

// Billing field keys. The same keys identify submission values and
// per-customer metadata entries.
const (
	FieldBillingFirstName = "billing_first_name"
	FieldBillingLastName  = "billing_last_name"
	FieldBillingEmail     = "billing_email"
	FieldBillingPhone     = "billing_phone"
)

// Field describes a single checkout form field.
type Field struct {
	Label            string            `json:"label"`
	Type             string            `json:"type"`
	Required         bool              `json:"required"`
	Priority         int               `json:"priority"`
	CustomAttributes map[string]string `json:"customAttributes,omitempty"`
}

// FieldSection maps field keys to their descriptors within one checkout section.
type FieldSection map[string]Field

// FieldSchema maps section names to their field sets. It is rebuilt for every
// checkout render and mutated, not owned, by field filters.
type FieldSchema map[string]FieldSection

// Submission holds the posted key/value form data for one checkout request.
// Pre-validation hooks mutate it in place.
type Submission map[string]string

// Value returns the submitted value for key, or "" when absent.
func (s Submission) Value(key string) string {
	return s[key]
}

// CheckoutView is what a checkout render returns: the filtered field schema
// plus the primed display value for every retained field.
type CheckoutView struct {
	Fields FieldSchema       `json:"fields"`
	Values map[string]string `json:"values"`
}

// CheckoutRequest is the payload for a checkout submission.
type CheckoutRequest struct {
	Fields        Submission `json:"fields" binding:"required"`
	Amount        float64    `json:"amount" binding:"required"`
	PaymentMethod string     `json:"paymentMethod"`
}
