package personalization

import (
	"context"

	"lilac/models"
	"lilac/utils"
)

// billingAllowList is the fixed set and order of billing fields an
// authenticated customer may see. Priorities are assigned by position,
// spaced by 10 starting at 10, so later filters can slot fields between.
var billingAllowList = []string{
	models.FieldBillingFirstName,
	models.FieldBillingLastName,
	models.FieldBillingEmail,
	models.FieldBillingPhone,
}

// readOnlyAttributes marks a field as read-only at the form level.
var readOnlyAttributes = map[string]string{"readonly": "readonly"}

// FilterCheckoutFields reduces the billing section to the allow-listed keys,
// marks the contact fields of record read-only, and empties the shipping
// section. Guest requests pass through unchanged.
func (s *DefaultPersonalizationService) FilterCheckoutFields(ctx context.Context, schema models.FieldSchema) models.FieldSchema {
	if utils.CustomerIDFrom(ctx) == "" {
		return schema
	}

	if billing, ok := schema[models.SectionBilling]; ok {
		allowed := make(map[string]bool, len(billingAllowList))
		for _, key := range billingAllowList {
			allowed[key] = true
		}
		for key := range billing {
			if !allowed[key] {
				delete(billing, key)
			}
		}

		priority := 10
		for _, key := range billingAllowList {
			field, present := billing[key]
			if present {
				field.Priority = priority
				switch key {
				case models.FieldBillingEmail:
					field.Required = true
					field.CustomAttributes = mergeAttributes(field.CustomAttributes, readOnlyAttributes)
				case models.FieldBillingPhone:
					field.CustomAttributes = mergeAttributes(field.CustomAttributes, readOnlyAttributes)
				}
				billing[key] = field
			}
			priority += 10
		}
	}

	// Shipping collection is disabled for authenticated customers.
	if _, ok := schema[models.SectionShipping]; ok {
		schema[models.SectionShipping] = models.FieldSection{}
	}

	return schema
}

// mergeAttributes returns the additive union of both attribute sets; keys from
// extra win on conflict.
func mergeAttributes(existing, extra map[string]string) map[string]string {
	merged := make(map[string]string, len(existing)+len(extra))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}
