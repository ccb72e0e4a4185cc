package personalization

import (
	"context"

	"lilac/models"
)

// PrimeFieldValue overrides a field's proposed display value from the stored
// profile. The email of record always wins; phone wins only when a stored
// value exists; names keep whatever the client already entered and fall back
// to stored metadata, then to the account name. Other fields are untouched,
// as is everything for guests.
func (s *DefaultPersonalizationService) PrimeFieldValue(ctx context.Context, fieldKey, candidate string) string {
	profile := s.profileFor(ctx)
	if profile == nil {
		return candidate
	}

	switch fieldKey {
	case models.FieldBillingEmail:
		return profile.Email
	case models.FieldBillingPhone:
		if stored := profile.MetaValue(models.FieldBillingPhone); stored != "" {
			return stored
		}
		return candidate
	case models.FieldBillingFirstName:
		if candidate != "" {
			return candidate
		}
		if stored := profile.MetaValue(models.FieldBillingFirstName); stored != "" {
			return stored
		}
		if profile.FirstName != "" {
			return profile.FirstName
		}
		return candidate
	case models.FieldBillingLastName:
		if candidate != "" {
			return candidate
		}
		if stored := profile.MetaValue(models.FieldBillingLastName); stored != "" {
			return stored
		}
		if profile.LastName != "" {
			return profile.LastName
		}
		return candidate
	}
	return candidate
}
