package personalization

import (
	"context"

	"lilac/models"
)

// EnforceSubmission rewrites the submission in place before order validation.
// Email and phone are account-of-record data: email is overwritten with the
// stored address whenever one exists, phone whenever stored metadata exists,
// regardless of what the client submitted. Names are editable and only filled
// in when the client left them empty. Guests are untouched.
func (s *DefaultPersonalizationService) EnforceSubmission(ctx context.Context, submission models.Submission) {
	if submission == nil {
		return
	}
	profile := s.profileFor(ctx)
	if profile == nil {
		return
	}

	if profile.Email != "" {
		submission[models.FieldBillingEmail] = profile.Email
	}

	for _, key := range []string{models.FieldBillingFirstName, models.FieldBillingLastName} {
		if submission.Value(key) != "" {
			continue
		}
		if stored := profile.MetaValue(key); stored != "" {
			submission[key] = stored
		}
	}

	if stored := profile.MetaValue(models.FieldBillingPhone); stored != "" {
		submission[models.FieldBillingPhone] = stored
	}
}
