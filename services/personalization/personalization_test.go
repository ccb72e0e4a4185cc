package personalization

import (
	"context"
	"errors"
	"testing"

	"lilac/hooks"
	"lilac/models"
	"lilac/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeCustomerRepo struct {
	customers map[string]*models.Customer
	err       error
}

func (f *fakeCustomerRepo) GetByID(id string) (*models.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.customers[id], nil
}

func (f *fakeCustomerRepo) GetByEmail(email string) (*models.Customer, error) {
	for _, c := range f.customers {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) GetByIDWithProjection(id string, _ bson.M) (*models.Customer, error) {
	return f.GetByID(id)
}

func (f *fakeCustomerRepo) Create(*models.Customer) error { return nil }
func (f *fakeCustomerRepo) Update(*models.Customer) error { return nil }
func (f *fakeCustomerRepo) Delete(string) error           { return nil }

func newService(customers ...*models.Customer) *DefaultPersonalizationService {
	repo := &fakeCustomerRepo{customers: make(map[string]*models.Customer)}
	for _, c := range customers {
		repo.customers[c.ID] = c
	}
	return &DefaultPersonalizationService{Repo: repo}
}

func authedCtx(customerID string) context.Context {
	return utils.WithCustomerID(context.Background(), customerID)
}

func fullSchema() models.FieldSchema {
	return models.FieldSchema{
		models.SectionBilling: {
			models.FieldBillingFirstName: {Label: "First name", Type: "text", Required: true, Priority: 10},
			models.FieldBillingLastName:  {Label: "Last name", Type: "text", Required: true, Priority: 20},
			"billing_company":            {Label: "Company name", Type: "text", Priority: 30},
			"billing_address_1":          {Label: "Street address", Type: "text", Required: true, Priority: 50},
			"billing_city":               {Label: "Town / City", Type: "text", Required: true, Priority: 70},
			models.FieldBillingEmail:     {Label: "Email address", Type: "email", Priority: 90},
			models.FieldBillingPhone:     {Label: "Phone", Type: "tel", Priority: 100, CustomAttributes: map[string]string{"autocomplete": "tel"}},
		},
		models.SectionShipping: {
			"shipping_first_name": {Label: "First name", Type: "text", Required: true, Priority: 10},
			"shipping_address_1":  {Label: "Street address", Type: "text", Required: true, Priority: 40},
		},
	}
}

func cloneSchema(schema models.FieldSchema) models.FieldSchema {
	out := models.FieldSchema{}
	for section, fields := range schema {
		cp := models.FieldSection{}
		for key, field := range fields {
			if field.CustomAttributes != nil {
				attrs := make(map[string]string, len(field.CustomAttributes))
				for k, v := range field.CustomAttributes {
					attrs[k] = v
				}
				field.CustomAttributes = attrs
			}
			cp[key] = field
		}
		out[section] = cp
	}
	return out
}

func TestFilterCheckoutFields(t *testing.T) {
	cust := &models.Customer{ID: "cust-1", Email: "a@example.com"}

	t.Run("guest passthrough leaves schema untouched", func(t *testing.T) {
		svc := newService(cust)
		schema := fullSchema()
		want := cloneSchema(schema)

		got := svc.FilterCheckoutFields(context.Background(), schema)

		assert.Equal(t, want, got)
	})

	t.Run("billing reduced to allow-list with fixed priorities", func(t *testing.T) {
		svc := newService(cust)

		got := svc.FilterCheckoutFields(authedCtx("cust-1"), fullSchema())

		billing := got[models.SectionBilling]
		require.Len(t, billing, 4)
		assert.Equal(t, 10, billing[models.FieldBillingFirstName].Priority)
		assert.Equal(t, 20, billing[models.FieldBillingLastName].Priority)
		assert.Equal(t, 30, billing[models.FieldBillingEmail].Priority)
		assert.Equal(t, 40, billing[models.FieldBillingPhone].Priority)
	})

	t.Run("email required, email and phone read-only", func(t *testing.T) {
		svc := newService(cust)

		got := svc.FilterCheckoutFields(authedCtx("cust-1"), fullSchema())

		billing := got[models.SectionBilling]
		email := billing[models.FieldBillingEmail]
		assert.True(t, email.Required)
		assert.Equal(t, "readonly", email.CustomAttributes["readonly"])

		phone := billing[models.FieldBillingPhone]
		assert.Equal(t, "readonly", phone.CustomAttributes["readonly"])
		// The merge is additive: pre-existing attributes survive.
		assert.Equal(t, "tel", phone.CustomAttributes["autocomplete"])
	})

	t.Run("shipping section emptied", func(t *testing.T) {
		svc := newService(cust)

		got := svc.FilterCheckoutFields(authedCtx("cust-1"), fullSchema())

		shipping, ok := got[models.SectionShipping]
		require.True(t, ok)
		assert.Empty(t, shipping)
	})

	t.Run("absent allow-listed keys keep their slot priorities", func(t *testing.T) {
		svc := newService(cust)
		schema := fullSchema()
		delete(schema[models.SectionBilling], models.FieldBillingLastName)

		got := svc.FilterCheckoutFields(authedCtx("cust-1"), schema)

		billing := got[models.SectionBilling]
		require.Len(t, billing, 3)
		assert.Equal(t, 10, billing[models.FieldBillingFirstName].Priority)
		assert.Equal(t, 30, billing[models.FieldBillingEmail].Priority)
		assert.Equal(t, 40, billing[models.FieldBillingPhone].Priority)
	})

	t.Run("missing shipping section is not invented", func(t *testing.T) {
		svc := newService(cust)
		schema := fullSchema()
		delete(schema, models.SectionShipping)

		got := svc.FilterCheckoutFields(authedCtx("cust-1"), schema)

		_, ok := got[models.SectionShipping]
		assert.False(t, ok)
	})
}

func TestPrimeFieldValue(t *testing.T) {
	cust := &models.Customer{
		ID:        "cust-1",
		Email:     "a@example.com",
		FirstName: "Alice",
		LastName:  "Archer",
		Meta: map[string]string{
			models.FieldBillingPhone:    "555-0000",
			models.FieldBillingLastName: "Stored-Last",
		},
	}

	t.Run("guest passthrough", func(t *testing.T) {
		svc := newService(cust)
		got := svc.PrimeFieldValue(context.Background(), models.FieldBillingEmail, "typed@example.com")
		assert.Equal(t, "typed@example.com", got)
	})

	t.Run("email always overridden with account email", func(t *testing.T) {
		svc := newService(cust)
		got := svc.PrimeFieldValue(authedCtx("cust-1"), models.FieldBillingEmail, "typed@example.com")
		assert.Equal(t, "a@example.com", got)
	})

	t.Run("phone overridden only when stored value exists", func(t *testing.T) {
		svc := newService(cust)
		got := svc.PrimeFieldValue(authedCtx("cust-1"), models.FieldBillingPhone, "555-1234")
		assert.Equal(t, "555-0000", got)

		noPhone := &models.Customer{ID: "cust-2", Email: "b@example.com"}
		svc = newService(noPhone)
		got = svc.PrimeFieldValue(authedCtx("cust-2"), models.FieldBillingPhone, "555-1234")
		assert.Equal(t, "555-1234", got)
	})

	t.Run("non-empty name candidate is preserved", func(t *testing.T) {
		svc := newService(cust)
		got := svc.PrimeFieldValue(authedCtx("cust-1"), models.FieldBillingFirstName, "Jane")
		assert.Equal(t, "Jane", got)
	})

	t.Run("empty name falls back to metadata then account name", func(t *testing.T) {
		svc := newService(cust)
		// Last name has dedicated metadata.
		got := svc.PrimeFieldValue(authedCtx("cust-1"), models.FieldBillingLastName, "")
		assert.Equal(t, "Stored-Last", got)
		// First name has no metadata; the account name wins.
		got = svc.PrimeFieldValue(authedCtx("cust-1"), models.FieldBillingFirstName, "")
		assert.Equal(t, "Alice", got)
	})

	t.Run("unrelated keys untouched", func(t *testing.T) {
		svc := newService(cust)
		got := svc.PrimeFieldValue(authedCtx("cust-1"), "billing_city", "Springfield")
		assert.Equal(t, "Springfield", got)
	})

	t.Run("profile lookup failure degrades to passthrough", func(t *testing.T) {
		svc := &DefaultPersonalizationService{Repo: &fakeCustomerRepo{err: errors.New("store down")}}
		got := svc.PrimeFieldValue(authedCtx("cust-1"), models.FieldBillingEmail, "typed@example.com")
		assert.Equal(t, "typed@example.com", got)
	})
}

func TestEnforceSubmission(t *testing.T) {
	t.Run("guest submission untouched", func(t *testing.T) {
		svc := newService(&models.Customer{ID: "cust-1", Email: "a@example.com"})
		sub := models.Submission{models.FieldBillingEmail: "spoofed@example.com"}

		svc.EnforceSubmission(context.Background(), sub)

		assert.Equal(t, "spoofed@example.com", sub[models.FieldBillingEmail])
	})

	t.Run("spoofed email rewritten to stored account email", func(t *testing.T) {
		svc := newService(&models.Customer{ID: "cust-1", Email: "a@example.com"})
		sub := models.Submission{models.FieldBillingEmail: "spoofed@example.com"}

		svc.EnforceSubmission(authedCtx("cust-1"), sub)

		assert.Equal(t, "a@example.com", sub[models.FieldBillingEmail])
	})

	t.Run("submitted phone kept when no stored value", func(t *testing.T) {
		svc := newService(&models.Customer{ID: "cust-1", Email: "a@example.com"})
		sub := models.Submission{models.FieldBillingPhone: "555-1234"}

		svc.EnforceSubmission(authedCtx("cust-1"), sub)

		assert.Equal(t, "555-1234", sub[models.FieldBillingPhone])
	})

	t.Run("stored phone overrides submitted phone", func(t *testing.T) {
		svc := newService(&models.Customer{
			ID:    "cust-1",
			Email: "a@example.com",
			Meta:  map[string]string{models.FieldBillingPhone: "555-9999"},
		})
		sub := models.Submission{models.FieldBillingPhone: "555-1234"}

		svc.EnforceSubmission(authedCtx("cust-1"), sub)

		assert.Equal(t, "555-9999", sub[models.FieldBillingPhone])
	})

	t.Run("submitted name preserved even with empty stored metadata", func(t *testing.T) {
		svc := newService(&models.Customer{ID: "cust-1", Email: "a@example.com"})
		sub := models.Submission{models.FieldBillingFirstName: "Jane"}

		svc.EnforceSubmission(authedCtx("cust-1"), sub)

		assert.Equal(t, "Jane", sub[models.FieldBillingFirstName])
	})

	t.Run("empty name filled from stored metadata", func(t *testing.T) {
		svc := newService(&models.Customer{
			ID:    "cust-1",
			Email: "a@example.com",
			Meta: map[string]string{
				models.FieldBillingFirstName: "Stored-First",
				models.FieldBillingLastName:  "Stored-Last",
			},
		})
		sub := models.Submission{models.FieldBillingFirstName: "", models.FieldBillingLastName: ""}

		svc.EnforceSubmission(authedCtx("cust-1"), sub)

		assert.Equal(t, "Stored-First", sub[models.FieldBillingFirstName])
		assert.Equal(t, "Stored-Last", sub[models.FieldBillingLastName])
	})
}

type fakeProbe bool

func (p fakeProbe) Enabled() bool { return bool(p) }

func TestSetup(t *testing.T) {
	t.Run("registers all three hooks", func(t *testing.T) {
		svc := newService()
		engine := hooks.NewEngine()

		require.NoError(t, svc.Setup(engine, fakeProbe(true)))

		assert.True(t, engine.Registered(HookFilterFields))
		assert.True(t, engine.Registered(HookPrimeValues))
		assert.True(t, engine.Registered(HookEnforceProfile))
	})

	t.Run("second call is a guarded no-op", func(t *testing.T) {
		svc := newService()
		engine := hooks.NewEngine()

		require.NoError(t, svc.Setup(engine, fakeProbe(true)))
		require.NoError(t, svc.Setup(engine, fakeProbe(true)))
	})

	t.Run("refuses when commerce engine inactive", func(t *testing.T) {
		svc := newService()
		engine := hooks.NewEngine()

		err := svc.Setup(engine, fakeProbe(false))

		require.ErrorIs(t, err, ErrCommerceUnavailable)
		assert.False(t, engine.Registered(HookFilterFields))
	})
}
