package customer

import (
	"testing"
	"time"

	"lilac/models"
	"lilac/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

type fakeRepo struct {
	account *models.Customer
}

func (f *fakeRepo) GetByEmail(email string) (*models.Customer, error) {
	if f.account != nil && f.account.Email == email {
		return f.account, nil
	}
	return nil, nil
}

func (f *fakeRepo) GetByID(string) (*models.Customer, error)      { return f.account, nil }
func (f *fakeRepo) Create(*models.Customer) error                 { return nil }
func (f *fakeRepo) Update(*models.Customer) error                 { return nil }
func (f *fakeRepo) Delete(string) error                           { return nil }
func (f *fakeRepo) GetByIDWithProjection(string, bson.M) (*models.Customer, error) {
	return f.account, nil
}

func TestAuthenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	account := &models.Customer{
		ID:           "cust-1",
		Email:        "a@example.com",
		FirstName:    "Alice",
		PasswordHash: string(hash),
	}
	svc := &DefaultCustomerService{Repo: &fakeRepo{account: account}}

	t.Run("valid credentials issue a usable token", func(t *testing.T) {
		resp, err := svc.Authenticate("a@example.com", "s3cret-pass")
		require.NoError(t, err)

		assert.Equal(t, "cust-1", resp.ID)
		assert.Equal(t, "Alice", resp.FirstName)

		sub, err := utils.ExtractIDFromToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "cust-1", sub)
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		_, err := svc.Authenticate("a@example.com", "wrong")
		require.Error(t, err)
	})

	t.Run("unknown email rejected", func(t *testing.T) {
		_, err := svc.Authenticate("nobody@example.com", "s3cret-pass")
		require.Error(t, err)
	})
}

func TestTokenDuration(t *testing.T) {
	assert.Equal(t, 24*time.Hour, tokenDuration)
}
