package customer

import (
	"fmt"
	"time"

	customerRepo "lilac/database/repository/customer"
	"lilac/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthResponse contains the customer's ID, token, and profile summary.
type AuthResponse struct {
	ID        string `json:"id"`
	Token     string `json:"token"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// Service handles customer authentication for the checkout surface.
type Service interface {
	// Authenticate verifies the password for the account with the given
	// email and issues a signed token.
	Authenticate(email, password string) (*AuthResponse, error)
}

// DefaultCustomerService is the production implementation.
type DefaultCustomerService struct {
	Repo customerRepo.CustomerRepository
}

const tokenDuration = 24 * time.Hour

// Authenticate verifies credentials and issues a JWT for checkout requests.
func (s *DefaultCustomerService) Authenticate(email, password string) (*AuthResponse, error) {
	logger := utils.GetLogger()

	account, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if account == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		logger.Warn("Sign-in rejected", zap.String("email", email))
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(account.ID, account.Email, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResponse{
		ID:        account.ID,
		Token:     token,
		Email:     account.Email,
		FirstName: account.FirstName,
		LastName:  account.LastName,
	}, nil
}
