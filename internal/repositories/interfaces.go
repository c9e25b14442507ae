package repositories

import (
	"errors"

	"tradesim/internal/models"
)

var (
	// ErrAccountNotFound is returned when no account exists for a username.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateUsername is returned when creating an account whose
	// username is already registered.
	ErrDuplicateUsername = errors.New("username already registered")
)

// AccountRepositoryInterface defines the contract for the account registry.
// Usernames are matched case-insensitively.
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByUsername(username string) (*models.Account, error)
	List() []*models.Account
	Count() int
}
