package repositories

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"tradesim/internal/models"
)

// InMemoryAccountRepository keeps accounts in a process-local map keyed by
// lowercased username. Accounts are held by pointer; all mutation happens
// through the account's own methods, the repository only resolves lookups.
type InMemoryAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*models.Account
}

// NewInMemoryAccountRepository creates an empty account registry.
func NewInMemoryAccountRepository() *InMemoryAccountRepository {
	return &InMemoryAccountRepository{
		accounts: make(map[string]*models.Account),
	}
}

// Create registers a new account. Returns ErrDuplicateUsername if the
// username is already taken, comparing case-insensitively.
func (r *InMemoryAccountRepository) Create(account *models.Account) error {
	key := usernameKey(account.Username)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateUsername, account.Username)
	}
	r.accounts[key] = account
	return nil
}

// GetByUsername resolves an account by username, case-insensitively.
func (r *InMemoryAccountRepository) GetByUsername(username string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, exists := r.accounts[usernameKey(username)]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, username)
	}
	return account, nil
}

// List returns all registered accounts ordered by username.
func (r *InMemoryAccountRepository) List() []*models.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		out = append(out, account)
	}
	sort.Slice(out, func(i, j int) bool {
		return usernameKey(out[i].Username) < usernameKey(out[j].Username)
	})
	return out
}

// Count returns the number of registered accounts.
func (r *InMemoryAccountRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.accounts)
}

func usernameKey(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
