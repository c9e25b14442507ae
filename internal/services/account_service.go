package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"tradesim/internal/models"
	"tradesim/internal/pricing"
	"tradesim/internal/repositories"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrUsernameTaken   = errors.New("username already taken")
	ErrInvalidKind     = errors.New("invalid transaction kind filter")
)

// accountService implements AccountServiceInterface
type accountService struct {
	accountRepo repositories.AccountRepositoryInterface
	prices      pricing.PriceProvider
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

// NewAccountService creates the trading ledger service.
func NewAccountService(
	accountRepo repositories.AccountRepositoryInterface,
	prices pricing.PriceProvider,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AccountServiceInterface {
	return &accountService{
		accountRepo: accountRepo,
		prices:      prices,
		metrics:     metrics,
		logger:      logger,
	}
}

// OpenAccount registers a new account funded with an initial deposit.
func (s *accountService) OpenAccount(username string, initialDeposit decimal.Decimal) (*models.Account, error) {
	defer s.timeOperation(time.Now())

	account, err := models.NewAccount(username, initialDeposit)
	if err != nil {
		s.metrics.RecordOperation("open_account", "rejected")
		return nil, err
	}

	if err := s.accountRepo.Create(account); err != nil {
		if errors.Is(err, repositories.ErrDuplicateUsername) {
			s.metrics.RecordOperation("open_account", "rejected")
			return nil, fmt.Errorf("%w: %s", ErrUsernameTaken, username)
		}
		s.metrics.RecordOperation("open_account", "error")
		return nil, fmt.Errorf("failed to register account: %w", err)
	}

	s.metrics.RecordOperation("open_account", "success")
	s.metrics.SetOpenAccounts(s.accountRepo.Count())
	s.logger.Info("account opened",
		"username", account.Username,
		"account_id", account.ID,
		"initial_deposit", initialDeposit.StringFixed(2))

	return account, nil
}

// GetAccount resolves an account by username.
func (s *accountService) GetAccount(username string) (*models.Account, error) {
	account, err := s.accountRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, username)
		}
		return nil, fmt.Errorf("failed to resolve account: %w", err)
	}
	return account, nil
}

// Deposit adds funds to an account and returns the new cash balance.
func (s *accountService) Deposit(username string, amount decimal.Decimal) (decimal.Decimal, error) {
	defer s.timeOperation(time.Now())

	account, err := s.GetAccount(username)
	if err != nil {
		s.metrics.RecordOperation("deposit", "error")
		return decimal.Decimal{}, err
	}

	balance, err := account.Deposit(amount)
	if err != nil {
		s.metrics.RecordOperation("deposit", "rejected")
		return decimal.Decimal{}, err
	}

	s.metrics.RecordOperation("deposit", "success")
	s.logger.Info("deposit recorded",
		"username", account.Username,
		"amount", amount.StringFixed(2),
		"balance", balance.StringFixed(2))

	return balance, nil
}

// Withdraw removes funds from an account and returns the new cash balance.
func (s *accountService) Withdraw(username string, amount decimal.Decimal) (decimal.Decimal, error) {
	defer s.timeOperation(time.Now())

	account, err := s.GetAccount(username)
	if err != nil {
		s.metrics.RecordOperation("withdrawal", "error")
		return decimal.Decimal{}, err
	}

	balance, err := account.Withdraw(amount)
	if err != nil {
		s.metrics.RecordOperation("withdrawal", "rejected")
		return decimal.Decimal{}, err
	}

	s.metrics.RecordOperation("withdrawal", "success")
	s.logger.Info("withdrawal recorded",
		"username", account.Username,
		"amount", amount.StringFixed(2),
		"balance", balance.StringFixed(2))

	return balance, nil
}

// Buy purchases shares at the current quoted price.
func (s *accountService) Buy(username, symbol string, quantity decimal.Decimal) (*models.TradeConfirmation, error) {
	defer s.timeOperation(time.Now())

	account, err := s.GetAccount(username)
	if err != nil {
		s.metrics.RecordOperation("buy", "error")
		return nil, err
	}

	confirmation, err := account.Buy(symbol, quantity, s.prices.PriceOf)
	if err != nil {
		s.metrics.RecordOperation("buy", "rejected")
		return nil, err
	}

	s.metrics.RecordOperation("buy", "success")
	s.metrics.RecordTradeAmount(confirmation.TotalAmount)
	s.logger.Info("buy executed",
		"username", account.Username,
		"symbol", confirmation.Symbol,
		"quantity", confirmation.Quantity,
		"price", confirmation.PricePerShare.StringFixed(2),
		"total", confirmation.TotalAmount.StringFixed(2),
		"reference", confirmation.Reference)

	return confirmation, nil
}

// Sell disposes of shares at the current quoted price.
func (s *accountService) Sell(username, symbol string, quantity decimal.Decimal) (*models.TradeConfirmation, error) {
	defer s.timeOperation(time.Now())

	account, err := s.GetAccount(username)
	if err != nil {
		s.metrics.RecordOperation("sell", "error")
		return nil, err
	}

	confirmation, err := account.Sell(symbol, quantity, s.prices.PriceOf)
	if err != nil {
		s.metrics.RecordOperation("sell", "rejected")
		return nil, err
	}

	s.metrics.RecordOperation("sell", "success")
	s.metrics.RecordTradeAmount(confirmation.TotalAmount)
	s.logger.Info("sell executed",
		"username", account.Username,
		"symbol", confirmation.Symbol,
		"quantity", confirmation.Quantity,
		"price", confirmation.PricePerShare.StringFixed(2),
		"total", confirmation.TotalAmount.StringFixed(2),
		"reference", confirmation.Reference)

	return confirmation, nil
}

// PortfolioSummary values the account's holdings at current prices.
func (s *accountService) PortfolioSummary(username string) (*models.PortfolioSummary, error) {
	account, err := s.GetAccount(username)
	if err != nil {
		return nil, err
	}

	return account.PortfolioSummary(s.prices.PriceOf), nil
}

// TransactionHistory returns the account's transactions, most recent first.
// kind optionally restricts the result to one transaction kind; limit > 0
// caps the number of entries returned.
func (s *accountService) TransactionHistory(username string, kind string, limit int) ([]models.Transaction, error) {
	if kind != "" && !models.IsValidTransactionKind(kind) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidKind, kind)
	}

	account, err := s.GetAccount(username)
	if err != nil {
		return nil, err
	}

	history := account.TransactionHistory()
	if kind != "" {
		filtered := make([]models.Transaction, 0, len(history))
		for _, txn := range history {
			if txn.Kind == kind {
				filtered = append(filtered, txn)
			}
		}
		history = filtered
	}

	if limit > 0 && limit < len(history) {
		history = history[:limit]
	}
	return history, nil
}

func (s *accountService) timeOperation(start time.Time) {
	s.metrics.RecordOperationDuration(float64(time.Since(start).Milliseconds()))
}
