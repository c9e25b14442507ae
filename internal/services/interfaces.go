package services

import (
	"github.com/shopspring/decimal"

	"tradesim/internal/models"
)

// AccountServiceInterface defines the trading ledger operations exposed to
// the HTTP layer. All mutations are atomic: a failed operation leaves the
// account unchanged.
type AccountServiceInterface interface {
	OpenAccount(username string, initialDeposit decimal.Decimal) (*models.Account, error)
	GetAccount(username string) (*models.Account, error)
	Deposit(username string, amount decimal.Decimal) (decimal.Decimal, error)
	Withdraw(username string, amount decimal.Decimal) (decimal.Decimal, error)
	Buy(username, symbol string, quantity decimal.Decimal) (*models.TradeConfirmation, error)
	Sell(username, symbol string, quantity decimal.Decimal) (*models.TradeConfirmation, error)
	PortfolioSummary(username string) (*models.PortfolioSummary, error)
	TransactionHistory(username string, kind string, limit int) ([]models.Transaction, error)
}

// MetricsRecorderInterface records operational metrics for ledger activity.
type MetricsRecorderInterface interface {
	RecordOperation(kind, outcome string)
	RecordTradeAmount(amount decimal.Decimal)
	RecordOperationDuration(durationMs float64)
	SetOpenAccounts(count int)
}
