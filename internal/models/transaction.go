package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TransactionKindDeposit    = "deposit"
	TransactionKindWithdrawal = "withdrawal"
	TransactionKindBuy        = "buy"
	TransactionKindSell       = "sell"
)

var ErrInvalidTransactionKind = errors.New("invalid transaction kind")

// Transaction is a single immutable entry in an account's ledger. Cash
// movements (deposit, withdrawal) carry only an amount; trades additionally
// record the symbol, share quantity, and unit price at execution time.
// Amounts are always positive; the kind determines the direction.
type Transaction struct {
	ID            uuid.UUID       `json:"id"`
	Reference     string          `json:"reference"`
	Kind          string          `json:"kind"`
	Symbol        string          `json:"symbol,omitempty"`
	Quantity      int64           `json:"quantity,omitempty"`
	PricePerShare decimal.Decimal `json:"price_per_share"`
	Amount        decimal.Decimal `json:"amount"`
	Timestamp     time.Time       `json:"timestamp"`
}

// Validate checks the structural invariants of a ledger entry.
func (t *Transaction) Validate() error {
	if !IsValidTransactionKind(t.Kind) {
		return ErrInvalidTransactionKind
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("transaction amount must be positive")
	}

	if t.IsTrade() {
		if t.Symbol == "" {
			return errors.New("trade transaction requires a symbol")
		}
		if t.Quantity <= 0 {
			return errors.New("trade transaction requires a positive quantity")
		}
		if t.PricePerShare.LessThanOrEqual(decimal.Zero) {
			return errors.New("trade transaction requires a positive unit price")
		}
	}

	return nil
}

// IsTrade returns true for buy and sell entries.
func (t *Transaction) IsTrade() bool {
	return t.Kind == TransactionKindBuy || t.Kind == TransactionKindSell
}

// IsCash returns true for deposit and withdrawal entries.
func (t *Transaction) IsCash() bool {
	return t.Kind == TransactionKindDeposit || t.Kind == TransactionKindWithdrawal
}

// IsValidTransactionKind checks if the transaction kind is valid
func IsValidTransactionKind(kind string) bool {
	switch kind {
	case TransactionKindDeposit, TransactionKindWithdrawal, TransactionKindBuy, TransactionKindSell:
		return true
	default:
		return false
	}
}

// GenerateTransactionReference generates a unique ledger entry reference
func GenerateTransactionReference() string {
	return "TXN-" + uuid.New().String()[:8] + "-" + time.Now().UTC().Format("20060102150405")
}

// NormalizeSymbol trims whitespace and upper-cases a ticker symbol. Every
// lookup and every stored holding key goes through this so "  aapl " and
// "AAPL" refer to the same position.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
