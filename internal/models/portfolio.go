package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Holding is one valued position inside a portfolio summary. Priced is false
// when the symbol no longer resolves to a quote; such positions keep their
// share count but carry zero value.
type Holding struct {
	Symbol   string          `json:"symbol"`
	Quantity int64           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Value    decimal.Decimal `json:"value"`
	Priced   bool            `json:"priced"`
}

// PortfolioSummary is a derived snapshot of an account, recomputed on demand
// and never stored. Net deposits are deposits minus withdrawals; profit/loss
// is total portfolio value minus net deposits.
type PortfolioSummary struct {
	Username            string          `json:"username"`
	CashBalance         decimal.Decimal `json:"cash_balance"`
	NetDeposits         decimal.Decimal `json:"net_deposits"`
	Holdings            []Holding       `json:"holdings"`
	TotalSharesValue    decimal.Decimal `json:"total_shares_value"`
	TotalPortfolioValue decimal.Decimal `json:"total_portfolio_value"`
	ProfitLoss          decimal.Decimal `json:"profit_loss"`
	GeneratedAt         time.Time       `json:"generated_at"`
}
