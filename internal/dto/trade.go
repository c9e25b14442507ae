package dto

import (
	"time"

	"tradesim/internal/models"
)

// Trade Request DTOs

// TradeRequest represents the request payload for executing a trade
type TradeRequest struct {
	Side     string `json:"side" validate:"required,oneof=buy sell"`
	Symbol   string `json:"symbol" validate:"required,ticker_symbol"`
	Quantity string `json:"quantity" validate:"required"`
}

// Trade Response DTOs

// TradeResponse represents an executed trade
type TradeResponse struct {
	Side          string `json:"side"`
	Symbol        string `json:"symbol"`
	Quantity      int64  `json:"quantity"`
	PricePerShare string `json:"price_per_share"`
	TotalAmount   string `json:"total_amount"`
	Reference     string `json:"reference"`
	CashBalance   string `json:"cash_balance"`
}

// NewTradeResponse builds the API view of a trade confirmation
func NewTradeResponse(confirmation *models.TradeConfirmation) TradeResponse {
	return TradeResponse{
		Side:          confirmation.Side,
		Symbol:        confirmation.Symbol,
		Quantity:      confirmation.Quantity,
		PricePerShare: confirmation.PricePerShare.StringFixed(2),
		TotalAmount:   confirmation.TotalAmount.StringFixed(2),
		Reference:     confirmation.Reference,
		CashBalance:   confirmation.CashBalance.StringFixed(2),
	}
}

// QuoteResponse represents a price lookup result
type QuoteResponse struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

// HoldingResponse represents one portfolio position
type HoldingResponse struct {
	Symbol   string `json:"symbol"`
	Quantity int64  `json:"quantity"`
	Price    string `json:"price,omitempty"`
	Value    string `json:"value"`
	Priced   bool   `json:"priced"`
}

// PortfolioResponse represents an account's valued portfolio
type PortfolioResponse struct {
	Username            string            `json:"username"`
	CashBalance         string            `json:"cash_balance"`
	NetDeposits         string            `json:"net_deposits"`
	Holdings            []HoldingResponse `json:"holdings"`
	TotalSharesValue    string            `json:"total_shares_value"`
	TotalPortfolioValue string            `json:"total_portfolio_value"`
	ProfitLoss          string            `json:"profit_loss"`
	GeneratedAt         string            `json:"generated_at"`
}

// NewPortfolioResponse builds the API view of a portfolio summary
func NewPortfolioResponse(summary *models.PortfolioSummary) PortfolioResponse {
	holdings := make([]HoldingResponse, len(summary.Holdings))
	for i, holding := range summary.Holdings {
		view := HoldingResponse{
			Symbol:   holding.Symbol,
			Quantity: holding.Quantity,
			Value:    holding.Value.StringFixed(2),
			Priced:   holding.Priced,
		}
		if holding.Priced {
			view.Price = holding.Price.StringFixed(2)
		}
		holdings[i] = view
	}

	return PortfolioResponse{
		Username:            summary.Username,
		CashBalance:         summary.CashBalance.StringFixed(2),
		NetDeposits:         summary.NetDeposits.StringFixed(2),
		Holdings:            holdings,
		TotalSharesValue:    summary.TotalSharesValue.StringFixed(2),
		TotalPortfolioValue: summary.TotalPortfolioValue.StringFixed(2),
		ProfitLoss:          summary.ProfitLoss.StringFixed(2),
		GeneratedAt:         summary.GeneratedAt.Format(time.RFC3339),
	}
}
