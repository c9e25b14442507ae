package dto

import (
	"time"

	"tradesim/internal/models"
)

// Account Request DTOs

// OpenAccountRequest represents the request payload for opening a trading account
type OpenAccountRequest struct {
	Username       string `json:"username" validate:"required,username"`
	InitialDeposit string `json:"initial_deposit" validate:"required"`
}

// CashRequest represents the request payload for a deposit or withdrawal
type CashRequest struct {
	Amount string `json:"amount" validate:"required"`
}

// Account Response DTOs

// AccountResponse represents an account in API responses
type AccountResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	CashBalance string `json:"cash_balance"`
	CreatedAt   string `json:"created_at"`
}

// NewAccountResponse builds the API view of an account
func NewAccountResponse(account *models.Account) AccountResponse {
	return AccountResponse{
		ID:          account.ID.String(),
		Username:    account.Username,
		CashBalance: account.CashBalance().StringFixed(2),
		CreatedAt:   account.CreatedAt.Format(time.RFC3339),
	}
}

// CashResponse represents the result of a deposit or withdrawal
type CashResponse struct {
	Username    string `json:"username"`
	Amount      string `json:"amount"`
	CashBalance string `json:"cash_balance"`
	Message     string `json:"message"`
}

// TransactionResponse represents a single ledger entry in API responses
type TransactionResponse struct {
	ID            string `json:"id"`
	Reference     string `json:"reference"`
	Kind          string `json:"kind"`
	Symbol        string `json:"symbol,omitempty"`
	Quantity      int64  `json:"quantity,omitempty"`
	PricePerShare string `json:"price_per_share,omitempty"`
	Amount        string `json:"amount"`
	Timestamp     string `json:"timestamp"`
}

// NewTransactionResponse builds the API view of a ledger entry
func NewTransactionResponse(txn models.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:        txn.ID.String(),
		Reference: txn.Reference,
		Kind:      txn.Kind,
		Amount:    txn.Amount.StringFixed(2),
		Timestamp: txn.Timestamp.Format(time.RFC3339Nano),
	}
	if txn.IsTrade() {
		resp.Symbol = txn.Symbol
		resp.Quantity = txn.Quantity
		resp.PricePerShare = txn.PricePerShare.StringFixed(2)
	}
	return resp
}

// TransactionListResponse represents an account's transaction history
type TransactionListResponse struct {
	Username     string                `json:"username"`
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// NewTransactionListResponse builds the API view of a transaction history,
// already ordered most recent first
func NewTransactionListResponse(username string, history []models.Transaction) TransactionListResponse {
	views := make([]TransactionResponse, len(history))
	for i, txn := range history {
		views[i] = NewTransactionResponse(txn)
	}
	return TransactionListResponse{
		Username:     username,
		Transactions: views,
		Total:        len(views),
	}
}
