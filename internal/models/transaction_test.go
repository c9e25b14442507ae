package models

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tx      Transaction
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid deposit",
			tx: Transaction{
				ID:     uuid.New(),
				Kind:   TransactionKindDeposit,
				Amount: decimal.NewFromInt(100),
			},
		},
		{
			name: "valid buy",
			tx: Transaction{
				ID:            uuid.New(),
				Kind:          TransactionKindBuy,
				Symbol:        "AAPL",
				Quantity:      10,
				PricePerShare: decimal.NewFromInt(150),
				Amount:        decimal.NewFromInt(1500),
			},
		},
		{
			name: "invalid kind",
			tx: Transaction{
				Kind:   "transfer",
				Amount: decimal.NewFromInt(100),
			},
			wantErr: true,
			errMsg:  "invalid transaction kind",
		},
		{
			name: "non-positive amount",
			tx: Transaction{
				Kind:   TransactionKindWithdrawal,
				Amount: decimal.Zero,
			},
			wantErr: true,
			errMsg:  "amount must be positive",
		},
		{
			name: "trade without symbol",
			tx: Transaction{
				Kind:          TransactionKindSell,
				Quantity:      5,
				PricePerShare: decimal.NewFromInt(150),
				Amount:        decimal.NewFromInt(750),
			},
			wantErr: true,
			errMsg:  "requires a symbol",
		},
		{
			name: "trade without quantity",
			tx: Transaction{
				Kind:          TransactionKindBuy,
				Symbol:        "AAPL",
				PricePerShare: decimal.NewFromInt(150),
				Amount:        decimal.NewFromInt(150),
			},
			wantErr: true,
			errMsg:  "positive quantity",
		},
		{
			name: "trade without unit price",
			tx: Transaction{
				Kind:     TransactionKindBuy,
				Symbol:   "AAPL",
				Quantity: 1,
				Amount:   decimal.NewFromInt(150),
			},
			wantErr: true,
			errMsg:  "positive unit price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestTransaction_KindPredicates(t *testing.T) {
	assert.True(t, (&Transaction{Kind: TransactionKindBuy}).IsTrade())
	assert.True(t, (&Transaction{Kind: TransactionKindSell}).IsTrade())
	assert.False(t, (&Transaction{Kind: TransactionKindDeposit}).IsTrade())
	assert.True(t, (&Transaction{Kind: TransactionKindDeposit}).IsCash())
	assert.True(t, (&Transaction{Kind: TransactionKindWithdrawal}).IsCash())
	assert.False(t, (&Transaction{Kind: TransactionKindBuy}).IsCash())
}

func TestGenerateTransactionReference(t *testing.T) {
	ref := GenerateTransactionReference()
	assert.True(t, strings.HasPrefix(ref, "TXN-"))

	other := GenerateTransactionReference()
	assert.NotEqual(t, ref, other)
}

func TestNormalizeSymbol(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"aapl", "AAPL"},
		{"  TSLA  ", "TSLA"},
		{" googl\t", "GOOGL"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeSymbol(tt.in))
	}
}
