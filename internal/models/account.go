package models

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger guard errors. Every failed operation leaves the account untouched;
// callers match with errors.Is and surface the wrapped detail to the user.
var (
	ErrInvalidAmount      = errors.New("amount must be a positive number")
	ErrInvalidQuantity    = errors.New("quantity must be a positive whole number")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInsufficientShares = errors.New("insufficient shares")
	ErrInvalidSymbol      = errors.New("invalid symbol")
)

// PriceLookup resolves the current unit price for a normalized symbol.
// A false return means the symbol has no quotable price.
type PriceLookup func(symbol string) (decimal.Decimal, bool)

// Account is a single user's in-memory trading ledger: cash balance,
// per-symbol share counts, and an append-only transaction log. All mutators
// are check-then-commit: guards run first and either the whole operation
// applies or none of it does. Cash never goes negative, no holding entry is
// ever stored with a non-positive quantity, and the log records an entry
// only after its mutation has been applied.
type Account struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`

	mu           sync.Mutex
	cashBalance  decimal.Decimal
	holdings     map[string]int64
	transactions []Transaction

	now func() time.Time
}

// TradeConfirmation describes a successfully executed buy or sell.
type TradeConfirmation struct {
	Side          string          `json:"side"`
	Symbol        string          `json:"symbol"`
	Quantity      int64           `json:"quantity"`
	PricePerShare decimal.Decimal `json:"price_per_share"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Reference     string          `json:"reference"`
	CashBalance   decimal.Decimal `json:"cash_balance"`
}

// NewAccount opens a trading account funded by a mandatory positive initial
// deposit, recorded as the first ledger entry.
func NewAccount(username string, initialDeposit decimal.Decimal) (*Account, error) {
	if initialDeposit.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: initial deposit of $%s is not allowed",
			ErrInvalidAmount, initialDeposit.StringFixed(2))
	}

	a := &Account{
		ID:        uuid.New(),
		Username:  username,
		CreatedAt: time.Now().UTC(),
		holdings:  make(map[string]int64),
		now:       func() time.Time { return time.Now().UTC() },
	}
	a.cashBalance = initialDeposit
	a.appendTransaction(TransactionKindDeposit, initialDeposit, "", 0, decimal.Zero)

	return a, nil
}

// Deposit adds funds to the cash balance and returns the new balance.
func (a *Account) Deposit(amount decimal.Decimal) (decimal.Decimal, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: cannot deposit $%s",
			ErrInvalidAmount, amount.StringFixed(2))
	}

	a.cashBalance = a.cashBalance.Add(amount)
	a.appendTransaction(TransactionKindDeposit, amount, "", 0, decimal.Zero)
	return a.cashBalance, nil
}

// Withdraw removes funds from the cash balance and returns the new balance.
// The insufficient-funds message reports the exact balance available at the
// time of the attempt.
func (a *Account) Withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: cannot withdraw $%s",
			ErrInvalidAmount, amount.StringFixed(2))
	}

	if amount.GreaterThan(a.cashBalance) {
		return decimal.Zero, fmt.Errorf("%w: cannot withdraw more than the available cash balance of $%s",
			ErrInsufficientFunds, a.cashBalance.StringFixed(2))
	}

	a.cashBalance = a.cashBalance.Sub(amount)
	a.appendTransaction(TransactionKindWithdrawal, amount, "", 0, decimal.Zero)
	return a.cashBalance, nil
}

// Buy purchases shares at the price resolved through lookup. Guards run in a
// fixed order: quantity first, then symbol resolution, then funds, so an
// invalid quantity is always reported ahead of a funds problem. Fractional
// quantities are rejected outright, never rounded.
func (a *Account) Buy(symbol string, quantity decimal.Decimal, lookup PriceLookup) (*TradeConfirmation, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	qty, err := shareQuantity(quantity)
	if err != nil {
		return nil, err
	}

	sym := NormalizeSymbol(symbol)
	price, ok := a.resolvePrice(sym, lookup)
	if !ok {
		return nil, fmt.Errorf("%w: no price available for %q", ErrInvalidSymbol, symbol)
	}

	totalCost := price.Mul(decimal.NewFromInt(qty))
	if totalCost.GreaterThan(a.cashBalance) {
		return nil, fmt.Errorf("%w: buying %d shares of %s requires $%s but only $%s is available",
			ErrInsufficientFunds, qty, sym, totalCost.StringFixed(2), a.cashBalance.StringFixed(2))
	}

	a.cashBalance = a.cashBalance.Sub(totalCost)
	a.holdings[sym] += qty
	a.appendTransaction(TransactionKindBuy, totalCost, sym, qty, price)

	return &TradeConfirmation{
		Side:          TransactionKindBuy,
		Symbol:        sym,
		Quantity:      qty,
		PricePerShare: price,
		TotalAmount:   totalCost,
		Reference:     a.transactions[len(a.transactions)-1].Reference,
		CashBalance:   a.cashBalance,
	}, nil
}

// Sell disposes of shares at the price resolved through lookup. The owned
// quantity is checked before the price lookup, so selling shares you do not
// hold reports insufficient shares even when the symbol is unquotable.
// A position that reaches zero is removed from the holdings map entirely.
func (a *Account) Sell(symbol string, quantity decimal.Decimal, lookup PriceLookup) (*TradeConfirmation, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	qty, err := shareQuantity(quantity)
	if err != nil {
		return nil, err
	}

	sym := NormalizeSymbol(symbol)
	owned := a.holdings[sym]
	if qty > owned {
		return nil, fmt.Errorf("%w: cannot sell %d shares of %s, only %d owned",
			ErrInsufficientShares, qty, sym, owned)
	}

	price, ok := a.resolvePrice(sym, lookup)
	if !ok {
		return nil, fmt.Errorf("%w: no price available for %q", ErrInvalidSymbol, symbol)
	}

	proceeds := price.Mul(decimal.NewFromInt(qty))
	a.cashBalance = a.cashBalance.Add(proceeds)
	if owned == qty {
		delete(a.holdings, sym)
	} else {
		a.holdings[sym] = owned - qty
	}
	a.appendTransaction(TransactionKindSell, proceeds, sym, qty, price)

	return &TradeConfirmation{
		Side:          TransactionKindSell,
		Symbol:        sym,
		Quantity:      qty,
		PricePerShare: price,
		TotalAmount:   proceeds,
		Reference:     a.transactions[len(a.transactions)-1].Reference,
		CashBalance:   a.cashBalance,
	}, nil
}

// PortfolioSummary values the account at current prices. Holdings whose
// symbol no longer resolves to a price contribute zero value rather than
// failing: historical positions may reference symbols the market no longer
// quotes. The read never mutates ledger state.
func (a *Account) PortfolioSummary(lookup PriceLookup) *PortfolioSummary {
	a.mu.Lock()
	defer a.mu.Unlock()

	holdings := make([]Holding, 0, len(a.holdings))
	totalSharesValue := decimal.Zero

	for sym, qty := range a.holdings {
		h := Holding{Symbol: sym, Quantity: qty}
		if price, ok := a.resolvePrice(sym, lookup); ok {
			h.Priced = true
			h.Price = price
			h.Value = price.Mul(decimal.NewFromInt(qty))
			totalSharesValue = totalSharesValue.Add(h.Value)
		}
		holdings = append(holdings, h)
	}
	sort.Slice(holdings, func(i, j int) bool { return holdings[i].Symbol < holdings[j].Symbol })

	netDeposits := decimal.Zero
	for i := range a.transactions {
		switch a.transactions[i].Kind {
		case TransactionKindDeposit:
			netDeposits = netDeposits.Add(a.transactions[i].Amount)
		case TransactionKindWithdrawal:
			netDeposits = netDeposits.Sub(a.transactions[i].Amount)
		}
	}

	totalPortfolioValue := a.cashBalance.Add(totalSharesValue)

	return &PortfolioSummary{
		Username:            a.Username,
		CashBalance:         a.cashBalance,
		NetDeposits:         netDeposits,
		Holdings:            holdings,
		TotalSharesValue:    totalSharesValue,
		TotalPortfolioValue: totalPortfolioValue,
		ProfitLoss:          totalPortfolioValue.Sub(netDeposits),
		GeneratedAt:         a.now(),
	}
}

// TransactionHistory returns a copy of the ledger ordered most-recent-first.
// The sort is stable on timestamp, so entries stamped in the same instant
// keep their original insertion order relative to each other.
func (a *Account) TransactionHistory() []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()

	history := make([]Transaction, len(a.transactions))
	copy(history, a.transactions)
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Timestamp.After(history[j].Timestamp)
	})
	return history
}

// CashBalance returns the current cash balance.
func (a *Account) CashBalance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cashBalance
}

// HoldingQuantity returns the number of shares owned for a symbol, zero if
// the symbol was never held.
func (a *Account) HoldingQuantity(symbol string) int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.holdings[NormalizeSymbol(symbol)]
}

// Holdings returns a copy of the current positions keyed by symbol.
func (a *Account) Holdings() map[string]int64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make(map[string]int64, len(a.holdings))
	for sym, qty := range a.holdings {
		out[sym] = qty
	}
	return out
}

// TransactionCount returns the number of ledger entries.
func (a *Account) TransactionCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.transactions)
}

// appendTransaction records a committed mutation. Callers hold a.mu (or, for
// NewAccount, exclusive ownership of a not-yet-published account).
func (a *Account) appendTransaction(kind string, amount decimal.Decimal, symbol string, quantity int64, price decimal.Decimal) {
	now := time.Now().UTC()
	if a.now != nil {
		now = a.now()
	}
	a.transactions = append(a.transactions, Transaction{
		ID:            uuid.New(),
		Reference:     GenerateTransactionReference(),
		Kind:          kind,
		Symbol:        symbol,
		Quantity:      quantity,
		PricePerShare: price,
		Amount:        amount,
		Timestamp:     now,
	})
}

// resolvePrice runs the lookup collaborator, tolerating a nil lookup and
// rejecting non-positive prices as unresolvable.
func (a *Account) resolvePrice(symbol string, lookup PriceLookup) (decimal.Decimal, bool) {
	if lookup == nil || symbol == "" {
		return decimal.Zero, false
	}
	price, ok := lookup(symbol)
	if !ok || price.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, false
	}
	return price, true
}

// shareQuantity converts a requested quantity into a whole share count.
// Zero, negative, and fractional values are all rejected.
func shareQuantity(quantity decimal.Decimal) (int64, error) {
	if !quantity.IsInteger() || quantity.LessThanOrEqual(decimal.Zero) {
		return 0, fmt.Errorf("%w: got %s", ErrInvalidQuantity, quantity.String())
	}
	return quantity.IntPart(), nil
}
