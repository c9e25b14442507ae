package pricing

import (
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// PriceProvider resolves the current unit price for a ticker symbol.
// The lookup is synchronous; a false return means the symbol has no price.
type PriceProvider interface {
	PriceOf(symbol string) (decimal.Decimal, bool)
}

// StaticProvider serves prices from a fixed in-memory table. Lookups are
// case-insensitive and whitespace-tolerant.
type StaticProvider struct {
	mu     sync.RWMutex
	prices map[string]decimal.Decimal
}

// NewStaticProvider creates a provider over the given price table. Keys are
// normalized; entries with non-positive prices are dropped.
func NewStaticProvider(prices map[string]decimal.Decimal) *StaticProvider {
	table := make(map[string]decimal.Decimal, len(prices))
	for symbol, price := range prices {
		if price.GreaterThan(decimal.Zero) {
			table[normalize(symbol)] = price
		}
	}
	return &StaticProvider{prices: table}
}

// DefaultPrices returns the built-in demo quote table.
func DefaultPrices() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"AAPL":  decimal.NewFromFloat(150.00),
		"TSLA":  decimal.NewFromFloat(300.00),
		"GOOGL": decimal.NewFromFloat(140.00),
	}
}

// PriceOf implements PriceProvider.
func (p *StaticProvider) PriceOf(symbol string) (decimal.Decimal, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	price, ok := p.prices[normalize(symbol)]
	return price, ok
}

// SetPrice inserts or replaces a quote. A non-positive price removes the
// symbol from the table.
func (p *StaticProvider) SetPrice(symbol string, price decimal.Decimal) {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := normalize(symbol)
	if price.LessThanOrEqual(decimal.Zero) {
		delete(p.prices, key)
		return
	}
	p.prices[key] = price
}

// Symbols returns the quotable symbols in no particular order.
func (p *StaticProvider) Symbols() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]string, 0, len(p.prices))
	for symbol := range p.prices {
		out = append(out, symbol)
	}
	return out
}

// ParsePriceTable parses a "SYM=price,SYM=price" specification, as used by
// the MARKET_PRICES environment variable.
func ParsePriceTable(spec string) (map[string]decimal.Decimal, error) {
	table := make(map[string]decimal.Decimal)
	for _, entry := range strings.Split(spec, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		symbol, value, found := strings.Cut(entry, "=")
		if !found {
			return nil, fmt.Errorf("malformed price entry %q: expected SYMBOL=PRICE", entry)
		}

		price, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("malformed price for %q: %w", strings.TrimSpace(symbol), err)
		}
		if price.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("price for %q must be positive, got %s", strings.TrimSpace(symbol), price)
		}

		table[normalize(symbol)] = price
	}
	return table, nil
}

func normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
