package pricing

import (
	"math/rand"
	"sync"

	"github.com/shopspring/decimal"
)

// SimulatedProvider wraps a base price table and applies a small random walk
// on every lookup, so repeated quotes drift the way a demo market would.
// The walk is seeded, making runs reproducible.
type SimulatedProvider struct {
	mu      sync.Mutex
	rng     *rand.Rand
	jitter  float64
	base    map[string]decimal.Decimal
	current map[string]decimal.Decimal
}

// NewSimulatedProvider creates a provider over the given base table. jitter
// is the maximum fractional move per lookup (e.g. 0.02 for +/-2%); values
// outside (0, 1) fall back to 0.02.
func NewSimulatedProvider(base map[string]decimal.Decimal, jitter float64, seed int64) *SimulatedProvider {
	if jitter <= 0 || jitter >= 1 {
		jitter = 0.02
	}

	baseTable := make(map[string]decimal.Decimal, len(base))
	current := make(map[string]decimal.Decimal, len(base))
	for symbol, price := range base {
		if price.GreaterThan(decimal.Zero) {
			key := normalize(symbol)
			baseTable[key] = price
			current[key] = price
		}
	}

	return &SimulatedProvider{
		rng:     rand.New(rand.NewSource(seed)),
		jitter:  jitter,
		base:    baseTable,
		current: current,
	}
}

// PriceOf implements PriceProvider. Each successful lookup moves the quote
// by a random fraction within the configured jitter, clamped so the price
// never falls below one cent.
func (p *SimulatedProvider) PriceOf(symbol string) (decimal.Decimal, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := normalize(symbol)
	price, ok := p.current[key]
	if !ok {
		return decimal.Decimal{}, false
	}

	move := (p.rng.Float64()*2 - 1) * p.jitter
	next := price.Mul(decimal.NewFromFloat(1 + move)).Round(2)

	floor := decimal.NewFromFloat(0.01)
	if next.LessThan(floor) {
		next = floor
	}

	p.current[key] = next
	return next, true
}

// Reset restores every quote to its base price.
func (p *SimulatedProvider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for symbol, price := range p.base {
		p.current[symbol] = price
	}
}
