package services

import (
	"log/slog"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// ActivityGeneratorInterface seeds demo accounts with randomized trading
// activity, for development environments only.
type ActivityGeneratorInterface interface {
	SeedDemoAccounts(count int) []string
}

type activityGenerator struct {
	service AccountServiceInterface
	symbols []string
	faker   *gofakeit.Faker
	logger  *slog.Logger
}

// NewActivityGenerator creates a demo activity generator over the given
// quotable symbols. A zero seed gives non-deterministic output.
func NewActivityGenerator(service AccountServiceInterface, symbols []string, seed uint64, logger *slog.Logger) ActivityGeneratorInterface {
	return &activityGenerator{
		service: service,
		symbols: symbols,
		faker:   gofakeit.New(seed),
		logger:  logger,
	}
}

// SeedDemoAccounts opens count demo accounts and runs a burst of deposits,
// withdrawals, and trades against each. Rejected operations are expected
// and skipped; the returned slice holds the usernames actually opened.
func (g *activityGenerator) SeedDemoAccounts(count int) []string {
	usernames := make([]string, 0, count)

	for i := 0; i < count; i++ {
		username := g.faker.Username()
		initialDeposit := decimal.NewFromFloat(g.faker.Price(5000, 50000)).Round(2)

		if _, err := g.service.OpenAccount(username, initialDeposit); err != nil {
			continue
		}
		usernames = append(usernames, username)

		for op := 0; op < g.faker.IntRange(3, 8); op++ {
			g.randomOperation(username)
		}

		g.logger.Info("demo account seeded", "username", username)
	}

	return usernames
}

func (g *activityGenerator) randomOperation(username string) {
	if len(g.symbols) == 0 {
		return
	}

	amount := decimal.NewFromFloat(g.faker.Price(10, 2000)).Round(2)
	quantity := decimal.NewFromInt(int64(g.faker.IntRange(1, 10)))
	symbol := g.symbols[g.faker.IntRange(0, len(g.symbols)-1)]

	var err error
	switch g.faker.IntRange(0, 3) {
	case 0:
		_, err = g.service.Deposit(username, amount)
	case 1:
		_, err = g.service.Withdraw(username, amount)
	case 2:
		_, err = g.service.Buy(username, symbol, quantity)
	case 3:
		_, err = g.service.Sell(username, symbol, quantity)
	}

	// Rejections (insufficient funds or shares) are part of normal
	// demo traffic.
	_ = err
}
