package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"tradesim/internal/config"
	"tradesim/internal/handlers"
	"tradesim/internal/middleware"
	"tradesim/internal/pricing"
	"tradesim/internal/repositories"
	"tradesim/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	prices := cfg.Market.Prices
	if len(prices) == 0 {
		prices = pricing.DefaultPrices()
	}
	provider := buildPriceProvider(cfg.Market, prices)

	accountRepo := repositories.NewInMemoryAccountRepository()
	metrics := services.NewPrometheusMetrics()
	accountService := services.NewAccountService(accountRepo, provider, metrics, logger)

	if cfg.Demo.Enabled && !cfg.IsProduction() {
		symbols := make([]string, 0, len(prices))
		for symbol := range prices {
			symbols = append(symbols, symbol)
		}
		generator := services.NewActivityGenerator(accountService, symbols, uint64(cfg.Market.Seed), logger)
		seeded := generator.SeedDemoAccounts(cfg.Demo.Accounts)
		logger.Info("demo accounts seeded", "count", len(seeded))
	}

	accountHandler := handlers.NewAccountHandler(accountService)
	tradeHandler := handlers.NewTradeHandler(accountService)
	quoteHandler := handlers.NewQuoteHandler(provider)
	healthHandler := handlers.NewHealthCheckHandler()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiter(cfg.Limits.RequestsPerSecond, cfg.Limits.Burst))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.POST("/accounts", accountHandler.OpenAccount)
	api.GET("/accounts/:username", accountHandler.GetAccount)
	api.POST("/accounts/:username/deposits", accountHandler.Deposit)
	api.POST("/accounts/:username/withdrawals", accountHandler.Withdraw)
	api.POST("/accounts/:username/trades", tradeHandler.ExecuteTrade)
	api.GET("/accounts/:username/portfolio", accountHandler.GetPortfolio)
	api.GET("/accounts/:username/transactions", accountHandler.GetTransactions)
	api.GET("/quotes/:symbol", quoteHandler.GetQuote)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("Starting server",
			"address", cfg.Server.Address(),
			"environment", cfg.Server.Environment,
			"simulated_market", cfg.Market.Simulated)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}

// buildPriceProvider assembles the quote source from configuration. An
// explicit MARKET_PRICES table replaces the built-in demo quotes.
func buildPriceProvider(cfg config.MarketConfig, prices map[string]decimal.Decimal) pricing.PriceProvider {
	if cfg.Simulated {
		return pricing.NewSimulatedProvider(prices, cfg.Jitter, cfg.Seed)
	}
	return pricing.NewStaticProvider(prices)
}
