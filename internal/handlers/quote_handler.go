package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tradesim/internal/dto"
	"tradesim/internal/errors"
	"tradesim/internal/models"
	"tradesim/internal/pricing"
)

// QuoteHandler handles price lookup HTTP requests
type QuoteHandler struct {
	prices pricing.PriceProvider
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(prices pricing.PriceProvider) *QuoteHandler {
	return &QuoteHandler{prices: prices}
}

// GetQuote returns the current price for a symbol
func (h *QuoteHandler) GetQuote(c echo.Context) error {
	symbol := models.NormalizeSymbol(c.Param("symbol"))

	price, ok := h.prices.PriceOf(symbol)
	if !ok {
		return SendError(c, errors.TradeInvalidSymbol, errors.WithDetails("No quote available for "+symbol))
	}

	return c.JSON(http.StatusOK, dto.QuoteResponse{
		Symbol: symbol,
		Price:  price.StringFixed(2),
	})
}
