package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"tradesim/internal/dto"
	"tradesim/internal/errors"
	"tradesim/internal/models"
	"tradesim/internal/services"
)

// TradeHandler handles trade execution HTTP requests
type TradeHandler struct {
	accountService services.AccountServiceInterface
}

// NewTradeHandler creates a new trade handler
func NewTradeHandler(accountService services.AccountServiceInterface) *TradeHandler {
	return &TradeHandler{accountService: accountService}
}

// ExecuteTrade buys or sells shares for an account at the current quote
func (h *TradeHandler) ExecuteTrade(c echo.Context) error {
	username := c.Param("username")

	var req dto.TradeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	quantity, err := decimal.NewFromString(req.Quantity)
	if err != nil {
		return SendError(c, errors.TradeInvalidQuantity, errors.WithDetails("Quantity must be a whole number of shares"))
	}

	var confirmation *models.TradeConfirmation
	switch req.Side {
	case models.TransactionKindBuy:
		confirmation, err = h.accountService.Buy(username, req.Symbol, quantity)
	case models.TransactionKindSell:
		confirmation, err = h.accountService.Sell(username, req.Symbol, quantity)
	}
	if err != nil {
		return sendLedgerError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    dto.NewTradeResponse(confirmation),
		Message: "Trade executed",
	})
}
