package handlers

import (
	goerrors "errors"
	"fmt"

	"github.com/labstack/echo/v4"

	"tradesim/internal/errors"
	"tradesim/internal/models"
	"tradesim/internal/services"
)

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

// sendLedgerError maps the ledger's sentinel errors onto API error codes.
// The sentinel's wrapped message is surfaced as the error details; anything
// unrecognized is treated as an internal error.
func sendLedgerError(c echo.Context, err error) error {
	switch {
	case goerrors.Is(err, models.ErrInvalidAmount):
		return SendError(c, errors.LedgerInvalidAmount, errors.WithDetails(err.Error()))
	case goerrors.Is(err, models.ErrInsufficientFunds):
		return SendError(c, errors.LedgerInsufficientFunds, errors.WithDetails(err.Error()))
	case goerrors.Is(err, models.ErrInvalidQuantity):
		return SendError(c, errors.TradeInvalidQuantity, errors.WithDetails(err.Error()))
	case goerrors.Is(err, models.ErrInvalidSymbol):
		return SendError(c, errors.TradeInvalidSymbol, errors.WithDetails(err.Error()))
	case goerrors.Is(err, models.ErrInsufficientShares):
		return SendError(c, errors.TradeInsufficientShares, errors.WithDetails(err.Error()))
	case goerrors.Is(err, services.ErrAccountNotFound):
		return SendError(c, errors.AccountNotFound, errors.WithDetails(err.Error()))
	case goerrors.Is(err, services.ErrUsernameTaken):
		return SendError(c, errors.AccountUsernameTaken, errors.WithDetails(err.Error()))
	case goerrors.Is(err, services.ErrInvalidKind):
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}
