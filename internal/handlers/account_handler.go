package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"tradesim/internal/dto"
	"tradesim/internal/errors"
	"tradesim/internal/services"
)

// AccountHandler handles account and cash movement HTTP requests
type AccountHandler struct {
	accountService services.AccountServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService services.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// OpenAccount opens a new trading account funded with an initial deposit
func (h *AccountHandler) OpenAccount(c echo.Context) error {
	var req dto.OpenAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	initialDeposit, err := decimal.NewFromString(req.InitialDeposit)
	if err != nil {
		return SendError(c, errors.LedgerInvalidAmount, errors.WithDetails("Initial deposit must be a decimal number"))
	}

	account, err := h.accountService.OpenAccount(req.Username, initialDeposit)
	if err != nil {
		return sendLedgerError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    dto.NewAccountResponse(account),
		Message: "Account opened successfully",
	})
}

// GetAccount retrieves an account by username
func (h *AccountHandler) GetAccount(c echo.Context) error {
	account, err := h.accountService.GetAccount(c.Param("username"))
	if err != nil {
		return sendLedgerError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAccountResponse(account))
}

// Deposit adds funds to an account
func (h *AccountHandler) Deposit(c echo.Context) error {
	username := c.Param("username")

	amount, ok := h.bindCashAmount(c)
	if !ok {
		return nil
	}

	balance, err := h.accountService.Deposit(username, amount)
	if err != nil {
		return sendLedgerError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CashResponse{
		Username:    username,
		Amount:      amount.StringFixed(2),
		CashBalance: balance.StringFixed(2),
		Message:     "Deposit recorded",
	})
}

// Withdraw removes funds from an account
func (h *AccountHandler) Withdraw(c echo.Context) error {
	username := c.Param("username")

	amount, ok := h.bindCashAmount(c)
	if !ok {
		return nil
	}

	balance, err := h.accountService.Withdraw(username, amount)
	if err != nil {
		return sendLedgerError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CashResponse{
		Username:    username,
		Amount:      amount.StringFixed(2),
		CashBalance: balance.StringFixed(2),
		Message:     "Withdrawal recorded",
	})
}

// GetPortfolio values the account's holdings at current prices
func (h *AccountHandler) GetPortfolio(c echo.Context) error {
	summary, err := h.accountService.PortfolioSummary(c.Param("username"))
	if err != nil {
		return sendLedgerError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewPortfolioResponse(summary))
}

// GetTransactions lists the account's transactions, most recent first.
// Supports ?kind= to filter by transaction kind and ?limit= to cap results.
func (h *AccountHandler) GetTransactions(c echo.Context) error {
	username := c.Param("username")
	kind := c.QueryParam("kind")
	limit := getIntParam(c, "limit", 0)

	history, err := h.accountService.TransactionHistory(username, kind, limit)
	if err != nil {
		return sendLedgerError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionListResponse(username, history))
}

// bindCashAmount parses the deposit/withdrawal payload. On failure the
// error response has already been written and ok is false.
func (h *AccountHandler) bindCashAmount(c echo.Context) (amount decimal.Decimal, ok bool) {
	var req dto.CashRequest
	if err := c.Bind(&req); err != nil {
		_ = SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
		return decimal.Decimal{}, false
	}

	if err := c.Validate(req); err != nil {
		_ = SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		return decimal.Decimal{}, false
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		_ = SendError(c, errors.LedgerInvalidAmount, errors.WithDetails("Amount must be a decimal number"))
		return decimal.Decimal{}, false
	}

	return amount, true
}
