package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound      ErrorCode = "ACCOUNT_001"
	AccountUsernameTaken ErrorCode = "ACCOUNT_002"
	AccountInvalidName   ErrorCode = "ACCOUNT_003"
)

// Ledger error codes (LEDGER_*) for cash movements
const (
	LedgerInvalidAmount     ErrorCode = "LEDGER_001"
	LedgerInsufficientFunds ErrorCode = "LEDGER_002"
)

// Trade error codes (TRADE_*) for buy and sell orders
const (
	TradeInvalidQuantity    ErrorCode = "TRADE_001"
	TradeInvalidSymbol      ErrorCode = "TRADE_002"
	TradeInsufficientShares ErrorCode = "TRADE_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_002"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_003"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",

	// Account errors
	AccountNotFound:      "Account not found",
	AccountUsernameTaken: "An account with this username already exists",
	AccountInvalidName:   "Invalid username",

	// Ledger errors
	LedgerInvalidAmount:     "Amount must be a positive number",
	LedgerInsufficientFunds: "Insufficient funds for this operation",

	// Trade errors
	TradeInvalidQuantity:    "Quantity must be a positive whole number of shares",
	TradeInvalidSymbol:      "Unknown or unquotable stock symbol",
	TradeInsufficientShares: "Cannot sell more shares than are owned",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
