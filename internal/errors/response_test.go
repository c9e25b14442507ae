package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

// SetupTest runs before each test
func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

// TestNewErrorResponse_BasicUsage tests creating a basic error response
func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(AccountNotFound, s.traceID)

	s.NotNil(response)
	s.Equal("ACCOUNT_001", response.Error.Code)
	s.Equal("Account not found", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

// TestNewErrorResponse_WithDetails tests creating error response with details
func (s *ResponseTestSuite) TestNewErrorResponse_WithDetails() {
	details := []string{"insufficient funds: cannot withdraw more than the available cash balance of $10000.00"}
	response := NewErrorResponse(LedgerInsufficientFunds, s.traceID, WithDetails(details...))

	s.Equal("LEDGER_002", response.Error.Code)
	s.Equal("Insufficient funds for this operation", response.Error.Message)
	s.Equal(details, response.Error.Details)
}

// TestNewErrorResponse_WithCustomMessage tests overriding the default message
func (s *ResponseTestSuite) TestNewErrorResponse_WithCustomMessage() {
	customMessage := "Custom error message for specific context"
	response := NewErrorResponse(SystemInternalError, s.traceID, WithMessage(customMessage))

	s.Equal("SYSTEM_001", response.Error.Code)
	s.Equal(customMessage, response.Error.Message)
}

// TestNewValidationError tests field-level validation error responses
func (s *ResponseTestSuite) TestNewValidationError() {
	fieldErrors := map[string]string{
		"username": "username is required",
	}
	response := NewValidationError(fieldErrors, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Len(response.Error.Details, 1)
	s.Contains(response.Error.Details[0], "username")
}

// TestWrapSystemError tests that internal errors are hidden from clients
func (s *ResponseTestSuite) TestWrapSystemError() {
	internal := errors.New("registry map corrupted")
	response, returned := WrapSystemError(internal, s.traceID)

	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(response.Error.Message, "registry")
	s.Equal(internal, returned)
}

// TestToJSON tests JSON serialization of error responses
func (s *ResponseTestSuite) TestToJSON() {
	response := NewErrorResponse(TradeInvalidSymbol, s.traceID, WithDetails("no price available for \"XYZ\""))

	data, err := response.ToJSON()
	s.NoError(err)

	var decoded ErrorResponse
	s.NoError(json.Unmarshal(data, &decoded))
	s.Equal("TRADE_002", decoded.Error.Code)
	s.Equal(s.traceID, decoded.Error.TraceID)
}

// TestGetHTTPStatus tests the error code to HTTP status mapping
func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{LedgerInvalidAmount, http.StatusBadRequest},
		{TradeInvalidQuantity, http.StatusBadRequest},
		{TradeInvalidSymbol, http.StatusBadRequest},
		{AccountNotFound, http.StatusNotFound},
		{AccountUsernameTaken, http.StatusConflict},
		{LedgerInsufficientFunds, http.StatusUnprocessableEntity},
		{TradeInsufficientShares, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{ErrorCode("NOPE_999"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, GetHTTPStatus(tc.code), "code %s", tc.code)
	}
}

// TestIsClientError_IsServerError tests the error class helpers
func (s *ResponseTestSuite) TestIsClientError_IsServerError() {
	client := NewErrorResponse(TradeInsufficientShares, s.traceID)
	s.True(client.IsClientError())
	s.False(client.IsServerError())

	server := NewErrorResponse(SystemInternalError, s.traceID)
	s.False(server.IsClientError())
	s.True(server.IsServerError())
}
