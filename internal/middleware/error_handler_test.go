package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradesim/internal/errors"
)

func newHandledEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = CustomHTTPErrorHandler
	e.Use(RequestID())
	return e
}

func TestCustomHTTPErrorHandler_RouteNotFound(t *testing.T) {
	e := newHandledEcho()

	req := httptest.NewRequest(http.MethodGet, "/no/such/route", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp errors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, string(errors.AccountNotFound), resp.Error.Code)
	assert.NotEmpty(t, resp.Error.TraceID)
}

func TestCustomHTTPErrorHandler_MethodNotAllowed(t *testing.T) {
	e := newHandledEcho()
	e.GET("/only-get", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/only-get", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	var resp errors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, string(errors.ValidationGeneral), resp.Error.Code)
}

func TestCustomHTTPErrorHandler_UnknownError(t *testing.T) {
	e := newHandledEcho()
	e.GET("/fail", func(c echo.Context) error {
		return assert.AnError
	})

	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp errors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, string(errors.SystemInternalError), resp.Error.Code)
	assert.NotContains(t, resp.Error.Message, assert.AnError.Error(),
		"internal error details must not leak to the client")
}
