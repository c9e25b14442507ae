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

func newLimitedEcho(rps, burst int) *echo.Echo {
	e := echo.New()
	e.Use(RateLimiter(rps, burst))
	e.GET("/", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return e
}

func hitFrom(e *echo.Echo, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", ip)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	e := newLimitedEcho(1, 3)

	for i := 0; i < 3; i++ {
		rec := hitFrom(e, "10.0.0.1")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should pass", i)
	}
}

func TestRateLimiter_RejectsBeyondBurst(t *testing.T) {
	e := newLimitedEcho(1, 2)

	hitFrom(e, "10.0.0.2")
	hitFrom(e, "10.0.0.2")
	rec := hitFrom(e, "10.0.0.2")

	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	var resp errors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, string(errors.SystemRateLimitExceeded), resp.Error.Code)
}

func TestRateLimiter_TracksClientsSeparately(t *testing.T) {
	e := newLimitedEcho(1, 1)

	first := hitFrom(e, "10.0.0.3")
	second := hitFrom(e, "10.0.0.4")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
}

func TestRateLimiter_PrefersForwardedForHeader(t *testing.T) {
	e := newLimitedEcho(1, 1)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.Header.Set("X-Forwarded-For", "203.0.113.9")
	rec2 := httptest.NewRecorder()
	e.ServeHTTP(rec2, req2)
	assert.Equal(t, http.StatusTooManyRequests, rec2.Code)
}
