package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"eats/config"
	deliverycontext "eats/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	return e
}

func TestRequestIDMiddleware(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, false)

	var seenInContext string
	e.GET("/ping", func(c echo.Context) error {
		seenInContext = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return c.NoContent(http.StatusNoContent)
	})

	t.Run("keeps client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "client-42")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, "client-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Equal(t, "client-42", seenInContext)
	})

	t.Run("generates id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		generated := rec.Header().Get(deliverycontext.HeaderXRequestID)
		require.NotEmpty(t, generated)
		assert.Equal(t, generated, seenInContext)
	})
}

func TestLoggerMiddleware(t *testing.T) {
	t.Run("debug logs every request", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, true)
		e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok?x=1", nil))

		assert.Contains(t, buf.String(), `"msg":"HTTP Request"`)
		assert.Contains(t, buf.String(), `"route":"/ok"`)
		assert.Contains(t, buf.String(), `"query":"x=1"`)
		assert.Contains(t, buf.String(), `"request_id"`)
	})

	t.Run("quiet mode skips successful requests", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, false)
		e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Empty(t, buf.String())
	})

	t.Run("quiet mode logs server errors", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, false)
		e.GET("/boom", func(c echo.Context) error {
			return echo.NewHTTPError(http.StatusBadGateway, "upstream")
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, buf.String(), `"level":"ERROR"`)
		assert.Contains(t, buf.String(), `"status":502`)
	})
}
