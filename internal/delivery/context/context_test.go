package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRequestID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		keep bool
	}{
		{name: "client id kept", in: "req-123", keep: true},
		{name: "empty replaced", in: ""},
		{name: "too long replaced", in: strings.Repeat("a", maxRequestIDLength+1)},
		{name: "whitespace replaced", in: "req 1"},
		{name: "non ascii replaced", in: "запрос"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRequestID(tt.in)
			if tt.keep {
				assert.Equal(t, tt.in, got)

				return
			}

			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestGetRequestID_StableOnceAssigned(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	first := GetRequestID(c)
	assert.NotEmpty(t, first)
	assert.Equal(t, first, GetRequestID(c))

	SetRequestID(c, "fixed")
	assert.Equal(t, "fixed", GetRequestID(c))
}

func TestWithRequestScope(t *testing.T) {
	base := slog.New(slog.NewTextHandler(io.Discard, nil))
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Equal(t, "", GetRequestIDFromContext(context.Background()))
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))

	ctx, logger := WithRequestScope(context.Background(), "req-9", base)
	require.NotNil(t, logger)
	assert.Equal(t, "req-9", GetRequestIDFromContext(ctx))
	assert.Same(t, logger, GetLoggerOrDefault(ctx, fallback))
}
