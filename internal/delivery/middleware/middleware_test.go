package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cabinet/config"
	deliverycontext "cabinet/internal/delivery/context"
	"cabinet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_PropagatesHeader(t *testing.T) {
	e := echo.New()
	logger := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
	mw := NewRequestIDMiddleware(logger)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenCtxID string
	var seenLogger *slog.Logger
	err := mw.Process(func(c echo.Context) error {
		seenCtxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		seenLogger = deliverycontext.GetLogger(c.Request().Context())

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, "req-123", seenCtxID)
	assert.NotNil(t, seenLogger)
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-123", deliverycontext.GetRequestID(c))
}

func TestRequestIDMiddleware_GeneratesWhenMissing(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil)))

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, mw.Process(func(echo.Context) error { return nil })(c))
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestLoggerMiddleware_LogsErrorsOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	mw := NewLoggerMiddleware(logger, &config.Config{})

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/items", nil), httptest.NewRecorder())

	require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))
	assert.Empty(t, buf.String())

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/items", nil), httptest.NewRecorder())
	err := mw.Handle(func(echo.Context) error { return echo.ErrNotFound })(c)
	require.Error(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "HTTP Request", line["msg"])
	assert.Equal(t, "/api/v1/items", line["uri"])
}

func TestRequestIDMiddleware_ReplacesUnsafeHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "control characters", header: "abc\r\nX-Injected: 1"},
		{name: "too long", header: strings.Repeat("a", 129)},
		{name: "blank", header: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			mw := NewRequestIDMiddleware(slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil)))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, mw.Process(func(echo.Context) error { return nil })(c))

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEqual(t, tt.header, got)
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestSetIdentity_ExtendsRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-7")
	c := e.NewContext(req, httptest.NewRecorder())
	userID := uuid.New()

	err := mw.Process(func(c echo.Context) error {
		deliverycontext.SetIdentity(c, userID, entity.StructuredRoleClaim("staff", "Ward Staff"))
		deliverycontext.GetLogger(c.Request().Context()).Info("adjusted stock")

		return nil
	})(c)
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-7", line["request_id"])
	assert.Equal(t, userID.String(), line["user_id"])
	assert.Equal(t, "staff", line["role"])
}

func TestLoggerMiddleware_LogsGuardRedirects(t *testing.T) {
	var buf bytes.Buffer
	mw := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), &config.Config{})

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil), httptest.NewRecorder())

	err := mw.Handle(func(c echo.Context) error {
		c.Response().Header().Set(deliverycontext.HeaderGuardRedirect, "/403")

		return c.NoContent(http.StatusForbidden)
	})(c)
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "/403", line["guard_redirect"])
	assert.EqualValues(t, http.StatusForbidden, line["status"])
}

func TestLoggerMiddleware_SkipsHealth(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	mw := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), cfg)

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())

	require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))
	assert.Empty(t, buf.String())
}
