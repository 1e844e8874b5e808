package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = previous })

	return &buf
}

func TestRequestLog(t *testing.T) {
	tests := []struct {
		name          string
		handler       echo.HandlerFunc
		expectedLevel string
		expectedCode  float64
	}{
		{
			name: "ok request",
			handler: func(c echo.Context) error {
				return c.String(http.StatusOK, "OK")
			},
			expectedLevel: "info",
			expectedCode:  http.StatusOK,
		},
		{
			name: "rejected request",
			handler: func(c echo.Context) error {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no"})
			},
			expectedLevel: "info",
			expectedCode:  http.StatusUnauthorized,
		},
		{
			name: "handler failure",
			handler: func(_ echo.Context) error {
				return errors.New("boom")
			},
			expectedLevel: "error",
			expectedCode:  http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)

			e := echo.New()
			e.Use(RequestLog())
			e.GET("/rodut/v1/version", tt.handler)

			req := httptest.NewRequest(http.MethodGet, "/rodut/v1/version", http.NoBody)
			req.RemoteAddr = "162.43.19.187:5555"
			e.ServeHTTP(httptest.NewRecorder(), req)

			var line map[string]any
			require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))

			assert.Equal(t, tt.expectedLevel, line["level"])
			assert.Equal(t, "request", line["message"])
			assert.Equal(t, http.MethodGet, line["method"])
			assert.Equal(t, "/rodut/v1/version", line["uri"])
			assert.Equal(t, "162.43.19.187", line["ip"])
			assert.InDelta(t, tt.expectedCode, line["status"], 0)
		})
	}
}
