package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"

	"rodut/internal/domain/dto"
	"rodut/internal/domain/ingest"
)

func TestHTTPErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		path           string
		body           string
		chunked        bool
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "oversized post body",
			path:           "/rodut/v1/create-post",
			body:           `{"api_key":"k","content":"` + strings.Repeat("a", 2048) + `"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  ingest.MsgBodyTooLarge,
		},
		{
			name:           "oversized body without a length",
			path:           "/rodut/v1/create-post/bound",
			body:           `{"api_key":"k","content":"` + strings.Repeat("a", 2048) + `"}`,
			chunked:        true,
			expectedStatus: http.StatusBadRequest,
			expectedError:  ingest.MsgBodyTooLarge,
		},
		{
			name:           "unknown route",
			path:           "/rodut/v1/missing",
			expectedStatus: http.StatusNotFound,
			expectedError:  http.StatusText(http.StatusNotFound),
		},
		{
			name:           "plain handler error",
			path:           "/rodut/v1/broken",
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			e.HTTPErrorHandler = HTTPErrorHandler
			e.POST("/rodut/v1/create-post", func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			}, echoMiddleware.BodyLimit("1K"))
			e.POST("/rodut/v1/create-post/bound", NewPostHandler(&mockPoster{}).HandleCreatePost,
				echoMiddleware.BodyLimit("1K"))
			e.POST("/rodut/v1/broken", func(_ echo.Context) error {
				return errors.New("disk on fire")
			})

			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.chunked {
				req.ContentLength = -1
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedError, decode[dto.ErrorResponse](t, rec).Error)
			assert.NotContains(t, rec.Body.String(), "disk on fire")
		})
	}
}
