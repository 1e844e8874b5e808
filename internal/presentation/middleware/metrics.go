package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"rodut/internal/domain/ingest"
	"rodut/internal/presentation"
)

type RequestRecorder interface {
	RecordRequest(operation string, duration time.Duration, err error)
}

// Observe records the duration and outcome of operation. The outcome is taken
// from the ingest error a handler answered with, if any.
func Observe(rec RequestRecorder, operation string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			var (
				outcome error
				he      *echo.HTTPError
			)
			switch ie, ok := c.Get(presentation.ErrorKey).(*ingest.Error); {
			case ok:
				outcome = ie
			case errors.As(err, &he) && he.Code == http.StatusRequestEntityTooLarge:
				outcome = ingest.Wrap(ingest.PayloadTooLarge, ingest.MsgBodyTooLarge, err)
			case err != nil:
				outcome = err
			}

			rec.RecordRequest(operation, time.Since(start), outcome)

			return err
		}
	}
}
