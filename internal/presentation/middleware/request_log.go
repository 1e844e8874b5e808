package middleware

import (
	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"rodut/internal/application/guard"
)

// RequestLog writes one line per request to the global logger. Server errors
// are logged at error level, everything else at info.
func RequestLog() echo.MiddlewareFunc {
	return echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			keyvals := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"ip", guard.ClientIP(c.Request()),
			}

			if v.Error != nil || v.Status >= 500 {
				if v.Error != nil {
					keyvals = append(keyvals, "err", v.Error)
				}
				logger.Error("request", keyvals...)

				return nil
			}

			logger.Info("request", keyvals...)

			return nil
		},
	})
}
