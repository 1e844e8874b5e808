package middleware

import (
	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/labstack/echo/v4"

	"rodut/internal/application/guard"
	"rodut/internal/domain/dto"
	"rodut/internal/domain/ingest"
	"rodut/internal/presentation"
)

// CallerPolicy reports whether an address may reach authenticated routes.
type CallerPolicy interface {
	CallerAllowed(ip string) bool
}

// CallerAllowlist rejects foreign callers before the request body is read.
// Key verification still happens in the usecase.
func CallerAllowlist(policy CallerPolicy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := guard.ClientIP(c.Request())
			if !policy.CallerAllowed(ip) {
				logger.Warn("caller rejected", "ip", ip, "path", c.Path())

				ie := ingest.New(ingest.AccessDenied, ingest.MsgAccessDenied)
				c.Set(presentation.ErrorKey, ie)

				return c.JSON(ie.Kind.Status(), dto.ErrorResponse{Error: ie.Message})
			}

			return next(c)
		}
	}
}
