package handler

import (
	"github.com/labstack/echo/v4"

	"rodut/internal/domain/dto"
	"rodut/internal/domain/ingest"
	"rodut/internal/presentation"
)

// respondError renders err as {"error": msg} with the status of its kind.
// Causes are never sent to the caller.
func respondError(c echo.Context, err error) error {
	ie := ingest.As(err)
	c.Set(presentation.ErrorKey, ie)

	return c.JSON(ie.Kind.Status(), dto.ErrorResponse{Error: ie.Message})
}
