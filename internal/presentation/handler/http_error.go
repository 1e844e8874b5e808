package handler

import (
	"errors"
	"net/http"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/labstack/echo/v4"

	"rodut/internal/domain/dto"
	"rodut/internal/domain/ingest"
	"rodut/internal/presentation"
)

// HTTPErrorHandler renders errors that escape handlers and middlewares in the
// same {"error": msg} shape the endpoints use. An oversized body maps to
// PayloadTooLarge.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		if rerr := respondError(c, err); rerr != nil {
			logger.Error("can't write error response", "err", rerr)
		}

		return
	}

	if he.Code == http.StatusRequestEntityTooLarge {
		ie := ingest.Wrap(ingest.PayloadTooLarge, ingest.MsgBodyTooLarge, err)
		c.Set(presentation.ErrorKey, ie)

		if rerr := c.JSON(ie.Kind.Status(), dto.ErrorResponse{Error: ie.Message}); rerr != nil {
			logger.Error("can't write error response", "err", rerr)
		}

		return
	}

	msg := http.StatusText(he.Code)
	if m, ok := he.Message.(string); ok && m != "" {
		msg = m
	}

	if rerr := c.JSON(he.Code, dto.ErrorResponse{Error: msg}); rerr != nil {
		logger.Error("can't write error response", "err", rerr)
	}
}
