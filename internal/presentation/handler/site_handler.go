package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"rodut/internal/application/usecase/abstraction"
	"rodut/internal/domain/dto"
)

type SiteHandler struct {
	site abstraction.Site
}

func NewSiteHandler(site abstraction.Site) *SiteHandler {
	return &SiteHandler{
		site: site,
	}
}

// HandleVersion handles GET /rodut/v1/version.
func (h *SiteHandler) HandleVersion(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.VersionResponse{Version: h.site.Version()})
}

// HandleTitle handles GET /rodut/v1/title.
func (h *SiteHandler) HandleTitle(c echo.Context) error {
	title, err := h.site.Title(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TitleResponse{Title: title})
}
