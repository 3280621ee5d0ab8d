package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetStats handles GET /v1/owner/stats. The report is recomputed from
// the live collections on every call; nothing is cached.
func (h *OwnerHandler) GetStats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.State.Stats())
}
