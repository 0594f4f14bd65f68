package handler

import (
	"net/http"

	"washify/internal/delivery/http/response"
	"washify/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the landing-page overview numbers.
type DashboardHandler struct {
	uc usecase.DashboardUsecase
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(uc usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats aggregates the overview counters across all collections.
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats := h.uc.Stats(c.Request().Context())

	return response.Success(c, http.StatusOK, stats, "OK")
}
