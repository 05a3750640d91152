package controller

import (
	"net/http"

	"github.com/aouiniamine/devbox/internal/features/health/service"
	"github.com/labstack/echo/v4"
)

type HealthController struct {
	service service.HealthService
}

func New(svc service.HealthService) *HealthController {
	return &HealthController{
		service: svc,
	}
}

func (h *HealthController) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)
}

// Health godoc
// @Summary Dependency health
// @Description Reports the app, database and cache status. Degradation is reported in the body; the status code is always 200.
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthStatus
// @Router /health [get]
func (h *HealthController) Health(c echo.Context) error {
	status := h.service.Check(c.Request().Context())
	return c.JSON(http.StatusOK, status)
}
