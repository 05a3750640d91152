package controller

import (
	"net/http"

	"github.com/aouiniamine/devbox/internal/features/root/dto"
	"github.com/labstack/echo/v4"
)

const (
	Message = "DevBox API is running"
	Status  = "success"
)

type RootController struct{}

func New() *RootController {
	return &RootController{}
}

func (r *RootController) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.Index)
}

// Index godoc
// @Summary API acknowledgment
// @Description Fixed payload confirming the API process is serving requests. No dependency is checked.
// @Tags root
// @Produce json
// @Success 200 {object} dto.RootResponse
// @Router / [get]
func (r *RootController) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.RootResponse{
		Message: Message,
		Status:  Status,
	})
}
