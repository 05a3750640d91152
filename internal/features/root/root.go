package root

import (
	"github.com/aouiniamine/devbox/internal/features/root/controller"
	"github.com/labstack/echo/v4"
)

type Feature struct {
	Controller *controller.RootController
}

func New() *Feature {
	return &Feature{
		Controller: controller.New(),
	}
}

func (f *Feature) RegisterRoutes(e *echo.Echo) {
	f.Controller.RegisterRoutes(e)
}
