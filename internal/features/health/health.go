package health

import (
	"github.com/aouiniamine/devbox/internal/cache"
	"github.com/aouiniamine/devbox/internal/database"
	"github.com/aouiniamine/devbox/internal/features/health/checker"
	"github.com/aouiniamine/devbox/internal/features/health/controller"
	"github.com/aouiniamine/devbox/internal/features/health/service"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type Feature struct {
	Controller *controller.HealthController
	Service    service.HealthService
}

func New(db *database.Prober, redis *cache.Redis, opts service.Options, logger *zap.Logger) *Feature {
	return NewWithCheckers(checker.NewDatabase(db), checker.NewCache(redis), opts, logger)
}

func NewWithCheckers(dbChecker, cacheChecker checker.Checker, opts service.Options, logger *zap.Logger) *Feature {
	svc := service.New(dbChecker, cacheChecker, opts, logger)
	ctrl := controller.New(svc)

	return &Feature{
		Controller: ctrl,
		Service:    svc,
	}
}

func (f *Feature) RegisterRoutes(e *echo.Echo) {
	f.Controller.RegisterRoutes(e)
}
