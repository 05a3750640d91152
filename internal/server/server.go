package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/aouiniamine/devbox/internal/config"
	applog "github.com/aouiniamine/devbox/internal/middleware"
	"github.com/aouiniamine/devbox/pkg/response"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Server struct {
	echo   *echo.Echo
	config *config.Config
	logger *zap.Logger
}

func New(cfg *config.Config, logger *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.IsDevelopment() && cfg.Debug

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(applog.RequestLogger(logger))
	e.Use(middleware.CORS())

	s := &Server{
		echo:   e,
		config: cfg,
		logger: logger,
	}
	e.HTTPErrorHandler = s.handleError

	return s
}

func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func (s *Server) Addr() string {
	return s.config.Server.Addr()
}

// Start blocks until the server stops. A graceful shutdown is not an error.
func (s *Server) Start() error {
	s.logger.Info("starting server", zap.String("addr", s.Addr()))
	if err := s.echo.Start(s.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) RegisterRoutes(register func(e *echo.Echo)) {
	register(s.echo)
}

func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if c.Echo().Debug {
		c.Echo().DefaultHTTPErrorHandler(err, c)
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("uri", c.Request().RequestURI),
			zap.Error(err),
		)
	}

	if err := response.HTTPError(c, err); err != nil {
		s.logger.Error("failed to write error response", zap.Error(err))
	}
}
