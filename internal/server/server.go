package server

import (
	"context"
	"net/http"

	"app/internal/config"
	"app/internal/logging"
	"app/internal/validator"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Server struct {
	echo *echo.Echo
	cfg  config.Config
	log  *zap.Logger
}

// New はechoを組み立てる。ルート登録は RegisterRoutes で行う。
func New(cfg config.Config, log *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Validator = validator.New()

	e.Use(echomw.Recover())
	e.Use(logging.RequestLogger(log))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.FEURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	return &Server{echo: e, cfg: cfg, log: log}
}

func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func (s *Server) Start() error {
	s.log.Info("server starting", zap.String("port", s.cfg.Port))
	return s.echo.Start(":" + s.cfg.Port)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
