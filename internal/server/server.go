// SPDX-License-Identifier: EPL-2.0

// Package server exposes overview extraction and path rendering over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ik5/wavepeaks/audio"
	"github.com/ik5/wavepeaks/internal/config"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server wires the handlers into an echo instance.
type Server struct {
	cfg      config.Config
	registry *audio.Registry
	echo     *echo.Echo
}

// New creates a server using reg to decode uploads.
func New(cfg config.Config, reg *audio.Registry) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	s := &Server{cfg: cfg, registry: reg, echo: e}

	e.GET("/health", s.Health)
	e.POST("/api/overview", s.Overview)
	e.POST("/api/path/overview", s.OverviewPath)
	e.POST("/api/path/viewport", s.ViewportPath)

	return s
}

// Echo returns the underlying echo instance, e.g. to add middleware.
func (s *Server) Echo() *echo.Echo { return s.echo }

// ServeHTTP lets the server be used as a plain http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start listens on the configured port until Shutdown is called.
func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf(":%d", s.cfg.Port))
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Health reports liveness.
// GET /health
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "ok",
		"formats": s.registry.Formats(),
	})
}
