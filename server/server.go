// Package server exposes the URL inspector over HTTP.
package server

import (
	"time"

	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
	"github.com/sirupsen/logrus"
)

// Server is the inspector HTTP server.
type Server struct {
	srv     *rweb.Server
	logger  *logrus.Logger
	address string
}

// New creates the server and registers its routes.
func New(address string, logger *logrus.Logger) *Server {
	s := &Server{
		srv: rweb.NewServer(rweb.ServerOptions{
			Address: address,
			Debug:   logger.IsLevelEnabled(logrus.TraceLevel),
		}),
		logger:  logger,
		address: address,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.srv.Use(s.requestLogger)

	api := s.srv.Group("/api/v1")
	api.Get("/", s.handleRoot)
	api.Get("/inspect", s.handleInspect)
	api.Get("/add-field", s.handleAddField)
	api.Get("/health", s.handleHealth)

	// any other page describes its own URL
	s.srv.Get("/", s.handlePage)
	s.srv.Get("/*path", s.handlePage)
}

// Request performs a synthetic request without opening a listener.
func (s *Server) Request(method, url string, headers []rweb.Header) rweb.Response {
	return s.srv.Request(method, url, headers, nil)
}

// Run serves until the process gets SIGINT or SIGTERM.
func (s *Server) Run() error {
	s.logger.WithField("address", s.address).Info("Inspector listening")

	if err := s.srv.Run(); err != nil {
		return serr.Wrap(err, "address", s.address)
	}

	s.logger.Info("Inspector stopped")
	return nil
}

func (s *Server) requestLogger(ctx rweb.Context) error {
	start := time.Now()

	defer func() {
		s.logger.WithFields(logrus.Fields{
			"method":   ctx.Request().Method(),
			"path":     ctx.Request().Path(),
			"query":    ctx.Request().Query(),
			"status":   ctx.Response().Status(),
			"duration": time.Since(start),
		}).Debug("HTTP request")
	}()

	return ctx.Next()
}
