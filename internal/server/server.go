// Package server exposes the aligner, the comparator and the ghost
// overlay over HTTP, and runs live exercise sessions over WebSocket.
package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/katalvlaran/posematch/feedback"
	"github.com/katalvlaran/posematch/internal/config"
	"github.com/katalvlaran/posematch/internal/logger"
	"github.com/katalvlaran/posematch/reference"
)

const module = "server"

// Server is the HTTP and WebSocket front of the pose-matching engine.
type Server struct {
	app *fiber.App
	cfg *config.Config
	lib *reference.Library
	cmp *feedback.Comparator
	log logger.ILogger
}

// New wires routes on a fresh fiber app. Every session shares one
// comparator built from cfg.Feedback.
func New(cfg *config.Config, lib *reference.Library, log logger.ILogger) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.CorsAllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	s := &Server{
		app: app,
		cfg: cfg,
		lib: lib,
		cmp: feedback.NewComparator(
			feedback.WithThreshold(cfg.Feedback.Threshold),
			feedback.WithMaxWindow(cfg.Feedback.MaxWindow),
		),
		log: log,
	}
	s.registerRoutes()

	return s
}

// App returns the underlying fiber app, mainly for app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run listens on APP_PORT until the app is shut down.
func (s *Server) Run() error {
	s.log.Info(module, "server listening", map[string]interface{}{"port": s.cfg.App.Port})
	return s.app.Listen(":" + s.cfg.App.Port)
}

// Shutdown stops accepting connections and waits for handlers to return.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) registerRoutes() {
	api := s.app.Group("/api")
	api.Get("/health", s.health)
	api.Get("/exercises", s.listExercises)
	api.Post("/align", s.align)
	api.Post("/exercises/:id/compare", s.compare)
	api.Get("/exercises/:id/ghost/:frame", s.ghost)
	api.Get("/exercises/:id/overlay/:frame.png", s.overlay)

	s.app.Get("/ws/sessions/:id", s.serveSession)
}
