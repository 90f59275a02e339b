package server

import (
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/Lesaloon/MR-Label-Converter/app/api"
	"github.com/Lesaloon/MR-Label-Converter/app/middleware"
)

var config = fiber.Config{
	ErrorHandler: api.ErrorHandler,
	BodyLimit:    50 * 1024 * 1024,
}

type Server struct {
	listenAddr  string
	frontendDir string
	logger      *slog.Logger
}

func NewServer(addr, frontendDir string) *Server {
	return &Server{
		listenAddr:  addr,
		frontendDir: frontendDir,
		logger:      slog.Default(),
	}
}

func (s *Server) Stop() {
	s.logger.Info("server stopped")
}

func (s *Server) Run() {
	var (
		app            = fiber.New(config)
		checkHandler   = api.NewCheckHandler()
		convertHandler = api.NewConvertHandler()
		configHandler  = api.NewConfigHandler()
		check          = app.Group("/check")
		apiv1          = app.Group("/api/v1")
	)

	app.Use(middleware.PlugStatic("/ui"))

	check.Get("/healthy", checkHandler.HandleHealthy)
	apiv1.Post("/convert", convertHandler.HandleConvert)
	apiv1.Get("/config", configHandler.HandleGetConfig)
	apiv1.Post("/config/check", configHandler.HandleCheckConfig)

	hasUI := false
	if s.frontendDir != "" {
		if _, err := os.Stat(s.frontendDir); err == nil {
			app.Static("/ui", s.frontendDir)
			hasUI = true
		} else {
			s.logger.Warn("frontend dir not found, UI disabled", "dir", s.frontendDir)
		}
	}
	app.Get("/", func(c *fiber.Ctx) error {
		if hasUI {
			return c.Redirect("/ui/", fiber.StatusFound)
		}
		return c.JSON(fiber.Map{"service": "label-converter", "ui": "not configured"})
	})

	err := app.Listen(s.listenAddr)
	if err != nil {
		s.logger.Error("error to start server", "error", err.Error())
		return
	}
}
