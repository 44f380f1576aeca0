package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"

	"career-match/internal/delivery/http/dto"
	"career-match/internal/delivery/http/handler"
	"career-match/internal/delivery/http/middleware"
	"career-match/internal/delivery/http/routes"
	"career-match/internal/ws"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName:         c.Config.App.AppName,
		StructValidator: dto.NewStructValidator(),
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f}
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	health := map[string]handler.Pinger{"redis": c.Cache, "postgres": nil}
	if c.DB != nil {
		health["postgres"] = c.DB
	}

	routes.NewRegistry(routes.Deps{
		Equivalence: c.Equivalence,
		Targeting:   c.Targeting,
		Progression: c.Progression,
		Health:      health,
		WS:          ws.NewHandler(c.Hub, c.Logger),
		JWT:         c.JWT,
	}).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
