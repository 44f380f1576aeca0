package routes

import (
	"github.com/gofiber/fiber/v3"

	"career-match/internal/delivery/http/handler"
	"career-match/internal/delivery/http/middleware"
	"career-match/internal/pkg/jwt"
	"career-match/internal/usecase"
	"career-match/internal/ws"
)

type Deps struct {
	Equivalence usecase.EquivalenceUsecase
	Targeting   usecase.TargetingUsecase
	Progression usecase.ProgressionUsecase
	Health      map[string]handler.Pinger
	WS          *ws.Handler
	// JWT protects /api/v1 when set.
	JWT jwt.Service
}

type Registry struct {
	health      *handler.HealthHandler
	equivalence *handler.EquivalenceHandler
	targeting   *handler.TargetingHandler
	progression *handler.ProgressionHandler
	ws          *ws.Handler
	auth        *middleware.AuthMiddleware
}

func NewRegistry(d Deps) *Registry {
	r := &Registry{
		health:      handler.NewHealthHandler(d.Health),
		equivalence: handler.NewEquivalenceHandler(d.Equivalence),
		targeting:   handler.NewTargetingHandler(d.Targeting),
		progression: handler.NewProgressionHandler(d.Progression),
		ws:          d.WS,
	}
	if d.JWT != nil {
		r.auth = middleware.NewAuthMiddleware(d.JWT)
	}
	return r
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	v1 := app.Group("/api/v1")
	if r.auth != nil {
		v1.Use(r.auth.Middleware())
	}
	r.equivalence.RegisterRoutes(v1)
	r.targeting.RegisterRoutes(v1)
	r.progression.RegisterRoutes(v1)
	if r.ws != nil {
		v1.Get("/ws/targeting", r.ws.HandleTargetingWS)
	}
}
