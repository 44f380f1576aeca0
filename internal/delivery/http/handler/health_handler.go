package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"career-match/internal/pkg/response"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	checks map[string]Pinger
}

// NewHealthHandler reports each named dependency. Nil entries are reported as disabled.
func NewHealthHandler(checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{checks: checks}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	deps := make(map[string]string, len(h.checks))
	for name, p := range h.checks {
		switch {
		case p == nil:
			deps[name] = "disabled"
		case p.Ping(ctx) != nil:
			deps[name] = "unavailable"
		default:
			deps[name] = "ok"
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"dependencies": deps})
}
