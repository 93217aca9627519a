package health

import (
	"context"
	"net/http"

	"github.com/mentorgig/session-service/internal/api/handlers"
	healthService "github.com/mentorgig/session-service/internal/service/health"
)

type HealthService interface {
	Check(ctx context.Context) *healthService.Status
}

type Handler struct {
	service HealthService
}

func NewHandler(service HealthService) *Handler {
	return &Handler{service: service}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	status := h.service.Check(r.Context())

	code := http.StatusOK
	if !status.Healthy {
		code = http.StatusServiceUnavailable
	}

	handlers.RespondJSON(w, code, status)
}
