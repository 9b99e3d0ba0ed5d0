package health

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/reservation/service"
	"lodge/shared/constant"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Status struct {
	Status       string `json:"status"`
	Reservations int    `json:"reservations"`
}

type Handler struct {
	reservations service.Reservation
	otel         otel.Otel
}

func New(reservations service.Reservation, otel otel.Otel) Handler {
	return Handler{
		reservations: reservations,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.HealthCheck)
}

// HealthCheck reports whether the store is reachable. The reservation count
// doubles as a cheap liveness probe against the database file.
func (handler *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".HealthCheck")
	defer scope.End()

	count, err := handler.reservations.Count(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("health check failed to reach the store")

		response.WithUnhealthy(w)

		return
	}

	response.WithJSON(w, http.StatusOK, Status{
		Status:       "ok",
		Reservations: count,
	})
}
