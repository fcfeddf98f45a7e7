package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

type technologyHandler struct {
	responder    Responder
	technologies technologyStore
}

func newTechnologyHandler(technologies technologyStore) technologyHandler {
	logger := log.With().Str("handlerName", "technologyHandler").Logger()
	return technologyHandler{
		responder:    NewResponder(logger),
		technologies: technologies,
	}
}

// @Router /technologies [get]
func (h technologyHandler) getAllTechnologies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		technologies, err := h.technologies.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, technologies)
	}
}

type healthHandler struct {
	responder   Responder
	db          pinger
	startupTime time.Time
}

func newHealthHandler(db pinger, startupTime time.Time) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()
	return healthHandler{
		responder:   NewResponder(logger),
		db:          db,
		startupTime: startupTime,
	}
}

// @Router /healthz [get]
func (h healthHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.db.Ping(r.Context()); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, HealthResponse{
			Status: "ok",
			Uptime: time.Since(h.startupTime).Round(time.Second).String(),
		})
	}
}
