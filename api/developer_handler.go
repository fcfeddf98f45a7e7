package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/developer-projects-backend/errs"
	"github.com/rpupo63/developer-projects-backend/models"
	"github.com/rpupo63/developer-projects-backend/validator"
)

type developerHandler struct {
	responder  Responder
	logger     zerolog.Logger
	gate       existence
	developers developerStore
}

func newDeveloperHandler(developers developerStore, projects projectStore) developerHandler {
	logger := log.With().Str("handlerName", "developerHandler").Logger()
	responder := NewResponder(logger)

	return developerHandler{
		responder:  responder,
		logger:     logger,
		gate:       newExistence(responder, developers, projects),
		developers: developers,
	}
}

// createDeveloper registers a developer. The email is checked for
// availability before the rest of the payload.
// @Router /developers [post]
func (h developerHandler) createDeveloper() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload models.DeveloperPayload
		if err := decodeJSON(w, r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.gate.emailAvailable(r, payload.Email); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		request, err := validator.Developer(payload)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		developer, err := h.developers.Add(r.Context(), request)
		if err != nil {
			h.responder.WriteError(w, emailTaken(err))
			return
		}

		h.logger.Info().Int64("developerId", developer.ID).Msg("developer created")
		h.responder.WriteJSONStatus(w, http.StatusCreated, developer)
	}
}

// @Router /developers [get]
func (h developerHandler) getAllDevelopers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		developers, err := h.developers.FindAllDetailed(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, developers)
	}
}

// @Router /developers/{id} [get]
func (h developerHandler) getDeveloper() http.HandlerFunc {
	return h.gate.withDeveloper(func(w http.ResponseWriter, r *http.Request, developer *models.Developer) {
		detail, err := h.developers.FindDetailedByID(r.Context(), developer.ID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, detail)
	})
}

// getDeveloperProjects answers the first row of the developer's joined
// infos, projects and technologies.
// @Router /developers/{id}/projects [get]
func (h developerHandler) getDeveloperProjects() http.HandlerFunc {
	return h.gate.withDeveloper(func(w http.ResponseWriter, r *http.Request, developer *models.Developer) {
		detail, err := h.developers.FindWithProjects(r.Context(), developer.ID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, detail)
	})
}

// @Router /developers/{id} [patch]
func (h developerHandler) updateDeveloper() http.HandlerFunc {
	return h.gate.withDeveloper(func(w http.ResponseWriter, r *http.Request, developer *models.Developer) {
		var payload models.DeveloperPayload
		if err := decodeJSON(w, r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		request, err := validator.DeveloperUpdate(*developer, payload)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if request.Email != developer.Email {
			if err := h.gate.emailAvailable(r, &request.Email); err != nil {
				h.responder.WriteError(w, err)
				return
			}
		}

		updated, err := h.developers.Update(r.Context(), developer.ID, request)
		if err != nil {
			h.responder.WriteError(w, emailTaken(err))
			return
		}
		h.responder.WriteJSON(w, updated)
	})
}

// deleteDeveloper removes the developer together with its infos.
// @Router /developers/{id} [delete]
func (h developerHandler) deleteDeveloper() http.HandlerFunc {
	return h.gate.withDeveloper(func(w http.ResponseWriter, r *http.Request, developer *models.Developer) {
		if err := h.developers.Delete(r.Context(), developer); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Int64("developerId", developer.ID).Msg("developer deleted")
		h.responder.WriteStatus(w, http.StatusNoContent)
	})
}

// emailTaken reports a write that lost the race for an email on the unique
// index the same way the availability check does.
func emailTaken(err error) error {
	if errs.IsUniqueConstraintViolationError(err) {
		return errs.NewAlreadyExistsError("Email already exists.")
	}
	return err
}
