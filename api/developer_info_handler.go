package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/developer-projects-backend/errs"
	"github.com/rpupo63/developer-projects-backend/models"
	"github.com/rpupo63/developer-projects-backend/validator"
)

type developerInfoHandler struct {
	responder      Responder
	logger         zerolog.Logger
	gate           existence
	developerInfos developerInfoStore
}

func newDeveloperInfoHandler(developerInfos developerInfoStore, developers developerStore, projects projectStore) developerInfoHandler {
	logger := log.With().Str("handlerName", "developerInfoHandler").Logger()
	responder := NewResponder(logger)

	return developerInfoHandler{
		responder:      responder,
		logger:         logger,
		gate:           newExistence(responder, developers, projects),
		developerInfos: developerInfos,
	}
}

// createDeveloperInfo stores the developer's infos and links them to it.
// A developer holds at most one infos row.
// @Router /developers/{id}/infos [post]
func (h developerInfoHandler) createDeveloperInfo() http.HandlerFunc {
	return h.gate.withDeveloper(func(w http.ResponseWriter, r *http.Request, developer *models.Developer) {
		var payload models.DeveloperInfoPayload
		if err := decodeJSON(w, r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		request, err := validator.DeveloperInfo(payload)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if developer.DeveloperInfosID != nil {
			h.responder.WriteError(w, errs.NewAlreadyExistsError("Developer infos already exists."))
			return
		}

		info, err := h.developerInfos.AddForDeveloper(r.Context(), developer.ID, request)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSONStatus(w, http.StatusCreated, info)
	})
}

// @Router /developers/{id}/infos [patch]
func (h developerInfoHandler) updateDeveloperInfo() http.HandlerFunc {
	return h.gate.withDeveloper(func(w http.ResponseWriter, r *http.Request, developer *models.Developer) {
		var payload models.DeveloperInfoPayload
		if err := decodeJSON(w, r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := validator.RequireDeveloperInfoUpdate(payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if developer.DeveloperInfosID == nil {
			h.responder.WriteError(w, errs.NewEntityNotFoundError("Developer info"))
			return
		}

		stored, err := h.developerInfos.FindByID(r.Context(), *developer.DeveloperInfosID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		request, err := validator.DeveloperInfoUpdate(*stored, payload)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		updated, err := h.developerInfos.Update(r.Context(), stored.ID, request)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, updated)
	})
}
