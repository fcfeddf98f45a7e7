package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/developer-projects-backend/errs"
	"github.com/rpupo63/developer-projects-backend/models"
	"github.com/rpupo63/developer-projects-backend/validator"
)

type projectHandler struct {
	responder  Responder
	logger     zerolog.Logger
	gate       existence
	projects   projectStore
	developers developerStore
}

func newProjectHandler(projects projectStore, developers developerStore) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()
	responder := NewResponder(logger)

	return projectHandler{
		responder:  responder,
		logger:     logger,
		gate:       newExistence(responder, developers, projects),
		projects:   projects,
		developers: developers,
	}
}

// getAllProjects lists every project, one row per linked technology
// @Router /projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projects.FindAllDetailed(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, projects)
	}
}

// @Router /projects/{id} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return h.gate.withProject(func(w http.ResponseWriter, r *http.Request, project *models.Project) {
		rows, err := h.projects.FindDetailedByID(r.Context(), project.ID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, rows)
	})
}

// createProject stores a project for an existing developer. A missing
// endDate is stored as null.
// @Router /projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload models.ProjectPayload
		if err := decodeJSON(w, r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		request, err := validator.Project(r.Context(), h.developers, payload)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projects.Add(r.Context(), request)
		if err != nil {
			h.responder.WriteError(w, developerGone(err))
			return
		}

		h.logger.Info().Int64("projectId", project.ID).Int64("developerId", project.DeveloperID).Msg("project created")
		h.responder.WriteJSONStatus(w, http.StatusCreated, project)
	}
}

// @Router /projects/{id} [patch]
func (h projectHandler) updateProject() http.HandlerFunc {
	return h.gate.withProject(func(w http.ResponseWriter, r *http.Request, project *models.Project) {
		var payload models.ProjectPayload
		if err := decodeJSON(w, r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		request, err := validator.ProjectUpdate(r.Context(), h.developers, *project, payload)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		updated, err := h.projects.Update(r.Context(), project.ID, request)
		if err != nil {
			h.responder.WriteError(w, developerGone(err))
			return
		}
		h.responder.WriteJSON(w, updated)
	})
}

// deleteProject removes a project and its technology links
// @Router /projects/{id} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return h.gate.withProject(func(w http.ResponseWriter, r *http.Request, project *models.Project) {
		if err := h.projects.Delete(r.Context(), project.ID); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteStatus(w, http.StatusNoContent)
	})
}

// developerGone covers a developer deleted between the lookup and the write.
func developerGone(err error) error {
	if errs.IsForeignKeyConstraintError(err) {
		return errs.NewReferentialError("Developer")
	}
	return err
}
