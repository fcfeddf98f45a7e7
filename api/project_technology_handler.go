package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/developer-projects-backend/errs"
	"github.com/rpupo63/developer-projects-backend/models"
	"github.com/rpupo63/developer-projects-backend/validator"
)

type projectTechnologyHandler struct {
	responder           Responder
	logger              zerolog.Logger
	gate                existence
	technologies        technologyStore
	projectTechnologies projectTechnologyStore
	now                 func() time.Time
}

func newProjectTechnologyHandler(projectTechnologies projectTechnologyStore, technologies technologyStore, developers developerStore, projects projectStore) projectTechnologyHandler {
	logger := log.With().Str("handlerName", "projectTechnologyHandler").Logger()
	responder := NewResponder(logger)

	return projectTechnologyHandler{
		responder:           responder,
		logger:              logger,
		gate:                newExistence(responder, developers, projects),
		technologies:        technologies,
		projectTechnologies: projectTechnologies,
		now:                 time.Now,
	}
}

// addTechnology links a catalog technology to a project. The name is checked
// against the catalog before the project is looked up.
// @Router /projects/{id}/tecnologies [post]
func (h projectTechnologyHandler) addTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload models.TechnologyPayload
		if err := decodeJSON(w, r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		name, err := validator.Technology(payload)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.gate.project(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		request, err := validator.ProjectTechnology(r.Context(), h.technologies, project.ID, name, h.now())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		_, err = h.projectTechnologies.FindLink(r.Context(), project.ID, request.TechnologyID)
		switch {
		case err == nil:
			h.responder.WriteError(w, errs.NewAlreadyExistsError(fmt.Sprintf("Technology '%s' already added to this Project.", name)))
			return
		case !errs.IsNotFound(err):
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.projectTechnologies.Add(r.Context(), request); err != nil {
			if errs.IsUniqueConstraintViolationError(err) {
				err = errs.NewAlreadyExistsError(fmt.Sprintf("Technology '%s' already added to this Project.", name))
			}
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteStatus(w, http.StatusCreated)
	}
}

// removeTechnology unlinks a technology from the project in the path.
// @Router /projects/{id}/technologies/{name} [delete]
func (h projectTechnologyHandler) removeTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		if err := validator.TechnologyName(name); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.gate.project(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		link, err := h.projectTechnologies.FindByName(r.Context(), project.ID, name)
		if err != nil {
			if errs.IsNotFound(err) {
				err = errs.NewNotLinkedError(fmt.Sprintf("Technology '%s' not found on this Project.", name))
			}
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projectTechnologies.Delete(r.Context(), link.ID); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteStatus(w, http.StatusNoContent)
	}
}
