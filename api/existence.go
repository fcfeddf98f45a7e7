package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rpupo63/developer-projects-backend/errs"
	"github.com/rpupo63/developer-projects-backend/models"
)

// existence loads the entity named by the {id} path parameter before a
// handler runs. A miss answers 404 and the handler is never called.
type existence struct {
	responder  Responder
	developers developerStore
	projects   projectStore
}

func newExistence(responder Responder, developers developerStore, projects projectStore) existence {
	return existence{
		responder:  responder,
		developers: developers,
		projects:   projects,
	}
}

// pathID parses the {id} path parameter.
func pathID(r *http.Request, entity string) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewInvalidPathParamError(entity, raw)
	}
	return id, nil
}

func (e existence) developer(r *http.Request) (*models.Developer, error) {
	id, err := pathID(r, "developer")
	if err != nil {
		return nil, err
	}
	return e.developers.FindByID(r.Context(), id)
}

func (e existence) project(r *http.Request) (*models.Project, error) {
	id, err := pathID(r, "project")
	if err != nil {
		return nil, err
	}
	return e.projects.FindByID(r.Context(), id)
}

func (e existence) withDeveloper(next func(http.ResponseWriter, *http.Request, *models.Developer)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		developer, err := e.developer(r)
		if err != nil {
			e.responder.WriteError(w, err)
			return
		}
		next(w, r, developer)
	}
}

func (e existence) withProject(next func(http.ResponseWriter, *http.Request, *models.Project)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, err := e.project(r)
		if err != nil {
			e.responder.WriteError(w, err)
			return
		}
		next(w, r, project)
	}
}

// emailAvailable gates developer creation: the email must be sent and must
// not belong to a stored developer.
func (e existence) emailAvailable(r *http.Request, email *string) error {
	if email == nil || *email == "" {
		return errs.NewRequiredFieldError("email", "Email is required.")
	}
	_, err := e.developers.FindByEmail(r.Context(), *email)
	switch {
	case err == nil:
		return errs.NewAlreadyExistsError("Email already exists.")
	case errs.IsNotFound(err):
		return nil
	default:
		return err
	}
}
