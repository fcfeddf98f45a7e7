package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/rpupo63/developer-projects-backend/errs"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	r.WriteJSONStatus(w, http.StatusOK, data)
}

func (r Responder) WriteJSONStatus(w http.ResponseWriter, status int, data any) {
	// Marshal first so a marshaling failure can still answer 500
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteStatus answers with an empty body.
func (r Responder) WriteStatus(w http.ResponseWriter, status int) {
	w.WriteHeader(status)
}

func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	// Anything unclassified is a server error carrying the raw message
	if !errors.As(err, &apiErr) {
		r.logger.Error().Err(err).Msg("unexpected error")
		r.WriteJSONStatus(w, http.StatusInternalServerError, ErrorResponse{
			Message: err.Error(),
			Status:  errs.KindInternal.String(),
		})
		return
	}

	status := apiErr.StatusCode
	response := ErrorResponse{
		Message: apiErr.Message(),
		Status:  apiErr.Kind.String(),
		Field:   apiErr.Field,
		Details: apiErr.Details,
	}

	switch apiErr.Kind {
	case errs.KindValidation:
		response.Keys = apiErr.Keys
	case errs.KindUnsupportedValue:
		response.Options = apiErr.Options
	case errs.KindReferential, errs.KindNotFound, errs.KindConflict, errs.KindImmutable, errs.KindMalformed:
	case errs.KindInternal:
		r.logger.Error().Int("status", status).Str("error", apiErr.GetFullError()).Msg("internal error")
	default:
		r.logger.Error().Stringer("kind", apiErr.Kind).Msg("unhandled error kind")
		status = http.StatusInternalServerError
	}

	if apiErr.Cause != nil {
		response.Cause = apiErr.GetFullError()
	}
	if status == 0 {
		status = http.StatusInternalServerError
	}

	r.WriteJSONStatus(w, status, response)
}
