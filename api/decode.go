package api

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/rpupo63/developer-projects-backend/errs"
)

const maxBodyBytes = 1 << 20

var acceptedMediaTypes = []string{"application/json"}

// decodeJSON reads the request body into dst. An empty body leaves dst
// untouched so that it fails validation like an empty object would. A body
// sent without Content-Type is read as JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if contentType := r.Header.Get("Content-Type"); contentType != "" {
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != acceptedMediaTypes[0] {
			return errs.NewUnsupportedMediaTypeError(contentType, acceptedMediaTypes)
		}
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.As(err, &maxErr):
			return errs.NewMaxBodySizeExceededError(maxErr.Limit)
		default:
			return errs.NewInvalidJSONError(err)
		}
	}
	return nil
}
