package handlertools

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/reviewlens/reviewlens/internal"
	"github.com/reviewlens/reviewlens/pkg/models"
)

var log = internal.GetLogger()

// EncodeJSON encodes data into JSON and writes it to the response writer.
func EncodeJSON(w http.ResponseWriter, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(data)
}

// DecodeJSON decodes a JSON request body into the provided data struct.
func DecodeJSON(r *http.Request, data interface{}) error {
	return json.NewDecoder(r.Body).Decode(&data)
}

// RenderError renders an error response, upgrading the status where the
// error type is more specific than the caller's default.
func RenderError(w http.ResponseWriter, err error, status int) {
	if err.Error() == "http: request body too large" {
		status = http.StatusRequestEntityTooLarge
	}

	switch {
	case errors.Is(err, models.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound), errors.Is(err, models.ErrNoReviewData):
		status = http.StatusNotFound
	}

	if status != http.StatusNotFound {
		// Don't log not found errors
		log.Error(err)
	}

	http.Error(w, err.Error(), status)
}
