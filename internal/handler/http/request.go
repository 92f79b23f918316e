package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
	"github.com/taskmate/taskmate-backend-go/internal/handler/http/middleware"
	"github.com/taskmate/taskmate-backend-go/internal/handler/http/response"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads a single JSON object into dst, answering 400 itself on
// failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		msg := "Invalid request format"
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.Is(err, io.EOF):
			msg = "Request body is required"
		case errors.As(err, &typeErr):
			msg = fmt.Sprintf("Field %q has the wrong type", typeErr.Field)
		case errors.As(err, &syntaxErr):
			msg = "Malformed JSON"
		}
		response.BadRequest(w, msg, nil)
		return false
	}
	return true
}

// pathID parses a positive integer URL parameter, answering 400 itself on
// failure.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, fmt.Sprintf("Invalid %s", name), nil)
		return 0, false
	}
	return id, true
}

// currentActor returns the authenticated actor, answering 401 itself when the
// auth middleware did not run.
func currentActor(w http.ResponseWriter, r *http.Request) (access.Actor, bool) {
	actor, ok := middleware.ActorFrom(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing or invalid token")
	}
	return actor, ok
}
