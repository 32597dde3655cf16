// Package httputil provides JSON request and response helpers shared by the
// HTTP handlers and middleware.
package httputil

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"

	"github.com/vietkitchen/recipes-api/internal/errors"
)

// WriteJSON writes data as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteError writes an error payload of the form {"error": message}.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"error": message})
}

// WriteServiceError resolves the HTTP status for err and writes it as an
// error payload. Untyped errors surface as 400 per the error model.
func WriteServiceError(w http.ResponseWriter, err error) {
	message := err.Error()
	if svcErr := errors.GetServiceError(err); svcErr != nil {
		message = svcErr.Message
	}
	WriteError(w, errors.HTTPStatusOf(err), message)
}

// DecodeJSON reads the request body into dst. An empty body is not an
// error; presence checks happen in the services.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}
