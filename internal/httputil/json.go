package httputil

import (
	"encoding/json"
	"log/slog"
	"mime"
	"net/http"
	"strings"
)

const jsonMediaType = "application/json"

type ErrorBody struct {
	Error string `json:"error"`
}

// JSONResponse writes data as a JSON body with the given status.
func JSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", jsonMediaType)
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RawJSONResponse writes an already encoded JSON body.
func RawJSONResponse(w http.ResponseWriter, statusCode int, body []byte) {
	w.Header().Set("Content-Type", jsonMediaType)
	w.WriteHeader(statusCode)
	if _, err := w.Write(body); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}

// JSONError writes {"error": message}.
func JSONError(w http.ResponseWriter, statusCode int, message string, err error) {
	switch {
	case statusCode >= http.StatusInternalServerError:
		slog.Error(message, "status", statusCode, "error", err)
	case err != nil:
		slog.Warn(message, "status", statusCode, "error", err)
	}
	JSONResponse(w, statusCode, ErrorBody{Error: message})
}

// ParseJSONBody decodes the request body into v.
func ParseJSONBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// IsJSON reports whether the request body is JSON, ignoring media type
// parameters such as charset.
func IsJSON(r *http.Request) bool {
	return isJSONMediaType(r.Header.Get("Content-Type"))
}

// WantsJSON reports whether the client sent JSON or listed JSON in Accept.
func WantsJSON(r *http.Request) bool {
	if IsJSON(r) {
		return true
	}
	for _, accepted := range strings.Split(r.Header.Get("Accept"), ",") {
		if isJSONMediaType(accepted) {
			return true
		}
	}
	return false
}

func isJSONMediaType(value string) bool {
	mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(value))
	return err == nil && mediaType == jsonMediaType
}
