package httputil

import (
	"log/slog"
	"net/http"
)

func InternalServerError(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func BadRequest(w http.ResponseWriter, msg string, err error) {
	clientError(w, http.StatusBadRequest, msg, err)
}

func NotFound(w http.ResponseWriter, msg string, err error) {
	clientError(w, http.StatusNotFound, msg, err)
}

// Error writes msg with the given status, logging 5xx as errors and the
// rest as warnings.
func Error(w http.ResponseWriter, status int, msg string, err error) {
	if status >= http.StatusInternalServerError {
		InternalServerError(w, msg, err)
		return
	}
	clientError(w, status, msg, err)
}

func clientError(w http.ResponseWriter, status int, msg string, err error) {
	if err != nil {
		slog.Warn(http.StatusText(status), "message", msg, "error", err)
	} else {
		slog.Warn(http.StatusText(status), "message", msg)
	}
	http.Error(w, msg, status)
}
