package handler

import (
	"fmt"
	"net/http"

	apperrors "github.com/launchkit/signup-server-go/internal/errors"
	"github.com/launchkit/signup-server-go/internal/httputil"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	httputil.WriteJSON(w, status, data)
}

// writeHTML renders an inline message fragment for the form endpoints.
func writeHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprint(w, body)
}

// htmlRetry renders a message followed by a retry link, the error shape the
// form pages expect.
func htmlRetry(message, path, label string) string {
	return fmt.Sprintf(`%s <a href="%s">%s</a>.`, message, path, label)
}

// userMessage returns the user-facing message for an error without leaking
// internals for unexpected ones.
func userMessage(err error) string {
	if appErr, ok := apperrors.AsAppError(err); ok {
		return appErr.Message
	}
	return "An unexpected error occurred."
}
