package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/mbolis/save-survey/log"
)

const unknownError = "Unknown error"

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Will log an error, and send a JSON response with status 500, the given
// message and the error text as details
func LogInternalError(w http.ResponseWriter, r *http.Request, code string, msg string, err error) {
	details := ErrorDetails(err)
	logFor(r, code).Errorf("%s: %s", code, details)
	respond(w, r, http.StatusInternalServerError, ErrorResponse{Error: msg, Details: details})
}

// Will log a debug message, and send a JSON response with status 400
func LogBadRequest(w http.ResponseWriter, r *http.Request, code string, msg string, details string) {
	logFor(r, code).Debugf("%s: %s %s", code, msg, details)
	respond(w, r, http.StatusBadRequest, ErrorResponse{Error: msg, Details: details})
}

// ErrorDetails is the client-facing text of err.
func ErrorDetails(err error) string {
	if err == nil || err.Error() == "" {
		return unknownError
	}
	return err.Error()
}

func respond(w http.ResponseWriter, r *http.Request, status int, body any) {
	render.Status(r, status)
	render.JSON(w, r, body)
}

func logFor(r *http.Request, code string) *log.Entry {
	return log.WithFields(log.Fields{
		"code":       code,
		"request_id": middleware.GetReqID(r.Context()),
	})
}
