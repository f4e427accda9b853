package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes bounds request bodies; a survey submission is a few hundred bytes.
const MaxBodyBytes = 16 << 10

var ErrTrailingData = errors.New("unexpected data after JSON body")

// DecodeJSON reads exactly one JSON value from the request body into v.
// Anything but whitespace after that value is an error.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer io.Copy(io.Discard, r.Body)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return ErrTrailingData
	}
	return nil
}

// Will log the decoding error at debug level, and send a JSON response with
// status 413 for oversized bodies or 400 with a short description otherwise
func LogBadBody(w http.ResponseWriter, r *http.Request, code string, err error) {
	logFor(r, code).Debugf("%s: %s", code, err)

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		respond(w, r, http.StatusRequestEntityTooLarge, ErrorResponse{
			Error:   "Request body too large",
			Details: fmt.Sprintf("limit is %d bytes", tooLarge.Limit),
		})
		return
	}
	respond(w, r, http.StatusBadRequest, ErrorResponse{
		Error:   "Invalid request body",
		Details: bodyErrorDetails(err),
	})
}

func bodyErrorDetails(err error) string {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return "empty body"
	case errors.Is(err, ErrTrailingData):
		return "unexpected data after JSON value"
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return fmt.Sprintf("invalid value for %s", typeErr.Field)
	case errors.As(err, &typeErr):
		return "body must be a JSON object"
	default:
		return "malformed JSON"
	}
}
