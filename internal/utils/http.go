package utils

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// MaxBodyBytes caps request bodies read by ReadBody.
const MaxBodyBytes = 1 << 20

// JSON writes a JSON response with status code.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// Message is the envelope used for every error and for confirmations.
type Message struct {
	Message string `json:"message"`
}

// JSONError writes {"message": "..."} with a given status.
func JSONError(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, Message{Message: msg})
}

// WriteError renders err. A *Error is sent with its own status and message;
// anything else is logged and reported as a bare 500.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		apiErr = Internal(err)
	}
	if apiErr.Kind == InternalFailure {
		log.Printf("[%s] %s %s: %v", middleware.GetReqID(r.Context()), r.Method, r.URL.Path, apiErr.Err)
	}
	JSONError(w, apiErr.Status(), apiErr.Message)
}

// ReadBody reads the whole request body, refusing anything over
// MaxBodyBytes.
func ReadBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, &Error{Kind: MalformedInput, Message: "Request body too large", Err: err}
		}
		return nil, Internal(err)
	}
	return data, nil
}
