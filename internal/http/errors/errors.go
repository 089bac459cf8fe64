// Package errors centralizes request-scoped error logging so handler
// responses stay generic while logs carry the request ID.
package errors

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

func InternalError(w http.ResponseWriter, r *http.Request, err error, message string) {
	logWith(r, "ERROR", message, err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func BadRequestError(w http.ResponseWriter, r *http.Request, err error, clientMessage string) {
	logWith(r, "WARN", "bad request", err)
	http.Error(w, clientMessage, http.StatusBadRequest)
}

func LogError(r *http.Request, message string, err error) {
	logWith(r, "ERROR", message, err)
}

func logWith(r *http.Request, level, message string, err error) {
	if requestID := middleware.GetReqID(r.Context()); requestID != "" {
		log.Printf("[%s] RequestID=%s: %s: %v", level, requestID, message, err)
		return
	}
	log.Printf("[%s] %s: %v", level, message, err)
}
