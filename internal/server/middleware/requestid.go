package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// requestIDKey is the context key for the per-request identifier.
const requestIDKey ContextKey = "requestID"

// RequestIDHeader carries the request identifier back to the caller.
const RequestIDHeader = "X-Request-ID"

// RequestID assigns each request a uuid, stores it in the request context,
// and echoes it in the response headers. An identifier supplied by the
// caller is kept as-is so upstream traces stay joined.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID extracts the request identifier from the request context.
// Returns an empty string when the middleware did not run.
func GetRequestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey).(string)
	return id
}
