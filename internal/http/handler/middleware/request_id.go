package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

const RequestIDHeader = "X-Request-ID"

type RequestIDMiddleware struct{}

func NewRequestIDMiddleware() *RequestIDMiddleware {
	return &RequestIDMiddleware{}
}

// RequestID reuses the caller's X-Request-ID or assigns a new one, and
// exposes it on the request context and the response headers.
func (m *RequestIDMiddleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(requestId); err != nil {
			requestId = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, requestId)
		ctx := context.WithValue(r.Context(), RequestIDKey, requestId)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
