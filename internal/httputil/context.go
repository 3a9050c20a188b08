package httputil

import (
	"context"
	"net/http"
)

type userIDKey struct{}

// WithUserID returns a copy of r carrying the authenticated user's ID
func WithUserID(r *http.Request, userID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userIDKey{}, userID))
}

// GetUserID returns the user ID stored by the auth middleware, or "" for
// anonymous requests
func GetUserID(r *http.Request) string {
	userID, _ := r.Context().Value(userIDKey{}).(string)
	return userID
}
