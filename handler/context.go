package handler

import (
	"context"
	"net/http"
)

// Type contextKey is a custom contextKey type, with the underlying type string.
// This is necessary to prevent name collisions with external packages.
type contextKey string

// actorContextKey is the key under which the acting user's id, as asserted
// by the upstream authentication collaborator, is stored in the request
// context. An id of 0 means the request is anonymous.
const actorContextKey = contextKey("actor")

// contextSetActor returns a new copy of the request with the acting user's
// id added to the context.
func (h *Handler) contextSetActor(r *http.Request, actorID int64) *http.Request {
	ctx := context.WithValue(r.Context(), actorContextKey, actorID)
	return r.WithContext(ctx)
}

// contextGetActor retrieves the acting user's id from the request context.
// The actorContext middleware always sets a value, so a missing one is
// firmly an 'unexpected' error.
func (h *Handler) contextGetActor(r *http.Request) int64 {
	actorID, ok := r.Context().Value(actorContextKey).(int64)
	if !ok {
		panic("missing actor value in request context")
	}
	return actorID
}
