package testutil

import (
	"context"
	"net/http"
	"strconv"

	"github.com/briclabs/evcoordinator-sub000/pkg/requestcontext"
)

// WithActor sets the X-Actor-ID header the actor middleware reads.
func WithActor(req *http.Request, actorID int64) *http.Request {
	req.Header.Set("X-Actor-ID", strconv.FormatInt(actorID, 10))
	return req
}

// WithActorContext injects the actor directly, for handlers exercised
// without the middleware chain.
func WithActorContext(req *http.Request, actorID int64) *http.Request {
	return req.WithContext(requestcontext.WithActorID(req.Context(), actorID))
}

// WithContextValue adds an arbitrary key-value pair to the request context.
func WithContextValue(req *http.Request, key, value any) *http.Request {
	ctx := context.WithValue(req.Context(), key, value)
	return req.WithContext(ctx)
}
