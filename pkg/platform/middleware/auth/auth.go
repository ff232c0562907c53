// Package auth identifies the acting participant for every mutating request.
// Credential checks happen upstream; this layer only trusts the gateway's
// X-Actor-ID header and optionally confirms the participant exists.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	request "github.com/briclabs/evcoordinator-sub000/pkg/platform/middleware/request"
	"github.com/briclabs/evcoordinator-sub000/pkg/requestcontext"
)

// HeaderActorID names the participant performing the request.
const HeaderActorID = "X-Actor-ID"

// ActorChecker reports whether an actor id refers to a recorded participant.
type ActorChecker interface {
	ActorExists(ctx context.Context, actorID int64) (bool, error)
}

// writeJSONError writes a JSON error response with the given status code and error details.
func writeJSONError(w http.ResponseWriter, status int, errCode, errDesc string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(fmt.Appendf(nil, `{"error":"%s","error_description":"%s"}`, errCode, errDesc))
}

// RequireActor rejects requests without a positive numeric X-Actor-ID. When
// checker is non-nil the actor must also exist.
func RequireActor(checker ActorChecker, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := request.GetRequestID(ctx)

			raw := strings.TrimSpace(r.Header.Get(HeaderActorID))
			if raw == "" {
				logger.WarnContext(ctx, "unidentified actor - missing header",
					"request_id", requestID,
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Missing X-Actor-ID header")
				return
			}
			actorID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || actorID <= 0 {
				logger.WarnContext(ctx, "unidentified actor - malformed header",
					"request_id", requestID,
					"actor", raw,
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "X-Actor-ID must be a positive integer")
				return
			}

			if checker != nil {
				exists, err := checker.ActorExists(ctx, actorID)
				if err != nil {
					logger.ErrorContext(ctx, "failed to check actor",
						"error", err,
						"request_id", requestID,
					)
					writeJSONError(w, http.StatusInternalServerError, "internal_error", "Failed to identify actor")
					return
				}
				if !exists {
					logger.WarnContext(ctx, "unidentified actor - unknown participant",
						"actor_id", actorID,
						"request_id", requestID,
					)
					writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Unknown actor")
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(requestcontext.WithActorID(ctx, actorID)))
		})
	}
}

// GetActorID retrieves the actor set by RequireActor, or 0.
func GetActorID(ctx context.Context) int64 {
	actorID, _ := requestcontext.ActorID(ctx)
	return actorID
}
