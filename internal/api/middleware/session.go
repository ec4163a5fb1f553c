package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/Darioantonio20/BarberPlatform/internal/api/handlers"
)

const sessionHeader = "X-Session-ID"

const msgInvalidSession = "identificador de sesión inválido"

type sessionKey struct{}

// Session extracts the client session id from the X-Session-ID header. A
// request without one gets a fresh id minted and echoed back, so first-time
// visitors work without a handshake. A malformed id is rejected.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(sessionHeader)

		if sessionID == "" {
			sessionID = uuid.NewString()
		} else if _, err := uuid.Parse(sessionID); err != nil {
			handlers.RespondBadRequest(w, msgInvalidSession)
			return
		}

		w.Header().Set(sessionHeader, sessionID)
		ctx := context.WithValue(r.Context(), sessionKey{}, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID returns the session id carried by the request context, or the
// empty string for a request that skipped the Session middleware.
func SessionID(ctx context.Context) string {
	if id, ok := ctx.Value(sessionKey{}).(string); ok {
		return id
	}
	return ""
}
