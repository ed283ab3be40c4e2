package middlewares

import (
	"context"
	"net/http"
	"strings"

	"protrack-service/internal/app/models"
	"protrack-service/internal/pkg/constvars"
	"protrack-service/internal/pkg/exceptions"
	"protrack-service/internal/pkg/utils"
)

// Authenticate requires a valid bearer token bound to a live session. The
// session is attached to the request context for controllers.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.sessionFromRequest(r)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuthenticate attaches the session when a valid token is present and
// lets anonymous requests through. Some read endpoints tolerate anonymous
// access; the backend decides what anonymous callers may see.
func (m *Middlewares) OptionalAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.sessionFromRequest(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireCapability gates a route on one capability of the session's role.
func (m *Middlewares) RequireCapability(check func(models.Capabilities) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
			if !ok || session == nil {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
				return
			}
			if !check(session.Role.Capabilities()) {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleNotPermitted(nil))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (m *Middlewares) sessionFromRequest(r *http.Request) (*models.Session, error) {
	authHeader := r.Header.Get(constvars.HeaderAuthorization)
	if authHeader == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	token := strings.TrimPrefix(authHeader, constvars.BearerTokenPrefix)
	sessionID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	session, err := m.SessionService.GetSession(r.Context(), sessionID)
	if err != nil {
		return nil, exceptions.ErrInvalidSession(err)
	}
	return session, nil
}
