package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/workgrid-hq/hr-portal/internal/domain/auth"
	"github.com/workgrid-hq/hr-portal/internal/handler/http/response"
	"github.com/workgrid-hq/hr-portal/internal/pkg/jwt"
)

type contextKey string

const sessionKey contextKey = "portal_session"

// AuthRequired verifies the portal session token and stores the
// rebuilt session in the request context.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			sess, err := jwtService.SessionFromClaims(claims)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// SessionFromContext returns the session placed by AuthRequired.
func SessionFromContext(ctx context.Context) (auth.Session, error) {
	sess, ok := ctx.Value(sessionKey).(auth.Session)
	if !ok {
		return auth.Session{}, auth.ErrSessionNotFound
	}
	return sess, nil
}
