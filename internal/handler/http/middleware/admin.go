package middleware

import (
	"net/http"

	"github.com/workgrid-hq/hr-portal/internal/handler/http/response"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := SessionFromContext(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if !sess.Role.IsAdmin() {
			response.Forbidden(w, "Admin privilege required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
