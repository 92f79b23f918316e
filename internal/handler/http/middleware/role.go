package middleware

import (
	"net/http"

	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
	"github.com/taskmate/taskmate-backend-go/internal/handler/http/response"
)

// RequireRoles lets the request through only when the actor holds one of
// roles. It must run after AuthRequired.
func RequireRoles(roles ...access.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFrom(r.Context())
			if !ok {
				response.Unauthorized(w, "Missing or invalid token")
				return
			}
			if !actor.Role.In(roles...) {
				response.Forbidden(w, "Your role cannot perform this action")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
