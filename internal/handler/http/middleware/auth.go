package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
	"github.com/taskmate/taskmate-backend-go/internal/handler/http/response"
	"github.com/taskmate/taskmate-backend-go/internal/pkg/jwt"
)

type actorKey struct{}

// WithActor returns a copy of ctx carrying actor.
func WithActor(ctx context.Context, actor access.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFrom returns the actor stored by AuthRequired.
func ActorFrom(ctx context.Context) (access.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(access.Actor)
	return actor, ok
}

// AuthRequired turns the token verified by jwtauth.Verifier into an actor.
// Reset tokens and tokens with missing claims are rejected.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			response.Unauthorized(w, "Missing or invalid token")
			return
		}

		actor, err := jwt.ActorFromClaims(claims)
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}
