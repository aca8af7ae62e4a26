package rest

import (
	"context"
	"net/http"

	"posts-lab/auth"
	"posts-lab/domain"
)

type contextKey string

const userKey contextKey = "authenticated_user"

// authMiddleware guards mutating routes. It validates the bearer
// credential and injects the caller identity into the request context;
// authorization (ownership) stays in the services.
func authMiddleware(validator *auth.TokenValidator, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := validator.ValidateAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			writeError(w, err)
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), userKey, user)))
	}
}

// userFrom returns the identity placed by authMiddleware. The bool is
// false only when a handler was wired without the middleware.
func userFrom(ctx context.Context) (domain.AuthenticatedUser, bool) {
	user, ok := ctx.Value(userKey).(domain.AuthenticatedUser)
	return user, ok
}
