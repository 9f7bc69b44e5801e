package httpapi

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

type ctxKey string

const userKey ctxKey = "user"

// accessTokenCookie is the transport location of the identity token.
const accessTokenCookie = "access_token"

// requireUser is the auth boundary. A request is authenticated only when a
// token cookie is present, the token verifies, and the asserted identifier
// resolves to an existing user. Every failure produces the same 401 so
// that callers cannot tell a malformed token from an expired one or from a
// token naming a deleted user.
func (s *HTTPServer) requireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		cookie, err := r.Cookie(accessTokenCookie)
		if err != nil {
			s.unauthorized(w)
			return
		}

		userID, err := auth.GetUserIDFromToken(cookie.Value, s.jwtSecret)
		if err != nil {
			s.unauthorized(w)
			return
		}

		user, err := s.users.GetByID(r.Context(), userID)
		if err != nil {
			s.unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next(w, r.WithContext(ctx))
	}
}

func (s *HTTPServer) unauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, CodeUnauthorized, "Please log in to continue")
}

// userFromContext returns the authenticated user placed by requireUser.
func userFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}
