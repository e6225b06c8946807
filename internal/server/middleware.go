package server

import (
	"net/http"
	"strings"

	"github.com/nja-rasheed/taskfy/internal/auth"
)

// requireAuth verifies the bearer token and stores the resolved user id in
// the request context. Absence of identity fails every operation the same
// way: 401 with the canonical error body.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			respondError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		userID, err := s.sessions.Verify(token)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		ctx := auth.WithUserID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}
