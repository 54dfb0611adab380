package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

func urlParamID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// usernameFromToken returns the username claim of the verified access token,
// or "admin" when the claim is missing.
func usernameFromToken(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err == nil {
		if username, ok := claims["username"].(string); ok && username != "" {
			return username
		}
	}
	return "admin"
}
