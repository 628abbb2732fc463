package httpapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/andrisk/realhub/internal/common"
)

type contextKey string

const tokenContextKey contextKey = "sessionToken"

// tokenFromContext returns the session token the auth middleware stored for
// this request.
func tokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey).(string)
	return token
}

// authMiddleware requires a session token header and stashes it in the
// request context. Token validation happens in the service layer; here we
// only reject requests that carry no token at all.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(common.SessionTokenHeaderName)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "missing session token")
			return
		}

		ctx := context.WithValue(r.Context(), tokenContextKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// hostCheckMiddleware rejects browser requests whose Origin host is not
// registered. Requests without an Origin header (same-origin, CLI, tests)
// pass through.
func (s *Server) hostCheckMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && !s.hostAllowed(origin) {
			writeError(w, http.StatusForbidden, "origin host is not registered with this identity service")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) hostAllowed(origin string) bool {
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	host := u.Hostname()
	for _, allowed := range s.allowedHosts {
		if host == allowed {
			return true
		}
	}
	return false
}
