package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// APIToken exige "Authorization: Bearer <token>" cuando token no es vacío.
// El WebSocket no puede mandar headers desde el navegador, por eso también
// se acepta ?access_token=. Las rutas en exempt pasan sin token.
func APIToken(token string, exempt ...string) func(http.Handler) http.Handler {
	token = strings.TrimSpace(token)
	skip := make(map[string]bool, len(exempt))
	for _, p := range exempt {
		skip[p] = true
	}

	return func(next http.Handler) http.Handler {
		if token == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skip[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			got := bearerToken(r.Header.Get("Authorization"))
			if got == "" {
				got = strings.TrimSpace(r.URL.Query().Get("access_token"))
			}
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				w.Header().Set("WWW-Authenticate", `Bearer realm="pet-health"`)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(authHeader string) string {
	scheme, rest, ok := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(rest)
}
