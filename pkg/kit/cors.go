package kit

import (
	"net/http"
	"slices"

	"github.com/go-chi/cors"
)

// CORS only lets the listed browser origins through. A request with an Origin
// header outside the list is refused with 403; requests without one (curl,
// server-to-server) pass untouched.
func CORS(origins []string) func(http.Handler) http.Handler {
	allowed := func(origin string) bool { return slices.Contains(origins, origin) }

	headers := cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, origin string) bool { return allowed(origin) },
		AllowedMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:  []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:  []string{"X-Request-Id"},
		MaxAge:          300,
	})

	return func(next http.Handler) http.Handler {
		withHeaders := headers(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin := r.Header.Get("Origin"); origin != "" && !allowed(origin) {
				WriteError(w, r, http.StatusForbidden, "not allowed by CORS", map[string]any{"origin": origin})
				return
			}
			withHeaders.ServeHTTP(w, r)
		})
	}
}
