package middleware

import (
	"net/http"

	"github.com/monjauro/app/internal/config"
	"github.com/monjauro/app/internal/ctxkeys"
)

// Config adds the sanitized app configuration to the request context so
// templates can read app name, tagline and plan prices. Secrets never
// enter the context.
func Config(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxkeys.WithConfig(r.Context(), cfg.Sanitized())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
