package middleware

import (
	"net/http"
	"strings"

	"github.com/auracanvas/aura-api/internal/config"
)

// CORS reproduces the origin policy of the original deployment: requests
// from the allow-list, from any localhost origin, or from the preview-host
// suffix get their origin echoed back; every other origin receives the first
// configured allowed origin in the header. Unknown origins are substituted,
// not rejected.
type CORS struct {
	allowedOrigins []string
	devHostSuffix  string
}

// NewCORS creates the CORS middleware from configuration
func NewCORS(cfg config.CORSConfig) *CORS {
	return &CORS{
		allowedOrigins: cfg.AllowedOrigins,
		devHostSuffix:  cfg.DevHostSuffix,
	}
}

// Handler applies the CORS headers and answers preflight requests
func (c *CORS) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		h := w.Header()
		h.Set("Access-Control-Allow-Origin", c.ResolveOrigin(origin))
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		h.Set("Access-Control-Allow-Credentials", "true")
		h.Set("Access-Control-Max-Age", "86400")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ResolveOrigin returns the origin to place in the allow-origin header
func (c *CORS) ResolveOrigin(origin string) string {
	if origin != "" && c.isAllowed(origin) {
		return origin
	}
	if len(c.allowedOrigins) > 0 {
		return c.allowedOrigins[0]
	}
	return ""
}

func (c *CORS) isAllowed(origin string) bool {
	for _, allowed := range c.allowedOrigins {
		if allowed == origin || allowed == "*" {
			return true
		}
	}
	if strings.Contains(origin, "localhost") {
		return true
	}
	return c.devHostSuffix != "" && strings.Contains(origin, c.devHostSuffix)
}
