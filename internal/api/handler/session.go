package handler

import (
	"net/http"
	"time"

	"github.com/auracanvas/aura-api/internal/api/response"
	"github.com/auracanvas/aura-api/internal/config"
	"github.com/auracanvas/aura-api/internal/service"
)

// SessionHandler handles the anonymous session endpoints
type SessionHandler struct {
	sessionService *service.SessionService
	cookieName     string
	cookieMaxAge   time.Duration
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *service.SessionService, cfg config.SessionConfig) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		cookieName:     cfg.CookieName,
		cookieMaxAge:   cfg.CookieMaxAge,
	}
}

// Create allocates a new session and binds its secret token to a cookie
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionService.Create(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to create session")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    session.Token,
		Path:     "/",
		MaxAge:   int(h.cookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	response.OK(w, map[string]any{"session": session.View()})
}

// Get resolves the session cookie. An absent or unknown cookie yields
// {"session": null}, never an error.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionService.GetByToken(r.Context(), h.sessionToken(r))
	if err != nil {
		response.InternalError(w, "Failed to get session")
		return
	}
	if session == nil {
		response.OK(w, map[string]any{"session": nil})
		return
	}

	response.OK(w, map[string]any{"session": session.View()})
}

// sessionToken reads the session secret from the request cookie; empty when
// no cookie is present
func (h *SessionHandler) sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(h.cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
