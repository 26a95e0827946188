package handler

import (
	"encoding/json"
	"net/http"

	"github.com/auracanvas/aura-api/internal/api/response"
	"github.com/auracanvas/aura-api/internal/domain"
	"github.com/auracanvas/aura-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AuraHandler handles the analysis and aura reading endpoints
type AuraHandler struct {
	auraService *service.AuraService
	cookieName  string
	validate    *validator.Validate
}

// NewAuraHandler creates a new aura handler
func NewAuraHandler(auraService *service.AuraService, cookieName string) *AuraHandler {
	return &AuraHandler{
		auraService: auraService,
		cookieName:  cookieName,
		validate:    validator.New(),
	}
}

// Analyze runs the stateless preview analysis: no cookie, no persistence
func (h *AuraHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req domain.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, "Image data required")
		return
	}

	result, err := h.auraService.AnalyzeOnly(r.Context(), req)
	if err != nil {
		response.DomainError(w, err, "Failed to analyze aura")
		return
	}

	response.OK(w, map[string]any{
		"color":       result.Color,
		"description": result.Description,
	})
}

// Create runs the full pipeline behind the session cookie and credit gate
func (h *AuraHandler) Create(w http.ResponseWriter, r *http.Request) {
	token := h.sessionToken(r)

	var req domain.AuraCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	aura, credits, err := h.auraService.CreateAura(r.Context(), token, req)
	if err != nil {
		response.DomainError(w, err, "Failed to create aura")
		return
	}

	response.OK(w, map[string]any{
		"aura":    aura.View(),
		"credits": credits,
	})
}

// Get fetches one reading by id, personality answers included
func (h *AuraHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "auraID"))
	if err != nil {
		response.NotFound(w, "Aura not found")
		return
	}

	aura, err := h.auraService.GetAura(r.Context(), id)
	if err != nil {
		response.InternalError(w, "Failed to get aura")
		return
	}
	if aura == nil {
		response.NotFound(w, "Aura not found")
		return
	}

	response.OK(w, map[string]any{"aura": aura.DetailView()})
}

// List returns the cookie session's readings, newest first
func (h *AuraHandler) List(w http.ResponseWriter, r *http.Request) {
	auras, err := h.auraService.ListAuras(r.Context(), h.sessionToken(r))
	if err != nil {
		response.DomainError(w, err, "Failed to list auras")
		return
	}

	views := make([]domain.AuraView, 0, len(auras))
	for i := range auras {
		views = append(views, auras[i].DetailView())
	}
	response.OK(w, map[string]any{"auras": views})
}

func (h *AuraHandler) sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(h.cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
