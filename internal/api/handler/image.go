package handler

import (
	"errors"
	"net/http"

	"github.com/auracanvas/aura-api/internal/api/response"
	"github.com/auracanvas/aura-api/internal/domain"
	"github.com/go-chi/chi/v5"
)

// ImageHandler serves stored images
type ImageHandler struct {
	artifacts domain.ArtifactStore
}

// NewImageHandler creates a new image handler
func NewImageHandler(artifacts domain.ArtifactStore) *ImageHandler {
	return &ImageHandler{artifacts: artifacts}
}

// Serve streams the stored image bytes with a one-year cache lifetime.
// Image keys contain a slash, so the route uses a wildcard.
func (h *ImageHandler) Serve(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")
	if key == "" {
		response.NotFound(w, "Image not found")
		return
	}

	data, contentType, err := h.artifacts.Get(r.Context(), key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.NotFound(w, "Image not found")
			return
		}
		response.InternalError(w, "Failed to get image")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=31536000")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
