package analysis

import (
	"context"

	"github.com/auracanvas/aura-api/internal/domain"
)

// Request contains aura analysis parameters. ImageData is a base64 data URL;
// Energy and Element are the two personality labels.
type Request struct {
	ImageData string
	Energy    string
	Element   string
}

// Analyzer defines the interface for the external vision/text model.
// Implementations fail loudly on transport and format errors; the only
// self-healing they perform is coercing an out-of-domain color to the
// fallback color.
type Analyzer interface {
	Analyze(ctx context.Context, req Request) (*domain.AnalysisResult, error)
}
