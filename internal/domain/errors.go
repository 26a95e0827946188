package domain

import "errors"

// Domain-level sentinel errors for business logic.
// These errors should not contain HTTP-specific information.

var (
	// ErrImageDataRequired indicates the request carried no image payload
	ErrImageDataRequired = errors.New("image data required")

	// ErrNoSession indicates the request carried no session cookie
	ErrNoSession = errors.New("no session found")

	// ErrInvalidSession indicates the session token matches no session
	ErrInvalidSession = errors.New("invalid session")

	// ErrNoCredits indicates the session has no credits remaining
	ErrNoCredits = errors.New("no credits remaining")

	// ErrNotFound indicates an unknown aura id or image key; a normal
	// negative result, not an application fault
	ErrNotFound = errors.New("not found")
)

// AnalysisError wraps any transport or format failure from the external
// model. It is consumed by the pipeline's fallback substitution and never
// reaches the HTTP layer.
type AnalysisError struct {
	Err error
}

func (e *AnalysisError) Error() string {
	return "analysis failed: " + e.Err.Error()
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// ParseError indicates the model reply contained no parsable JSON object.
// Handled identically to AnalysisError.
type ParseError struct {
	Raw string
}

func (e *ParseError) Error() string {
	return "no JSON object found in model reply"
}
