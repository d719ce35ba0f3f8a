package driven

import (
	"context"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
)

// Normaliser extracts readable text from one kind of pitch document.
// Each normaliser handles specific MIME types (e.g., Markdown, DOCX).
type Normaliser interface {
	// SupportedMIMETypes returns the MIME types this normaliser handles.
	SupportedMIMETypes() []string

	// Priority returns the selection priority (higher = preferred).
	// Format-specific normalisers return 50-89.
	// Fallback normalisers return 1-9.
	Priority() int

	// Normalise turns an uploaded file into plain text.
	Normalise(ctx context.Context, file *domain.UploadedFile) (*domain.PitchDocument, error)
}
