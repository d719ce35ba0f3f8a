package driven

import (
	"context"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
)

// NormaliserRegistry selects the appropriate normaliser for a document.
// It maintains a priority-ordered list of normalisers and dispatches
// on MIME type, detecting it from the file name when unset.
type NormaliserRegistry interface {
	// Normalise extracts text using the best matching normaliser.
	// Returns domain.ErrUnsupportedType when no normaliser applies.
	Normalise(ctx context.Context, file *domain.UploadedFile) (*domain.PitchDocument, error)

	// Register adds a normaliser to the registry.
	Register(normaliser Normaliser)

	// SupportedMIMETypes returns all MIME types that can be normalised.
	SupportedMIMETypes() []string
}
