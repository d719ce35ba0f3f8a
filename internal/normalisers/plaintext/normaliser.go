package plaintext

import (
	"context"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
	"github.com/custodia-labs/pitchmatch/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles plain text notes and one-pagers.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/plain", "text/csv"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 5 // Fallback normaliser
}

// Normalise returns the file content as is, with line endings unified.
func (n *Normaliser) Normalise(_ context.Context, file *domain.UploadedFile) (*domain.PitchDocument, error) {
	if file == nil {
		return nil, domain.ErrInvalidInput
	}
	if !utf8.Valid(file.Content) {
		return nil, domain.ErrInvalidInput
	}

	content := strings.ReplaceAll(string(file.Content), "\r\n", "\n")

	return &domain.PitchDocument{
		Name:    file.Name,
		Title:   extractTitle(file.Name),
		Format:  "plaintext",
		Content: strings.TrimSpace(content),
	}, nil
}

// extractTitle extracts a human-readable title from a file name.
func extractTitle(name string) string {
	filename := filepath.Base(name)

	// Remove the extension for a cleaner title
	ext := filepath.Ext(filename)
	if ext != "" {
		filename = strings.TrimSuffix(filename, ext)
	}

	// Replace underscores and dashes with spaces
	filename = strings.ReplaceAll(filename, "_", " ")
	filename = strings.ReplaceAll(filename, "-", " ")

	return filename
}
