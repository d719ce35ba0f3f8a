package normalisers

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
	"github.com/custodia-labs/pitchmatch/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.NormaliserRegistry = (*Registry)(nil)

// extensionTypes maps file extensions to the MIME types normalisers declare.
var extensionTypes = map[string]string{
	".txt":      "text/plain",
	".text":     "text/plain",
	".md":       "text/markdown",
	".markdown": "text/markdown",
	".html":     "text/html",
	".htm":      "text/html",
	".xhtml":    "application/xhtml+xml",
	".docx":     "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// DetectMIMEType guesses a MIME type from a file name.
// Returns an empty string for unknown extensions.
func DetectMIMEType(name string) string {
	return extensionTypes[strings.ToLower(filepath.Ext(name))]
}

// Registry holds normalisers ordered by priority.
type Registry struct {
	mu          sync.RWMutex
	normalisers []driven.Normaliser
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a normaliser. Higher priority normalisers are tried first.
func (r *Registry) Register(n driven.Normaliser) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.normalisers = append(r.normalisers, n)
	sort.SliceStable(r.normalisers, func(i, j int) bool {
		return r.normalisers[i].Priority() > r.normalisers[j].Priority()
	})
}

// SupportedMIMETypes returns every MIME type some normaliser handles, sorted.
func (r *Registry) SupportedMIMETypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var types []string
	for _, n := range r.normalisers {
		for _, t := range n.SupportedMIMETypes() {
			if !slices.Contains(types, t) {
				types = append(types, t)
			}
		}
	}
	sort.Strings(types)
	return types
}

// Normalise extracts text with the highest priority normaliser for the file.
func (r *Registry) Normalise(ctx context.Context, file *domain.UploadedFile) (*domain.PitchDocument, error) {
	if file == nil {
		return nil, domain.ErrInvalidInput
	}

	mimeType := file.MIMEType
	if mimeType == "" {
		mimeType = DetectMIMEType(file.Name)
	}

	n := r.lookup(mimeType)
	if n == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, file.Name)
	}

	f := *file
	f.MIMEType = mimeType
	return n.Normalise(ctx, &f)
}

func (r *Registry) lookup(mimeType string) driven.Normaliser {
	if mimeType == "" {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, n := range r.normalisers {
		if slices.Contains(n.SupportedMIMETypes(), mimeType) {
			return n
		}
	}
	return nil
}
