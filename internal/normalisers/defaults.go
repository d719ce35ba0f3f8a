package normalisers

import (
	"github.com/custodia-labs/pitchmatch/internal/normalisers/docx"
	"github.com/custodia-labs/pitchmatch/internal/normalisers/html"
	"github.com/custodia-labs/pitchmatch/internal/normalisers/markdown"
	"github.com/custodia-labs/pitchmatch/internal/normalisers/plaintext"
)

// RegisterDefaults registers all built-in normalisers with the registry.
func RegisterDefaults(r *Registry) {
	r.Register(plaintext.New())
	r.Register(markdown.New())
	r.Register(html.New())
	r.Register(docx.New())
}

// NewDefaultRegistry returns a registry with the built-in normalisers.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}
