package normalisers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
)

// stubNormaliser records which normaliser handled a file.
type stubNormaliser struct {
	format   string
	types    []string
	priority int
}

func (s *stubNormaliser) SupportedMIMETypes() []string { return s.types }
func (s *stubNormaliser) Priority() int                { return s.priority }

func (s *stubNormaliser) Normalise(_ context.Context, f *domain.UploadedFile) (*domain.PitchDocument, error) {
	return &domain.PitchDocument{Name: f.Name, Format: s.format, Content: f.MIMEType}, nil
}

func TestDetectMIMEType(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"deck.md", "text/markdown"},
		{"DECK.MD", "text/markdown"},
		{"notes.txt", "text/plain"},
		{"site/index.htm", "text/html"},
		{"summary.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		{"deck.pdf", ""},
		{"Makefile", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectMIMEType(tt.name))
		})
	}
}

func TestRegistry_PriorityOrder(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubNormaliser{format: "fallback", types: []string{"text/plain"}, priority: 5})
	r.Register(&stubNormaliser{format: "specific", types: []string{"text/plain"}, priority: 80})

	doc, err := r.Normalise(context.Background(), &domain.UploadedFile{Name: "notes.txt"})
	require.NoError(t, err)
	assert.Equal(t, "specific", doc.Format)
	assert.Equal(t, "text/plain", doc.Content, "detected type is passed on")
}

func TestRegistry_ExplicitMIMEType(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubNormaliser{format: "markdown", types: []string{"text/markdown"}, priority: 50})

	doc, err := r.Normalise(context.Background(), &domain.UploadedFile{Name: "deck", MIMEType: "text/markdown"})
	require.NoError(t, err)
	assert.Equal(t, "markdown", doc.Format)
}

func TestRegistry_Unsupported(t *testing.T) {
	r := NewDefaultRegistry()

	_, err := r.Normalise(context.Background(), &domain.UploadedFile{Name: "deck.pdf"})
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)

	_, err = r.Normalise(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegistry_SupportedMIMETypes(t *testing.T) {
	types := NewDefaultRegistry().SupportedMIMETypes()

	assert.Contains(t, types, "text/plain")
	assert.Contains(t, types, "text/markdown")
	assert.Contains(t, types, "text/html")
	assert.Contains(t, types, "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	assert.IsNonDecreasing(t, types)
}

func TestNewDefaultRegistry_Markdown(t *testing.T) {
	doc, err := NewDefaultRegistry().Normalise(context.Background(), &domain.UploadedFile{
		Name:    "deck.md",
		Content: []byte("# EcoTrack\n\nRaising **$2M** Seed"),
	})
	require.NoError(t, err)
	assert.Equal(t, "markdown", doc.Format)
	assert.Equal(t, "EcoTrack", doc.Title)
	assert.Contains(t, doc.Content, "Raising $2M Seed")
}
