package plaintext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
	"github.com/custodia-labs/pitchmatch/internal/core/ports/driven"
)

func TestSupportedMIMETypes(t *testing.T) {
	n := New()
	assert.Equal(t, []string{"text/plain", "text/csv"}, n.SupportedMIMETypes())
}

func TestPriority(t *testing.T) {
	assert.Equal(t, 5, New().Priority())
}

func TestNormalise_Success(t *testing.T) {
	file := &domain.UploadedFile{
		Name:    "finflow_one-pager.txt",
		Content: []byte("FinFlow AI\r\nRaising $5M Series A\r\n"),
	}

	doc, err := New().Normalise(context.Background(), file)
	require.NoError(t, err)
	assert.Equal(t, "finflow_one-pager.txt", doc.Name)
	assert.Equal(t, "finflow one pager", doc.Title)
	assert.Equal(t, "plaintext", doc.Format)
	assert.Equal(t, "FinFlow AI\nRaising $5M Series A", doc.Content)
}

func TestNormalise_NilFile(t *testing.T) {
	_, err := New().Normalise(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNormalise_InvalidUTF8(t *testing.T) {
	file := &domain.UploadedFile{Name: "deck.txt", Content: []byte{0xff, 0xfe, 0x00}}

	_, err := New().Normalise(context.Background(), file)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNormalise_Empty(t *testing.T) {
	doc, err := New().Normalise(context.Background(), &domain.UploadedFile{Name: "notes.txt"})
	require.NoError(t, err)
	assert.True(t, doc.IsEmpty())
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"deck.txt", "deck"},
		{"/tmp/pitch/series_a-summary.txt", "series a summary"},
		{"README", "README"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractTitle(tt.name))
		})
	}
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.Normaliser = (*Normaliser)(nil)
}
