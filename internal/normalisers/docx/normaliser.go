package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
	"github.com/custodia-labs/pitchmatch/internal/core/ports/driven"
)

// MIMEType is the Office Open XML word processing type.
const MIMEType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

const (
	documentPart = "word/document.xml"
	corePart     = "docProps/core.xml"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles DOCX documents such as executive summaries.
type Normaliser struct{}

// New creates a new DOCX normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{MIMEType}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50
}

// Normalise extracts the body text of a DOCX file, one line per paragraph.
// Table cells are read as paragraphs. A file without a body part yields an
// empty document.
func (n *Normaliser) Normalise(_ context.Context, file *domain.UploadedFile) (*domain.PitchDocument, error) {
	if file == nil {
		return nil, domain.ErrInvalidInput
	}
	archive, err := zip.NewReader(bytes.NewReader(file.Content), int64(len(file.Content)))
	if err != nil {
		return nil, fmt.Errorf("%w: not a docx archive", domain.ErrInvalidInput)
	}

	doc := &domain.PitchDocument{
		Name:   file.Name,
		Title:  fileTitle(file.Name),
		Format: "docx",
	}

	body, err := fs.ReadFile(archive, documentPart)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrInvalidInput, documentPart, err)
	default:
		if doc.Content, err = bodyText(bytes.NewReader(body)); err != nil {
			return nil, fmt.Errorf("%w: parse %s: %v", domain.ErrInvalidInput, documentPart, err)
		}
	}

	if title := coreTitle(archive); title != "" {
		doc.Title = title
	}
	return doc, nil
}

// bodyText walks the WordprocessingML tokens. Text runs are joined, tabs
// and breaks are kept, and every paragraph ends a line.
func bodyText(r io.Reader) (string, error) {
	var (
		out    strings.Builder
		inText bool
	)
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "t":
				inText = true
			case "tab":
				out.WriteByte('\t')
			case "br", "cr":
				out.WriteByte('\n')
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "t":
				inText = false
			case "p":
				out.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				out.Write(el)
			}
		}
	}
	return strings.TrimSpace(out.String()), nil
}

// coreTitle reads dc:title from the document properties, if present.
func coreTitle(archive fs.FS) string {
	data, err := fs.ReadFile(archive, corePart)
	if err != nil {
		return ""
	}
	var props struct {
		Title string `xml:"title"`
	}
	if err := xml.Unmarshal(data, &props); err != nil {
		return ""
	}
	return strings.TrimSpace(props.Title)
}

// fileTitle turns "eco_track-memo.docx" into "eco track memo".
func fileTitle(name string) string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	return strings.NewReplacer("_", " ", "-", " ").Replace(base)
}
