package html

import (
	"context"
	"html"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
	"github.com/custodia-labs/pitchmatch/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles HTML documents.
type Normaliser struct{}

// New creates a new HTML normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/html", "application/xhtml+xml"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50
}

// Normalise converts an HTML page to the text a reader would see.
func (n *Normaliser) Normalise(_ context.Context, file *domain.UploadedFile) (*domain.PitchDocument, error) {
	if file == nil {
		return nil, domain.ErrInvalidInput
	}
	page := string(file.Content)
	return &domain.PitchDocument{
		Name:    file.Name,
		Title:   pageTitle(page, file.Name),
		Format:  "html",
		Content: visibleText(page),
	}, nil
}

// hiddenElements are removed together with their content.
var hiddenElements = []string{"head", "script", "style", "noscript", "svg", "template"}

var (
	titlePattern   = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	headingPattern = regexp.MustCompile(`(?is)<h1[^>]*>(.*?)</h1>`)
	commentPattern = regexp.MustCompile(`(?s)<!--.*?-->`)
	hiddenPattern  = elementsPattern(hiddenElements)
	breakPattern   = regexp.MustCompile(`(?i)<(?:br|hr)\s*/?>|</?(?:p|div|h[1-6]|ul|ol|li|table|tr|td|th|blockquote|pre|section|article|header|footer|main)\b[^>]*>`)
	tagPattern     = regexp.MustCompile(`<[^>]+>`)
	spacePattern   = regexp.MustCompile(`[ \t\x{00a0}]+`)
)

// elementsPattern matches any of the named elements and everything inside.
func elementsPattern(names []string) *regexp.Regexp {
	alts := make([]string, len(names))
	for i, name := range names {
		name = regexp.QuoteMeta(name)
		alts[i] = `<` + name + `\b[^>]*>.*?</` + name + `\s*>`
	}
	return regexp.MustCompile(`(?is)` + strings.Join(alts, "|"))
}

// pageTitle prefers <title>, then the first <h1>, then the file name.
func pageTitle(page, name string) string {
	for _, pattern := range []*regexp.Regexp{titlePattern, headingPattern} {
		if m := pattern.FindStringSubmatch(page); m != nil {
			if title := strings.TrimSpace(visibleText(m[1])); title != "" {
				return title
			}
		}
	}
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	return strings.NewReplacer("_", " ", "-", " ").Replace(base)
}

// visibleText drops markup and hidden elements and returns one line per
// block, with entities decoded and runs of spaces collapsed.
func visibleText(page string) string {
	page = commentPattern.ReplaceAllString(page, "")
	page = hiddenPattern.ReplaceAllString(page, "")
	page = breakPattern.ReplaceAllString(page, "\n")
	page = tagPattern.ReplaceAllString(page, "")
	page = html.UnescapeString(page)

	var lines []string
	for _, line := range strings.Split(page, "\n") {
		line = strings.TrimSpace(spacePattern.ReplaceAllString(line, " "))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
