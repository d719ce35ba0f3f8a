package domain

import "strings"

// PitchDocument is the readable text of an uploaded pitch document.
type PitchDocument struct {
	// Name is the uploaded file name.
	Name string `json:"name"`

	// Title comes from the document itself when it has one, otherwise
	// from the file name.
	Title string `json:"title"`

	// Format names the normaliser that produced the text (markdown, docx...).
	Format string `json:"format"`

	// Content is the plain text with markup removed.
	Content string `json:"content"`
}

// Words returns the number of whitespace separated words in the content.
func (d *PitchDocument) Words() int {
	return len(strings.Fields(d.Content))
}

// IsEmpty reports whether no text was extracted.
func (d *PitchDocument) IsEmpty() bool {
	return strings.TrimSpace(d.Content) == ""
}
