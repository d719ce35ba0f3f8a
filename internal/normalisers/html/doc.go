// Package html provides a Normaliser for HTML pitch documents, such as
// exported landing pages or web-based decks. Only the text a reader would
// see is kept.
package html
