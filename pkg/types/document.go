// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Document is an article body split into paragraphs. Paragraph text has all
// markup removed; paragraph numbers are 1-based and follow slice order.
type Document struct {
	// ID identifies the article the document was loaded from. Optional.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Paragraphs holds normalized paragraph text in source order.
	Paragraphs []string `json:"paragraphs" yaml:"paragraphs"`
}

// NewDocument builds a Document from paragraph strings. id may be empty.
func NewDocument(id string, paragraphs ...string) Document {
	return Document{ID: id, Paragraphs: paragraphs}
}

// ParagraphCount returns the number of paragraphs.
func (d Document) ParagraphCount() int {
	return len(d.Paragraphs)
}

// Paragraph returns the text of paragraph number n (1-based). It returns
// false when n is out of range.
func (d Document) Paragraph(n int) (string, bool) {
	if n < 1 || n > len(d.Paragraphs) {
		return "", false
	}
	return d.Paragraphs[n-1], true
}

// WordIndex is the plain-text rendering of a Document split into word
// tokens. Word numbers are 1-based; index i holds word number i+1.
type WordIndex struct {
	Words []string `json:"words" yaml:"words"`

	// ParagraphOf holds the 1-based paragraph number of each word.
	ParagraphOf []int `json:"paragraph_of" yaml:"paragraph_of"`
}

// Len returns the number of words.
func (w WordIndex) Len() int {
	return len(w.Words)
}

// WordRange is an inclusive range of 1-based word numbers.
type WordRange struct {
	First int `json:"first" yaml:"first"`
	Last  int `json:"last" yaml:"last"`
}
