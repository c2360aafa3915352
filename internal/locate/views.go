// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package locate

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/pdiddy/sourcenet/internal/textnorm"
	"github.com/pdiddy/sourcenet/pkg/types"
)

// span is a half-open byte range [start, end).
type span struct {
	start, end int
}

// Views holds the renderings of one document that the resolver searches.
// A Views value is immutable once built by Index and may be shared across
// goroutines.
type Views struct {
	doc types.Document

	// canonical is each paragraph wrapped in <p id="N">...</p>, joined by
	// newlines. canonicalSpans[i] is the byte range of paragraph i+1's text
	// within it.
	canonical      string
	canonicalSpans []span

	// plain is the non-blank paragraphs joined by single spaces.
	// plainSpans[i] is the byte range of paragraph i+1 within it, empty for
	// a blank paragraph.
	plain      string
	plainSpans []span

	words types.WordIndex

	// wordStarts[i] is the plain offset of word i+1.
	wordStarts []int
}

// Index builds the views of doc. Paragraph text is normalized with
// textnorm.Plain first, so callers may pass raw paragraph strings.
func Index(doc types.Document) *Views {
	v := &Views{doc: types.Document{ID: doc.ID, Paragraphs: make([]string, len(doc.Paragraphs))}}

	var canonical, plain strings.Builder
	for i, p := range doc.Paragraphs {
		p = textnorm.Normalize(p, textnorm.Plain)
		v.doc.Paragraphs[i] = p

		if i > 0 {
			canonical.WriteByte('\n')
		}
		// A blank paragraph keeps its number with a zero-width plain span,
		// so the text around it stays one space apart.
		if plain.Len() > 0 && p != "" {
			plain.WriteByte(' ')
		}
		canonical.WriteString(`<p id="`)
		canonical.WriteString(strconv.Itoa(i + 1))
		canonical.WriteString(`">`)
		start := canonical.Len()
		canonical.WriteString(p)
		v.canonicalSpans = append(v.canonicalSpans, span{start, canonical.Len()})
		canonical.WriteString("</p>")

		start = plain.Len()
		plain.WriteString(p)
		v.plainSpans = append(v.plainSpans, span{start, plain.Len()})

		// Normalized paragraphs separate words by exactly one space.
		off := start
		for _, w := range textnorm.Tokenize(p) {
			v.words.Words = append(v.words.Words, w)
			v.words.ParagraphOf = append(v.words.ParagraphOf, i+1)
			v.wordStarts = append(v.wordStarts, off)
			off += len(w) + 1
		}
	}
	v.canonical = canonical.String()
	v.plain = plain.String()
	if v.words.Words == nil {
		v.words.Words = []string{}
		v.words.ParagraphOf = []int{}
	}
	return v
}

// Document returns the normalized document.
func (v *Views) Document() types.Document {
	return v.doc
}

// Canonical returns the paragraph-tagged rendering.
func (v *Views) Canonical() string {
	return v.canonical
}

// PlainText returns the non-blank paragraphs joined by single spaces.
func (v *Views) PlainText() string {
	return v.plain
}

// WordIndex returns the word tokens of the plain rendering.
func (v *Views) WordIndex() types.WordIndex {
	return v.words
}

// paragraph returns normalized paragraph n (1-based).
func (v *Views) paragraph(n int) string {
	return v.doc.Paragraphs[n-1]
}

// canonicalParagraphAt returns the paragraph whose text contains canonical
// offset off, or 0 when off falls inside markup.
func (v *Views) canonicalParagraphAt(off int) int {
	return paragraphAt(v.canonicalSpans, off)
}

// plainParagraphAt returns the paragraph containing plain offset off. The
// separator space after a paragraph belongs to no paragraph (0).
func (v *Views) plainParagraphAt(off int) int {
	return paragraphAt(v.plainSpans, off)
}

// plainToCanonical converts a plain offset inside paragraph n to the
// matching canonical offset.
func (v *Views) plainToCanonical(n, off int) int {
	return v.canonicalSpans[n-1].start + (off - v.plainSpans[n-1].start)
}

// canonicalToPlain converts a canonical offset inside paragraph n to the
// matching plain offset.
func (v *Views) canonicalToPlain(n, off int) int {
	return v.plainSpans[n-1].start + (off - v.canonicalSpans[n-1].start)
}

// wordRange returns the 1-based numbers of the words overlapping the plain
// byte range [start, end).
func (v *Views) wordRange(start, end int) types.WordRange {
	if len(v.wordStarts) == 0 || end <= start {
		return types.WordRange{}
	}
	first := sort.Search(len(v.wordStarts), func(i int) bool { return v.wordStarts[i] > start }) - 1
	last := sort.Search(len(v.wordStarts), func(i int) bool { return v.wordStarts[i] >= end }) - 1
	if first < 0 {
		first = 0
	}
	if last < first {
		return types.WordRange{}
	}
	return types.WordRange{First: first + 1, Last: last + 1}
}

// paragraphWords returns the 0-based word index range [lo, hi) of the
// words in paragraph n.
func (v *Views) paragraphWords(n int) (lo, hi int) {
	pof := v.words.ParagraphOf
	lo = sort.Search(len(pof), func(i int) bool { return pof[i] >= n })
	hi = sort.Search(len(pof), func(i int) bool { return pof[i] > n })
	return lo, hi
}

func paragraphAt(spans []span, off int) int {
	i := sort.Search(len(spans), func(i int) bool { return spans[i].end > off })
	if i < len(spans) && spans[i].start <= off {
		return i + 1
	}
	return 0
}

// ViewCache shares built Views between calls keyed by document id. Views
// are immutable, so readers never need more than the read lock.
type ViewCache struct {
	mu    sync.RWMutex
	views map[string]*Views
}

// NewViewCache returns an empty cache.
func NewViewCache() *ViewCache {
	return &ViewCache{views: make(map[string]*Views)}
}

// Get returns the views for doc.ID, building and storing them on first use.
// Documents without an id are indexed but not cached.
func (c *ViewCache) Get(doc types.Document) *Views {
	if doc.ID == "" {
		return Index(doc)
	}
	c.mu.RLock()
	v, ok := c.views[doc.ID]
	c.mu.RUnlock()
	if ok {
		return v
	}

	built := Index(doc)
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.views[doc.ID]; ok {
		return v
	}
	c.views[doc.ID] = built
	return built
}

// Invalidate drops the cached views for id, e.g. after its content changed.
func (c *ViewCache) Invalidate(id string) {
	c.mu.Lock()
	delete(c.views, id)
	c.mu.Unlock()
}

// Len returns the number of cached documents.
func (c *ViewCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.views)
}
