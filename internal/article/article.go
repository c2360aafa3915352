// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package article cleans stored article body text and splits it into the
// paragraphs the locator searches.
package article

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/pdiddy/sourcenet/internal/textnorm"
	"github.com/pdiddy/sourcenet/pkg/types"
)

// ErrCorruptParagraphs is returned when paragraph ids are duplicated,
// non-numeric, out of range, or present on only some paragraphs.
var ErrCorruptParagraphs = errors.New("corrupt paragraph structure")

// bodyPolicy keeps <p id="..."> and nothing else.
var bodyPolicy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("p")
	p.AllowAttrs("id").OnElements("p")
	return p
}()

// ContentStore holds the canonical body text of each article.
type ContentStore interface {
	// GetContent returns the stored body text of articleID.
	GetContent(ctx context.Context, articleID string) (string, error)

	// SetContent replaces the body text of articleID and returns what was
	// stored.
	SetContent(ctx context.Context, articleID, content string) (string, error)
}

// CleanBodyText removes all markup except paragraph tags and their id
// attributes, then collapses whitespace.
func CleanBodyText(body string) string {
	return textnorm.CollapseWhitespace(bodyPolicy.Sanitize(body))
}

// ParseParagraphs returns the text of each <p> element with nested markup
// removed and whitespace collapsed. When every paragraph carries a numeric
// id the result is ordered by id, which must run 1..n without gaps or
// repeats; otherwise ids must be absent altogether and document order is
// used. Content without any <p> element is one paragraph. Blank content has
// no paragraphs.
func ParseParagraphs(body string) ([]string, error) {
	root, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing article body: %w", err)
	}

	var nodes []*html.Node
	collectParagraphs(root, &nodes)
	if len(nodes) == 0 {
		text := textnorm.Normalize(body, textnorm.Plain)
		if text == "" {
			return []string{}, nil
		}
		return []string{text}, nil
	}

	out := make([]string, len(nodes))
	withID := 0
	for _, n := range nodes {
		if _, ok := attr(n, "id"); ok {
			withID++
		}
	}
	switch withID {
	case 0:
		for i, n := range nodes {
			out[i] = paragraphText(n)
		}
		return out, nil
	case len(nodes):
	default:
		return nil, fmt.Errorf("%d of %d paragraphs have an id: %w", withID, len(nodes), ErrCorruptParagraphs)
	}

	seen := make([]bool, len(nodes))
	for _, n := range nodes {
		raw, _ := attr(n, "id")
		id, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("paragraph id %q: %w", raw, ErrCorruptParagraphs)
		}
		if id < 1 || id > len(nodes) {
			return nil, fmt.Errorf("paragraph id %d outside 1..%d: %w", id, len(nodes), ErrCorruptParagraphs)
		}
		if seen[id-1] {
			return nil, fmt.Errorf("duplicate paragraph id %d: %w", id, ErrCorruptParagraphs)
		}
		seen[id-1] = true
		out[id-1] = paragraphText(n)
	}
	return out, nil
}

// Parse builds the document for articleID from its body text.
func Parse(articleID, body string) (types.Document, error) {
	paragraphs, err := ParseParagraphs(body)
	if err != nil {
		return types.Document{}, fmt.Errorf("article %s: %w", articleID, err)
	}
	return types.NewDocument(articleID, paragraphs...), nil
}

// Load reads the body text of articleID from cs and parses it.
func Load(ctx context.Context, cs ContentStore, articleID string) (types.Document, error) {
	body, err := cs.GetContent(ctx, articleID)
	if err != nil {
		return types.Document{}, fmt.Errorf("loading article %s: %w", articleID, err)
	}
	return Parse(articleID, body)
}

// Save cleans body and stores it for articleID. The body must parse into
// paragraphs, so corrupt markup never reaches the store.
func Save(ctx context.Context, cs ContentStore, articleID, body string) (string, error) {
	cleaned := CleanBodyText(body)
	if _, err := ParseParagraphs(cleaned); err != nil {
		return "", fmt.Errorf("article %s: %w", articleID, err)
	}
	stored, err := cs.SetContent(ctx, articleID, cleaned)
	if err != nil {
		return "", fmt.Errorf("saving article %s: %w", articleID, err)
	}
	return stored, nil
}

func collectParagraphs(n *html.Node, out *[]*html.Node) {
	if n.Type == html.ElementNode && n.DataAtom == atom.P {
		*out = append(*out, n)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectParagraphs(c, out)
	}
}

// paragraphText returns the text content of n with whitespace collapsed.
func paragraphText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			b.WriteString(n.Data)
			return
		case n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style):
			return
		case n.Type == html.ElementNode && n.DataAtom == atom.Br:
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return textnorm.Normalize(b.String(), textnorm.Plain)
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
