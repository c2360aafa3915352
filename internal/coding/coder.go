// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package coding

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pdiddy/sourcenet/internal/article"
	"github.com/pdiddy/sourcenet/internal/locate"
	"github.com/pdiddy/sourcenet/internal/names"
	"github.com/pdiddy/sourcenet/pkg/types"
)

// Coder codes articles: it resolves every author and subject name to a
// person and locates subject names and quotations in the article text.
// A Coder keeps no state between calls apart from the view cache, which
// holds immutable values.
type Coder struct {
	matcher *names.Matcher
	locator *locate.Locator
	content article.ContentStore
	views   *locate.ViewCache
	log     *zap.Logger
	now     func() time.Time
}

// NewCoder returns a Coder. content may be nil when every request names an
// article file. A nil logger disables logging.
func NewCoder(matcher *names.Matcher, locator *locate.Locator, content article.ContentStore, log *zap.Logger) *Coder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Coder{
		matcher: matcher,
		locator: locator,
		content: content,
		views:   locate.NewViewCache(),
		log:     log.Named("coding"),
		now:     time.Now,
	}
}

// CodeArticle codes one article and returns a fresh report.
func (c *Coder) CodeArticle(ctx context.Context, req types.CodingRequest) (types.CodingReport, error) {
	doc, err := c.loadDocument(ctx, req)
	if err != nil {
		return types.CodingReport{}, err
	}
	v := c.views.Get(doc)

	var participants []Participant
	for _, in := range req.Authors {
		if err := ctx.Err(); err != nil {
			return types.CodingReport{}, err
		}
		outcome, err := c.matcher.FindPerson(ctx, in.Name)
		if err != nil {
			return types.CodingReport{}, fmt.Errorf("coding author %q: %w", in.Name, err)
		}
		participants = append(participants, &Author{Input: in, Outcome: outcome})
	}
	for _, in := range req.Subjects {
		if err := ctx.Err(); err != nil {
			return types.CodingReport{}, err
		}
		outcome, err := c.matcher.FindPerson(ctx, in.Name)
		if err != nil {
			return types.CodingReport{}, fmt.Errorf("coding subject %q: %w", in.Name, err)
		}
		participants = append(participants, NewSubject(in, outcome))
	}

	report := types.CodingReport{
		RunID:     uuid.NewString(),
		ArticleID: doc.ID,
		Coder:     req.Coder,
		CodedAt:   c.now().UTC(),
		Authors:   []types.AuthorReport{},
		Subjects:  []types.SubjectReport{},
	}
	for _, p := range participants {
		connected := p.IsConnected(req.Criteria)
		switch p := p.(type) {
		case *Author:
			report.Authors = append(report.Authors, types.AuthorReport{
				Name:       p.Input.Name,
				Type:       p.Input.Type,
				Outcome:    p.Outcome,
				Connected:  connected,
				Alternates: alternateIDs(p),
			})
		case *Subject:
			sr := types.SubjectReport{
				Name:         p.Input.Name,
				Kind:         p.Kind,
				Outcome:      p.Outcome,
				Connected:    connected,
				Alternates:   alternateIDs(p),
				NameLocation: c.locator.Report(v, p.Input.Name),
			}
			for _, q := range p.Input.Quotations {
				sr.Quotations = append(sr.Quotations, types.QuotationReport{
					Text:     q,
					Location: c.locator.Report(v, q),
				})
			}
			if connected {
				report.Connected++
			}
			report.Subjects = append(report.Subjects, sr)
		}
	}

	c.log.Info("coded article",
		zap.String("article", report.ArticleID),
		zap.String("run", report.RunID),
		zap.Int("authors", len(report.Authors)),
		zap.Int("subjects", len(report.Subjects)),
		zap.Int("connected", report.Connected),
	)
	return report, nil
}

// Invalidate drops cached views of articleID after its content changed.
func (c *Coder) Invalidate(articleID string) {
	c.views.Invalidate(articleID)
}

func (c *Coder) loadDocument(ctx context.Context, req types.CodingRequest) (types.Document, error) {
	if req.ArticleFile != "" {
		data, err := os.ReadFile(req.ArticleFile)
		if err != nil {
			return types.Document{}, fmt.Errorf("reading article file: %w", err)
		}
		id := req.ArticleID
		if id == "" {
			id = req.ArticleFile
		}
		// The file may have changed since it was last indexed.
		c.views.Invalidate(id)
		return article.Parse(id, string(data))
	}
	if req.ArticleID == "" {
		return types.Document{}, errors.New("request needs an article_id or article_file")
	}
	if c.content == nil {
		return types.Document{}, fmt.Errorf("article %s: no content store configured", req.ArticleID)
	}
	return article.Load(ctx, c.content, req.ArticleID)
}
