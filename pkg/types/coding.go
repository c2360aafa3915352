// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// SubjectKind distinguishes quoted sources from people only mentioned.
type SubjectKind string

const (
	SubjectQuoted    SubjectKind = "quoted"
	SubjectMentioned SubjectKind = "mentioned"
)

// SourceType categorizes what kind of entity a subject is.
type SourceType string

const (
	SourceAnonymous    SourceType = "anonymous"
	SourceIndividual   SourceType = "individual"
	SourceOrganization SourceType = "organization"
	SourceDocument     SourceType = "document"
	SourceOther        SourceType = "other"
)

// ContactType records how the reporter got the information from a source.
type ContactType string

const (
	ContactDirect     ContactType = "direct"
	ContactEvent      ContactType = "event"
	ContactPastQuotes ContactType = "past_quotes"
	ContactDocument   ContactType = "document"
	ContactOther      ContactType = "other"
)

// Capacity is the role in which a source was speaking.
type Capacity string

const (
	CapacityGovernment   Capacity = "government"
	CapacityPolice       Capacity = "police"
	CapacityBusiness     Capacity = "business"
	CapacityLabor        Capacity = "labor"
	CapacityEducation    Capacity = "education"
	CapacityOrganization Capacity = "organization"
	CapacityExpert       Capacity = "expert"
	CapacityIndividual   Capacity = "individual"
	CapacityOther        Capacity = "other"
)

// AuthorType categorizes bylines.
type AuthorType string

const (
	AuthorStaff      AuthorType = "staff"
	AuthorEditorial  AuthorType = "editorial"
	AuthorGovernment AuthorType = "government"
	AuthorBusiness   AuthorType = "business"
	AuthorOrganized  AuthorType = "organization"
	AuthorOther      AuthorType = "other"
)

// ConnectionCriteria narrows which coded subjects count as connected to the
// article's authors. A nil IncludeCapacities imposes no constraint, while a
// present but empty list (include_capacities: []) admits no capacity.
type ConnectionCriteria struct {
	IncludeCapacities []Capacity `json:"include_capacities,omitempty" yaml:"include_capacities,omitempty"`
	ExcludeCapacities []Capacity `json:"exclude_capacities,omitempty" yaml:"exclude_capacities,omitempty"`
}

// CodingRequest is the input to coding one article: the names of its
// authors and the subjects found in it, as they appeared in the text.
type CodingRequest struct {
	ArticleID string `json:"article_id" yaml:"article_id"`

	// ArticleFile is an HTML file to read the body from instead of the
	// content store.
	ArticleFile string `json:"article_file,omitempty" yaml:"article_file,omitempty"`

	Coder    string             `json:"coder,omitempty" yaml:"coder,omitempty"`
	Authors  []AuthorInput      `json:"authors" yaml:"authors"`
	Subjects []SubjectInput     `json:"subjects" yaml:"subjects"`
	Criteria ConnectionCriteria `json:"criteria,omitempty" yaml:"criteria,omitempty"`
}

// AuthorInput is one byline name.
type AuthorInput struct {
	Name string     `json:"name" yaml:"name"`
	Type AuthorType `json:"type,omitempty" yaml:"type,omitempty"`
}

// SubjectInput is one person quoted or mentioned in the article.
type SubjectInput struct {
	Name        string      `json:"name" yaml:"name"`
	Kind        SubjectKind `json:"kind,omitempty" yaml:"kind,omitempty"`
	SourceType  SourceType  `json:"source_type,omitempty" yaml:"source_type,omitempty"`
	ContactType ContactType `json:"contact_type,omitempty" yaml:"contact_type,omitempty"`
	Capacity    Capacity    `json:"capacity,omitempty" yaml:"capacity,omitempty"`
	Title       string      `json:"title,omitempty" yaml:"title,omitempty"`
	Quotations  []string    `json:"quotations,omitempty" yaml:"quotations,omitempty"`
}

// CodingReport is the output of coding one article.
type CodingReport struct {
	RunID     string          `json:"run_id" yaml:"run_id"`
	ArticleID string          `json:"article_id" yaml:"article_id"`
	Coder     string          `json:"coder,omitempty" yaml:"coder,omitempty"`
	CodedAt   time.Time       `json:"coded_at" yaml:"coded_at"`
	Authors   []AuthorReport  `json:"authors" yaml:"authors"`
	Subjects  []SubjectReport `json:"subjects" yaml:"subjects"`

	// Connected counts subjects connected to the authors under the
	// request's criteria.
	Connected int `json:"connected" yaml:"connected"`
}

// AuthorReport is the coding of one author.
type AuthorReport struct {
	Name       string       `json:"name" yaml:"name"`
	Type       AuthorType   `json:"type,omitempty" yaml:"type,omitempty"`
	Outcome    MatchOutcome `json:"outcome" yaml:"outcome"`
	Connected  bool         `json:"connected" yaml:"connected"`
	Alternates []string     `json:"alternates,omitempty" yaml:"alternates,omitempty"`
}

// SubjectReport is the coding of one subject, with the location of its
// name and of each attributed quotation.
type SubjectReport struct {
	Name         string            `json:"name" yaml:"name"`
	Kind         SubjectKind       `json:"kind" yaml:"kind"`
	Outcome      MatchOutcome      `json:"outcome" yaml:"outcome"`
	Connected    bool              `json:"connected" yaml:"connected"`
	Alternates   []string          `json:"alternates,omitempty" yaml:"alternates,omitempty"`
	NameLocation LocationReport    `json:"name_location" yaml:"name_location"`
	Quotations   []QuotationReport `json:"quotations,omitempty" yaml:"quotations,omitempty"`
}

// QuotationReport is one located quotation.
type QuotationReport struct {
	Text     string         `json:"text" yaml:"text"`
	Location LocationReport `json:"location" yaml:"location"`
}

// LocationReport is a Location plus the per-coordinate-system counts and any
// disagreement between them.
type LocationReport struct {
	Location        `yaml:",inline"`
	CanonicalCount  int             `json:"canonical_count" yaml:"canonical_count"`
	PlainTextCount  int             `json:"plain_text_count" yaml:"plain_text_count"`
	WordMatchCount  int             `json:"word_match_count" yaml:"word_match_count"`
	ParagraphCount  int             `json:"paragraph_count" yaml:"paragraph_count"`
	WordRanges      []WordRange     `json:"word_ranges,omitempty" yaml:"word_ranges,omitempty"`
	Inconsistencies []Inconsistency `json:"inconsistencies,omitempty" yaml:"inconsistencies,omitempty"`
}

// Consistent reports whether every coordinate system agreed.
func (r LocationReport) Consistent() bool {
	return len(r.Inconsistencies) == 0
}
