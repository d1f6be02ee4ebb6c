// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the records exchanged between extraction stages.
package types

// DocumentMetadata is the structured record extracted from one parsed
// document. Every field has an explicit empty value when extraction
// finds nothing; callers never need to distinguish "absent" from
// "empty". Records are built fresh per parse call and not mutated
// after return.
type DocumentMetadata struct {
	// Title is the document title, or "" when no strategy matched.
	Title string `json:"title" yaml:"title"`

	// Authors lists display names ("Forename Surname" or surname only)
	// in document order.
	Authors []string `json:"authors" yaml:"authors"`

	// Abstract is the abstract text, or "".
	Abstract string `json:"abstract" yaml:"abstract"`

	// Keywords lists keyword terms in document order.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// Affiliations lists organization names, deduplicated. Order is
	// not guaranteed.
	Affiliations []string `json:"affiliations" yaml:"affiliations"`

	// PublicationDate is the raw date string from the publication
	// statement, not normalized to a calendar type.
	PublicationDate string `json:"publication_date" yaml:"publication_date"`

	// BodyExcerpt is the leading body text, capped at 2000 characters.
	BodyExcerpt string `json:"body_excerpt" yaml:"body_excerpt"`

	// Emails lists email addresses found in the document's full text,
	// case-insensitive unique, first-seen order preserved. Filled by
	// the caller when full text is available.
	Emails []string `json:"emails" yaml:"emails"`
}

// IsEmpty reports whether no field was extracted.
func (m DocumentMetadata) IsEmpty() bool {
	return m.Title == "" &&
		len(m.Authors) == 0 &&
		m.Abstract == "" &&
		len(m.Keywords) == 0 &&
		len(m.Affiliations) == 0 &&
		m.PublicationDate == "" &&
		m.BodyExcerpt == "" &&
		len(m.Emails) == 0
}
