// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tei extracts document metadata from TEI XML produced by a
// GROBID conversion service. Every field is resolved through an
// ordered list of location strategies because GROBID places elements
// differently depending on the source PDF's structure; the first
// strategy yielding non-empty text wins.
package tei

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/confdesk/intake-engine/pkg/types"
)

// bodyExcerptLimit caps the extracted body text.
const bodyExcerptLimit = 2000

// ExtractMetadata parses a TEI XML document and returns the metadata
// record. Malformed XML yields a fully-empty record rather than an
// error; the parse diagnostic goes to w when debug is set. The caller
// decides whether missing fields block downstream processing.
func ExtractMetadata(teiXML string, debug bool, w io.Writer) types.DocumentMetadata {
	if w == nil {
		w = io.Discard
	}

	var meta types.DocumentMetadata

	root, err := parse(teiXML)
	if err != nil {
		if debug {
			fmt.Fprintf(w, "warning: XML parse error: %v\n", err)
		}
		return meta
	}

	meta.Title = extractTitle(root)
	meta.Authors = extractAuthors(root)
	meta.Abstract = extractAbstract(root)
	meta.Keywords = extractKeywords(root)
	meta.Affiliations = extractAffiliations(root)
	meta.PublicationDate = extractPublicationDate(root)
	meta.BodyExcerpt = extractBodyExcerpt(root)

	if debug {
		fmt.Fprintf(w, "title: %q\n", meta.Title)
		fmt.Fprintf(w, "authors: %d, keywords: %d, affiliations: %d\n",
			len(meta.Authors), len(meta.Keywords), len(meta.Affiliations))
		fmt.Fprintf(w, "abstract: %d chars, body excerpt: %d chars\n",
			len(meta.Abstract), len(meta.BodyExcerpt))
	}

	return meta
}

// titleStrategies orders title locations from "explicitly marked
// primary" down to a bare length heuristic.
var titleStrategies = []struct {
	name   string
	locate func(root *node) string
}{
	{"titleStmt main title", func(root *node) string {
		return childTitleText(root.descendants("titleStmt"), "main")
	}},
	{"titleStmt any title", func(root *node) string {
		return childTitleText(root.descendants("titleStmt"), "")
	}},
	{"analytic main title", func(root *node) string {
		return childTitleText(root.descendants("analytic"), "main")
	}},
	{"analytic any title", func(root *node) string {
		return childTitleText(root.descendants("analytic"), "")
	}},
	{"biblStruct main title", func(root *node) string {
		// Main-typed titles only; untyped ones inside biblStruct are
		// left to the length heuristic below.
		for _, bs := range root.descendants("biblStruct") {
			for _, t := range bs.descendants("title") {
				if t.attr("type") == "main" {
					if s := t.allText(); s != "" {
						return s
					}
				}
			}
		}
		return ""
	}},
	{"any long title", func(root *node) string {
		for _, t := range root.descendants("title") {
			if s := t.allText(); len(s) > 10 {
				return s
			}
		}
		return ""
	}},
}

func extractTitle(root *node) string {
	for _, strat := range titleStrategies {
		if s := strat.locate(root); s != "" {
			return s
		}
	}
	return ""
}

// childTitleText scans containers for a direct child <title>. When
// wantType is non-empty only titles with that type attribute match.
func childTitleText(containers []*node, wantType string) string {
	for _, c := range containers {
		for _, t := range c.childrenNamed("title") {
			if wantType != "" && t.attr("type") != wantType {
				continue
			}
			if s := t.allText(); s != "" {
				return s
			}
		}
	}
	return ""
}

// authorContainers orders the blocks searched for author elements.
// The first block containing any author wins; blocks are not merged.
var authorContainers = []string{"sourceDesc", "analytic", "biblStruct"}

func extractAuthors(root *node) []string {
	var authors []*node
	for _, container := range authorContainers {
		for _, c := range root.descendants(container) {
			authors = append(authors, c.descendants("author")...)
		}
		if len(authors) > 0 {
			break
		}
	}

	var names []string
	for _, a := range authors {
		scope := a
		if pn := a.firstDescendant("persName"); pn != nil {
			scope = pn
		}
		if name := personName(scope); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// personName joins forename and surname with a single space, falling
// back to surname only.
func personName(scope *node) string {
	forename := scope.firstDescendant("forename")
	surname := scope.firstDescendant("surname")

	if forename != nil && surname != nil {
		return strings.TrimSpace(forename.directText() + " " + surname.directText())
	}
	if surname != nil {
		return surname.directText()
	}
	return ""
}

// abstractStrategies orders abstract locations: full profileDesc path,
// the same without the div wrapper, then any abstract paragraph.
var abstractStrategies = []func(root *node) *node{
	func(root *node) *node {
		return childPath(root.descendants("profileDesc"), "abstract", "div", "p")
	},
	func(root *node) *node {
		return childPath(root.descendants("profileDesc"), "abstract", "p")
	},
	func(root *node) *node {
		return childPath(root.descendants("abstract"), "p")
	},
}

func extractAbstract(root *node) string {
	for _, locate := range abstractStrategies {
		if p := locate(root); p != nil {
			if s := p.allText(); s != "" {
				return s
			}
		}
	}
	return ""
}

// childPath walks direct-child steps from each start node, returning
// the first element reached.
func childPath(starts []*node, steps ...string) *node {
	for _, n := range starts {
		cur := n
		for _, step := range steps {
			cur = cur.child(step)
			if cur == nil {
				break
			}
		}
		if cur != nil {
			return cur
		}
	}
	return nil
}

func extractKeywords(root *node) []string {
	terms := keywordTerms(root, "")
	if len(terms) == 0 {
		terms = keywordTerms(root, "author")
	}
	return terms
}

// keywordTerms collects direct <term> children of <keywords> blocks,
// optionally restricted to a scheme attribute.
func keywordTerms(root *node, scheme string) []string {
	var out []string
	for _, kw := range root.descendants("keywords") {
		if scheme != "" && kw.attr("scheme") != scheme {
			continue
		}
		for _, term := range kw.childrenNamed("term") {
			if s := term.directText(); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func extractAffiliations(root *node) []string {
	seen := make(map[string]bool)
	var out []string

	add := func(s string) {
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		out = append(out, s)
	}

	for _, affil := range root.descendants("affiliation") {
		if org := affil.firstDescendant("orgName"); org != nil && org.directText() != "" {
			add(org.directText())
			continue
		}
		// No orgName: the raw text is still useful when non-trivial.
		if s := affil.allText(); len(s) > 3 {
			add(s)
		}
	}
	return out
}

func extractPublicationDate(root *node) string {
	for _, ps := range root.descendants("publicationStmt") {
		if date := ps.child("date"); date != nil {
			if when := date.attr("when"); when != "" {
				return when
			}
			return date.directText()
		}
	}
	return ""
}

func extractBodyExcerpt(root *node) string {
	for _, text := range root.descendants("text") {
		if body := text.child("body"); body != nil {
			s := body.allText()
			if r := []rune(s); len(r) > bodyExcerptLimit {
				s = string(r[:bodyExcerptLimit])
			}
			return s
		}
	}
	return ""
}

// FlattenText concatenates every text segment of the document in
// order, space-joined. Used when the conversion service is pressed
// into duty as an OCR fallback and only the raw words matter.
// Malformed XML yields "".
func FlattenText(teiXML string) string {
	dec := xml.NewDecoder(strings.NewReader(teiXML))

	var parts []string
	sawElement := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return ""
		}
		switch t := tok.(type) {
		case xml.StartElement:
			sawElement = true
		case xml.CharData:
			if s := strings.TrimSpace(string(t)); s != "" {
				parts = append(parts, s)
			}
		}
	}
	if !sawElement {
		return ""
	}
	return strings.Join(parts, " ")
}
