// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tei

import (
	"bytes"
	"strings"
	"testing"
)

// sampleTEI is a trimmed-down GROBID response with every metadata
// field present in its canonical location.
const sampleTEI = `<?xml version="1.0" encoding="UTF-8"?>
<TEI xmlns="http://www.tei-c.org/ns/1.0">
  <teiHeader>
    <fileDesc>
      <titleStmt>
        <title type="main">Heuristic Extraction of Submission Metadata</title>
      </titleStmt>
      <publicationStmt>
        <date type="published" when="2025-12-07">7 December 2025</date>
      </publicationStmt>
      <sourceDesc>
        <biblStruct>
          <analytic>
            <author>
              <persName><forename type="first">Ada</forename><surname>Lovelace</surname></persName>
              <affiliation><orgName type="institution">Analytical Society</orgName></affiliation>
            </author>
            <author>
              <persName><surname>Babbage</surname></persName>
              <affiliation><orgName type="institution">Analytical Society</orgName></affiliation>
            </author>
            <title level="a" type="main">Heuristic Extraction of Submission Metadata</title>
          </analytic>
        </biblStruct>
      </sourceDesc>
    </fileDesc>
    <profileDesc>
      <abstract>
        <div><p>We describe a rule-based pipeline for intake forms.</p></div>
      </abstract>
      <textClass>
        <keywords>
          <term>metadata extraction</term>
          <term>document parsing</term>
        </keywords>
      </textClass>
    </profileDesc>
  </teiHeader>
  <text>
    <body>
      <div><p>Conference intake forms collect papers and receipts.</p></div>
    </body>
  </text>
</TEI>`

func TestExtractMetadataFullDocument(t *testing.T) {
	meta := ExtractMetadata(sampleTEI, false, nil)

	if meta.Title != "Heuristic Extraction of Submission Metadata" {
		t.Errorf("Title = %q", meta.Title)
	}
	if len(meta.Authors) != 2 {
		t.Fatalf("len(Authors) = %d, want 2", len(meta.Authors))
	}
	if meta.Authors[0] != "Ada Lovelace" {
		t.Errorf("Authors[0] = %q, want %q", meta.Authors[0], "Ada Lovelace")
	}
	if meta.Authors[1] != "Babbage" {
		t.Errorf("Authors[1] = %q, want surname-only fallback", meta.Authors[1])
	}
	if meta.Abstract != "We describe a rule-based pipeline for intake forms." {
		t.Errorf("Abstract = %q", meta.Abstract)
	}
	if len(meta.Keywords) != 2 || meta.Keywords[0] != "metadata extraction" {
		t.Errorf("Keywords = %v", meta.Keywords)
	}
	// The two authors share one affiliation; it must appear once.
	if len(meta.Affiliations) != 1 || meta.Affiliations[0] != "Analytical Society" {
		t.Errorf("Affiliations = %v", meta.Affiliations)
	}
	if meta.PublicationDate != "2025-12-07" {
		t.Errorf("PublicationDate = %q, want machine-readable when attribute", meta.PublicationDate)
	}
	if !strings.Contains(meta.BodyExcerpt, "Conference intake forms") {
		t.Errorf("BodyExcerpt = %q", meta.BodyExcerpt)
	}
}

func TestExtractMetadataMalformedXML(t *testing.T) {
	for _, input := range []string{"<not-xml", "", "plain text", "<a><b></a>"} {
		meta := ExtractMetadata(input, false, nil)
		if !meta.IsEmpty() {
			t.Errorf("ExtractMetadata(%q) = %+v, want empty record", input, meta)
		}
	}
}

func TestExtractMetadataDebugDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	ExtractMetadata("<not-xml", true, &buf)
	if !strings.Contains(buf.String(), "XML parse error") {
		t.Errorf("debug output = %q, want parse diagnostic", buf.String())
	}
}

func TestTitleFallbackOrder(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want string
	}{
		{
			"titleStmt main wins over analytic",
			`<TEI><titleStmt><title type="main">Primary</title></titleStmt>
			 <analytic><title type="main">Secondary</title></analytic></TEI>`,
			"Primary",
		},
		{
			"titleStmt untyped title",
			`<TEI><titleStmt><title>Untyped Statement Title</title></titleStmt></TEI>`,
			"Untyped Statement Title",
		},
		{
			"analytic main when titleStmt empty",
			`<TEI><titleStmt><title type="main"></title></titleStmt>
			 <analytic><title type="main">Analytic Title</title></analytic></TEI>`,
			"Analytic Title",
		},
		{
			"biblStruct nested main title",
			`<TEI><biblStruct><monogr><title type="main">Nested Bibl Title</title></monogr></biblStruct></TEI>`,
			"Nested Bibl Title",
		},
		{
			"untyped short biblStruct title is not promoted",
			`<TEI><biblStruct><monogr><title>Short one</title></monogr></biblStruct></TEI>`,
			"",
		},
		{
			"long title anywhere as last resort",
			`<TEI><note><title>A Forty Character Fallback Title Somewhere</title></note></TEI>`,
			"A Forty Character Fallback Title Somewhere",
		},
		{
			"short stray titles are ignored",
			`<TEI><note><title>Too short</title></note></TEI>`,
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := ExtractMetadata(tt.xml, false, nil)
			if meta.Title != tt.want {
				t.Errorf("Title = %q, want %q", meta.Title, tt.want)
			}
		})
	}
}

func TestAuthorLocationOrder(t *testing.T) {
	// Authors exist under both sourceDesc and a stray analytic block;
	// only the sourceDesc set is used, not a merge.
	xml := `<TEI>
	  <sourceDesc><author><persName><forename>First</forename><surname>Author</surname></persName></author></sourceDesc>
	  <analytic><author><persName><surname>Ignored</surname></persName></author></analytic>
	</TEI>`

	meta := ExtractMetadata(xml, false, nil)
	if len(meta.Authors) != 1 || meta.Authors[0] != "First Author" {
		t.Errorf("Authors = %v, want [First Author]", meta.Authors)
	}
}

func TestAuthorWithoutPersNameWrapper(t *testing.T) {
	xml := `<TEI><sourceDesc><author><forename>Alan</forename><surname>Turing</surname></author></sourceDesc></TEI>`
	meta := ExtractMetadata(xml, false, nil)
	if len(meta.Authors) != 1 || meta.Authors[0] != "Alan Turing" {
		t.Errorf("Authors = %v, want [Alan Turing]", meta.Authors)
	}
}

func TestAbstractFallbacks(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want string
	}{
		{
			"profileDesc abstract without div",
			`<TEI><profileDesc><abstract><p>No div wrapper.</p></abstract></profileDesc></TEI>`,
			"No div wrapper.",
		},
		{
			"bare abstract paragraph",
			`<TEI><abstract><p>Bare abstract.</p></abstract></TEI>`,
			"Bare abstract.",
		},
		{
			"no abstract",
			`<TEI><body><p>Just body.</p></body></TEI>`,
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := ExtractMetadata(tt.xml, false, nil)
			if meta.Abstract != tt.want {
				t.Errorf("Abstract = %q, want %q", meta.Abstract, tt.want)
			}
		})
	}
}

func TestKeywordsAuthorSchemeRetry(t *testing.T) {
	xml := `<TEI><keywords scheme="author"><term>ocr</term><term>upi</term></keywords></TEI>`
	meta := ExtractMetadata(xml, false, nil)
	if len(meta.Keywords) != 2 {
		t.Errorf("Keywords = %v, want 2 terms", meta.Keywords)
	}
}

func TestAffiliationTextFallback(t *testing.T) {
	xml := `<TEI>
	  <affiliation><orgName>IIT Delhi</orgName></affiliation>
	  <affiliation>Dept of CSE, Example University</affiliation>
	  <affiliation>ab</affiliation>
	</TEI>`

	meta := ExtractMetadata(xml, false, nil)
	if len(meta.Affiliations) != 2 {
		t.Fatalf("Affiliations = %v, want 2 (trivial text dropped)", meta.Affiliations)
	}
}

func TestPublicationDateTextFallback(t *testing.T) {
	xml := `<TEI><publicationStmt><date>December 2025</date></publicationStmt></TEI>`
	meta := ExtractMetadata(xml, false, nil)
	if meta.PublicationDate != "December 2025" {
		t.Errorf("PublicationDate = %q", meta.PublicationDate)
	}
}

func TestBodyExcerptTruncated(t *testing.T) {
	long := strings.Repeat("x", 3000)
	xml := `<TEI><text><body><p>` + long + `</p></body></text></TEI>`

	meta := ExtractMetadata(xml, false, nil)
	if len(meta.BodyExcerpt) != 2000 {
		t.Errorf("len(BodyExcerpt) = %d, want 2000", len(meta.BodyExcerpt))
	}
}

func TestFlattenText(t *testing.T) {
	xml := `<TEI><a>one</a><b><c>two</c>three</b></TEI>`
	got := FlattenText(xml)
	want := "one two three"
	if got != want {
		t.Errorf("FlattenText = %q, want %q", got, want)
	}

	if FlattenText("<broken") != "" {
		t.Error("FlattenText on malformed XML should be empty")
	}
}
