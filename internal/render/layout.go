// Package render projects a document through one of four interchangeable
// layout variants into a structured layout tree, and emits print-ready HTML
// from that tree. Composition is a pure function: same document, same
// options, same tree.
package render

import "github.com/ekosiswoyo/cv-generator/internal/model"

// Kind distinguishes the two root views. Cover letter replaces the CV
// entirely; the two are never rendered together.
type Kind string

const (
	KindCV          Kind = "cv"
	KindCoverLetter Kind = "cover-letter"
)

// Column names used by the variants. Single-column variants emit only main.
const (
	ColumnMain    = "main"
	ColumnSidebar = "sidebar"
)

// SectionKey identifies a section independent of its localized title.
type SectionKey string

const (
	SectionSummary        SectionKey = "summary"
	SectionExperience     SectionKey = "experience"
	SectionEducation      SectionKey = "education"
	SectionSkills         SectionKey = "skills"
	SectionLanguages      SectionKey = "languages"
	SectionCertifications SectionKey = "certifications"
	SectionProjects       SectionKey = "projects"
	SectionContact        SectionKey = "contact"
)

// Style carries the document-wide style parameters every variant applies.
type Style struct {
	AccentColor string
	HeaderFont  string
	BodyFont    string
}

// Link is an outbound profile link with a tidy display label for narrow
// layouts.
type Link struct {
	Label   string // "LinkedIn" or "Portfolio"
	URL     string // as entered by the user
	Display string // eTLD+1 label, e.g. "linkedin.com"
}

// QRCode references the external QR image for the preferred contact URL.
type QRCode struct {
	ImageURL string
	Target   string
	Caption  string
}

// Header is the personal-info block shared by all variants.
type Header struct {
	Name    string
	Title   string
	Email   string
	Phone   string
	Address string
	Links   []Link
	Photo   string // data URI, empty when unset
	QR      *QRCode
}

// Entry is one item of a repeatable section. Variants decide which field
// leads: modern and classic lead with company/school, the sidebar variants
// lead with position/degree.
type Entry struct {
	Heading    string
	Subheading string
	Dates      string
	Detail     string
	Link       string
	Percent    int // proportional bar width, 0 when the section has no bars
}

// Section is an ordered run of entries under a localized title.
type Section struct {
	Key     SectionKey
	Title   string
	Text    string // summary body
	Entries []Entry
	Bars    bool // render entries as proportional bars
}

// Column is an ordered run of sections in one visual region.
type Column struct {
	Name     string
	Sections []Section
}

// Letter is the cover-letter view.
type Letter struct {
	Date           string // en-GB convention, e.g. "2 January 2006"
	RecipientName  string
	RecipientTitle string
	CompanyName    string
	CompanyAddress string
	Salutation     string
	Body           string
	SignOff        string
	Signature      string
}

// Layout is the structural output of composition. For KindCV the Columns
// hold the content and Letter is nil; for KindCoverLetter the reverse.
type Layout struct {
	Kind    Kind
	Variant model.Template
	Style   Style
	Header  Header
	Columns []Column
	Letter  *Letter
}

// Sections returns every section in layout order across all columns.
// Useful for contract checks that care about order but not placement.
func (l *Layout) Sections() []Section {
	var out []Section
	for _, c := range l.Columns {
		out = append(out, c.Sections...)
	}
	return out
}

// HasSection reports whether any column contains the given section.
func (l *Layout) HasSection(key SectionKey) bool {
	for _, s := range l.Sections() {
		if s.Key == key {
			return true
		}
	}
	return false
}
