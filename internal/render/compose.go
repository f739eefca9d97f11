package render

import (
	"fmt"
	"net/url"
	"time"

	"github.com/ekosiswoyo/cv-generator/internal/i18n"
	"github.com/ekosiswoyo/cv-generator/internal/model"
)

// DefaultQRBaseURL is the external QR image endpoint the original client
// used. The fetch itself happens in the viewer; we only build the URL.
const DefaultQRBaseURL = "https://api.qrserver.com/v1/create-qr-code/"

// Options tunes composition without breaking purity: every input that could
// vary between calls is explicit here.
type Options struct {
	// QRBaseURL overrides the QR image endpoint. Empty uses the default.
	QRBaseURL string
	// Now supplies the date printed on cover letters. Zero means time.Now,
	// which callers that need referential consistency should avoid.
	Now time.Time
}

func (o Options) qrBase() string {
	if o.QRBaseURL != "" {
		return o.QRBaseURL
	}
	return DefaultQRBaseURL
}

func (o Options) now() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}

// Compose projects the document into a layout tree. When the cover letter
// is shown it short-circuits to the letter view and no CV section is
// emitted, regardless of the selected template.
func Compose(doc model.Document, opts Options) *Layout {
	labels := i18n.Table(doc.Lang)
	style := Style{
		AccentColor: doc.AccentColor,
		HeaderFont:  doc.HeaderFont,
		BodyFont:    doc.BodyFont,
	}

	if doc.CoverLetter.Show {
		return composeLetter(doc, style, opts)
	}

	header := composeHeader(doc, labels, opts)

	variant := doc.Template.Normalize()
	var columns []Column
	switch variant {
	case model.TemplateClassicFormal:
		columns = composeClassic(doc, labels)
	case model.TemplateMinimalist:
		columns = composeMinimalist(doc, labels)
	case model.TemplateCreativeSidebar:
		columns = composeCreative(doc, labels)
	default:
		columns = composeModern(doc, labels)
	}

	return &Layout{
		Kind:    KindCV,
		Variant: variant,
		Style:   style,
		Header:  header,
		Columns: columns,
	}
}

func composeHeader(doc model.Document, labels i18n.Labels, opts Options) Header {
	pi := doc.PersonalInfo
	h := Header{
		Name:    pi.FullName,
		Title:   pi.Title,
		Email:   pi.Email,
		Phone:   pi.Phone,
		Address: pi.Address,
		Photo:   pi.Photo,
	}
	if pi.LinkedIn != "" {
		h.Links = append(h.Links, Link{Label: "LinkedIn", URL: pi.LinkedIn, Display: displayLabel(pi.LinkedIn)})
	}
	if pi.Website != "" {
		h.Links = append(h.Links, Link{Label: "Portfolio", URL: pi.Website, Display: displayLabel(pi.Website)})
	}

	// QR placeholder only when there is no photo to show and a target URL
	// exists; LinkedIn wins over the website.
	if doc.ShowQRCode && pi.Photo == "" {
		target := pi.LinkedIn
		if target == "" {
			target = pi.Website
		}
		if target != "" {
			h.QR = &QRCode{
				ImageURL: fmt.Sprintf("%s?size=100x100&data=%s", opts.qrBase(), url.QueryEscape(target)),
				Target:   target,
				Caption:  labels.ScanToView,
			}
		}
	}
	return h
}

// mainHistory returns experience and education in career-level order:
// fresh graduates lead with education, everyone else with experience.
func mainHistory(doc model.Document, labels i18n.Labels, leadPosition bool) []Section {
	exp := experienceSection(doc, labels, leadPosition)
	edu := educationSection(doc, labels, leadPosition)
	if doc.IsFreshGraduate {
		return []Section{edu, exp}
	}
	return []Section{exp, edu}
}

func summarySection(doc model.Document, labels i18n.Labels) Section {
	title := labels.Summary
	if doc.IsFreshGraduate {
		title = labels.Objective
	}
	return Section{Key: SectionSummary, Title: title, Text: doc.PersonalInfo.Summary}
}

func experienceSection(doc model.Document, labels i18n.Labels, leadPosition bool) Section {
	title := labels.Experience
	if doc.IsFreshGraduate {
		title = labels.Internships
	}
	s := Section{Key: SectionExperience, Title: title}
	for _, e := range doc.Experience {
		entry := Entry{
			Heading:    e.Company,
			Subheading: e.Position,
			Dates:      dateRange(e.StartDate, e.EndDate),
			Detail:     e.Description,
		}
		if leadPosition {
			entry.Heading, entry.Subheading = e.Position, e.Company
		}
		s.Entries = append(s.Entries, entry)
	}
	return s
}

func educationSection(doc model.Document, labels i18n.Labels, leadPosition bool) Section {
	s := Section{Key: SectionEducation, Title: labels.Education}
	for _, e := range doc.Education {
		entry := Entry{
			Heading:    e.School,
			Subheading: e.Degree,
			Dates:      dateRange(e.StartDate, e.EndDate),
			Detail:     e.Description,
		}
		if leadPosition {
			entry.Heading, entry.Subheading = e.Degree, e.School
		}
		s.Entries = append(s.Entries, entry)
	}
	return s
}

// skillsSection is never gated; skills render in every variant.
func skillsSection(doc model.Document, labels i18n.Labels, bars bool) Section {
	s := Section{Key: SectionSkills, Title: labels.Skills, Bars: bars}
	for _, sk := range doc.Skills {
		entry := Entry{Heading: sk.Name, Detail: string(sk.Level)}
		if bars {
			entry.Percent = sk.Level.BarPercent()
		}
		s.Entries = append(s.Entries, entry)
	}
	return s
}

func languagesSection(doc model.Document, labels i18n.Labels) (Section, bool) {
	if !doc.ShowLanguages || len(doc.Languages) == 0 {
		return Section{}, false
	}
	s := Section{Key: SectionLanguages, Title: labels.Languages}
	for _, l := range doc.Languages {
		s.Entries = append(s.Entries, Entry{Heading: l.Name, Detail: l.Level})
	}
	return s, true
}

func certificationsSection(doc model.Document, labels i18n.Labels) (Section, bool) {
	if !doc.ShowCertifications || len(doc.Certifications) == 0 {
		return Section{}, false
	}
	s := Section{Key: SectionCertifications, Title: labels.Certifications}
	for _, c := range doc.Certifications {
		s.Entries = append(s.Entries, Entry{Heading: c.Name, Subheading: c.Issuer, Dates: c.Date})
	}
	return s, true
}

func projectsSection(doc model.Document, labels i18n.Labels) (Section, bool) {
	if !doc.ShowPortfolio || len(doc.Projects) == 0 {
		return Section{}, false
	}
	s := Section{Key: SectionProjects, Title: labels.Projects}
	for _, p := range doc.Projects {
		s.Entries = append(s.Entries, Entry{Heading: p.Name, Detail: p.Description, Link: p.Link})
	}
	return s, true
}

func contactSection(doc model.Document, labels i18n.Labels) Section {
	pi := doc.PersonalInfo
	s := Section{Key: SectionContact, Title: labels.Contact}
	s.Entries = append(s.Entries,
		Entry{Heading: "E", Detail: pi.Email},
		Entry{Heading: "P", Detail: pi.Phone},
		Entry{Heading: "A", Detail: pi.Address},
	)
	if pi.LinkedIn != "" {
		s.Entries = append(s.Entries, Entry{Heading: "L", Detail: displayLabel(pi.LinkedIn), Link: pi.LinkedIn})
	}
	if pi.Website != "" {
		s.Entries = append(s.Entries, Entry{Heading: "W", Detail: displayLabel(pi.Website), Link: pi.Website})
	}
	return s
}

func dateRange(start, end string) string {
	return fmt.Sprintf("%s – %s", start, end)
}
