package render

import (
	"github.com/ekosiswoyo/cv-generator/internal/i18n"
	"github.com/ekosiswoyo/cv-generator/internal/model"
)

// The four variant composers. They share one contract: summary first,
// experience/education swapped by career level, skills always present,
// languages/certifications/projects gated on flag plus non-empty backing
// collection. They differ in column structure and which entry field leads.

// composeModern is the single-column ATS layout. Company and school lead,
// skills render inline without bars.
func composeModern(doc model.Document, labels i18n.Labels) []Column {
	sections := []Section{summarySection(doc, labels)}
	sections = append(sections, mainHistory(doc, labels, false)...)
	if s, ok := certificationsSection(doc, labels); ok {
		sections = append(sections, s)
	}
	if s, ok := projectsSection(doc, labels); ok {
		sections = append(sections, s)
	}
	sections = append(sections, skillsSection(doc, labels, false))
	if s, ok := languagesSection(doc, labels); ok {
		sections = append(sections, s)
	}
	return []Column{{Name: ColumnMain, Sections: sections}}
}

// composeClassic is the formal single-column layout. Same section order as
// modern; the difference is typographic and lives in the stylesheet.
func composeClassic(doc model.Document, labels i18n.Labels) []Column {
	sections := []Section{summarySection(doc, labels)}
	sections = append(sections, mainHistory(doc, labels, false)...)
	if s, ok := certificationsSection(doc, labels); ok {
		sections = append(sections, s)
	}
	if s, ok := projectsSection(doc, labels); ok {
		sections = append(sections, s)
	}
	sections = append(sections, skillsSection(doc, labels, false))
	if s, ok := languagesSection(doc, labels); ok {
		sections = append(sections, s)
	}
	return []Column{{Name: ColumnMain, Sections: sections}}
}

// composeMinimalist puts contact, skills with bars and languages in a light
// sidebar; history leads with position and degree.
func composeMinimalist(doc model.Document, labels i18n.Labels) []Column {
	sidebar := []Section{
		contactSection(doc, labels),
		skillsSection(doc, labels, true),
	}
	if s, ok := languagesSection(doc, labels); ok {
		sidebar = append(sidebar, s)
	}

	main := []Section{summarySection(doc, labels)}
	main = append(main, mainHistory(doc, labels, true)...)
	if s, ok := certificationsSection(doc, labels); ok {
		main = append(main, s)
	}
	if s, ok := projectsSection(doc, labels); ok {
		main = append(main, s)
	}

	return []Column{
		{Name: ColumnSidebar, Sections: sidebar},
		{Name: ColumnMain, Sections: main},
	}
}

// composeCreative is the dark-sidebar layout. Same column split as
// minimalist; the stylesheet carries the visual difference.
func composeCreative(doc model.Document, labels i18n.Labels) []Column {
	sidebar := []Section{
		contactSection(doc, labels),
		skillsSection(doc, labels, true),
	}
	if s, ok := languagesSection(doc, labels); ok {
		sidebar = append(sidebar, s)
	}

	main := []Section{summarySection(doc, labels)}
	main = append(main, mainHistory(doc, labels, true)...)
	if s, ok := certificationsSection(doc, labels); ok {
		main = append(main, s)
	}
	if s, ok := projectsSection(doc, labels); ok {
		main = append(main, s)
	}

	return []Column{
		{Name: ColumnSidebar, Sections: sidebar},
		{Name: ColumnMain, Sections: main},
	}
}
