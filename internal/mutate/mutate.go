// Package mutate is the only place documents change. Every operation is a
// pure function: the input document is never touched and a fresh value is
// returned. Patches are typed pointer-field structs rather than generic
// key/value merges, so the set of possible mutations is statically
// enumerated per entity.
package mutate

import "github.com/ekosiswoyo/cv-generator/internal/model"

// DocumentPatch selects top-level fields to replace. A nil field leaves the
// corresponding document field untouched; a non-nil field replaces it
// wholesale (whole sub-object, whole collection, whole flag).
type DocumentPatch struct {
	PersonalInfo *model.PersonalInfo `json:"personalInfo"`
	CoverLetter  *model.CoverLetter  `json:"coverLetter"`

	Experience     *[]model.Experience    `json:"experience"`
	Education      *[]model.Education     `json:"education"`
	Skills         *[]model.Skill         `json:"skills"`
	Languages      *[]model.Language      `json:"languages"`
	Projects       *[]model.Project       `json:"projects"`
	Certifications *[]model.Certification `json:"certifications"`

	ShowPortfolio      *bool `json:"showPortfolio"`
	ShowCertifications *bool `json:"showCertifications"`
	ShowLanguages      *bool `json:"showLanguages"`
	ShowQRCode         *bool `json:"showQRCode"`

	AccentColor *string         `json:"accentColor"`
	Template    *model.Template `json:"template"`
	HeaderFont  *string         `json:"headerFont"`
	BodyFont    *string         `json:"bodyFont"`

	Lang            *model.Lang `json:"lang"`
	IsFreshGraduate *bool       `json:"isFreshGraduate"`
}

// Apply shallow-merges the patch into the document and returns the result.
func Apply(doc model.Document, p DocumentPatch) model.Document {
	out := doc.Clone()
	if p.PersonalInfo != nil {
		out.PersonalInfo = *p.PersonalInfo
	}
	if p.CoverLetter != nil {
		out.CoverLetter = *p.CoverLetter
	}
	if p.Experience != nil {
		out.Experience = cloneOf(*p.Experience)
	}
	if p.Education != nil {
		out.Education = cloneOf(*p.Education)
	}
	if p.Skills != nil {
		out.Skills = cloneOf(*p.Skills)
	}
	if p.Languages != nil {
		out.Languages = cloneOf(*p.Languages)
	}
	if p.Projects != nil {
		out.Projects = cloneOf(*p.Projects)
	}
	if p.Certifications != nil {
		out.Certifications = cloneOf(*p.Certifications)
	}
	if p.ShowPortfolio != nil {
		out.ShowPortfolio = *p.ShowPortfolio
	}
	if p.ShowCertifications != nil {
		out.ShowCertifications = *p.ShowCertifications
	}
	if p.ShowLanguages != nil {
		out.ShowLanguages = *p.ShowLanguages
	}
	if p.ShowQRCode != nil {
		out.ShowQRCode = *p.ShowQRCode
	}
	if p.AccentColor != nil {
		out.AccentColor = *p.AccentColor
	}
	if p.Template != nil {
		out.Template = *p.Template
	}
	if p.HeaderFont != nil {
		out.HeaderFont = *p.HeaderFont
	}
	if p.BodyFont != nil {
		out.BodyFont = *p.BodyFont
	}
	if p.Lang != nil {
		out.Lang = *p.Lang
	}
	if p.IsFreshGraduate != nil {
		out.IsFreshGraduate = *p.IsFreshGraduate
	}
	return out
}

// appendItem returns a copy of s with item appended. The original backing
// array is never shared with the result.
func appendItem[T any](s []T, item T) []T {
	out := make([]T, len(s), len(s)+1)
	copy(out, s)
	return append(out, item)
}

// patchAt applies fn to a copy of the item at index i. Out-of-range indices
// are a no-op; the slice comes back unchanged.
func patchAt[T any](s []T, i int, fn func(*T)) []T {
	if i < 0 || i >= len(s) {
		return s
	}
	out := make([]T, len(s))
	copy(out, s)
	fn(&out[i])
	return out
}

// removeAt drops the item at index i, shifting later items down by one.
// Out-of-range indices are a no-op.
func removeAt[T any](s []T, i int) []T {
	if i < 0 || i >= len(s) {
		return s
	}
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}

func cloneOf[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
