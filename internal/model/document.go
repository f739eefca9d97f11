// Package model defines the CV document: the complete in-memory résumé plus
// styling and configuration state for one editing session. The JSON tags
// reproduce the interchange format used by export/import, so a document
// survives a marshal/unmarshal round trip unchanged.
package model

// SkillLevel is the closed set of proficiency levels for skills.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "Beginner"
	SkillIntermediate SkillLevel = "Intermediate"
	SkillAdvanced     SkillLevel = "Advanced"
	SkillExpert       SkillLevel = "Expert"
)

// BarPercent maps a level to the width of its proportional skill bar.
// Unknown levels render at the beginner width.
func (l SkillLevel) BarPercent() int {
	switch l {
	case SkillExpert:
		return 100
	case SkillAdvanced:
		return 85
	case SkillIntermediate:
		return 65
	default:
		return 40
	}
}

// Template identifies one of the four layout variants.
type Template string

const (
	TemplateModernATS       Template = "modern-ats"
	TemplateClassicFormal   Template = "classic-ats"
	TemplateMinimalist      Template = "minimalist"
	TemplateCreativeSidebar Template = "creative-sidebar"
)

// Normalize returns the template itself when it is a known variant and
// the modern-ats default otherwise.
func (t Template) Normalize() Template {
	switch t {
	case TemplateModernATS, TemplateClassicFormal, TemplateMinimalist, TemplateCreativeSidebar:
		return t
	default:
		return TemplateModernATS
	}
}

// Lang selects one of the two fixed language packs.
type Lang string

const (
	LangEN Lang = "en"
	LangID Lang = "id"
)

// PersonalInfo holds the header fields. Empty string is the normal unset
// value for every field; the optional ones are never errors when missing.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Summary  string `json:"summary"`
	Title    string `json:"title"`
	Photo    string `json:"photo,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

type Experience struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type Education struct {
	School      string `json:"school"`
	Degree      string `json:"degree"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type Skill struct {
	Name  string     `json:"name"`
	Level SkillLevel `json:"level"`
}

// Language is a spoken language; unlike Skill its level is free text.
type Language struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

type Project struct {
	Name        string `json:"name"`
	Link        string `json:"link"`
	Description string `json:"description"`
}

type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// CoverLetter is an alternate root view over disjoint fields. When Show is
// true the rendered output is the letter alone, never the CV.
type CoverLetter struct {
	Show           bool   `json:"show"`
	RecipientName  string `json:"recipientName"`
	RecipientTitle string `json:"recipientTitle"`
	CompanyName    string `json:"companyName"`
	CompanyAddress string `json:"companyAddress"`
	Body           string `json:"body"`
}

// Document is the root entity: one résumé plus its configuration. It is
// always fully defined; mutation happens only through the mutate package,
// which returns fresh values and never edits in place.
type Document struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         []Skill         `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Languages      []Language      `json:"languages"`

	ShowPortfolio      bool `json:"showPortfolio"`
	ShowCertifications bool `json:"showCertifications"`
	ShowLanguages      bool `json:"showLanguages"`
	ShowQRCode         bool `json:"showQRCode"`

	AccentColor string   `json:"accentColor"`
	Template    Template `json:"template"`
	HeaderFont  string   `json:"headerFont"`
	BodyFont    string   `json:"bodyFont"`

	Lang            Lang        `json:"lang"`
	IsFreshGraduate bool        `json:"isFreshGraduate"`
	CoverLetter     CoverLetter `json:"coverLetter"`
}

// Clone returns a deep copy. Collections are the only reference-typed
// fields, so copying the slices is enough to sever aliasing.
func (d Document) Clone() Document {
	out := d
	out.Experience = cloneSlice(d.Experience)
	out.Education = cloneSlice(d.Education)
	out.Skills = cloneSlice(d.Skills)
	out.Projects = cloneSlice(d.Projects)
	out.Certifications = cloneSlice(d.Certifications)
	out.Languages = cloneSlice(d.Languages)
	return out
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
