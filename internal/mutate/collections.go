package mutate

import "github.com/ekosiswoyo/cv-generator/internal/model"

// Per-collection operations. Each trio follows the same shape: Append adds
// to the end, UpdateAt shallow-merges a typed patch into one item, RemoveAt
// drops one item while preserving the order of the rest. UpdateAt and
// RemoveAt treat an out-of-range index as a no-op; callers that need to
// surface the condition check InRange first.

// InRange reports whether i is a valid index for the named collection.
func InRange(doc model.Document, collection string, i int) bool {
	if i < 0 {
		return false
	}
	switch collection {
	case CollectionExperience:
		return i < len(doc.Experience)
	case CollectionEducation:
		return i < len(doc.Education)
	case CollectionSkills:
		return i < len(doc.Skills)
	case CollectionLanguages:
		return i < len(doc.Languages)
	case CollectionProjects:
		return i < len(doc.Projects)
	case CollectionCertifications:
		return i < len(doc.Certifications)
	}
	return false
}

// Collection names as they appear in the interchange format and the API.
const (
	CollectionExperience     = "experience"
	CollectionEducation      = "education"
	CollectionSkills         = "skills"
	CollectionLanguages      = "languages"
	CollectionProjects       = "projects"
	CollectionCertifications = "certifications"
)

type ExperiencePatch struct {
	Company     *string `json:"company"`
	Position    *string `json:"position"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Description *string `json:"description"`
}

func AppendExperience(doc model.Document, item model.Experience) model.Document {
	out := doc.Clone()
	out.Experience = appendItem(out.Experience, item)
	return out
}

func UpdateExperienceAt(doc model.Document, i int, p ExperiencePatch) model.Document {
	out := doc.Clone()
	out.Experience = patchAt(out.Experience, i, func(e *model.Experience) {
		setIf(&e.Company, p.Company)
		setIf(&e.Position, p.Position)
		setIf(&e.StartDate, p.StartDate)
		setIf(&e.EndDate, p.EndDate)
		setIf(&e.Description, p.Description)
	})
	return out
}

func RemoveExperienceAt(doc model.Document, i int) model.Document {
	out := doc.Clone()
	out.Experience = removeAt(out.Experience, i)
	return out
}

type EducationPatch struct {
	School      *string `json:"school"`
	Degree      *string `json:"degree"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Description *string `json:"description"`
}

func AppendEducation(doc model.Document, item model.Education) model.Document {
	out := doc.Clone()
	out.Education = appendItem(out.Education, item)
	return out
}

func UpdateEducationAt(doc model.Document, i int, p EducationPatch) model.Document {
	out := doc.Clone()
	out.Education = patchAt(out.Education, i, func(e *model.Education) {
		setIf(&e.School, p.School)
		setIf(&e.Degree, p.Degree)
		setIf(&e.StartDate, p.StartDate)
		setIf(&e.EndDate, p.EndDate)
		setIf(&e.Description, p.Description)
	})
	return out
}

func RemoveEducationAt(doc model.Document, i int) model.Document {
	out := doc.Clone()
	out.Education = removeAt(out.Education, i)
	return out
}

type SkillPatch struct {
	Name  *string           `json:"name"`
	Level *model.SkillLevel `json:"level"`
}

func AppendSkill(doc model.Document, item model.Skill) model.Document {
	out := doc.Clone()
	out.Skills = appendItem(out.Skills, item)
	return out
}

func UpdateSkillAt(doc model.Document, i int, p SkillPatch) model.Document {
	out := doc.Clone()
	out.Skills = patchAt(out.Skills, i, func(s *model.Skill) {
		setIf(&s.Name, p.Name)
		setIf(&s.Level, p.Level)
	})
	return out
}

func RemoveSkillAt(doc model.Document, i int) model.Document {
	out := doc.Clone()
	out.Skills = removeAt(out.Skills, i)
	return out
}

type LanguagePatch struct {
	Name  *string `json:"name"`
	Level *string `json:"level"`
}

func AppendLanguage(doc model.Document, item model.Language) model.Document {
	out := doc.Clone()
	out.Languages = appendItem(out.Languages, item)
	return out
}

func UpdateLanguageAt(doc model.Document, i int, p LanguagePatch) model.Document {
	out := doc.Clone()
	out.Languages = patchAt(out.Languages, i, func(l *model.Language) {
		setIf(&l.Name, p.Name)
		setIf(&l.Level, p.Level)
	})
	return out
}

func RemoveLanguageAt(doc model.Document, i int) model.Document {
	out := doc.Clone()
	out.Languages = removeAt(out.Languages, i)
	return out
}

type ProjectPatch struct {
	Name        *string `json:"name"`
	Link        *string `json:"link"`
	Description *string `json:"description"`
}

func AppendProject(doc model.Document, item model.Project) model.Document {
	out := doc.Clone()
	out.Projects = appendItem(out.Projects, item)
	return out
}

func UpdateProjectAt(doc model.Document, i int, p ProjectPatch) model.Document {
	out := doc.Clone()
	out.Projects = patchAt(out.Projects, i, func(pr *model.Project) {
		setIf(&pr.Name, p.Name)
		setIf(&pr.Link, p.Link)
		setIf(&pr.Description, p.Description)
	})
	return out
}

func RemoveProjectAt(doc model.Document, i int) model.Document {
	out := doc.Clone()
	out.Projects = removeAt(out.Projects, i)
	return out
}

type CertificationPatch struct {
	Name   *string `json:"name"`
	Issuer *string `json:"issuer"`
	Date   *string `json:"date"`
}

func AppendCertification(doc model.Document, item model.Certification) model.Document {
	out := doc.Clone()
	out.Certifications = appendItem(out.Certifications, item)
	return out
}

func UpdateCertificationAt(doc model.Document, i int, p CertificationPatch) model.Document {
	out := doc.Clone()
	out.Certifications = patchAt(out.Certifications, i, func(c *model.Certification) {
		setIf(&c.Name, p.Name)
		setIf(&c.Issuer, p.Issuer)
		setIf(&c.Date, p.Date)
	})
	return out
}

func RemoveCertificationAt(doc model.Document, i int) model.Document {
	out := doc.Clone()
	out.Certifications = removeAt(out.Certifications, i)
	return out
}
