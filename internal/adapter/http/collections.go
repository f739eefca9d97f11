package http

import (
	"encoding/json"

	"github.com/ekosiswoyo/cv-generator/internal/model"
	"github.com/ekosiswoyo/cv-generator/internal/mutate"
)

// The collection routes are dynamic but the mutations are not: each
// collection name maps to its statically typed item and patch decoding
// here, then to the matching mutate operation.

// appendFunc decodes body as an item of the named collection and returns
// the append mutation. known is false for unrecognized collection names,
// parsed is false when the body does not decode.
func appendFunc(collection string, body []byte) (fn func(model.Document) model.Document, known, parsed bool) {
	switch collection {
	case mutate.CollectionExperience:
		var item model.Experience
		if json.Unmarshal(body, &item) != nil {
			return nil, true, false
		}
		return func(d model.Document) model.Document { return mutate.AppendExperience(d, item) }, true, true
	case mutate.CollectionEducation:
		var item model.Education
		if json.Unmarshal(body, &item) != nil {
			return nil, true, false
		}
		return func(d model.Document) model.Document { return mutate.AppendEducation(d, item) }, true, true
	case mutate.CollectionSkills:
		var item model.Skill
		if json.Unmarshal(body, &item) != nil {
			return nil, true, false
		}
		return func(d model.Document) model.Document { return mutate.AppendSkill(d, item) }, true, true
	case mutate.CollectionLanguages:
		var item model.Language
		if json.Unmarshal(body, &item) != nil {
			return nil, true, false
		}
		return func(d model.Document) model.Document { return mutate.AppendLanguage(d, item) }, true, true
	case mutate.CollectionProjects:
		var item model.Project
		if json.Unmarshal(body, &item) != nil {
			return nil, true, false
		}
		return func(d model.Document) model.Document { return mutate.AppendProject(d, item) }, true, true
	case mutate.CollectionCertifications:
		var item model.Certification
		if json.Unmarshal(body, &item) != nil {
			return nil, true, false
		}
		return func(d model.Document) model.Document { return mutate.AppendCertification(d, item) }, true, true
	}
	return nil, false, false
}

// updateFunc decodes body as a typed patch for one item of the named
// collection.
func updateFunc(collection string, index int, body []byte) (fn func(model.Document) model.Document, known, parsed bool) {
	switch collection {
	case mutate.CollectionExperience:
		var p mutate.ExperiencePatch
		if json.Unmarshal(body, &p) != nil {
			return nil, true, false
		}
		return func(d model.Document) model.Document { return mutate.UpdateExperienceAt(d, index, p) }, true, true
	case mutate.CollectionEducation:
		var p mutate.EducationPatch
		if json.Unmarshal(body, &p) != nil {
			return nil, true, false
		}
		return func(d model.Document) model.Document { return mutate.UpdateEducationAt(d, index, p) }, true, true
	case mutate.CollectionSkills:
		var p mutate.SkillPatch
		if json.Unmarshal(body, &p) != nil {
			return nil, true, false
		}
		return func(d model.Document) model.Document { return mutate.UpdateSkillAt(d, index, p) }, true, true
	case mutate.CollectionLanguages:
		var p mutate.LanguagePatch
		if json.Unmarshal(body, &p) != nil {
			return nil, true, false
		}
		return func(d model.Document) model.Document { return mutate.UpdateLanguageAt(d, index, p) }, true, true
	case mutate.CollectionProjects:
		var p mutate.ProjectPatch
		if json.Unmarshal(body, &p) != nil {
			return nil, true, false
		}
		return func(d model.Document) model.Document { return mutate.UpdateProjectAt(d, index, p) }, true, true
	case mutate.CollectionCertifications:
		var p mutate.CertificationPatch
		if json.Unmarshal(body, &p) != nil {
			return nil, true, false
		}
		return func(d model.Document) model.Document { return mutate.UpdateCertificationAt(d, index, p) }, true, true
	}
	return nil, false, false
}

// removeFunc returns the remove mutation for the named collection, or nil
// when the name is unknown.
func removeFunc(collection string, index int) func(model.Document) model.Document {
	switch collection {
	case mutate.CollectionExperience:
		return func(d model.Document) model.Document { return mutate.RemoveExperienceAt(d, index) }
	case mutate.CollectionEducation:
		return func(d model.Document) model.Document { return mutate.RemoveEducationAt(d, index) }
	case mutate.CollectionSkills:
		return func(d model.Document) model.Document { return mutate.RemoveSkillAt(d, index) }
	case mutate.CollectionLanguages:
		return func(d model.Document) model.Document { return mutate.RemoveLanguageAt(d, index) }
	case mutate.CollectionProjects:
		return func(d model.Document) model.Document { return mutate.RemoveProjectAt(d, index) }
	case mutate.CollectionCertifications:
		return func(d model.Document) model.Document { return mutate.RemoveCertificationAt(d, index) }
	}
	return nil
}
