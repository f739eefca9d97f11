package mutate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekosiswoyo/cv-generator/internal/model"
)

func boolPtr(b bool) *bool             { return &b }
func strPtr(s string) *string          { return &s }
func langPtr(l model.Lang) *model.Lang { return &l }

func TestApplyLeavesUnpatchedFieldsAlone(t *testing.T) {
	doc := model.Default()
	got := Apply(doc, DocumentPatch{ShowPortfolio: boolPtr(true)})

	assert.True(t, got.ShowPortfolio)
	got.ShowPortfolio = false
	assert.Equal(t, doc, got)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	doc := model.Default()
	before := doc.Clone()

	pi := doc.PersonalInfo
	pi.FullName = "Jane Roe"
	_ = Apply(doc, DocumentPatch{
		PersonalInfo: &pi,
		AccentColor:  strPtr("#000000"),
	})

	assert.Equal(t, before, doc)
}

func TestApplyReplacesWholeSubObjects(t *testing.T) {
	doc := model.Default()
	cl := doc.CoverLetter
	cl.Show = true
	cl.RecipientName = "Ms. Smith"

	got := Apply(doc, DocumentPatch{CoverLetter: &cl})
	assert.True(t, got.CoverLetter.Show)
	assert.Equal(t, "Ms. Smith", got.CoverLetter.RecipientName)
	assert.False(t, doc.CoverLetter.Show)
}

func TestLanguageSwitchIsPure(t *testing.T) {
	doc := model.Default()
	before := doc.Clone()

	toID := Apply(doc, DocumentPatch{Lang: langPtr(model.LangID)})
	backToEN := Apply(toID, DocumentPatch{Lang: langPtr(model.LangEN)})

	assert.Equal(t, before, backToEN)
}

func TestAppendThenRemoveLastIsIdentity(t *testing.T) {
	doc := model.Default()
	before := doc.Clone()

	item := model.Skill{Name: "Go", Level: model.SkillAdvanced}
	appended := AppendSkill(doc, item)
	require.Len(t, appended.Skills, 3)
	assert.Equal(t, item, appended.Skills[2])

	restored := RemoveSkillAt(appended, len(appended.Skills)-1)
	assert.Equal(t, before, restored)
}

func TestRemoveAtPreservesOrder(t *testing.T) {
	doc := model.Default()
	for _, name := range []string{"a", "b", "c", "d"} {
		doc = AppendLanguage(doc, model.Language{Name: name, Level: "Fluent"})
	}
	// defaults contribute two entries; appended four more
	require.Len(t, doc.Languages, 6)

	got := RemoveLanguageAt(doc, 2)
	require.Len(t, got.Languages, 5)
	assert.Equal(t, "English", got.Languages[0].Name)
	assert.Equal(t, "Indonesian", got.Languages[1].Name)
	assert.Equal(t, "b", got.Languages[2].Name)
	assert.Equal(t, "c", got.Languages[3].Name)
	assert.Equal(t, "d", got.Languages[4].Name)
}

func TestUpdateAtMergesOnlyPatchedFields(t *testing.T) {
	doc := model.Default()
	got := UpdateExperienceAt(doc, 0, ExperiencePatch{Position: strPtr("Staff Engineer")})

	assert.Equal(t, "Staff Engineer", got.Experience[0].Position)
	assert.Equal(t, "Tech Solutions Inc.", got.Experience[0].Company)
	assert.Equal(t, "Jan 2020", got.Experience[0].StartDate)
	// input untouched
	assert.Equal(t, "Senior Developer", doc.Experience[0].Position)
}

func TestOutOfRangeIsNoOp(t *testing.T) {
	doc := model.Default()
	before := doc.Clone()

	tests := []struct {
		name string
		got  model.Document
	}{
		{"update past end", UpdateExperienceAt(doc, 5, ExperiencePatch{Company: strPtr("x")})},
		{"update negative", UpdateExperienceAt(doc, -1, ExperiencePatch{Company: strPtr("x")})},
		{"remove past end", RemoveEducationAt(doc, 9)},
		{"remove negative", RemoveSkillAt(doc, -2)},
		{"remove from empty", RemoveProjectAt(doc, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, before, tt.got)
		})
	}
}

func TestInRange(t *testing.T) {
	doc := model.Default()

	assert.True(t, InRange(doc, CollectionExperience, 0))
	assert.False(t, InRange(doc, CollectionExperience, 1))
	assert.False(t, InRange(doc, CollectionExperience, -1))
	assert.True(t, InRange(doc, CollectionSkills, 1))
	assert.False(t, InRange(doc, CollectionProjects, 0))
	assert.False(t, InRange(doc, "nonsense", 0))
}

func TestAppendDoesNotShareBackingArray(t *testing.T) {
	doc := model.Default()
	a := AppendCertification(doc, model.Certification{Name: "CKA", Issuer: "CNCF", Date: "2023"})
	b := AppendCertification(doc, model.Certification{Name: "AWS SAA", Issuer: "AWS", Date: "2024"})

	assert.Equal(t, "CKA", a.Certifications[0].Name)
	assert.Equal(t, "AWS SAA", b.Certifications[0].Name)
	assert.Empty(t, doc.Certifications)
}
