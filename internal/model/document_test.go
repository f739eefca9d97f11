package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	doc := Default()

	assert.Equal(t, "John Doe", doc.PersonalInfo.FullName)
	assert.Equal(t, "Full Stack Developer", doc.PersonalInfo.Title)
	assert.Equal(t, TemplateModernATS, doc.Template)
	assert.Equal(t, LangEN, doc.Lang)

	require.Len(t, doc.Experience, 1)
	assert.Equal(t, "Tech Solutions Inc.", doc.Experience[0].Company)
	assert.Equal(t, "Senior Developer", doc.Experience[0].Position)
	assert.Equal(t, "Jan 2020", doc.Experience[0].StartDate)
	assert.Equal(t, "Present", doc.Experience[0].EndDate)

	require.Len(t, doc.Education, 1)
	assert.Equal(t, "University of Indonesia", doc.Education[0].School)

	require.Len(t, doc.Skills, 2)
	assert.Equal(t, Skill{Name: "JavaScript", Level: SkillExpert}, doc.Skills[0])
	assert.Equal(t, Skill{Name: "React", Level: SkillExpert}, doc.Skills[1])

	require.Len(t, doc.Languages, 2)
	assert.Empty(t, doc.Projects)
	assert.Empty(t, doc.Certifications)

	// all visibility flags off except languages
	assert.False(t, doc.ShowPortfolio)
	assert.False(t, doc.ShowCertifications)
	assert.False(t, doc.ShowQRCode)
	assert.True(t, doc.ShowLanguages)
	assert.False(t, doc.CoverLetter.Show)
}

func TestDocumentClone(t *testing.T) {
	doc := Default()
	clone := doc.Clone()

	require.Equal(t, doc, clone)

	clone.Experience[0].Company = "Changed Corp"
	clone.Skills = append(clone.Skills, Skill{Name: "Go", Level: SkillAdvanced})

	assert.Equal(t, "Tech Solutions Inc.", doc.Experience[0].Company)
	assert.Len(t, doc.Skills, 2)
}

func TestSkillLevelBarPercent(t *testing.T) {
	tests := []struct {
		level SkillLevel
		want  int
	}{
		{SkillBeginner, 40},
		{SkillIntermediate, 65},
		{SkillAdvanced, 85},
		{SkillExpert, 100},
		{SkillLevel("Wizard"), 40},
		{SkillLevel(""), 40},
	}
	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.BarPercent())
		})
	}
}

func TestTemplateNormalize(t *testing.T) {
	tests := []struct {
		in   Template
		want Template
	}{
		{TemplateModernATS, TemplateModernATS},
		{TemplateClassicFormal, TemplateClassicFormal},
		{TemplateMinimalist, TemplateMinimalist},
		{TemplateCreativeSidebar, TemplateCreativeSidebar},
		{Template("funky"), TemplateModernATS},
		{Template(""), TemplateModernATS},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.Normalize())
	}
}

func TestValidateJSON(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"empty object", `{}`, false},
		{"sparse document", `{"personalInfo":{"fullName":"Jane"}}`, false},
		{"unknown extra field", `{"somethingElse":42}`, false},
		{"skills as string", `{"skills":"lots"}`, true},
		{"flag as string", `{"showPortfolio":"yes"}`, true},
		{"experience item wrong type", `{"experience":[{"company":123}]}`, true},
		{"personalInfo as array", `{"personalInfo":[]}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSON([]byte(tt.payload))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
