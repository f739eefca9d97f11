package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekosiswoyo/cv-generator/internal/model"
)

func TestRoundTripDefault(t *testing.T) {
	doc := model.Default()

	payload, err := Marshal(doc)
	require.NoError(t, err)

	got, err := Unmarshal(payload)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestRoundTripMutated(t *testing.T) {
	doc := model.Default()
	doc.Lang = model.LangID
	doc.Template = model.TemplateCreativeSidebar
	doc.ShowQRCode = true
	doc.PersonalInfo.Website = "https://johndoe.dev"
	doc.Projects = append(doc.Projects, model.Project{
		Name:        "cv-generator",
		Description: "CV builder",
		Link:        "https://github.com/johndoe/cv-generator",
	})
	doc.CoverLetter.Show = true
	doc.CoverLetter.Body = "Multi-line\n\nbody text."

	payload, err := Marshal(doc)
	require.NoError(t, err)

	got, err := Unmarshal(payload)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestUnmarshalMalformed(t *testing.T) {
	_, err := Unmarshal([]byte(`{"personalInfo":`))
	assert.ErrorIs(t, err, ErrParse)
}

func TestUnmarshalWrongShape(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"skills as string", `{"skills":"lots"}`},
		{"flag as number", `{"isFreshGraduate":1}`},
		{"top level array", `[1,2,3]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.payload))
			assert.ErrorIs(t, err, ErrSchema)
		})
	}
}

func TestUnmarshalSparsePayload(t *testing.T) {
	got, err := Unmarshal([]byte(`{"personalInfo":{"fullName":"Jane Roe"},"lang":"id"}`))
	require.NoError(t, err)

	assert.Equal(t, "Jane Roe", got.PersonalInfo.FullName)
	assert.Equal(t, model.LangID, got.Lang)
	assert.Empty(t, got.Experience)
	assert.Empty(t, got.Skills)
}

func TestFilename(t *testing.T) {
	doc := model.Default()
	assert.Equal(t, "John_Doe_data.json", Filename(doc))

	doc.PersonalInfo.FullName = "Maria   da \tSilva"
	assert.Equal(t, "Maria_da_Silva_data.json", Filename(doc))
}

func TestDocumentTitle(t *testing.T) {
	doc := model.Default()
	assert.Equal(t, "John_Doe_Full_Stack_Developer_2026", DocumentTitle(doc, 2026))
}
