// Package export serializes documents to the JSON interchange format and
// parses them back. Import is all-or-nothing: a payload either yields a
// complete document or an error, never a partial state.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/ekosiswoyo/cv-generator/internal/model"
)

var (
	// ErrParse marks a payload that is not valid JSON at all.
	ErrParse = errors.New("payload is not valid JSON")
	// ErrSchema marks JSON whose fields have the wrong shape.
	ErrSchema = errors.New("payload does not match the document schema")
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Marshal produces the pretty-printed interchange form of the document,
// the full document with no envelope. Unmarshal(Marshal(d)) == d.
func Marshal(doc model.Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// Unmarshal parses an interchange payload into a document. Malformed JSON
// returns ErrParse; JSON with type-invalid fields returns ErrSchema. Fields
// absent from the payload come back zero-valued, which is valid per the
// interchange contract.
func Unmarshal(payload []byte) (model.Document, error) {
	if !json.Valid(payload) {
		return model.Document{}, ErrParse
	}
	if err := model.ValidateJSON(payload); err != nil {
		return model.Document{}, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	var doc model.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return model.Document{}, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	return doc, nil
}

// Filename names the exported JSON download after the sanitized full name.
func Filename(doc model.Document) string {
	return sanitize(doc.PersonalInfo.FullName) + "_data.json"
}

// DocumentTitle derives the print-output title: sanitized full name, job
// title and the given year.
func DocumentTitle(doc model.Document, year int) string {
	return fmt.Sprintf("%s_%s_%d",
		sanitize(doc.PersonalInfo.FullName),
		sanitize(doc.PersonalInfo.Title),
		year)
}

func sanitize(s string) string {
	return whitespaceRun.ReplaceAllString(s, "_")
}
