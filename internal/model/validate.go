package model

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON []byte

// ValidateJSON checks an import payload against the document schema. The
// schema constrains field types only and has no required fields, so a
// sparse payload validates and imports with zero values. A payload whose
// fields have the wrong shape (e.g. skills as a string) is rejected before
// it can replace the session document.
func ValidateJSON(payload []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(schemaJSON)
	docLoader := gojsonschema.NewBytesLoader(payload)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}
