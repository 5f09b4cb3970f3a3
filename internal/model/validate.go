package model

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidateMap validates a generic CV payload against cv.schema.json in
// the given templates directory. Validation is advisory for the render
// pipeline (builders tolerate anything), but callers use it to reject
// or flag malformed ingest payloads early.
func ValidateMap(tplDir string, m map[string]interface{}) error {
	// Use an absolute canonical file:// path for the schema so loaders on
	// all platforms (including Windows) resolve file references correctly.
	abs, err := filepath.Abs(filepath.Join(tplDir, "cv.schema.json"))
	if err != nil {
		return err
	}
	schemaLoader := gojsonschema.NewReferenceLoader("file://" + filepath.ToSlash(abs))
	docLoader := gojsonschema.NewGoLoader(m)

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
