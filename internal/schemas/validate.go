// Package schemas checks persisted documents against the embedded JSON Schemas.
package schemas

import (
	"fmt"
	"strings"
	"sync"

	rootschemas "github.com/jonathan/placement-prep/schemas"
	"github.com/xeipuuv/gojsonschema"
)

// Problem is one schema violation. Field is a dotted path, "(root)" for the document itself.
type Problem struct {
	Field       string
	Description string
}

// ValidationError lists every violation found in a document.
type ValidationError struct {
	Problems []Problem
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		parts[i] = p.Field + ": " + p.Description
	}
	return "document does not match schema: " + strings.Join(parts, "; ")
}

// SchemaLoadError means an embedded schema is missing or does not compile.
type SchemaLoadError struct {
	Name   string
	Reason string
	Err    error
}

func (e *SchemaLoadError) Error() string {
	msg := "schema " + e.Name + " unusable: " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SchemaLoadError) Unwrap() error { return e.Err }

var cache sync.Map // schema file name -> *gojsonschema.Schema

func load(name string) (*gojsonschema.Schema, error) {
	if s, ok := cache.Load(name); ok {
		return s.(*gojsonschema.Schema), nil
	}

	raw, err := rootschemas.FS.ReadFile(name)
	if err != nil {
		return nil, &SchemaLoadError{Name: name, Reason: "not embedded", Err: err}
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, &SchemaLoadError{Name: name, Reason: "does not compile", Err: err}
	}

	actual, _ := cache.LoadOrStore(name, s)
	return actual.(*gojsonschema.Schema), nil
}

// ValidateHistory checks a serialized analysis history. Malformed JSON yields a plain
// error; schema violations yield a *ValidationError.
func ValidateHistory(data []byte) error {
	s, err := load(rootschemas.History)
	if err != nil {
		return err
	}

	result, err := s.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("failed to parse history document: %w", err)
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{}
	for _, re := range result.Errors() {
		field := re.Field()
		if field == "" {
			field = "(root)"
		}
		verr.Problems = append(verr.Problems, Problem{Field: field, Description: re.Description()})
	}
	return verr
}
