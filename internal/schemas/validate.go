// Package schemas embeds the JSON Schema of an analysis result and
// validates documents against it.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// AnalysisURI is the MCP resource URI the schema is published under.
const AnalysisURI = "bullets://schema/analysis"

//go:embed analysis.schema.json
var analysisSchema []byte

// AnalysisSchema returns the raw schema document.
func AnalysisSchema() []byte {
	return analysisSchema
}

// ValidationError lists every schema violation in a document.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at a field path.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, err.Field, err.Message)
	}
	return sb.String()
}

var (
	compileOnce sync.Once
	compiled    *gojsonschema.Schema
	compileErr  error
)

func analysisValidator() (*gojsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled, compileErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(analysisSchema))
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling analysis schema: %w", compileErr)
		}
	})
	return compiled, compileErr
}

// ValidateAnalysis checks a JSON-encoded analysis against the embedded
// schema. It returns *ValidationError when the document does not conform.
func ValidateAnalysis(data []byte) error {
	schema, err := analysisValidator()
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("loading document: %w", err)
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		verr.Errors = append(verr.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return verr
}
