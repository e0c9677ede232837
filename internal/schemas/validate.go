// Package schemas provides JSON Schema validation for checkpoint artifacts.
// The schema files are embedded at compile time; the job record schema is also
// handed to the scraping API as its extraction contract.
package schemas

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// Schema file names for the checkpoint artifacts.
const (
	QueriesSchema       = "queries.schema.json"
	SearchResultsSchema = "search_results.schema.json"
	JobRecordSchema     = "job_record.schema.json"
)

// ValidationError represents a schema validation failure with field paths
type ValidationError struct {
	Schema string
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation against %s failed:\n", ve.Schema))
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Schema  string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Schema, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Schema, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// SchemaJSON returns the raw JSON text of an embedded schema.
func SchemaJSON(name string) (string, error) {
	data, err := schemaFiles.ReadFile(name)
	if err != nil {
		return "", &SchemaLoadError{Schema: name, Message: "not embedded", Cause: err}
	}
	return string(data), nil
}

// ValidateBytes validates a JSON document against an embedded schema.
func ValidateBytes(schemaName string, document []byte) error {
	schemaData, err := schemaFiles.ReadFile(schemaName)
	if err != nil {
		return &SchemaLoadError{Schema: schemaName, Message: "not embedded", Cause: err}
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaData)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{Schema: schemaName, Message: "validation could not run", Cause: err}
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Schema: schemaName}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}

// ValidateJobRecords validates a checkpoint document holding an array of job
// records. The array schema is derived from the single-record schema so the
// scraping contract and the checkpoint contract cannot drift apart.
func ValidateJobRecords(document []byte) error {
	schemaData, err := schemaFiles.ReadFile(JobRecordSchema)
	if err != nil {
		return &SchemaLoadError{Schema: JobRecordSchema, Message: "not embedded", Cause: err}
	}

	var itemSchema map[string]any
	if err := json.Unmarshal(schemaData, &itemSchema); err != nil {
		return &SchemaLoadError{Schema: JobRecordSchema, Message: "invalid schema JSON", Cause: err}
	}
	delete(itemSchema, "$schema")

	arraySchema := map[string]any{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type":    "array",
		"items":   itemSchema,
	}

	schemaLoader := gojsonschema.NewGoLoader(arraySchema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{Schema: JobRecordSchema, Message: "validation could not run", Cause: err}
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Schema: JobRecordSchema}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
