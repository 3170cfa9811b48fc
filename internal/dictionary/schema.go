package dictionary

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/skills_database.schema.json schema/job_keywords.schema.json
var schemaFS embed.FS

// SchemaError reports that a dictionary document failed schema validation.
type SchemaError struct {
	Dictionary string
	Errors     []FieldError
}

// FieldError is a single schema violation at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (e *SchemaError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s dictionary failed validation:\n", e.Dictionary))
	for i, fe := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, fe.Field, fe.Message))
	}
	return sb.String()
}

func validateSkillsDatabase(data []byte) error {
	return validateAgainst("schema/skills_database.schema.json", "skills", data)
}

func validateJobKeywords(data []byte) error {
	return validateAgainst("schema/job_keywords.schema.json", "job keywords", data)
}

// validateAgainst validates a dictionary document against an embedded schema.
func validateAgainst(schemaPath, name string, data []byte) error {
	schemaContent, err := schemaFS.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to read embedded schema %s: %w", schemaPath, err)
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaContent)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("%s dictionary is not valid JSON: %w", name, err)
	}

	if result.Valid() {
		return nil
	}

	schemaErr := &SchemaError{
		Dictionary: name,
		Errors:     make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		schemaErr.Errors = append(schemaErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return schemaErr
}
