// Package schema validates raw bank documents against an embedded CUE
// schema before they reach the Go-level structural validation. CUE
// catches shape errors (wrong field types, unknown enum members) with
// better messages than yaml decoding alone.
package schema

import (
	"embed"
	"fmt"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/dotcommander/assay/internal/types"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// ValidationError represents a schema validation finding.
type ValidationError struct {
	File     string
	Message  string
	Severity string
}

// Validator handles CUE validation of bank documents.
type Validator struct {
	ctx     *cue.Context
	schemas map[string]cue.Value
}

// NewValidator creates a Validator with all embedded schemas compiled.
func NewValidator() (*Validator, error) {
	v := &Validator{
		ctx:     cuecontext.New(),
		schemas: make(map[string]cue.Value),
	}
	if err := v.loadSchemas(); err != nil {
		return nil, err
	}
	return v, nil
}

// loadSchemas compiles every embedded .cue file.
func (v *Validator) loadSchemas() error {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return fmt.Errorf("could not read embedded schemas: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".cue" {
			continue
		}
		content, err := schemaFS.ReadFile(filepath.Join("schemas", entry.Name()))
		if err != nil {
			continue
		}
		inst := v.ctx.CompileBytes(content, cue.Filename(entry.Name()))
		if inst.Err() != nil {
			return fmt.Errorf("invalid embedded schema %s: %w", entry.Name(), inst.Err())
		}
		name := entry.Name()[:len(entry.Name())-len(".cue")]
		v.schemas[name] = inst.Value()
	}

	if len(v.schemas) == 0 {
		return fmt.Errorf("no CUE schemas loaded")
	}
	return nil
}

// ValidateBank validates a raw bank document against the #Bank schema.
func (v *Validator) ValidateBank(data map[string]any) []ValidationError {
	schema, ok := v.schemas["bank"]
	if !ok {
		return nil
	}

	dataValue := v.ctx.Encode(data)
	if err := dataValue.Err(); err != nil {
		return []ValidationError{{
			Message:  fmt.Sprintf("error encoding document: %v", err),
			Severity: types.SeverityHigh,
		}}
	}

	def := schema.LookupPath(cue.ParsePath("#Bank"))
	if !def.Exists() {
		return nil
	}

	unified := def.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return extractErrors(err)
	}
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return extractErrors(err)
	}
	return nil
}

// ValidateFile parses a YAML bank file and validates it against the
// schema.
func (v *Validator) ValidateFile(path string, content []byte) []ValidationError {
	var data map[string]any
	if err := yamlv3.Unmarshal(content, &data); err != nil {
		return []ValidationError{{
			File:     path,
			Message:  fmt.Sprintf("error parsing YAML: %v", err),
			Severity: types.SeverityHigh,
		}}
	}

	findings := v.ValidateBank(data)
	for i := range findings {
		findings[i].File = path
	}
	return findings
}

func extractErrors(err error) []ValidationError {
	return []ValidationError{{
		Message:  fmt.Sprintf("schema validation failed: %v", err),
		Severity: types.SeverityHigh,
	}}
}
