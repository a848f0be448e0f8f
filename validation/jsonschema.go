/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"go.yaml.in/yaml/v3"

	"dirpx.dev/apperr"
)

var (
	// ErrSchema is returned when a schema cannot be compiled.
	ErrSchema = errors.New("apperr: invalid schema")

	// ErrNilSchema is returned when validating against a nil schema.
	ErrNilSchema = errors.New("apperr: nil schema")

	// ErrDocument is returned when the object cannot be loaded as a JSON
	// document.
	ErrDocument = errors.New("apperr: unreadable document")
)

// rootField is how gojsonschema names the document root.
const rootField = "(root)"

// JSONSchema is a compiled JSON Schema. It is immutable and safe for
// concurrent use.
type JSONSchema struct {
	schema *gojsonschema.Schema
}

// CompileJSON compiles a schema from its JSON text.
func CompileJSON(b []byte) (*JSONSchema, error) {
	return compile(gojsonschema.NewBytesLoader(b))
}

// CompileYAML compiles a schema written in YAML.
func CompileYAML(b []byte) (*JSONSchema, error) {
	var doc any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	return CompileGo(doc)
}

// CompileGo compiles a schema held in a Go value, typically a
// map[string]any literal.
func CompileGo(v any) (*JSONSchema, error) {
	return compile(gojsonschema.NewGoLoader(v))
}

// MustCompileJSON is the panic-on-error variant of CompileJSON, for package
// level schema variables.
func MustCompileJSON(b []byte) *JSONSchema {
	s, err := CompileJSON(b)
	if err != nil {
		panic(err)
	}
	return s
}

func compile(l gojsonschema.JSONLoader) (*JSONSchema, error) {
	s, err := gojsonschema.NewSchema(l)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	return &JSONSchema{schema: s}, nil
}

// JSONSchemaEngine is the Engine backed by gojsonschema.
//
// Objects may be Go values (marshaled the way encoding/json would), raw JSON
// as []byte or json.RawMessage, or a JSON string wrapped in RawJSON.
type JSONSchemaEngine struct {
	// IncludeValues copies the offending value into each failure. Leave it
	// off when inputs may carry secrets: failures are public.
	IncludeValues bool
}

// RawJSON marks a string as JSON text rather than a string value.
type RawJSON string

var _ Engine[*JSONSchema] = JSONSchemaEngine{}

// Validate implements Engine.
func (e JSONSchemaEngine) Validate(object any, s *JSONSchema) (Result, error) {
	if s == nil || s.schema == nil {
		return Result{}, ErrNilSchema
	}
	res, err := s.schema.Validate(documentLoader(object))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrDocument, err)
	}
	if res.Valid() {
		return Valid(), nil
	}
	errs := res.Errors()
	failures := make([]apperr.FieldFailure, 0, len(errs))
	for _, re := range errs {
		f := apperr.FieldFailure{
			Field:   fieldOf(re),
			Rule:    re.Type(),
			Message: re.Description(),
		}
		if e.IncludeValues && re.Type() != "required" {
			f.Value = re.Value()
		}
		failures = append(failures, f)
	}
	return Invalid(failures...), nil
}

func documentLoader(object any) gojsonschema.JSONLoader {
	switch x := object.(type) {
	case json.RawMessage:
		return gojsonschema.NewBytesLoader(x)
	case []byte:
		return gojsonschema.NewBytesLoader(x)
	case RawJSON:
		return gojsonschema.NewStringLoader(string(x))
	}
	return gojsonschema.NewGoLoader(object)
}

// fieldOf returns the path of the failing field. Required-property
// failures are reported on the missing property rather than on its parent.
func fieldOf(re gojsonschema.ResultError) string {
	field := re.Field()
	prop, _ := re.Details()["property"].(string)
	if re.Type() != "required" || prop == "" {
		return field
	}
	switch {
	case field == "" || field == rootField:
		return prop
	case field == prop || strings.HasSuffix(field, "."+prop):
		return field
	}
	return field + "." + prop
}

// NewJSONSchema returns a Gateway backed by a default JSONSchemaEngine.
func NewJSONSchema(opts ...Option) *Gateway[*JSONSchema] {
	return NewGateway[*JSONSchema](JSONSchemaEngine{}, opts...)
}
