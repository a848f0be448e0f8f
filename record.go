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

package apperr

import (
	"fmt"
	"log/slog"
	"net/http"
	"slices"

	"dirpx.dev/apperr/apis"
	"dirpx.dev/apperr/stack"
)

// Well-known record names.
const (
	// DefaultName is the name of a KindGeneral record built without an
	// explicit name and without a native cause to infer one from.
	DefaultName = "ApplicationError"

	// NameGeneral classifies native errors and strings that reached
	// normalization without being turned into a record first.
	NameGeneral = "GeneralError"

	// NameValidation classifies one or more field-level validation failures.
	NameValidation = "ValidationError"

	// NameErrorHandler is the terminal record returned when the continuation
	// itself failed while handling a prior failure.
	NameErrorHandler = "ErrorHandlerError"
)

// Default messages and statuses.
const (
	// DefaultStatus is the status of a builder that was never given one.
	DefaultStatus = http.StatusBadRequest

	// GeneralStatus is the status of normalized native errors and strings.
	GeneralStatus = http.StatusInternalServerError

	// ValidationStatus is the status of validation records.
	ValidationStatus = http.StatusUnprocessableEntity

	// GeneralMessage replaces the message of normalized native errors, whose
	// own text may contain internal details.
	GeneralMessage = "An error occurred"

	// ValidationMessage is the message of validation records.
	ValidationMessage = "The provided entry could not be validated."

	// ErrorHandlerMessage is the message of the terminal handler record.
	ErrorHandlerMessage = "Could not handle error."
)

// Record is the uniform, immutable representation of a failure.
//
// It carries:
//   - Name: category of the failure (always set);
//   - Message: human-readable description;
//   - Status: numeric classification, HTTP-flavored (always set);
//   - Cause: immediate originating failure, a native error or a *Record;
//   - Publics: attribute names safe to expose, in serialization order;
//   - Stack: captured frames, for diagnostics only;
//   - ValidationErrors: field failures (KindValidation only).
//
// A Record never changes after construction. Getters that return slices
// return copies, so a Record can be shared freely between goroutines.
type Record struct {
	kind             Kind
	name             string
	message          string
	status           int
	cause            error
	stack            stack.Trace
	validationErrors []FieldFailure
}

// compile-time guarantees that *Record implements the apis contracts.
var (
	_ apis.NamedError    = (*Record)(nil)
	_ apis.StatusedError = (*Record)(nil)
	_ apis.PublicError   = (*Record)(nil)
	_ apis.DetailedError = (*Record)(nil)
	_ apis.CausedError   = (*Record)(nil)
	_ slog.LogValuer     = (*Record)(nil)
)

// Error implements the built-in error interface.
//
// The format is:
//
//	<name> (<status>): <message>
//
// The cause is not included; use errors.Unwrap or a descriptor for that.
func (r *Record) Error() string {
	if r == nil {
		return "<nil>"
	}
	if r.message == "" {
		return fmt.Sprintf("%s (%d)", r.name, r.status)
	}
	return fmt.Sprintf("%s (%d): %s", r.name, r.status, r.message)
}

// Unwrap returns the cause, enabling errors.Is / errors.As chains.
func (r *Record) Unwrap() error {
	if r == nil {
		return nil
	}
	return r.cause
}

// Accessors are safe on a nil *Record and return zero values.

func (r *Record) Kind() Kind {
	if r == nil {
		return KindGeneral
	}
	return r.kind
}

func (r *Record) Name() string {
	if r == nil {
		return ""
	}
	return r.name
}

func (r *Record) Message() string {
	if r == nil {
		return ""
	}
	return r.message
}

func (r *Record) Status() int {
	if r == nil {
		return 0
	}
	return r.status
}

func (r *Record) Cause() error {
	if r == nil {
		return nil
	}
	return r.cause
}

// Stack returns a copy of the captured frames. May return nil.
func (r *Record) Stack() stack.Trace {
	if r == nil {
		return nil
	}
	return slices.Clone(r.stack)
}

// Publics returns a copy of the names of the attributes that may be exposed
// externally, in serialization order.
// A nil record has no publics.
func (r *Record) Publics() []string {
	if r == nil {
		return nil
	}
	return r.kind.Publics()
}

// ValidationErrors returns a copy of the field failures. It returns nil for
// records that are not of KindValidation.
func (r *Record) ValidationErrors() []FieldFailure {
	if r == nil || r.kind != KindValidation {
		return nil
	}
	out := make([]FieldFailure, len(r.validationErrors))
	copy(out, r.validationErrors)
	return out
}

// View returns the public attributes, in Publics order. Attributes that are
// not public (cause, stack) never appear in the view. A nil record yields an
// empty view.
func (r *Record) View() apis.ErrorView {
	if r == nil {
		return apis.ErrorView{}
	}
	publics := r.kind.info().publics
	v := apis.ErrorView{Fields: make([]apis.Field, 0, len(publics))}
	for _, key := range publics {
		v.Fields = append(v.Fields, apis.Field{Key: key, Value: r.attribute(key)})
	}
	return v
}

func (r *Record) attribute(key string) any {
	switch key {
	case FieldName:
		return r.name
	case FieldMessage:
		return r.message
	case FieldStatus:
		return r.status
	case FieldValidationErrors:
		return r.ValidationErrors()
	}
	return nil
}

// MarshalJSON serializes only the public attributes, in order. A nil record
// encodes as null.
func (r *Record) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	return r.View().MarshalJSON()
}

// Causes returns the cause chain, immediate cause first. The chain follows
// Unwrap and stops at the first error without a single cause, or after
// stack.MaxDepth links.
func (r *Record) Causes() []error {
	var out []error
	for c := r.Unwrap(); c != nil && len(out) < stack.MaxDepth; {
		out = append(out, c)
		u, ok := c.(interface{ Unwrap() error })
		if !ok {
			break
		}
		c = u.Unwrap()
	}
	return out
}

// logFrames bounds the frames emitted by LogValue.
const logFrames = 5

// LogValue implements slog.LogValuer. Unlike MarshalJSON it is meant for
// server-side logs and includes the cause chain and the top frames.
func (r *Record) LogValue() slog.Value {
	if r == nil {
		return slog.StringValue("<nil>")
	}
	attrs := []slog.Attr{
		slog.String("name", r.name),
		slog.String("message", r.message),
		slog.Int("status", r.status),
	}
	if n := len(r.validationErrors); n > 0 {
		attrs = append(attrs, slog.Int("failures", n))
	}
	if cs := r.Causes(); len(cs) > 0 {
		msgs := make([]string, len(cs))
		for i, c := range cs {
			msgs[i] = c.Error()
		}
		attrs = append(attrs, slog.Any("causes", msgs))
	}
	if len(r.stack) > 0 {
		attrs = append(attrs, slog.Any("stack", r.stack.Top(logFrames).Strings()))
	}
	return slog.GroupValue(attrs...)
}
