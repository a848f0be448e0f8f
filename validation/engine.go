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
	"dirpx.dev/apperr"
)

// Engine validates an object against a schema of type S.
//
// Implementations return Valid() when the object conforms, Invalid(...)
// with the field failures otherwise, and a non-nil error only when
// validation could not run at all (unusable schema, unreadable document).
type Engine[S any] interface {
	Validate(object any, schema S) (Result, error)
}

// EngineFunc adapts a plain function to Engine.
type EngineFunc[S any] func(object any, schema S) (Result, error)

// Validate calls f.
func (f EngineFunc[S]) Validate(object any, schema S) (Result, error) { return f(object, schema) }

// Result is an engine verdict: either the success marker or a collection of
// field failures. The zero Result is NOT a success.
type Result struct {
	valid    bool
	failures []apperr.FieldFailure
}

// Valid returns the success marker.
func Valid() Result { return Result{valid: true} }

// Invalid returns a failure collection. It stays a failure even when empty.
func Invalid(failures ...apperr.FieldFailure) Result {
	fs := make([]apperr.FieldFailure, len(failures))
	copy(fs, failures)
	return Result{failures: fs}
}

// IsValid reports whether r is the success marker.
func (r Result) IsValid() bool { return r.valid }

// Failures returns a copy of the field failures.
func (r Result) Failures() []apperr.FieldFailure {
	if len(r.failures) == 0 {
		return nil
	}
	out := make([]apperr.FieldFailure, len(r.failures))
	copy(out, r.failures)
	return out
}
