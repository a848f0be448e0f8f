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

package apis

// NamedError represents an error that carries a category name, such as
// "ValidationError" or "GeneralError".
//
// Names are free-form identifiers chosen by the code that reports the
// failure. They are intended to be stable enough for clients to branch on,
// and they are always part of the public surface of a record.
type NamedError interface {
	error

	// Name returns the category of the failure. Never empty for records
	// produced by apperr.
	Name() string
}

// StatusedError represents an error that carries a numeric classification
// status.
//
// The status follows HTTP conventions (400 for client failures, 422 for
// validation, 500 for unclassified server failures), but it is not an HTTP
// status until a Mapper resolves it at the boundary.
type StatusedError interface {
	error

	// Status returns the classification status. Always populated.
	Status() int
}

// PublicError represents an error that knows which of its attributes are
// safe to expose to external consumers.
//
// Boundaries MUST serialize only the attributes listed by Publics, in the
// listed order. Attributes such as the cause chain or captured stack frames
// are diagnostic data and are never listed unless a variant explicitly opts
// in.
type PublicError interface {
	error

	// Publics returns the allow-list of attribute names. The returned slice
	// is a copy and may be modified by the caller.
	Publics() []string

	// View returns the public attributes as ordered key/value pairs.
	View() ErrorView
}

// DetailedError represents an error that exposes zero or more field-level
// validation failures. This is especially useful for validation scenarios
// where multiple fields may fail at once and the caller needs to show *all*
// of them.
//
// Implementations SHOULD return a slice that is safe to iterate over and
// that will not be modified by the callee. Returning nil is allowed and
// simply means "no field failures".
type DetailedError interface {
	error

	// ValidationErrors returns the field failures. May return nil.
	ValidationErrors() []FieldFailure
}

// CausedError represents an error that exposes its underlying cause.
//
// Implementations SHOULD return the direct, immediate cause of the error. If
// there is no underlying cause, they SHOULD return nil.
type CausedError interface {
	error

	// Cause returns the underlying error that triggered this error, if any.
	// May return nil.
	Cause() error
}
