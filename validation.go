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

import "dirpx.dev/apperr/apis"

// FieldFailure is a single field-level validation failure.
type FieldFailure = apis.FieldFailure

// NewValidation returns a KindValidation record wrapping failures.
//
// The record is named NameValidation, carries ValidationMessage and
// ValidationStatus, has no cause and no frames, and exposes the failures
// publicly under FieldValidationErrors. An empty batch is kept as an empty,
// non-nil list.
func NewValidation(failures ...FieldFailure) *Record {
	vs := make([]FieldFailure, len(failures))
	copy(vs, failures)
	return &Record{
		kind:             KindValidation,
		name:             NameValidation,
		message:          ValidationMessage,
		status:           ValidationStatus,
		validationErrors: vs,
	}
}
