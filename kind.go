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

// Public attribute names. These are the keys used by View and MarshalJSON.
const (
	FieldName             = "name"
	FieldMessage          = "message"
	FieldStatus           = "status"
	FieldValidationErrors = "validationErrors"
)

// Kind is the closed set of record variants. Every variant shares the core
// payload of Record; variants differ in their default name, their public
// attribute list and the extra attributes they carry.
type Kind uint8

const (
	// KindGeneral is the base variant used by the builder by default.
	KindGeneral Kind = iota

	// KindValidation carries a batch of field failures in addition to the
	// core payload and exposes them publicly.
	KindValidation
)

type kindInfo struct {
	label   string
	name    string
	message string
	status  int
	publics []string
}

// kinds is the per-variant table of defaults and public attributes.
var kinds = [...]kindInfo{
	KindGeneral: {
		label:   "general",
		name:    DefaultName,
		status:  DefaultStatus,
		publics: []string{FieldName, FieldMessage, FieldStatus},
	},
	KindValidation: {
		label:   "validation",
		name:    NameValidation,
		message: ValidationMessage,
		status:  ValidationStatus,
		publics: []string{FieldName, FieldMessage, FieldStatus, FieldValidationErrors},
	},
}

func (k Kind) valid() bool { return int(k) < len(kinds) }

func (k Kind) info() kindInfo {
	if !k.valid() {
		return kinds[KindGeneral]
	}
	return kinds[k]
}

// DefaultName returns the name given to records of this kind when the
// builder was never told one. Unknown kinds report the KindGeneral default.
func (k Kind) DefaultName() string { return k.info().name }

// Publics returns a copy of the public attribute list of this kind.
func (k Kind) Publics() []string {
	p := k.info().publics
	out := make([]string, len(p))
	copy(out, p)
	return out
}

// String returns a short lowercase label, e.g. "validation".
func (k Kind) String() string {
	if !k.valid() {
		return "unknown"
	}
	return kinds[k].label
}
