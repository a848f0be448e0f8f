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

// Package validation puts a schema-validation engine behind the apperr
// record model.
//
// A Gateway wraps an Engine so that call sites never see the engine's own
// error shape. They get either success or a KindValidation *apperr.Record
// carrying the reported field failures. Three call modes are offered:
//
//   - ValidateOrThrow returns the record as an error;
//   - MustValidate panics with the record, which apperr.Attempt forwards
//     unchanged to its continuation;
//   - ValidateOrInvoke hands the record to a continuation and reports false.
//
// Only the engine's explicit success marker (Valid) counts as success. Any
// other result, even one with no failures, is wrapped into a record.
//
// The bundled engine validates documents against JSON Schema (draft 4/6/7)
// using github.com/xeipuuv/gojsonschema. Schemas can be compiled from JSON,
// from YAML, or from Go values. The rule language itself belongs to JSON
// Schema and is not interpreted here.
package validation
