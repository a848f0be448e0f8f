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

// FieldFailure is a single schema-validation violation on one field, as
// reported by a validation engine. This is a *view type*: small,
// transport-friendly, and suitable for JSON or proto mapping.
//
// We keep it in apis so that validators, HTTP/gRPC adapters and loggers can
// speak about field failures without importing the concrete record type.
type FieldFailure struct {
	// Field carries the logical path to the failing field, e.g.
	// "address.street" or "items.0.sku". The document root is reported as
	// "(root)".
	Field string `json:"field"`

	// Rule identifies the violated rule, e.g. "required", "min_length",
	// "pattern". The vocabulary belongs to the validation engine.
	Rule string `json:"rule"`

	// Message is a short, human-friendly explanation of the violation.
	Message string `json:"message"`

	// Value optionally carries the offending value. Engines should leave it
	// empty for values that must not be echoed back to clients.
	Value any `json:"value,omitempty"`
}
