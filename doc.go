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

// Package apperr is the uniform failure representation for dirpx
// application backends.
//
// Every failure that can occur while handling a request ends up as one
// immutable *Record carrying a name, a message, a classification status, an
// optional cause (a native error or another record), the list of attributes
// that are safe to expose, and optional captured frames.
//
// Records are produced in three ways:
//
//   - by application code through the fluent Builder:
//
//     return apperr.New(apperr.WithMessageOption("order not found")).
//     WithName("NotFoundError").
//     WithStatus(http.StatusNotFound).
//     WithCause(err).
//     Build()
//
//   - by Attempt / Normalize, which convert whatever a fallible operation
//     returned or panicked with (a record, a native error or a string) into
//     exactly one record;
//
//   - by NewValidation, used by the validation package to wrap a batch of
//     field failures reported by a schema engine.
//
// Only the attributes listed by Record.Publics ever reach a client;
// MarshalJSON and View honor that list and its order. The cause chain and
// the frames are kept for server-side diagnostics.
package apperr
