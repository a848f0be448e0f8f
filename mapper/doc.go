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

// Package mapper provides deterministic, immutable mappings from apperr
// records to transport-level statuses for HTTP and gRPC.
//
// # Overview
//
// A record is classified by two values:
//
//  1. a Name (e.g. "ValidationError", "GeneralError", "QuotaError"),
//  2. a numeric Status that follows HTTP conventions (e.g. 422, 500).
//
// Transport layers (HTTP handlers, gRPC servers) need to turn this pair into
// concrete status codes. Package mapper does that with an immutable snapshot
// that is safe for concurrent reuse. Callers can pin statuses per record
// name, and HTTP and gRPC are always resolved from the same inputs.
//
// # Resolution model
//
// HTTP:
//
//  1. exact override for the Name;
//  2. the record Status, when it is a 4xx/5xx code;
//  3. fallback (500).
//
// gRPC:
//
//  1. exact override for the Name;
//  2. per-Status default (library or user-adjusted);
//  3. Status class: 4xx -> FailedPrecondition, 5xx -> Internal;
//  4. fallback (codes.Internal).
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride("MaintenanceError", http.StatusServiceUnavailable),
//	    mapper.WithGRPCDefault(http.StatusTooManyRequests, int(codes.Unavailable)),
//	)
//	if err != nil {
//	    // invalid status, etc.
//	}
//
//	st := m.Status(rec.Name(), rec.Status())
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a particular
// (name, status) was resolved. It is intended for inspection and logging,
// not for stable machine parsing.
package mapper
