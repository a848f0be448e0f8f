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

// Package grpcx maps apperr records onto gRPC statuses.
//
// The server interceptors run handlers under apperr.Attempt, so returned
// errors and panics become a single record. The record is turned into a
// status whose code comes from an apis.Mapper, whose message is the record
// message, and whose only detail is a google.protobuf.Struct holding the
// record's public attributes. Errors that already carry a gRPC status pass
// through untouched.
//
// Clients recover the public attributes with ExtractPublics, or a record
// with RecordFromError.
package grpcx
