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

package mapper

import "google.golang.org/grpc/codes"

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithGRPCDefault sets or replaces the library-level default gRPC code for
// the given record status.
func WithGRPCDefault(status int, grpc int) Option {
	return func(b *builder) { b.grpcDefaults[status] = grpc }
}

// WithHTTPOverride registers an exact HTTP status for records with the given
// name, regardless of their own status.
func WithHTTPOverride(name string, http int) Option {
	return func(b *builder) { b.httpOverride[name] = http }
}

// WithGRPCOverride registers an exact gRPC code for records with the given
// name, regardless of their own status.
func WithGRPCOverride(name string, grpc int) Option {
	return func(b *builder) { b.grpcOverride[name] = grpc }
}

// WithFallbackHTTP replaces the HTTP status used for records whose status is
// not a 4xx/5xx code.
func WithFallbackHTTP(http int) Option {
	return func(b *builder) { b.fallbackHTTP = http }
}

// WithFallbackGRPC replaces the gRPC code used for records whose status is
// not a 4xx/5xx code.
func WithFallbackGRPC(grpc codes.Code) Option {
	return func(b *builder) { b.fallbackGRPC = grpc }
}
