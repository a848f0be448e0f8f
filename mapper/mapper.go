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

import (
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/apperr/apis"
	"google.golang.org/grpc/codes"
)

var (
	// ErrEmptyName is returned by New when an override targets an empty
	// record name.
	ErrEmptyName = errors.New("apperr: empty record name")

	// ErrInvalidHTTPStatus is returned by New when an override or fallback
	// is not a 4xx/5xx status.
	ErrInvalidHTTPStatus = errors.New("apperr: invalid HTTP status")

	// ErrInvalidGRPCCode is returned by New when an override, default or
	// fallback is not a non-OK gRPC code.
	ErrInvalidGRPCCode = errors.New("apperr: invalid gRPC code")
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived reuse.
// Each build creates a self-contained mapper instance: no shared references
// to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (status -> gRPC).
//  2. Apply user-provided options (defaults, overrides, fallbacks).
//  3. Validate every name, HTTP status and gRPC code.
//  4. Freeze all maps into immutable copies (fresh allocations).
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()

	// (1) Seed with package-level defaults, kept as int for uniformity
	// with user options; converted when freezing.
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = int(v)
	}

	// (2) Apply user-supplied options.
	for _, opt := range opts {
		opt(b)
	}

	// (3) Validate.
	for name, v := range b.httpOverride {
		if name == "" {
			return nil, fmt.Errorf("mapper: HTTP override: %w", ErrEmptyName)
		}
		if !validHTTP(v) {
			return nil, fmt.Errorf("mapper: HTTP override %d for %q: %w", v, name, ErrInvalidHTTPStatus)
		}
	}
	for name, v := range b.grpcOverride {
		if name == "" {
			return nil, fmt.Errorf("mapper: gRPC override: %w", ErrEmptyName)
		}
		if !validGRPC(v) {
			return nil, fmt.Errorf("mapper: gRPC override %d for %q: %w", v, name, ErrInvalidGRPCCode)
		}
	}
	for status, v := range b.grpcDefaults {
		if !validGRPC(v) {
			return nil, fmt.Errorf("mapper: gRPC default %d for status %d: %w", v, status, ErrInvalidGRPCCode)
		}
	}
	if !validHTTP(b.fallbackHTTP) {
		return nil, fmt.Errorf("mapper: HTTP fallback %d: %w", b.fallbackHTTP, ErrInvalidHTTPStatus)
	}
	if !validGRPC(int(b.fallbackGRPC)) {
		return nil, fmt.Errorf("mapper: gRPC fallback %d: %w", b.fallbackGRPC, ErrInvalidGRPCCode)
	}

	// (4) Freeze everything into a read-only snapshot.
	return &mapper{
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freezeHTTPOverrides(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// mapper is an immutable mapper implementation that combines per-name
// overrides, per-status defaults and class-level fallbacks. Lookups are O(1)
// and safe for concurrent use once constructed.
type mapper struct {
	// grpcDefault holds the gRPC code for a given record status.
	grpcDefault map[int]codes.Code

	// httpOverride holds explicit HTTP statuses for specific record names.
	httpOverride map[string]int

	// grpcOverride holds explicit gRPC codes for specific record names.
	grpcOverride map[string]codes.Code

	// fallbackHTTP is used when the record status is not a 4xx/5xx code.
	// Typically http.StatusInternalServerError.
	fallbackHTTP int

	// fallbackGRPC is used when the record status is not a 4xx/5xx code.
	// Typically codes.Internal.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given record name and status.
//
// Resolution order (highest to lowest):
//  1. exact per-name override;
//  2. the record status itself, when it is a 4xx/5xx code;
//  3. fallback (500 unless configured).
func (m *mapper) HTTPStatus(name string, status int) int {
	v, _ := m.resolveHTTP(name, status)
	return v
}

// GRPCStatus resolves a gRPC code for the given record name and status.
//
// Resolution order:
//  1. exact per-name override;
//  2. per-status default;
//  3. status class (4xx -> FailedPrecondition, 5xx -> Internal);
//  4. fallback (codes.Internal unless configured).
func (m *mapper) GRPCStatus(name string, status int) codes.Code {
	v, _ := m.resolveGRPC(name, status)
	return v
}

// Status resolves both HTTP and gRPC using the same inputs.
// This keeps HTTP/GRPC decisions consistent for a single logical error.
func (m *mapper) Status(name string, status int) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(name, status),
		GRPC: m.GRPCStatus(name, status),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular (name, status) pair.
//
// Example output:
//
//	name="ValidationError" status=422
//	http: source=status -> 422
//	grpc: source=default -> INVALIDARGUMENT(3)
//
// source ∈ {override | status | default | class | fallback}.
func (m *mapper) Explain(name string, status int) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "name=%q status=%d\n", name, status)

	hv, hsrc := m.resolveHTTP(name, status)
	_, _ = fmt.Fprintf(&b, "http: source=%s -> %d\n", hsrc, hv)

	gv, gsrc := m.resolveGRPC(name, status)
	_, _ = fmt.Fprintf(&b, "grpc: source=%s -> %s", gsrc, grpcLabel(gv))

	return b.String()
}

func (m *mapper) resolveHTTP(name string, status int) (int, string) {
	// 1. Fast path: exact override for this name.
	if v, ok := m.httpOverride[name]; ok {
		return v, "override"
	}

	// 2. The record already speaks HTTP.
	if validHTTP(status) {
		return status, "status"
	}

	// 3. Ultimate fallback: HTTP must never be zero or non-failure.
	return m.fallbackHTTP, "fallback"
}

func (m *mapper) resolveGRPC(name string, status int) (codes.Code, string) {
	// 1. Exact override.
	if v, ok := m.grpcOverride[name]; ok {
		return v, "override"
	}

	// 2. Default for this status.
	if v, ok := m.grpcDefault[status]; ok {
		return v, "default"
	}

	// 3. Status class.
	switch {
	case status >= 400 && status <= 499:
		return clientClassGRPC, "class"
	case status >= 500 && status <= 599:
		return serverClassGRPC, "class"
	}

	// 4. Fallback.
	return m.fallbackGRPC, "fallback"
}
