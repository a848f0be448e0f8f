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
	"strings"
	"sync"
	"testing"

	"dirpx.dev/apperr/apis"
	"google.golang.org/grpc/codes"
)

func TestDefaults_HTTP_GRPC(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	check := func(name string, status int, wantHTTP int, wantGRPC codes.Code) {
		t.Helper()
		st := m.Status(name, status)
		if st.HTTP != wantHTTP || st.GRPC != wantGRPC {
			t.Fatalf("Status(%q, %d) got HTTP=%d GRPC=%v; want HTTP=%d GRPC=%v",
				name, status, st.HTTP, st.GRPC, wantHTTP, wantGRPC)
		}
	}
	check("ApplicationError", 400, 400, codes.InvalidArgument)
	check("ValidationError", 422, 422, codes.InvalidArgument)
	check("GeneralError", 500, 500, codes.Internal)
	check("NotFoundError", 404, 404, codes.NotFound)
	check("QuotaError", 429, 429, codes.ResourceExhausted)
}

func TestClassAndFallback(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if st := m.Status("TeapotError", 418); st.HTTP != 418 || st.GRPC != codes.FailedPrecondition {
		t.Fatalf("4xx class: %+v", st)
	}
	if st := m.Status("LoopError", 508); st.HTTP != 508 || st.GRPC != codes.Internal {
		t.Fatalf("5xx class: %+v", st)
	}
	for _, status := range []int{0, 200, 302, 1000, -1} {
		if st := m.Status("Weird", status); st.HTTP != 500 || st.GRPC != codes.Internal {
			t.Fatalf("status %d must fall back, got %+v", status, st)
		}
	}
}

func TestPriority_OverrideOverStatus(t *testing.T) {
	m, err := New(
		WithHTTPOverride("MaintenanceError", 503),
		WithGRPCOverride("MaintenanceError", int(codes.Unavailable)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status("MaintenanceError", 400)
	if st.HTTP != 503 || st.GRPC != codes.Unavailable {
		t.Fatalf("override must win; got %+v", st)
	}
	if st := m.Status("OtherError", 400); st.HTTP != 400 {
		t.Fatalf("override must be name-exact; got %+v", st)
	}
}

func TestUserDefaultsAndFallbacks(t *testing.T) {
	m, err := New(
		WithGRPCDefault(429, int(codes.Unavailable)),
		WithFallbackHTTP(502),
		WithFallbackGRPC(codes.Unknown),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.GRPCStatus("x", 429); got != codes.Unavailable {
		t.Fatalf("user default must replace library default; got %v", got)
	}
	if st := m.Status("x", 0); st.HTTP != 502 || st.GRPC != codes.Unknown {
		t.Fatalf("custom fallbacks: %+v", st)
	}
}

func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name string
		opts []Option
		want error
	}{
		{"empty http name", []Option{WithHTTPOverride("", 500)}, ErrEmptyName},
		{"empty grpc name", []Option{WithGRPCOverride("", int(codes.Internal))}, ErrEmptyName},
		{"http 2xx", []Option{WithHTTPOverride("X", 200)}, ErrInvalidHTTPStatus},
		{"grpc ok", []Option{WithGRPCOverride("X", int(codes.OK))}, ErrInvalidGRPCCode},
		{"grpc out of range", []Option{WithGRPCDefault(400, 99)}, ErrInvalidGRPCCode},
		{"http fallback", []Option{WithFallbackHTTP(0)}, ErrInvalidHTTPStatus},
		{"grpc fallback", []Option{WithFallbackGRPC(codes.OK)}, ErrInvalidGRPCCode},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opts...); !errors.Is(err, tt.want) {
				t.Fatalf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestExplain_Sources(t *testing.T) {
	m, err := New(WithHTTPOverride("MaintenanceError", 503))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	exp := m.Explain("MaintenanceError", 418)
	for _, sub := range []string{"source=override -> 503", "source=class -> FAILEDPRECONDITION(9)", `name="MaintenanceError"`} {
		if !strings.Contains(exp, sub) {
			t.Fatalf("Explain missing %q:\n%s", sub, exp)
		}
	}
}

func TestConcurrency_MapperStatus(t *testing.T) {
	m, err := New(WithHTTPOverride("MaintenanceError", 503))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2000; j++ {
				_ = m.Status("MaintenanceError", 400)
				_ = m.Status("ValidationError", 422)
				_ = m.Status("GeneralError", 500)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkMapperStatus_Default(t *testing.B) {
	m, _ := New()
	t.ReportAllocs()
	for i := 0; i < t.N; i++ {
		_ = m.Status("ValidationError", 422)
	}
}

func BenchmarkMapperStatus_Override(t *testing.B) {
	m, _ := New(
		WithHTTPOverride("MaintenanceError", 503),
		WithGRPCOverride("MaintenanceError", int(codes.Unavailable)),
	)
	t.ReportAllocs()
	for i := 0; i < t.N; i++ {
		_ = m.Status("MaintenanceError", 400)
	}
}

// Ensure mapper implements apis.Mapper
func TestMapper_InterfaceSatisfaction(t *testing.T) {
	var _ apis.Mapper = (*mapper)(nil)
}
