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

package stack

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"
	"time"

	pkgerrors "github.com/pkg/errors"
)

func TestCapture_StartsAtCaller(t *testing.T) {
	tr := Capture(0)
	if len(tr) == 0 {
		t.Fatal("Capture returned no frames")
	}
	if !strings.HasSuffix(tr[0].Function, "TestCapture_StartsAtCaller") {
		t.Fatalf("first frame = %q, want the test function", tr[0].Function)
	}
	if !strings.HasSuffix(tr[0].File, "stack_test.go") || tr[0].Line == 0 {
		t.Fatalf("unexpected frame location: %s", tr[0])
	}
	if len(tr) > MaxDepth {
		t.Fatalf("trace deeper than MaxDepth: %d", len(tr))
	}
}

func reportFromHelper() Trace { return Capture(1) }

func TestCapture_Skip(t *testing.T) {
	tr := reportFromHelper()
	if len(tr) == 0 {
		t.Fatal("no frames")
	}
	if !strings.HasSuffix(tr[0].Function, "TestCapture_Skip") {
		t.Fatalf("skip=1 must start at the helper's caller, got %q", tr[0].Function)
	}
}

func TestFromError_PkgErrors(t *testing.T) {
	err := pkgerrors.New("boom")
	tr := FromError(err)
	if len(tr) == 0 {
		t.Fatal("expected frames from pkg/errors")
	}
	if !strings.HasSuffix(tr[0].Function, "TestFromError_PkgErrors") {
		t.Fatalf("first frame = %q", tr[0].Function)
	}
}

func TestFromError_DeepestWins(t *testing.T) {
	root := originError()
	wrapped := fmt.Errorf("layer: %w", pkgerrors.WithStack(root))

	tr := FromError(wrapped)
	if len(tr) == 0 {
		t.Fatal("expected frames")
	}
	if !strings.HasSuffix(tr[0].Function, "originError") {
		t.Fatalf("deepest frames must win, got %q", tr[0].Function)
	}
}

func originError() error { return pkgerrors.New("origin") }

type pcError struct{ pcs []uintptr }

func (e pcError) Error() string      { return "pc" }
func (e pcError) Callers() []uintptr { return e.pcs }

func TestFromError_RawCallers(t *testing.T) {
	pcs := make([]uintptr, 8)
	n := runtime.Callers(1, pcs)
	tr := FromError(pcError{pcs: pcs[:n]})
	if len(tr) == 0 || !strings.HasSuffix(tr[0].Function, "TestFromError_RawCallers") {
		t.Fatalf("unexpected trace: %v", tr)
	}
}

func TestFromError_NoFrames(t *testing.T) {
	if tr := FromError(nil); tr != nil {
		t.Fatalf("FromError(nil) = %v", tr)
	}
	if tr := FromError(errors.New("plain")); tr != nil {
		t.Fatalf("plain errors carry no frames, got %v", tr)
	}
}

func TestTrace_TopAndStrings(t *testing.T) {
	tr := Trace{
		{Function: "a.f", File: "a.go", Line: 1},
		{Function: "b.g", File: "b.go", Line: 2},
	}
	if got := tr.Top(1); len(got) != 1 || got[0].Function != "a.f" {
		t.Fatalf("Top(1) = %v", got)
	}
	if got := tr.Top(5); len(got) != 2 {
		t.Fatalf("Top(5) = %v", got)
	}
	s := tr.Strings()
	if len(s) != 2 || s[1] != "b.g (b.go:2)" {
		t.Fatalf("Strings() = %v", s)
	}
	if Trace(nil).Strings() != nil {
		t.Fatal("empty trace must render nil")
	}
}

// loopError unwraps to itself.
type loopError struct{}

func (e *loopError) Error() string { return "loop" }
func (e *loopError) Unwrap() error { return e }

func TestFromError_CyclicChainTerminates(t *testing.T) {
	done := make(chan Trace, 1)
	go func() { done <- FromError(&loopError{}) }()
	select {
	case tr := <-done:
		if tr != nil {
			t.Fatalf("unexpected frames: %v", tr)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("FromError did not return on a cyclic chain")
	}
}
