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

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"strings"
	"testing"

	pkgerrors "github.com/pkg/errors"

	"dirpx.dev/apperr/stack"
)

type notFoundError struct{ id string }

func (e *notFoundError) Error() string { return "no row for " + e.id }

func TestNew_Defaults(t *testing.T) {
	rec := New().Build()

	if rec.Status() != DefaultStatus || rec.Status() != 400 {
		t.Fatalf("status = %d, want 400", rec.Status())
	}
	if rec.Name() != KindGeneral.DefaultName() {
		t.Fatalf("name = %q, want %q", rec.Name(), KindGeneral.DefaultName())
	}
	if rec.Message() != "" {
		t.Fatalf("message = %q, want empty", rec.Message())
	}
	if rec.Cause() != nil {
		t.Fatal("cause must be absent")
	}
	if rec.Kind() != KindGeneral {
		t.Fatalf("kind = %v", rec.Kind())
	}
}

func TestNew_CapturesCallSite(t *testing.T) {
	rec := New().Build()
	st := rec.Stack()
	if len(st) == 0 {
		t.Fatal("builder must capture the creation call site")
	}
	if !strings.HasSuffix(st[0].Function, "TestNew_CapturesCallSite") {
		t.Fatalf("first frame = %q, want the caller of New", st[0].Function)
	}
}

func TestNew_Options(t *testing.T) {
	rec := New(WithMessageOption("quota exhausted"), WithStatusOption(http.StatusTooManyRequests)).
		WithName("QuotaError").
		Build()

	if rec.Message() != "quota exhausted" || rec.Status() != 429 || rec.Name() != "QuotaError" {
		t.Fatalf("unexpected record: %v", rec)
	}
}

func TestSetters_LastWriteWins(t *testing.T) {
	rec := New().
		WithName("A").WithName("B").
		WithMessage("m1").WithMessage("m2").
		WithStatus(401).WithStatus(403).
		Build()

	if rec.Name() != "B" || rec.Message() != "m2" || rec.Status() != 403 {
		t.Fatalf("setters must overwrite: %v", rec)
	}
}

func TestWithCause_ExplicitMessageWins(t *testing.T) {
	native := pkgerrors.New("B")

	rec := New().WithMessage("A").WithCause(native).Build()

	if rec.Message() != "A" {
		t.Fatalf("message = %q, explicit setting must win", rec.Message())
	}
	if rec.Name() != "fundamental" {
		t.Fatalf("name = %q, want the native error's type name", rec.Name())
	}
	if rec.Cause() != native {
		t.Fatal("cause must be the native error")
	}
	want := stack.FromError(native)
	got := rec.Stack()
	if len(got) == 0 || len(got) != len(want) || got[0] != want[0] {
		t.Fatalf("stack must be backfilled from the native error\n got: %v\nwant: %v", got, want)
	}
}

func TestWithCause_InferenceIsFirstWriteWins(t *testing.T) {
	first := &notFoundError{id: "42"}
	second := errors.New("second")

	rec := New().WithCause(first).From(second).Build()

	if rec.Name() != "notFoundError" {
		t.Fatalf("name = %q", rec.Name())
	}
	if rec.Message() != "no row for 42" {
		t.Fatalf("message = %q", rec.Message())
	}
	if rec.Cause() != first {
		t.Fatal("later inference must not replace the cause")
	}
}

func TestWithCause_SetterAfterInferenceOverwrites(t *testing.T) {
	rec := New().WithCause(errors.New("low level")).WithMessage("high level").WithName("StoreError").Build()
	if rec.Message() != "high level" || rec.Name() != "StoreError" {
		t.Fatalf("explicit setters overwrite inferred values: %v", rec)
	}
}

func TestWithCause_RecordIsNotInferred(t *testing.T) {
	inner := New().WithName("Inner").WithMessage("inner").WithStatus(404).Build()

	rec := New().WithCause(inner).Build()

	if rec.Cause() != inner {
		t.Fatal("record cause must be kept")
	}
	if rec.Name() != DefaultName || rec.Message() != "" {
		t.Fatalf("records must not be used for inference: %v", rec)
	}
	if !errors.Is(rec, inner) {
		t.Fatal("errors.Is must walk the cause chain")
	}
}

func TestWithCause_NativeWithoutFramesKeepsCreationStack(t *testing.T) {
	rec := New().WithCause(errors.New("plain")).Build()
	st := rec.Stack()
	if len(st) == 0 || !strings.HasSuffix(st[0].Function, "TestWithCause_NativeWithoutFramesKeepsCreationStack") {
		t.Fatalf("creation stack must survive a frameless cause: %v", st)
	}
}

func TestWithStack_BeatsInference(t *testing.T) {
	explicit := stack.Trace{{Function: "svc.Handle", File: "svc.go", Line: 7}}
	rec := New().WithStack(explicit).WithCause(pkgerrors.New("x")).Build()
	if st := rec.Stack(); len(st) != 1 || st[0] != explicit[0] {
		t.Fatalf("explicit stack must win: %v", st)
	}
}

func TestWithCause_Nil(t *testing.T) {
	rec := New().WithCause(nil).Build()
	if rec.Cause() != nil || rec.Name() != DefaultName {
		t.Fatalf("nil cause must be ignored: %v", rec)
	}
}

func TestFrom_StandardLibraryType(t *testing.T) {
	_, err := fs.Stat(emptyFS{}, "missing")
	rec := New().From(err).Build()
	if rec.Name() != "PathError" {
		t.Fatalf("name = %q, want PathError", rec.Name())
	}
}

type emptyFS struct{}

func (emptyFS) Open(name string) (fs.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

func TestBuildAs_Validation(t *testing.T) {
	rec := New().BuildAs(KindValidation)
	if rec.Name() != NameValidation {
		t.Fatalf("name = %q", rec.Name())
	}
	if got := rec.ValidationErrors(); got == nil || len(got) != 0 {
		t.Fatalf("validation errors = %#v, want empty list", got)
	}
	if !contains(rec.Publics(), FieldValidationErrors) {
		t.Fatalf("publics = %v", rec.Publics())
	}
	if rec.Status() != ValidationStatus || rec.Message() != ValidationMessage {
		t.Fatalf("validation defaults not applied: %v", rec)
	}
	b, err := json.Marshal(rec)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"name":"ValidationError","message":"The provided entry could not be validated.","status":422,"validationErrors":[]}`
	if string(b) != want {
		t.Fatalf("json = %s", b)
	}
}

func TestBuildAs_ExplicitValuesBeatKindDefaults(t *testing.T) {
	rec := New(WithStatusOption(400), WithMessageOption("bad batch")).BuildAs(KindValidation)
	if rec.Status() != 400 || rec.Message() != "bad batch" {
		t.Fatalf("explicit values lost: %v", rec)
	}

	rec = New().WithCause(errors.New("row 3 invalid")).BuildAs(KindValidation)
	if rec.Message() != "row 3 invalid" || rec.Status() != ValidationStatus {
		t.Fatalf("inferred message or default status wrong: %v", rec)
	}
}

func TestBuildAs_UnknownKind(t *testing.T) {
	rec := New().BuildAs(Kind(200))
	if rec.Kind() != KindGeneral || rec.Name() != DefaultName {
		t.Fatalf("unknown kind must build a general record: %v", rec)
	}
}

func TestBuild_IsolatedFromBuilder(t *testing.T) {
	b := New().WithName("First")
	r1 := b.Build()
	b.WithName("Second").WithStatus(500)
	r2 := b.Build()

	if r1.Name() != "First" || r1.Status() != 400 {
		t.Fatalf("record mutated after build: %v", r1)
	}
	if r2.Name() != "Second" || r2.Status() != 500 {
		t.Fatalf("second build: %v", r2)
	}
}

func contains(ss []string, s string) bool {
	for _, x := range ss {
		if x == s {
			return true
		}
	}
	return false
}
