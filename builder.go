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
	"reflect"
	"slices"

	"dirpx.dev/apperr/stack"
)

// Builder collects evidence about a failure before it becomes a Record.
//
// Setters overwrite unconditionally. Inference from a native error (From, or
// WithCause given a native error) only fills attributes that are still unset,
// so explicit settings always win, regardless of call order.
//
// A Builder is a local, mutable staging value: it is not safe for concurrent
// use. The Record produced by Build is immutable.
type Builder struct {
	name       string
	nameSet    bool
	message    string
	messageSet bool
	status     int
	statusSet  bool
	cause      error

	// stack holds the capture taken in New until something better is known.
	// stackSet reports whether it was set explicitly or inferred from a
	// native error; only then does inference leave it alone.
	stack    stack.Trace
	stackSet bool
}

// New creates a builder with status DefaultStatus, captures the caller's
// stack, and applies opts in order.
//
// Usage:
//
//	rec := apperr.New(
//	    apperr.WithMessageOption("quota exhausted"),
//	    apperr.WithStatusOption(http.StatusTooManyRequests),
//	).WithName("QuotaError").Build()
func New(opts ...Option) *Builder {
	b := &Builder{
		status: DefaultStatus,
		stack:  stack.Capture(1),
	}
	for _, opt := range opts {
		b = opt(b)
	}
	return b
}

// WithName sets the record name.
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	b.nameSet = true
	return b
}

// WithMessage sets the human-readable message.
func (b *Builder) WithMessage(msg string) *Builder {
	b.message = msg
	b.messageSet = true
	return b
}

// WithStatus sets the classification status.
func (b *Builder) WithStatus(status int) *Builder {
	b.status = status
	b.statusSet = true
	return b
}

// WithStack replaces the captured frames.
func (b *Builder) WithStack(t stack.Trace) *Builder {
	b.stack = slices.Clone(t)
	b.stackSet = true
	return b
}

// WithCause sets the cause. When err is a native error (not a *Record), the
// builder additionally infers unset attributes from it, as From does.
// A nil err is ignored.
func (b *Builder) WithCause(err error) *Builder {
	if err == nil {
		return b
	}
	b.cause = err
	if _, ok := err.(*Record); !ok {
		b.From(err)
	}
	return b
}

// From fills the attributes that are still unset from a native error:
//
//   - name from the error's concrete type (pointer indirection stripped);
//   - message from err.Error();
//   - cause from err itself;
//   - stack from the frames err captured, when it captured any.
//
// Already-set attributes are left untouched. A nil err is ignored.
func (b *Builder) From(err error) *Builder {
	if err == nil {
		return b
	}
	if !b.nameSet {
		b.name = typeName(err)
		b.nameSet = true
	}
	if !b.messageSet {
		b.message = err.Error()
		b.messageSet = true
	}
	if b.cause == nil {
		b.cause = err
	}
	if !b.stackSet {
		if t := stack.FromError(err); len(t) > 0 {
			b.stack = t
			b.stackSet = true
		}
	}
	return b
}

// Build finalizes a KindGeneral record.
func (b *Builder) Build() *Record {
	return b.BuildAs(KindGeneral)
}

// BuildAs finalizes a record of the requested kind. An unset name, message
// or status takes the kind's default (for KindValidation: NameValidation,
// ValidationMessage, ValidationStatus); unknown kinds build KindGeneral
// records.
//
// The builder may keep being used afterwards; the record does not share
// mutable state with it.
func (b *Builder) BuildAs(kind Kind) *Record {
	if !kind.valid() {
		kind = KindGeneral
	}
	def := kind.info()
	name, message, status := b.name, b.message, b.status
	if !b.nameSet {
		name = def.name
	}
	if !b.messageSet {
		message = def.message
	}
	if !b.statusSet {
		status = def.status
	}
	return &Record{
		kind:    kind,
		name:    name,
		message: message,
		status:  status,
		cause:   b.cause,
		stack:   slices.Clone(b.stack),
	}
}

// typeName reports the name of err's concrete type, e.g. "PathError" for
// *fs.PathError. Unnamed types fall back to their type literal.
func typeName(err error) string {
	t := reflect.TypeOf(err)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if n := t.Name(); n != "" {
		return n
	}
	return t.String()
}
