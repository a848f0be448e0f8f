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

	pkgerrors "github.com/pkg/errors"
)

// MaxDepth bounds the number of frames recorded by Capture and the number of
// Unwrap links followed by FromError.
const MaxDepth = 32

// Frame is a single resolved call site.
type Frame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

// String renders the frame as "function (file:line)".
func (f Frame) String() string {
	return fmt.Sprintf("%s (%s:%d)", f.Function, f.File, f.Line)
}

// Trace is an ordered sequence of frames, innermost call first.
type Trace []Frame

// Strings renders every frame with Frame.String.
func (t Trace) Strings() []string {
	if len(t) == 0 {
		return nil
	}
	out := make([]string, len(t))
	for i, f := range t {
		out[i] = f.String()
	}
	return out
}

// Top returns at most n innermost frames. The result shares memory with t.
func (t Trace) Top(n int) Trace {
	if n < 0 || len(t) <= n {
		return t
	}
	return t[:n]
}

// Capture records the stack of the calling goroutine.
//
// skip is the number of frames to omit above the caller of Capture:
// Capture(0) starts at the function that called Capture, Capture(1) at its
// caller, and so on.
func Capture(skip int) Trace {
	pcs := make([]uintptr, MaxDepth)
	// +2 drops runtime.Callers and Capture itself.
	n := runtime.Callers(skip+2, pcs)
	return FromPCs(pcs[:n])
}

// FromPCs resolves raw program counters as returned by runtime.Callers.
// It returns nil when nothing could be resolved.
func FromPCs(pcs []uintptr) Trace {
	if len(pcs) == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs)
	out := make(Trace, 0, len(pcs))
	for {
		f, more := frames.Next()
		if f.Function != "" || f.File != "" {
			out = append(out, Frame{Function: f.Function, File: f.File, Line: f.Line})
		}
		if !more {
			break
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// pkgStackTracer is implemented by errors created with github.com/pkg/errors.
type pkgStackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// callersError is implemented by errors that keep raw program counters.
type callersError interface {
	Callers() []uintptr
}

// traceError is implemented by errors that already hold a resolved Trace.
type traceError interface {
	Stack() Trace
}

// FromError extracts the frames captured by err or by any error it wraps.
//
// The single-error Unwrap chain is walked and the deepest error carrying
// frames wins, since that is where the failure originated. At most MaxDepth
// links are inspected, so a cyclic Unwrap terminates. FromError returns nil
// for nil errors and for chains that captured nothing.
func FromError(err error) Trace {
	var found Trace
	for e, i := err, 0; e != nil && i < MaxDepth; e, i = errors.Unwrap(e), i+1 {
		if t := framesOf(e); len(t) > 0 {
			found = t
		}
	}
	return found
}

func framesOf(err error) Trace {
	switch x := err.(type) {
	case traceError:
		return x.Stack()
	case pkgStackTracer:
		st := x.StackTrace()
		if len(st) == 0 {
			return nil
		}
		pcs := make([]uintptr, len(st))
		for i, f := range st {
			pcs[i] = uintptr(f)
		}
		return FromPCs(pcs)
	case callersError:
		return FromPCs(x.Callers())
	}
	return nil
}
