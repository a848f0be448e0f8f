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
	"dirpx.dev/apperr/stack"
)

// Continuation receives the single record describing a failure and performs
// whatever side effect is appropriate, typically writing a transport
// response. It must not be invoked with nil.
type Continuation func(*Record)

// Attempt runs perform and guarantees that any failure reaches next as
// exactly one Record.
//
// Failure shapes and their records:
//
//   - a *Record returned or panicked: forwarded unchanged;
//   - any other error returned or panicked: NameGeneral, GeneralMessage,
//     GeneralStatus, with the error as cause and its captured frames;
//   - a string panicked: NameGeneral, the string as message, GeneralStatus,
//     without cause or frames.
//
// On success Attempt returns perform's value and a nil record, and next is
// never called. On failure it returns the zero value and the record it
// delivered to next.
//
// If next itself panics, or perform panicked with a value of any other type,
// Attempt returns a terminal NameErrorHandler record directly instead of
// calling next (again): a systematically broken continuation must not be
// re-entered.
//
// Attempt blocks until perform returns; it imposes no timeout.
func Attempt[T any](next Continuation, perform func() (T, error)) (T, *Record) {
	v, failure, failed := run(perform)
	if !failed {
		return v, nil
	}
	var zero T
	rec, ok := normalize(failure)
	if !ok {
		return zero, handlerFailure()
	}
	return zero, deliver(next, rec)
}

// AttemptFunc is Attempt for operations that produce no value.
func AttemptFunc(next Continuation, perform func() error) *Record {
	_, rec := Attempt(next, func() (struct{}, error) {
		return struct{}{}, perform()
	})
	return rec
}

// Normalize converts a failure value into a record using the same rules as
// Attempt. nil yields nil. Values that are neither a *Record, an error nor a
// string yield the terminal NameErrorHandler record.
func Normalize(failure any) *Record {
	if failure == nil {
		return nil
	}
	rec, ok := normalize(failure)
	if !ok {
		return handlerFailure()
	}
	return rec
}

func run[T any](perform func() (T, error)) (v T, failure any, failed bool) {
	defer func() {
		// Since Go 1.21 panic(nil) surfaces as *runtime.PanicNilError, so a
		// nil recover() means no panic.
		if p := recover(); p != nil {
			var zero T
			v, failure, failed = zero, p, true
		}
	}()
	v, err := perform()
	if err != nil {
		var zero T
		return zero, err, true
	}
	return v, nil, false
}

func normalize(failure any) (*Record, bool) {
	switch x := failure.(type) {
	case *Record:
		if x == nil {
			return nil, false
		}
		return x, true
	case error:
		return &Record{
			kind:    KindGeneral,
			name:    NameGeneral,
			message: GeneralMessage,
			status:  GeneralStatus,
			cause:   x,
			stack:   stack.FromError(x),
		}, true
	case string:
		return &Record{
			kind:    KindGeneral,
			name:    NameGeneral,
			message: x,
			status:  GeneralStatus,
		}, true
	}
	return nil, false
}

// deliver hands rec to next and returns it, or returns the terminal handler
// record when next panics.
func deliver(next Continuation, rec *Record) (out *Record) {
	defer func() {
		if p := recover(); p != nil {
			out = handlerFailure()
		}
	}()
	if next != nil {
		next(rec)
	}
	return rec
}

func handlerFailure() *Record {
	return &Record{
		kind:    KindGeneral,
		name:    NameErrorHandler,
		message: ErrorHandlerMessage,
		status:  GeneralStatus,
	}
}
