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

package httpx

import (
	"net/http"

	"dirpx.dev/apperr"
)

// HandlerFunc is an http.HandlerFunc that may fail.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// Handle adapts fn to http.Handler. fn runs under apperr.Attempt: a returned
// error or a panic is normalized into one record and written by w.
func (w *Writer) Handle(fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		w.attempt(rw, r, func() error { return fn(rw, r) })
	})
}

// Recover is middleware that converts panics raised by next into error
// responses. http.ErrAbortHandler is re-raised so the server can abort the
// connection.
func (w *Writer) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		abort := false
		w.attempt(rw, r, func() error {
			defer func() {
				if p := recover(); p != nil {
					if p == http.ErrAbortHandler {
						abort = true
						return
					}
					panic(p)
				}
			}()
			next.ServeHTTP(rw, r)
			return nil
		})
		if abort {
			panic(http.ErrAbortHandler)
		}
	})
}

// attempt runs perform and makes sure a failure produces exactly one
// response. Attempt skips the continuation for unclassifiable panics, so the
// terminal record it returns is written here unless the continuation ran.
func (w *Writer) attempt(rw http.ResponseWriter, r *http.Request, perform func() error) {
	delivered := false
	next := func(rec *apperr.Record) {
		delivered = true
		w.Write(rw, r, rec)
	}
	if rec := apperr.AttemptFunc(next, perform); rec != nil && !delivered {
		w.Write(rw, r, rec)
	}
}
