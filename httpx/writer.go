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
	"encoding/json"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"dirpx.dev/apperr"
	"dirpx.dev/apperr/adapter"
	"dirpx.dev/apperr/apis"
)

// Writer turns records into HTTP error responses.
// It is safe for concurrent use.
type Writer struct {
	mapper  apis.Mapper
	log     *slog.Logger
	metrics *Metrics
}

// NewWriter returns a Writer resolving statuses through m.
func NewWriter(m apis.Mapper, opts ...Option) *Writer {
	if m == nil {
		panic("httpx: nil mapper")
	}
	w := &Writer{mapper: m, log: slog.Default()}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write sends rec as the response to r. The body holds only the record's
// public attributes; the cause chain and frames go to the log.
// A nil rec writes nothing.
func (w *Writer) Write(rw http.ResponseWriter, r *http.Request, rec *apperr.Record) {
	if rec == nil {
		return
	}
	st := w.mapper.Status(rec.Name(), rec.Status())

	body, err := json.Marshal(rec)
	if err != nil {
		// Publics are strings, ints and field failures; this only fails on
		// an unmarshalable FieldFailure.Value.
		w.log.Error("encode error response", slog.Any("err", err))
		body = []byte(`{"name":"` + apperr.NameErrorHandler + `","message":"` + apperr.ErrorHandlerMessage + `","status":500}`)
		st.HTTP = http.StatusInternalServerError
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.Header().Set("X-Content-Type-Options", "nosniff")
	rw.WriteHeader(st.HTTP)
	_, _ = rw.Write(body)

	level := slog.LevelWarn
	if st.HTTP >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	w.log.LogAttrs(r.Context(), level, "request failed",
		slog.String("req_id", chimw.GetReqID(r.Context())),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("err", adapter.ToDescriptor(rec, st)),
	)
	w.metrics.observe(rec.Name(), st.HTTP)
}

// Continuation returns the continuation that writes a record as the
// response to r.
func (w *Writer) Continuation(rw http.ResponseWriter, r *http.Request) apperr.Continuation {
	return func(rec *apperr.Record) { w.Write(rw, r, rec) }
}
