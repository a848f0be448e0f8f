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

// Package httpx writes apperr records as HTTP responses.
//
// A Writer resolves the response status through an apis.Mapper, writes the
// record's public attributes as a JSON body, and logs the full server-side
// descriptor (cause chain, frames) with the chi request id. Handle and
// Recover connect ordinary net/http handlers to apperr.Attempt so that
// returned errors and panics reach the Writer as exactly one record.
//
//	w := httpx.NewWriter(m, httpx.WithLogger(log), httpx.WithMetrics(httpx.NewMetrics(reg)))
//	r := chi.NewRouter()
//	r.Use(middleware.RequestID, w.Recover)
//	r.Method(http.MethodPost, "/todos", w.Handle(createTodo))
package httpx
