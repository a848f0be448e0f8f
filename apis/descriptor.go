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

package apis

import "log/slog"

// ErrorDescriptor is a flat, server-side description of a failure.
//
// Unlike ErrorView it is NOT restricted to public attributes: it carries the
// cause chain and the captured frames, and it is intended for structured
// logging, tracing, or message bus propagation inside the trust boundary.
// Never send a descriptor to a client.
type ErrorDescriptor struct {
	// Name is the record category, e.g. "GeneralError".
	Name string `json:"name"`

	// Message is the record message.
	Message string `json:"message,omitempty"`

	// Status is the record's own classification status.
	Status int `json:"status"`

	// HTTPStatus is the resolved HTTP status. A value of 0 means "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the resolved gRPC code as integer. A value of 0 means
	// "not resolved" (or OK, which is never produced for a failure).
	GRPCCode int `json:"grpc_code,omitempty"`

	// Causes lists the messages of the cause chain, immediate cause first.
	Causes []string `json:"causes,omitempty"`

	// Stack lists formatted frames, innermost first.
	Stack []string `json:"stack,omitempty"`

	// Failures is the number of field failures for validation records.
	Failures int `json:"failures,omitempty"`
}

// LogValue implements slog.LogValuer so a descriptor can be passed to a
// logger as a single attribute.
func (d ErrorDescriptor) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("name", d.Name),
		slog.String("message", d.Message),
		slog.Int("status", d.Status),
	}
	if d.HTTPStatus != 0 {
		attrs = append(attrs, slog.Int("http_status", d.HTTPStatus))
	}
	if d.GRPCCode != 0 {
		attrs = append(attrs, slog.Int("grpc_code", d.GRPCCode))
	}
	if d.Failures > 0 {
		attrs = append(attrs, slog.Int("failures", d.Failures))
	}
	if len(d.Causes) > 0 {
		attrs = append(attrs, slog.Any("causes", d.Causes))
	}
	if len(d.Stack) > 0 {
		attrs = append(attrs, slog.Any("stack", d.Stack))
	}
	return slog.GroupValue(attrs...)
}
