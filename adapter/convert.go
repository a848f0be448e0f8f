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

package adapter

import (
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/apperr"
	"dirpx.dev/apperr/apis"
)

// DescriptorFrames bounds how many frames ToDescriptor copies from a record.
const DescriptorFrames = 10

// ToDescriptor converts a record together with its resolved transport status
// into a server-side ErrorDescriptor.
//
// The descriptor is intended for structured logging and tracing. It carries
// the cause chain and the top captured frames, so it must never be sent to
// clients; use ToView for that.
func ToDescriptor(r *apperr.Record, st apis.Status) apis.ErrorDescriptor {
	if r == nil {
		return apis.ErrorDescriptor{}
	}
	d := apis.ErrorDescriptor{
		Name:       r.Name(),
		Message:    r.Message(),
		Status:     r.Status(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Stack:      r.Stack().Top(DescriptorFrames).Strings(),
		Failures:   len(r.ValidationErrors()),
	}
	for _, c := range r.Causes() {
		d.Causes = append(d.Causes, c.Error())
	}
	return d
}

// ToView converts a record into its public ErrorView: exactly the attributes
// listed by the record's Publics, in that order. A nil record yields an
// empty view.
func ToView(r *apperr.Record) apis.ErrorView {
	if r == nil {
		return apis.ErrorView{}
	}
	return r.View()
}

// ToStruct converts a record's public view into a protobuf Struct, suitable
// for gRPC status details. The view is round-tripped through JSON so nested
// values (field failures) become plain Struct/ListValue trees.
//
// The Struct holds exactly the public attributes. Struct fields are
// unordered on the wire; the Publics order only survives in JSON bodies.
func ToStruct(r *apperr.Record) (*structpb.Struct, error) {
	if r == nil {
		return nil, nil
	}
	b, err := ToView(r).MarshalJSON()
	if err != nil {
		return nil, err
	}
	st := &structpb.Struct{}
	if err := protojson.Unmarshal(b, st); err != nil {
		return nil, err
	}
	return st, nil
}
