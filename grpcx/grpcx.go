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

package grpcx

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/apperr"
	"dirpx.dev/apperr/adapter"
	"dirpx.dev/apperr/apis"
)

// Option configures the interceptors.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger for failed calls. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// UnaryServerInterceptor returns an interceptor that converts handler
// failures into statuses resolved by m.
func UnaryServerInterceptor(m apis.Mapper, opts ...Option) grpc.UnaryServerInterceptor {
	o := newOptions(opts)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		var passthrough error
		var resp any
		err := o.run(ctx, m, info.FullMethod, func() error {
			var err error
			resp, err = handler(ctx, req)
			if hasStatus(err) {
				passthrough = err
				return nil
			}
			return err
		})
		if passthrough != nil {
			return nil, passthrough
		}
		if err != nil {
			return nil, err
		}
		return resp, nil
	}
}

// StreamServerInterceptor is the streaming counterpart of
// UnaryServerInterceptor.
func StreamServerInterceptor(m apis.Mapper, opts ...Option) grpc.StreamServerInterceptor {
	o := newOptions(opts)
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		var passthrough error
		err := o.run(ss.Context(), m, info.FullMethod, func() error {
			err := handler(srv, ss)
			if hasStatus(err) {
				passthrough = err
				return nil
			}
			return err
		})
		if passthrough != nil {
			return passthrough
		}
		return err
	}
}

// run executes perform under apperr.Attempt and returns the status error of
// the resulting record, or nil.
func (o options) run(ctx context.Context, m apis.Mapper, method string, perform func() error) error {
	delivered := false
	next := func(rec *apperr.Record) {
		delivered = true
		o.log(ctx, m, method, rec)
	}
	rec := apperr.AttemptFunc(next, perform)
	if rec == nil {
		return nil
	}
	if !delivered {
		o.log(ctx, m, method, rec)
	}
	return ToStatus(m, rec).Err()
}

func (o options) log(ctx context.Context, m apis.Mapper, method string, rec *apperr.Record) {
	st := m.Status(rec.Name(), rec.Status())
	level := slog.LevelWarn
	if st.HTTP >= 500 {
		level = slog.LevelError
	}
	o.logger.LogAttrs(ctx, level, "rpc failed",
		slog.String("method", method),
		slog.Any("err", adapter.ToDescriptor(rec, st)),
	)
}

// hasStatus reports whether err, or any error it wraps, carries a gRPC
// status.
func hasStatus(err error) bool {
	var se interface{ GRPCStatus() *status.Status }
	return errors.As(err, &se)
}

// ToStatus converts rec into a status: code from m, message from the record,
// and the public attributes as a structpb.Struct detail. If the detail
// cannot be built the status is returned without it.
func ToStatus(m apis.Mapper, rec *apperr.Record) *status.Status {
	st := status.New(m.GRPCStatus(rec.Name(), rec.Status()), rec.Message())
	detail, err := adapter.ToStruct(rec)
	if err != nil || detail == nil {
		return st
	}
	if with, err := st.WithDetails(detail); err == nil {
		return with
	}
	return st
}

// ExtractPublics returns the public attributes attached to a status error by
// the interceptors.
func ExtractPublics(err error) (*structpb.Struct, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := status.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if s, ok := d.(*structpb.Struct); ok {
			return s, true
		}
	}
	return nil, false
}

// RecordFromError rebuilds a record from the public attributes of a status
// error. The result has no cause and its frames are those of the caller.
func RecordFromError(err error) (*apperr.Record, bool) {
	pub, ok := ExtractPublics(err)
	if !ok {
		return nil, false
	}
	fields := pub.GetFields()
	name := fields[apperr.FieldName].GetStringValue()
	code := int(fields[apperr.FieldStatus].GetNumberValue())

	if v, ok := fields[apperr.FieldValidationErrors]; ok && name == apperr.NameValidation {
		b, err := protojson.Marshal(v)
		if err != nil {
			return nil, false
		}
		var failures []apperr.FieldFailure
		if err := json.Unmarshal(b, &failures); err != nil {
			return nil, false
		}
		return apperr.NewValidation(failures...), true
	}

	return apperr.New(
		apperr.WithNameOption(name),
		apperr.WithMessageOption(fields[apperr.FieldMessage].GetStringValue()),
		apperr.WithStatusOption(code),
	).Build(), true
}
