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

package validation

import (
	"log/slog"

	"dirpx.dev/apperr"
)

// Option configures a Gateway.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used to report rejected objects (DEBUG) and
// engine failures (ERROR). Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Gateway turns engine verdicts into apperr records.
// A Gateway is safe for concurrent use if its Engine is.
type Gateway[S any] struct {
	engine Engine[S]
	log    *slog.Logger
}

// NewGateway wraps engine.
func NewGateway[S any](engine Engine[S], opts ...Option) *Gateway[S] {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Gateway[S]{engine: engine, log: o.logger}
}

// ValidateOrThrow validates object against schema. It returns nil when the
// engine reports success and the failure *apperr.Record otherwise.
func (g *Gateway[S]) ValidateOrThrow(object any, schema S) error {
	if rec := g.check(object, schema); rec != nil {
		return rec
	}
	return nil
}

// MustValidate is ValidateOrThrow that panics with the *apperr.Record
// instead of returning it. Use it inside apperr.Attempt, which forwards the
// record unchanged.
func (g *Gateway[S]) MustValidate(object any, schema S) {
	if rec := g.check(object, schema); rec != nil {
		panic(rec)
	}
}

// ValidateOrInvoke validates object against schema. On success it returns
// true and does not call next. Otherwise it calls next exactly once with the
// failure record and returns false. A nil next only reports the verdict.
func (g *Gateway[S]) ValidateOrInvoke(object any, schema S, next apperr.Continuation) bool {
	rec := g.check(object, schema)
	if rec == nil {
		return true
	}
	if next != nil {
		next(rec)
	}
	return false
}

// check runs the engine. Field failures become a KindValidation record;
// an engine error becomes a GeneralError record caused by it.
func (g *Gateway[S]) check(object any, schema S) *apperr.Record {
	res, err := g.engine.Validate(object, schema)
	if err != nil {
		g.log.Error("validation engine failed", slog.Any("err", err))
		return apperr.New(
			apperr.WithNameOption(apperr.NameGeneral),
			apperr.WithMessageOption(apperr.GeneralMessage),
			apperr.WithStatusOption(apperr.GeneralStatus),
		).WithCause(err).Build()
	}
	if res.IsValid() {
		return nil
	}
	failures := res.Failures()
	g.log.Debug("object rejected by schema", slog.Int("failures", len(failures)))
	return apperr.NewValidation(failures...)
}
