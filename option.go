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

// Option is a functional option applied by New. It always takes a *Builder
// and returns a (possibly the same) *Builder.
type Option func(*Builder) *Builder

// WithMessageOption pre-sets the message.
// Intended to be used with New(...).
func WithMessageOption(msg string) Option {
	return func(b *Builder) *Builder {
		return b.WithMessage(msg)
	}
}

// WithStatusOption replaces the DefaultStatus.
// Intended to be used with New(...).
func WithStatusOption(status int) Option {
	return func(b *Builder) *Builder {
		return b.WithStatus(status)
	}
}

// WithNameOption pre-sets the name.
// Intended to be used with New(...).
func WithNameOption(name string) Option {
	return func(b *Builder) *Builder {
		return b.WithName(name)
	}
}

// WithCauseOption attaches a cause on construction, with the same inference
// rules as Builder.WithCause.
// Intended to be used with New(...).
func WithCauseOption(err error) Option {
	return func(b *Builder) *Builder {
		return b.WithCause(err)
	}
}
