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

// Package stack captures call-site frames for diagnostics.
//
// Two sources of frames are supported:
//
//   - Capture records the current goroutine's call stack, used by the
//     apperr builder to remember where a failure was first reported;
//   - FromError extracts frames that a native error captured when it was
//     created (github.com/pkg/errors style StackTrace, raw program counters,
//     or an already-resolved Trace).
//
// Frames are diagnostic data only. They are never part of the public surface
// of an error record and must not be serialized to clients.
package stack
