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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// defaultGRPC defines the library's built-in gRPC mappings for record
// statuses. Records classify failures with HTTP-flavored statuses, so this
// table is the usual HTTP -> gRPC correspondence. As with everything else,
// callers may override it at the transport edge.
var defaultGRPC = map[int]codes.Code{
	// 4xx: client, protocol and resource issues.
	http.StatusBadRequest:          codes.InvalidArgument,    // Malformed input or contract violation.
	http.StatusUnauthorized:        codes.Unauthenticated,    // Caller must authenticate.
	http.StatusForbidden:           codes.PermissionDenied,   // Authenticated but not allowed.
	http.StatusNotFound:            codes.NotFound,           // Target does not exist (or is not visible).
	http.StatusRequestTimeout:      codes.DeadlineExceeded,   // Client did not finish in time.
	http.StatusConflict:            codes.Aborted,            // Concurrent modification.
	http.StatusGone:                codes.NotFound,           // gRPC has no 410; NotFound is the closest practical choice.
	http.StatusPreconditionFailed:  codes.FailedPrecondition, // If-Match / preconditions failed.
	http.StatusUnprocessableEntity: codes.InvalidArgument,    // Validation failures.
	http.StatusTooEarly:            codes.FailedPrecondition, // Request made before allowed time.
	http.StatusTooManyRequests:     codes.ResourceExhausted,  // Rate limit or quota hit.
	499:                            codes.Canceled,           // nginx-style "client closed request".

	// 5xx: server and dependency issues.
	http.StatusInternalServerError: codes.Internal,
	http.StatusNotImplemented:      codes.Unimplemented,
	http.StatusBadGateway:          codes.Unavailable,
	http.StatusServiceUnavailable:  codes.Unavailable,
	http.StatusGatewayTimeout:      codes.DeadlineExceeded,
}

// Class-level defaults for statuses missing from defaultGRPC.
const (
	clientClassGRPC = codes.FailedPrecondition
	serverClassGRPC = codes.Internal
)
