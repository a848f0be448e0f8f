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

// builder collects options before New validates and freezes them.
// gRPC codes are kept as int until then so out-of-range user input can be
// reported instead of silently converted.
type builder struct {
	grpcDefaults map[int]int    // record status -> gRPC code
	httpOverride map[string]int // record name -> HTTP status
	grpcOverride map[string]int // record name -> gRPC code

	fallbackHTTP int
	fallbackGRPC codes.Code
}

func newBuilder() *builder {
	return &builder{
		grpcDefaults: make(map[int]int, len(defaultGRPC)),
		httpOverride: make(map[string]int),
		grpcOverride: make(map[string]int),
		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}
