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
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
)

// freezeHTTPOverrides makes an immutable copy of the HTTP overrides map.
// Used when finalizing the mapper so later mutations to the builder
// cannot affect the mapper.
func freezeHTTPOverrides(src map[string]int) map[string]int {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeGRPC makes an immutable copy of a builder-style gRPC map,
// converting int values into typed gRPC codes.
func freezeGRPC[K comparable](src map[K]int) map[K]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[K]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}

// validHTTP reports whether v is an HTTP status usable for a failure.
func validHTTP(v int) bool { return v >= 400 && v <= 599 }

// validGRPC reports whether v is a gRPC code usable for a failure.
// codes.OK is rejected; a failure must never be reported as success.
func validGRPC(v int) bool { return v > int(codes.OK) && v <= int(codes.Unauthenticated) }

// grpcLabel renders a gRPC code as "NAME(n)" for Explain output.
func grpcLabel(c codes.Code) string {
	return fmt.Sprintf("%s(%d)", strings.ToUpper(c.String()), int(c))
}
