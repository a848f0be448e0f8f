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
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"
)

var update = flag.Bool("update", false, "rewrite testdata/explain.golden")

// explainCases covers every resolution source once.
var explainCases = []struct {
	name   string
	status int
}{
	{"ValidationError", 422},  // status / default
	{"MaintenanceError", 400}, // override / override
	{"TeapotError", 418},      // status / class
	{"ApplicationError", 200}, // fallback / fallback
}

// go test ./mapper -run Explain_Golden -update
func TestExplain_Golden(t *testing.T) {
	m, err := New(
		WithHTTPOverride("MaintenanceError", 503),
		WithGRPCOverride("MaintenanceError", int(codes.Unavailable)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	parts := make([]string, 0, len(explainCases))
	for _, c := range explainCases {
		parts = append(parts, m.Explain(c.name, c.status))
	}
	got := strings.Join(parts, "\n---\n") + "\n"

	path := filepath.Join("testdata", "explain.golden")
	if *update {
		if err := os.WriteFile(path, []byte(got), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v (run with -update to create)", path, err)
	}
	if strings.TrimRight(string(want), "\r\n") != strings.TrimRight(got, "\r\n") {
		t.Fatalf("Explain output changed.\n--- want ---\n%s\n--- got ---\n%s", want, got)
	}
}
