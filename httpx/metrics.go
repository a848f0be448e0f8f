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

package httpx

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts failures written by a Writer, labeled by record name and
// HTTP status.
type Metrics struct {
	failures *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered. Registering twice with the same reg panics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		failures: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "apperr",
				Name:      "http_failures_total",
				Help:      "Total number of failure responses written, by record name and HTTP status",
			},
			[]string{"name", "status"},
		),
	}
}

func (m *Metrics) observe(name string, status int) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(name, strconv.Itoa(status)).Inc()
}
