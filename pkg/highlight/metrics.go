// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package highlight

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	exportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "iodp_highlight_exports_total",
			Help: "Total number of highlighted workbook exports by outcome",
		},
		[]string{"outcome"},
	)

	exportDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "iodp_highlight_export_duration_seconds",
			Help:    "Duration of highlighted workbook exports in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)
