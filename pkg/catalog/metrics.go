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

package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	catalogBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "iodp_catalog_build_duration_seconds",
			Help:    "Duration of schema catalog construction in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	// Default catalog cache metrics
	catalogCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "iodp_catalog_cache_hits_total",
			Help: "Total number of default schema catalog cache hits",
		},
	)
	catalogCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "iodp_catalog_cache_misses_total",
			Help: "Total number of default schema catalog cache misses (initial loads)",
		},
	)

	schemaLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "iodp_catalog_schema_lookups_total",
			Help: "Total number of report schema lookups by result",
		},
		[]string{"result"},
	)
)
