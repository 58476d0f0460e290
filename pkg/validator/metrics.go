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

package validator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	validationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "iodp_validations_total",
			Help: "Total number of table validations by status",
		},
		[]string{"status"},
	)

	violationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "iodp_violations_total",
			Help: "Total number of violations found by failure kind",
		},
		[]string{"kind"},
	)

	validationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "iodp_validation_duration_seconds",
			Help:    "Duration of table validations in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)
