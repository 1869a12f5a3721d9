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

package recommender

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pantry_recommend_duration_seconds",
			Help:    "Duration of recipe selection in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	recommendTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pantry_recommend_total",
			Help: "Total number of recommendations by result",
		},
		[]string{"result"},
	)

	recipesEvaluated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pantry_recipes_evaluated_total",
			Help: "Total number of recipes checked against stock by outcome",
		},
		[]string{"outcome"},
	)
)

const (
	resultRecipe   = "recipe"
	resultFallback = "fallback"

	outcomeQualified    = "qualified"
	outcomeDisqualified = "disqualified"
)
