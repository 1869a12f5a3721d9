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
	"github.com/pantrykit/pantry/pkg/header"
	"github.com/pantrykit/pantry/pkg/ingredient"
)

// Recommendation is the outcome of one selection run.
type Recommendation struct {
	header.Header `json:",inline" yaml:",inline"`

	// Date is the evaluation day, dd/MM/yyyy.
	Date string `json:"date" yaml:"date"`

	// Recipe is the chosen recipe name or the fallback.
	Recipe string `json:"recipe" yaml:"recipe"`

	// Fallback is true when no recipe could be cooked.
	Fallback bool `json:"fallback" yaml:"fallback"`

	// Matched lists the stock used by the chosen recipe, one entry per requirement.
	Matched []ingredient.Ingredient `json:"matched,omitempty" yaml:"matched,omitempty"`

	// Evaluations has one entry per input recipe, in input order.
	Evaluations []Evaluation `json:"evaluations,omitempty" yaml:"evaluations,omitempty"`
}

// String returns the chosen recipe name.
func (r *Recommendation) String() string {
	return r.Recipe
}

// Evaluation records whether one recipe could be cooked.
type Evaluation struct {
	Recipe    string `json:"recipe" yaml:"recipe"`
	Qualified bool   `json:"qualified" yaml:"qualified"`

	// Missing is the first requirement nothing in stock satisfied.
	Missing *ingredient.Ingredient `json:"missing,omitempty" yaml:"missing,omitempty"`

	// DidYouMean is a stock name close to the missing requirement's name.
	DidYouMean string `json:"didYouMean,omitempty" yaml:"didYouMean,omitempty"`
}
