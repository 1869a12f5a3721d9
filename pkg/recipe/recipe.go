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

package recipe

import (
	"slices"
	"strings"

	"github.com/pantrykit/pantry/pkg/ingredient"
)

// Recipe is a named, ordered list of ingredient requirements.
// Requirements carry no expiry.
type Recipe struct {
	Name        string                  `json:"name" yaml:"name"`
	Ingredients []ingredient.Ingredient `json:"ingredients" yaml:"ingredients"`
}

// New returns a recipe with the given requirements in order.
func New(name string, requirements ...ingredient.Ingredient) Recipe {
	return Recipe{Name: name, Ingredients: requirements}
}

// Equal reports whether both recipes have the same name and the same
// requirements in the same order.
func (r Recipe) Equal(o Recipe) bool {
	return r.Name == o.Name && slices.Equal(r.Ingredients, o.Ingredients)
}

func (r Recipe) String() string {
	parts := make([]string, 0, len(r.Ingredients))
	for _, req := range r.Ingredients {
		parts = append(parts, req.String())
	}
	return r.Name + " [" + strings.Join(parts, ", ") + "]"
}
