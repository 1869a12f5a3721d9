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
	"maps"
	"slices"

	"github.com/pantrykit/pantry/pkg/ingredient"
)

// rank folds the qualified recipes in order; the first is the initial best
// and each later one replaces it only when preferred.
func rank(qualified []candidate) candidate {
	best := qualified[0]
	for _, challenger := range qualified[1:] {
		best = prefer(best, challenger)
	}
	return best
}

// prefer returns challenger when its distinct matched stock, walked from
// the soonest expiry, expires earlier than best's at the first differing
// position, or when best runs out first. Otherwise best is kept.
func prefer(best, challenger candidate) candidate {
	b := byExpiry(best.matches)
	c := byExpiry(challenger.matches)

	for i := 0; ; i++ {
		if i >= len(c) {
			return best
		}
		if i >= len(b) {
			return challenger
		}
		switch cmp := c[i].Expiry.Compare(b[i].Expiry); {
		case cmp < 0:
			return challenger
		case cmp > 0:
			return best
		}
	}
}

// byExpiry returns the distinct entries of matches, soonest expiry first.
// Entries are distinct by full value, so two requirements served by the
// same stock line count once.
func byExpiry(matches []ingredient.Ingredient) []ingredient.Ingredient {
	set := make(map[ingredient.Ingredient]struct{}, len(matches))
	for _, m := range matches {
		set[m] = struct{}{}
	}
	return slices.SortedFunc(maps.Keys(set), func(a, b ingredient.Ingredient) int {
		return a.Expiry.Compare(b.Expiry)
	})
}
