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

// Package recommender chooses which recipe to cook from what is in stock.
//
// # Selection
//
// Each recipe is checked requirement by requirement against stock with a
// matcher.Matcher; the first requirement with no fresh, sufficient stock
// disqualifies the recipe. Among qualified recipes, taken in input order,
// the first is the initial best and each later recipe replaces it when:
//
//   - walking both recipes' distinct matched stock from the soonest expiry,
//     the challenger's entry expires earlier at the first differing position
//   - or the two agree all the way and the best runs out of entries first
//
// Otherwise the best is kept, including when both run out together. With
// no stock, no recipes, or nothing qualified the result is "Order Takeout".
//
// # Usage
//
//	name := recommender.SelectRecipe(stock, recipes, ingredient.Today())
//
// With options and a full report:
//
//	r := recommender.New(
//	    recommender.WithStrictUnits(true),
//	    recommender.WithVersion(version),
//	)
//	rec, err := r.Recommend(ctx, stock, recipes, on)
//	if err != nil {
//	    return err // context canceled
//	}
//	fmt.Println(rec.Recipe, rec.Fallback)
//
// The evaluation day is always a parameter, never read from the clock here.
//
// # Metrics
//
//   - pantry_recommend_duration_seconds
//   - pantry_recommend_total{result="recipe|fallback"}
//   - pantry_recipes_evaluated_total{outcome="qualified|disqualified"}
package recommender
