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

// Package ingredient defines the value types shared by the matcher, the
// recommender, and the input adapters: Ingredient, Unit, and the calendar
// Date and optional Expiry used for freshness checks.
//
// Dates are calendar days. Freshness is judged per day, so an item whose
// use-by date equals the evaluation date is still usable:
//
//	bread := ingredient.New("bread", 2, ingredient.UnitSlices, ingredient.NewDate(2014, 4, 21))
//	bread.Expiry.ExpiredOn(ingredient.NewDate(2014, 4, 21)) // false
//	bread.Expiry.ExpiredOn(ingredient.NewDate(2014, 4, 22)) // true
//
// An Ingredient with no recorded expiry never expires.
package ingredient
