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

// Package recipe defines recipes and loads recipe catalogs.
//
// A catalog is a JSON array (or YAML list) of recipes:
//
//	[
//	  {
//	    "name": "grilled cheese on toast",
//	    "ingredients": [
//	      { "item": "bread", "amount": "2", "unit": "slices" },
//	      { "item": "cheese", "amount": "2", "unit": "slices" }
//	    ]
//	  }
//	]
//
// Amounts are integers written as strings; bare numbers are accepted.
// Every line needs an amount: a missing or null amount is an error.
// Units must be one of ingredient.SupportedUnits. An empty or null
// document is an empty catalog.
//
// Load reads a catalog from a file or URL and reports failures as
// INPUT_ERROR structured errors whose messages name the source:
//
//	File not found: recipes.json
//	Error reading recipe Json: recipes.json
//
// NewCatalog turns recipes back into a headed document for output.
package recipe
