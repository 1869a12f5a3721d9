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

// Package cli implements the pantry command-line interface.
//
// # Commands
//
// The root command recommends a recipe:
//
//	pantry [--date dd/MM/yyyy] [--strict-units] [--format text|json|yaml|table] <fridge.csv> <recipes.json>
//
// It reads the fridge inventory (one name,quantity,unit,dd/MM/yyyy row per
// line) and the recipe catalog, then prints the recipe whose ingredients
// expire soonest. "Order Takeout" is printed when nothing can be cooked.
// The text format prints only the recipe name; the other formats write a
// full Recommendation document including per-recipe evaluations.
//
// catalog - Validate and normalize a recipe catalog:
//
//	pantry [--format yaml|json|table] catalog <recipes.json>
//
// serve - Run the HTTP API:
//
//	pantry serve [--port 8080]
//
// # Global Flags
//
//	--date          Evaluation day (default: today, or PANTRY_DATE)
//	--strict-units  Require stock and recipe units to match
//	--format, -t    Output format
//	--output, -o    Output file path (default: stdout)
//	--log-level     debug, info, warn or error (default: LOG_LEVEL or info)
//
// Flags override settings loaded from the environment and an optional .env
// file (see package config).
//
// # Exit Codes
//
//	0  success, including the "Order Takeout" fallback
//	1  input error, such as a missing file or an unparseable date
//	2  wrong number of arguments
//
// Error messages are printed to stderr, for example:
//
//	File not found: fridge.csv
//	Error parsing date: unparseable date "31/02/2014": expected dd/MM/yyyy
package cli
