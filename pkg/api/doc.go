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

// Package api wires the recommendation handlers onto pkg/server and runs
// the pantryd HTTP service.
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	if err := api.Serve(ctx, cfg); err != nil {
//	    return err
//	}
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - POST /v1/recommendation - choose a recipe from stock and recipes in the body
//   - POST /v1/catalog        - validate a recipe list and return it normalized
//
// System endpoints (no rate limiting):
//   - GET /health  - liveness probe
//   - GET /ready   - readiness probe
//   - GET /metrics - Prometheus metrics
//
// # Request Body (POST /v1/recommendation)
//
// JSON (application/json, the default) or YAML (application/x-yaml,
// application/yaml, text/yaml):
//
//	{
//	  "date": "14/04/2014",
//	  "strictUnits": false,
//	  "ingredients": [
//	    {"item": "bread", "amount": "10", "unit": "slices", "useBy": "15/04/2014"}
//	  ],
//	  "recipes": [
//	    {"name": "toast", "ingredients": [{"item": "bread", "amount": "2", "unit": "slices"}]}
//	  ]
//	}
//
// date and strictUnits are optional and default to the server configuration.
// An ingredient without useBy never expires. The response is a
// Recommendation document; when nothing can be cooked its recipe is
// "Order Takeout".
//
// Malformed bodies return 400 INVALID_REQUEST; invalid dates, units or
// recipes return 400 INPUT_ERROR. Bodies over 1 MiB return 413.
//
// # Configuration
//
// Settings come from pkg/config: PORT, LOG_LEVEL, PANTRY_DATE,
// PANTRY_STRICT_UNITS, PANTRY_RATE_LIMIT, PANTRY_RATE_LIMIT_BURST and
// SHUTDOWN_TIMEOUT_SECONDS, optionally from a .env file.
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/pantrykit/pantry/pkg/api.version=1.0.0'"
package api
