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

// Package server provides the HTTP server pantryd runs on: functional
// options, a shared middleware chain, health probes and Prometheus metrics.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("pantryd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "POST /v1/recommendation": handler.Recommend,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run blocks until ctx is canceled or the process receives SIGINT or SIGTERM,
// then drains in-flight requests within Config.ShutdownTimeout.
//
// # Endpoints
//
// Every handler passed through WithHandler runs behind the middleware chain:
// metrics, API version negotiation, request ID, panic recovery, rate limiting
// and request logging. The following are always registered without it:
//
//	GET /health   liveness, always 200
//	GET /ready    200 while serving, 503 before start and during shutdown
//	GET /metrics  Prometheus exposition
//
// Unless a "/" handler is supplied, GET / describes the server and lists its
// routes; any other unregistered path returns 404.
//
// # Request IDs and versions
//
// Requests may carry an X-Request-Id header in UUID form; otherwise one is
// generated. Clients can ask for an API version with
// Accept: application/vnd.pantry.v1+json. The negotiated version is echoed in
// X-API-Version. RequestID and APIVersion read both values from the request
// context.
//
// # Errors
//
// All errors share one JSON shape:
//
//	{
//	  "code": "INPUT_ERROR",
//	  "message": "Error parsing date: 31/02/2014",
//	  "details": {"field": "useBy"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": false
//	}
//
// WriteErrorFromErr maps a pkg/errors code to its HTTP status.
package server
