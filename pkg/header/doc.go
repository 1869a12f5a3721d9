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

// Package header provides the common document header for pantry outputs.
//
// Every document the CLI or API emits starts with the same three fields:
//
//	kind: Recommendation
//	apiVersion: pantry.dev/v1
//	metadata:
//	  timestamp: "2014-04-14T09:30:00Z"
//	  version: v1.0.0
//
// Build one with options or initialise an embedded header in place:
//
//	h := header.New(header.WithKind(header.KindRecommendation), header.WithAPIVersion(header.APIVersion))
//
//	var rec Recommendation
//	rec.Init(header.KindRecommendation, header.APIVersion, version)
//
// Timestamps use RFC3339 in UTC. Consumers should check APIVersion before
// relying on the shape of the body.
package header
