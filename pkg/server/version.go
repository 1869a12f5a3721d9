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

package server

import (
	"net/http"
	"strings"

	"github.com/pantrykit/pantry/pkg/version"
)

const (
	// DefaultAPIVersion is the default API version if none is negotiated
	DefaultAPIVersion = "v1"

	// vendorMediaPrefix introduces a versioned media type, for example
	// application/vnd.pantry.v1+json.
	vendorMediaPrefix = "application/vnd.pantry."
)

// servedAPIVersion is the newest API version this server implements.
var servedAPIVersion = version.New(1, 0, 0)

// negotiateAPIVersion extracts the API version from the Accept header.
// Unknown or unsupported versions fall back to DefaultAPIVersion.
func negotiateAPIVersion(r *http.Request) string {
	accept := r.Header.Get("Accept")
	if accept == "" {
		return DefaultAPIVersion
	}

	for media := range strings.SplitSeq(accept, ",") {
		media, _, _ = strings.Cut(strings.TrimSpace(media), ";")
		rest, ok := strings.CutPrefix(media, vendorMediaPrefix)
		if !ok {
			continue
		}
		requested, _, _ := strings.Cut(rest, "+")
		if isValidAPIVersion(requested) {
			return requested
		}
	}

	return DefaultAPIVersion
}

// isValidAPIVersion reports whether this server can serve the requested
// version, e.g. "v1" or "v1.0".
func isValidAPIVersion(requested string) bool {
	if !strings.HasPrefix(requested, "v") {
		return false
	}
	v, err := version.Parse(requested)
	if err != nil {
		return false
	}
	return servedAPIVersion.Satisfies(v)
}

// SetAPIVersionHeader sets the API version header in the response.
func SetAPIVersionHeader(w http.ResponseWriter, version string) {
	w.Header().Set("X-API-Version", version)
}
