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

package header

import (
	"testing"
	"time"
)

func TestKind_IsValid(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want bool
	}{
		{name: "Recommendation is valid", kind: KindRecommendation, want: true},
		{name: "RecipeCatalog is valid", kind: KindRecipeCatalog, want: true},
		{name: "Empty kind is invalid", kind: Kind(""), want: false},
		{name: "Case sensitive - lowercase is invalid", kind: Kind("recommendation"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.IsValid(); got != tt.want {
				t.Errorf("Kind.IsValid() = %v, want %v", got, tt.want)
			}
			if tt.kind.String() != string(tt.kind) {
				t.Errorf("Kind.String() = %v", tt.kind.String())
			}
		})
	}
}

func TestWithMetadata(t *testing.T) {
	tests := []struct {
		name     string
		existing map[string]string
		want     map[string]string
	}{
		{
			name:     "Add metadata to empty header",
			existing: nil,
			want:     map[string]string{"source": "fridge.csv"},
		},
		{
			name:     "Overwrite existing key",
			existing: map[string]string{"source": "old.csv"},
			want:     map[string]string{"source": "fridge.csv"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Header{Metadata: tt.existing}
			WithMetadata("source", "fridge.csv")(h)

			if len(h.Metadata) != len(tt.want) {
				t.Errorf("Metadata length = %v, want %v", len(h.Metadata), len(tt.want))
			}
			for key, wantValue := range tt.want {
				if got := h.Metadata[key]; got != wantValue {
					t.Errorf("Metadata[%q] = %v, want %v", key, got, wantValue)
				}
			}
		})
	}
}

func TestNew(t *testing.T) {
	h := New(WithKind(KindRecipeCatalog), WithAPIVersion(APIVersion))

	if h.Kind != KindRecipeCatalog {
		t.Errorf("Kind = %v, want %v", h.Kind, KindRecipeCatalog)
	}
	if h.APIVersion != APIVersion {
		t.Errorf("APIVersion = %v, want %v", h.APIVersion, APIVersion)
	}
	if h.Metadata == nil {
		t.Error("Metadata should be initialized")
	}
}

func TestHeader_Init(t *testing.T) {
	h := &Header{Metadata: map[string]string{"stale": "x"}}
	h.Init(KindRecommendation, APIVersion, "v1.2.3")

	if h.Kind != KindRecommendation || h.APIVersion != APIVersion {
		t.Errorf("unexpected header %+v", h)
	}
	if _, ok := h.Metadata["stale"]; ok {
		t.Error("Init should reset metadata")
	}
	if h.Metadata["version"] != "v1.2.3" {
		t.Errorf("version = %q", h.Metadata["version"])
	}
	if _, err := time.Parse(time.RFC3339, h.Metadata["timestamp"]); err != nil {
		t.Errorf("timestamp not RFC3339: %v", err)
	}

	h.Init(KindRecommendation, APIVersion, "")
	if _, ok := h.Metadata["version"]; ok {
		t.Error("empty version should not be recorded")
	}
}
