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

package version

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Version
		wantErr error
	}{
		{"major only", "1", Version{Major: 1, Precision: 1}, nil},
		{"v prefix", "v1", Version{Major: 1, Precision: 1}, nil},
		{"major minor", "1.2", Version{Major: 1, Minor: 2, Precision: 2}, nil},
		{"full", "v1.2.3", Version{Major: 1, Minor: 2, Patch: 3, Precision: 3}, nil},
		{"pre-release extras", "1.2.3-rc.1", Version{Major: 1, Minor: 2, Patch: 3, Precision: 3, Extras: "-rc.1"}, nil},
		{"build extras", "0.4.0+dirty", Version{Minor: 4, Precision: 3, Extras: "+dirty"}, nil},
		{"empty", "", Version{}, ErrEmptyVersion},
		{"too many", "1.2.3.4", Version{}, ErrTooManyComponents},
		{"non numeric", "v1.x", Version{}, ErrNonNumeric},
		{"empty component", "1..2", Version{}, ErrNonNumeric},
		{"negative", "-1", Version{}, ErrNegativeComponent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		v    Version
		want string
	}{
		{Version{Major: 1, Minor: 2, Patch: 3, Precision: 1}, "1"},
		{Version{Major: 1, Minor: 2, Patch: 3, Precision: 2}, "1.2"},
		{New(1, 2, 3), "1.2.3"},
		{Version{Major: 1, Minor: 2, Patch: 3, Extras: "-rc.1"}, "1.2.3"},
	}

	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.2.3", "1.2.3", 0},
		{"1.2.3", "1.2.4", -1},
		{"1.3.0", "1.2.9", 1},
		{"2", "1.9.9", 1},
		{"1", "1.5.10", 0},
		{"1.2", "1.2.10", 0},
		{"1.1", "1.2.0", -1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			if got := MustParse(tt.a).Compare(MustParse(tt.b)); got != tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSatisfies(t *testing.T) {
	served := New(1, 0, 0)

	tests := []struct {
		requested string
		want      bool
	}{
		{"v1", true},
		{"v1.0", true},
		{"v1.0.0", true},
		{"v1.1", false},
		{"v2", false},
		{"v0", false},
	}

	for _, tt := range tests {
		t.Run(tt.requested, func(t *testing.T) {
			if got := served.Satisfies(MustParse(tt.requested)); got != tt.want {
				t.Errorf("Satisfies(%s) = %v, want %v", tt.requested, got, tt.want)
			}
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid version")
		}
	}()
	_ = MustParse("not-a-version")
}

func TestIsValid(t *testing.T) {
	if !New(0, 0, 0).IsValid() {
		t.Error("expected 0.0.0 to be valid")
	}
	if (Version{Major: 1}).IsValid() {
		t.Error("expected zero precision to be invalid")
	}
	if (Version{Major: -1, Precision: 1}).IsValid() {
		t.Error("expected negative major to be invalid")
	}
}

func TestInfoString(t *testing.T) {
	i := Info{Version: "1.2.3", Commit: "abc123", Date: "2025-01-01"}
	if got, want := i.String(), "1.2.3 (commit abc123, built 2025-01-01)"; got != want {
		t.Errorf("Info.String() = %q, want %q", got, want)
	}
}
