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

package ingredient

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Unit is the measurement unit an ingredient quantity is expressed in.
type Unit string

const (
	// UnitSlices counts slices (bread, cheese).
	UnitSlices Unit = "slices"
	// UnitOf counts whole items ("10 of crackers").
	UnitOf Unit = "of"
	// UnitGrams measures weight in grams.
	UnitGrams Unit = "grams"
	// UnitMillilitres measures volume in millilitres.
	UnitMillilitres Unit = "ml"
	// UnitPieces counts pieces.
	UnitPieces Unit = "pieces"
	// UnitCups measures volume in cups.
	UnitCups Unit = "cups"
)

var knownUnits = map[Unit]struct{}{
	UnitSlices:      {},
	UnitOf:          {},
	UnitGrams:       {},
	UnitMillilitres: {},
	UnitPieces:      {},
	UnitCups:        {},
}

// String returns the unit name.
func (u Unit) String() string {
	return string(u)
}

// IsValid reports whether u is one of the supported units.
func (u Unit) IsValid() bool {
	_, ok := knownUnits[u]
	return ok
}

// SupportedUnits returns the supported unit names in sorted order.
func SupportedUnits() []string {
	out := make([]string, 0, len(knownUnits))
	for u := range knownUnits {
		out = append(out, string(u))
	}
	sort.Strings(out)
	return out
}

// ParseUnit converts s into a supported Unit.
func ParseUnit(s string) (Unit, error) {
	u := Unit(strings.TrimSpace(s))
	if !u.IsValid() {
		return "", fmt.Errorf("unknown unit %q, supported values: %v", s, SupportedUnits())
	}
	return u, nil
}

// NormalizeName trims surrounding space and puts name into Unicode NFC, so
// "jalapen\u0303o" from one source matches "jalape\u00f1o" from another.
func NormalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// ParseQuantity parses a non-negative whole-number quantity.
func ParseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q: %w", s, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid quantity %q: must not be negative", s)
	}
	return n, nil
}

// Ingredient is an immutable stock entry or recipe requirement.
// Two ingredients are equal (==) iff name, quantity, unit, and expiry match,
// which makes Ingredient usable as a map key.
type Ingredient struct {
	Name     string `json:"name" yaml:"name"`
	Quantity int    `json:"quantity" yaml:"quantity"`
	Unit     Unit   `json:"unit" yaml:"unit"`
	Expiry   Expiry `json:"expiry,omitzero" yaml:"expiry,omitempty"`
}

// New returns a stock ingredient with the given use-by date.
func New(name string, quantity int, unit Unit, useBy Date) Ingredient {
	return Ingredient{Name: name, Quantity: quantity, Unit: unit, Expiry: ExpiresOn(useBy)}
}

// Requirement returns a recipe requirement, which carries no expiry.
func Requirement(name string, quantity int, unit Unit) Ingredient {
	return Ingredient{Name: name, Quantity: quantity, Unit: unit}
}

// String returns a compact human-readable form, e.g. "bread 2 slices (21/04/2014)".
func (i Ingredient) String() string {
	if !i.Expiry.IsSet() {
		return fmt.Sprintf("%s %d %s", i.Name, i.Quantity, i.Unit)
	}
	return fmt.Sprintf("%s %d %s (%s)", i.Name, i.Quantity, i.Unit, i.Expiry)
}
