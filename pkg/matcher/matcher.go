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

package matcher

import (
	"context"
	"log/slog"

	"github.com/agnivade/levenshtein"

	"github.com/pantrykit/pantry/pkg/ingredient"
)

// maxHintDistance bounds the edit distance for near-miss name hints.
const maxHintDistance = 2

// Matcher selects stock entries for recipe requirements.
type Matcher struct {
	strictUnits bool
}

// Option is a functional option for configuring the Matcher.
type Option func(*Matcher)

// WithStrictUnits requires the stock unit to equal the requirement unit.
func WithStrictUnits(strict bool) Option {
	return func(m *Matcher) {
		m.strictUnits = strict
	}
}

// New creates a Matcher with the provided options.
func New(opts ...Option) *Matcher {
	m := &Matcher{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// StrictUnits reports whether units take part in matching.
func (m *Matcher) StrictUnits() bool {
	return m.strictUnits
}

// FindBestMatch returns the eligible stock entry with the soonest expiry for
// requirement on the given day. The second result is false when nothing in
// stock satisfies the requirement. Ties on expiry keep the first entry seen.
func (m *Matcher) FindBestMatch(stock []ingredient.Ingredient, requirement ingredient.Ingredient, on ingredient.Date) (ingredient.Ingredient, bool) {
	var (
		best  ingredient.Ingredient
		found bool
	)

	for _, item := range stock {
		if !m.eligible(item, requirement, on) {
			continue
		}
		if !found || item.Expiry.Compare(best.Expiry) < 0 {
			best = item
			found = true
		}
	}

	if !found {
		logMiss(stock, requirement)
	}

	return best, found
}

func (m *Matcher) eligible(item, requirement ingredient.Ingredient, on ingredient.Date) bool {
	if item.Name != requirement.Name {
		return false
	}
	if item.Quantity < requirement.Quantity {
		return false
	}
	if item.Expiry.ExpiredOn(on) {
		return false
	}
	if m.strictUnits && item.Unit != requirement.Unit {
		return false
	}
	return true
}

// FindBestMatch matches requirement against stock without comparing units.
func FindBestMatch(stock []ingredient.Ingredient, requirement ingredient.Ingredient, on ingredient.Date) (ingredient.Ingredient, bool) {
	return defaultMatcher.FindBestMatch(stock, requirement, on)
}

var defaultMatcher = New()

// ClosestName returns the stock name nearest to name by edit distance when it
// is within a small distance and not identical. It is used to explain misses
// such as "chese" vs "cheese"; it never influences matching.
func ClosestName(stock []ingredient.Ingredient, name string) (string, bool) {
	closest := ""
	bestDist := maxHintDistance + 1
	for _, item := range stock {
		if item.Name == name {
			continue
		}
		if d := levenshtein.ComputeDistance(item.Name, name); d < bestDist {
			bestDist = d
			closest = item.Name
		}
	}
	return closest, closest != ""
}

func logMiss(stock []ingredient.Ingredient, requirement ingredient.Ingredient) {
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	if hint, ok := ClosestName(stock, requirement.Name); ok {
		slog.Debug("no stock for requirement",
			"requirement", requirement.Name,
			"didYouMean", hint)
		return
	}
	slog.Debug("no stock for requirement", "requirement", requirement.Name)
}
