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

package recommender

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/pantrykit/pantry/pkg/defaults"
	"github.com/pantrykit/pantry/pkg/header"
	"github.com/pantrykit/pantry/pkg/ingredient"
	"github.com/pantrykit/pantry/pkg/matcher"
	"github.com/pantrykit/pantry/pkg/recipe"
)

// Fallback is returned when no recipe can be cooked.
const Fallback = defaults.FallbackRecipe

// Recommender picks the recipe whose matched stock expires soonest.
type Recommender struct {
	matcher *matcher.Matcher
	version string
}

// Option is a functional option for configuring the Recommender.
type Option func(*Recommender)

// WithMatcher sets the matcher used for requirements.
func WithMatcher(m *matcher.Matcher) Option {
	return func(r *Recommender) {
		if m != nil {
			r.matcher = m
		}
	}
}

// WithStrictUnits replaces the matcher with one that compares units.
func WithStrictUnits(strict bool) Option {
	return func(r *Recommender) {
		r.matcher = matcher.New(matcher.WithStrictUnits(strict))
	}
}

// WithVersion sets the tool version stamped on recommendations.
func WithVersion(version string) Option {
	return func(r *Recommender) {
		r.version = version
	}
}

// New creates a new Recommender with the provided options.
func New(opts ...Option) *Recommender {
	r := &Recommender{
		matcher: matcher.New(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// candidate is a recipe whose every requirement matched, with the matched
// stock in requirement order.
type candidate struct {
	recipe  recipe.Recipe
	matches []ingredient.Ingredient
}

type outcome struct {
	best        *candidate
	evaluations []Evaluation
}

// SelectRecipe returns the name of the recipe to cook on the given day, or
// Fallback when stock or recipes are empty or nothing qualifies.
func (r *Recommender) SelectRecipe(stock []ingredient.Ingredient, recipes []recipe.Recipe, on ingredient.Date) string {
	out, _ := r.evaluate(context.Background(), stock, recipes, on)
	if out.best == nil {
		return Fallback
	}
	return out.best.recipe.Name
}

// SelectRecipe selects with the default, unit-agnostic matcher.
func SelectRecipe(stock []ingredient.Ingredient, recipes []recipe.Recipe, on ingredient.Date) string {
	return defaultRecommender.SelectRecipe(stock, recipes, on)
}

var defaultRecommender = New()

// Recommend performs the same selection as SelectRecipe and returns the
// full result. The only error is ctx's.
func (r *Recommender) Recommend(ctx context.Context, stock []ingredient.Ingredient, recipes []recipe.Recipe, on ingredient.Date) (*Recommendation, error) {
	out, err := r.evaluate(ctx, stock, recipes, on)
	if err != nil {
		return nil, err
	}

	rec := &Recommendation{
		Date:        on.String(),
		Recipe:      Fallback,
		Fallback:    true,
		Evaluations: out.evaluations,
	}
	rec.Init(header.KindRecommendation, header.APIVersion, r.version)

	if out.best != nil {
		rec.Recipe = out.best.recipe.Name
		rec.Fallback = false
		rec.Matched = slices.Clone(out.best.matches)
	}

	return rec, nil
}

func (r *Recommender) evaluate(ctx context.Context, stock []ingredient.Ingredient, recipes []recipe.Recipe, on ingredient.Date) (outcome, error) {
	if err := ctx.Err(); err != nil {
		return outcome{}, err
	}

	start := time.Now()
	defer func() {
		recommendDuration.Observe(time.Since(start).Seconds())
	}()

	if len(stock) == 0 || len(recipes) == 0 {
		slog.Debug("nothing to choose from",
			"stock", len(stock),
			"recipes", len(recipes))
		recommendTotal.WithLabelValues(resultFallback).Inc()
		return outcome{}, nil
	}

	var (
		qualified   []candidate
		byName      = make(map[string]int)
		evaluations = make([]Evaluation, 0, len(recipes))
	)

	for _, rcp := range recipes {
		if err := ctx.Err(); err != nil {
			return outcome{}, err
		}

		eval, matches := r.qualify(stock, rcp, on)
		evaluations = append(evaluations, eval)
		if !eval.Qualified {
			recipesEvaluated.WithLabelValues(outcomeDisqualified).Inc()
			continue
		}
		recipesEvaluated.WithLabelValues(outcomeQualified).Inc()

		c := candidate{recipe: rcp, matches: matches}
		// A later recipe with the same name replaces the earlier one in place.
		if i, ok := byName[rcp.Name]; ok {
			qualified[i] = c
			continue
		}
		byName[rcp.Name] = len(qualified)
		qualified = append(qualified, c)
	}

	if len(qualified) == 0 {
		recommendTotal.WithLabelValues(resultFallback).Inc()
		return outcome{evaluations: evaluations}, nil
	}

	best := rank(qualified)
	slog.Debug("selected recipe",
		"recipe", best.recipe.Name,
		"qualified", len(qualified),
		"evaluated", len(recipes))
	recommendTotal.WithLabelValues(resultRecipe).Inc()

	return outcome{best: &best, evaluations: evaluations}, nil
}

// qualify matches every requirement of rcp in order and stops at the first miss.
func (r *Recommender) qualify(stock []ingredient.Ingredient, rcp recipe.Recipe, on ingredient.Date) (Evaluation, []ingredient.Ingredient) {
	eval := Evaluation{Recipe: rcp.Name}
	matches := make([]ingredient.Ingredient, 0, len(rcp.Ingredients))

	for _, req := range rcp.Ingredients {
		item, ok := r.matcher.FindBestMatch(stock, req, on)
		if !ok {
			missing := req
			eval.Missing = &missing
			if hint, found := matcher.ClosestName(stock, req.Name); found {
				eval.DidYouMean = hint
			}
			slog.Debug("recipe disqualified",
				"recipe", rcp.Name,
				"missing", req.String())
			return eval, nil
		}
		matches = append(matches, item)
	}

	eval.Qualified = true
	return eval, matches
}
