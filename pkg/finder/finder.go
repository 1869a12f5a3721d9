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

package finder

import (
	"context"
	"log/slog"

	"github.com/pantrykit/pantry/pkg/fridge"
	"github.com/pantrykit/pantry/pkg/ingredient"
	"github.com/pantrykit/pantry/pkg/recipe"
	"github.com/pantrykit/pantry/pkg/recommender"
)

// StockLoader reads the ingredients in stock from a source path.
type StockLoader func(path string) ([]ingredient.Ingredient, error)

// RecipeLoader reads a recipe catalog from a source path or URL.
type RecipeLoader func(ctx context.Context, path string) ([]recipe.Recipe, error)

// Selector chooses a recipe for the given stock and day.
type Selector interface {
	Recommend(ctx context.Context, stock []ingredient.Ingredient, recipes []recipe.Recipe, on ingredient.Date) (*recommender.Recommendation, error)
}

// Finder loads stock and recipes and asks a Selector for a recommendation.
type Finder struct {
	loadStock   StockLoader
	loadRecipes RecipeLoader
	selector    Selector
}

// Option is a functional option for configuring the Finder.
type Option func(*Finder)

// WithStockLoader overrides how stock is read. Default: fridge.Load.
func WithStockLoader(l StockLoader) Option {
	return func(f *Finder) {
		f.loadStock = l
	}
}

// WithRecipeLoader overrides how recipes are read. Default: recipe.Load.
func WithRecipeLoader(l RecipeLoader) Option {
	return func(f *Finder) {
		f.loadRecipes = l
	}
}

// WithSelector overrides the ranking. Default: recommender.New().
func WithSelector(s Selector) Option {
	return func(f *Finder) {
		f.selector = s
	}
}

// New creates a Finder with the provided options.
func New(opts ...Option) *Finder {
	f := &Finder{
		loadStock:   fridge.Load,
		loadRecipes: recipe.Load,
		selector:    recommender.New(),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Find loads the stock at fridgePath and the catalog at recipesPath and
// recommends a recipe for day on. Stock is loaded first, so a bad fridge
// file is reported even when the catalog is also bad.
func (f *Finder) Find(ctx context.Context, fridgePath, recipesPath string, on ingredient.Date) (*recommender.Recommendation, error) {
	stock, err := f.loadStock(fridgePath)
	if err != nil {
		return nil, err
	}
	slog.Debug("stock loaded", "path", fridgePath, "items", len(stock))

	recipes, err := f.loadRecipes(ctx, recipesPath)
	if err != nil {
		return nil, err
	}
	slog.Debug("recipes loaded", "path", recipesPath, "recipes", len(recipes))

	return f.selector.Recommend(ctx, stock, recipes, on)
}
