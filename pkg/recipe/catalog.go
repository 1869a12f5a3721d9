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

package recipe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	pantryerrors "github.com/pantrykit/pantry/pkg/errors"
	"github.com/pantrykit/pantry/pkg/header"
	"github.com/pantrykit/pantry/pkg/ingredient"
	"github.com/pantrykit/pantry/pkg/serializer"
)

// Amount is a requirement quantity as written in a catalog. Catalogs
// usually quote it ("2"); bare numbers are accepted too.
type Amount int

// UnmarshalJSON accepts a quoted integer or a JSON number.
func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return fmt.Errorf("amount is required")
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid amount %s: %w", raw, err)
		}
		raw = s
	}
	return a.set(raw)
}

// UnmarshalYAML accepts any scalar holding a non-negative integer.
func (a *Amount) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: amount must be a scalar", node.Line)
	}
	if err := a.set(node.Value); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	return nil
}

// MarshalJSON writes the amount quoted, matching the catalog convention.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.Itoa(int(a)))
}

// MarshalYAML writes the amount as a string scalar.
func (a Amount) MarshalYAML() (any, error) {
	return strconv.Itoa(int(a)), nil
}

func (a *Amount) set(raw string) error {
	n, err := ingredient.ParseQuantity(raw)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	*a = Amount(n)
	return nil
}

// Line is one requirement as written in a catalog. A missing or null
// amount is rejected when the line is converted.
type Line struct {
	Item   string  `json:"item" yaml:"item"`
	Amount *Amount `json:"amount" yaml:"amount"`
	Unit   string  `json:"unit" yaml:"unit"`
}

// Document is one recipe as written in a catalog.
type Document struct {
	Name        string `json:"name" yaml:"name"`
	Ingredients []Line `json:"ingredients" yaml:"ingredients"`
}

// Recipe converts the document into a Recipe, validating units.
func (d Document) Recipe() (Recipe, error) {
	if strings.TrimSpace(d.Name) == "" {
		return Recipe{}, fmt.Errorf("recipe name is required")
	}
	reqs := make([]ingredient.Ingredient, 0, len(d.Ingredients))
	for i, l := range d.Ingredients {
		if strings.TrimSpace(l.Item) == "" {
			return Recipe{}, fmt.Errorf("recipe %q ingredient %d: item is required", d.Name, i+1)
		}
		if l.Amount == nil {
			return Recipe{}, fmt.Errorf("recipe %q ingredient %q: amount is required", d.Name, l.Item)
		}
		unit, err := ingredient.ParseUnit(l.Unit)
		if err != nil {
			return Recipe{}, fmt.Errorf("recipe %q ingredient %q: %w", d.Name, l.Item, err)
		}
		reqs = append(reqs, ingredient.Requirement(ingredient.NormalizeName(l.Item), int(*l.Amount), unit))
	}
	return New(strings.TrimSpace(d.Name), reqs...), nil
}

// DocumentOf converts a Recipe back into its catalog form.
func DocumentOf(r Recipe) Document {
	lines := make([]Line, 0, len(r.Ingredients))
	for _, req := range r.Ingredients {
		amount := Amount(req.Quantity)
		lines = append(lines, Line{Item: req.Name, Amount: &amount, Unit: string(req.Unit)})
	}
	return Document{Name: r.Name, Ingredients: lines}
}

// FromDocuments converts catalog documents into recipes, keeping order.
func FromDocuments(docs []Document) ([]Recipe, error) {
	recipes := make([]Recipe, 0, len(docs))
	for _, d := range docs {
		r, err := d.Recipe()
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, r)
	}
	return recipes, nil
}

// Decode reads a JSON or YAML catalog from r. An empty or null document
// is an empty catalog.
func Decode(format serializer.Format, r io.Reader) ([]Recipe, error) {
	reader, err := serializer.NewReader(format, r)
	if err != nil {
		return nil, err
	}
	var docs []Document
	if err := reader.Deserialize(&docs); err != nil {
		if errors.Is(err, io.EOF) {
			return []Recipe{}, nil
		}
		return nil, err
	}
	return FromDocuments(docs)
}

// Load reads the catalog at path, a local file or http(s) URL. A .yaml or
// .yml path is decoded as YAML; any other name is decoded as JSON.
// Failures are INPUT_ERROR structured errors.
func Load(ctx context.Context, path string) ([]Recipe, error) {
	docs, err := serializer.FromFileWithFormat[[]Document](ctx, catalogFormat(path), path)
	if err != nil {
		switch {
		case errors.Is(err, io.EOF):
			slog.Debug("recipe catalog is empty", "path", path)
			return []Recipe{}, nil
		case pantryerrors.IsCode(err, pantryerrors.ErrCodeNotFound), errors.Is(err, fs.ErrNotExist):
			return nil, inputError("File not found: "+path, path, err)
		case pantryerrors.IsCode(err, pantryerrors.ErrCodeUnavailable):
			return nil, inputError("Error reading file: "+path, path, err)
		default:
			return nil, inputError("Error reading recipe Json: "+path, path, err)
		}
	}

	recipes, err := FromDocuments(*docs)
	if err != nil {
		return nil, inputError("Error reading recipe Json: "+path, path, err)
	}

	slog.Debug("loaded recipes", "path", path, "count", len(recipes))
	return recipes, nil
}

func catalogFormat(path string) serializer.Format {
	if serializer.FormatFromPath(path) == serializer.FormatYAML {
		return serializer.FormatYAML
	}
	return serializer.FormatJSON
}

func inputError(msg, path string, cause error) error {
	return pantryerrors.WrapWithContext(pantryerrors.ErrCodeInput, msg, cause, map[string]any{"path": path})
}

// Catalog is the normalized, self-describing form of a recipe list.
type Catalog struct {
	header.Header `json:",inline" yaml:",inline"`

	Recipes []Document `json:"recipes" yaml:"recipes"`
}

// NewCatalog wraps recipes in a catalog document.
func NewCatalog(recipes []Recipe, version string) *Catalog {
	c := &Catalog{Recipes: make([]Document, 0, len(recipes))}
	c.Init(header.KindRecipeCatalog, header.APIVersion, version)
	for _, r := range recipes {
		c.Recipes = append(c.Recipes, DocumentOf(r))
	}
	return c
}
