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

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/pantrykit/pantry/pkg/recipe"
)

func catalogCmd() *cli.Command {
	return &cli.Command{
		Name:      "catalog",
		Usage:     "Validate a recipe catalog and print it in normalized form",
		UsageText: "pantry [--format yaml|json|table] [--output FILE] catalog <recipes.json>",
		Description: `Loads a recipe catalog from a local file or an http(s) URL, checks every
unit and amount, and writes it back as a RecipeCatalog document.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errCatalogUsage
			}

			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			if !cmd.IsSet("format") {
				format = defaultCatalogFormat
			}

			if _, err := loadConfig(cmd); err != nil {
				return err
			}

			recipes, err := recipe.Load(ctx, cmd.Args().First())
			if err != nil {
				return err
			}

			w := newWriter(cmd, format)
			defer closeWriter(w)

			return w.Serialize(ctx, recipe.NewCatalog(recipes, version))
		},
	}
}
