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
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/pantrykit/pantry/pkg/finder"
	"github.com/pantrykit/pantry/pkg/recommender"
)

// recommendAction is the root action: pantry <fridge.csv> <recipes.json>.
func recommendAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return errUsage
	}
	fridgePath, recipesPath := cmd.Args().Get(0), cmd.Args().Get(1)

	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	f := finder.New(finder.WithSelector(recommender.New(
		recommender.WithStrictUnits(cfg.StrictUnits),
		recommender.WithVersion(version),
	)))

	on := cfg.EvaluationDate()
	rec, err := f.Find(ctx, fridgePath, recipesPath, on)
	if err != nil {
		return err
	}

	slog.Debug("recommendation",
		"recipe", rec.Recipe,
		"fallback", rec.Fallback,
		"date", on.String())

	w := newWriter(cmd, format)
	defer closeWriter(w)

	return w.Serialize(ctx, rec)
}
