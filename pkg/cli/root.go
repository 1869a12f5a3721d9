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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/pantrykit/pantry/pkg/config"
	pantryerrors "github.com/pantrykit/pantry/pkg/errors"
	"github.com/pantrykit/pantry/pkg/logging"
	ver "github.com/pantrykit/pantry/pkg/version"
)

const (
	name           = "pantry"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// usageError reports a wrong number of positional arguments.
type usageError struct {
	usage string
}

func (e *usageError) Error() string {
	return "usage: " + e.usage
}

var (
	errUsage        = &usageError{usage: "pantry [flags] <fridge.csv> <recipes.json>"}
	errCatalogUsage = &usageError{usage: "pantry [flags] catalog <recipes.json>"}
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}

	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "log level (debug, info, warn, error); overrides LOG_LEVEL",
	}

	dateFlag = &cli.StringFlag{
		Name:  "date",
		Usage: "evaluation day as dd/MM/yyyy (default: today or PANTRY_DATE)",
	}

	strictUnitsFlag = &cli.BoolFlag{
		Name:  "strict-units",
		Usage: "require stock units to equal recipe units",
	}
)

func formatFlag(defaultFormat string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   defaultFormat,
		Usage:   fmt.Sprintf("output format (supported values: %v)", supportedFormats()),
	}
}

// NewCommand builds the pantry command tree writing to stdout and stderr.
func NewCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "choose a recipe from what is in the fridge",
		UsageText:             "pantry [flags] <fridge.csv> <recipes.json>",
		Version:               buildInfo().String(),
		EnableShellCompletion: true,
		Writer:                stdout,
		ErrWriter:             stderr,
		// errors are reported by Execute; never exit from inside the library
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Description: `Reads available ingredients from a CSV file (name,quantity,unit,dd/MM/yyyy)
and recipes from a JSON or YAML catalog, then prints the recipe whose
ingredients expire soonest. Prints "Order Takeout" when nothing can be cooked.`,
		Flags: []cli.Flag{
			dateFlag,
			strictUnitsFlag,
			formatFlag(string(defaultRecommendFormat)),
			outputFlag,
			logLevelFlag,
		},
		Commands: []*cli.Command{
			serveCmd(),
			catalogCmd(),
		},
		Action: recommendAction,
	}
}

// Execute runs the CLI with os.Args and exits non-zero on failure.
func Execute() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

// run executes the command tree and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := NewCommand(stdout, stderr)
	if err := cmd.Run(ctx, args); err != nil {
		var ue *usageError
		if errors.As(err, &ue) {
			fmt.Fprintln(stderr, ue.Error())
			return 2
		}
		fmt.Fprintln(stderr, pantryerrors.MessageOf(err))
		return 1
	}
	return 0
}

func buildInfo() ver.Info {
	return ver.Info{Version: version, Commit: commit, Date: date}
}

// loadConfig reads .env and the environment, then applies flag overrides.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, pantryerrors.Wrap(pantryerrors.ErrCodeInput, "Invalid configuration: "+err.Error(), err)
	}

	if cmd.IsSet(logLevelFlag.Name) {
		cfg.LogLevel = cmd.String(logLevelFlag.Name)
	}
	if cmd.IsSet(strictUnitsFlag.Name) {
		cfg.StrictUnits = cmd.Bool(strictUnitsFlag.Name)
	}
	if s := cmd.String(dateFlag.Name); s != "" {
		d, err := parseDateFlag(s)
		if err != nil {
			return nil, err
		}
		cfg.Date = d
	}

	logging.SetDefaultStructuredLoggerWithLevel(name, version, cfg.LogLevel)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", cfg.LogLevel)

	return cfg, nil
}
