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
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	pantryerrors "github.com/pantrykit/pantry/pkg/errors"
	"github.com/pantrykit/pantry/pkg/ingredient"
	"github.com/pantrykit/pantry/pkg/serializer"
)

const (
	defaultRecommendFormat = serializer.FormatText
	defaultCatalogFormat   = serializer.FormatYAML
)

func supportedFormats() []string {
	return serializer.SupportedFormats()
}

// parseOutputFormat validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	raw := strings.ToLower(strings.TrimSpace(cmd.String("format")))
	f := serializer.Format(raw)
	if raw == "" || f.IsUnknown() {
		return "", pantryerrors.New(pantryerrors.ErrCodeInput,
			fmt.Sprintf("unknown output format: %q (supported values: %v)", raw, supportedFormats()))
	}
	return f, nil
}

func parseDateFlag(s string) (ingredient.Date, error) {
	d, err := ingredient.ParseDate(s)
	if err != nil {
		return ingredient.Date{}, pantryerrors.Wrap(pantryerrors.ErrCodeInput, "Error parsing date: "+err.Error(), err)
	}
	return d, nil
}

// newWriter writes to --output when set, otherwise to the command's stdout.
func newWriter(cmd *cli.Command, format serializer.Format) *serializer.Writer {
	if path := strings.TrimSpace(cmd.String(outputFlag.Name)); path != "" {
		return serializer.NewFileWriterOrStdout(format, path)
	}
	return serializer.NewWriter(format, cmd.Root().Writer)
}

func closeWriter(w *serializer.Writer) {
	if err := w.Close(); err != nil {
		slog.Warn("failed to close output", "error", err)
	}
}
