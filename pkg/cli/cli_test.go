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
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/pantrykit/pantry/pkg/serializer"
)

var (
	fridgeFile  = filepath.Join("testdata", "fridge.csv")
	recipesFile = filepath.Join("testdata", "recipes.json")
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("PANTRY_DATE", "")
	t.Setenv("PANTRY_STRICT_UNITS", "")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), append([]string{name}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRecommendCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "compares dates of all ingredients",
			args: []string{"--date", "01/12/2014", fridgeFile, recipesFile},
			want: "peanut butter sandwich\n",
		},
		{
			name: "everything expired",
			args: []string{"--date", "01/01/2015", fridgeFile, recipesFile},
			want: "Order Takeout\n",
		},
		{
			name: "explicit text format",
			args: []string{"--format", "text", "--date", "01/12/2014", fridgeFile, recipesFile},
			want: "peanut butter sandwich\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, tt.args...)
			require.Equal(t, 0, code, "stderr: %s", stderr)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestRecommendCommand_JSON(t *testing.T) {
	code, stdout, stderr := runCLI(t, "--format", "json", "--date", "01/12/2014", fridgeFile, recipesFile)
	require.Equal(t, 0, code, "stderr: %s", stderr)

	var got struct {
		Kind     string `json:"kind"`
		Recipe   string `json:"recipe"`
		Fallback bool   `json:"fallback"`
		Date     string `json:"date"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "Recommendation", got.Kind)
	assert.Equal(t, "peanut butter sandwich", got.Recipe)
	assert.False(t, got.Fallback)
	assert.Equal(t, "01/12/2014", got.Date)
}

func TestRecommendCommand_OutputFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "result.txt")

	code, stdout, stderr := runCLI(t, "--output", out, "--date", "01/12/2014", fridgeFile, recipesFile)
	require.Equal(t, 0, code, "stderr: %s", stderr)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "peanut butter sandwich\n", string(data))
}

func TestRecommendCommand_DateFromEnvironment(t *testing.T) {
	var stdout, stderr bytes.Buffer
	t.Setenv("PANTRY_DATE", "01/12/2014")

	code := run(context.Background(), []string{name, fridgeFile, recipesFile}, &stdout, &stderr)
	require.Equal(t, 0, code, "stderr: %s", stderr.String())
	assert.Equal(t, "peanut butter sandwich\n", stdout.String())
}

func TestRecommendCommand_Errors(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStderr string
	}{
		{"no arguments", nil, 2, "usage: pantry [flags] <fridge.csv> <recipes.json>\n"},
		{"one argument", []string{fridgeFile}, 2, "usage: pantry [flags] <fridge.csv> <recipes.json>\n"},
		{"three arguments", []string{fridgeFile, recipesFile, "extra"}, 2, "usage: pantry [flags] <fridge.csv> <recipes.json>\n"},
		{"missing fridge", []string{"--date", "01/12/2014", "nope.csv", recipesFile}, 1, "File not found: nope.csv\n"},
		{"missing recipes", []string{"--date", "01/12/2014", fridgeFile, "nope.json"}, 1, "File not found: nope.json\n"},
		{"bad date flag", []string{"--date", "2014-12-01", fridgeFile, recipesFile}, 1, "Error parsing date: "},
		{"unknown format", []string{"--format", "xml", fridgeFile, recipesFile}, 1, "unknown output format: \"xml\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, tt.args...)
			assert.Equal(t, tt.wantCode, code)
			assert.Empty(t, stdout)
			assert.True(t, strings.HasPrefix(stderr, tt.wantStderr), "stderr = %q, want prefix %q", stderr, tt.wantStderr)
		})
	}
}

func TestCatalogCommand(t *testing.T) {
	code, stdout, stderr := runCLI(t, "catalog", recipesFile)
	require.Equal(t, 0, code, "stderr: %s", stderr)
	assert.Contains(t, stdout, "kind: RecipeCatalog")
	assert.Contains(t, stdout, "name: peanut butter sandwich")

	code, _, stderr = runCLI(t, "catalog")
	assert.Equal(t, 2, code)
	assert.Equal(t, "usage: pantry [flags] catalog <recipes.json>\n", stderr)

	code, _, stderr = runCLI(t, "catalog", "nope.json")
	assert.Equal(t, 1, code)
	assert.Equal(t, "File not found: nope.json\n", stderr)
}

func TestCatalogCommand_JSON(t *testing.T) {
	code, stdout, stderr := runCLI(t, "--format", "json", "catalog", recipesFile)
	require.Equal(t, 0, code, "stderr: %s", stderr)

	var got struct {
		Kind    string `json:"kind"`
		Recipes []struct {
			Name string `json:"name"`
		} `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "RecipeCatalog", got.Kind)
	assert.Len(t, got.Recipes, 3)
}

func TestServeCommand_InvalidPort(t *testing.T) {
	code, _, stderr := runCLI(t, "serve", "--port", "70000")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid port 70000")
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		wantFormat serializer.Format
		wantErr    bool
	}{
		{"text", "text", serializer.FormatText, false},
		{"yaml", "yaml", serializer.FormatYAML, false},
		{"json upper case", "JSON", serializer.FormatJSON, false},
		{"table", "table", serializer.FormatTable, false},
		{"invalid xml", "xml", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Value: tt.format},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseOutputFormat(c)
					if tt.wantErr {
						assert.Error(t, err)
						return nil
					}
					assert.NoError(t, err)
					assert.Equal(t, tt.wantFormat, got)
					return nil
				},
			}
			require.NoError(t, cmd.Run(context.Background(), []string{"test"}))
		})
	}
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "dev (commit unknown, built unknown)", NewCommand(nil, nil).Version)
}
