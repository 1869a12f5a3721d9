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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrykit/pantry/pkg/defaults"
	"github.com/pantrykit/pantry/pkg/ingredient"
)

var allVars = []string{
	EnvLogLevel, EnvDate, EnvStrictUnits, EnvPort,
	EnvRateLimit, EnvRateLimitBurst, EnvShutdownTimeout,
}

// clearEnv blanks every variable Load reads; t.Setenv restores them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allVars {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.Date.IsZero())
	assert.False(t, cfg.StrictUnits)
	assert.Equal(t, defaults.ServerPort, cfg.Port)
	assert.InDelta(t, defaults.ServerRateLimit, cfg.RateLimit, 0)
	assert.Equal(t, defaults.ServerRateLimitBurst, cfg.RateLimitBurst)
	assert.Equal(t, defaults.ServerShutdownTimeout, cfg.ShutdownTimeout)
	assert.Equal(t, ingredient.Today(), cfg.EvaluationDate())
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvDate, "14/04/2014")
	t.Setenv(EnvStrictUnits, "true")
	t.Setenv(EnvPort, "9090")
	t.Setenv(EnvRateLimit, "2.5")
	t.Setenv(EnvRateLimitBurst, "5")
	t.Setenv(EnvShutdownTimeout, "7")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ingredient.NewDate(2014, time.April, 14), cfg.EvaluationDate())
	assert.True(t, cfg.StrictUnits)
	assert.Equal(t, 9090, cfg.Port)
	assert.InDelta(t, 2.5, cfg.RateLimit, 0.0001)
	assert.Equal(t, 5, cfg.RateLimitBurst)
	assert.Equal(t, 7*time.Second, cfg.ShutdownTimeout)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{EnvDate, "2014-04-14"},
		{EnvStrictUnits, "sometimes"},
		{EnvPort, "eighty"},
		{EnvPort, "70000"},
		{EnvRateLimit, "fast"},
		{EnvRateLimit, "0"},
		{EnvRateLimitBurst, "0"},
		{EnvShutdownTimeout, "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "pantry.env")
	require.NoError(t, os.WriteFile(path, []byte("PANTRY_DATE=01/12/2014\nPORT=7070\n"), 0o600))

	// Variables already set win over the file.
	t.Setenv(EnvPort, "6060")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ingredient.NewDate(2014, time.December, 1), cfg.Date)
	assert.Equal(t, 6060, cfg.Port)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, defaults.ServerPort, cfg.Port)
}
