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
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/pantrykit/pantry/pkg/defaults"
	"github.com/pantrykit/pantry/pkg/ingredient"
)

// Environment variable names.
const (
	EnvLogLevel        = "LOG_LEVEL"
	EnvDate            = "PANTRY_DATE"
	EnvStrictUnits     = "PANTRY_STRICT_UNITS"
	EnvPort            = "PORT"
	EnvRateLimit       = "PANTRY_RATE_LIMIT"
	EnvRateLimitBurst  = "PANTRY_RATE_LIMIT_BURST"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT_SECONDS"
)

// Config holds settings shared by the CLI and the API server.
type Config struct {
	LogLevel string

	// Date overrides the evaluation day; zero means today.
	Date ingredient.Date

	StrictUnits bool

	Port            int
	RateLimit       float64
	RateLimitBurst  int
	ShutdownTimeout time.Duration
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		LogLevel:        "info",
		Port:            defaults.ServerPort,
		RateLimit:       defaults.ServerRateLimit,
		RateLimitBurst:  defaults.ServerRateLimitBurst,
		ShutdownTimeout: defaults.ServerShutdownTimeout,
	}
}

// Load reads the optional .env files (default ".env") into the process
// environment without overriding variables already set, then builds a
// Config from the environment.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
		slog.Debug("no env file loaded", "files", envFiles)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment.
func FromEnv() (*Config, error) {
	cfg := Default()

	cfg.LogLevel = getEnv(EnvLogLevel, cfg.LogLevel)

	if v := getEnv(EnvDate, ""); v != "" {
		d, err := ingredient.ParseDate(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvDate, err)
		}
		cfg.Date = d
	}

	var err error
	if cfg.StrictUnits, err = getEnvBool(EnvStrictUnits, cfg.StrictUnits); err != nil {
		return nil, err
	}
	if cfg.Port, err = getEnvInt(EnvPort, cfg.Port); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getEnvInt(EnvRateLimitBurst, cfg.RateLimitBurst); err != nil {
		return nil, err
	}
	if v := getEnv(EnvRateLimit, ""); v != "" {
		if cfg.RateLimit, err = strconv.ParseFloat(v, 64); err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvRateLimit, v, err)
		}
	}
	seconds, err := getEnvInt(EnvShutdownTimeout, int(cfg.ShutdownTimeout/time.Second))
	if err != nil {
		return nil, err
	}
	cfg.ShutdownTimeout = time.Duration(seconds) * time.Second

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first setting that is out of range.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", c.Port)
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("invalid rate limit %v: must be positive", c.RateLimit)
	}
	if c.RateLimitBurst < 1 {
		return fmt.Errorf("invalid rate limit burst %d: must be at least 1", c.RateLimitBurst)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("invalid shutdown timeout %v: must be positive", c.ShutdownTimeout)
	}
	return nil
}

// EvaluationDate returns the configured day, or today when none is set.
func (c *Config) EvaluationDate() ingredient.Date {
	if c.Date.IsZero() {
		return ingredient.Today()
	}
	return c.Date
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}
