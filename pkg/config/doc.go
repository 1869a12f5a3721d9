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

// Package config loads pantry settings from an optional .env file and the
// environment.
//
//	LOG_LEVEL                 debug|info|warn|error (default info)
//	PANTRY_DATE               evaluation day, dd/MM/yyyy (default today)
//	PANTRY_STRICT_UNITS       require matching units (default false)
//	PORT                      API listen port (default 8080)
//	PANTRY_RATE_LIMIT         API requests per second (default 100)
//	PANTRY_RATE_LIMIT_BURST   API burst size (default 200)
//	SHUTDOWN_TIMEOUT_SECONDS  graceful shutdown budget (default 30)
//
// Variables already present in the environment win over the .env file.
// Command-line flags win over both.
package config
