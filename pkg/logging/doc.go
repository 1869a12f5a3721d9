// Package logging configures log/slog for pantry binaries.
//
// Logs are JSON lines on stderr carrying the binary name as "module" and the
// build version as "version". Debug level adds the source location of each
// record, which is how matcher near-miss hints and recommender qualification
// decisions are traced.
//
// Levels are parsed case-insensitively from debug, info, warn (or warning)
// and error; anything else falls back to info. The level normally comes from
// config.Config.LogLevel, which is fed by LOG_LEVEL or the --log-level flag:
//
//	LOG_LEVEL=debug pantry fridge.csv recipes.json
//
// Typical setup at process start:
//
//	logging.SetDefaultStructuredLoggerWithLevel("pantryd", version, cfg.LogLevel)
//	slog.Info("server starting", "port", cfg.Port)
//
// NewLogLogger adapts slog to a *log.Logger for APIs such as
// http.Server.ErrorLog that still expect one.
package logging
