// Package logger builds the zap logger shared by the commands, the catalog store and
// the HTTP features.
//
// Level accepts any zap level name (debug, info, warn, error). Debug selects zap's
// development preset with ISO8601 timestamps; every other level uses the production
// preset. Format switches the encoder between json, the default for the server, and
// console, which the CLI uses for error reporting.
//
// Request handlers log through WithRayID so that every entry of a request carries the
// ray_id set by the rayid middleware:
//
//	l := logger.WithRayID(log, c)
//	l.Warn("Display name not resolvable", zap.String("name", name))
package logger
