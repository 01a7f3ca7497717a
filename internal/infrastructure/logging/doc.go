// Package logging provides structured logging for ZCL Config Core.
//
// It wraps log/slog with service defaults (service name, version) and
// config-driven level, format, and output selection. Components derive
// scoped loggers via With:
//
//	log := logging.New(cfg.Logging, version)
//	storeLog := log.With("component", "endpoint-store")
package logging
