// Package logger provides structured logging for fnkit using zerolog.
//
// fnkit components log through named loggers obtained with Get. Until the
// embedding application calls Init, the global logger writes warnings and
// errors to stderr in console format, so a library call never floods the
// host's output.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//	  output: "stderr"
//
// # Usage
//
//	log := logger.Get("resilience")
//	log.Warn("retrying", logger.Fields(logger.FieldAttempt, 2))
package logger
