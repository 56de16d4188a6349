// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments (development vs production)
// and integrates with the Fiber web framework used by the status server.
//
// # Context Awareness
//
// Two correlation ids are supported:
//   - ray_id: set per HTTP request by the rayid middleware, attached with WithRayID.
//   - run_id: generated once per reconciliation run, attached with WithRunID.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Reconciler ready")
//
//	runLog, runID := logger.WithRunID(log)
//	runLog.Info("Planning", zap.String("manifest", path))
package logger
