// Package log provides a structured logging interface for betaVAE operations.
//
// This package defines a minimal, slog-compatible logging interface that allows for
// flexible implementation switching while providing ML-specific structured logging
// capabilities. The interface is designed to integrate seamlessly with Go's standard
// log/slog package and popular logging libraries like zerolog, logrus, and zap.
//
// Key features:
//   - slog-compatible interface for future-proofing
//   - ML-specific structured attributes (operation types, data shapes, loss terms)
//   - Context-aware logging with field chaining
//   - Performance-optimized with lazy evaluation support
//   - Test-friendly with configurable output destinations
//
// Example usage:
//   logger := log.GetLogger().With(
//       log.ModelNameKey, "BetaVAE",
//       log.EstimatorIDKey, "vae-001",
//   )
//   logger.Info("Loss evaluation started",
//       log.OperationKey, "criterion",
//       log.SamplesKey, 128,
//       log.LatentDimKey, 10,
//   )

package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// The interface carries structured key-value fields with every message so
// that model construction, batch scoring, and criterion evaluation leave a
// machine-readable trail. Implementations stay swappable; the model packages
// depend only on this contract.
//
// Contextual loggers are derived through With, which pre-populates fields
// for everything logged afterwards.
type Logger interface {
	// Debug logs detailed diagnostic information, typically disabled in
	// production. Batch-level tracing belongs here.
	//
	// Parameters:
	//   - msg: The primary log message
	//   - fields: Optional key-value pairs for structured logging
	//
	// Example:
	//   logger.Debug("Scoring batch",
	//       "batch_id", 42,
	//       log.SamplesKey, 128,
	//   )
	Debug(msg string, fields ...any)

	// Info logs operational events such as a completed evaluation or a
	// constructed model.
	//
	// Parameters:
	//   - msg: The primary log message
	//   - fields: Optional key-value pairs for structured logging
	//
	// Example:
	//   logger.Info("Loss evaluation completed",
	//       log.DurationMsKey, 5432,
	//       log.LossKey, 184.2,
	//   )
	Info(msg string, fields ...any)

	// Warn logs conditions worth attention that do not stop the evaluation,
	// such as a posterior collapsing toward the prior.
	//
	// Parameters:
	//   - msg: The primary log message
	//   - fields: Optional key-value pairs for structured logging
	//
	// Example:
	//   logger.Warn("KL divergence near zero",
	//       log.KLDivergenceKey, 1e-12,
	//       "threshold", 1e-6,
	//   )
	Warn(msg string, fields ...any)

	// Error logs failed operations. When the first field is an error value,
	// implementations convert it to the error attribute so its stacktrace
	// is attached by the handler.
	//
	// Parameters:
	//   - msg: The primary log message
	//   - fields: Optional key-value pairs for structured logging
	//             If the first field is an error, it will be handled specially
	//
	// Example:
	//   logger.Error("Loss evaluation failed",
	//       err,
	//       log.OperationKey, "criterion",
	//       log.SamplesKey, 128,
	//   )
	Error(msg string, fields ...any)

	// With returns a new Logger carrying the given fields in every
	// subsequent message, leaving the receiver unchanged.
	//
	// Parameters:
	//   - fields: Key-value pairs to include in all future log messages
	//
	// Returns:
	//   - Logger: A new logger instance with the specified fields
	//
	// Example:
	//   contextLogger := logger.With(
	//       log.ModelNameKey, "BetaVAE",
	//       log.EstimatorIDKey, "vae-123",
	//   )
	//   contextLogger.Info("Starting evaluation")  // Automatically includes model info
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level,
	// so callers can skip assembling expensive per-sample diagnostics.
	//
	// Parameters:
	//   - ctx: Context for the logging operation
	//   - level: The log level to check
	//
	// Returns:
	//   - bool: true if the logger would emit a record at the given level
	//
	// Example:
	//   if logger.Enabled(ctx, LevelDebug) {
	//       expensiveData := calculatePerSampleLosses()
	//       logger.Debug("Detailed losses", "losses", expensiveData)
	//   }
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
// This type allows for level-based filtering of log messages.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4 // Detailed diagnostic information
	LevelInfo  Level = 0  // General operational information
	LevelWarn  Level = 4  // Warning conditions
	LevelError Level = 8  // Error conditions
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider creates and configures loggers. The package-level provider
// can be swapped, which is how tests capture the output of the packages
// under test without touching slog globals.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger tagged with a component name,
	// e.g. "losses" or "vae.criterion".
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum log level for all loggers created by this provider.
	SetLevel(level Level)
}
