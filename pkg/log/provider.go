package log

import (
	"context"
	"log/slog"
	"sync"
)

// slogLogger adapts log/slog to the Logger interface. A nil backend means
// the process-wide default is resolved at call time, so loggers obtained
// before SetupLogger still pick up the configured handler.
type slogLogger struct {
	l   *slog.Logger
	min *slog.LevelVar
}

func (s *slogLogger) backend() *slog.Logger {
	if s.l != nil {
		return s.l
	}
	return slog.Default()
}

func (s *slogLogger) allow(level Level) bool {
	return s.min == nil || slog.Level(level) >= s.min.Level()
}

// Debug implements Logger.Debug.
func (s *slogLogger) Debug(msg string, fields ...any) {
	if !s.allow(LevelDebug) {
		return
	}
	s.backend().Debug(msg, fields...)
}

// Info implements Logger.Info.
func (s *slogLogger) Info(msg string, fields ...any) {
	if !s.allow(LevelInfo) {
		return
	}
	s.backend().Info(msg, fields...)
}

// Warn implements Logger.Warn.
func (s *slogLogger) Warn(msg string, fields ...any) {
	if !s.allow(LevelWarn) {
		return
	}
	s.backend().Warn(msg, fields...)
}

// Error implements Logger.Error. A leading error value is converted to the
// attribute form understood by StacktraceHandler so its stacktrace is attached.
func (s *slogLogger) Error(msg string, fields ...any) {
	if !s.allow(LevelError) {
		return
	}
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			args := make([]any, 0, len(fields))
			args = append(args, ErrAttr(err))
			args = append(args, fields[1:]...)
			s.backend().Error(msg, args...)
			return
		}
	}
	s.backend().Error(msg, fields...)
}

// With implements Logger.With.
func (s *slogLogger) With(fields ...any) Logger {
	return &slogLogger{l: s.backend().With(fields...), min: s.min}
}

// Enabled implements Logger.Enabled.
func (s *slogLogger) Enabled(ctx context.Context, level Level) bool {
	return s.allow(level) && s.backend().Enabled(ctx, slog.Level(level))
}

// SlogProvider implements LoggerProvider on top of log/slog. The provider
// applies its own minimum level before delegating, so SetLevel works without
// rebuilding the underlying handler.
type SlogProvider struct {
	min *slog.LevelVar
}

// NewSlogProvider creates a provider that delegates to the slog default
// logger. The provider level starts at LevelDebug and leaves filtering to
// the handler until SetLevel raises it.
func NewSlogProvider() *SlogProvider {
	min := &slog.LevelVar{}
	min.Set(slog.Level(LevelDebug))
	return &SlogProvider{min: min}
}

// GetLogger implements LoggerProvider.GetLogger.
func (p *SlogProvider) GetLogger() Logger {
	return &slogLogger{min: p.min}
}

// GetLoggerWithName implements LoggerProvider.GetLoggerWithName.
func (p *SlogProvider) GetLoggerWithName(name string) Logger {
	return p.GetLogger().With(ComponentKey, name)
}

// SetLevel implements LoggerProvider.SetLevel.
func (p *SlogProvider) SetLevel(level Level) {
	p.min.Set(slog.Level(level))
}

var (
	providerMu      sync.RWMutex
	defaultProvider LoggerProvider = NewSlogProvider()
)

// SetLoggerProvider replaces the package-level provider. Tests use this to
// route logging through a TestLoggerProvider.
func SetLoggerProvider(p LoggerProvider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	if p == nil {
		p = NewSlogProvider()
	}
	defaultProvider = p
}

// GetLogger returns the default logger of the package-level provider.
func GetLogger() Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return defaultProvider.GetLogger()
}

// GetLoggerWithName returns a named logger of the package-level provider.
// The name identifies the emitting component, e.g. "vae.criterion".
func GetLoggerWithName(name string) Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return defaultProvider.GetLoggerWithName(name)
}
