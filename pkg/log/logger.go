package log

import (
	"fmt"
	"log/slog"
	"os"
)

// SetupLogger installs a JSON slog logger on slog.Default. Records are
// emitted in CloudLogging field naming so services evaluating criterions in
// production can ship logs without a separate rewrite step, and any error
// attribute is expanded with its stacktrace.
func SetupLogger(loglevel string) {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     ToLogLevel(loglevel),
		// Rename standard attributes to the CloudLogging format.
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				attr = slog.Attr{
					Key:   "severity",
					Value: attr.Value,
				}
			case slog.MessageKey:
				attr = slog.Attr{
					Key:   "message",
					Value: attr.Value,
				}
			case slog.SourceKey:
				attr = slog.Attr{
					Key:   "logging.googleapis.com/sourceLocation",
					Value: attr.Value,
				}
			}
			return attr
		},
	}
	handler := slog.NewJSONHandler(os.Stdout, &ops)
	slog.SetDefault(slog.New(WithStacktrace(handler)))
}

// ToLogLevel converts a level name to its slog.Level. Unknown names panic;
// the level string comes from static configuration, not user data.
func ToLogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}
