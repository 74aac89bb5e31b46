package log

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
)

// Attribute keys shared by the error-aware handler and the Logger adapters.
const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr wraps an error so slog handlers in this package can recognize it.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}

// StacktraceHandler is a slog handler that expands cockroachdb/errors values
// into a stacktrace attribute. Criterion and model errors record their origin
// in the encoded stack, so log consumers see where an evaluation failed
// without unwrapping the error themselves.
type StacktraceHandler struct {
	next slog.Handler
}

// WithStacktrace wraps a slog handler so that records carrying an error
// attribute are emitted with the error's stacktrace attached.
func WithStacktrace(next slog.Handler) slog.Handler {
	return &StacktraceHandler{next: next}
}

func (h *StacktraceHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return h.next.Enabled(ctx, l)
}

func (h *StacktraceHandler) Handle(ctx context.Context, r slog.Record) error {
	var stacktrace string
	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key == ErrAttrKey {
			if err, ok := attr.Value.Any().(error); ok {
				stacktrace = extractStacktrace(err)
			}
			return false
		}
		return true
	})
	if stacktrace != "" {
		r.AddAttrs(slog.String(StacktraceAttrKey, stacktrace))
	}
	return h.next.Handle(ctx, r)
}

func (h *StacktraceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &StacktraceHandler{next: h.next.WithAttrs(attrs)}
}

func (h *StacktraceHandler) WithGroup(g string) slog.Handler {
	return &StacktraceHandler{next: h.next.WithGroup(g)}
}

// extractStacktrace pulls the printf-safe stack recorded by
// cockroachdb/errors when the error was constructed or wrapped.
func extractStacktrace(err error) string {
	details := errors.GetSafeDetails(err).SafeDetails
	if len(details) > 0 {
		return details[0]
	}
	return ""
}
