package xmltree

import "log/slog"

// Logger receives the debug and warning output of parsing and conversion.
// Attributes are alternating key-value pairs, as with log/slog:
//
//	logger.Debug("skipping unrecognized element", "path", "Edmx/DataServices/Schema[min]/Documentation")
//
// Wrap a *slog.Logger with [NewSlogAdapter]; any other logging library needs a
// three-method shim.
type Logger interface {
	Debug(msg string, attrs ...any)
	// Warn is used for literals the converter could not represent natively.
	Warn(msg string, attrs ...any)
	// With returns a Logger that adds attrs to every record.
	With(attrs ...any) Logger
}

// NopLogger discards everything. Parsers and converters without a logger use it.
type NopLogger struct{}

func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Warn(string, ...any) {}
func (n NopLogger) With(...any) Logger { return n }

// SlogAdapter implements Logger on top of a *slog.Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter wraps logger, falling back to slog.Default() when it is nil.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

func (s *SlogAdapter) Debug(msg string, attrs ...any) { s.logger.Debug(msg, attrs...) }

func (s *SlogAdapter) Warn(msg string, attrs ...any) { s.logger.Warn(msg, attrs...) }

func (s *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{logger: s.logger.With(attrs...)}
}

var (
	_ Logger = NopLogger{}
	_ Logger = (*SlogAdapter)(nil)
)
