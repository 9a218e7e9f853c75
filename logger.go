package imagefx

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false, so disabled calls
// never format their attributes.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

func silentLogger() *slog.Logger { return slog.New(discard{}) }

var pkgLogger atomic.Pointer[slog.Logger]

func init() {
	pkgLogger.Store(silentLogger())
}

// SetLogger installs the logger used by filter calls that are not given
// one through [WithLogger]. A nil logger silences the package again, which
// is also the initial state. Filters log their dimensions and kernel or
// grid sizes at Debug and abandoned calls at Warn.
//
// SetLogger may be called while filters run on other goroutines.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silentLogger()
	}
	pkgLogger.Store(l)
}

// Logger returns the logger installed by SetLogger. It is never nil.
func Logger() *slog.Logger {
	return pkgLogger.Load()
}
