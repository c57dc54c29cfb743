package algcurve

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record and reports every level as disabled, so
// Debug calls on the default logger never build their attributes.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var silent = slog.New(nopHandler{})

// current is read on every analysis and line materialization.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger installs the logger that receives algcurve's diagnostics.
// A nil logger silences the package again, which is also the default.
//
// All records are emitted at [slog.LevelDebug]:
//   - "algcurve: curve pair analysed" once per NewCurvePair, with both
//     polynomials, the event count and the elapsed time
//   - "algcurve: vertical line materialized" once per computed line, with
//     its index, kind, x-coordinate, point count and elapsed time
//   - "plot: rendered" once per plot.Render call
//
// Cached lines are not logged again. A handler enabled only above debug
// level sees nothing, so enable debug explicitly:
//
//	algcurve.SetLogger(slog.New(slog.NewJSONHandler(os.Stderr,
//	    &slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return current.Load()
}
