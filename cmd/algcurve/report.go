package main

import (
	"io"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/algcurve"
	"github.com/gogpu/algcurve/internal/pairfile"
)

// reporter writes human-readable reports and keeps the first write error.
type reporter struct {
	p *message.Printer
	w io.Writer
	e error
}

func newReporter(w io.Writer) *reporter {
	return &reporter{p: message.NewPrinter(language.English), w: w}
}

func (r *reporter) printf(format string, args ...any) {
	if r.e != nil {
		return
	}
	_, r.e = r.p.Fprintf(r.w, format, args...)
}

func (r *reporter) err() error {
	return r.e
}

// table runs fn against a tabwriter over the report output.
func (r *reporter) table(fn func(row func(format string, args ...any))) {
	if r.e != nil {
		return
	}
	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fn(func(format string, args ...any) {
		if r.e == nil {
			_, r.e = r.p.Fprintf(tw, format, args...)
		}
	})
	if err := tw.Flush(); err != nil && r.e == nil {
		r.e = err
	}
}

func (r *reporter) header(pa algcurve.PairAnalysis) {
	r.printf("curve0: %v = 0\n", pa.Curve(algcurve.Curve0).Polynomial())
	r.printf("curve1: %v = 0\n", pa.Curve(algcurve.Curve1).Polynomial())
	r.printf("%d events\n\n", pa.NumEvents())
}

func (r *reporter) events(pa algcurve.PairAnalysis) {
	if pa.NumEvents() == 0 {
		return
	}
	r.table(func(row func(string, ...any)) {
		row("event\tapprox\tcurve0\tcurve1\tx\n")
		for i := range pa.NumEvents() {
			x := pa.EventX(i)
			row("%d\t%.6g\t%v\t%v\t%v\n", i, x.Float64(),
				pa.PerCurveEvent(i, algcurve.Curve0), pa.PerCurveEvent(i, algcurve.Curve1), x)
		}
	})
	r.printf("\n")
}

func (r *reporter) intervals(pa algcurve.PairAnalysis) {
	r.table(func(row func(string, ...any)) {
		row("interval\tsample\tpoints\tcurve0\tcurve1\n")
		for i := range pa.NumEvents() + 1 {
			l := pa.VerticalLineOfInterval(i)
			row("%d\t%v\t%d\t%d\t%d\n", i, l.X(), l.NumPoints(),
				l.NumPointsOf(algcurve.Curve0), l.NumPointsOf(algcurve.Curve1))
		}
	})
}

func (r *reporter) line(q pairfile.Query, l *algcurve.VerticalLine) {
	kind := "interval"
	if l.IsEvent() {
		kind = "event"
	}
	perturb := q.Perturb
	if perturb == "" {
		perturb = "0"
	}
	r.printf("x = %s, perturb %s: %s %d, %d points\n", q.X, perturb, kind, l.Index(), l.NumPoints())
	r.table(func(row func(string, ...any)) {
		for j, p := range l.Points() {
			row("  %d\t%.6g\t%v\n", j, p.Y(), p)
		}
	})
}
