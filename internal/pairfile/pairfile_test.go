package pairfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/algcurve"
	"github.com/gogpu/algcurve/plot"
)

const sample = `
curves:
  - x^2 + y^2 - 1
  - y - x
precision: 24
workers: 2
queries:
  - x: root(2*x^2 - 1, 1)
    perturb: "-"
  - x: "1/2"
plot:
  width: 64
  height: 32
  window: [-3, 3, -1.5, 1.5]
  output: pair.png
  labels: false
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pair.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatal(err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(f.Curves) != 2 || f.Curves[1] != "y - x" {
		t.Errorf("Curves = %q", f.Curves)
	}
	if f.Precision != 24 || f.Workers != 2 {
		t.Errorf("Precision, Workers = %d, %d", f.Precision, f.Workers)
	}
	if len(f.Queries) != 2 {
		t.Fatalf("Queries = %v", f.Queries)
	}
	if _, s, err := f.Queries[0].Resolve(); err != nil || s != algcurve.Negative {
		t.Errorf("Queries[0].Resolve() = %v, %v", s, err)
	}

	pa, err := f.Analysis()
	if err != nil {
		t.Fatalf("Analysis() error = %v", err)
	}
	if n := pa.NumEvents(); n != 4 {
		t.Errorf("NumEvents() = %d, want 4", n)
	}
	x, s, _ := f.Queries[0].Resolve()
	if got := pa.VerticalLineForX(x, s); got != pa.VerticalLineOfInterval(2) {
		t.Errorf("query 0 resolved to %v, want interval 2", got)
	}

	o := f.Plot.RenderOptions(plot.DefaultOptions())
	if o.Width != 64 || o.Height != 32 || o.XMin != -3 || o.YMax != 1.5 || o.Labels {
		t.Errorf("RenderOptions() = %+v", o)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want ErrNotExist", err)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		invalid bool
	}{
		{"empty", "", true},
		{"one curve", "curves: [y]", true},
		{"three curves", "curves: [y, y - 1, y + 1]", true},
		{"precision", "curves: [y, y - 1]\nprecision: 5000", true},
		{"query x", "curves: [y, y - 1]\nqueries: [{x: abc}]", true},
		{"query perturb", "curves: [y, y - 1]\nqueries: [{x: '1', perturb: up}]", true},
		{"window", "curves: [y, y - 1]\nplot: {window: [1, 2]}", true},
		{"infinite window", "curves: [y, y - 1]\nplot: {window: [-.inf, 2, -2, 2]}", true},
		{"unknown key", "curves: [y, y - 1]\ncolour: red", false},
		{"not yaml", "curves: [", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatal("Parse() succeeded")
			}
			if got := errors.Is(err, ErrInvalid); got != tt.invalid {
				t.Errorf("errors.Is(%v, ErrInvalid) = %v, want %v", err, got, tt.invalid)
			}
		})
	}
}

func TestAnalysisErrors(t *testing.T) {
	f, err := Parse([]byte("curves: [(y - x)^2, y]"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Analysis(); !errors.Is(err, algcurve.ErrNotSquareFree) {
		t.Errorf("Analysis() error = %v, want ErrNotSquareFree", err)
	}

	f, err = Parse([]byte("curves: [y - x, (y - x)*(y + 1)]"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Analysis(); !errors.Is(err, algcurve.ErrNotCoprime) {
		t.Errorf("Analysis() error = %v, want ErrNotCoprime", err)
	}
}

func TestParsePerturb(t *testing.T) {
	tests := []struct {
		input string
		want  algcurve.Sign
	}{
		{"", algcurve.Zero},
		{"0", algcurve.Zero},
		{"-", algcurve.Negative},
		{"Left", algcurve.Negative},
		{"+", algcurve.Positive},
		{" positive ", algcurve.Positive},
	}
	for _, tt := range tests {
		got, err := ParsePerturb(tt.input)
		if err != nil || got != tt.want {
			t.Errorf("ParsePerturb(%q) = %v, %v; want %v", tt.input, got, err, tt.want)
		}
	}
	if _, err := ParsePerturb("sideways"); err == nil {
		t.Error("ParsePerturb(\"sideways\") succeeded")
	}
}

func TestNilPlotKeepsBase(t *testing.T) {
	var p *Plot
	base := plot.DefaultOptions()
	if got := p.RenderOptions(base); got != base {
		t.Errorf("RenderOptions() = %+v, want %+v", got, base)
	}
}
