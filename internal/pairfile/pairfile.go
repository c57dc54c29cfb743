// Package pairfile loads curve pair descriptions from YAML.
//
// A pair file names two curves, optional analysis settings, vertical line
// queries and plot settings:
//
//	curves:
//	  - x^2 + y^2 - 1
//	  - y - x
//	precision: 24
//	queries:
//	  - x: root(2*x^2 - 1, 1)
//	    perturb: "-"
//	plot:
//	  width: 400
//	  height: 400
//	  window: [-2, 2, -2, 2]
//	  output: pair.png
package pairfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/algcurve"
	"github.com/gogpu/algcurve/algebraic"
	"github.com/gogpu/algcurve/plot"
)

// ErrInvalid indicates a pair file that is well-formed YAML but does not
// describe a usable pair.
var ErrInvalid = errors.New("pairfile: invalid pair file")

// MaxPrecision bounds the precision setting.
const MaxPrecision = 4096

// File is the decoded content of a pair file.
type File struct {
	// Curves holds exactly two curve equations.
	Curves []string `yaml:"curves"`

	// Precision is the y-interval precision in bits; zero keeps the default.
	Precision uint `yaml:"precision"`

	// Workers bounds parallel materialization; zero selects GOMAXPROCS.
	Workers int `yaml:"workers"`

	Queries []Query `yaml:"queries"`
	Plot    *Plot   `yaml:"plot"`
}

// Query asks for the vertical line at X with an optional perturbation.
type Query struct {
	X       string `yaml:"x"`
	Perturb string `yaml:"perturb"`
}

// Plot holds rendering settings.
type Plot struct {
	Width  int       `yaml:"width"`
	Height int       `yaml:"height"`
	Window []float64 `yaml:"window"` // xmin, xmax, ymin, ymax
	Output string    `yaml:"output"`
	Labels *bool     `yaml:"labels"`
}

// Load reads and validates a pair file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pairfile: read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates pair file content. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, fmt.Errorf("pairfile: decode: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks settings that do not require analysing the curves.
func (f *File) Validate() error {
	if len(f.Curves) != 2 {
		return fmt.Errorf("%w: want 2 curves, got %d", ErrInvalid, len(f.Curves))
	}
	if f.Precision > MaxPrecision {
		return fmt.Errorf("%w: precision %d exceeds %d", ErrInvalid, f.Precision, MaxPrecision)
	}
	for i, q := range f.Queries {
		if _, _, err := q.Resolve(); err != nil {
			return fmt.Errorf("%w: query %d: %w", ErrInvalid, i, err)
		}
	}
	if f.Plot != nil {
		if w := f.Plot.Window; len(w) != 0 && len(w) != 4 {
			return fmt.Errorf("%w: plot window needs 4 values, got %d", ErrInvalid, len(w))
		}
		for _, v := range f.Plot.Window {
			if math.IsInf(v, 0) || math.IsNaN(v) {
				return fmt.Errorf("%w: plot window %v is not finite", ErrInvalid, f.Plot.Window)
			}
		}
	}
	return nil
}

// Options returns the pair options the file selects.
func (f *File) Options() []algcurve.PairOption {
	var opts []algcurve.PairOption
	if f.Precision > 0 {
		opts = append(opts, algcurve.WithPrecision(f.Precision))
	}
	if f.Workers != 0 {
		opts = append(opts, algcurve.WithWorkers(f.Workers))
	}
	return opts
}

// Analysis parses both curves and analyses them as a pair.
func (f *File) Analysis() (algcurve.PairAnalysis, error) {
	var cas [2]*algcurve.CurveAnalysis
	for i, s := range f.Curves {
		c, err := algcurve.ParseCurve(s)
		if err != nil {
			return algcurve.PairAnalysis{}, fmt.Errorf("curve %d: %w", i, err)
		}
		cas[i] = algcurve.NewCurveAnalysis(c)
	}
	cp, err := algcurve.NewCurvePair(cas[0], cas[1], f.Options()...)
	if err != nil {
		return algcurve.PairAnalysis{}, err
	}
	return algcurve.NewPairAnalysisFromPair(cp), nil
}

// Resolve parses the query coordinate and perturbation.
func (q Query) Resolve() (algebraic.Real, algcurve.Sign, error) {
	x, err := algcurve.ParseX(q.X)
	if err != nil {
		return algebraic.Real{}, 0, err
	}
	s, err := ParsePerturb(q.Perturb)
	if err != nil {
		return algebraic.Real{}, 0, err
	}
	return x, s, nil
}

// ParsePerturb parses "-", "0" or "+" and their spelled-out names. The empty
// string means zero.
func ParsePerturb(s string) (algcurve.Sign, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "zero":
		return algcurve.Zero, nil
	case "-", "neg", "negative", "left":
		return algcurve.Negative, nil
	case "+", "pos", "positive", "right":
		return algcurve.Positive, nil
	}
	return 0, fmt.Errorf("pairfile: unknown perturbation %q", s)
}

// RenderOptions merges the plot settings into base.
func (p *Plot) RenderOptions(base plot.Options) plot.Options {
	if p == nil {
		return base
	}
	if p.Width > 0 {
		base.Width = p.Width
	}
	if p.Height > 0 {
		base.Height = p.Height
	}
	if len(p.Window) == 4 {
		base.XMin, base.XMax, base.YMin, base.YMax = p.Window[0], p.Window[1], p.Window[2], p.Window[3]
	}
	if p.Labels != nil {
		base.Labels = *p.Labels
	}
	return base
}
