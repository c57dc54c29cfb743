package plot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"math/big"
	"sync"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/algcurve"
	"github.com/gogpu/algcurve/algebraic"
	"github.com/gogpu/algcurve/internal/parallel"
)

// ErrBadViewport is returned for empty images and for coordinate ranges that
// are empty, inverted or not finite.
var ErrBadViewport = errors.New("plot: invalid viewport")

// Options configures Render.
type Options struct {
	// Width and Height of the image in pixels.
	Width, Height int

	// Visible coordinate window. All four bounds must be finite.
	XMin, XMax, YMin, YMax float64

	// Columns is the number of sampled x positions. Zero selects one column
	// every two pixels.
	Columns int

	// Workers bounds the goroutines slicing columns. Zero selects GOMAXPROCS.
	Workers int

	// Labels draws event indices and the curve equations.
	Labels bool
}

// DefaultOptions returns a 512x512 view of [-2, 2] x [-2, 2] with labels.
func DefaultOptions() Options {
	return Options{
		Width:  512,
		Height: 512,
		XMin:   -2,
		XMax:   2,
		YMin:   -2,
		YMax:   2,
		Labels: true,
	}
}

func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrBadViewport, o.Width, o.Height)
	}
	for _, v := range [...]float64{o.XMin, o.XMax, o.YMin, o.YMax} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return fmt.Errorf("%w: window [%g, %g] x [%g, %g] is not finite", ErrBadViewport, o.XMin, o.XMax, o.YMin, o.YMax)
		}
	}
	if !(o.XMin < o.XMax) || !(o.YMin < o.YMax) {
		return fmt.Errorf("%w: window [%g, %g] x [%g, %g]", ErrBadViewport, o.XMin, o.XMax, o.YMin, o.YMax)
	}
	return nil
}

// Colors used for the two curves, their intersections and event lines.
var (
	Curve0Color       = color.RGBA{R: 30, G: 90, B: 200, A: 255}
	Curve1Color       = color.RGBA{R: 200, G: 40, B: 40, A: 255}
	IntersectionColor = color.RGBA{A: 255}
	EventColor        = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

const dotRadius = 1.5

// sample is one point found on a column.
type sample struct {
	x, y float32
	on   [2]bool
}

// Render draws the pair by slicing it along evenly spaced columns and marking
// every point found on each column. Vertical lines mark the events inside the
// window.
func Render(pa algcurve.PairAnalysis, opts Options) (*image.RGBA, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	cols := opts.Columns
	if cols <= 0 {
		cols = max(opts.Width/2, 1)
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	v := newViewport(opts)
	events := visibleEvents(pa, opts)
	for _, e := range events {
		px := v.px(e.x)
		fillRect(img, px-0.5, 0, px+0.5, float32(opts.Height), EventColor)
	}

	columns := sliceColumns(pa, opts, cols)
	var layers [3]*vector.Rasterizer
	for i := range layers {
		layers[i] = vector.NewRasterizer(opts.Width, opts.Height)
	}
	for _, col := range columns {
		for _, s := range col {
			layer := 0
			switch {
			case s.on[0] && s.on[1]:
				layer = 2
			case s.on[1]:
				layer = 1
			}
			addDot(layers[layer], v.px(float64(s.x)), v.py(float64(s.y)), dotRadius)
		}
	}
	for i, c := range []color.RGBA{Curve0Color, Curve1Color, IntersectionColor} {
		layers[i].Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
	}

	if opts.Labels {
		if err := drawLabels(img, pa, v, events); err != nil {
			return nil, err
		}
	}

	algcurve.Logger().Debug("plot: rendered",
		"width", opts.Width,
		"height", opts.Height,
		"columns", cols,
		"events", len(events),
		"elapsed", time.Since(start))
	return img, nil
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

type viewport struct {
	o      Options
	sx, sy float64
}

func newViewport(o Options) viewport {
	return viewport{
		o:  o,
		sx: float64(o.Width) / (o.XMax - o.XMin),
		sy: float64(o.Height) / (o.YMax - o.YMin),
	}
}

func (v viewport) px(x float64) float32 { return float32((x - v.o.XMin) * v.sx) }
func (v viewport) py(y float64) float32 { return float32((v.o.YMax - y) * v.sy) }

type eventMark struct {
	index int
	x     float64
}

// visibleEvents returns the events inside the window.
func visibleEvents(pa algcurve.PairAnalysis, o Options) []eventMark {
	var marks []eventMark
	for i := range pa.NumEvents() {
		x := pa.EventX(i).Float64()
		if x >= o.XMin && x <= o.XMax {
			marks = append(marks, eventMark{index: i, x: x})
		}
	}
	return marks
}

// sliceColumns slices the pair at the centre of every column in parallel.
func sliceColumns(pa algcurve.PairAnalysis, o Options, cols int) [][]sample {
	xmin := new(big.Rat).SetFloat64(o.XMin)
	step := new(big.Rat).SetFloat64(o.XMax - o.XMin)
	step.Quo(step, new(big.Rat).SetInt64(int64(2*cols)))

	pool := parallel.NewWorkerPool(o.Workers)
	defer pool.Close()

	out := make([][]sample, cols)
	pool.For(cols, func(k int) {
		x := new(big.Rat).Mul(step, new(big.Rat).SetInt64(int64(2*k+1)))
		x.Add(x, xmin)
		xf, _ := x.Float64()
		line := pa.SliceAt(algebraic.RealFromRat(x))
		for _, p := range line.Points() {
			y := p.Y()
			if y < o.YMin || y > o.YMax {
				continue
			}
			out[k] = append(out[k], sample{
				x:  float32(xf),
				y:  float32(y),
				on: [2]bool{p.On(algcurve.Curve0), p.On(algcurve.Curve1)},
			})
		}
	})
	return out
}

// addDot appends an octagon approximating a disc.
func addDot(z *vector.Rasterizer, cx, cy, r float32) {
	const k = 0.41421356 // tan(pi/8)
	a, b := r, r*k
	z.MoveTo(cx+a, cy+b)
	z.LineTo(cx+b, cy+a)
	z.LineTo(cx-b, cy+a)
	z.LineTo(cx-a, cy+b)
	z.LineTo(cx-a, cy-b)
	z.LineTo(cx-b, cy-a)
	z.LineTo(cx+b, cy-a)
	z.LineTo(cx+a, cy-b)
	z.ClosePath()
}

func fillRect(dst draw.Image, x0, y0, x1, y1 float32, c color.Color) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(x0, y0)
	z.LineTo(x1, y0)
	z.LineTo(x1, y1)
	z.LineTo(x0, y1)
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

var (
	labelFont     *opentype.Font
	labelFontErr  error
	labelFontOnce sync.Once
)

func newLabelFace(size float64) (font.Face, error) {
	labelFontOnce.Do(func() {
		labelFont, labelFontErr = opentype.Parse(goregular.TTF)
	})
	if labelFontErr != nil {
		return nil, fmt.Errorf("plot: parse label font: %w", labelFontErr)
	}
	return opentype.NewFace(labelFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func drawLabels(img *image.RGBA, pa algcurve.PairAnalysis, v viewport, events []eventMark) error {
	face, err := newLabelFace(11)
	if err != nil {
		return err
	}
	defer func() {
		_ = face.Close()
	}()

	d := &font.Drawer{Dst: img, Src: image.NewUniform(color.Gray{Y: 90}), Face: face}
	lineHeight := face.Metrics().Height

	for _, e := range events {
		d.Dot = fixed.Point26_6{X: fixed.I(int(v.px(e.x)) + 2), Y: lineHeight}
		d.DrawString(fmt.Sprintf("e%d", e.index))
	}

	y := fixed.I(img.Bounds().Dy()) - lineHeight/2
	for _, w := range []algcurve.Which{algcurve.Curve1, algcurve.Curve0} {
		d.Src = image.NewUniform(curveColor(w))
		d.Dot = fixed.Point26_6{X: fixed.I(4), Y: y}
		d.DrawString(fmt.Sprintf("%v: %v = 0", w, pa.Curve(w).Polynomial()))
		y -= lineHeight
	}
	return nil
}

func curveColor(w algcurve.Which) color.RGBA {
	if w == algcurve.Curve1 {
		return Curve1Color
	}
	return Curve0Color
}
