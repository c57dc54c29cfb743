package algcurve

// PairOption configures a CurvePair during creation.
//
// Example:
//
//	cp, err := algcurve.NewCurvePair(a, b, algcurve.WithPrecision(32))
type PairOption func(*pairOptions)

// pairOptions holds optional configuration for CurvePair creation.
type pairOptions struct {
	precision uint // y-intervals are refined to width 2^-precision
	workers   int  // 0 means GOMAXPROCS
}

// DefaultPrecision is the default y-interval precision in bits.
const DefaultPrecision = 16

func defaultPairOptions() pairOptions {
	return pairOptions{precision: DefaultPrecision}
}

// WithPrecision sets the number of bits to which the y-intervals of
// materialized line points are refined. Precision affects only how tight the
// intervals are, never the topology of a line.
func WithPrecision(bits uint) PairOption {
	return func(o *pairOptions) {
		o.precision = bits
	}
}

// WithWorkers sets the number of goroutines used by MaterializeAll.
// n <= 0 selects GOMAXPROCS.
func WithWorkers(n int) PairOption {
	return func(o *pairOptions) {
		o.workers = n
	}
}
