package algcurve

import (
	"math/big"
	"testing"
)

func TestDefaultPairOptions(t *testing.T) {
	o := defaultPairOptions()
	if o.precision != DefaultPrecision {
		t.Errorf("precision = %d, want %d", o.precision, DefaultPrecision)
	}
	if o.workers != 0 {
		t.Errorf("workers = %d, want 0", o.workers)
	}
}

func TestPairOptions(t *testing.T) {
	o := defaultPairOptions()
	for _, opt := range []PairOption{WithPrecision(8), WithWorkers(3)} {
		opt(&o)
	}
	if o.precision != 8 || o.workers != 3 {
		t.Errorf("options = %+v, want precision 8 and 3 workers", o)
	}
}

func TestWithPrecisionSetsWidth(t *testing.T) {
	tests := []struct {
		bits uint
		want *big.Rat
	}{
		{0, big.NewRat(1, 1)},
		{4, big.NewRat(1, 16)},
		{DefaultPrecision, big.NewRat(1, 1<<DefaultPrecision)},
	}
	a, b := mustAnalysis(t, "y - x"), mustAnalysis(t, "y + x")
	for _, tt := range tests {
		cp, err := NewCurvePair(a, b, WithPrecision(tt.bits))
		if err != nil {
			t.Fatal(err)
		}
		if cp.width.Cmp(tt.want) != 0 {
			t.Errorf("WithPrecision(%d): width = %v, want %v", tt.bits, cp.width, tt.want)
		}
	}
}
