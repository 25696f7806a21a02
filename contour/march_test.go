package contour

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCaseTableCompleteness(t *testing.T) {
	for code := CornerCode(0); code <= CodeFull; code++ {
		got := len(code.Segments())
		want := 1
		switch code {
		case CodeEmpty, CodeFull:
			want = 0
		case CodeSaddleNESW, CodeSaddleNWSE:
			want = 2
		}
		if got != want {
			t.Errorf("code %d: expected %d segments, got %d", code, want, got)
		}
	}
}

func TestCaseTableEdgesSeparateCorners(t *testing.T) {
	// Each edge joins two corners; a segment endpoint must sit on an edge
	// whose corners disagree.
	edgeCorners := map[Edge][2]CornerCode{
		EdgeNorth: {CornerNW, CornerNE},
		EdgeEast:  {CornerNE, CornerSE},
		EdgeSouth: {CornerSW, CornerSE},
		EdgeWest:  {CornerNW, CornerSW},
	}
	for code := CornerCode(0); code <= CodeFull; code++ {
		for _, pair := range code.Segments() {
			for _, e := range pair {
				c := edgeCorners[e]
				a := code&c[0] != 0
				b := code&c[1] != 0
				if a == b {
					t.Errorf("code %d: edge %s does not separate its corners", code, e)
				}
			}
		}
	}
}

func TestComplementCodesShareEdges(t *testing.T) {
	for code := CodeSW; code < CodeFull; code++ {
		if code.IsSaddle() {
			continue
		}
		inv := ^code & CodeFull
		a := code.Segments()[0]
		b := inv.Segments()[0]
		if !(a == b || (a[0] == b[1] && a[1] == b[0])) {
			t.Errorf("code %d and complement %d use different edges: %v vs %v", code, inv, a, b)
		}
	}
}

func TestSaddleSegments(t *testing.T) {
	want := []EdgePair{{EdgeNorth, EdgeWest}, {EdgeEast, EdgeSouth}}
	if diff := cmp.Diff(want, CodeSaddleNESW.Segments()); diff != "" {
		t.Errorf("saddle NE/SW mismatch (-want +got):\n%s", diff)
	}
	want = []EdgePair{{EdgeNorth, EdgeEast}, {EdgeWest, EdgeSouth}}
	if diff := cmp.Diff(want, CodeSaddleNWSE.Segments()); diff != "" {
		t.Errorf("saddle NW/SE mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyBitOrder(t *testing.T) {
	tests := []struct {
		name           string
		nw, ne, se, sw float64
		want           CornerCode
	}{
		{"none", 0, 0, 0, 0, CodeEmpty},
		{"nw", 1, 0, 0, 0, 8},
		{"ne", 0, 1, 0, 0, 4},
		{"se", 0, 0, 1, 0, 2},
		{"sw", 0, 0, 0, 1, 1},
		{"all", 1, 1, 1, 1, CodeFull},
		{"equal is below", 0.5, 0.5, 0.5, 0.5, CodeEmpty},
	}
	for _, tt := range tests {
		if got := Classify(tt.nw, tt.ne, tt.se, tt.sw, 0.5); got != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.want, got)
		}
	}
}

func TestInterpBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		a := rng.Float64()*200 - 100
		b := rng.Float64()*200 - 100
		if a == b {
			continue
		}
		lo, hi := math.Min(a, b), math.Max(a, b)
		th := lo + (hi-lo)*(0.001+0.998*rng.Float64())
		if th <= lo || th >= hi {
			continue
		}
		f := Interp(a, b, th)
		if f <= 0 || f >= 1 {
			t.Fatalf("Interp(%v, %v, %v) = %v, want in (0, 1)", a, b, th, f)
		}
	}

	for _, v := range []float64{-3, 0, 42} {
		if f := Interp(v, v, 10); f != 0.5 {
			t.Errorf("Interp(%v, %v) = %v, want 0.5", v, v, f)
		}
	}
}

func TestLevels(t *testing.T) {
	levels := Levels(-7, 12, 5, 3)
	want := []Level{
		{Value: -10, Major: false},
		{Value: -5, Major: false},
		{Value: 0, Major: true},
		{Value: 5, Major: false},
		{Value: 10, Major: false},
	}
	if diff := cmp.Diff(want, levels); diff != "" {
		t.Errorf("levels mismatch (-want +got):\n%s", diff)
	}

	// Negative multiples of step*3 are major too
	levels = Levels(-15, -14, 5, 3)
	if len(levels) != 1 || levels[0].Value != -15 || !levels[0].Major {
		t.Errorf("expected single major level at -15, got %v", levels)
	}
}

func TestLevelsDegenerate(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		step     float64
	}{
		{"empty range on multiple", 10, 10, 5},
		{"zero step", 0, 10, 0},
		{"inverted", 10, 0, 5},
		{"infinite", math.Inf(1), math.Inf(-1), 5},
		{"nan", math.NaN(), 3, 5},
	}
	for _, tt := range tests {
		if got := Levels(tt.min, tt.max, tt.step, 3); len(got) != 0 {
			t.Errorf("%s: expected no levels, got %v", tt.name, got)
		}
	}
}

func TestExtractSingleCell(t *testing.T) {
	g := NewGrid(2, 2, 10)
	// Only SW above threshold 5
	g.Set(0, 0, 0)
	g.Set(1, 0, 0)
	g.Set(1, 1, 0)
	g.Set(0, 1, 10)

	var segs []Segment
	n := Extract(g, 5, func(s Segment) { segs = append(segs, s) })
	if n != 1 || len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", n)
	}
	// West edge midpoint to south edge midpoint
	want := Segment{X0: 0, Y0: 5, X1: 5, Y1: 10}
	if diff := cmp.Diff(want, segs[0]); diff != "" {
		t.Errorf("segment mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractInterpolatesCrossing(t *testing.T) {
	g := NewGrid(2, 2, 10)
	// Left column above, right column below: vertical line at x where value hits 2
	g.Set(0, 0, 4)
	g.Set(1, 0, 0)
	g.Set(0, 1, 4)
	g.Set(1, 1, 0)

	var segs []Segment
	Extract(g, 2, func(s Segment) { segs = append(segs, s) })
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	s := segs[0]
	if math.Abs(s.X0-5) > 1e-9 || math.Abs(s.X1-5) > 1e-9 {
		t.Errorf("expected vertical segment at x=5, got %+v", s)
	}
}

func TestExtractSegmentsOnCellEdges(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	g := NewGrid(12, 9, 10)
	for i := range g.Values {
		g.Values[i] = rng.Float64()*40 - 20
	}

	onEdge := func(x, y float64) bool {
		const eps = 1e-9
		fx := math.Mod(x, g.Res)
		fy := math.Mod(y, g.Res)
		return fx < eps || g.Res-fx < eps || fy < eps || g.Res-fy < eps
	}

	for _, th := range []float64{-10, -5, 0, 5, 10} {
		n := Extract(g, th, func(s Segment) {
			if !onEdge(s.X0, s.Y0) || !onEdge(s.X1, s.Y1) {
				t.Errorf("threshold %v: segment %+v leaves the cell edges", th, s)
			}
		})
		if max := MaxSegments(g.Cols, g.Rows); n > max {
			t.Errorf("threshold %v: %d segments exceeds bound %d", th, n, max)
		}
	}
}

func TestExtractUniformGridDrawsNothing(t *testing.T) {
	g := NewGrid(5, 5, 10)
	for i := range g.Values {
		g.Values[i] = 3
	}
	if n := Extract(g, 0, nil); n != 0 {
		t.Errorf("expected no segments above uniform field, got %d", n)
	}
	if n := Extract(g, 5, nil); n != 0 {
		t.Errorf("expected no segments below uniform field, got %d", n)
	}
}

func TestMaxSegments(t *testing.T) {
	if got := MaxSegments(1, 10); got != 0 {
		t.Errorf("expected 0 for single column, got %d", got)
	}
	if got := MaxSegments(3, 4); got != 24 {
		t.Errorf("expected 24, got %d", got)
	}
}
