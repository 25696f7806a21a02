package contour

import "math"

// Edge names a side of a grid cell. Contour segments join points on edges.
type Edge uint8

const (
	EdgeNorth Edge = iota // between NW and NE
	EdgeEast              // between NE and SE
	EdgeSouth             // between SW and SE
	EdgeWest              // between NW and SW
)

func (e Edge) String() string {
	switch e {
	case EdgeNorth:
		return "north"
	case EdgeEast:
		return "east"
	case EdgeSouth:
		return "south"
	case EdgeWest:
		return "west"
	default:
		return "unknown"
	}
}

// CornerCode packs the above-threshold state of a cell's corners as
// NW<<3 | NE<<2 | SE<<1 | SW.
type CornerCode uint8

// Corner bits.
const (
	CornerSW CornerCode = 1 << iota
	CornerSE
	CornerNE
	CornerNW
)

// The sixteen corner configurations.
const (
	CodeEmpty      CornerCode = 0
	CodeSW                    = CornerSW
	CodeSE                    = CornerSE
	CodeSouth                 = CornerSE | CornerSW
	CodeNE                    = CornerNE
	CodeSaddleNESW            = CornerNE | CornerSW
	CodeEast                  = CornerNE | CornerSE
	CodeNotNW                 = CornerNE | CornerSE | CornerSW
	CodeNW                    = CornerNW
	CodeWest                  = CornerNW | CornerSW
	CodeSaddleNWSE            = CornerNW | CornerSE
	CodeNotNE                 = CornerNW | CornerSE | CornerSW
	CodeNorth                 = CornerNW | CornerNE
	CodeNotSE                 = CornerNW | CornerNE | CornerSW
	CodeNotSW                 = CornerNW | CornerNE | CornerSE
	CodeFull                  = CornerNW | CornerNE | CornerSE | CornerSW
)

// EdgePair is one segment of a case, from the first edge to the second.
type EdgePair [2]Edge

type marchCase struct {
	n     int
	pairs [2]EdgePair
}

// Saddles always take the same diagonal reading; no center sample is used.
var marchCases = [16]marchCase{
	CodeEmpty:      {},
	CodeSW:         {1, [2]EdgePair{{EdgeWest, EdgeSouth}}},
	CodeSE:         {1, [2]EdgePair{{EdgeEast, EdgeSouth}}},
	CodeSouth:      {1, [2]EdgePair{{EdgeWest, EdgeEast}}},
	CodeNE:         {1, [2]EdgePair{{EdgeNorth, EdgeEast}}},
	CodeSaddleNESW: {2, [2]EdgePair{{EdgeNorth, EdgeWest}, {EdgeEast, EdgeSouth}}},
	CodeEast:       {1, [2]EdgePair{{EdgeNorth, EdgeSouth}}},
	CodeNotNW:      {1, [2]EdgePair{{EdgeNorth, EdgeWest}}},
	CodeNW:         {1, [2]EdgePair{{EdgeNorth, EdgeWest}}},
	CodeWest:       {1, [2]EdgePair{{EdgeNorth, EdgeSouth}}},
	CodeSaddleNWSE: {2, [2]EdgePair{{EdgeNorth, EdgeEast}, {EdgeWest, EdgeSouth}}},
	CodeNotNE:      {1, [2]EdgePair{{EdgeNorth, EdgeEast}}},
	CodeNorth:      {1, [2]EdgePair{{EdgeWest, EdgeEast}}},
	CodeNotSE:      {1, [2]EdgePair{{EdgeEast, EdgeSouth}}},
	CodeNotSW:      {1, [2]EdgePair{{EdgeWest, EdgeSouth}}},
	CodeFull:       {},
}

// Segments returns the edge pairs drawn for the code.
func (c CornerCode) Segments() []EdgePair {
	mc := &marchCases[c&CodeFull]
	return mc.pairs[:mc.n]
}

// IsSaddle reports whether diagonal corners agree and the other diagonal disagrees.
func (c CornerCode) IsSaddle() bool {
	return c == CodeSaddleNESW || c == CodeSaddleNWSE
}

// Classify computes the corner code of a cell for a threshold. A corner is
// set when its value is strictly above the threshold.
func Classify(nw, ne, se, sw, threshold float64) CornerCode {
	var c CornerCode
	if nw > threshold {
		c |= CornerNW
	}
	if ne > threshold {
		c |= CornerNE
	}
	if se > threshold {
		c |= CornerSE
	}
	if sw > threshold {
		c |= CornerSW
	}
	return c
}

// Interp returns where threshold falls between corner values a and b as a
// fraction of the edge. Equal corners use the midpoint.
func Interp(a, b, threshold float64) float64 {
	if a == b {
		return 0.5
	}
	return (threshold - a) / (b - a)
}

// Segment is a line in canvas pixels.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// Level is one contour threshold.
type Level struct {
	Value float64
	Major bool // Drawn with the heavier stroke
}

// Levels lists every multiple of step in [floor(min/step)*step,
// ceil(max/step)*step). A level is major when its multiple index is
// divisible by majorMultiple.
func Levels(min, max, step float64, majorMultiple int) []Level {
	if step <= 0 || math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) || min > max {
		return nil
	}
	lo := int(math.Floor(min / step))
	hi := int(math.Ceil(max / step))
	if hi <= lo {
		return nil
	}
	levels := make([]Level, 0, hi-lo)
	for k := lo; k < hi; k++ {
		major := majorMultiple > 0 && k%majorMultiple == 0
		levels = append(levels, Level{Value: float64(k) * step, Major: major})
	}
	return levels
}

// MaxSegments is the upper bound on segments a single level can produce.
func MaxSegments(cols, rows int) int {
	if cols < 2 || rows < 2 {
		return 0
	}
	return 4 * (cols - 1) * (rows - 1)
}

// Extract traces the threshold across every 2x2 block of g and calls emit
// for each segment. Returns the number of segments emitted.
func Extract(g *Grid, threshold float64, emit func(Segment)) int {
	res := g.Res
	count := 0
	for y := 0; y < g.Rows-1; y++ {
		top := y * g.Cols
		bottom := top + g.Cols
		py := float64(y) * res
		for x := 0; x < g.Cols-1; x++ {
			nw := g.Values[top+x]
			ne := g.Values[top+x+1]
			se := g.Values[bottom+x+1]
			sw := g.Values[bottom+x]

			code := Classify(nw, ne, se, sw, threshold)
			pairs := code.Segments()
			if len(pairs) == 0 {
				continue
			}

			px := float64(x) * res
			for _, pair := range pairs {
				x0, y0 := edgePoint(pair[0], px, py, res, nw, ne, se, sw, threshold)
				x1, y1 := edgePoint(pair[1], px, py, res, nw, ne, se, sw, threshold)
				if emit != nil {
					emit(Segment{X0: x0, Y0: y0, X1: x1, Y1: y1})
				}
				count++
			}
		}
	}
	return count
}

// edgePoint locates the crossing on an edge of the cell whose NW corner is
// at (px, py).
func edgePoint(e Edge, px, py, res, nw, ne, se, sw, t float64) (float64, float64) {
	switch e {
	case EdgeNorth:
		return px + res*Interp(nw, ne, t), py
	case EdgeEast:
		return px + res, py + res*Interp(ne, se, t)
	case EdgeSouth:
		return px + res*Interp(sw, se, t), py + res
	default:
		return px, py + res*Interp(nw, sw, t)
	}
}
