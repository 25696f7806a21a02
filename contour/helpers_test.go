package contour

import (
	"fmt"
	"image/color"
	"sync"
)

// sourceFunc adapts a function to noise.Source.
type sourceFunc func(x, y, z float64) float64

func (f sourceFunc) Noise3D(x, y, z float64) float64 { return f(x, y, z) }

// recordingSurface logs every draw call.
type recordingSurface struct {
	mu        sync.Mutex
	calls     []string
	moves     int
	lines     int
	strokes   int
	widths    []float64
	translate float64
	presented int
}

func (s *recordingSurface) log(format string, args ...any) {
	s.calls = append(s.calls, fmt.Sprintf(format, args...))
}

func (s *recordingSurface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log("clear")
}

func (s *recordingSurface) BeginPath() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log("begin")
}

func (s *recordingSurface) SetStrokeColor(c color.NRGBA) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log("color %d,%d,%d,%d", c.R, c.G, c.B, c.A)
}

func (s *recordingSurface) SetLineWidth(w float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.widths = append(s.widths, w)
	s.log("width %g", w)
}

func (s *recordingSurface) MoveTo(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.moves++
}

func (s *recordingSurface) LineTo(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines++
}

func (s *recordingSurface) Stroke() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.strokes++
	s.log("stroke")
}

func (s *recordingSurface) SetTranslateY(dy float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.translate = dy
	s.log("translate")
}

func (s *recordingSurface) Present() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.presented++
	s.log("present")
}

func (s *recordingSurface) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	*s = recordingSurface{}
}

// testParams returns the default params with a fixed desktop resolution.
func testParams() Params {
	p := DefaultParams()
	p.Resolution = 10
	p.MobileResolution = 10
	return p
}
