// Package canvas provides contour surfaces that need no graphics context:
// an SVG recorder for headless runs and a braille rasterizer for terminals.
package canvas

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// SVGSurface records one frame of contours as SVG path elements. It is used
// for headless runs and still previews.
type SVGSurface struct {
	width, height int
	background    color.NRGBA

	paths      []svgPath
	current    strings.Builder
	stroke     color.NRGBA
	lineWidth  float64
	segments   int
	translateY float64
}

type svgPath struct {
	d      string
	stroke color.NRGBA
	width  float64
}

// NewSVGSurface creates a surface for a width x height canvas.
func NewSVGSurface(width, height int, background color.NRGBA) *SVGSurface {
	return &SVGSurface{
		width:      width,
		height:     height,
		background: background,
		lineWidth:  1,
	}
}

// Resize changes the canvas size written by the next WriteTo.
func (s *SVGSurface) Resize(width, height int) {
	s.width, s.height = width, height
}

func (s *SVGSurface) Clear() {
	s.paths = s.paths[:0]
	s.current.Reset()
	s.segments = 0
}

func (s *SVGSurface) BeginPath() {
	s.current.Reset()
}

func (s *SVGSurface) SetStrokeColor(c color.NRGBA) { s.stroke = c }

func (s *SVGSurface) SetLineWidth(w float64) { s.lineWidth = w }

func (s *SVGSurface) MoveTo(x, y float64) {
	s.current.WriteByte('M')
	writeCoord(&s.current, x, y)
}

func (s *SVGSurface) LineTo(x, y float64) {
	s.current.WriteByte('L')
	writeCoord(&s.current, x, y)
	s.segments++
}

// Stroke closes the current path into a path element. Empty paths are dropped.
func (s *SVGSurface) Stroke() {
	if s.current.Len() == 0 {
		return
	}
	s.paths = append(s.paths, svgPath{d: s.current.String(), stroke: s.stroke, width: s.lineWidth})
	s.current.Reset()
}

func (s *SVGSurface) SetTranslateY(dy float64) { s.translateY = dy }

// Paths returns the number of stroked path elements in the frame.
func (s *SVGSurface) Paths() int { return len(s.paths) }

// Segments returns the number of line segments in the frame.
func (s *SVGSurface) Segments() int { return s.segments }

// TranslateY returns the last translation.
func (s *SVGSurface) TranslateY() float64 { return s.translateY }

// WriteTo writes the recorded frame as an SVG document.
func (s *SVGSurface) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	cw := &countingWriter{w: bw}

	fmt.Fprintf(cw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		s.width, s.height, s.width, s.height)
	fmt.Fprintf(cw, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", hexColor(s.background))
	fmt.Fprintf(cw, `<g fill="none" stroke-linecap="round" transform="translate(0 %s)">`+"\n", formatFloat(s.translateY))
	for _, p := range s.paths {
		fmt.Fprintf(cw, `<path d="%s" stroke="%s" stroke-opacity="%s" stroke-width="%s"/>`+"\n",
			p.d, hexColor(p.stroke), formatFloat(float64(p.stroke.A)/255), formatFloat(p.width))
	}
	fmt.Fprint(cw, "</g>\n</svg>\n")

	if cw.err != nil {
		return cw.n, cw.err
	}
	return cw.n, bw.Flush()
}

// WriteFile writes the recorded frame to path.
func (s *SVGSurface) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := s.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}

func writeCoord(b *strings.Builder, x, y float64) {
	b.WriteString(formatFloat(x))
	b.WriteByte(' ')
	b.WriteString(formatFloat(y))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
