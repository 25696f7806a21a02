package canvas

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Braille cells hold a 2x4 dot matrix.
const (
	brailleBase = 0x2800
	dotsX       = 2
	dotsY       = 4
)

// brailleBits maps a dot position within a cell to its bit.
var brailleBits = [dotsY][dotsX]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// TerminalSurface rasterizes contours into braille characters on a tcell
// screen. Each terminal cell stands for cellW x cellH canvas pixels.
type TerminalSurface struct {
	screen       tcell.Screen
	cellW, cellH int
	cols, rows   int

	dots  []uint8 // Braille bits per cell
	heavy []bool  // Cell touched by a major stroke

	background colorful.Color
	stroke     color.NRGBA
	lineWidth  float64
	lightStyle tcell.Style
	heavyStyle tcell.Style
	blankStyle tcell.Style

	path       [][4]float64
	cursorX    float64
	cursorY    float64
	translateY float64
}

// NewTerminalSurface creates a surface covering the whole screen.
func NewTerminalSurface(screen tcell.Screen, cellW, cellH int, background color.NRGBA) *TerminalSurface {
	if cellW <= 0 {
		cellW = 8
	}
	if cellH <= 0 {
		cellH = 16
	}
	bg, _ := colorful.MakeColor(background)
	s := &TerminalSurface{
		screen:     screen,
		cellW:      cellW,
		cellH:      cellH,
		background: bg,
		lineWidth:  1,
	}
	s.blankStyle = tcell.StyleDefault.Background(toTcell(bg))
	s.SetStrokeColor(color.NRGBA{R: 0xed, G: 0xed, B: 0xed, A: 0xff})
	w, h := screen.Size()
	s.Resize(w, h)
	return s
}

// Resize adopts a new screen size in cells.
func (s *TerminalSurface) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	s.cols, s.rows = cols, rows
	s.dots = make([]uint8, cols*rows)
	s.heavy = make([]bool, cols*rows)
}

// CanvasSize returns the canvas dimensions in pixels.
func (s *TerminalSurface) CanvasSize() (width, height int) {
	return s.cols * s.cellW, s.rows * s.cellH
}

// CellToCanvas converts a cell position to the canvas pixel at its center.
func (s *TerminalSurface) CellToCanvas(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * float64(s.cellW), (float64(cy) + 0.5) * float64(s.cellH)
}

// Clear erases the dot buffer.
func (s *TerminalSurface) Clear() {
	clear(s.dots)
	clear(s.heavy)
	s.path = s.path[:0]
}

// BeginPath discards any unstroked segments.
func (s *TerminalSurface) BeginPath() {
	s.path = s.path[:0]
}

// SetStrokeColor derives the cell styles by blending the color over the
// background at its alpha.
func (s *TerminalSurface) SetStrokeColor(c color.NRGBA) {
	if c == s.stroke {
		return
	}
	s.stroke = c
	line := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	alpha := float64(c.A) / 255
	light := s.background.BlendRgb(line, alpha)
	heavy := s.background.BlendRgb(line, math.Min(1, alpha*1.6))
	s.lightStyle = s.blankStyle.Foreground(toTcell(light))
	s.heavyStyle = s.blankStyle.Foreground(toTcell(heavy))
}

// SetLineWidth sets the width of the next stroke. Widths above 1 are drawn
// with the heavy style.
func (s *TerminalSurface) SetLineWidth(w float64) {
	s.lineWidth = w
}

// MoveTo moves the pen without drawing.
func (s *TerminalSurface) MoveTo(x, y float64) {
	s.cursorX, s.cursorY = x, y
}

// LineTo adds a segment from the pen to (x, y).
func (s *TerminalSurface) LineTo(x, y float64) {
	s.path = append(s.path, [4]float64{s.cursorX, s.cursorY, x, y})
	s.cursorX, s.cursorY = x, y
}

// Stroke rasterizes the current path into dots.
func (s *TerminalSurface) Stroke() {
	heavy := s.lineWidth > 1
	sx := float64(dotsX) / float64(s.cellW)
	sy := float64(dotsY) / float64(s.cellH)
	for _, seg := range s.path {
		x0 := int(math.Floor(seg[0] * sx))
		y0 := int(math.Floor(seg[1] * sy))
		x1 := int(math.Floor(seg[2] * sx))
		y1 := int(math.Floor(seg[3] * sy))
		plotLine(x0, y0, x1, y1, func(x, y int) {
			s.setDot(x, y, heavy)
		})
	}
	s.path = s.path[:0]
}

func (s *TerminalSurface) setDot(dx, dy int, heavy bool) {
	if dx < 0 || dy < 0 {
		return
	}
	cx, cy := dx/dotsX, dy/dotsY
	if cx >= s.cols || cy >= s.rows {
		return
	}
	i := cy*s.cols + cx
	s.dots[i] |= brailleBits[dy%dotsY][dx%dotsX]
	if heavy {
		s.heavy[i] = true
	}
}

// SetTranslateY sets the vertical offset applied on Present.
func (s *TerminalSurface) SetTranslateY(dy float64) {
	s.translateY = dy
}

// Present writes the dot buffer to the screen, shifted by the translation
// rounded to whole dot rows.
func (s *TerminalSurface) Present() {
	shift := int(math.Round(s.translateY * float64(dotsY) / float64(s.cellH)))
	for cy := 0; cy < s.rows; cy++ {
		for cx := 0; cx < s.cols; cx++ {
			bits, heavy := s.cellAt(cx, cy, shift)
			if bits == 0 {
				s.screen.SetContent(cx, cy, ' ', nil, s.blankStyle)
				continue
			}
			style := s.lightStyle
			if heavy {
				style = s.heavyStyle
			}
			s.screen.SetContent(cx, cy, rune(brailleBase+int(bits)), nil, style)
		}
	}
	s.screen.Show()
}

// cellAt gathers the dots landing in screen cell (cx, cy) after shifting
// the buffer down by shift dot rows.
func (s *TerminalSurface) cellAt(cx, cy, shift int) (uint8, bool) {
	if shift%dotsY == 0 {
		src := cy - shift/dotsY
		if src < 0 || src >= s.rows {
			return 0, false
		}
		i := src*s.cols + cx
		return s.dots[i], s.heavy[i]
	}

	var bits uint8
	heavy := false
	for row := 0; row < dotsY; row++ {
		srcY := cy*dotsY + row - shift
		if srcY < 0 || srcY >= s.rows*dotsY {
			continue
		}
		i := (srcY/dotsY)*s.cols + cx
		srcRow := srcY % dotsY
		for col := 0; col < dotsX; col++ {
			if s.dots[i]&brailleBits[srcRow][col] != 0 {
				bits |= brailleBits[row][col]
				heavy = heavy || s.heavy[i]
			}
		}
	}
	return bits, heavy
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
