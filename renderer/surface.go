package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaylibSurface paints contours into an offscreen render texture. The
// texture is blitted by Draw with the vertical translation applied, so
// translating never forces a repaint.
type RaylibSurface struct {
	target        rl.RenderTexture2D
	width, height int32

	stroke    rl.Color
	thickness float32
	path      []rl.Vector2 // Start/end pairs
	cursor    rl.Vector2

	translateY  float32
	drawing     bool
	initialized bool
}

// NewRaylibSurface creates a surface for a width x height canvas.
func NewRaylibSurface(width, height int32) *RaylibSurface {
	return &RaylibSurface{
		width:     width,
		height:    height,
		stroke:    rl.White,
		thickness: 1,
	}
}

// Init allocates the render texture (must be called after the raylib window is created).
func (s *RaylibSurface) Init() {
	if s.initialized {
		return
	}
	s.target = rl.LoadRenderTexture(s.width, s.height)
	rl.SetTextureFilter(s.target.Texture, rl.FilterBilinear)
	s.initialized = true
}

// Resize recreates the render texture at the new size.
func (s *RaylibSurface) Resize(width, height int32) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	if s.initialized {
		rl.UnloadRenderTexture(s.target)
		s.initialized = false
		s.Init()
	}
}

// Clear starts a new frame on the render texture.
func (s *RaylibSurface) Clear() {
	if !s.initialized {
		s.Init()
	}
	if !s.drawing {
		rl.BeginTextureMode(s.target)
		s.drawing = true
	}
	rl.ClearBackground(rl.Blank)
}

// BeginPath discards any unstroked segments.
func (s *RaylibSurface) BeginPath() {
	s.path = s.path[:0]
}

// SetStrokeColor sets the color used by Stroke.
func (s *RaylibSurface) SetStrokeColor(c color.NRGBA) {
	s.stroke = rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// SetLineWidth sets the thickness used by Stroke.
func (s *RaylibSurface) SetLineWidth(w float64) {
	s.thickness = float32(w)
}

// MoveTo moves the pen without drawing.
func (s *RaylibSurface) MoveTo(x, y float64) {
	s.cursor = rl.Vector2{X: float32(x), Y: float32(y)}
}

// LineTo adds a segment from the pen to (x, y).
func (s *RaylibSurface) LineTo(x, y float64) {
	to := rl.Vector2{X: float32(x), Y: float32(y)}
	s.path = append(s.path, s.cursor, to)
	s.cursor = to
}

// Stroke draws the current path.
func (s *RaylibSurface) Stroke() {
	for i := 0; i+1 < len(s.path); i += 2 {
		rl.DrawLineEx(s.path[i], s.path[i+1], s.thickness, s.stroke)
	}
	s.path = s.path[:0]
}

// SetTranslateY sets the vertical offset used by Draw.
func (s *RaylibSurface) SetTranslateY(dy float64) {
	s.translateY = float32(dy)
}

// Present ends texture mode for the frame.
func (s *RaylibSurface) Present() {
	if s.drawing {
		rl.EndTextureMode()
		s.drawing = false
	}
}

// Draw blits the painted contours to the screen at the current translation.
func (s *RaylibSurface) Draw() {
	if !s.initialized {
		return
	}
	// Render textures are stored upside down
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(s.width), Height: -float32(s.height)}
	rl.DrawTextureRec(s.target.Texture, src, rl.Vector2{X: 0, Y: s.translateY}, rl.White)
}

// TranslateY returns the current vertical offset.
func (s *RaylibSurface) TranslateY() float32 {
	return s.translateY
}

// Unload frees resources.
func (s *RaylibSurface) Unload() {
	if s.initialized {
		rl.UnloadRenderTexture(s.target)
		s.initialized = false
	}
}
