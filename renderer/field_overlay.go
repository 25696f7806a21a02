package renderer

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pthm-cable/topo/contour"
)

// Overlay ramps.
var (
	coldColor = colorful.Color{R: 0.13, G: 0.29, B: 0.53}
	hotColor  = colorful.Color{R: 0.93, G: 0.45, B: 0.22}
)

// FieldOverlay draws a grid-aligned scalar field as a translucent texture
// stretched over the canvas. It is a debug view of the perturbation field
// and of the sampled noise grid.
type FieldOverlay struct {
	tex         rl.Texture2D
	texW, texH  int
	pixels      []color.RGBA
	alpha       uint8
	initialized bool
}

// NewFieldOverlay creates an overlay drawn at the given opacity.
func NewFieldOverlay(alpha uint8) *FieldOverlay {
	return &FieldOverlay{alpha: alpha}
}

// ensure (re)allocates the texture for a cols x rows grid.
func (o *FieldOverlay) ensure(cols, rows int) {
	if o.initialized && o.texW == cols && o.texH == rows {
		return
	}
	if o.initialized {
		rl.UnloadTexture(o.tex)
	}
	img := rl.GenImageColor(cols, rows, rl.Blank)
	o.tex = rl.LoadTextureFromImage(img)
	rl.SetTextureFilter(o.tex, rl.FilterBilinear)
	rl.UnloadImage(img)
	o.texW, o.texH = cols, rows
	o.pixels = make([]color.RGBA, cols*rows)
	o.initialized = true
}

// UpdatePerturbation uploads the perturbation field, normalized to its peak.
func (o *FieldOverlay) UpdatePerturbation(f *contour.Field) {
	if f == nil {
		return
	}
	o.ensure(f.Cols, f.Rows)
	peak := f.Peak()
	for y := 0; y < f.Rows; y++ {
		for x := 0; x < f.Cols; x++ {
			v := 0.0
			if peak > 0 {
				v = f.At(x, y) / peak
			}
			o.pixels[y*f.Cols+x] = o.shade(v, v)
		}
	}
	rl.UpdateTexture(o.tex, o.pixels)
}

// UpdateGrid uploads the sampled grid, mapped from [-amplitude, amplitude].
func (o *FieldOverlay) UpdateGrid(g *contour.Grid, amplitude float64) {
	if g == nil || amplitude <= 0 {
		return
	}
	o.ensure(g.Cols, g.Rows)
	for i, v := range g.Values {
		t := (v/amplitude + 1) / 2
		o.pixels[i] = o.shade(t, 1)
	}
	rl.UpdateTexture(o.tex, o.pixels)
}

// shade blends the ramp at t and scales opacity by weight.
func (o *FieldOverlay) shade(t, weight float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	c := coldColor.BlendLab(hotColor, t).Clamped()
	r, g, b := c.RGB255()
	a := uint8(float64(o.alpha) * math.Max(0, math.Min(1, weight)))
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// Draw stretches the texture so texel centers land on grid nodes res pixels
// apart, shifted by translateY.
func (o *FieldOverlay) Draw(res, translateY float32) {
	if !o.initialized {
		return
	}
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(o.texW), Height: float32(o.texH)}
	dst := rl.Rectangle{
		X:      -res / 2,
		Y:      -res/2 + translateY,
		Width:  float32(o.texW) * res,
		Height: float32(o.texH) * res,
	}
	rl.DrawTexturePro(o.tex, src, dst, rl.Vector2{}, 0, rl.White)
}

// Unload frees GPU resources.
func (o *FieldOverlay) Unload() {
	if !o.initialized {
		return
	}
	rl.UnloadTexture(o.tex)
	o.initialized = false
}
