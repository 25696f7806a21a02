// Package renderer provides raylib rendering for the contour background.
package renderer

import (
	_ "embed"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

//go:embed shaders/background.fs
var backgroundFS string

// BackgroundRenderer fills the screen with the page color, lifted and
// vignetted by a fragment shader.
type BackgroundRenderer struct {
	shader        rl.Shader
	resolutionLoc int32
	baseColorLoc  int32
	progressLoc   int32

	screenW, screenH float32
	baseColor        [3]float32
	fallback         rl.Color
	initialized      bool
}

// NewBackgroundRenderer creates a new background renderer.
func NewBackgroundRenderer(screenW, screenH int32, base color.NRGBA) *BackgroundRenderer {
	return &BackgroundRenderer{
		screenW: float32(screenW),
		screenH: float32(screenH),
		baseColor: [3]float32{
			float32(base.R) / 255.0,
			float32(base.G) / 255.0,
			float32(base.B) / 255.0,
		},
		fallback: rl.Color{R: base.R, G: base.G, B: base.B, A: 255},
	}
}

// Init initializes the renderer (must be called after raylib window is created).
func (b *BackgroundRenderer) Init() {
	if b.initialized {
		return
	}

	b.shader = rl.LoadShaderFromMemory("", backgroundFS)
	b.resolutionLoc = rl.GetShaderLocation(b.shader, "resolution")
	b.baseColorLoc = rl.GetShaderLocation(b.shader, "baseColor")
	b.progressLoc = rl.GetShaderLocation(b.shader, "progress")

	rl.SetShaderValue(b.shader, b.baseColorLoc, b.baseColor[:], rl.ShaderUniformVec3)
	b.initialized = true
}

// Resize updates the screen dimensions.
func (b *BackgroundRenderer) Resize(w, h int32) {
	b.screenW = float32(w)
	b.screenH = float32(h)
}

// Draw renders the background. progress is the page scroll position in [0, 1].
func (b *BackgroundRenderer) Draw(progress float32) {
	if !b.initialized {
		b.Init()
	}

	rl.ClearBackground(b.fallback)

	rl.BeginShaderMode(b.shader)
	rl.SetShaderValue(b.shader, b.resolutionLoc, []float32{b.screenW, b.screenH}, rl.ShaderUniformVec2)
	rl.SetShaderValue(b.shader, b.progressLoc, []float32{progress}, rl.ShaderUniformFloat)
	rl.DrawRectangle(0, 0, int32(b.screenW), int32(b.screenH), rl.White)
	rl.EndShaderMode()
}

// Unload frees resources.
func (b *BackgroundRenderer) Unload() {
	if b.initialized {
		rl.UnloadShader(b.shader)
		b.initialized = false
	}
}
