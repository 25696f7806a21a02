// Contour field preview tool - interactive noise and contour tuning with sliders.
//
// Usage: go run ./cmd/fieldpreview [-config config.yaml]
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/topo/config"
	"github.com/pthm-cable/topo/contour"
	"github.com/pthm-cable/topo/noise"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 560
	panelWidth   = windowWidth - previewSize - 30
	sliderStep   = 35
)

// previewParams holds the values the sliders edit.
type previewParams struct {
	SpatialFrequency float32
	DomainWarp       float32
	ThresholdStep    float32
	Amplitude        float32
	TimeDrift        float32
	Seed             int64
	Kind             string
}

func fromConfig(c *config.Config) previewParams {
	kind := c.Noise.Kind
	if kind == "" {
		kind = noise.KindPerlin
	}
	return previewParams{
		SpatialFrequency: float32(c.Motion.SpatialFrequency),
		DomainWarp:       float32(c.Motion.DomainWarp),
		ThresholdStep:    float32(c.Contour.ThresholdStep),
		Amplitude:        float32(c.Contour.Amplitude),
		TimeDrift:        float32(c.Motion.TimeDrift),
		Seed:             12345,
		Kind:             kind,
	}
}

// apply writes the slider values onto renderer params.
func (pp previewParams) apply(p *contour.Params) {
	p.SpatialFrequency = float64(pp.SpatialFrequency)
	p.DomainWarp = float64(pp.DomainWarp)
	p.ThresholdStep = float64(pp.ThresholdStep)
	p.Amplitude = float64(pp.Amplitude)
	p.TimeDrift = float64(pp.TimeDrift)
}

// snippet is the config fragment copied to the clipboard.
type snippet struct {
	Contour struct {
		ThresholdStep float64 `yaml:"threshold_step"`
		Amplitude     float64 `yaml:"amplitude"`
	} `yaml:"contour"`
	Motion struct {
		TimeDrift        float64 `yaml:"time_drift"`
		SpatialFrequency float64 `yaml:"spatial_frequency"`
		DomainWarp       float64 `yaml:"domain_warp"`
	} `yaml:"motion"`
	Noise struct {
		Kind string `yaml:"kind"`
		Seed int64  `yaml:"seed"`
	} `yaml:"noise"`
}

func (pp previewParams) yaml() string {
	var s snippet
	s.Contour.ThresholdStep = round(pp.ThresholdStep, 10)
	s.Contour.Amplitude = round(pp.Amplitude, 1)
	s.Motion.TimeDrift = round(pp.TimeDrift, 100000)
	s.Motion.SpatialFrequency = round(pp.SpatialFrequency, 1000)
	s.Motion.DomainWarp = round(pp.DomainWarp, 100)
	s.Noise.Kind = pp.Kind
	s.Noise.Seed = pp.Seed
	out, err := yaml.Marshal(&s)
	if err != nil {
		return err.Error()
	}
	return string(out)
}

func round(v float32, scale float64) float64 {
	return float64(int64(float64(v)*scale+0.5)) / scale
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	rl.InitWindow(windowWidth, windowHeight, "Contour Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	defaults := fromConfig(cfg)
	params := defaults
	rp := contour.ParamsFromConfig(cfg)
	params.apply(&rp)

	res := rp.Resolution
	cols, rows := contour.Dimensions(previewSize, previewSize, res)
	grid := contour.NewGrid(cols, rows, float64(res))
	field := contour.NewField(cols, rows)
	src, _ := noise.New(params.Kind, params.Seed)
	sampler := &contour.Sampler{Source: src, Params: &rp}

	img := rl.GenImageColor(cols, rows, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(texture, rl.FilterBilinear)
	defer rl.UnloadTexture(texture)

	low, _ := colorful.MakeColor(cfg.Derived.Background)
	high := colorful.Color{
		R: float64(cfg.Derived.LineColor.R) / 255,
		G: float64(cfg.Derived.LineColor.G) / 255,
		B: float64(cfg.Derived.LineColor.B) / 255,
	}
	lineColor := rl.Color{R: cfg.Derived.LineColor.R, G: cfg.Derived.LineColor.G, B: cfg.Derived.LineColor.B, A: 255}
	pixels := make([]color.RGBA, cols*rows)

	var elapsed float64
	animating := true
	needsReseed := false

	for !rl.WindowShouldClose() {
		if needsReseed {
			src, _ = noise.New(params.Kind, params.Seed)
			sampler.Source = src
			needsReseed = false
		}
		if animating {
			elapsed += rp.TimeDrift
		}

		// Hovering the preview perturbs the field like the page pointer
		mouse := rl.GetMousePosition()
		if mouse.X >= 10 && mouse.X < 10+previewSize && mouse.Y >= 10 && mouse.Y < 10+previewSize {
			cx := int((mouse.X - 10) / float32(res))
			cy := int((mouse.Y - 10) / float32(res))
			field.Boost(cx, cy, rp.PointerRadius, rp.PointerStrength)
		}

		sampler.Sample(grid, field, elapsed, 0)
		updateTexture(texture, pixels, grid, rp.Amplitude, low, high)

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Draw preview
		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: float32(cols), Height: float32(rows)},
			rl.Rectangle{X: 10, Y: 10, Width: float32((cols - 1) * res), Height: float32((rows - 1) * res)},
			rl.Vector2{X: 0, Y: 0},
			0,
			rl.White,
		)
		levels := contour.Levels(grid.Min, grid.Max, rp.ThresholdStep, rp.MajorMultiple)
		segments := drawContours(grid, levels, rp, lineColor)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		// Draw stats
		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Min: %.3f  Max: %.3f  Levels: %d  Segments: %d", grid.Min, grid.Max, len(levels), segments), 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Time: %.2f  Grid: %dx%d @ %dpx  Peak: %.2f", elapsed, cols, rows, res, field.Peak()), 15, statsY+20, 16, rl.DarkGray)
		rl.DrawText("Hover the preview to perturb the field", 15, statsY+44, 14, rl.Gray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Contour Field Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		panelY = slider(panelX, panelY, "Spatial frequency (noise per cell)", "%.3f", &params.SpatialFrequency, 0.005, 0.08)
		panelY = slider(panelX, panelY, "Domain warp (drift amplitude)", "%.2f", &params.DomainWarp, 0, 2)
		panelY = slider(panelX, panelY, "Threshold step (level spacing)", "%.1f", &params.ThresholdStep, 1, 20)
		panelY = slider(panelX, panelY, "Amplitude (noise scale)", "%.0f", &params.Amplitude, 20, 200)
		panelY = slider(panelX, panelY, "Time drift (per frame)", "%.4f", &params.TimeDrift, 0, 0.005)

		seed := float32(params.Seed)
		panelY = slider(panelX, panelY, "Seed", "%.0f", &seed, 0, 99999)
		if int64(seed) != params.Seed {
			params.Seed = int64(seed)
			needsReseed = true
		}
		params.apply(&rp)

		// Separator
		rl.DrawLine(int32(panelX), int32(panelY), int32(panelX)+int32(panelWidth)-20, int32(panelY), rl.LightGray)
		panelY += 15

		// Buttons
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Stop", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset Time") {
			elapsed = 0
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			params.Seed = int64(rl.GetRandomValue(0, 99999))
			needsReseed = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Noise: "+params.Kind) {
			if params.Kind == noise.KindPerlin {
				params.Kind = noise.KindSimplex
			} else {
				params.Kind = noise.KindPerlin
			}
			needsReseed = true
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaults
			elapsed = 0
			needsReseed = true
		}
		panelY += 50

		// Output YAML
		text := params.yaml()
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		rl.DrawText(text, int32(panelX), int32(panelY), 14, rl.Gray)

		// Instructions
		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(text)
		}

		rl.EndDrawing()
	}
}

// slider draws a labelled slider bar and returns the next row position.
func slider(x, y float32, label, format string, value *float32, min, max float32) float32 {
	rl.DrawText(label, int32(x), int32(y), 14, rl.Gray)
	y += 18
	*value = gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: float32(panelWidth - 80), Height: 20},
		fmt.Sprintf(format, min), fmt.Sprintf(format, max),
		*value, min, max,
	)
	rl.DrawText(fmt.Sprintf(format, *value), int32(x+float32(panelWidth-70)), int32(y+2), 16, rl.DarkGray)
	return y + sliderStep
}

// drawContours traces every level over the preview and returns the segment count.
func drawContours(g *contour.Grid, levels []contour.Level, p contour.Params, c rl.Color) int {
	total := 0
	for _, lvl := range levels {
		width := float32(p.LineWidth)
		if lvl.Major {
			width = float32(p.MajorLineWidth)
		}
		total += contour.Extract(g, lvl.Value, func(s contour.Segment) {
			rl.DrawLineEx(
				rl.Vector2{X: 10 + float32(s.X0), Y: 10 + float32(s.Y0)},
				rl.Vector2{X: 10 + float32(s.X1), Y: 10 + float32(s.Y1)},
				width, c,
			)
		})
	}
	return total
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

// updateTexture shades each sample between the page and line colors.
func updateTexture(texture rl.Texture2D, pixels []color.RGBA, g *contour.Grid, amplitude float64, low, high colorful.Color) {
	for i, v := range g.Values {
		t := 0.5
		if amplitude > 0 {
			t = (v/amplitude + 1) / 2
		}
		t = clamp01(t)
		r, gg, b := low.BlendLab(high, t).Clamped().RGB255()
		pixels[i] = color.RGBA{R: r, G: gg, B: b, A: 255}
	}
	rl.UpdateTexture(texture, pixels)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
