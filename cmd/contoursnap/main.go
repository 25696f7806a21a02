// Contour snapshot tool - renders contour frames offscreen to a PNG file.
//
// Usage: go run ./cmd/contoursnap -frames 120 -out contours.png
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/topo/config"
	"github.com/pthm-cable/topo/renderer"
	"github.com/pthm-cable/topo/session"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	outPath := flag.String("out", "contours.png", "Output PNG path")
	frames := flag.Int("frames", 60, "Frames to render before capture")
	width := flag.Int("width", 0, "Render width (0 = config)")
	height := flag.Int("height", 0, "Render height (0 = config)")
	seed := flag.Int64("seed", 1, "Noise seed")
	noiseKind := flag.String("noise", "", "Noise source: perlin or simplex (empty = use config)")
	scroll := flag.Float64("scroll", 0, "Page scroll position in pixels")
	pointerX := flag.Float64("pointer-x", -1, "Pointer X in screen pixels (negative = none)")
	pointerY := flag.Float64("pointer-y", -1, "Pointer Y in screen pixels (negative = none)")
	flag.Parse()

	// Keep stdout for the result line
	slog.SetDefault(slog.New(slog.NewJSONHandler(io.Discard, nil)))

	if err := config.Init(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	w, h := *width, *height
	if w <= 0 {
		w = cfg.Screen.Width
	}
	if h <= 0 {
		h = cfg.Screen.Height
	}

	// Initialize raylib with hidden window
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(int32(w), int32(h), "Contour Snapshot")
	defer rl.CloseWindow()

	surface := renderer.NewRaylibSurface(int32(w), int32(h))
	surface.Init()
	defer surface.Unload()

	s, err := session.New(cfg, surface, w, h, session.Options{
		NoiseKind: *noiseKind,
		Seed:      *seed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create session: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	s.ScrollTo(*scroll)
	s.Start()
	for i := 0; i < *frames; i++ {
		if *pointerX >= 0 && *pointerY >= 0 {
			s.PointerAt(*pointerX, *pointerY)
		}
		if _, ok := s.Step(); !ok {
			break
		}
	}
	s.Stop()

	background := renderer.NewBackgroundRenderer(int32(w), int32(h), cfg.Derived.Background)
	background.Init()
	defer background.Unload()

	// Create render texture
	target := rl.LoadRenderTexture(int32(w), int32(h))
	defer rl.UnloadRenderTexture(target)

	// Compose the page background and the contour layer
	rl.BeginTextureMode(target)
	background.Draw(s.Viewport().Progress())
	surface.Draw()
	rl.EndTextureMode()

	// Get image from texture and flip it (OpenGL convention)
	img := rl.LoadImageFromTexture(target.Texture)
	rl.ImageFlipVertical(img)

	success := rl.ExportImage(*img, *outPath)
	rl.UnloadImage(img)

	if !success {
		fmt.Fprintf(os.Stderr, "Failed to export image\n")
		os.Exit(1)
	}

	stats := s.Renderer().LastStats()
	fmt.Printf("Contours rendered to: %s (%dx%d, frame %d, %d levels, %d segments)\n",
		*outPath, w, h, stats.Frame, stats.Levels, stats.Segments)
}
