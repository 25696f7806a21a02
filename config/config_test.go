package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.Contour.Resolution != 10 {
		t.Errorf("expected resolution 10, got %d", cfg.Contour.Resolution)
	}
	if cfg.Contour.ThresholdStep != 5 {
		t.Errorf("expected threshold step 5, got %v", cfg.Contour.ThresholdStep)
	}
	if cfg.Motion.Ease != 0.08 {
		t.Errorf("expected ease 0.08, got %v", cfg.Motion.Ease)
	}
	if cfg.Pointer.Decay != 0.95 {
		t.Errorf("expected decay 0.95, got %v", cfg.Pointer.Decay)
	}

	want := color.NRGBA{R: 0xed, G: 0xed, B: 0xed, A: 128}
	if cfg.Derived.LineColor != want {
		t.Errorf("expected line color %v, got %v", want, cfg.Derived.LineColor)
	}
	if cfg.Derived.FrameDT <= 0 {
		t.Errorf("expected positive frame dt, got %v", cfg.Derived.FrameDT)
	}
}

func TestLoadOverridesOnlyPresentFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	data := "motion:\n  parallax_factor: 0.5\npointer:\n  radius: 4\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Motion.ParallaxFactor != 0.5 {
		t.Errorf("expected parallax 0.5, got %v", cfg.Motion.ParallaxFactor)
	}
	if cfg.Pointer.Radius != 4 {
		t.Errorf("expected radius 4, got %d", cfg.Pointer.Radius)
	}
	// Untouched fields keep their defaults
	if cfg.Motion.Ease != 0.08 {
		t.Errorf("expected default ease 0.08, got %v", cfg.Motion.Ease)
	}
	if cfg.Pointer.Strength != 0.08 {
		t.Errorf("expected default strength 0.08, got %v", cfg.Pointer.Strength)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"ease too large", "motion:\n  ease: 1.5\n", "motion.ease"},
		{"zero step", "contour:\n  threshold_step: 0\n", "threshold_step"},
		{"decay one", "pointer:\n  decay: 1\n", "pointer.decay"},
		{"negative strength", "pointer:\n  strength: -0.5\n", "pointer.strength"},
		{"bad color", "contour:\n  line_color: \"nope\"\n", "line_color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatalf("expected error for %s", tt.name)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestResolutionFor(t *testing.T) {
	cfg := Defaults()

	if got := cfg.ResolutionFor(1280); got != 10 {
		t.Errorf("desktop width: expected 10, got %d", got)
	}
	if got := cfg.ResolutionFor(767); got != 14 {
		t.Errorf("narrow width: expected 14, got %d", got)
	}
	if got := cfg.ResolutionFor(768); got != 10 {
		t.Errorf("breakpoint width: expected 10, got %d", got)
	}
}

func TestPageHeightCoversViewport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.yaml")
	if err := os.WriteFile(path, []byte("screen:\n  page_height: 10\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Screen.PageHeight != cfg.Screen.Height {
		t.Errorf("expected page height raised to %d, got %d", cfg.Screen.Height, cfg.Screen.PageHeight)
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg := Defaults()
	cfg.Motion.ParallaxFactor = 0.4

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Motion.ParallaxFactor != 0.4 {
		t.Errorf("expected parallax 0.4 after roundtrip, got %v", loaded.Motion.ParallaxFactor)
	}
}

func TestCfgPanicsBeforeInit(t *testing.T) {
	saved := global
	global = nil
	defer func() {
		global = saved
		if recover() == nil {
			t.Error("expected Cfg() to panic before Init")
		}
	}()
	Cfg()
}
