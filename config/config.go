// Package config provides configuration loading and access for the contour background.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all renderer and host configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Contour   ContourConfig   `yaml:"contour"`
	Motion    MotionConfig    `yaml:"motion"`
	Pointer   PointerConfig   `yaml:"pointer"`
	Noise     NoiseConfig     `yaml:"noise"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Terminal  TerminalConfig  `yaml:"terminal"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	TargetFPS  int  `yaml:"target_fps"`
	PageHeight int  `yaml:"page_height"` // Virtual scrollable page height in pixels
	Resizable  bool `yaml:"resizable"`
}

// ContourConfig holds grid and line styling parameters.
type ContourConfig struct {
	Resolution       int     `yaml:"resolution"`        // Cell size in pixels
	MobileResolution int     `yaml:"mobile_resolution"` // Cell size below the breakpoint
	MobileBreakpoint int     `yaml:"mobile_breakpoint"` // Viewport width below which MobileResolution applies
	ThresholdStep    float64 `yaml:"threshold_step"`
	MajorMultiple    int     `yaml:"major_multiple"` // Every Nth level is drawn heavier
	Amplitude        float64 `yaml:"amplitude"`      // Noise output scale
	LineColor        string  `yaml:"line_color"`
	LineAlpha        float64 `yaml:"line_alpha"`
	LineWidth        float64 `yaml:"line_width"`
	MajorLineWidth   float64 `yaml:"major_line_width"`
	Background       string  `yaml:"background"`
}

// MotionConfig holds the time drift, domain warp and parallax tuning.
type MotionConfig struct {
	TimeDrift        float64 `yaml:"time_drift"`        // Elapsed-time increment per frame
	SpatialFrequency float64 `yaml:"spatial_frequency"` // Grid index to noise coordinate scale
	DomainWarp       float64 `yaml:"domain_warp"`       // Amplitude of the sin/cos drift
	WarpFreqX        float64 `yaml:"warp_freq_x"`
	WarpFreqY        float64 `yaml:"warp_freq_y"`
	ScrollDrift      float64 `yaml:"scroll_drift"` // Scroll Y to domain shift scale
	ScrollShiftX     float64 `yaml:"scroll_shift_x"`
	ScrollShiftY     float64 `yaml:"scroll_shift_y"`
	ParallaxFactor   float64 `yaml:"parallax_factor"` // Canvas translation per scrolled pixel
	Ease             float64 `yaml:"ease"`            // Smoother interpolation factor per frame
}

// PointerConfig holds perturbation field parameters.
type PointerConfig struct {
	Radius   int     `yaml:"radius"`   // Boost radius in cells
	Strength float64 `yaml:"strength"` // Peak boost per frame
	Decay    float64 `yaml:"decay"`    // Multiplicative decay per frame
}

// NoiseConfig selects the noise source.
type NoiseConfig struct {
	Kind string `yaml:"kind"` // perlin or simplex
	Seed int64  `yaml:"seed"` // 0 = time-based
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // Seconds of frames per window
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// TerminalConfig maps terminal cells to canvas pixels.
type TerminalConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32  float32     // Screen.Width as float32
	ScreenH32  float32     // Screen.Height as float32
	FrameDT    float64     // Seconds per frame at TargetFPS
	LineColor  color.NRGBA // LineColor with LineAlpha applied
	Background color.NRGBA
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Defaults returns the embedded default configuration.
func Defaults() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges the renderer relies on.
func (c *Config) Validate() error {
	var errs []error
	if c.Contour.Resolution <= 0 || c.Contour.MobileResolution <= 0 {
		errs = append(errs, errors.New("contour.resolution and contour.mobile_resolution must be positive"))
	}
	if c.Contour.ThresholdStep <= 0 {
		errs = append(errs, errors.New("contour.threshold_step must be positive"))
	}
	if c.Contour.MajorMultiple <= 0 {
		errs = append(errs, errors.New("contour.major_multiple must be positive"))
	}
	if c.Motion.Ease <= 0 || c.Motion.Ease >= 1 {
		errs = append(errs, fmt.Errorf("motion.ease must be in (0, 1), got %v", c.Motion.Ease))
	}
	if c.Pointer.Decay <= 0 || c.Pointer.Decay >= 1 {
		errs = append(errs, fmt.Errorf("pointer.decay must be in (0, 1), got %v", c.Pointer.Decay))
	}
	if c.Pointer.Radius < 0 {
		errs = append(errs, errors.New("pointer.radius must not be negative"))
	}
	if c.Pointer.Strength < 0 {
		errs = append(errs, errors.New("pointer.strength must not be negative"))
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		errs = append(errs, errors.New("terminal cell dimensions must be positive"))
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, errors.New("screen dimensions must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() error {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	fps := c.Screen.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	c.Derived.FrameDT = 1.0 / float64(fps)

	// Page must at least cover the viewport so scrolling has a valid range
	if c.Screen.PageHeight < c.Screen.Height {
		c.Screen.PageHeight = c.Screen.Height
	}

	line, err := ParseColor(c.Contour.LineColor, c.Contour.LineAlpha)
	if err != nil {
		return fmt.Errorf("contour.line_color: %w", err)
	}
	c.Derived.LineColor = line

	bg, err := ParseColor(c.Contour.Background, 1)
	if err != nil {
		return fmt.Errorf("contour.background: %w", err)
	}
	c.Derived.Background = bg
	return nil
}

// ResolutionFor returns the cell size used for a viewport of the given width.
// Narrow viewports use a coarser grid.
func (c *Config) ResolutionFor(width int) int {
	if width < c.Contour.MobileBreakpoint {
		return c.Contour.MobileResolution
	}
	return c.Contour.Resolution
}

// ParseColor parses a #RRGGBB hex string and applies alpha in [0, 1].
func ParseColor(hex string, alpha float64) (color.NRGBA, error) {
	col, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parsing color %q: %w", hex, err)
	}
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	r, g, b := col.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha*255 + 0.5)}, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
