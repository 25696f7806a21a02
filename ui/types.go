// Package ui provides the raylib HUD, tuning panel and field inspector
// drawn over the contour background. Panels are described by field
// descriptors so new readouts need no layout code.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// WidgetType specifies how a field should be rendered.
type WidgetType int

const (
	WidgetText        WidgetType = iota // Plain text with format string
	WidgetBar                           // Progress bar over Range
	WidgetCenteredBar                   // Bar centered at zero over Range
	WidgetSection                       // Section header
	WidgetSpacer                        // Vertical spacing
)

// FieldRange defines the value range for bar widgets.
type FieldRange struct {
	Min float32
	Max float32
}

// DefaultRange returns a [0, 1] range.
func DefaultRange() FieldRange {
	return FieldRange{Min: 0, Max: 1}
}

// FieldDescriptor defines how to display a single piece of data.
type FieldDescriptor struct {
	ID         string            // Unique identifier for the field
	Label      string            // Display label
	Widget     WidgetType        // How to render
	Format     string            // Printf format for text (e.g., "%.2f")
	Range      FieldRange        // Value range for bars
	Visible    func(any) bool    // Optional visibility check (nil = always visible)
	Getter     func(any) float32 // Value extractor (for numeric fields)
	TextGetter func(any) string  // Value extractor (for text fields)
}

// SectionDescriptor defines a group of fields with a header.
type SectionDescriptor struct {
	ID      string
	Title   string
	Fields  []FieldDescriptor
	Visible func(any) bool // Optional visibility check for entire section
}

// Theme holds UI styling constants.
type Theme struct {
	PanelBg         rl.Color
	PanelBorder     rl.Color
	SectionHeader   rl.Color
	LabelColor      rl.Color
	ValueColor      rl.Color
	BarBg           rl.Color
	BarFill         rl.Color
	BarFillNegative rl.Color
	BarFillPositive rl.Color
	Padding         int32
	LineHeight      int32
	LabelWidth      int32
	BarHeight       int32
	FontSize        int32
	HeaderFontSize  int32
}

// DefaultTheme returns the default UI theme, muted to sit over the contours.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:         rl.Color{R: 17, G: 20, B: 23, A: 230},
		PanelBorder:     rl.Color{R: 60, G: 66, B: 72, A: 255},
		SectionHeader:   rl.Color{R: 237, G: 237, B: 237, A: 255},
		LabelColor:      rl.Color{R: 150, G: 156, B: 162, A: 255},
		ValueColor:      rl.LightGray,
		BarBg:           rl.Color{R: 40, G: 44, B: 48, A: 255},
		BarFill:         rl.Color{R: 120, G: 160, B: 190, A: 255},
		BarFillNegative: rl.Color{R: 190, G: 120, B: 110, A: 255},
		BarFillPositive: rl.Color{R: 120, G: 180, B: 130, A: 255},
		Padding:         10,
		LineHeight:      16,
		LabelWidth:      90,
		BarHeight:       10,
		FontSize:        12,
		HeaderFontSize:  14,
	}
}
