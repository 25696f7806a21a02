// Package viewport models the window onto a virtual scrollable page: the
// visible size, the page height, the scroll position and the mapping from
// screen points to canvas points.
package viewport

// Keyboard and wheel scroll amounts.
const (
	LineStep     float32 = 40  // Arrow keys and one wheel notch
	PageFraction float32 = 0.9 // PageUp/PageDown move this share of the height
)

// Viewport tracks the visible window and its scroll position on the page.
type Viewport struct {
	// Visible dimensions (screen size)
	Width, Height float32

	// Total page height; scrolling is limited to PageHeight-Height
	PageHeight float32

	// Vertical scroll position in page pixels
	ScrollY float32
}

// New creates a viewport at the top of a page.
func New(width, height, pageHeight float32) *Viewport {
	v := &Viewport{Width: width, Height: height, PageHeight: pageHeight}
	v.clampScroll()
	return v
}

// MaxScroll returns the largest valid scroll position.
func (v *Viewport) MaxScroll() float32 {
	m := v.PageHeight - v.Height
	if m < 0 {
		return 0
	}
	return m
}

// Scroll moves the page by dy pixels and reports whether the position changed.
func (v *Viewport) Scroll(dy float32) bool {
	return v.ScrollTo(v.ScrollY + dy)
}

// ScrollTo jumps to y and reports whether the position changed.
func (v *Viewport) ScrollTo(y float32) bool {
	prev := v.ScrollY
	v.ScrollY = y
	v.clampScroll()
	return v.ScrollY != prev
}

// PageStep returns the distance moved by PageUp/PageDown.
func (v *Viewport) PageStep() float32 {
	return v.Height * PageFraction
}

// Resize updates the visible dimensions and keeps the scroll position valid.
// Returns false when the size did not change.
func (v *Viewport) Resize(width, height float32) bool {
	if width == v.Width && height == v.Height {
		return false
	}
	v.Width = width
	v.Height = height
	v.clampScroll()
	return true
}

// Progress returns the scroll position as a fraction of MaxScroll.
func (v *Viewport) Progress() float32 {
	m := v.MaxScroll()
	if m == 0 {
		return 0
	}
	return v.ScrollY / m
}

// Contains reports whether a screen point lies inside the viewport.
func (v *Viewport) Contains(sx, sy float32) bool {
	return sx >= 0 && sy >= 0 && sx < v.Width && sy < v.Height
}

// ScreenToCanvas converts a screen point into coordinates on a canvas that
// is translated vertically by translateY. ok is false when the point is
// outside the viewport or off the translated canvas.
func (v *Viewport) ScreenToCanvas(sx, sy, translateY float32) (cx, cy float32, ok bool) {
	if !v.Contains(sx, sy) {
		return 0, 0, false
	}
	cx = sx
	cy = sy - translateY
	if cy < 0 || cy >= v.Height {
		return 0, 0, false
	}
	return cx, cy, true
}

// clampScroll restricts ScrollY to [0, MaxScroll].
func (v *Viewport) clampScroll() {
	v.ScrollY = clamp(v.ScrollY, 0, v.MaxScroll())
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
