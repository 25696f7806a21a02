package contour

// State is the evolving part of a renderer: everything besides params and
// the noise source needed to reproduce its next frame.
type State struct {
	Frame   uint64    `json:"frame"`
	Elapsed float64   `json:"elapsed"`
	ScrollY float64   `json:"scroll_y"`
	Offset  float64   `json:"offset"`
	Width   int       `json:"width"`
	Height  int       `json:"height"`
	Cols    int       `json:"cols"`
	Rows    int       `json:"rows"`
	Field   []float64 `json:"field,omitempty"`
}

// State captures the renderer state. Call it from the goroutine driving
// frames, or while the loop is stopped.
func (r *Renderer) State() State {
	if r == nil {
		return State{}
	}
	return State{
		Frame:   r.frame,
		Elapsed: r.elapsed,
		ScrollY: r.scrollY,
		Offset:  r.smoother.Offset,
		Width:   r.width,
		Height:  r.height,
		Cols:    r.grid.Cols,
		Rows:    r.grid.Rows,
		Field:   r.field.Values(),
	}
}

// Restore resumes from a captured state. The viewport is resized to the
// captured dimensions and the perturbation field is reloaded when its size
// matches the resulting grid. Returns false when a captured field could not
// be loaded and the perturbation starts from zero. Same calling rules as
// State.
func (r *Renderer) Restore(s State) bool {
	if r == nil {
		return false
	}
	if s.Width > 0 && s.Height > 0 && (s.Width != r.width || s.Height != r.height) {
		r.resize(s.Width, s.Height)
	}
	r.frame = s.Frame
	r.elapsed = s.Elapsed
	r.smoother.Offset = s.Offset
	loaded := true
	if s.Field != nil {
		loaded = r.field.Load(s.Field)
	}

	r.in.mu.Lock()
	r.in.scrollY = s.ScrollY
	r.in.mu.Unlock()
	r.scrollY = s.ScrollY
	return loaded
}
