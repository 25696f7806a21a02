package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlayID names a toggleable panel or debug view.
type OverlayID string

const (
	OverlayHUD       OverlayID = "hud"
	OverlayTuning    OverlayID = "tuning"
	OverlayPerf      OverlayID = "perf"
	OverlayInspector OverlayID = "inspector"
	OverlayField     OverlayID = "perturb_field"
	OverlayGrid      OverlayID = "grid_nodes"
)

// OverlayKind separates panels drawn over the scene from field views drawn
// under the contours.
type OverlayKind int

const (
	KindPanel OverlayKind = iota
	KindFieldView
)

func (k OverlayKind) String() string {
	if k == KindFieldView {
		return "Field views"
	}
	return "Panels"
}

// Overlay describes one toggle.
type Overlay struct {
	ID    OverlayID
	Name  string
	Hint  string // One line shown in the controls panel
	Key   int32  // raylib key code (0 = no key)
	Label string // Key label, e.g. "D"
	Kind  OverlayKind
	Group string // Overlays sharing a non-empty group are mutually exclusive
}

// DefaultOverlays is the window's overlay table in display order.
var DefaultOverlays = []Overlay{
	{ID: OverlayHUD, Name: "Debug HUD", Hint: "frame, grid and parallax", Key: rl.KeyD, Label: "D"},
	{ID: OverlayTuning, Name: "Tuning", Hint: "live motion and pointer sliders", Key: rl.KeyT, Label: "T"},
	{ID: OverlayPerf, Name: "Frame Timing", Hint: "per-phase timing", Key: rl.KeyP, Label: "P"},
	{ID: OverlayInspector, Name: "Inspector", Hint: "field under the cursor", Key: rl.KeyI, Label: "I"},
	{ID: OverlayField, Name: "Perturbation", Hint: "pointer field heat map", Key: rl.KeyF, Label: "F", Kind: KindFieldView, Group: "field"},
	{ID: OverlayGrid, Name: "Grid Nodes", Hint: "sample nodes by value", Key: rl.KeyG, Label: "G", Kind: KindFieldView, Group: "field"},
}

// OverlaySet tracks which overlays are on.
type OverlaySet struct {
	list []Overlay
	on   map[OverlayID]bool
}

// NewOverlaySet creates a set over defs with everything off.
func NewOverlaySet(defs []Overlay) *OverlaySet {
	return &OverlaySet{
		list: defs,
		on:   make(map[OverlayID]bool, len(defs)),
	}
}

// All returns the overlays in display order.
func (s *OverlaySet) All() []Overlay {
	return s.list
}

// OfKind returns the overlays of one kind in display order.
func (s *OverlaySet) OfKind(k OverlayKind) []Overlay {
	var out []Overlay
	for _, o := range s.list {
		if o.Kind == k {
			out = append(out, o)
		}
	}
	return out
}

// Toggle flips an overlay and returns its new state. Turning one on turns
// off the rest of its group.
func (s *OverlaySet) Toggle(id OverlayID) bool {
	on := !s.on[id]
	s.Set(id, on)
	return on
}

// Set switches an overlay on or off.
func (s *OverlaySet) Set(id OverlayID, on bool) {
	o, ok := s.find(id)
	if !ok {
		return
	}
	if on && o.Group != "" {
		for _, other := range s.list {
			if other.Group == o.Group {
				s.on[other.ID] = false
			}
		}
	}
	s.on[id] = on
}

// IsEnabled reports whether an overlay is on.
func (s *OverlaySet) IsEnabled(id OverlayID) bool {
	return s.on[id]
}

// Enabled lists the overlays that are on, in display order.
func (s *OverlaySet) Enabled() []OverlayID {
	var out []OverlayID
	for _, o := range s.list {
		if s.on[o.ID] {
			out = append(out, o.ID)
		}
	}
	return out
}

func (s *OverlaySet) find(id OverlayID) (Overlay, bool) {
	for _, o := range s.list {
		if o.ID == id {
			return o, true
		}
	}
	return Overlay{}, false
}
