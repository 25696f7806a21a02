package contour

import "testing"

func TestProbeNearestNode(t *testing.T) {
	src := sourceFunc(func(x, y, z float64) float64 { return 0.13 })
	r := New(&recordingSurface{}, src, testParams(), 100, 80)
	r.PointerMove(50, 40)
	r.Frame()

	p := r.Probe(52, 38)
	if !p.Inside {
		t.Fatal("expected probe inside the grid")
	}
	if p.Col != 5 || p.Row != 4 {
		t.Errorf("expected node (5,4), got (%d,%d)", p.Col, p.Row)
	}
	if p.Value != r.Grid().At(5, 4) {
		t.Errorf("expected value %v, got %v", r.Grid().At(5, 4), p.Value)
	}
	if p.Perturb <= 0 {
		t.Errorf("expected perturbation under the pointer, got %v", p.Perturb)
	}
	if p.Level > p.Value || p.Value-p.Level >= r.Params().ThresholdStep {
		t.Errorf("level %v does not bracket value %v", p.Level, p.Value)
	}
}

func TestProbeOutside(t *testing.T) {
	r := New(&recordingSurface{}, nil, testParams(), 100, 80)
	r.Frame()

	for _, pt := range [][2]float64{{-20, 10}, {10, -20}, {500, 10}, {10, 500}} {
		if p := r.Probe(pt[0], pt[1]); p.Inside {
			t.Errorf("expected (%v,%v) outside, got %+v", pt[0], pt[1], p)
		}
	}
}

func TestProbeNilRenderer(t *testing.T) {
	var r *Renderer
	if p := r.Probe(1, 1); p.Inside {
		t.Error("expected empty probe from nil renderer")
	}
	if r.Grid() != nil || r.Field() != nil {
		t.Error("expected nil grid and field")
	}
}
