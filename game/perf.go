package game

import (
	"cmp"
	"slices"
	"time"
)

// passSamples is a fixed ring of durations with a running sum.
type passSamples struct {
	ring  []time.Duration
	next  int
	count int
	sum   time.Duration
	peak  time.Duration
}

func (s *passSamples) add(d time.Duration) {
	if s.count == len(s.ring) {
		s.sum -= s.ring[s.next]
	} else {
		s.count++
	}
	s.ring[s.next] = d
	s.sum += d
	s.next = (s.next + 1) % len(s.ring)
	if d > s.peak {
		s.peak = d
	}
}

func (s *passSamples) avg() time.Duration {
	if s.count == 0 {
		return 0
	}
	return s.sum / time.Duration(s.count)
}

// PerfStats tracks execution time for each draw pass over the last
// window frames.
type PerfStats struct {
	passes map[string]*passSamples
	order  []string
	window int
}

// NewPerfStats creates a draw pass timing tracker.
func NewPerfStats(window int) *PerfStats {
	if window <= 0 {
		window = 120
	}
	return &PerfStats{
		passes: make(map[string]*passSamples),
		window: window,
	}
}

// Record adds a duration sample for the named pass.
func (p *PerfStats) Record(name string, d time.Duration) {
	s, ok := p.passes[name]
	if !ok {
		s = &passSamples{ring: make([]time.Duration, p.window)}
		p.passes[name] = s
		p.order = append(p.order, name)
	}
	s.add(d)
}

// Avg returns the average duration for the named pass.
func (p *PerfStats) Avg(name string) time.Duration {
	if s, ok := p.passes[name]; ok {
		return s.avg()
	}
	return 0
}

// Peak returns the slowest sample seen for the named pass.
func (p *PerfStats) Peak(name string) time.Duration {
	if s, ok := p.passes[name]; ok {
		return s.peak
	}
	return 0
}

// Total returns the sum of all average durations.
func (p *PerfStats) Total() time.Duration {
	var total time.Duration
	for _, s := range p.passes {
		total += s.avg()
	}
	return total
}

// SortedNames returns pass names, slowest first. Ties keep draw order.
func (p *PerfStats) SortedNames() []string {
	names := slices.Clone(p.order)
	slices.SortStableFunc(names, func(a, b string) int {
		return cmp.Compare(p.Avg(b), p.Avg(a))
	})
	return names
}
