// Copyright (c) 2025, The CHCLT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gradient interpolates CHCLT colors along a list of stops, for
// driving shading callbacks that sample a gradient axis once per output
// pixel. Interpolation happens in linear light, with the model's transfer
// curve applied once at the end; interpolating display components directly
// would darken the midpoints.
package gradient

import "github.com/hueworks/chclt"

// Stop pairs a linear color and alpha with a parametric location,
// nominally in [0, 1]. Stops are ordered by location; duplicates are
// tolerated, with the largest location not exceeding the sample position
// winning.
type Stop struct {
	Color    chclt.Linear
	Alpha    float64
	Location float64
}

// Sampler answers "what is the display color at position t" for an ordered
// list of stops. It remembers the bracket of the previous query, which
// makes the common monotonic left-to-right sweep O(1) per sample; the
// cache is a performance device only and never changes results.
//
// The cache makes a Sampler single-goroutine: confine each instance to one
// rendering callback, and give concurrent gradients their own samplers.
type Sampler struct {
	model chclt.Model
	stops []Stop
	below int // bracket from the previous query
}

// New returns a sampler over the given stops, which must be ordered by
// location. The slice is retained, not copied; samplers are built per draw
// call from a snapshot of stops and discarded after use.
func New(m chclt.Model, stops []Stop) *Sampler {
	return &Sampler{model: m, stops: stops}
}

// FromColors returns a sampler over the given display colors spaced evenly
// across [0, 1]. A single color occupies the whole range.
func FromColors(m chclt.Model, colors []chclt.Color) *Sampler {
	stops := make([]Stop, len(colors))
	span := float64(len(colors) - 1)
	for i, c := range colors {
		loc := 0.0
		if span > 0 {
			loc = float64(i) / span
		}
		stops[i] = Stop{Color: m.Linearized(c), Alpha: c.A, Location: loc}
	}
	return New(m, stops)
}

// FromColorsLocations returns a sampler pairing colors with explicit
// locations, up to the shorter of the two slices. Locations must be
// ordered.
func FromColorsLocations(m chclt.Model, colors []chclt.Color, locations []float64) *Sampler {
	n := min(len(colors), len(locations))
	stops := make([]Stop, n)
	for i := 0; i < n; i++ {
		c := colors[i]
		stops[i] = Stop{Color: m.Linearized(c), Alpha: c.A, Location: locations[i]}
	}
	return New(m, stops)
}

// Interpolate returns the display color at position t. Positions outside
// the stop range clamp to the first or last stop; an empty sampler returns
// transparent black. The call is allocation-free.
func (s *Sampler) Interpolate(t float64) chclt.Color {
	n := len(s.stops)
	switch n {
	case 0:
		return chclt.Color{}
	case 1:
		return s.model.Display(s.stops[0].Color, s.stops[0].Alpha)
	}
	i := s.bracket(t)
	s.below = i
	if i < 0 {
		return s.model.Display(s.stops[0].Color, s.stops[0].Alpha)
	}
	if i+1 >= n {
		last := s.stops[n-1]
		return s.model.Display(last.Color, last.Alpha)
	}
	below, above := s.stops[i], s.stops[i+1]
	span := above.Location - below.Location
	if span <= 0 {
		return s.model.Display(below.Color, below.Alpha)
	}
	f := (t - below.Location) / span
	lin := below.Color.Lerp(above.Color, f)
	alpha := below.Alpha + (above.Alpha-below.Alpha)*f
	return s.model.Display(lin, alpha)
}

// Func returns the sampler as a shading callback for gradient-drawing
// backends that take a position-to-color function.
func (s *Sampler) Func() func(float64) chclt.Color {
	return s.Interpolate
}

// bracket returns the index of the last stop whose location does not
// exceed t, or -1 when t precedes every stop. The previous bracket and its
// right neighbor are checked before binary searching, since queries
// usually sweep monotonically across the axis.
func (s *Sampler) bracket(t float64) int {
	n := len(s.stops)
	if i := s.below; i >= -1 && i < n {
		if (i < 0 || s.stops[i].Location <= t) && (i+1 >= n || t < s.stops[i+1].Location) {
			return i
		}
		if j := i + 1; j >= 0 && j < n && s.stops[j].Location <= t &&
			(j+1 >= n || t < s.stops[j+1].Location) {
			return j
		}
	}
	lo, hi := 0, n
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if s.stops[mid].Location <= t {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo - 1
}
