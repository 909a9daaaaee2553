// Copyright (c) 2025, The CHCLT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chclt

import "math"

// HCL constructs the display color with the given hue (turns), chroma
// (signed fraction in -1..1) and luma (0..1), attaching alpha unmodified.
//
// Luma at or beyond the extremes short-circuits to black or white, and a
// vanishing chroma short-circuits to gray, since hue is undefined there.
// Otherwise the red seed at this luma is rotated about the luminance axis
// by hue turns, desaturated back into gamut, scaled to the requested chroma
// against the gamut bound, and transfer-encoded. A negative chroma scales
// against the opposite bound, producing the complementary direction rather
// than a desaturation.
func (m Model) HCL(hue, chroma, luma, alpha float64) Color {
	switch {
	case luma <= 0:
		return Color{0, 0, 0, clamp01(alpha)}
	case luma >= 1:
		return Color{1, 1, 1, clamp01(alpha)}
	}
	if math.Abs(chroma) < epsilon {
		d := m.Transfer(luma)
		return Color{d, d, d, clamp01(alpha)}
	}
	gray := Gray(luma)
	c := m.rotated(m.InverseLuminance(luma).Sub(gray), hue).Add(gray)
	c = m.Normalize(c, luma, false)
	c = m.ApplyChroma(c, chroma, luma)
	return m.Display(c, alpha)
}

// Hue returns the hue of a linear color in turns, in [0, 1). Gray colors
// have no hue and return 0.
func (m Model) Hue(c Linear) float64 {
	v := m.Luminance(c)
	u := c.Sub(Gray(v))
	lenSq := u.Dot(u)
	if lenSq < epsilon {
		return 0
	}
	ref := m.InverseLuminance(1).Sub(Gray(1))
	cos := u.Dot(ref) / math.Sqrt(lenSq*ref.Dot(ref))
	turns := math.Acos(clamp(cos, -1, 1)) / (2 * math.Pi)
	// The arccos covers half the circle; which half is decided by whether
	// the chroma vector leans green or blue. G-B varies as sin(hue·2π)
	// about the red reference for any all-positive weighting, so the test
	// holds for every preset.
	if u.G < u.B && turns > 0 {
		return 1 - turns
	}
	return turns
}

// Chroma returns the signed saturation fraction of a linear color: the
// reciprocal of the largest in-gamut scaling of its chroma vector. Gray
// returns 0.
func (m Model) Chroma(c Linear) float64 {
	v := m.Luminance(c)
	bound := m.MaximumChroma(c, v)
	if math.IsInf(bound, 0) || bound < epsilon {
		return 0
	}
	return 1 / bound
}

// HueShifted rotates the color's chroma vector about the luminance axis by
// the given number of turns, preserving luma v exactly. Gray is returned
// unchanged. Components pushed out of gamut by the rotation are resolved by
// desaturating toward gray, never by clipping a single channel.
func (m Model) HueShifted(c Linear, v, turns float64) Linear {
	gray := Gray(v)
	u := c.Sub(gray)
	if u.Dot(u) < epsilon {
		return c
	}
	return m.Normalize(m.rotated(u, turns).Add(gray), v, false)
}

// MaximumChroma returns the largest factor by which the chroma vector of c
// about luminance v can be scaled before a component leaves [0, 1].
// Components indistinguishable from gray impose no bound; a fully gray
// color returns +Inf, which [Model.ApplyChroma] treats as inert.
func (m Model) MaximumChroma(c Linear, v float64) float64 {
	bound := math.Inf(1)
	for _, d := range [3]float64{c.R - v, c.G - v, c.B - v} {
		var b float64
		switch {
		case d > epsilon:
			b = (1 - v) / d
		case d < -epsilon:
			b = v / -d
		default:
			continue
		}
		if b < bound {
			bound = b
		}
	}
	return bound
}

// MinimumChroma returns the most negative factor by which the chroma vector
// of c about luminance v can be scaled before a component leaves [0, 1].
// It is the opposite-hue counterpart of [Model.MaximumChroma] and is -Inf
// for gray.
func (m Model) MinimumChroma(c Linear, v float64) float64 {
	bound := math.Inf(-1)
	for _, d := range [3]float64{c.R - v, c.G - v, c.B - v} {
		var b float64
		switch {
		case d > epsilon:
			b = -v / d
		case d < -epsilon:
			b = (1 - v) / d
		default:
			continue
		}
		if b > bound {
			bound = b
		}
	}
	return bound
}

// ApplyChroma scales the color's chroma vector about luminance v so that
// the result has chroma equal to value. Positive values scale against the
// maximum bound, negative values against the minimum bound (the opposite
// hue). An unbounded (gray) color is returned as gray: there is no hue to
// saturate. Luma is preserved exactly.
func (m Model) ApplyChroma(c Linear, value, v float64) Linear {
	bound := m.MaximumChroma(c, v)
	if value < 0 {
		bound = m.MinimumChroma(c, v)
	}
	s := 0.0
	if !math.IsInf(bound, 0) {
		s = bound * math.Abs(value)
	}
	return Gray(v).Lerp(c, s)
}

// ScaleChroma interpolates from gray at luminance v toward (or past) the
// color by the given factor, ignoring the gamut bound. Factors beyond the
// bound denormalize the result. Luma is preserved exactly.
func (m Model) ScaleChroma(c Linear, s, v float64) Linear {
	return Gray(v).Lerp(c, s)
}

// Normalize desaturates c toward gray at luminance v until every component
// is back in [0, 1]. Blending toward gray changes only chroma, never hue or
// luma. When leavePositive is true, components above one are left for a
// later stage to resolve; otherwise they are desaturated symmetrically and
// the result is clamped for float safety.
func (m Model) Normalize(c Linear, v float64, leavePositive bool) Linear {
	if lo := c.minComponent(); lo < 0 {
		t := 0.0
		if v-lo > epsilon {
			t = v / (v - lo)
		}
		c = Gray(v).Lerp(c, t)
	}
	if leavePositive {
		return c
	}
	if hi := c.maxComponent(); hi > 1 {
		t := 0.0
		if hi-v > epsilon {
			t = (1 - v) / (hi - v)
		}
		if t < 0 {
			t = 0
		}
		c = Gray(v).Lerp(c, t)
	}
	return c.clampUnit()
}
