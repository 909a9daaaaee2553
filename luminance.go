// Copyright (c) 2025, The CHCLT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chclt

// ScaleLuminance multiplies every component by s, scaling luminance by the
// same factor. Hue and the chroma fraction are unchanged while the result
// stays in gamut.
func (m Model) ScaleLuminance(c Linear, s float64) Linear {
	return c.Scale(s)
}

// MaximumLuminancePreservingHue returns the highest luma reachable from c
// by direct scaling before a component would exceed one. Above this value
// [Model.ApplyLuminance] switches to its desaturating branch. Black
// returns 0.
func (m Model) MaximumLuminancePreservingHue(c Linear) float64 {
	v := m.Luminance(c)
	if v <= epsilon {
		return 0
	}
	n := m.Normalize(c, v, true)
	hi := n.maxComponent()
	if hi < epsilon {
		return 0
	}
	return v / hi
}

// ApplyLuminance adjusts the color to luminance u, preserving hue and
// chroma when the gamut allows it.
//
// Target luma at or beyond the extremes yields black or white, and a black
// input yields flat gray, there being no hue to preserve. Otherwise the
// input is first normalized leaving components above one alone, since a
// negative component is an out-of-gamut artifact while a bright channel is
// legitimate. If uniform scaling to u keeps the brightest channel within
// one, the color is scaled directly. When the requested luma exceeds what
// this hue can deliver at full saturation, the color is instead
// interpolated between its purest in-gamut form and white, brightening by
// desaturation rather than by clipping channels.
func (m Model) ApplyLuminance(c Linear, u float64) Linear {
	switch {
	case u <= 0:
		return Linear{}
	case u >= 1:
		return Linear{1, 1, 1}
	}
	v := m.Luminance(c)
	if v <= epsilon {
		return Gray(u)
	}
	n := m.Normalize(c, v, true)
	hi := n.maxComponent()
	s := u / v
	if s*hi <= 1 {
		return m.ScaleLuminance(n, s)
	}
	peak := n.Scale(1 / hi) // purest in-gamut color at this hue
	pv := v / hi
	if 1-pv < epsilon {
		return Gray(u)
	}
	return peak.Lerp(Linear{1, 1, 1}, (u-pv)/(1-pv))
}
