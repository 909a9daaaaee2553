// Copyright (c) 2025, The CHCLT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chclt

import "math"

// Contrast returns the color's visual distance from medium gray in [0, 1]:
// 0 at medium luma, 1 at black or white. It depends only on luma, so two
// colors with the same luma have the same contrast regardless of hue or
// chroma, and it is symmetric about medium.
func (m Model) Contrast(c Linear) float64 {
	return m.lumaContrast(m.Luminance(c))
}

func (m Model) lumaContrast(v float64) float64 {
	d := m.linearity
	var k float64
	if v > 0.5 {
		k = (1 - v) / (1 - v + d)
	} else {
		k = v / (v + d)
	}
	return math.Abs(k*(1+2*d) - 1)
}

// contrastLuma inverts lumaContrast for a target contrast t on the light
// or dark side of medium.
func (m Model) contrastLuma(t float64, light bool) float64 {
	d := m.linearity
	k := (1 - clamp(t, 0, 1)) / (1 + 2*d)
	v := k * d / (1 - k)
	if light {
		return 1 - v
	}
	return v
}

// Contrasting adjusts the color's luma to have the given contrast,
// preserving hue where the gamut allows. Non-negative values stay on the
// color's own side of medium luma, so Contrasting(c, Contrast(c))
// reproduces c; negative values target the opposite side, approaching the
// far extreme as the magnitude nears one.
func (m Model) Contrasting(c Linear, value float64) Linear {
	light := m.Luminance(c) > 0.5
	if value < 0 {
		light = !light
	}
	return m.ApplyLuminance(c, m.contrastLuma(math.Abs(value), light))
}

// ScaleContrast multiplies the color's contrast by s and adjusts luma to
// match. A scale of one is the identity; zero moves to medium luma; a
// negative scale crosses to the other side of medium.
func (m Model) ScaleContrast(c Linear, s float64) Linear {
	return m.Contrasting(c, m.Contrast(c)*s)
}
