// Copyright (c) 2025, The CHCLT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chclt

import "image/color"

// The functions in this file are slider-style conveniences over standard
// library colors: decode, adjust one CHCLT coordinate, re-encode. They all
// take the model explicitly; use [Default] when no particular space is
// called for.

// Lighten returns a color that is lighter by the given absolute luma
// amount (0-1, ranges enforced).
func Lighten(m Model, c color.Color, amount float64) color.RGBA {
	dc := FromColor(c)
	lin := m.Linearized(dc)
	u := clamp01(m.Luminance(lin) + amount)
	return m.Display(m.ApplyLuminance(lin, u), dc.A).AsRGBA()
}

// Darken returns a color that is darker by the given absolute luma
// amount (0-1, ranges enforced).
func Darken(m Model, c color.Color, amount float64) color.RGBA {
	return Lighten(m, c, -amount)
}

// Highlight returns a color that is lighter or darker by the given
// absolute luma amount (0-1, ranges enforced), moving away from the
// color's own side of medium: light colors darken and dark colors
// lighten. It is the opposite of [Samelight].
func Highlight(m Model, c color.Color, amount float64) color.RGBA {
	dc := FromColor(c)
	lin := m.Linearized(dc)
	v := m.Luminance(lin)
	if v >= 0.5 {
		amount = -amount
	}
	return m.Display(m.ApplyLuminance(lin, clamp01(v+amount)), dc.A).AsRGBA()
}

// Samelight returns a color that is lighter or darker by the given
// absolute luma amount (0-1, ranges enforced), moving further toward the
// color's own side of medium: light colors lighten and dark colors darken.
// It is the opposite of [Highlight].
func Samelight(m Model, c color.Color, amount float64) color.RGBA {
	dc := FromColor(c)
	lin := m.Linearized(dc)
	v := m.Luminance(lin)
	if v < 0.5 {
		amount = -amount
	}
	return m.Display(m.ApplyLuminance(lin, clamp01(v+amount)), dc.A).AsRGBA()
}

// Saturate returns a color that is more saturated by the given absolute
// chroma amount (0-1, ranges enforced).
func Saturate(m Model, c color.Color, amount float64) color.RGBA {
	dc := FromColor(c)
	lin := m.Linearized(dc)
	v := m.Luminance(lin)
	value := clamp(m.Chroma(lin)+amount, -1, 1)
	return m.Display(m.ApplyChroma(lin, value, v), dc.A).AsRGBA()
}

// Desaturate returns a color that is less saturated by the given absolute
// chroma amount (0-1, ranges enforced).
func Desaturate(m Model, c color.Color, amount float64) color.RGBA {
	return Saturate(m, c, -amount)
}

// Spin returns a color with its hue rotated by the given number of turns,
// preserving luma exactly.
func Spin(m Model, c color.Color, turns float64) color.RGBA {
	dc := FromColor(c)
	lin := m.Linearized(dc)
	v := m.Luminance(lin)
	return m.Display(m.HueShifted(lin, v, turns), dc.A).AsRGBA()
}

// IsLight reports whether the color's luma is above medium.
func IsLight(m Model, c color.Color) bool {
	return m.Luminance(m.Linearized(FromColor(c))) > 0.5
}

// IsDark reports whether the color's luma is at or below medium.
func IsDark(m Model, c color.Color) bool {
	return !IsLight(m, c)
}
