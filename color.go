// Copyright (c) 2025, The CHCLT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chclt

import (
	"fmt"
	"image/color"
)

// Linear is a color in linear light, one component per primary. Components
// are nominally in [0, 1] but may be transiently denormalized (negative or
// above one) during intermediate arithmetic; [Model.Normalize] and
// [Model.Display] bring them back into range. Alpha is carried separately
// and never participates in hue, chroma, or luma math.
type Linear struct {
	R, G, B float64
}

// Gray returns the linear gray with every component equal to v. Its
// luminance is v under any model.
func Gray(v float64) Linear {
	return Linear{v, v, v}
}

// Add returns the component-wise sum of two linear colors.
func (c Linear) Add(o Linear) Linear {
	return Linear{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Sub returns the component-wise difference of two linear colors.
func (c Linear) Sub(o Linear) Linear {
	return Linear{c.R - o.R, c.G - o.G, c.B - o.B}
}

// Scale returns the color with every component multiplied by s.
func (c Linear) Scale(s float64) Linear {
	return Linear{c.R * s, c.G * s, c.B * s}
}

// Lerp returns the linear interpolation from c to o at fraction t.
// t outside [0, 1] extrapolates.
func (c Linear) Lerp(o Linear, t float64) Linear {
	return Linear{
		c.R + (o.R-c.R)*t,
		c.G + (o.G-c.G)*t,
		c.B + (o.B-c.B)*t,
	}
}

// Dot returns the dot product of the two colors as 3-vectors.
func (c Linear) Dot(o Linear) float64 {
	return c.R*o.R + c.G*o.G + c.B*o.B
}

func (c Linear) minComponent() float64 {
	return min(c.R, c.G, c.B)
}

func (c Linear) maxComponent() float64 {
	return max(c.R, c.G, c.B)
}

func (c Linear) clampUnit() Linear {
	return Linear{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// Color is a display-encoded (transfer-curve-applied) RGBA color with
// components in [0, 1]. Components are not premultiplied by alpha; the
// premultiplication happens in [Color.RGBA].
type Color struct {
	R, G, B, A float64
}

var _ color.Color = Color{}

// RGBA implements the color.Color interface, premultiplying by alpha.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(clamp01(c.R)*clamp01(c.A)*65535 + 0.5)
	g = uint32(clamp01(c.G)*clamp01(c.A)*65535 + 0.5)
	b = uint32(clamp01(c.B)*clamp01(c.A)*65535 + 0.5)
	a = uint32(clamp01(c.A)*65535 + 0.5)
	return
}

// AsRGBA returns the color as a standard 8-bit premultiplied color.RGBA.
func (c Color) AsRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R)*clamp01(c.A)*255 + 0.5),
		G: uint8(clamp01(c.G)*clamp01(c.A)*255 + 0.5),
		B: uint8(clamp01(c.B)*clamp01(c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// FromColor converts a standard color.Color, undoing the alpha
// premultiplication. A fully transparent input yields the zero Color.
func FromColor(ci color.Color) Color {
	r, g, b, a := ci.RGBA()
	if a == 0 {
		return Color{}
	}
	fa := float64(a) / 65535
	return Color{
		R: float64(r) / 65535 / fa,
		G: float64(g) / 65535 / fa,
		B: float64(b) / 65535 / fa,
		A: fa,
	}
}

func (c Color) String() string {
	return fmt.Sprintf("chclt(%.4g, %.4g, %.4g, %.4g)", c.R, c.G, c.B, c.A)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
