// Copyright (c) 2025, The CHCLT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chclt implements the Cole hue-chroma-luma transform (CHCLT),
// a perceptual color model over linear RGB. A [Model] pairs a luminance
// weighting with a transfer curve; all operations are pure functions over
// small float64 vectors, total over their domains, and safe to call from
// any goroutine.
//
// Hue is an angle in turns (0 to 1) around the luminance axis, chroma is a
// signed saturation fraction (-1 to 1, negative selecting the opposite hue),
// and luma is the weighted luminance of the linear color (0 to 1). Hue
// rotation and chroma scaling preserve luma exactly; operations that would
// leave the displayable gamut desaturate toward gray rather than clip
// per channel.
package chclt

import "math"

// epsilon guards divisions whose denominators may vanish. Bounds computed
// from smaller differences are treated as unbounded.
const epsilon = 1e-30

// contrastLinearity flattens the contrast curve near medium luma.
const contrastLinearity = 0.3

type transferKind int

const (
	transferPower transferKind = iota
	transferSquare
	transferSRGB
)

// Model is an immutable CHCLT configuration: three non-negative luminance
// coefficients summing to one, and a transfer curve mapping between linear
// and display component values. The zero Model is not valid; use a preset
// or one of the New constructors.
type Model struct {
	wr, wg, wb float64
	ax, ay, az float64 // unit luminance axis, normalize(wr, wg, wb)
	kind       transferKind
	gamma      float64
	linearity  float64
}

func newModel(wr, wg, wb float64, kind transferKind, gamma float64) Model {
	s := math.Sqrt(wr*wr + wg*wg + wb*wb)
	return Model{
		wr: wr, wg: wg, wb: wb,
		ax: wr / s, ay: wg / s, az: wb / s,
		kind: kind, gamma: gamma,
		linearity: contrastLinearity,
	}
}

// NewPower returns a model with a pure power-law transfer curve,
// display = linear^gamma.
func NewPower(wr, wg, wb, gamma float64) Model {
	return newModel(wr, wg, wb, transferPower, gamma)
}

// NewSquare returns a model with the square-law transfer curve,
// display = sqrt(linear) and linear = display·|display|.
func NewSquare(wr, wg, wb float64) Model {
	return newModel(wr, wg, wb, transferSquare, 0.5)
}

// NewSRGB returns a model with the piecewise sRGB transfer curve,
// including the linear toe segment near black.
func NewSRGB(wr, wg, wb float64) Model {
	return newModel(wr, wg, wb, transferSRGB, 1/2.4)
}

var (
	// BT601 uses ITU-R BT.601 luma coefficients with a 0.45 power curve.
	BT601 = NewPower(0.299, 0.587, 0.114, 0.45)

	// BT709 uses ITU-R BT.709 luma coefficients with a 0.45 power curve.
	BT709 = NewPower(0.2126, 0.7152, 0.0722, 0.45)

	// BT2020 uses ITU-R BT.2020 luma coefficients with a 0.45 power curve.
	BT2020 = NewPower(0.2627, 0.678, 0.0593, 0.45)

	// SRGB uses BT.709 luma coefficients with the standard sRGB curve.
	SRGB = NewSRGB(0.2126, 0.7152, 0.0722)

	// SquareBT709 uses BT.709 luma coefficients with the square-law curve.
	SquareBT709 = NewSquare(0.2126, 0.7152, 0.0722)

	// Default is the model used by APIs that do not take an explicit one.
	Default = SRGB
)

// Weights returns the model's luminance coefficients.
func (m Model) Weights() (wr, wg, wb float64) {
	return m.wr, m.wg, m.wb
}

// ContrastLinearity returns the constant used by the contrast formulas.
func (m Model) ContrastLinearity() float64 {
	return m.linearity
}

// Transfer converts a linear component to its display encoding. Negative
// inputs are encoded by magnitude with the sign restored, since rotation
// can produce signed intermediate values.
func (m Model) Transfer(x float64) float64 {
	sign := 1.0
	if x < 0 {
		sign, x = -1, -x
	}
	switch m.kind {
	case transferSquare:
		x = math.Sqrt(x)
	case transferSRGB:
		x = srgbFromLinear(x)
	default:
		x = math.Pow(x, m.gamma)
	}
	return sign * x
}

// Linearize converts a display component to linear light. It is the exact
// inverse of [Model.Transfer], with the same signed-magnitude handling.
func (m Model) Linearize(x float64) float64 {
	sign := 1.0
	if x < 0 {
		sign, x = -1, -x
	}
	switch m.kind {
	case transferSquare:
		x = x * x
	case transferSRGB:
		x = srgbToLinear(x)
	default:
		x = math.Pow(x, 1/m.gamma)
	}
	return sign * x
}

func srgbFromLinear(x float64) float64 {
	if x >= 0.0031308 {
		return 1.055*math.Pow(x, 1/2.4) - 0.055
	}
	return x * 12.92
}

func srgbToLinear(x float64) float64 {
	if x >= 0.04045 {
		return math.Pow((x+0.055)/1.055, 2.4)
	}
	return x / 12.92
}

// Display applies the transfer curve to a linear color and attaches the
// given alpha. Components are clamped to the display range, so denormalized
// intermediates never leak to output.
func (m Model) Display(c Linear, alpha float64) Color {
	return Color{
		R: clamp01(m.Transfer(c.R)),
		G: clamp01(m.Transfer(c.G)),
		B: clamp01(m.Transfer(c.B)),
		A: clamp01(alpha),
	}
}

// Linearized converts the RGB components of a display color to linear
// light. Alpha is carried separately and is not part of the transform.
func (m Model) Linearized(c Color) Linear {
	return Linear{m.Linearize(c.R), m.Linearize(c.G), m.Linearize(c.B)}
}

// Luminance returns the weighted sum of the linear components.
func (m Model) Luminance(c Linear) float64 {
	return m.wr*c.R + m.wg*c.G + m.wb*c.B
}

// Luma is the model's perceptual lightness of a linear color,
// identical to [Model.Luminance].
func (m Model) Luma(c Linear) float64 {
	return m.Luminance(c)
}

// InverseLuminance returns the red-axis seed color with the given
// luminance. The result is usually denormalized (red above one) and is
// the reference direction from which hue angles are measured.
func (m Model) InverseLuminance(u float64) Linear {
	return Linear{u / m.wr, 0, 0}
}

// rotated rotates a zero-luminance vector about the unit luminance axis by
// the given number of turns, using the Rodrigues formula. Both Hue and
// HueShifted measure against this same axis; hue round trips depend on it.
func (m Model) rotated(u Linear, turns float64) Linear {
	sin, cos := math.Sincos(turns * 2 * math.Pi)
	cx := m.ay*u.B - m.az*u.G
	cy := m.az*u.R - m.ax*u.B
	cz := m.ax*u.G - m.ay*u.R
	d := (m.ax*u.R + m.ay*u.G + m.az*u.B) * (1 - cos)
	return Linear{
		R: u.R*cos + cx*sin + m.ax*d,
		G: u.G*cos + cy*sin + m.ay*d,
		B: u.B*cos + cz*sin + m.az*d,
	}
}
