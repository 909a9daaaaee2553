// Copyright (c) 2025, The CHCLT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chclt

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

var presets = map[string]Model{
	"bt601":       BT601,
	"bt709":       BT709,
	"bt2020":      BT2020,
	"srgb":        SRGB,
	"squareBT709": SquareBT709,
}

func TestWeightsSumToOne(t *testing.T) {
	for name, m := range presets {
		wr, wg, wb := m.Weights()
		assert.InDelta(t, 1.0, wr+wg+wb, 1e-4, name)
	}
}

func TestTransferRoundTrip(t *testing.T) {
	for name, m := range presets {
		for i := 0; i <= 1000; i++ {
			x := float64(i) / 1000
			assert.InDelta(t, x, m.Transfer(m.Linearize(x)), 1e-9, name)
			assert.InDelta(t, x, m.Linearize(m.Transfer(x)), 1e-9, name)
		}
	}
}

func TestTransferSignedMagnitude(t *testing.T) {
	for name, m := range presets {
		for _, x := range []float64{-1, -0.5, -0.01} {
			assert.InDelta(t, -m.Transfer(-x), m.Transfer(x), 1e-12, name)
			assert.InDelta(t, -m.Linearize(-x), m.Linearize(x), 1e-12, name)
			assert.InDelta(t, x, m.Transfer(m.Linearize(x)), 1e-9, name)
		}
	}
}

// The sRGB preset must agree with go-colorful's implementation of the
// standard curve.
func TestSRGBCurveAgainstColorful(t *testing.T) {
	for i := 0; i <= 100; i++ {
		x := float64(i) / 100
		ref := colorful.LinearRgb(x, x, x)
		assert.InDelta(t, ref.R, SRGB.Transfer(x), 1e-9)
		back := colorful.Color{R: ref.R, G: ref.G, B: ref.B}
		lr, _, _ := back.LinearRgb()
		assert.InDelta(t, lr, SRGB.Linearize(ref.R), 1e-9)
	}
}

func TestLuminance(t *testing.T) {
	assert.InDelta(t, 1.0, BT709.Luminance(Gray(1)), 1e-12)
	assert.InDelta(t, 0.2126, BT709.Luminance(Linear{1, 0, 0}), 1e-12)
	assert.InDelta(t, 0.7152, BT709.Luminance(Linear{0, 1, 0}), 1e-12)
	assert.InDelta(t, 0.0722, BT709.Luminance(Linear{0, 0, 1}), 1e-12)
	assert.InDelta(t, 0.5, BT709.Luma(Gray(0.5)), 1e-12)
}

func TestInverseLuminance(t *testing.T) {
	for name, m := range presets {
		for _, u := range []float64{0.1, 0.5, 0.9} {
			seed := m.InverseLuminance(u)
			assert.InDelta(t, u, m.Luminance(seed), 1e-12, name)
			assert.Zero(t, seed.G, name)
			assert.Zero(t, seed.B, name)
		}
	}
}

func TestDisplayLinearizedRoundTrip(t *testing.T) {
	for name, m := range presets {
		in := Linear{0.25, 0.5, 0.125}
		out := m.Linearized(m.Display(in, 1))
		assert.InDelta(t, in.R, out.R, 1e-9, name)
		assert.InDelta(t, in.G, out.G, 1e-9, name)
		assert.InDelta(t, in.B, out.B, 1e-9, name)
	}
}

func TestDisplayClampsDenormalized(t *testing.T) {
	c := SRGB.Display(Linear{1.5, -0.25, 0.5}, 2)
	assert.Equal(t, 1.0, c.R)
	assert.Equal(t, 0.0, c.G)
	assert.Equal(t, 1.0, c.A)
}

func BenchmarkHCL(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BT709.HCL(0.33, 0.45, 0.56, 1)
	}
}

func BenchmarkTransferRoundTrip(b *testing.B) {
	for i := 0; i < b.N; i++ {
		SRGB.Transfer(SRGB.Linearize(0.5))
	}
}
