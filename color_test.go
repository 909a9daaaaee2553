// Copyright (c) 2025, The CHCLT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chclt

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorInterface(t *testing.T) {
	tests := []struct {
		name                       string
		c                          Color
		wantR, wantG, wantB, wantA uint32
	}{
		{"opaque white", Color{1, 1, 1, 1}, 65535, 65535, 65535, 65535},
		{"opaque black", Color{0, 0, 0, 1}, 0, 0, 0, 65535},
		{"transparent", Color{0, 0, 0, 0}, 0, 0, 0, 0},
		{"half alpha red", Color{1, 0, 0, 0.5}, 32768, 0, 0, 32768},
		{"denormalized clamps", Color{1.5, -0.5, 0.5, 1}, 65535, 0, 32768, 65535},
	}
	for _, tt := range tests {
		r, g, b, a := tt.c.RGBA()
		assert.Equal(t, tt.wantR, r, tt.name)
		assert.Equal(t, tt.wantG, g, tt.name)
		assert.Equal(t, tt.wantB, b, tt.name)
		assert.Equal(t, tt.wantA, a, tt.name)
	}
}

func TestFromColorRoundTrip(t *testing.T) {
	in := color.RGBA{200, 100, 50, 255}
	c := FromColor(in)
	assert.Equal(t, in, c.AsRGBA())

	assert.Equal(t, Color{}, FromColor(color.RGBA{0, 0, 0, 0}))
}

func TestFromColorUnpremultiplies(t *testing.T) {
	in := color.NRGBA{200, 100, 50, 128}
	c := FromColor(in)
	assert.InDelta(t, 200.0/255, c.R, 0.01)
	assert.InDelta(t, 100.0/255, c.G, 0.01)
	assert.InDelta(t, 50.0/255, c.B, 0.01)
	assert.InDelta(t, 128.0/255, c.A, 0.01)
}

func TestLinearArithmetic(t *testing.T) {
	a := Linear{0.25, 0.5, 0.75}
	b := Linear{0.125, 0.125, 0.125}
	assert.Equal(t, Linear{0.375, 0.625, 0.875}, a.Add(b))
	assert.Equal(t, Linear{0.125, 0.375, 0.625}, a.Sub(b))
	assert.Equal(t, Linear{0.5, 1, 1.5}, a.Scale(2))
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, Linear{0.1875, 0.3125, 0.4375}, a.Lerp(b, 0.5))
	assert.InDelta(t, 0.25*0.125+0.5*0.125+0.75*0.125, a.Dot(b), 1e-15)
	assert.Equal(t, Gray(0.3), Linear{0.3, 0.3, 0.3})
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "chclt(1, 0.5, 0, 1)", Color{1, 0.5, 0, 1}.String())
}
