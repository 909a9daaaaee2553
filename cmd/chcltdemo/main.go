// Copyright (c) 2025, The CHCLT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command chcltdemo renders CHCLT hue, chroma, luma and contrast sweeps as
// color bars in the terminal, next to a plain HSL ramp for comparison.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/hueworks/chclt"
	"github.com/hueworks/chclt/gradient"
)

var (
	modelName = flag.String("model", "srgb", "color model preset: bt601, bt709, bt2020, srgb, square")
	width     = flag.Int("width", 64, "width of the sample bars in cells")
	hue       = flag.Float64("hue", 0.62, "hue in turns for the fixed-hue sweeps")
	chroma    = flag.Float64("chroma", 1, "chroma for the hue and luma sweeps")
	luma      = flag.Float64("luma", 0.5, "luma for the hue and chroma sweeps")
)

func modelByName(name string) (chclt.Model, bool) {
	switch name {
	case "bt601":
		return chclt.BT601, true
	case "bt709":
		return chclt.BT709, true
	case "bt2020":
		return chclt.BT2020, true
	case "srgb":
		return chclt.SRGB, true
	case "square":
		return chclt.SquareBT709, true
	}
	return chclt.Model{}, false
}

func hex(c chclt.Color) string {
	rgba := c.AsRGBA()
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

func main() {
	flag.Parse()
	m, ok := modelByName(*modelName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown model %q\n", *modelName)
		flag.Usage()
		os.Exit(2)
	}

	if *width < 2 {
		*width = 2
	}

	out := termenv.NewOutput(os.Stdout)
	bar := func(label string, color func(t float64) chclt.Color) {
		fmt.Fprintf(out, "%-22s ", label)
		for i := 0; i < *width; i++ {
			t := float64(i) / float64(*width-1)
			out.WriteString(out.String(" ").Background(out.Color(hex(color(t)))).String())
		}
		out.WriteString("\n")
	}

	bar("hue", func(t float64) chclt.Color {
		return m.HCL(t, *chroma, *luma, 1)
	})
	bar("luma", func(t float64) chclt.Color {
		return m.HCL(*hue, *chroma, t, 1)
	})
	bar("chroma -1..1", func(t float64) chclt.Color {
		return m.HCL(*hue, 2*t-1, *luma, 1)
	})
	bar("contrast", func(t float64) chclt.Color {
		lin := m.Linearized(m.HCL(*hue, *chroma, *luma, 1))
		return m.Display(m.Contrasting(lin, 2*t-1), 1)
	})

	// A gradient through the spaced palette, sampled in linear light.
	stops := make([]chclt.Color, 5)
	for i := range stops {
		stops[i] = chclt.Spaced(m, i)
	}
	sampler := gradient.FromColors(m, stops)
	bar("palette gradient", sampler.Func())

	// The same hue sweep in naive HSL, for contrast with the luma-uniform
	// CHCLT bar above it.
	bar("hsl comparison", func(t float64) chclt.Color {
		h := colorful.Hsl(t*360, 1, 0.5)
		return chclt.Color{R: h.R, G: h.G, B: h.B, A: 1}
	})

	// Foreground picked by the contrast operator over each background.
	fmt.Fprintf(out, "%-22s ", "contrasting text")
	for i := 0; i < 8; i++ {
		bg := chclt.Spaced(m, i)
		fg := m.Display(m.Contrasting(m.Linearized(bg), -1), 1)
		cell := out.String(" Aa ").
			Background(out.Color(hex(bg))).
			Foreground(out.Color(hex(fg)))
		out.WriteString(cell.String())
	}
	out.WriteString("\n")
}
