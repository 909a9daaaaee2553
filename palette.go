// Copyright (c) 2025, The CHCLT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chclt

// spacedHues are eight roughly evenly separated hues in turns, ordered so
// that neighbors in the sequence are far apart on the wheel:
// blue, red, green, yellow-green, violet, aqua, orange, blueviolet.
var spacedHues = [...]float64{0.708, 0.069, 0.417, 0.292, 0.944, 0.583, 0.167, 0.833}

// spacedLumas and spacedChromas cycle once the hues are exhausted, so
// indexes beyond the hue count revisit each hue at a different weight.
var (
	spacedLumas   = [...]float64{0.65, 0.8, 0.45, 0.65, 0.8}
	spacedChromas = [...]float64{0.9, 0.9, 0.9, 0.25, 0.25}
)

// Spaced returns a maximally widely spaced sequence of colors for
// progressive values of the index, useful for assigning colors to
// categories in graphs.
func Spaced(m Model, idx int) Color {
	if idx < 0 {
		idx = -idx
	}
	hi := idx % len(spacedHues)
	ti := (idx / len(spacedHues)) % len(spacedLumas)
	return m.HCL(spacedHues[hi], spacedChromas[ti], spacedLumas[ti], 1)
}
