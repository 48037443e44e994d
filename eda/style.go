// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eda

import (
	"image/color"

	"github.com/aclements/go-gg/palette"
)

// Colors shared by all renderers. go-gg requires a single color type
// per scale, so these and Fade are all color.NRGBA.
var (
	FillColor  = color.NRGBA{0x4c, 0x72, 0xb0, 0xff}
	EdgeColor  = color.NRGBA{0x1e, 0x2d, 0x46, 0xff}
	LineColor  = color.NRGBA{0xdd, 0x84, 0x52, 0xff}
	PointColor = FillColor
)

// Diverging maps [0, 1] from blue through white to red. CorrColor
// centers it at a correlation of zero.
var Diverging = palette.RGBGradient{
	Colors: []color.RGBA{
		{0x21, 0x66, 0xac, 0xff},
		{0x67, 0xa9, 0xcf, 0xff},
		{0xd1, 0xe5, 0xf0, 0xff},
		{0xf7, 0xf7, 0xf7, 0xff},
		{0xfd, 0xdb, 0xc7, 0xff},
		{0xef, 0x8a, 0x62, 0xff},
		{0xb2, 0x18, 0x2b, 0xff},
	},
}

// CorrColor returns the color of correlation r, which must be in
// [-1, 1].
func CorrColor(r float64) color.Color {
	return Diverging.Map((r + 1) / 2)
}

// Fade returns c with opacity alpha.
func Fade(c color.NRGBA, alpha float64) color.NRGBA {
	return color.NRGBA{c.R, c.G, c.B, uint8(alpha*255 + 0.5)}
}
