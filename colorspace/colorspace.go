// SPDX-License-Identifier: MIT

package colorspace

import (
	"fmt"

	"github.com/katalvlaran/svdimg/raster"
)

// BT.601 luma weights.
const (
	Kr = 0.299
	Kg = 0.587
	Kb = 0.114
)

const (
	cbScale = 2 * (1 - Kb) // 1.772
	crScale = 2 * (1 - Kr) // 1.402
)

// RGBToYCbCr converts one pixel.
func RGBToYCbCr(r, g, b float64) (y, cb, cr float64) {
	y = Kr*r + Kg*g + Kb*b
	cb = (b - y) / cbScale
	cr = (r - y) / crScale

	return y, cb, cr
}

// YCbCrToRGB converts one pixel back.
func YCbCrToRGB(y, cb, cr float64) (r, g, b float64) {
	r = y + crScale*cr
	b = y + cbScale*cb
	g = (y - Kr*r - Kb*b) / Kg

	return r, g, b
}

// ToYCbCr returns img converted from RGB to Y/Cb/Cr planes.
func ToYCbCr(img *raster.Image) (*raster.Image, error) {
	return convert("ToYCbCr", img, RGBToYCbCr)
}

// ToRGB returns img converted from Y/Cb/Cr to RGB planes. Out-of-gamut
// samples are kept; clamping happens when the image is stored.
func ToRGB(img *raster.Image) (*raster.Image, error) {
	return convert("ToRGB", img, YCbCrToRGB)
}

func convert(op string, img *raster.Image, px func(a, b, c float64) (float64, float64, float64)) (*raster.Image, error) {
	if err := img.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	out, err := raster.New(img.Width, img.Height)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	p0, p1, p2 := img.Planes[0], img.Planes[1], img.Planes[2]
	for i := range p0 {
		out.Planes[0][i], out.Planes[1][i], out.Planes[2][i] = px(p0[i], p1[i], p2[i])
	}

	return out, nil
}
