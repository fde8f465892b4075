// SPDX-License-Identifier: MIT

// Package colorspace converts planar images between RGB and the luma-chroma
// space the codec factorizes.
//
// The transform is ITU-R BT.601 full range with chroma centered at zero:
//
//	Y  = 0.299·R + 0.587·G + 0.114·B        Y ∈ [0, 1]
//	Cb = (B - Y) / 1.772                    Cb ∈ [-0.5, 0.5]
//	Cr = (R - Y) / 1.402                    Cr ∈ [-0.5, 0.5]
//
// and its exact algebraic inverse. All functions are pure: they return new
// images and never touch their input.
package colorspace
