// SPDX-License-Identifier: MIT

// Package raster is the pixel I/O collaborator of the codec.
//
// Image is a planar float buffer: three channels, each a row-major
// Width·Height slice. Pixel files map to values in [0, 1]; what a channel
// means (R/G/B or Y/Cb/Cr) is decided by the caller, see package colorspace.
//
// Supported containers, selected by file extension:
//
//	.ppm .pnm   read P6 (8- and 16-bit) and P3, write P6 8-bit
//	.png        read and write (image/png)
//	.jpg .jpeg  read only (github.com/gen2brain/jpegn)
//
// Store writes through a temporary file in the target directory and renames
// it into place, so a failed store never leaves a truncated file behind the
// requested name.
package raster
