// SPDX-License-Identifier: MIT

package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/katalvlaran/svdimg/matrix"
)

// Channels is the fixed number of planes of an Image.
const Channels = 3

// MaxDimension bounds width and height; larger files are rejected on load.
const MaxDimension = 1 << 15

// Image is a planar float image. Planes[c][y*Width+x] holds channel c of pixel (x, y).
type Image struct {
	Width, Height int
	Planes        [Channels][]float64
}

// New allocates a zero image.
func New(width, height int) (*Image, error) {
	if err := validateDims(width, height); err != nil {
		return nil, err
	}
	img := &Image{Width: width, Height: height}
	for c := range img.Planes {
		img.Planes[c] = make([]float64, width*height)
	}

	return img, nil
}

func validateDims(width, height int) error {
	if width <= 0 || height <= 0 || width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("%dx%d: %w", width, height, ErrInvalidDimensions)
	}

	return nil
}

// Validate checks dimensions and plane lengths.
func (img *Image) Validate() error {
	if img == nil {
		return fmt.Errorf("Image.Validate: nil image: %w", ErrInvalidDimensions)
	}
	if err := validateDims(img.Width, img.Height); err != nil {
		return fmt.Errorf("Image.Validate: %w", err)
	}
	for c, p := range img.Planes {
		if len(p) != img.Width*img.Height {
			return fmt.Errorf("Image.Validate: plane %d has %d samples, want %d: %w",
				c, len(p), img.Width*img.Height, ErrShape)
		}
	}

	return nil
}

// Clone returns a deep copy.
func (img *Image) Clone() *Image {
	out := &Image{Width: img.Width, Height: img.Height}
	for c, p := range img.Planes {
		out.Planes[c] = append([]float64(nil), p...)
	}

	return out
}

// Plane returns a copy of channel c as a Height×Width matrix.
func (img *Image) Plane(c int) (*matrix.Dense, error) {
	if c < 0 || c >= Channels {
		return nil, fmt.Errorf("Plane(%d): %w", c, ErrChannel)
	}
	m, err := matrix.NewDenseFrom(img.Height, img.Width, img.Planes[c])
	if err != nil {
		return nil, fmt.Errorf("Plane(%d): %w", c, err)
	}

	return m, nil
}

// SetPlane overwrites channel c with a Height×Width matrix.
func (img *Image) SetPlane(c int, m *matrix.Dense) error {
	if c < 0 || c >= Channels {
		return fmt.Errorf("SetPlane(%d): %w", c, ErrChannel)
	}
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("SetPlane(%d): %w", c, err)
	}
	if m.Rows() != img.Height || m.Cols() != img.Width {
		return fmt.Errorf("SetPlane(%d): %dx%d matrix for %dx%d image: %w",
			c, m.Rows(), m.Cols(), img.Width, img.Height, ErrShape)
	}
	img.Planes[c] = m.Values()

	return nil
}

// FromImage converts a decoded image.Image into planar RGB in [0, 1].
// Alpha is dropped after un-premultiplying.
func FromImage(src image.Image) (*Image, error) {
	b := src.Bounds()
	img, err := New(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := color.NRGBA64Model.Convert(src.At(x, y)).(color.NRGBA64)
			img.Planes[0][i] = float64(px.R) / 0xffff
			img.Planes[1][i] = float64(px.G) / 0xffff
			img.Planes[2][i] = float64(px.B) / 0xffff
			i++
		}
	}

	return img, nil
}

// ToNRGBA renders the planes as an opaque 8-bit image, clamping to [0, 1].
func (img *Image) ToNRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for i := 0; i < img.Width*img.Height; i++ {
		out.Pix[4*i+0] = To8(img.Planes[0][i])
		out.Pix[4*i+1] = To8(img.Planes[1][i])
		out.Pix[4*i+2] = To8(img.Planes[2][i])
		out.Pix[4*i+3] = 0xff
	}

	return out
}

// To8 maps v in [0, 1] to an 8-bit sample, rounding to nearest and clamping.
func To8(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 1:
		return 0xff
	}

	return uint8(math.Round(v * 0xff))
}
