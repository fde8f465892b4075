// SPDX-License-Identifier: MIT

package raster

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/jpegn"
)

// Format identifies a pixel container.
type Format int

const (
	FormatPPM Format = iota
	FormatPNG
	FormatJPEG
)

// String returns the canonical extension without the dot.
func (f Format) String() string {
	switch f {
	case FormatPPM:
		return "ppm"
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	}

	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatOf picks the container from a path's extension (case-insensitive).
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm", ".pnm":
		return FormatPPM, nil
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	}

	return 0, fmt.Errorf("%q: %w", path, ErrUnsupportedFormat)
}

// Decode reads an image in format f.
func Decode(r io.Reader, f Format) (*Image, error) {
	switch f {
	case FormatPPM:
		return DecodePPM(r)
	case FormatPNG:
		src, err := png.Decode(r)
		if err != nil {
			return nil, fmt.Errorf("Decode png: %w: %w", ErrMalformed, err)
		}
		return FromImage(src)
	case FormatJPEG:
		src, err := jpegn.Decode(r, &jpegn.Options{ToRGBA: true, UpsampleMethod: jpegn.CatmullRom, AutoRotate: true})
		if err != nil {
			return nil, fmt.Errorf("Decode jpeg: %w: %w", ErrMalformed, err)
		}
		return FromImage(src)
	}

	return nil, fmt.Errorf("Decode %v: %w", f, ErrUnsupportedFormat)
}

// Encode writes img in format f. JPEG is read-only.
func Encode(w io.Writer, img *Image, f Format) error {
	switch f {
	case FormatPPM:
		return EncodePPM(w, img)
	case FormatPNG:
		if err := img.Validate(); err != nil {
			return fmt.Errorf("Encode png: %w", err)
		}
		if err := png.Encode(w, img.ToNRGBA()); err != nil {
			return fmt.Errorf("Encode png: %w", err)
		}
		return nil
	}

	return fmt.Errorf("Encode %v: %w", f, ErrUnsupportedFormat)
}

// Load reads the image at path, choosing the container by extension.
func Load(path string) (*Image, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	img, err := Decode(fh, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return img, nil
}

// Store writes img to path, choosing the container by extension.
// The file appears under path only once it has been written completely.
func Store(path string, img *Image) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}

	return WriteFileAtomic(path, func(w io.Writer) error { return Encode(w, img, f) })
}

// WriteFileAtomic streams write into a temporary file next to path and
// renames it over path on success. On any failure the temporary is removed.
func WriteFileAtomic(path string, write func(io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	if err = write(tmp); err != nil {
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
