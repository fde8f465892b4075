// SPDX-License-Identifier: MIT

package raster

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

const (
	magicRaw   = "P6"
	magicPlain = "P3"
	maxval8    = 255
	maxval16   = 65535
)

// DecodePPM reads a P6 or P3 portable pixmap into planar RGB in [0, 1].
// Maxval may be 1..65535; samples above 255 use two big-endian bytes (P6).
func DecodePPM(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)
	magic, err := token(br)
	if err != nil {
		return nil, err
	}
	if magic != magicRaw && magic != magicPlain {
		return nil, fmt.Errorf("DecodePPM: magic %q: %w", magic, ErrMalformed)
	}
	var hdr [3]int // width, height, maxval
	for i := range hdr {
		tok, err := token(br)
		if err != nil {
			return nil, err
		}
		if hdr[i], err = strconv.Atoi(tok); err != nil {
			return nil, fmt.Errorf("DecodePPM: header field %q: %w", tok, ErrMalformed)
		}
	}
	width, height, maxval := hdr[0], hdr[1], hdr[2]
	if maxval <= 0 || maxval > maxval16 {
		return nil, fmt.Errorf("DecodePPM: maxval %d: %w", maxval, ErrMalformed)
	}
	img, err := New(width, height)
	if err != nil {
		return nil, fmt.Errorf("DecodePPM: %w", err)
	}

	n := width * height
	for i := 0; i < n; i++ {
		for c := 0; c < Channels; c++ {
			var v int
			if magic == magicRaw {
				v, err = rawSample(br, maxval)
			} else {
				v, err = plainSample(br)
			}
			if err != nil {
				return nil, fmt.Errorf("DecodePPM: pixel %d: %w", i, err)
			}
			if v > maxval {
				return nil, fmt.Errorf("DecodePPM: sample %d > maxval %d: %w", v, maxval, ErrMalformed)
			}
			img.Planes[c][i] = float64(v) / float64(maxval)
		}
	}

	return img, nil
}

// token returns the next whitespace-delimited header token, skipping '#' comments.
// The single whitespace byte that terminates the token is consumed.
func token(br *bufio.Reader) (string, error) {
	var buf []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			if len(buf) > 0 && err == io.EOF {
				return string(buf), nil
			}
			return "", fmt.Errorf("header: %w", ErrMalformed)
		}
		switch {
		case b == '#' && len(buf) == 0:
			if _, err = br.ReadString('\n'); err != nil {
				return "", fmt.Errorf("header comment: %w", ErrMalformed)
			}
		case isSpace(b):
			if len(buf) > 0 {
				return string(buf), nil
			}
		default:
			buf = append(buf, b)
		}
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

func rawSample(br *bufio.Reader, maxval int) (int, error) {
	hi, err := br.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("short pixel data: %w", ErrMalformed)
	}
	if maxval <= maxval8 {
		return int(hi), nil
	}
	lo, err := br.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("short pixel data: %w", ErrMalformed)
	}

	return int(hi)<<8 | int(lo), nil
}

func plainSample(br *bufio.Reader) (int, error) {
	tok, err := token(br)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("sample %q: %w", tok, ErrMalformed)
	}

	return v, nil
}

// EncodePPM writes img as an 8-bit P6 pixmap, clamping samples to [0, 1].
func EncodePPM(w io.Writer, img *Image) error {
	if err := img.Validate(); err != nil {
		return fmt.Errorf("EncodePPM: %w", err)
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n%d\n", magicRaw, img.Width, img.Height, maxval8); err != nil {
		return fmt.Errorf("EncodePPM: %w", err)
	}
	for i := 0; i < img.Width*img.Height; i++ {
		for c := 0; c < Channels; c++ {
			if err := bw.WriteByte(To8(img.Planes[c][i])); err != nil {
				return fmt.Errorf("EncodePPM: %w", err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("EncodePPM: %w", err)
	}

	return nil
}
