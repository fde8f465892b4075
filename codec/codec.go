// SPDX-License-Identifier: MIT

package codec

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/svdimg/bitstream"
	"github.com/katalvlaran/svdimg/factor"
	"github.com/katalvlaran/svdimg/quant"
	"github.com/katalvlaran/svdimg/raster"
	"github.com/katalvlaran/svdimg/reconstruct"
	"github.com/katalvlaran/svdimg/svd"
	"github.com/katalvlaran/svdimg/vli"
	"golang.org/x/sync/errgroup"
)

// Encode compresses img, whose planes are already in luma-chroma form.
// MAIN DESCRIPTION:
//   - Writes the header, factorizes and quantizes every channel, then writes
//     the factors rank-interleaved and closes the stream.
//
// Implementation:
//   - Stage 1: validate img and options; write the header.
//   - Stage 2: per channel (errgroup, WithConcurrency workers): copy the plane,
//     subtract LumaOffset on channel 0, svd.Decompose, factor.Quantize.
//   - Stage 3: with rate control, keep only the rank groups that fit.
//   - Stage 4: WriteRankGroups, Close.
//
// img is only read.
//
// Errors:
//   - ErrInvalidArgument (bad image or exponents), bitstream.ErrCapacityExceeded,
//     svd.ErrDecomposition, quant.ErrOverflow.
func Encode(img *raster.Image, opts ...Option) ([]byte, Stats, error) {
	o := gatherOptions(opts...)
	log := o.logger

	if err := img.Validate(); err != nil {
		return nil, Stats{}, fmt.Errorf("%s: %w: %w", opEncode, ErrInvalidArgument, err)
	}
	h := Header{Width: img.Width, Height: img.Height, Quant: o.quant}
	if err := h.Validate(); err != nil {
		return nil, Stats{}, codecErrorf(opEncode, err)
	}
	m, n, k := h.Dims()

	w, err := bitstream.NewWriter(o.capacity)
	if err != nil {
		return nil, Stats{}, invalidf(opEncode, "capacity %d", o.capacity)
	}
	enc := vli.NewEncoder(w)
	if err = WriteHeader(enc, h); err != nil {
		return nil, Stats{}, codecErrorf(opEncode, err)
	}
	headerBits := w.BitCount()
	log.Debug("header written", "width", h.Width, "height", h.Height, "quant", h.Quant[:], "bits", headerBits)

	zs, err := factorize(img, h, o)
	if err != nil {
		return nil, Stats{}, codecErrorf(opEncode, err)
	}

	ranks := k
	if o.rateControl && o.bounded() {
		groupBits, err := RankGroupBits(zs)
		if err != nil {
			return nil, Stats{}, codecErrorf(opEncode, err)
		}
		ranks = FitRankGroups(groupBits, w.Remaining())
		if ranks < k {
			log.Debug("rate control", "ranks", ranks, "of", k, "capacity", o.capacity)
		}
	}
	if err = WriteRankGroups(enc, zs, ranks); err != nil {
		return nil, Stats{}, codecErrorf(opEncode, err)
	}
	totalBits := w.BitCount()
	if err = w.Close(); err != nil {
		return nil, Stats{}, codecErrorf(opEncode, err)
	}

	st := newStats(headerBits, totalBits, ranks, k)
	log.Debug("encoded", "m", m, "n", n, "bits", st.TotalBits, "bytes", st.Bytes, "kib", st.KiB, "ranks", st.Ranks)

	return w.Bytes(), st, nil
}

// factorize decomposes and quantizes every channel of img concurrently.
func factorize(img *raster.Image, h Header, o Options) ([]*factor.Quantized, error) {
	zs := make([]*factor.Quantized, quant.Channels)
	var g errgroup.Group
	g.SetLimit(o.concurrency)
	for c := range zs {
		g.Go(func() error {
			a, err := img.Plane(c)
			if err != nil {
				return fmt.Errorf("channel %d: %w: %w", c, ErrInvalidArgument, err)
			}
			if c == 0 {
				if err = a.Apply(func(_, _ int, v float64) float64 { return v - LumaOffset }); err != nil {
					return err
				}
			}
			t, err := svd.Decompose(a)
			if err != nil {
				return fmt.Errorf("channel %d: %w", c, err)
			}
			z, err := factor.Quantize(t, h.Quant[c])
			if err != nil {
				return fmt.Errorf("channel %d: %w: %w", c, ErrInvalidArgument, err)
			}
			if len(t.S) > 0 {
				o.logger.Debug("channel factorized", "channel", c, "s0", t.S[0], "sk", t.S[len(t.S)-1], "q", h.Quant[c])
			}
			zs[c] = z

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return zs, nil
}

// Decode reconstructs an image from data; planes come back in luma-chroma form.
// MAIN DESCRIPTION:
//   - Reads the header and the rank-interleaved factors, then dequantizes and
//     reconstructs every channel and adds LumaOffset back to channel 0.
//
// Implementation:
//   - Stage 1: ReadHeader; reject streams too short to hold the requested
//     rank groups before allocating factors (strict mode only).
//   - Stage 2: ReadRankGroups up to WithMaxRank groups.
//   - Stage 3: per channel (errgroup): factor.Dequantize, reconstruct.Reconstruct.
//
// Errors:
//   - ErrInvalidArgument (header fields), ErrCorruptStream joined with
//     vli.ErrCorruptStream and, for short input, bitstream.ErrEndOfStream.
//     With WithProgressive an early end keeps the complete rank groups.
func Decode(data []byte, opts ...Option) (*raster.Image, error) {
	o := gatherOptions(opts...)
	log := o.logger

	r := bitstream.NewReader(data)
	defer r.Close()
	dec := vli.NewDecoder(r)

	h, err := ReadHeader(dec)
	if err != nil {
		return nil, codecErrorf(opDecode, err)
	}
	m, n, k := h.Dims()
	log.Debug("header read", "width", h.Width, "height", h.Height, "quant", h.Quant[:], "bits", r.BitCount())

	want := k
	if o.maxRank > 0 && o.maxRank < k {
		want = o.maxRank
	}
	if need := want * MinRankGroupBits(m, n); !o.progressive && r.Remaining() < need {
		return nil, corruptf(opDecode, fmt.Errorf("%d bits left, %d rank groups need at least %d: %w",
			r.Remaining(), want, need, bitstream.ErrEndOfStream))
	}

	zs, ranks, err := ReadRankGroups(dec, m, n, want)
	if err != nil {
		if !o.progressive || !errors.Is(err, bitstream.ErrEndOfStream) {
			return nil, codecErrorf(opDecode, err)
		}
		log.Debug("stream ended early", "ranks", ranks, "of", want)
		for _, z := range zs {
			z.Truncate(ranks)
		}
	}

	img, err := raster.New(h.Width, h.Height)
	if err != nil {
		return nil, invalidf(opDecode, "%v", err)
	}
	if err = rebuild(img, zs, h, o); err != nil {
		return nil, codecErrorf(opDecode, err)
	}
	log.Debug("decoded", "m", m, "n", n, "ranks", ranks, "bits", r.BitCount())

	return img, nil
}

// rebuild dequantizes and reconstructs every channel of zs into img concurrently.
func rebuild(img *raster.Image, zs []*factor.Quantized, h Header, o Options) error {
	var g errgroup.Group
	g.SetLimit(o.concurrency)
	for c, z := range zs {
		g.Go(func() error {
			t, err := factor.Dequantize(z, h.Quant[c])
			if err != nil {
				return fmt.Errorf("channel %d: %w", c, err)
			}
			a, err := reconstruct.Reconstruct(t)
			if err != nil {
				return fmt.Errorf("channel %d: %w", c, err)
			}
			if c == 0 {
				if err = a.Apply(func(_, _ int, v float64) float64 { return v + LumaOffset }); err != nil {
					return fmt.Errorf("channel %d: %w", c, err)
				}
			}

			return img.SetPlane(c, a)
		})
	}

	return g.Wait()
}
