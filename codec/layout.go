// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"

	"github.com/katalvlaran/svdimg/factor"
	"github.com/katalvlaran/svdimg/quant"
	"github.com/katalvlaran/svdimg/vli"
)

// Layout names a factor-data layout.
type Layout int

const (
	// LayoutRankInterleaved writes, for k = 0..K-1 and channel c = 0..2:
	// VLI(S[k]), then column k of U top to bottom, then row k of Vᵀ left
	// to right (signed codes). Any prefix that ends on a rank-group boundary
	// is a valid low-rank approximation.
	LayoutRankInterleaved Layout = iota
)

// StreamLayout is the layout this package writes and reads.
const StreamLayout = LayoutRankInterleaved

// String names the layout.
func (l Layout) String() string {
	if l == LayoutRankInterleaved {
		return "rank-interleaved"
	}

	return fmt.Sprintf("Layout(%d)", int(l))
}

// checkFactors verifies three channel factorizations of one common shape.
func checkFactors(op string, zs []*factor.Quantized) (m, n, k int, err error) {
	if len(zs) != quant.Channels {
		return 0, 0, 0, invalidf(op, "%d channels, want %d", len(zs), quant.Channels)
	}
	for c, z := range zs {
		if z == nil || z.U == nil || z.VT == nil {
			return 0, 0, 0, invalidf(op, "channel %d: nil factors", c)
		}
		zm, zn, zk := z.Dims()
		if c == 0 {
			m, n, k = zm, zn, zk
		}
		if zm != m || zn != n || zk != k || k != factor.Rank(m, n) ||
			z.U.Cols() != k || z.VT.Rows() != k {
			return 0, 0, 0, invalidf(op, "channel %d: factor shapes disagree", c)
		}
	}

	return m, n, k, nil
}

// WriteFactors serializes every rank group of zs.
func WriteFactors(enc *vli.Encoder, zs []*factor.Quantized) error {
	_, _, k, err := checkFactors(opWrite, zs)
	if err != nil {
		return err
	}

	return WriteRankGroups(enc, zs, k)
}

// WriteRankGroups serializes the first ranks rank groups of zs.
// Errors from the stream (capacity exceeded) abort immediately.
func WriteRankGroups(enc *vli.Encoder, zs []*factor.Quantized, ranks int) error {
	m, n, k, err := checkFactors(opWrite, zs)
	if err != nil {
		return err
	}
	if ranks < 0 || ranks > k {
		return invalidf(opWrite, "ranks %d outside 0..%d", ranks, k)
	}
	var v int64
	for r := 0; r < ranks; r++ {
		for c, z := range zs {
			if err = enc.Encode(z.S[r]); err != nil {
				return codecErrorf(opWrite, fmt.Errorf("rank %d channel %d S: %w", r, c, err))
			}
			for i := 0; i < m; i++ {
				if v, err = z.U.At(i, r); err == nil {
					err = enc.EncodeSigned(v)
				}
				if err != nil {
					return codecErrorf(opWrite, fmt.Errorf("rank %d channel %d U[%d]: %w", r, c, i, err))
				}
			}
			for j := 0; j < n; j++ {
				if v, err = z.VT.At(r, j); err == nil {
					err = enc.EncodeSigned(v)
				}
				if err != nil {
					return codecErrorf(opWrite, fmt.Errorf("rank %d channel %d VT[%d]: %w", r, c, j, err))
				}
			}
		}
	}

	return nil
}

// RankGroupBits returns the exact encoded size of every rank group of zs.
func RankGroupBits(zs []*factor.Quantized) ([]int, error) {
	m, n, k, err := checkFactors("RankGroupBits", zs)
	if err != nil {
		return nil, err
	}
	out := make([]int, k)
	var v int64
	for r := 0; r < k; r++ {
		for _, z := range zs {
			out[r] += vli.Len(z.S[r])
			for i := 0; i < m; i++ {
				v, _ = z.U.At(i, r)
				out[r] += vli.SignedLen(v)
			}
			for j := 0; j < n; j++ {
				v, _ = z.VT.At(r, j)
				out[r] += vli.SignedLen(v)
			}
		}
	}

	return out, nil
}

// FitRankGroups returns how many leading rank groups fit into budget bits.
// A negative budget means unbounded.
func FitRankGroups(groupBits []int, budget int) int {
	if budget < 0 {
		return len(groupBits)
	}
	used := 0
	for r, b := range groupBits {
		if used+b > budget {
			return r
		}
		used += b
	}

	return len(groupBits)
}

// MinRankGroupBits is the smallest possible size of one rank group of an
// m×n image: every one of its 3·(1+m+n) codes costs at least one bit.
func MinRankGroupBits(m, n int) int {
	return quant.Channels * (1 + m + n)
}

// ReadFactors reads all rank groups of an m×n image.
// It returns the factors, the number of complete rank groups and the first
// error. On error the factors hold everything read so far.
func ReadFactors(dec *vli.Decoder, m, n int) ([]*factor.Quantized, int, error) {
	return ReadRankGroups(dec, m, n, factor.Rank(m, n))
}

// ReadRankGroups reads the first ranks rank groups of an m×n image and
// leaves the remaining ranks zero. Stream failures are reported as
// ErrCorruptStream joined with their cause.
func ReadRankGroups(dec *vli.Decoder, m, n, ranks int) ([]*factor.Quantized, int, error) {
	zs := make([]*factor.Quantized, quant.Channels)
	for c := range zs {
		z, err := factor.NewQuantized(m, n)
		if err != nil {
			return nil, 0, invalidf(opRead, "shape %dx%d", m, n)
		}
		zs[c] = z
	}
	if k := factor.Rank(m, n); ranks < 0 || ranks > k {
		return nil, 0, invalidf(opRead, "ranks %d outside 0..%d", ranks, k)
	}
	var (
		v   int64
		err error
	)
	for r := 0; r < ranks; r++ {
		for c, z := range zs {
			if v, err = dec.Decode(); err != nil {
				return zs, r, corruptf(opRead, fmt.Errorf("rank %d channel %d S: %w", r, c, err))
			}
			z.S[r] = v
			for i := 0; i < m; i++ {
				if v, err = dec.DecodeSigned(); err != nil {
					return zs, r, corruptf(opRead, fmt.Errorf("rank %d channel %d U[%d]: %w", r, c, i, err))
				}
				_ = z.U.Set(i, r, v)
			}
			for j := 0; j < n; j++ {
				if v, err = dec.DecodeSigned(); err != nil {
					return zs, r, corruptf(opRead, fmt.Errorf("rank %d channel %d VT[%d]: %w", r, c, j, err))
				}
				_ = z.VT.Set(r, j, v)
			}
		}
	}

	return zs, ranks, nil
}
