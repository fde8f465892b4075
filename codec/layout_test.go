// SPDX-License-Identifier: MIT
package codec_test

import (
	"testing"

	"github.com/katalvlaran/svdimg/bitstream"
	"github.com/katalvlaran/svdimg/codec"
	"github.com/katalvlaran/svdimg/factor"
	"github.com/katalvlaran/svdimg/quant"
	"github.com/katalvlaran/svdimg/vli"
	"github.com/stretchr/testify/require"
)

// filledFactors returns three m×n factorizations with distinct small coefficients.
func filledFactors(t *testing.T, m, n int) []*factor.Quantized {
	t.Helper()
	zs := make([]*factor.Quantized, quant.Channels)
	for c := range zs {
		z, err := factor.NewQuantized(m, n)
		require.NoError(t, err)
		_, _, k := z.Dims()
		for r := 0; r < k; r++ {
			z.S[r] = int64(100*(k-r) + c)
			for i := 0; i < m; i++ {
				require.NoError(t, z.U.Set(i, r, int64((i+r+c)%7-3)))
			}
			for j := 0; j < n; j++ {
				require.NoError(t, z.VT.Set(r, j, int64((j*r+c)%5-2)))
			}
		}
		zs[c] = z
	}

	return zs
}

// TestRankGroupBits matches the predicted cost of every group with the bits written.
func TestRankGroupBits(t *testing.T) {
	zs := filledFactors(t, 4, 6)
	groups, err := codec.RankGroupBits(zs)
	require.NoError(t, err)
	require.Len(t, groups, 4)

	total := 0
	for r, g := range groups {
		require.GreaterOrEqual(t, g, codec.MinRankGroupBits(4, 6), "group %d", r)
		total += g

		// Writing the first r+1 groups costs exactly the predicted prefix sum.
		w, err := bitstream.NewWriter(bitstream.NoLimit)
		require.NoError(t, err)
		require.NoError(t, codec.WriteRankGroups(vli.NewEncoder(w), zs, r+1))
		require.Equal(t, total, w.BitCount(), "groups 0..%d", r)
	}
	w2, err := bitstream.NewWriter(bitstream.NoLimit)
	require.NoError(t, err)
	require.NoError(t, codec.WriteFactors(vli.NewEncoder(w2), zs))
	require.Equal(t, total, w2.BitCount())

	require.Equal(t, 0, codec.FitRankGroups(groups, groups[0]-1))
	require.Equal(t, 1, codec.FitRankGroups(groups, groups[0]))
	require.Equal(t, 2, codec.FitRankGroups(groups, groups[0]+groups[1]))
	require.Equal(t, len(groups), codec.FitRankGroups(groups, -1))
	require.Equal(t, len(groups), codec.FitRankGroups(groups, total))
}

// TestFactorsRoundTrip writes and reads factors of both orientations.
func TestFactorsRoundTrip(t *testing.T) {
	for _, shape := range [][2]int{{4, 6}, {6, 4}, {1, 1}} {
		m, n := shape[0], shape[1]
		zs := filledFactors(t, m, n)
		w, err := bitstream.NewWriter(bitstream.NoLimit)
		require.NoError(t, err)
		require.NoError(t, codec.WriteFactors(vli.NewEncoder(w), zs))
		require.NoError(t, w.Close())

		back, ranks, err := codec.ReadFactors(vli.NewDecoder(bitstream.NewReader(w.Bytes())), m, n)
		require.NoError(t, err)
		require.Equal(t, factor.Rank(m, n), ranks)
		for c := range zs {
			require.True(t, zs[c].Equal(back[c]), "shape %v channel %d", shape, c)
		}
	}
}

// TestReadRankGroups_Prefix reads fewer groups than present and leaves the rest zero.
func TestReadRankGroups_Prefix(t *testing.T) {
	zs := filledFactors(t, 5, 3)
	w, err := bitstream.NewWriter(bitstream.NoLimit)
	require.NoError(t, err)
	require.NoError(t, codec.WriteFactors(vli.NewEncoder(w), zs))
	require.NoError(t, w.Close())

	back, ranks, err := codec.ReadRankGroups(vli.NewDecoder(bitstream.NewReader(w.Bytes())), 5, 3, 2)
	require.NoError(t, err)
	require.Equal(t, 2, ranks)
	for c := range zs {
		zs[c].Truncate(2)
		require.True(t, zs[c].Equal(back[c]), "channel %d", c)
	}

	_, _, err = codec.ReadRankGroups(vli.NewDecoder(bitstream.NewReader(w.Bytes())), 5, 3, 4)
	require.ErrorIs(t, err, codec.ErrInvalidArgument)
}

// TestWriteFactors_Invalid rejects channel counts and shapes that disagree.
func TestWriteFactors_Invalid(t *testing.T) {
	w, err := bitstream.NewWriter(bitstream.NoLimit)
	require.NoError(t, err)
	enc := vli.NewEncoder(w)

	zs := filledFactors(t, 3, 3)
	require.ErrorIs(t, codec.WriteFactors(enc, zs[:2]), codec.ErrInvalidArgument)

	other, err := factor.NewQuantized(3, 4)
	require.NoError(t, err)
	zs[1] = other
	require.ErrorIs(t, codec.WriteFactors(enc, zs), codec.ErrInvalidArgument)

	zs[1] = nil
	require.ErrorIs(t, codec.WriteFactors(enc, zs), codec.ErrInvalidArgument)
	require.Zero(t, w.BitCount())
	require.Equal(t, "rank-interleaved", codec.StreamLayout.String())
}
