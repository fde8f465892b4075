// SPDX-License-Identifier: MIT
package codec_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/svdimg/raster"
	"github.com/stretchr/testify/require"
)

// smoothImage builds a w×h luma-chroma image: luma in [0, 1], chroma in [-0.5, 0.5].
func smoothImage(t testing.TB, w, h int) *raster.Image {
	t.Helper()
	img, err := raster.New(w, h)
	require.NoError(t, err)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fx, fy := float64(x)/float64(w), float64(y)/float64(h)
			i := y*w + x
			img.Planes[0][i] = 0.5 + 0.3*math.Sin(3*fx+1)*math.Cos(2*fy) + 0.1*fx*fy
			img.Planes[1][i] = 0.2*fx - 0.1
			img.Planes[2][i] = 0.15*math.Cos(5*fy)*fx
		}
	}

	return img
}

// maxAbsDiff returns the largest per-sample difference of channel c.
func maxAbsDiff(t *testing.T, a, b *raster.Image, c int) float64 {
	t.Helper()
	require.Equal(t, len(a.Planes[c]), len(b.Planes[c]))
	var d float64
	for i, v := range a.Planes[c] {
		d = math.Max(d, math.Abs(v-b.Planes[c][i]))
	}

	return d
}
