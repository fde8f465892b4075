// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/svdimg/codec"
	"github.com/katalvlaran/svdimg/colorspace"
	"github.com/katalvlaran/svdimg/raster"
	"github.com/stretchr/testify/require"
)

// writeStream encodes a small RGB gradient and stores it as an .svd file.
func writeStream(t *testing.T, dir string, opts ...codec.Option) (string, *raster.Image) {
	t.Helper()
	img, err := raster.New(10, 6)
	require.NoError(t, err)
	for y := 0; y < 6; y++ {
		for x := 0; x < 10; x++ {
			i := y*10 + x
			img.Planes[0][i] = float64(x) / 9
			img.Planes[1][i] = float64(y) / 5
			img.Planes[2][i] = 0.5
		}
	}
	ycc, err := colorspace.ToYCbCr(img)
	require.NoError(t, err)
	data, _, err := codec.Encode(ycc, opts...)
	require.NoError(t, err)
	path := filepath.Join(dir, "in.svd")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	return path, img
}

func TestRun_Decode(t *testing.T) {
	dir := t.TempDir()
	in, img := writeStream(t, dir)
	for _, name := range []string{"out.ppm", "out.png"} {
		out := filepath.Join(dir, name)
		require.NoError(t, run([]string{in, out}, new(bytes.Buffer), new(bytes.Buffer)))
		back, err := raster.Load(out)
		require.NoError(t, err)
		for c := range img.Planes {
			for i, v := range img.Planes[c] {
				require.InDelta(t, v, back.Planes[c][i], 4.0/255, "%s channel %d sample %d", name, c, i)
			}
		}
	}
}

func TestRun_Info(t *testing.T) {
	dir := t.TempDir()
	in, _ := writeStream(t, dir)
	var stdout bytes.Buffer
	require.NoError(t, run([]string{"-info", in}, &stdout, new(bytes.Buffer)))
	require.Contains(t, stdout.String(), "10x6 quant=12,10,10 layout=rank-interleaved rank=6 (6x10)")
}

func TestRun_Progressive(t *testing.T) {
	dir := t.TempDir()
	in, _ := writeStream(t, dir, codec.WithCapacity(400), codec.WithRateControl())
	out := filepath.Join(dir, "out.ppm")

	err := run([]string{in, out}, new(bytes.Buffer), new(bytes.Buffer))
	require.ErrorIs(t, err, codec.ErrCorruptStream)
	_, statErr := os.Stat(out)
	require.True(t, os.IsNotExist(statErr))

	require.NoError(t, run([]string{"-progressive", in, out}, new(bytes.Buffer), new(bytes.Buffer)))
	require.NoError(t, run([]string{"-progressive", "-max-rank", "1", in, out}, new(bytes.Buffer), new(bytes.Buffer)))
}

func TestRun_Invalid(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"a.svd"},
		{"-info", "a.svd", "b.ppm"},
		{"-max-rank", "-1", "a.svd", "b.ppm"},
		{"-j", "0", "a.svd", "b.ppm"},
	} {
		err := run(args, new(bytes.Buffer), new(bytes.Buffer))
		require.ErrorIs(t, err, codec.ErrInvalidArgument, "%v", args)
	}
}
