// SPDX-License-Identifier: MIT

// Command svddec reconstructs an image from an SVD stream.
//
// Usage:
//
//	svddec [flags] input.svd output.(ppm|png)
//	svddec -info input.svd
//
// By default a stream that ends early is an error. -progressive keeps every
// complete rank group read before the end (streams cut by svdenc
// -rate-control need it); -max-rank r reconstructs only the r strongest ranks.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/svdimg/codec"
	"github.com/katalvlaran/svdimg/colorspace"
	"github.com/katalvlaran/svdimg/raster"
)

const name = "svddec"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "%s: %s: %v\n", name, codec.Kind(err), err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	progressive := fs.Bool("progressive", false, "accept a stream that ends early and keep its complete rank groups")
	maxRank := fs.Int("max-rank", 0, "reconstruct only the first r rank groups (0 = all)")
	info := fs.Bool("info", false, "print the stream header and exit")
	jobs := fs.Int("j", codec.DefaultConcurrency, "channels reconstructed concurrently")
	verbose := fs.Bool("v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s [flags] input.svd output.(ppm|png)\n", name)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	pos := fs.Args()
	want := 2
	if *info {
		want = 1
	}
	if len(pos) != want {
		fs.Usage()
		return fmt.Errorf("want %d argument(s), got %d: %w", want, len(pos), codec.ErrInvalidArgument)
	}
	if *maxRank < 0 || *jobs < 1 {
		return fmt.Errorf("-max-rank %d, -j %d: %w", *maxRank, *jobs, codec.ErrInvalidArgument)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	data, err := os.ReadFile(pos[0])
	if err != nil {
		return err
	}
	if *info {
		h, err := codec.PeekHeader(data)
		if err != nil {
			return err
		}
		m, n, k := h.Dims()
		fmt.Fprintf(stdout, "%dx%d quant=%d,%d,%d layout=%v rank=%d (%dx%d) bytes=%d\n",
			h.Width, h.Height, h.Quant[0], h.Quant[1], h.Quant[2], codec.StreamLayout, k, m, n, len(data))
		return nil
	}

	opts := []codec.Option{
		codec.WithMaxRank(*maxRank),
		codec.WithConcurrency(*jobs),
		codec.WithLogger(log),
	}
	if *progressive {
		opts = append(opts, codec.WithProgressive())
	}
	ycc, err := codec.Decode(data, opts...)
	if err != nil {
		return err
	}
	img, err := colorspace.ToRGB(ycc)
	if err != nil {
		return err
	}
	if err = raster.Store(pos[1], img); err != nil {
		return err
	}
	log.Debug("stored", "path", pos[1], "width", img.Width, "height", img.Height)

	return nil
}
