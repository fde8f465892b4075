// SPDX-License-Identifier: MIT

// Command svdenc compresses an image into an SVD stream.
//
// Usage:
//
//	svdenc [flags] input.(ppm|png|jpg) output.svd
//	svdenc input.ppm output.svd [Q0 Q1 Q2] [CAPACITY]
//
// The input is converted to Y/Cb/Cr, factorized per channel and written with
// the per-channel quantization exponents (-q, default 12,10,10) under a bound
// of -capacity payload bits (default 8388608, 0 = unbounded). A stream that
// does not fit fails unless -rate-control is given, in which case trailing
// rank groups are dropped and the result must be decoded with svddec -progressive.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/svdimg/codec"
	"github.com/katalvlaran/svdimg/colorspace"
	"github.com/katalvlaran/svdimg/quant"
	"github.com/katalvlaran/svdimg/raster"
)

const name = "svdenc"

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "%s: %s: %v\n", name, codec.Kind(err), err)
		}
		os.Exit(1)
	}
}

// config is the parsed command line.
type config struct {
	in, out     string
	quant       quant.Params
	capacity    int
	rateControl bool
	jobs        int
	verbose     bool
}

func run(args []string, stderr io.Writer) error {
	cfg, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}
	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	img, err := raster.Load(cfg.in)
	if err != nil {
		return fmt.Errorf("%w: %w", codec.ErrInvalidArgument, err)
	}
	ycc, err := colorspace.ToYCbCr(img)
	if err != nil {
		return err
	}
	opts := []codec.Option{
		codec.WithQuant(cfg.quant),
		codec.WithCapacity(cfg.capacity),
		codec.WithConcurrency(cfg.jobs),
		codec.WithLogger(log),
	}
	if cfg.rateControl {
		opts = append(opts, codec.WithRateControl())
	}
	data, st, err := codec.Encode(ycc, opts...)
	if err != nil {
		return err
	}
	err = raster.WriteFileAtomic(cfg.out, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
	if err != nil {
		return err
	}

	log.Info(fmt.Sprintf("%d bits for meta data", st.HeaderBits))
	log.Info(fmt.Sprintf("%d bits (%d KiB) encoded", st.TotalBits, st.KiB), "ranks", st.Ranks, "of", st.MaxRanks)
	if st.Truncated() {
		log.Warn("rate control dropped trailing rank groups; decode with -progressive")
	}

	return nil
}

// parseArgs reads flags and the positional form in out [Q0 Q1 Q2] [CAPACITY].
func parseArgs(args []string, stderr io.Writer) (config, error) {
	cfg := config{quant: codec.DefaultQuant}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	q := fs.String("q", formatQuant(codec.DefaultQuant), "per-channel quantization exponents Q0,Q1,Q2 (0..30)")
	fs.IntVar(&cfg.capacity, "capacity", codec.DefaultCapacity, "payload bound in bits (0 = unbounded)")
	fs.BoolVar(&cfg.rateControl, "rate-control", false, "drop trailing rank groups instead of failing when over capacity")
	fs.IntVar(&cfg.jobs, "j", codec.DefaultConcurrency, "channels factorized concurrently")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s [flags] input.(ppm|png|jpg) output.svd [Q0 Q1 Q2] [CAPACITY]\n", name)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	var err error
	if cfg.quant, err = parseQuant(strings.Split(*q, ",")); err != nil {
		return cfg, err
	}
	pos := fs.Args()
	switch len(pos) {
	case 2, 5, 6:
	default:
		fs.Usage()
		return cfg, fmt.Errorf("want 2, 5 or 6 arguments, got %d: %w", len(pos), codec.ErrInvalidArgument)
	}
	cfg.in, cfg.out = pos[0], pos[1]
	if len(pos) >= 5 {
		if cfg.quant, err = parseQuant(pos[2:5]); err != nil {
			return cfg, err
		}
	}
	if len(pos) == 6 {
		if cfg.capacity, err = strconv.Atoi(pos[5]); err != nil {
			return cfg, fmt.Errorf("capacity %q: %w", pos[5], codec.ErrInvalidArgument)
		}
	}
	if cfg.capacity < 0 {
		return cfg, fmt.Errorf("capacity %d: %w", cfg.capacity, codec.ErrInvalidArgument)
	}
	if cfg.jobs < 1 {
		return cfg, fmt.Errorf("-j %d: %w", cfg.jobs, codec.ErrInvalidArgument)
	}

	return cfg, nil
}

// parseQuant converts three decimal exponents into validated Params.
func parseQuant(fields []string) (quant.Params, error) {
	var p quant.Params
	if len(fields) != quant.Channels {
		return p, fmt.Errorf("quantization %q: want %d values: %w",
			strings.Join(fields, ","), quant.Channels, codec.ErrInvalidArgument)
	}
	for c, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return p, fmt.Errorf("quantization %q: %w", f, codec.ErrInvalidArgument)
		}
		p[c] = v
	}
	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("%w: %w", codec.ErrInvalidArgument, err)
	}

	return p, nil
}

func formatQuant(p quant.Params) string {
	s := make([]string, len(p))
	for c, q := range p {
		s[c] = strconv.Itoa(q)
	}

	return strings.Join(s, ",")
}
