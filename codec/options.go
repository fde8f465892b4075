// SPDX-License-Identifier: MIT

// Package codec: functional configuration for Encode and Decode.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Options the other direction ignores are harmless: Encode ignores the
// decode-only switches and vice versa.
package codec

import (
	"log/slog"

	"github.com/katalvlaran/svdimg/bitstream"
	"github.com/katalvlaran/svdimg/quant"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCapacity bounds the payload of an encoded stream, in bits.
	DefaultCapacity = 1 << 23

	// DefaultRateControl: a stream that would exceed the capacity fails with
	// bitstream.ErrCapacityExceeded instead of being cut short.
	DefaultRateControl = false

	// DefaultProgressive: a truncated stream is a decode error.
	DefaultProgressive = false

	// DefaultMaxRank of 0 decodes every rank group.
	DefaultMaxRank = 0

	// DefaultConcurrency runs one worker per channel.
	DefaultConcurrency = quant.Channels

	// LumaOffset is subtracted from channel 0 before factorization and added
	// back after reconstruction, centering luma around zero.
	LumaOffset = 0.5
)

// DefaultQuant holds the per-channel exponents used when WithQuant is absent.
var DefaultQuant = quant.DefaultParams

// ---------- Internal panic messages ----------

const (
	panicCapacityInvalid    = "codec: WithCapacity: capacity must be >= 0"
	panicMaxRankInvalid     = "codec: WithMaxRank: rank must be >= 0"
	panicConcurrencyInvalid = "codec: WithConcurrency: n must be >= 1"
	panicLoggerNil          = "codec: WithLogger: logger must be non-nil"
)

// Option mutates internal options. Constructors panic only on programmer error.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	quant       quant.Params // DefaultQuant; validated by Encode
	capacity    int          // bits; bitstream.NoLimit disables the bound
	rateControl bool         // DefaultRateControl
	progressive bool         // DefaultProgressive
	maxRank     int          // DefaultMaxRank (0 = all)
	concurrency int          // DefaultConcurrency
	logger      *slog.Logger // discard by default
}

// WithQuant sets the per-channel quantization exponents.
// Out-of-range values are reported by Encode as ErrInvalidArgument rather
// than panicking, since they usually come from user input.
func WithQuant(p quant.Params) Option {
	return func(o *Options) { o.quant = p }
}

// WithCapacity bounds the encoded payload to bits; bitstream.NoLimit (0) removes the bound.
func WithCapacity(bits int) Option {
	if bits < 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *Options) { o.capacity = bits }
}

// WithRateControl makes Encode drop trailing rank groups that would not fit
// the capacity instead of failing. The result is a stream prefix; decode it
// with WithProgressive.
func WithRateControl() Option {
	return func(o *Options) { o.rateControl = true }
}

// WithProgressive makes Decode accept a stream that ends early and keep
// every complete rank group read before the end. Malformed codes still fail.
func WithProgressive() Option {
	return func(o *Options) { o.progressive = true }
}

// WithMaxRank makes Decode read and reconstruct only the first r rank groups
// (0 = all). Values above K are clamped.
func WithMaxRank(r int) Option {
	if r < 0 {
		panic(panicMaxRankInvalid)
	}

	return func(o *Options) { o.maxRank = r }
}

// WithConcurrency sets how many channels are factorized or reconstructed at once.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic(panicConcurrencyInvalid)
	}

	return func(o *Options) { o.concurrency = n }
}

// WithLogger routes Debug diagnostics (bit counts, rank energy) to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// defaultOptions returns Options filled with the package defaults.
func defaultOptions() Options {
	return Options{
		quant:       DefaultQuant,
		capacity:    DefaultCapacity,
		rateControl: DefaultRateControl,
		progressive: DefaultProgressive,
		maxRank:     DefaultMaxRank,
		concurrency: DefaultConcurrency,
		logger:      slog.New(slog.DiscardHandler),
	}
}

// gatherOptions applies opts over the defaults; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// bounded reports whether the capacity bound is active.
func (o Options) bounded() bool { return o.capacity != bitstream.NoLimit }
