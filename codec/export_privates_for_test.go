// SPDX-License-Identifier: MIT

package codec

// Test bridge: exposes the resolved options and panic messages to codec_test.
// Compiled only into the test binary.

import "github.com/katalvlaran/svdimg/quant"

// Panic message exports to avoid magic strings in tests.
const (
	PanicCapacityInvalid_TestOnly    = panicCapacityInvalid
	PanicMaxRankInvalid_TestOnly     = panicMaxRankInvalid
	PanicConcurrencyInvalid_TestOnly = panicConcurrencyInvalid
	PanicLoggerNil_TestOnly          = panicLoggerNil
)

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	Quant       quant.Params
	Capacity    int
	RateControl bool
	Progressive bool
	MaxRank     int
	Concurrency int
	HasLogger   bool
}

// GatherOptionsSnapshot_TestOnly resolves opts the way Encode and Decode do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		Quant:       o.quant,
		Capacity:    o.capacity,
		RateControl: o.rateControl,
		Progressive: o.progressive,
		MaxRank:     o.maxRank,
		Concurrency: o.concurrency,
		HasLogger:   o.logger != nil,
	}
}
