// SPDX-License-Identifier: MIT

package codec

import "fmt"

// Stats summarizes one encoded stream.
type Stats struct {
	HeaderBits int // bits spent on the header ("meta data")
	TotalBits  int // payload bits, padding excluded
	Bytes      int // encoded size
	KiB        int // Bytes rounded to the nearest KiB
	Ranks      int // rank groups written; < K when rate control cut the stream
	MaxRanks   int // K of the image
}

// newStats fills the derived fields from the bit counts.
func newStats(headerBits, totalBits, ranks, k int) Stats {
	bytes := (totalBits + 7) / 8

	return Stats{
		HeaderBits: headerBits,
		TotalBits:  totalBits,
		Bytes:      bytes,
		KiB:        (bytes + 512) / 1024,
		Ranks:      ranks,
		MaxRanks:   k,
	}
}

// Truncated reports whether rate control dropped trailing rank groups.
func (s Stats) Truncated() bool { return s.Ranks < s.MaxRanks }

// String renders the encoder report.
func (s Stats) String() string {
	return fmt.Sprintf("%d bits for meta data, %d bits (%d KiB) encoded, %d/%d ranks",
		s.HeaderBits, s.TotalBits, s.KiB, s.Ranks, s.MaxRanks)
}
