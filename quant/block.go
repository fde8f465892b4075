// SPDX-License-Identifier: MIT

package quant

import "fmt"

// Block is a row-major int64 matrix holding quantized factor coefficients.
// It mirrors matrix.Dense: bounds-checked At/Set, no raw offsets at the surface.
type Block struct {
	r, c int
	data []int64
}

// NewBlock allocates a zero rows×cols Block.
func NewBlock(rows, cols int) (*Block, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Block{r: rows, c: cols, data: make([]int64, rows*cols)}, nil
}

// Rows returns the row count.
func (b *Block) Rows() int { return b.r }

// Cols returns the column count.
func (b *Block) Cols() int { return b.c }

// At returns the coefficient at (row, col) or ErrOutOfRange.
func (b *Block) At(row, col int) (int64, error) {
	if row < 0 || row >= b.r || col < 0 || col >= b.c {
		return 0, fmt.Errorf("Block.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return b.data[row*b.c+col], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (b *Block) Set(row, col int, v int64) error {
	if row < 0 || row >= b.r || col < 0 || col >= b.c {
		return fmt.Errorf("Block.Set(%d,%d): %w", row, col, ErrOutOfRange)
	}
	b.data[row*b.c+col] = v

	return nil
}

// ZeroCols clears every column ≥ from.
func (b *Block) ZeroCols(from int) {
	for i := 0; i < b.r; i++ {
		for j := max(from, 0); j < b.c; j++ {
			b.data[i*b.c+j] = 0
		}
	}
}

// ZeroRows clears every row ≥ from.
func (b *Block) ZeroRows(from int) {
	if from < 0 {
		from = 0
	}
	if from >= b.r {
		return
	}
	clear(b.data[from*b.c:])
}

// Equal reports whether both blocks have the same shape and coefficients.
func (b *Block) Equal(o *Block) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.r != o.r || b.c != o.c {
		return false
	}
	for i, v := range b.data {
		if o.data[i] != v {
			return false
		}
	}

	return true
}
