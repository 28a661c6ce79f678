package prune

import "math/bits"

// PadOptions configures PadAlignment's shape targets.
//
// Fields:
//   - NumRows, NumCols       — explicit targets; 0 derives the target from
//     the corresponding multiplier. Targets at or below the current size
//     leave that dimension untouched.
//   - RowMultiplier, ColMultiplier — geometric rounding bases (default 2,
//     i.e. next power of two).
type PadOptions struct {
	NumRows       int
	NumCols       int
	RowMultiplier int
	ColMultiplier int
}

// DefaultPadOptions rounds both dimensions up to the next power of two.
func DefaultPadOptions() PadOptions {
	return PadOptions{RowMultiplier: 2, ColMultiplier: 2}
}

// PadDimension rounds n up to the next integer power of multiplier.
// The multiplier-2 case avoids floating point entirely.
func PadDimension(n, multiplier int) int {
	if n <= 1 {
		return 1
	}
	if multiplier == 2 {
		return 1 << bits.Len(uint(n-1))
	}

	out := 1
	for out < n {
		out *= multiplier
	}

	return out
}

// PadAlignment — pad an alignment/tree pair to shape targets without
// changing its likelihood.
//
// Description:
//
//	Padding rows are self-parented (ParentIndex[i] = i) at distance 0 with
//	all-gap content; padding columns are all-gap columns appended on the
//	right. Both are exactly neutral under the pruning recursion: a
//	zero-length branch contributes an identity matrix and a gap an
//	all-ones vector. Callers strip padding columns from per-column output.
//
// Errors: ErrBadMultiplier when a derived target needs a multiplier < 2;
// alignment/tree validation sentinels.
//
// Complexity: O(paddedR·paddedC).
func PadAlignment(aln Alignment, tree Tree, opts *PadOptions) (Alignment, Tree, error) {
	cfg := DefaultPadOptions()
	if opts != nil {
		cfg = *opts
	}

	if err := tree.Validate(); err != nil {
		return nil, Tree{}, err
	}
	if aln.Rows() == 0 || aln.Cols() == 0 {
		return nil, Tree{}, ErrEmptyAlignment
	}
	if aln.Rows() != tree.Nodes() {
		return nil, Tree{}, ErrShapeMismatch
	}

	rows, cols := aln.Rows(), aln.Cols()
	nRows, err := padTarget(rows, cfg.NumRows, cfg.RowMultiplier)
	if err != nil {
		return nil, Tree{}, err
	}
	nCols, err := padTarget(cols, cfg.NumCols, cfg.ColMultiplier)
	if err != nil {
		return nil, Tree{}, err
	}

	padded := make(Alignment, nRows)
	for r := 0; r < nRows; r++ {
		row := make([]int, nCols)
		for c := range row {
			row[c] = -1
		}
		if r < rows {
			copy(row, aln[r])
		}
		padded[r] = row
	}

	dist := make([]float64, nRows)
	parent := make([]int, nRows)
	copy(dist, tree.DistanceToParent)
	copy(parent, tree.ParentIndex)
	for r := rows; r < nRows; r++ {
		parent[r] = r // self-parented, zero-distance, all-gap: inert
	}

	return padded, Tree{DistanceToParent: dist, ParentIndex: parent}, nil
}

// padTarget resolves one dimension's target size: the explicit target when
// at least the current size, otherwise the multiplier rounding.
func padTarget(current, explicit, multiplier int) (int, error) {
	if explicit >= current && explicit > 0 {
		return explicit, nil
	}
	if explicit == 0 {
		if multiplier < 2 {
			return 0, ErrBadMultiplier
		}

		return max(current, PadDimension(current, multiplier)), nil
	}

	return current, nil
}
