// Package prune - alignment and tree containers with their validation
// sentinels.
package prune

import "errors"

var (
	// ErrEmptyAlignment indicates an alignment with no rows or no columns.
	ErrEmptyAlignment = errors.New("prune: alignment must have at least one row and one column")
	// ErrRagged indicates alignment rows of differing lengths.
	ErrRagged = errors.New("prune: all alignment rows must have the same length")
	// ErrBadToken indicates a token outside [-1, alphabetSize).
	ErrBadToken = errors.New("prune: alignment tokens must lie in [-1, alphabetSize)")
	// ErrNegativeBranch indicates a negative distance to parent.
	ErrNegativeBranch = errors.New("prune: branch lengths must be non-negative")
	// ErrBadRoot indicates parentIndex[0] ≠ -1.
	ErrBadRoot = errors.New("prune: parentIndex[0] must be -1")
	// ErrBadParentIndex indicates a parent index outside [0, i] for some
	// node i > 0, violating the preorder bound.
	ErrBadParentIndex = errors.New("prune: parentIndex[i] must lie in [0, i] for i > 0")
	// ErrShapeMismatch indicates alignment, tree and model dimensions that
	// do not agree.
	ErrShapeMismatch = errors.New("prune: alignment, tree and model shapes must agree")
	// ErrBadMultiplier indicates a padding multiplier below 2.
	ErrBadMultiplier = errors.New("prune: padding multipliers must be at least 2")
)

// Alignment is an R×C matrix of integer tokens: row r is the sequence at
// tree node r (leaves and internal placeholders alike), column c an
// alignment site. A token of -1 denotes a gap. Immutable once built.
type Alignment [][]int

// Rows returns R.
func (a Alignment) Rows() int { return len(a) }

// Cols returns C, or 0 for an empty alignment.
func (a Alignment) Cols() int {
	if len(a) == 0 {
		return 0
	}

	return len(a[0])
}

// Validate checks rectangularity and the token range [-1, alphabetSize).
func (a Alignment) Validate(alphabetSize int) error {
	if a.Rows() == 0 || a.Cols() == 0 {
		return ErrEmptyAlignment
	}
	width := a.Cols()
	for _, row := range a {
		if len(row) != width {
			return ErrRagged
		}
		for _, tok := range row {
			if tok < -1 || tok >= alphabetSize {
				return ErrBadToken
			}
		}
	}

	return nil
}

// Tree is a phylogenetic tree in flat preorder arrays: node i hangs below
// ParentIndex[i] at distance DistanceToParent[i]. The root is node 0 with
// ParentIndex[0] = -1. Padding rows are self-parented (ParentIndex[i] = i)
// at distance 0 and are neutral to the likelihood.
type Tree struct {
	DistanceToParent []float64
	ParentIndex      []int
}

// Nodes returns R, the number of tree nodes.
func (t Tree) Nodes() int { return len(t.ParentIndex) }

// Validate checks array agreement, non-negative branch lengths, the root
// marker, and the preorder bound ParentIndex[i] ∈ [0, i] for i > 0
// (self-parenting included, which is how padding rows are encoded).
func (t Tree) Validate() error {
	if len(t.DistanceToParent) != len(t.ParentIndex) {
		return ErrShapeMismatch
	}
	if t.Nodes() == 0 || t.ParentIndex[0] != -1 {
		return ErrBadRoot
	}
	for i, d := range t.DistanceToParent {
		if d < 0 {
			return ErrNegativeBranch
		}
		if i > 0 && (t.ParentIndex[i] < 0 || t.ParentIndex[i] > i) {
			return ErrBadParentIndex
		}
	}

	return nil
}
