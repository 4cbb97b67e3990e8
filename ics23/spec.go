package ics23

import (
	"bytes"

	"github.com/canopy-network/ics23verify/lib"
)

// ensureLeaf requires byte-for-byte agreement between a proof's leaf
// operator and the spec's leafSpec, field by field.
func ensureLeaf(leaf, leafSpec *LeafOp) lib.ErrorI {
	if leaf == nil || leafSpec == nil {
		return ErrMissingLeaf()
	}
	if leaf.Hash != leafSpec.Hash ||
		leaf.PrehashKey != leafSpec.PrehashKey ||
		leaf.PrehashValue != leafSpec.PrehashValue ||
		leaf.Length != leafSpec.Length ||
		!bytes.Equal(leaf.Prefix, leafSpec.Prefix) {
		return ErrLeafMismatch()
	}
	return nil
}

// getPosition returns the index of value b within order, the permutation
// describing serialization order of children.
func getPosition(order []int32, b int32) (int, lib.ErrorI) {
	for i, v := range order {
		if v == b {
			return i, nil
		}
	}
	return 0, ErrNoPaddingMatch()
}

// branchBounds returns the (minPrefix, maxPrefix, suffixLen) padding
// signature for branch b under innerSpec, per SPEC_FULL.md §4.5.
func branchBounds(spec *InnerSpec, b int32) (minPrefix, maxPrefix, suffix int, err lib.ErrorI) {
	idx, err := getPosition(spec.ChildOrder, b)
	if err != nil {
		return 0, 0, 0, err
	}
	prefixFromSiblings := idx * int(spec.ChildSize)
	minPrefix = prefixFromSiblings + int(spec.MinPrefixLength)
	maxPrefix = prefixFromSiblings + int(spec.MaxPrefixLength)
	suffix = (len(spec.ChildOrder) - 1 - idx) * int(spec.ChildSize)
	return minPrefix, maxPrefix, suffix, nil
}

// hasPadding reports whether op's prefix/suffix lengths match branch b's
// padding signature.
func hasPadding(op *InnerOp, spec *InnerSpec, b int32) bool {
	minPrefix, maxPrefix, suffix, err := branchBounds(spec, b)
	if err != nil {
		return false
	}
	return len(op.Prefix) >= minPrefix && len(op.Prefix) <= maxPrefix && len(op.Suffix) == suffix
}

// orderFromPadding returns the unique branch whose padding op matches.
func orderFromPadding(op *InnerOp, spec *InnerSpec) (int32, lib.ErrorI) {
	for _, b := range spec.ChildOrder {
		if hasPadding(op, spec, b) {
			return b, nil
		}
	}
	return 0, ErrNoPaddingMatch()
}

// ensureLeftMost requires every step of path to have padding for the
// leftmost branch (b=0).
func ensureLeftMost(path []*InnerOp, spec *InnerSpec) lib.ErrorI {
	for _, op := range path {
		if !hasPadding(op, spec, 0) {
			return ErrAdjacencyViolation()
		}
	}
	return nil
}

// ensureRightMost requires every step of path to have padding for the
// rightmost branch (b=len(order)-1).
func ensureRightMost(path []*InnerOp, spec *InnerSpec) lib.ErrorI {
	last := int32(len(spec.ChildOrder) - 1)
	for _, op := range path {
		if !hasPadding(op, spec, last) {
			return ErrAdjacencyViolation()
		}
	}
	return nil
}

// ensureInner requires op to match innerSpec's hash and prefix-length
// bounds, and to never collide with the leaf prefix.
func ensureInner(op *InnerOp, leafPrefix []byte, spec *InnerSpec) lib.ErrorI {
	if op.Hash != spec.Hash {
		return ErrInnerHashMismatch()
	}
	if len(leafPrefix) > 0 && len(op.Prefix) >= len(leafPrefix) && bytes.Equal(op.Prefix[:len(leafPrefix)], leafPrefix) {
		return ErrPrefixCollision()
	}
	maxPrefix := int(spec.MaxPrefixLength) + (len(spec.ChildOrder)-1)*int(spec.ChildSize)
	if len(op.Prefix) < int(spec.MinPrefixLength) || len(op.Prefix) > maxPrefix {
		return ErrPrefixOutOfBounds()
	}
	return nil
}

// EnsureSpec validates that proof conforms to spec: leaf operator matches,
// path depth is within bounds, and every inner step matches innerSpec.
// Exported per the library surface in SPEC_FULL.md §6.
func EnsureSpec(proof *ExistenceProof, spec *ProofSpec) lib.ErrorI {
	if spec == nil || spec.LeafSpec == nil || spec.InnerSpec == nil {
		return ErrMissingSpec()
	}
	if proof == nil || proof.Leaf == nil {
		return ErrMissingLeaf()
	}
	if err := ensureLeaf(proof.Leaf, spec.LeafSpec); err != nil {
		return err
	}
	depth := len(proof.Path)
	if spec.MinDepth > 0 && depth < int(spec.MinDepth) {
		return ErrDepthOutOfBounds(depth, int(spec.MinDepth), int(spec.MaxDepth))
	}
	if spec.MaxDepth > 0 && depth > int(spec.MaxDepth) {
		return ErrDepthOutOfBounds(depth, int(spec.MinDepth), int(spec.MaxDepth))
	}
	for _, op := range proof.Path {
		if err := ensureInner(op, spec.LeafSpec.Prefix, spec.InnerSpec); err != nil {
			return err
		}
	}
	return nil
}

// IsValidSpec runs a lightweight structural sanity check on a caller
// supplied ProofSpec before it is ever used to replay an untrusted proof,
// mirroring the defensive construction store/smt.go performs before a
// tree is allowed to exist (see SPEC_FULL.md §4.9).
func IsValidSpec(spec *ProofSpec) lib.ErrorI {
	if spec == nil || spec.LeafSpec == nil || spec.InnerSpec == nil {
		return ErrMissingSpec()
	}
	if len(spec.InnerSpec.ChildOrder) < 2 {
		return ErrMissingSpec()
	}
	if spec.InnerSpec.ChildSize <= 0 {
		return ErrMissingSpec()
	}
	seen := make(map[int32]bool, len(spec.InnerSpec.ChildOrder))
	for _, b := range spec.InnerSpec.ChildOrder {
		if b < 0 || int(b) >= len(spec.InnerSpec.ChildOrder) || seen[b] {
			return ErrMissingSpec()
		}
		seen[b] = true
	}
	return nil
}

// IavlSpec is the built-in ProofSpec for a Cosmos-SDK-style IAVL tree.
var IavlSpec = &ProofSpec{
	LeafSpec: &LeafOp{
		Hash: HashOp_SHA256, PrehashKey: HashOp_NO_HASH, PrehashValue: HashOp_SHA256,
		Length: LengthOp_VAR_PROTO, Prefix: []byte{0},
	},
	InnerSpec: &InnerSpec{
		ChildOrder: []int32{0, 1}, ChildSize: 33,
		MinPrefixLength: 4, MaxPrefixLength: 12, Hash: HashOp_SHA256,
	},
	MinDepth: 0, MaxDepth: 0, PrehashKeyBeforeComparison: false,
}

// TendermintSpec is the built-in ProofSpec for a Tendermint/CometBFT
// key-value store tree.
var TendermintSpec = &ProofSpec{
	LeafSpec: &LeafOp{
		Hash: HashOp_SHA256, PrehashKey: HashOp_NO_HASH, PrehashValue: HashOp_SHA256,
		Length: LengthOp_VAR_PROTO, Prefix: []byte{0},
	},
	InnerSpec: &InnerSpec{
		ChildOrder: []int32{0, 1}, ChildSize: 32,
		MinPrefixLength: 1, MaxPrefixLength: 1, Hash: HashOp_SHA256,
	},
	MinDepth: 0, MaxDepth: 0, PrehashKeyBeforeComparison: false,
}

// SmtSpec is the built-in ProofSpec for a standard binary sparse Merkle
// tree keyed by pre-hashed keys.
var SmtSpec = &ProofSpec{
	LeafSpec: &LeafOp{
		Hash: HashOp_SHA256, PrehashKey: HashOp_SHA256, PrehashValue: HashOp_SHA256,
		Length: LengthOp_NO_PREFIX, Prefix: []byte{0},
	},
	InnerSpec: &InnerSpec{
		ChildOrder: []int32{0, 1}, ChildSize: 32,
		MinPrefixLength: 1, MaxPrefixLength: 1, Hash: HashOp_SHA256,
	},
	MinDepth: 0, MaxDepth: 0, PrehashKeyBeforeComparison: true,
}
