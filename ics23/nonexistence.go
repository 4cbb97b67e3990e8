package ics23

import (
	"bytes"

	"github.com/canopy-network/ics23verify/lib"
)

// compareKey maps a key into the comparison domain the spec requires
// (raw bytes, or pre-hashed if the tree orders leaves by key hash).
func compareKey(spec *ProofSpec, key []byte) ([]byte, lib.ErrorI) {
	if spec.PrehashKeyBeforeComparison {
		return doHashOrNoop(spec.LeafSpec.PrehashKey, key)
	}
	return key, nil
}

// VerifyNonExistence fails hard unless proof's present neighbor(s) verify
// as existence proofs against root, strictly bracket key in sort order,
// and are tree-adjacent (or extremal, if only one side is present).
// Exported per the library surface in SPEC_FULL.md §6.
func VerifyNonExistence(proof *NonExistenceProof, spec *ProofSpec, root, key []byte) lib.ErrorI {
	if proof == nil || (proof.Left == nil && proof.Right == nil) {
		return ErrNoNeighbors()
	}

	kCmp, err := compareKey(spec, key)
	if err != nil {
		return err
	}

	if proof.Left != nil {
		if err = VerifyExistence(proof.Left, spec, root, proof.Left.Key, proof.Left.Value); err != nil {
			return err
		}
		leftCmp, err := compareKey(spec, proof.Left.Key)
		if err != nil {
			return err
		}
		if bytes.Compare(leftCmp, kCmp) >= 0 {
			return ErrOrderingViolation()
		}
	}
	if proof.Right != nil {
		if err = VerifyExistence(proof.Right, spec, root, proof.Right.Key, proof.Right.Value); err != nil {
			return err
		}
		rightCmp, err := compareKey(spec, proof.Right.Key)
		if err != nil {
			return err
		}
		if bytes.Compare(kCmp, rightCmp) >= 0 {
			return ErrOrderingViolation()
		}
	}

	switch {
	case proof.Left == nil:
		return ensureLeftMost(proof.Right.Path, spec.InnerSpec)
	case proof.Right == nil:
		return ensureRightMost(proof.Left.Path, spec.InnerSpec)
	default:
		return ensureLeftNeighbor(proof.Left.Path, proof.Right.Path, spec.InnerSpec)
	}
}

// ensureLeftNeighbor requires left and right to share a common ancestor
// whose two children are consecutive branches, with left hugging the
// right edge below the ancestor and right hugging the left edge, per
// SPEC_FULL.md §4.5.
func ensureLeftNeighbor(left, right []*InnerOp, spec *InnerSpec) lib.ErrorI {
	// Index len-1 of each path is applied last, i.e. closest to the root;
	// walk both paths from the root end inward.
	li, ri := len(left)-1, len(right)-1
	for li >= 0 && ri >= 0 {
		lo, ro := left[li], right[ri]
		if bytes.Equal(lo.Prefix, ro.Prefix) && bytes.Equal(lo.Suffix, ro.Suffix) {
			li--
			ri--
			continue
		}
		break
	}
	if li < 0 || ri < 0 {
		return ErrAdjacencyViolation()
	}
	leftBranch, err := orderFromPadding(left[li], spec)
	if err != nil {
		return err
	}
	rightBranch, err := orderFromPadding(right[ri], spec)
	if err != nil {
		return err
	}
	if rightBranch != leftBranch+1 {
		return ErrAdjacencyViolation()
	}
	if err = ensureRightMost(left[:li], spec); err != nil {
		return err
	}
	return ensureLeftMost(right[:ri], spec)
}
