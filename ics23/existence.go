package ics23

import (
	"bytes"

	"github.com/canopy-network/ics23verify/lib"
)

// CalculateExistenceRoot replays proof's leaf then its path bottom-up and
// returns the resulting root digest. Exported per the library surface in
// SPEC_FULL.md §6.
func CalculateExistenceRoot(proof *ExistenceProof) ([]byte, lib.ErrorI) {
	if proof == nil || proof.Leaf == nil {
		return nil, ErrMissingLeaf()
	}
	acc, err := applyLeaf(proof.Leaf, proof.Key, proof.Value)
	if err != nil {
		return nil, err
	}
	for _, op := range proof.Path {
		acc, err = applyInner(op, acc)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// VerifyExistence fails hard unless proof conforms to spec, replays to
// root, and carries exactly the queried key/value. Exported per the
// library surface in SPEC_FULL.md §6.
func VerifyExistence(proof *ExistenceProof, spec *ProofSpec, root, key, value []byte) lib.ErrorI {
	if err := EnsureSpec(proof, spec); err != nil {
		return err
	}
	calculated, err := CalculateExistenceRoot(proof)
	if err != nil {
		return err
	}
	if !bytes.Equal(calculated, root) {
		return ErrRootMismatch()
	}
	if !bytes.Equal(proof.Key, key) {
		return ErrKeyMismatch()
	}
	if !bytes.Equal(proof.Value, value) {
		return ErrValueMismatch()
	}
	return nil
}
