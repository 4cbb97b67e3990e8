package webcat

import (
	"testing"

	"github.com/canopy-network/ics23verify/ics23"
	"github.com/canopy-network/ics23verify/lib/crypto"
	"github.com/stretchr/testify/require"
)

func TestReconstructCanonicalRoot_SingleLeaf(t *testing.T) {
	leaves := []Leaf{{Key: "canonical/a", Value: []byte("v1")}}
	root := reconstructCanonicalRoot(leaves)
	require.Equal(t, leafNodeHash(leaves[0]), root)
}

func TestReconstructCanonicalRoot_NoLeaves(t *testing.T) {
	require.Equal(t, placeholderHash, reconstructCanonicalRoot(nil))
}

// Keys "b" and "c" hash to the same leading bit, so this exercises the
// recursive case of buildJmtRoot at more than one depth, not just the
// single top-level split "a" happens to produce.
func TestReconstructCanonicalRoot_Deterministic(t *testing.T) {
	leaves := []Leaf{
		{Key: "canonical/a", Value: []byte("v1")},
		{Key: "canonical/b", Value: []byte("v2")},
		{Key: "canonical/c", Value: []byte("v3")},
	}
	r1 := reconstructCanonicalRoot(leaves)
	shuffled := []Leaf{leaves[2], leaves[0], leaves[1]}
	r2 := reconstructCanonicalRoot(shuffled)
	require.Equal(t, r1, r2)
}

func TestReconstructCanonicalRoot_ChangesOnValueTamper(t *testing.T) {
	leaves := []Leaf{
		{Key: "canonical/a", Value: []byte("v1")},
		{Key: "canonical/b", Value: []byte("v2")},
	}
	r1 := reconstructCanonicalRoot(leaves)
	tampered := []Leaf{leaves[0], {Key: "canonical/b", Value: []byte("tampered")}}
	r2 := reconstructCanonicalRoot(tampered)
	require.NotEqual(t, r1, r2)
}

// buildChainProof builds a minimal one-leaf canonical tree whose root is
// itself the app hash, wrapped in an ics23 existence proof with an empty
// path, so VerifyWebcatProof's chaining step has something to check.
func buildChainProof(canonicalRoot []byte) *ics23.CommitmentProof {
	leaf := Spec.LeafSpec
	return &ics23.CommitmentProof{Exist: &ics23.ExistenceProof{
		Key:   []byte("canonical"),
		Value: canonicalRoot,
		Leaf:  leaf,
		Path:  nil,
	}}
}

// singleLeafAppHash computes the root a zero-step existence proof under
// Spec.LeafSpec must reach: just the leaf digest itself.
func singleLeafAppHash(canonicalRoot []byte) []byte {
	preimage := append([]byte(leafPrefix), crypto.Hash([]byte("canonical"))...)
	preimage = append(preimage, crypto.Hash(canonicalRoot)...)
	return crypto.Hash(preimage)
}

func TestVerifyWebcatProof_Success(t *testing.T) {
	leaves := []Leaf{
		{Key: "canonical/a", Value: []byte("v1")},
		{Key: "canonical/b", Value: []byte("v2")},
	}
	root := reconstructCanonicalRoot(leaves)

	chainProof := buildChainProof(root)
	appHash := singleLeafAppHash(root)

	data := &ProofData{
		Leaves:            leaves,
		CanonicalRootHash: root,
		AppHash:           appHash,
		ProofBytes:        []*ics23.CommitmentProof{chainProof},
	}
	got, ok := VerifyWebcatProof(data)
	require.True(t, ok)
	require.Equal(t, leaves, got)
}

func TestVerifyWebcatProof_RootMismatchFails(t *testing.T) {
	leaves := []Leaf{{Key: "canonical/a", Value: []byte("v1")}}
	root := reconstructCanonicalRoot(leaves)
	chainProof := buildChainProof(root)
	appHash := singleLeafAppHash(root)

	data := &ProofData{
		Leaves:            []Leaf{{Key: "canonical/a", Value: []byte("DIFFERENT")}},
		CanonicalRootHash: root,
		AppHash:           appHash,
		ProofBytes:        []*ics23.CommitmentProof{chainProof},
	}
	_, ok := VerifyWebcatProof(data)
	require.False(t, ok)
}

func TestVerifyWebcatProof_MissingProofBytesFails(t *testing.T) {
	leaves := []Leaf{{Key: "canonical/a", Value: []byte("v1")}}
	root := reconstructCanonicalRoot(leaves)
	data := &ProofData{Leaves: leaves, CanonicalRootHash: root, AppHash: []byte("whatever")}
	_, ok := VerifyWebcatProof(data)
	require.False(t, ok)
}

func TestVerifyWebcatProof_NilData(t *testing.T) {
	_, ok := VerifyWebcatProof(nil)
	require.False(t, ok)
}
