package ics23

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildTwoLeafTree constructs a minimal 2-leaf binary tree under SmtSpec
// and returns the root plus an existence proof for each leaf. Both
// proofs must replay to the same root: the inner op's prefix/suffix
// encode sibling position so that hash(tag||left||right) is reached from
// either direction.
func buildTwoLeafTree(t *testing.T, k1, v1, k2, v2 []byte) (root []byte, proof1, proof2 *ExistenceProof) {
	t.Helper()
	leafOp := SmtSpec.LeafSpec
	tag := []byte{0x01}

	l1, err := applyLeaf(leafOp, k1, v1)
	require.Nil(t, err)
	l2, err := applyLeaf(leafOp, k2, v2)
	require.Nil(t, err)

	leftInner := &InnerOp{Hash: HashOp_SHA256, Prefix: tag, Suffix: l2}
	rightInner := &InnerOp{Hash: HashOp_SHA256, Prefix: append(append([]byte{}, tag...), l1...), Suffix: nil}

	proof1 = &ExistenceProof{Key: k1, Value: v1, Leaf: leafOp, Path: []*InnerOp{leftInner}}
	proof2 = &ExistenceProof{Key: k2, Value: v2, Leaf: leafOp, Path: []*InnerOp{rightInner}}

	root, err = CalculateExistenceRoot(proof1)
	require.Nil(t, err)
	root2, err := CalculateExistenceRoot(proof2)
	require.Nil(t, err)
	require.Equal(t, root, root2)
	return root, proof1, proof2
}

func TestVerifyExistence_BothSides(t *testing.T) {
	root, p1, p2 := buildTwoLeafTree(t, []byte("alice"), []byte("100"), []byte("bob"), []byte("200"))
	require.Nil(t, VerifyExistence(p1, SmtSpec, root, []byte("alice"), []byte("100")))
	require.Nil(t, VerifyExistence(p2, SmtSpec, root, []byte("bob"), []byte("200")))
}

func TestVerifyExistence_WrongValueFails(t *testing.T) {
	root, p1, _ := buildTwoLeafTree(t, []byte("alice"), []byte("100"), []byte("bob"), []byte("200"))
	require.NotNil(t, VerifyExistence(p1, SmtSpec, root, []byte("alice"), []byte("999")))
}

// property 5 — a single bit flip anywhere load-bearing must break
// verification.
func TestVerifyExistence_BitFlips(t *testing.T) {
	root, p1, _ := buildTwoLeafTree(t, []byte("alice"), []byte("100"), []byte("bob"), []byte("200"))

	flippedRoot := append([]byte{}, root...)
	flippedRoot[0] ^= 0xFF
	require.NotNil(t, VerifyExistence(p1, SmtSpec, flippedRoot, p1.Key, p1.Value))

	flippedPrefix := append([]byte{}, p1.Path[0].Prefix...)
	flippedPrefix[0] ^= 0xFF
	tampered := &ExistenceProof{Key: p1.Key, Value: p1.Value, Leaf: p1.Leaf, Path: []*InnerOp{{Hash: HashOp_SHA256, Prefix: flippedPrefix, Suffix: p1.Path[0].Suffix}}}
	require.NotNil(t, VerifyExistence(tampered, SmtSpec, root, p1.Key, p1.Value))

	flippedSuffix := append([]byte{}, p1.Path[0].Suffix...)
	flippedSuffix[0] ^= 0xFF
	tampered2 := &ExistenceProof{Key: p1.Key, Value: p1.Value, Leaf: p1.Leaf, Path: []*InnerOp{{Hash: HashOp_SHA256, Prefix: p1.Path[0].Prefix, Suffix: flippedSuffix}}}
	require.NotNil(t, VerifyExistence(tampered2, SmtSpec, root, p1.Key, p1.Value))
}

func TestVerifyExistence_LeafSpecMismatch(t *testing.T) {
	root, p1, _ := buildTwoLeafTree(t, []byte("alice"), []byte("100"), []byte("bob"), []byte("200"))
	badSpec := &ProofSpec{
		LeafSpec:  &LeafOp{Hash: HashOp_SHA256, PrehashKey: HashOp_NO_HASH, PrehashValue: HashOp_SHA256, Length: LengthOp_VAR_PROTO},
		InnerSpec: SmtSpec.InnerSpec,
	}
	err := VerifyExistence(p1, badSpec, root, p1.Key, p1.Value)
	require.NotNil(t, err)
	require.Equal(t, CodeLeafMismatch, err.Code())
}

func TestEnsureSpec_DepthBounds(t *testing.T) {
	_, p1, _ := buildTwoLeafTree(t, []byte("alice"), []byte("100"), []byte("bob"), []byte("200"))
	bounded := *SmtSpec
	bounded.MinDepth = 2
	err := EnsureSpec(p1, &bounded)
	require.NotNil(t, err)
	require.Equal(t, CodeDepthOutOfBounds, err.Code())
}
