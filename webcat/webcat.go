// Package webcat reconstructs a sparse-Merkle root directly from a full
// leaf set and chains it into the generic ics23 existence verifier to
// confirm that root is anchored under an application hash. It has no
// mutation path and no storage: every call is a pure function of the
// leaf set and proof bytes handed to it.
package webcat

import (
	"bytes"
	"strings"

	"github.com/canopy-network/ics23verify/ics23"
	"github.com/canopy-network/ics23verify/lib"
	"github.com/canopy-network/ics23verify/lib/crypto"
)

// Leaf is one raw (key, value) pair contributing to the reconstructed
// canonical root.
type Leaf struct {
	Key   string
	Value []byte
}

// ProofData is everything VerifyWebcatProof needs: the full leaf set, the
// declared root of that leaf set, the final application hash, and the
// ics23 existence proof chaining the declared root into that hash.
type ProofData struct {
	Leaves           []Leaf
	CanonicalRootHash []byte
	AppHash          []byte
	ProofBytes       []*ics23.CommitmentProof
}

// canonicalKey strips a leading "canonical/" from a leaf's raw key, the
// namespace prefix under which canonical entries are stored alongside
// other unrelated keys in the same tree.
func canonicalKey(key string) string {
	return strings.TrimPrefix(key, canonicalKeyPrefix)
}

// keyHash returns the digest used to steer a leaf through the tree and
// hashed into its leaf node.
func keyHash(key string) []byte {
	return crypto.Hash([]byte(canonicalKey(key)))
}

// leafNodeHash computes a leaf's node digest: leafPrefix || H(key) ||
// H(value), matching Spec.LeafSpec's prehash-both-sides convention.
func leafNodeHash(l Leaf) []byte {
	preimage := append([]byte(leafPrefix), keyHash(l.Key)...)
	preimage = append(preimage, crypto.Hash(l.Value)...)
	return crypto.Hash(preimage)
}

// innerNodeHash combines a left and right child digest one level up.
func innerNodeHash(left, right []byte) []byte {
	preimage := append([]byte(innerPrefix), left...)
	preimage = append(preimage, right...)
	return crypto.Hash(preimage)
}

// getBit returns the bit at position depth (MSB-first) of data, the same
// traversal arithmetic store/smt.go's SMT.getBit uses to mutate a
// persisted tree — adapted here to statically partition an in-memory
// leaf set instead.
func getBit(data []byte, depth int) int {
	byteIndex := depth / 8
	if byteIndex >= len(data) {
		return 0
	}
	bitIndex := 7 - (depth % 8)
	return int((data[byteIndex] >> bitIndex) & 1)
}

type hashedLeaf struct {
	hash []byte
	node []byte
}

// loggerOrNull returns loggers[0] if one was supplied, otherwise a logger
// that discards everything, so the logging parameter stays optional at
// every call site without a nil check at every call site.
func loggerOrNull(loggers []lib.LoggerI) lib.LoggerI {
	if len(loggers) > 0 && loggers[0] != nil {
		return loggers[0]
	}
	return lib.NewNullLogger()
}

// buildJmtRoot recursively partitions leaves by the bit at depth of each
// leaf's key hash, substituting the placeholder for any empty side, and
// combines the two halves bottom-up.
func buildJmtRoot(leaves []hashedLeaf, depth int) []byte {
	switch {
	case len(leaves) == 0:
		return placeholderHash
	case len(leaves) == 1 || depth >= maxDepth:
		return leaves[0].node
	}
	var left, right []hashedLeaf
	for _, l := range leaves {
		if getBit(l.hash, depth) == 0 {
			left = append(left, l)
		} else {
			right = append(right, l)
		}
	}
	return innerNodeHash(buildJmtRoot(left, depth+1), buildJmtRoot(right, depth+1))
}

// reconstructCanonicalRoot rebuilds the sparse-Merkle root over the full
// leaf set from scratch, per SPEC_FULL.md §4.8. An empty leaf set is not
// an error: its root is the placeholder, same as any other empty subtree.
func reconstructCanonicalRoot(leaves []Leaf) []byte {
	hashed := make([]hashedLeaf, len(leaves))
	for i, l := range leaves {
		hashed[i] = hashedLeaf{hash: keyHash(l.Key), node: leafNodeHash(l)}
	}
	return buildJmtRoot(hashed, 0)
}

// chainToAppHash verifies that the last proof in proofBytes is an
// existence proof for ("canonical", canonicalRoot) against appHash.
func chainToAppHash(proofBytes []*ics23.CommitmentProof, canonicalRoot, appHash []byte) lib.ErrorI {
	if len(proofBytes) == 0 {
		return ErrMissingProofBytes()
	}
	last := proofBytes[len(proofBytes)-1]
	if last == nil || last.Exist == nil {
		return ErrChainVerificationFailed()
	}
	if !ics23.VerifyMembership(last, Spec, appHash, []byte("canonical"), canonicalRoot) {
		return ErrChainVerificationFailed()
	}
	return nil
}

// VerifyWebcatProof reconstructs data's canonical root from its leaf set,
// confirms it matches the declared CanonicalRootHash, and chains it to
// AppHash via the trailing existence proof in ProofBytes. On success it
// returns the normalized leaf set (so callers can use the now-trusted
// data without re-deriving it); on any failure it returns (nil, false),
// per the catch-at-the-top policy in SPEC_FULL.md §7. logger is optional —
// pass none to discard diagnostics.
func VerifyWebcatProof(data *ProofData, logger ...lib.LoggerI) ([]Leaf, bool) {
	if data == nil {
		return nil, false
	}
	l := loggerOrNull(logger)
	root := reconstructCanonicalRoot(data.Leaves)
	if !bytes.Equal(root, data.CanonicalRootHash) {
		l.Debugf("webcat proof rejected: reconstructed root %x != declared root %x", root, data.CanonicalRootHash)
		return nil, false
	}
	if err := chainToAppHash(data.ProofBytes, data.CanonicalRootHash, data.AppHash); err != nil {
		l.Debugf("webcat proof rejected: %s", err.Error())
		return nil, false
	}
	return data.Leaves, true
}
