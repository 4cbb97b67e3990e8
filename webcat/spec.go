package webcat

import (
	"github.com/canopy-network/ics23verify/ics23"
	"github.com/canopy-network/ics23verify/lib/crypto"
)

const (
	// leafPrefix tags a leaf-node preimage, domain-separating it from an
	// inner-node preimage under the same hash function.
	leafPrefix = "JMT::LeafNode"
	// innerPrefix is the canonical inner-node tag. A one-byte-shorter
	// variant ("JMT::IntrnalNode", a known historical typo dropping the
	// 'e' of "Internal") is tolerated by Spec's prefix-length bounds rather than
	// rejected, per SPEC_FULL.md §9's open-question resolution.
	innerPrefix = "JMT::InternalNode"
	// canonicalKeyPrefix is stripped from a leaf's raw key before it is
	// hashed into the canonical key used for tree steering.
	canonicalKeyPrefix = "canonical/"

	childSize = 32
	maxDepth  = 256
)

var childOrder = []int32{0, 1}

// placeholderHash is the fixed digest substituted for an empty subtree,
// keeping every depth's hash defined even when one side has no leaves.
var placeholderHash = crypto.Hash([]byte("SPARSE_MERKLE_PLACEHOLDER_HASH__"))

// Spec is the ProofSpec the final canonical-root-to-app-hash step is
// checked against via ics23.VerifyExistence; SPEC_FULL.md §6 lists its
// exact bounds.
var Spec = &ics23.ProofSpec{
	LeafSpec: &ics23.LeafOp{
		Hash: ics23.HashOp_SHA256, PrehashKey: ics23.HashOp_SHA256, PrehashValue: ics23.HashOp_SHA256,
		Length: ics23.LengthOp_NO_PREFIX, Prefix: []byte(leafPrefix),
	},
	InnerSpec: &ics23.InnerSpec{
		ChildOrder:      childOrder,
		ChildSize:       childSize,
		MinPrefixLength: int32(len(innerPrefix)) - 1,
		MaxPrefixLength: int32(len(innerPrefix)),
		EmptyChild:      placeholderHash,
		Hash:            ics23.HashOp_SHA256,
	},
	MinDepth:                   0,
	MaxDepth:                   maxDepth,
	PrehashKeyBeforeComparison: true,
}
