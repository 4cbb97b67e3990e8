// Package ics23 verifies vector-commitment membership and non-membership
// proofs against a committed Merkle root. It replays the leaf/inner
// hashing an existence proof describes, checks a non-existence proof's
// neighbor adjacency, and normalizes/compresses batches of either. It does
// not decode wire bytes into these structures (see the wire-representation
// boundary in SPEC_FULL.md §3.1) and it does not generate proofs or mutate trees.
package ics23

// HashOp identifies a digest function an operator may invoke. Only SHA256
// and the NO_HASH identity are ever executed; the rest exist so a proof
// naming them is rejected with a specific error rather than a generic one.
type HashOp int32

const (
	HashOp_NO_HASH HashOp = iota
	HashOp_SHA256
	HashOp_SHA512
	HashOp_KECCAK
	HashOp_RIPEMD160
	HashOp_BITCOIN
	HashOp_SHA512_256
	HashOp_BLAKE2B_512
	HashOp_BLAKE2S_256
	HashOp_BLAKE3
)

// LengthOp identifies how a key/value is length-prefixed before hashing.
type LengthOp int32

const (
	LengthOp_NO_PREFIX LengthOp = iota
	LengthOp_VAR_PROTO
	LengthOp_VAR_RLP
	LengthOp_FIXED32_BIG
	LengthOp_FIXED32_LITTLE
	LengthOp_FIXED64_BIG
	LengthOp_FIXED64_LITTLE
	LengthOp_REQUIRE_32_BYTES
	LengthOp_REQUIRE_64_BYTES
)

// LeafOp describes how a (key, value) pair is hashed into a leaf digest.
type LeafOp struct {
	Hash         HashOp
	PrehashKey   HashOp
	PrehashValue HashOp
	Length       LengthOp
	Prefix       []byte
}

// InnerOp describes one step from a child digest to its parent digest.
type InnerOp struct {
	Hash   HashOp
	Prefix []byte
	Suffix []byte
}

// ExistenceProof witnesses that a (key, value) pair is committed under a
// root: replaying Leaf then Path bottom-up reproduces that root.
type ExistenceProof struct {
	Key   []byte
	Value []byte
	Leaf  *LeafOp
	Path  []*InnerOp
}

// NonExistenceProof witnesses a key's absence by bracketing it between its
// two tree-adjacent existence proofs. At least one side must be set.
type NonExistenceProof struct {
	Key   []byte
	Left  *ExistenceProof
	Right *ExistenceProof
}

// InnerSpec pins the branching shape of a tree's inner nodes: how many
// children, in what serialization order, and how prefix/suffix lengths
// encode a branch position.
type InnerSpec struct {
	ChildOrder      []int32
	ChildSize       int32
	MinPrefixLength int32
	MaxPrefixLength int32
	EmptyChild      []byte
	Hash            HashOp
}

// ProofSpec pins every format choice a tree's proofs must conform to, so a
// verifier never trusts format hints carried inside an untrusted proof.
type ProofSpec struct {
	LeafSpec                   *LeafOp
	InnerSpec                  *InnerSpec
	MinDepth                   int32
	MaxDepth                   int32
	PrehashKeyBeforeComparison bool
}

// BatchEntry is one element of a BatchProof: exactly one of Exist/Nonexist
// is set.
type BatchEntry struct {
	Exist    *ExistenceProof
	Nonexist *NonExistenceProof
}

// BatchProof bundles many existence/non-existence proofs uncompressed.
type BatchProof struct {
	Entries []*BatchEntry
}

// CompressedExistenceProof mirrors ExistenceProof but its Path carries
// integer indices into a CompressedBatchProof's LookupInners table instead
// of inlined InnerOp values.
type CompressedExistenceProof struct {
	Key   []byte
	Value []byte
	Leaf  *LeafOp
	Path  []int32
}

type CompressedNonExistenceProof struct {
	Key   []byte
	Left  *CompressedExistenceProof
	Right *CompressedExistenceProof
}

type CompressedBatchEntry struct {
	Exist    *CompressedExistenceProof
	Nonexist *CompressedNonExistenceProof
}

// CompressedBatchProof deduplicates InnerOp values across a batch: each
// unique encoded InnerOp is stored once in LookupInners and referenced by
// index from every entry that uses it.
type CompressedBatchProof struct {
	Entries      []*CompressedBatchEntry
	LookupInners []*InnerOp
}

// CommitmentProof is a tagged union: exactly one field is non-nil.
type CommitmentProof struct {
	Exist      *ExistenceProof
	Nonexist   *NonExistenceProof
	Batch      *BatchProof
	Compressed *CompressedBatchProof
}
