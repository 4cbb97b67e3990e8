package ics23

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// encodeInnerOp renders op as protobuf wire bytes using the same field
// numbers the CommitmentProof schema assigns InnerOp (1=hash, 2=prefix,
// 3=suffix), so that two structurally-identical InnerOp values always
// produce identical bytes regardless of how they were constructed. This
// is the only place in the package that needs a canonical byte identity
// rather than a decoded struct, so it borrows protowire directly instead
// of round-tripping through a generated message type.
func encodeInnerOp(op *InnerOp) string {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(op.Hash))
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendBytes(b, op.Prefix)
	b = protowire.AppendTag(b, 3, protowire.BytesType)
	b = protowire.AppendBytes(b, op.Suffix)
	// []byte is not map-key comparable; string is the idiomatic Go
	// substitute for a byte-sequence-hashable key (SPEC_FULL.md §9).
	return string(b)
}

type innerOpTable struct {
	index map[string]int32
	ops   []*InnerOp
}

func newInnerOpTable() *innerOpTable {
	return &innerOpTable{index: make(map[string]int32)}
}

func (t *innerOpTable) intern(op *InnerOp) int32 {
	key := encodeInnerOp(op)
	if idx, ok := t.index[key]; ok {
		return idx
	}
	idx := int32(len(t.ops))
	t.index[key] = idx
	t.ops = append(t.ops, op)
	return idx
}

func compressExistence(e *ExistenceProof, t *innerOpTable) *CompressedExistenceProof {
	if e == nil {
		return nil
	}
	path := make([]int32, len(e.Path))
	for i, op := range e.Path {
		path[i] = t.intern(op)
	}
	return &CompressedExistenceProof{Key: e.Key, Value: e.Value, Leaf: e.Leaf, Path: path}
}

func compressNonExistence(ne *NonExistenceProof, t *innerOpTable) *CompressedNonExistenceProof {
	if ne == nil {
		return nil
	}
	return &CompressedNonExistenceProof{
		Key:   ne.Key,
		Left:  compressExistence(ne.Left, t),
		Right: compressExistence(ne.Right, t),
	}
}

// Compress rewrites a batch proof's inline inner-op paths as indices into
// a deduplicated lookup table. Non-batch proofs pass through unchanged.
// Exported per the library surface in SPEC_FULL.md §6.
func Compress(proof *CommitmentProof) *CommitmentProof {
	if proof == nil || proof.Batch == nil {
		return proof
	}
	table := newInnerOpTable()
	entries := make([]*CompressedBatchEntry, len(proof.Batch.Entries))
	for i, e := range proof.Batch.Entries {
		entries[i] = &CompressedBatchEntry{
			Exist:    compressExistence(e.Exist, table),
			Nonexist: compressNonExistence(e.Nonexist, table),
		}
	}
	return &CommitmentProof{Compressed: &CompressedBatchProof{Entries: entries, LookupInners: table.ops}}
}

func decompressExistence(e *CompressedExistenceProof, lookup []*InnerOp) *ExistenceProof {
	if e == nil {
		return nil
	}
	path := make([]*InnerOp, len(e.Path))
	for i, idx := range e.Path {
		path[i] = lookup[idx]
	}
	return &ExistenceProof{Key: e.Key, Value: e.Value, Leaf: e.Leaf, Path: path}
}

func decompressNonExistence(ne *CompressedNonExistenceProof, lookup []*InnerOp) *NonExistenceProof {
	if ne == nil {
		return nil
	}
	return &NonExistenceProof{
		Key:   ne.Key,
		Left:  decompressExistence(ne.Left, lookup),
		Right: decompressExistence(ne.Right, lookup),
	}
}

// Decompress is Compress's inverse: it is the identity on anything that
// isn't a Compressed proof. Exported per the library surface in
// SPEC_FULL.md §6.
func Decompress(proof *CommitmentProof) *CommitmentProof {
	if proof == nil || proof.Compressed == nil {
		return proof
	}
	lookup := proof.Compressed.LookupInners
	entries := make([]*BatchEntry, len(proof.Compressed.Entries))
	for i, e := range proof.Compressed.Entries {
		entries[i] = &BatchEntry{
			Exist:    decompressExistence(e.Exist, lookup),
			Nonexist: decompressNonExistence(e.Nonexist, lookup),
		}
	}
	return &CommitmentProof{Batch: &BatchProof{Entries: entries}}
}
