package ics23

import (
	"bytes"
	"encoding/binary"

	"github.com/canopy-network/ics23verify/lib"
	"github.com/canopy-network/ics23verify/lib/crypto"
	"google.golang.org/protobuf/encoding/protowire"
)

// doHash executes the named hash op against preimage. Only SHA256 is ever
// computed; every other identifier is rejected even if it names a real
// algorithm, per SPEC_FULL.md §1's "SHA-256 only" non-goal.
func doHash(op HashOp, preimage []byte) ([]byte, lib.ErrorI) {
	switch op {
	case HashOp_SHA256:
		return crypto.Hash(preimage), nil
	default:
		return nil, ErrUnsupportedHashOp(op)
	}
}

// doHashOrNoop is doHash except NO_HASH passes its input through unchanged.
func doHashOrNoop(op HashOp, preimage []byte) ([]byte, lib.ErrorI) {
	if op == HashOp_NO_HASH {
		return preimage, nil
	}
	return doHash(op, preimage)
}

// doLengthOp prefixes (or validates the length of) b per op.
func doLengthOp(op LengthOp, b []byte) ([]byte, lib.ErrorI) {
	switch op {
	case LengthOp_NO_PREFIX:
		return b, nil
	case LengthOp_VAR_PROTO:
		return append(protowire.AppendVarint(nil, uint64(len(b))), b...), nil
	case LengthOp_FIXED32_LITTLE:
		prefix := make([]byte, 4)
		binary.LittleEndian.PutUint32(prefix, uint32(len(b)))
		return append(prefix, b...), nil
	case LengthOp_REQUIRE_32_BYTES:
		if len(b) != 32 {
			return nil, ErrLengthMismatch(32, len(b))
		}
		return b, nil
	case LengthOp_REQUIRE_64_BYTES:
		if len(b) != 64 {
			return nil, ErrLengthMismatch(64, len(b))
		}
		return b, nil
	default:
		return nil, ErrUnsupportedLengthOp(op)
	}
}

// applyLeaf computes the leaf digest for (key, value) under op.
func applyLeaf(op *LeafOp, key, value []byte) ([]byte, lib.ErrorI) {
	if len(key) == 0 {
		return nil, ErrMissingKey()
	}
	if len(value) == 0 {
		return nil, ErrMissingValue()
	}
	pkeyHash, err := doHashOrNoop(op.PrehashKey, key)
	if err != nil {
		return nil, err
	}
	pkey, err := doLengthOp(op.Length, pkeyHash)
	if err != nil {
		return nil, err
	}
	pvalueHash, err := doHashOrNoop(op.PrehashValue, value)
	if err != nil {
		return nil, err
	}
	pvalue, err := doLengthOp(op.Length, pvalueHash)
	if err != nil {
		return nil, err
	}
	preimage := bytes.Join([][]byte{op.Prefix, pkey, pvalue}, nil)
	return doHash(op.Hash, preimage)
}

// applyInner computes the parent digest for child under op.
func applyInner(op *InnerOp, child []byte) ([]byte, lib.ErrorI) {
	if len(child) == 0 {
		return nil, ErrMissingChild()
	}
	preimage := bytes.Join([][]byte{op.Prefix, child, op.Suffix}, nil)
	return doHash(op.Hash, preimage)
}
