package ics23

import (
	"fmt"

	"github.com/canopy-network/ics23verify/lib"
)

// ics23Module groups every error this package raises under one ErrorModule,
// mirroring store/error.go's one-module-per-package convention.
const ics23Module lib.ErrorModule = "ics23"

const (
	CodeMissingLeaf ErrorCode = iota + 1
	CodeMissingKey
	CodeMissingValue
	CodeMissingChild
	CodeUnsupportedHashOp
	CodeUnsupportedLengthOp
	CodeLengthMismatch
	CodeMissingSpec
	CodeLeafMismatch
	CodeInnerHashMismatch
	CodePrefixCollision
	CodePrefixOutOfBounds
	CodeDepthOutOfBounds
	CodeRootMismatch
	CodeKeyMismatch
	CodeValueMismatch
	CodeNoNeighbors
	CodeOrderingViolation
	CodeAdjacencyViolation
	CodeNoPaddingMatch
	CodeNoApplicableProof
	CodeUnknownProofType
	CodeEmptyBatch
)

// ErrorCode is a local alias so this file reads naturally; it is identical
// in representation to lib.ErrorCode.
type ErrorCode = lib.ErrorCode

func newErr(code ErrorCode, msg string) lib.ErrorI {
	return lib.NewError(code, ics23Module, msg)
}

func ErrMissingLeaf() lib.ErrorI {
	return newErr(CodeMissingLeaf, "existence proof is missing its leaf operator")
}

func ErrMissingKey() lib.ErrorI {
	return newErr(CodeMissingKey, "proof is missing a key")
}

func ErrMissingValue() lib.ErrorI {
	return newErr(CodeMissingValue, "proof is missing a value")
}

func ErrMissingChild() lib.ErrorI {
	return newErr(CodeMissingChild, "applyInner() called with an empty child digest")
}

func ErrUnsupportedHashOp(op HashOp) lib.ErrorI {
	return newErr(CodeUnsupportedHashOp, fmt.Sprintf("hash op %d is not supported; only SHA256 and NO_HASH are computed", op))
}

func ErrUnsupportedLengthOp(op LengthOp) lib.ErrorI {
	return newErr(CodeUnsupportedLengthOp, fmt.Sprintf("length op %d is not supported", op))
}

func ErrLengthMismatch(want, got int) lib.ErrorI {
	return newErr(CodeLengthMismatch, fmt.Sprintf("expected exactly %d bytes, got %d", want, got))
}

func ErrMissingSpec() lib.ErrorI {
	return newErr(CodeMissingSpec, "proof spec is missing leafSpec or innerSpec")
}

func ErrLeafMismatch() lib.ErrorI {
	return newErr(CodeLeafMismatch, "leaf operator does not match the proof spec's leafSpec")
}

func ErrInnerHashMismatch() lib.ErrorI {
	return newErr(CodeInnerHashMismatch, "inner operator hash does not match the proof spec's innerSpec")
}

func ErrPrefixCollision() lib.ErrorI {
	return newErr(CodePrefixCollision, "inner operator prefix begins with the leaf prefix")
}

func ErrPrefixOutOfBounds() lib.ErrorI {
	return newErr(CodePrefixOutOfBounds, "inner operator prefix length is outside the spec's bounds")
}

func ErrDepthOutOfBounds(depth, min, max int) lib.ErrorI {
	return newErr(CodeDepthOutOfBounds, fmt.Sprintf("path depth %d outside of bounds [%d,%d]", depth, min, max))
}

func ErrRootMismatch() lib.ErrorI {
	return newErr(CodeRootMismatch, "calculated root does not match the supplied root")
}

func ErrKeyMismatch() lib.ErrorI {
	return newErr(CodeKeyMismatch, "proof key does not match the queried key")
}

func ErrValueMismatch() lib.ErrorI {
	return newErr(CodeValueMismatch, "proof value does not match the queried value")
}

func ErrNoNeighbors() lib.ErrorI {
	return newErr(CodeNoNeighbors, "non-existence proof has neither a left nor a right neighbor")
}

func ErrOrderingViolation() lib.ErrorI {
	return newErr(CodeOrderingViolation, "non-existence proof neighbors are not strictly ordered around the key")
}

func ErrAdjacencyViolation() lib.ErrorI {
	return newErr(CodeAdjacencyViolation, "non-existence proof neighbors are not adjacent in the tree")
}

func ErrNoPaddingMatch() lib.ErrorI {
	return newErr(CodeNoPaddingMatch, "inner operator does not match any branch's padding signature")
}

func ErrNoApplicableProof() lib.ErrorI {
	return newErr(CodeNoApplicableProof, "commitment proof has no entry matching the queried key")
}

func ErrUnknownProofType() lib.ErrorI {
	return newErr(CodeUnknownProofType, "commitment proof has none of exist/nonexist/batch/compressed set")
}

func ErrEmptyBatch() lib.ErrorI {
	return newErr(CodeEmptyBatch, "batch proof has no entries")
}
