package webcat

import (
	"fmt"

	"github.com/canopy-network/ics23verify/lib"
)

// webcatModule groups every error this package raises, mirroring
// ics23's and store/error.go's one-module-per-package convention.
const webcatModule lib.ErrorModule = "webcat"

const (
	CodeRootMismatch lib.ErrorCode = iota + 1
	CodeMissingProofBytes
	CodeChainVerificationFailed
	CodeInvalidCanonicalKey
)

func ErrRootMismatch() lib.ErrorI {
	return lib.NewError(CodeRootMismatch, webcatModule, "reconstructed canonical root does not match the declared canonical_root_hash")
}

func ErrMissingProofBytes() lib.ErrorI {
	return lib.NewError(CodeMissingProofBytes, webcatModule, "proof_bytes is empty; no existence proof to chain to the app hash")
}

func ErrChainVerificationFailed() lib.ErrorI {
	return lib.NewError(CodeChainVerificationFailed, webcatModule, "canonical root failed to verify as an existence proof against the app hash")
}

func ErrInvalidCanonicalKey(key string) lib.ErrorI {
	return lib.NewError(CodeInvalidCanonicalKey, webcatModule, fmt.Sprintf("leaf key %q is not a valid canonical key", key))
}
