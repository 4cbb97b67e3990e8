package ics23

import (
	"bytes"
	"context"

	"github.com/canopy-network/ics23verify/lib"
	"golang.org/x/sync/errgroup"
)

// loggerOrNull returns loggers[0] if one was supplied, otherwise a logger
// that discards everything, so the logging parameter stays optional at
// every call site without a nil check at every call site.
func loggerOrNull(loggers []lib.LoggerI) lib.LoggerI {
	if len(loggers) > 0 && loggers[0] != nil {
		return loggers[0]
	}
	return lib.NewNullLogger()
}

// findExistence locates, within a decompressed proof, the existence proof
// whose key matches key. Returns nil if none applies.
func findExistence(proof *CommitmentProof, key []byte) *ExistenceProof {
	if proof.Exist != nil && bytes.Equal(proof.Exist.Key, key) {
		return proof.Exist
	}
	if proof.Batch != nil {
		for _, e := range proof.Batch.Entries {
			if e.Exist != nil && bytes.Equal(e.Exist.Key, key) {
				return e.Exist
			}
		}
	}
	return nil
}

// findNonExistence locates, within a decompressed proof, the
// non-existence proof whose key matches key. Returns nil if none applies.
func findNonExistence(proof *CommitmentProof, key []byte) *NonExistenceProof {
	if proof.Nonexist != nil && bytes.Equal(proof.Nonexist.Key, key) {
		return proof.Nonexist
	}
	if proof.Batch != nil {
		for _, e := range proof.Batch.Entries {
			if e.Nonexist != nil && bytes.Equal(e.Nonexist.Key, key) {
				return e.Nonexist
			}
		}
	}
	return nil
}

// VerifyMembership reports whether proof witnesses that key maps to value
// under root. Internal failures of any kind (malformed proof, spec
// violation, root mismatch) collapse to false; this never panics or
// returns an error to the caller, per SPEC_FULL.md §7's catch-at-the-top
// policy.
func VerifyMembership(proof *CommitmentProof, spec *ProofSpec, root, key, value []byte) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	if proof == nil {
		return false
	}
	norm := Decompress(proof)
	e := findExistence(norm, key)
	if e == nil {
		return false
	}
	return VerifyExistence(e, spec, root, key, value) == nil
}

// VerifyNonMembership reports whether proof witnesses that key is absent
// from the mapping committed to by root.
func VerifyNonMembership(proof *CommitmentProof, spec *ProofSpec, root, key []byte) bool {
	if proof == nil {
		return false
	}
	norm := Decompress(proof)
	ne := findNonExistence(norm, key)
	if ne == nil {
		return false
	}
	return VerifyNonExistence(ne, spec, root, key) == nil
}

// KVPair is one queried (key, value) pair for BatchVerifyMembership.
type KVPair struct {
	Key   []byte
	Value []byte
}

// BatchVerifyMembership reports whether proof witnesses every (key,
// value) pair in items. Each pair is checked concurrently via
// errgroup, matching the independent, stateless, CPU-bound verification
// model of SPEC_FULL.md §5 — the same fan-out pattern the teacher's
// p2p/encrypt.go uses for independent hashing work. The first failure
// cancels the remaining lookups and the call returns false; there is no
// partial success. logger is optional — pass none to discard diagnostics.
func BatchVerifyMembership(proof *CommitmentProof, spec *ProofSpec, root []byte, items []KVPair, logger ...lib.LoggerI) bool {
	if proof == nil || len(items) == 0 {
		return false
	}
	l := loggerOrNull(logger)
	norm := Decompress(proof)
	g, ctx := errgroup.WithContext(context.Background())
	for _, item := range items {
		item := item
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			e := findExistence(norm, item.Key)
			if e == nil {
				return ErrNoApplicableProof()
			}
			if err := VerifyExistence(e, spec, root, item.Key, item.Value); err != nil {
				l.Debugf("batch membership check failed for key %x: %s", item.Key, err.Error())
				return err
			}
			return nil
		})
	}
	return g.Wait() == nil
}

// BatchVerifyNonMembership reports whether proof witnesses the absence of
// every key in keys. See BatchVerifyMembership for the concurrency model
// and the optional logger parameter.
func BatchVerifyNonMembership(proof *CommitmentProof, spec *ProofSpec, root []byte, keys [][]byte, logger ...lib.LoggerI) bool {
	if proof == nil || len(keys) == 0 {
		return false
	}
	l := loggerOrNull(logger)
	norm := Decompress(proof)
	g, ctx := errgroup.WithContext(context.Background())
	for _, key := range keys {
		key := key
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			ne := findNonExistence(norm, key)
			if ne == nil {
				return ErrNoApplicableProof()
			}
			if err := VerifyNonExistence(ne, spec, root, key); err != nil {
				l.Debugf("batch non-membership check failed for key %x: %s", key, err.Error())
				return err
			}
			return nil
		})
	}
	return g.Wait() == nil
}
