package crypto

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"hash"
)

const (
	HashSize = sha256.Size
)

var (
	// MaxHash is the all-0xFF sentinel value used to bound key ranges
	MaxHash = bytes.Repeat([]byte{0xFF}, HashSize)
	// MinHash is the all-0x00 sentinel value used to bound key ranges
	MinHash = bytes.Repeat([]byte{0x00}, HashSize)
)

/*
	Hash is a function that takes an input message and returns a fixed-size string of bytes that is unique to the input
    to produce a short, fixed-length representation of the data, which can be used for various applications like data
    integrity checks. This module only ever computes SHA-256; any other hash identifier seen in a proof is rejected
    rather than executed (see ics23.doHash).
*/

// Hasher() returns the global hashing algorithm used
func Hasher() hash.Hash { return sha256.New() }

// Hash() executes the global hashing algorithm on input bytes
func Hash(msg []byte) []byte {
	h := sha256.Sum256(msg)
	return h[:]
}

// HashString() returns the hex byte version of a hash
func HashString(msg []byte) string { return hex.EncodeToString(Hash(msg)) }
