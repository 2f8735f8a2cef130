package ident

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	mathrand "math/rand/v2"
)

// letters is the alphabet used for document identifiers and generated names.
const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const (
	documentIDLength  = 5
	defaultNameLength = 22
	keySecretBytes    = 16
)

// DocumentID returns a short random document identifier. Collisions are not
// checked here; the storage layer's unique index on "id" is the guard.
func DocumentID() string {
	return randomLetters(documentIDLength)
}

// DefaultName returns a generated document name used when the caller
// omits one.
func DefaultName() string {
	return randomLetters(defaultNameLength)
}

// KeySecret returns a hex-encoded 128-bit bearer secret drawn from the
// system CSPRNG.
func KeySecret() (string, error) {
	b := make([]byte, keySecretBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("key secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// KeyID returns a formatted API key identifier: a random 24-bit integer,
// hex-encoded and zero-padded, with a fixed "0x" prefix.
func KeyID() (string, error) {
	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("key id: %w", err)
	}
	n := uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
	return fmt.Sprintf("0x%06x", n), nil
}

// randomLetters uses math/rand: document identifiers are not credentials,
// and storage-level uniqueness constraints are authoritative anyway.
func randomLetters(n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = letters[mathrand.IntN(len(letters))]
	}
	return string(out)
}
