package snapshot

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/yndnr/keyval-go/pkg/crypto/adaptive"
)

// ErrKeyTooShort is returned for encryption secrets below MinKeyLength.
var ErrKeyTooShort = errors.New("snapshot: encryption key too short (minimum 16 bytes)")

const (
	// MinKeyLength is the minimum length of a configured encryption secret.
	MinKeyLength = 16

	derivedKeyLength = 32
	derivationInfo   = "keyval snapshot encryption"
)

// DeriveKey derives a 32-byte cipher key from a configured secret using
// HKDF-SHA256. The derivation is deterministic so a restarted process can
// open snapshots written by an earlier one.
func DeriveKey(secret []byte) ([]byte, error) {
	if len(secret) < MinKeyLength {
		return nil, ErrKeyTooShort
	}

	reader := hkdf.New(sha256.New, secret, nil, []byte(derivationInfo))
	key := make([]byte, derivedKeyLength)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("snapshot: derive key: %w", err)
	}
	return key, nil
}

// NewCipher returns the cipher for secret, or nil when secret is empty.
func NewCipher(secret string, cipherType adaptive.CipherType) (adaptive.Cipher, error) {
	if secret == "" {
		return nil, nil
	}

	key, err := DeriveKey([]byte(secret))
	if err != nil {
		return nil, err
	}
	defer zeroKey(key)

	c, err := adaptive.NewWithType(key, cipherType)
	if err != nil {
		return nil, fmt.Errorf("snapshot: new cipher: %w", err)
	}
	return c, nil
}

func zeroKey(key []byte) {
	for i := range key {
		key[i] = 0
	}
}
