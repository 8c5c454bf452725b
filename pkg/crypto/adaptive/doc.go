// Package adaptive provides authenticated encryption with automatic
// algorithm selection.
//
// Supported algorithms:
//
//   - AES-256-GCM: preferred on architectures with hardware AES support
//   - ChaCha20-Poly1305: used everywhere else
//
// Ciphertexts carry their random nonce as a prefix, so a Cipher is safe for
// concurrent use and needs no per-message state.
//
// Usage:
//
//	c, err := adaptive.New(key)
//	sealed, err := c.Encrypt(plaintext, aad)
//	plaintext, err := c.Decrypt(sealed, aad)
package adaptive
