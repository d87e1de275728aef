// Package password derives and verifies salted credential records.
//
// A record is the hex-encoded salt and PBKDF2-SHA512 digest joined by a
// colon, so it is self-describing and needs no separate salt column.
package password

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLen    = 16
	iterations = 1000
	keyLen     = 64
)

// Hash derives a fresh salted record for the given password. Each call
// generates a new random salt, so hashing the same password twice yields
// different records.
func Hash(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	digest := pbkdf2.Key([]byte(password), salt, iterations, keyLen, sha512.New)
	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(digest), nil
}

// Verify reports whether the supplied password matches the stored record.
// The digest comparison is constant-time. Malformed records verify false.
func Verify(record, supplied string) bool {
	salt, digest, ok := splitRecord(record)
	if !ok {
		return false
	}
	recomputed := pbkdf2.Key([]byte(supplied), salt, iterations, keyLen, sha512.New)
	return subtle.ConstantTimeCompare(digest, recomputed) == 1
}

func splitRecord(record string) (salt, digest []byte, ok bool) {
	parts := strings.Split(record, ":")
	if len(parts) != 2 {
		return nil, nil, false
	}
	salt, err := hex.DecodeString(parts[0])
	if err != nil {
		return nil, nil, false
	}
	digest, err = hex.DecodeString(parts[1])
	if err != nil {
		return nil, nil, false
	}
	return salt, digest, true
}
