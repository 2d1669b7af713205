package hash

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// pinIterations slows brute-forcing of the 4-8 digit PIN space.
const pinIterations = 5000

// SHA256Hex returns the hex-encoded SHA256 hash of the input string.
func SHA256Hex(input string) string {
	h := sha256.Sum256([]byte(input))
	return hex.EncodeToString(h[:])
}

// IteratedSHA256 applies SHA256 iteratively n times to produce a derived hash.
func IteratedSHA256(input string, iterations int) string {
	data := []byte(input)
	for range iterations {
		h := sha256.Sum256(data)
		data = h[:]
	}
	return hex.EncodeToString(data)
}

// HashPIN derives the stored hash of a parent PIN with a per-profile salt.
func HashPIN(pin, salt string) string {
	return IteratedSHA256(salt+pin, pinIterations)
}

// VerifyPIN compares a candidate PIN against the stored hash in constant time.
func VerifyPIN(pin, salt, storedHash string) bool {
	candidate := HashPIN(pin, salt)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(storedHash)) == 1
}
