package codegen

import "crypto/rand"

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Code returns a random uppercase alphanumeric string of length n.
// Collisions are negligible at the lengths used here; storage still
// carries a unique index and the caller retries once on a duplicate.
func Code(n int) string {
	b := make([]byte, n)
	rand.Read(b)
	for i := range b {
		b[i] = alphabet[int(b[i])%len(alphabet)]
	}
	return string(b)
}
