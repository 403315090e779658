package service

import (
	"crypto/rand"
)

// Suffix lengths for generated identifiers.
const (
	UsernameSuffixLength = 4
	BlogIDSuffixLength   = 21
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// randomID returns an n-character random string over a URL-safe alphabet.
// Used for username collision suffixes and blog_id suffixes.
func randomID(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails if the OS entropy source is broken
		panic(err)
	}

	for i, b := range buf {
		buf[i] = idAlphabet[int(b)%len(idAlphabet)]
	}
	return string(buf)
}
