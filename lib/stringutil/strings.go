package stringutil

import "math/rand/v2"

const lowerAlphanumeric = "abcdefghijklmnopqrstuvwxyz0123456789"

// Empty returns true if any of the values are empty.
func Empty(vals ...string) bool {
	for _, val := range vals {
		if val == "" {
			return true
		}
	}

	return false
}

func stringWithCharset(length int, charset string) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.IntN(len(charset))]
	}
	return string(b)
}

// Random returns a lowercase alphanumeric string, safe to use inside table names and object paths.
func Random(length int) string {
	return stringWithCharset(length, lowerAlphanumeric)
}
