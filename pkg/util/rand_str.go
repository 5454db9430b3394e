// Package util contains any functions used across the application that don't
// match any other package
package util

import (
	"math/rand"
	"time"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

var src = rand.New(rand.NewSource(time.Now().UnixNano()))

// RandStr returns a random alphabetic string of length n. Used for request
// IDs, so speed matters more than unpredictability.
func RandStr(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = charset[src.Intn(len(charset))]
	}

	return string(b)
}
