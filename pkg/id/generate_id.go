package id

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
)

var reID = regexp.MustCompile(`^[a-f0-9]{32}$`)

// New returns a 32-char lowercase hex identifier. Used as the public id for
// loans, repayments and users (the numeric PK never leaves the database).
func New() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// Valid reports whether s is a well-formed public identifier.
func Valid(s string) bool { return reID.MatchString(s) }
