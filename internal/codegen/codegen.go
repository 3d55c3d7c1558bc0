// Package codegen produces classroom join codes and opaque entity IDs.
package codegen

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// codeAlphabet excludes visually confusable characters (0/O, 1/I). Its length
// of 32 divides 256 evenly, so byte-modulo sampling stays uniform.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// CodeLength is the fixed length of a classroom join code.
const CodeLength = 6

// NewCode returns a 6-character join code sampled from the unambiguous
// alphabet. It does not check directory uniqueness; that is the caller's job.
func NewCode() string {
	b := make([]byte, CodeLength)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	code := make([]byte, CodeLength)
	for i := range code {
		code[i] = codeAlphabet[int(b[i])%len(codeAlphabet)]
	}
	return string(code)
}

// NewID returns a process-unique opaque token suitable as a primary key.
func NewID(prefix string) string {
	if prefix == "" {
		return uuid.New().String()
	}
	return prefix + "_" + uuid.New().String()
}

// Normalize trims surrounding whitespace and upper-cases a user-entered code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Validate checks that a normalized code is exactly CodeLength characters
// from the allowed alphabet.
func Validate(code string) error {
	if len(code) != CodeLength {
		return fmt.Errorf("code must have exactly %d characters", CodeLength)
	}
	for _, r := range code {
		if !strings.ContainsRune(codeAlphabet, r) {
			return fmt.Errorf("code contains invalid character %q", r)
		}
	}
	return nil
}
