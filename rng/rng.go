// Package rng defines the external random-number-generator
// collaborator that the curve, ECDSA and key-exchange layers draw on,
// and a CSPRNG-backed fallback implementation.
//
// spec.md treats the RNG as an external collaborator: "a callable that
// fills n digit-sized words with unpredictable data." The reference C
// implementation accepts a nil function pointer and falls back to
// four concatenated calls to libc rand() — insecure, and explicitly
// called out as such in the Design Notes. This package keeps the
// collaborator interface but drops that fallback: System returns a
// crypto/rand-backed source, FillOrDefault uses it when given a nil
// Source, and Require refuses a nil Source with
// ecerr.ErrRNGUnavailable. No path falls back to weak entropy.
package rng

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/achmie/stake/ecerr"
)

// Digit matches bignum.Digit without importing it, to keep this leaf
// package dependency-free of the arithmetic layers it feeds.
type Digit = uint32

// Source fills dst with n unpredictable digits.
type Source interface {
	Fill(dst []Digit, n int) error
}

// Func adapts a plain function to the Source interface.
type Func func(dst []Digit, n int) error

// Fill implements Source.
func (f Func) Fill(dst []Digit, n int) error { return f(dst, n) }

// systemSource draws entropy from crypto/rand, the CSPRNG every other
// pack repo that needs keys reaches for.
type systemSource struct{}

// Fill implements Source using crypto/rand.
func (systemSource) Fill(dst []Digit, n int) error {
	buf := make([]byte, 4*n)
	if _, err := rand.Read(buf); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		dst[i] = binary.LittleEndian.Uint32(buf[4*i:])
	}
	return nil
}

// System returns the default CSPRNG-backed Source.
func System() Source { return systemSource{} }

// FillOrDefault fills dst with n digits from src, falling back to
// System() when src is nil. Use Require instead when a nil Source
// should be treated as a hard failure (section 6: "a conforming
// implementation MAY require a non-null RNG").
func FillOrDefault(src Source, dst []Digit, n int) error {
	if src == nil {
		src = System()
	}
	return src.Fill(dst, n)
}

// Require fills dst with n digits from src, refusing a nil src with
// ecerr.ErrRNGUnavailable rather than silently falling back.
func Require(src Source, dst []Digit, n int) error {
	if src == nil {
		return ecerr.ErrRNGUnavailable
	}
	return src.Fill(dst, n)
}
