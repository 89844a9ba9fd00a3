// Package kdf turns a raw shared field element (curve.ECDH's output,
// or a protocol's Q3/Q2 value) into an AES-128 key, and SessionHash
// carries that key the rest of the way to the 16-byte session hash
// the STAKE and PKI protocols actually exchange.
//
// Two key derivations are offered. FromPoint reproduces the
// reference's byte-unpacking exactly, bugs and all, because the
// STAKE and PKI protocols must interoperate with it bit-for-bit.
// FromPointSound is a new, properly specified derivation for
// deployments that don't need that interop and shouldn't inherit the
// weakness.
package kdf

import (
	"io"

	"github.com/achmie/stake/aes128"
	"github.com/minio/sha256-simd"
	"golang.org/x/crypto/hkdf"
)

// Digit matches fp192.Digit / bignum.Digit without importing either,
// keeping this package free of the arithmetic layers.
type Digit = uint32

// KeyBytes is the size of the derived AES-128 key.
const KeyBytes = 16

// FromPoint reproduces the reference's ctx->hash[i] = (Q[i/4] >>
// (i % 4)) & 0xFF loop verbatim.
//
// That shift is by i%4 *bits*, not bytes — the reference evidently
// intended a per-byte unpack (shift by (i%4)*8) and wrote the bit
// count instead. The result only ever touches the bottom four digits
// of Q (indices 0-3; i/4 never reaches 4 or 5 for i in 0..15) and
// each output byte differs from its neighbors by at most a few bits
// of shift, so the 16-byte key has far less than 128 bits of entropy
// even when Q itself is uniformly random. Preserved here only because
// existing STAKE/PKI deployments require byte-for-byte interop with
// it; new deployments should use FromPointSound instead.
func FromPoint(q []Digit) [KeyBytes]byte {
	var key [KeyBytes]byte
	for i := 0; i < KeyBytes; i++ {
		key[i] = byte((q[i/4] >> uint(i%4)) & 0xFF)
	}
	return key
}

// FromPointSound derives an AES-128 key from the full shared field
// element q (little-endian digits) via HKDF-SHA-256, with info used
// as the HKDF info parameter to domain-separate different callers
// (e.g. distinguishing STAKE's Q3 from PKI's Q2, or separating two
// directions of a single exchange).
func FromPointSound(q []Digit, info []byte) ([KeyBytes]byte, error) {
	var key [KeyBytes]byte

	octets := make([]byte, 4*len(q))
	for i, d := range q {
		octets[4*i+0] = byte(d)
		octets[4*i+1] = byte(d >> 8)
		octets[4*i+2] = byte(d >> 16)
		octets[4*i+3] = byte(d >> 24)
	}

	reader := hkdf.New(sha256.New, octets, nil, info)
	if _, err := io.ReadFull(reader, key[:]); err != nil {
		return key, err
	}
	return key, nil
}

// SessionHash derives the STAKE/PKI session hash from q: FromPoint's
// key, AES-128-encrypting an all-zero block. The ciphertext, not the
// key itself, is the session hash (ecc_iotstake_hash / ecc_iotpki_hash
// both key-expand and encrypt; returning the key alone stops one step
// short and isn't interoperable with either).
func SessionHash(q []Digit) [aes128.BlockBytes]byte {
	key := FromPoint(q)
	ek := aes128.ExpandKey(key[:])

	var zero, hash [aes128.BlockBytes]byte
	aes128.Encrypt(hash[:], zero[:], ek)
	return hash
}
