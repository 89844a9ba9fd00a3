package curve

import (
	"github.com/achmie/stake/bignum"
	"github.com/achmie/stake/ecerr"
	"github.com/achmie/stake/fp192"
	"github.com/achmie/stake/rng"
)

// Signature is an ECDSA signature (r, s), in that field order —
// matching the reference EcdsaSign struct layout.
type Signature struct {
	R [OrderDigits]Digit
	S [OrderDigits]Digit
}

// digestToScalar truncates digest to the leading
// min(len(digest)/4, OrderDigits) 32-bit words, reinterpreting them
// in place as little-endian digits (not a big-endian integer load),
// and zero-extends any remaining high digits — the reference's
// digest_words rule (digest_words = min(digest_octets*8/32,
// EC_GEN_ORDER_DIGITS)) and its assign(e, (const Digit*)digest,
// digest_words) cast.
func digestToScalar(digest []byte) [OrderDigits]Digit {
	var e [OrderDigits]Digit
	words := len(digest) / 4
	if words > OrderDigits {
		words = OrderDigits
	}
	for i := 0; i < words; i++ {
		b := digest[4*i : 4*i+4]
		e[i] = Digit(b[0]) | Digit(b[1])<<8 | Digit(b[2])<<16 | Digit(b[3])<<24
	}
	return e
}

// drawScalar draws a private-key-shaped nonzero scalar reduced
// modulo the group order, retrying on a zero draw.
func drawScalar(src rng.Source) ([OrderDigits]Digit, error) {
	var k [OrderDigits]Digit
	for {
		if err := rng.FillOrDefault(src, k[:], OrderDigits); err != nil {
			return k, err
		}
		fp192.ReduceOrder(k[:], OrderDigits)
		if bignum.CmpDigit(k[:], 0, OrderDigits) != 0 {
			return k, nil
		}
	}
}

// SignDigest produces an ECDSA signature over a pre-hashed digest
// using private scalar priv, drawing the per-signature nonce k from
// src (or rng.System() when src is nil).
//
// The nested retry — redraw k if r comes out 0, redraw k again if s
// comes out 0 — mirrors the reference's ecc_ecdsa_sign exactly; both
// conditions occur with negligible probability for a sound RNG.
func SignDigest(priv []Digit, digest []byte, src rng.Source) (*Signature, error) {
	e := digestToScalar(digest)

	for {
		k, err := drawScalar(src)
		if err != nil {
			return nil, err
		}

		var r Point
		if err := Multiply(&r, &Generator, k[:]); err != nil {
			continue
		}
		var rOrd [OrderDigits]Digit
		bignum.Assign(rOrd[:], r.X(), OrderDigits)
		fp192.ReduceOrder(rOrd[:], OrderDigits)
		if bignum.CmpDigit(rOrd[:], 0, OrderDigits) == 0 {
			continue
		}

		// s = k^-1 * (e + r*priv) mod n
		var rpriv [OrderDigits]Digit
		bignum.Assign(rpriv[:], rOrd[:], OrderDigits)
		fp192.OrderMul(rpriv[:], priv)

		s := e
		fp192.OrderAdd(s[:], rpriv[:])

		kInv := k
		fp192.OrderInv(kInv[:])
		fp192.OrderMul(s[:], kInv[:])

		if bignum.CmpDigit(s[:], 0, OrderDigits) == 0 {
			continue
		}

		return &Signature{R: rOrd, S: s}, nil
	}
}

// VerifyDigest checks sig against a pre-hashed digest and public
// point pub.
//
// As in the reference, the candidate R = [u1]G + [u2]pub is compared
// to sig.R by its X coordinate directly, without reducing X(R) modulo
// the group order first — see spec.md section 4.4's note on this.
func VerifyDigest(pub *Point, digest []byte, sig *Signature) error {
	if !onCurve(&Generator, pub) {
		return ecerr.ErrNotOnCurve
	}
	if bignum.CmpDigit(sig.R[:], 0, OrderDigits) == 0 || bignum.CmpDigit(sig.S[:], 0, OrderDigits) == 0 {
		return ecerr.ErrBadSignature
	}

	e := digestToScalar(digest)

	sInv := sig.S
	fp192.OrderInv(sInv[:])

	u1 := e
	fp192.OrderMul(u1[:], sInv[:])

	u2 := sig.R
	fp192.OrderMul(u2[:], sInv[:])

	var r Point
	if err := ScalarProduct(&r, &Generator, pub, u1[:], u2[:]); err != nil {
		return ecerr.ErrBadSignature
	}

	if bignum.Cmp(r.X(), sig.R[:], OrderDigits) != 0 {
		return ecerr.ErrBadSignature
	}
	return nil
}

// Sign hashes msg with HashSHA256 and signs the resulting digest.
func Sign(priv []Digit, msg []byte, src rng.Source) (*Signature, error) {
	return SignDigest(priv, HashSHA256(msg), src)
}

// Verify hashes msg with HashSHA256 and verifies sig against it.
func Verify(pub *Point, msg []byte, sig *Signature) error {
	return VerifyDigest(pub, HashSHA256(msg), sig)
}
