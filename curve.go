package curve

import (
	"github.com/achmie/stake/ecerr"
	"github.com/achmie/stake/fp192"
	"github.com/minio/sha256-simd"
)

// three is the field element 3, used by the curve-equation gate's
// (x^2 - 3)x term.
var three = [FPDigits]Digit{3}

// onCurve reports whether the curve equation holds for both g and p
// at once: y_g^2 - y_p^2 == (x_g^2 - 3)x_g - (x_p^2 - 3)x_p.
//
// The reference computes this two-point form (ecc_multiplication's
// gate) rather than checking p alone against y^2 = x^3 - 3x + b,
// because it never stores b directly — it only ever needs "is p on
// the same curve as the generator", which the difference form checks
// without needing b at all.
func onCurve(g, p *Point) bool {
	var lhs, rhs, t1, t2 [FPDigits]Digit

	// lhs = y_g^2 - y_p^2
	copy(lhs[:], g.Y())
	fp192.Sqr(lhs[:])
	copy(t1[:], p.Y())
	fp192.Sqr(t1[:])
	fp192.Sub(lhs[:], t1[:])

	// rhs = (x_g^2 - 3)*x_g - (x_p^2 - 3)*x_p
	copy(t1[:], g.X())
	fp192.Sqr(t1[:])
	fp192.Sub(t1[:], three[:])
	fp192.Mul(t1[:], g.X())

	copy(t2[:], p.X())
	fp192.Sqr(t2[:])
	fp192.Sub(t2[:], three[:])
	fp192.Mul(t2[:], p.X())

	copy(rhs[:], t1[:])
	fp192.Sub(rhs[:], t2[:])

	fp192.Sub(lhs[:], rhs[:])
	return fp192.IsZero(lhs[:])
}

// gatedMultiply runs the on-curve gate against the generator before
// multiplying p by m; every entry point that scalar-multiplies a
// caller- or peer-supplied point (as opposed to a point this package
// itself derived, such as its own public key) goes through this.
func gatedMultiply(dst *Point, p *Point, m []Digit) error {
	if !onCurve(&Generator, p) {
		return ecerr.ErrNotOnCurve
	}
	return Multiply(dst, p, m)
}

// GatedMultiply is gatedMultiply exported for the STAKE/PKI protocol
// packages, which must reject an off-curve peer-supplied point before
// ever multiplying by it (spec.md section 7's "Rejects if ... off-
// curve" clauses).
func GatedMultiply(dst *Point, p *Point, m []Digit) error {
	return gatedMultiply(dst, p, m)
}

// HashSHA256 is the default digest helper used by the package-level
// Sign/Verify convenience wrappers. ECDSA over secp192r1 does not
// mandate a particular digest; callers that need a specific one
// (interop with a fixed test vector, a protocol that pins SHA-1, …)
// should hash the message themselves and call SignDigest/VerifyDigest.
func HashSHA256(msg []byte) []byte {
	sum := sha256.Sum256(msg)
	return sum[:]
}
