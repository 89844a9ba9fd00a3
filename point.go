// Package curve implements the secp192r1 elliptic-curve group in
// Jacobian projective coordinates, the signed-digit scalar-
// multiplication ladder, key generation, ECDSA, and ECDH-style
// shared-secret derivation.
//
// A curve with a = -3 (true of secp192r1) admits the doubling
// shortcut used throughout this file; it is not a general-a
// implementation.
package curve

import (
	"github.com/achmie/stake/bignum"
	"github.com/achmie/stake/fp192"
)

// Digit is re-exported so callers assembling keys/signatures don't
// need a separate import just to spell the limb type.
type Digit = bignum.Digit

const (
	// FPDigits is the width of one field element / coordinate.
	FPDigits = fp192.FPDigits
	// OrderDigits is the width of a scalar (private key, nonce, r, s).
	OrderDigits = fp192.OrderDigits
	// orderBits is the bit length of the group order.
	orderBits = OrderDigits * bignum.DigitBits
)

// Point is an affine elliptic-curve point: X then Y, FPDigits digits
// each. The point at infinity has no affine representation and must
// never be stored in a Point; callers that might hit it work in
// Jacobian coordinates instead and check IsInfinity before converting.
type Point [2 * FPDigits]Digit

// X returns the point's X coordinate.
func (p *Point) X() []Digit { return p[:FPDigits] }

// Y returns the point's Y coordinate.
func (p *Point) Y() []Digit { return p[FPDigits:] }

// Bytes serializes p as X then Y, each FPDigits little-endian digits
// packed to little-endian octets.
func (p *Point) Bytes() []byte {
	out := make([]byte, 8*FPDigits)
	for i, d := range p {
		out[4*i+0] = byte(d)
		out[4*i+1] = byte(d >> 8)
		out[4*i+2] = byte(d >> 16)
		out[4*i+3] = byte(d >> 24)
	}
	return out
}

// XBytes serializes p's X coordinate alone as FPDigits little-endian
// digits packed to little-endian octets. The PKI protocol signs and
// verifies its ephemeral public points by feeding this straight to
// SignDigest/VerifyDigest as the "digest" (no hash function applied),
// matching ecc_iotpki_q1/q2's ecc_ecdsa_sign/verify calls over the raw
// X-coordinate octets.
func (p *Point) XBytes() []byte {
	out := make([]byte, 4*FPDigits)
	for i, d := range p.X() {
		out[4*i+0] = byte(d)
		out[4*i+1] = byte(d >> 8)
		out[4*i+2] = byte(d >> 16)
		out[4*i+3] = byte(d >> 24)
	}
	return out
}

// Generator is the base point G of secp192r1.
var Generator = Point{}

func init() {
	copy(Generator.X(), fp192.GenX[:])
	copy(Generator.Y(), fp192.GenY[:])
}

// jacobian is an internal elliptic-curve point in Jacobian projective
// coordinates: (X, Y, Z) represents affine (X/Z^2, Y/Z^3); Z = 0 is
// the point at infinity, conventionally stored here as (1, 1, 0).
type jacobian [3 * FPDigits]Digit

func (p *jacobian) X() []Digit { return p[:FPDigits] }
func (p *jacobian) Y() []Digit { return p[FPDigits : 2*FPDigits] }
func (p *jacobian) Z() []Digit { return p[2*FPDigits:] }

// IsInfinity reports whether p represents the point at infinity.
func (p *jacobian) IsInfinity() bool { return fp192.IsZero(p.Z()) }

// setInfinity sets p to the (1, 1, 0) point-at-infinity representation.
func (p *jacobian) setInfinity() {
	bignum.AssignDigit(p.X(), 1, FPDigits)
	bignum.AssignDigit(p.Y(), 1, FPDigits)
	bignum.AssignDigit(p.Z(), 0, FPDigits)
}

// setAffine sets p to the Jacobian lift (x, y, 1) of an affine point.
func (p *jacobian) setAffine(src *Point) {
	bignum.Assign(p.X(), src.X(), FPDigits)
	bignum.Assign(p.Y(), src.Y(), FPDigits)
	bignum.AssignDigit(p.Z(), 1, FPDigits)
}

// toAffine converts p (which must not be the point at infinity) to
// affine coordinates in place.
func (p *jacobian) toAffine() {
	z := p.Z()
	fp192.Inv(z)
	fp192.Mul(p.Y(), z)
	fp192.Sqr(z)
	fp192.Mul(p.X(), z)
	fp192.Mul(p.Y(), z)
	bignum.AssignDigit(z, 1, FPDigits)
}

// affine extracts p's affine coordinates into dst. p must not be the
// point at infinity; callers check IsInfinity first.
func (p *jacobian) affine(dst *Point) {
	p.toAffine()
	bignum.Assign(dst.X(), p.X(), FPDigits)
	bignum.Assign(dst.Y(), p.Y(), FPDigits)
}

// double computes p <- [2]p in place, using the a = -3 formulas.
func (p *jacobian) double() {
	t1 := p.X()
	t2 := p.Y()
	t3 := p.Z()

	if fp192.IsZero(t2) || fp192.IsZero(t3) {
		p.setInfinity()
		return
	}

	var t4, t5 [FPDigits]Digit

	bignum.Assign(t4[:], t3, FPDigits)
	fp192.Sqr(t4[:])
	bignum.Assign(t5[:], t1, FPDigits)
	fp192.Sub(t5[:], t4[:])
	fp192.Add(t4[:], t1)
	fp192.Mul(t5[:], t4[:])
	bignum.Assign(t4[:], t5[:], FPDigits)
	fp192.Add(t4[:], t4[:])
	fp192.Add(t4[:], t5[:])

	fp192.Mul(t3, t2)
	fp192.Add(t3, t3)
	fp192.Sqr(t2)
	bignum.Assign(t5[:], t1, FPDigits)
	fp192.Mul(t5[:], t2)
	fp192.Add(t5[:], t5[:])
	fp192.Add(t5[:], t5[:])
	bignum.Assign(t1, t4[:], FPDigits)
	fp192.Sqr(t1)
	fp192.Sub(t1, t5[:])
	fp192.Sub(t1, t5[:])
	fp192.Sqr(t2)
	fp192.Add(t2, t2)
	fp192.Add(t2, t2)
	fp192.Add(t2, t2)
	fp192.Sub(t5[:], t1)
	fp192.Mul(t5[:], t4[:])
	fp192.Sub(t2, t5[:])
	fp192.Minus(t2)
}

// addSigned computes p <- p + sign*q in place, sign in {+1, -1}. q is
// typically (but need not be) affine-lifted (Z = 1).
func (p *jacobian) addSigned(q *jacobian, sign int) {
	t1 := p.X()
	t2 := p.Y()
	t3 := p.Z()

	var t4, t5, t7 [FPDigits]Digit
	bignum.Assign(t4[:], q.X(), FPDigits)
	bignum.Assign(t5[:], q.Y(), FPDigits)
	if sign < 0 {
		fp192.Minus(t5[:])
	}

	if fp192.IsZero(t3) {
		bignum.Assign(t1, t4[:], FPDigits)
		bignum.Assign(t2, t5[:], FPDigits)
		bignum.Assign(t3, q.Z(), FPDigits)
		return
	}

	if fp192.IsZero(q.Z()) {
		return
	}

	if !fp192.IsOne(q.Z()) {
		bignum.Assign(t7[:], q.Z(), FPDigits)
		fp192.Sqr(t7[:])
		fp192.Mul(t1, t7[:])
		fp192.Mul(t7[:], q.Z())
		fp192.Mul(t2, t7[:])
	}

	bignum.Assign(t7[:], t3, FPDigits)
	fp192.Sqr(t7[:])
	fp192.Mul(t4[:], t7[:])
	fp192.Mul(t7[:], t3)
	fp192.Mul(t5[:], t7[:])
	fp192.Sub(t4[:], t1)
	fp192.Minus(t4[:])
	fp192.Sub(t5[:], t2)
	fp192.Minus(t5[:])

	if fp192.IsZero(t4[:]) {
		if fp192.IsZero(t5[:]) {
			bignum.Assign(p.X(), q.X(), FPDigits)
			bignum.Assign(p.Y(), q.Y(), FPDigits)
			bignum.Assign(p.Z(), q.Z(), FPDigits)
			if sign < 0 {
				fp192.Minus(p.Y())
			}
			p.double()
			return
		}
		p.setInfinity()
		return
	}

	fp192.Add(t1, t1)
	fp192.Sub(t1, t4[:])
	fp192.Add(t2, t2)
	fp192.Sub(t2, t5[:])

	if !fp192.IsOne(q.Z()) {
		fp192.Mul(t3, q.Z())
	}
	fp192.Mul(t3, t4[:])

	bignum.Assign(t7[:], t4[:], FPDigits)
	fp192.Sqr(t7[:])
	fp192.Mul(t4[:], t7[:])
	fp192.Mul(t7[:], t1)
	bignum.Assign(t1, t5[:], FPDigits)
	fp192.Sqr(t1)
	fp192.Sub(t1, t7[:])
	fp192.Sub(t7[:], t1)
	fp192.Sub(t7[:], t1)
	fp192.Mul(t5[:], t7[:])
	fp192.Mul(t4[:], t2)
	bignum.Assign(t2, t5[:], FPDigits)
	fp192.Sub(t2, t4[:])
	fp192.Mul(t2, fp192.InvOf2[:])
}
