package curve

import (
	"github.com/achmie/stake/bignum"
	"github.com/achmie/stake/ecerr"
)

// bit returns bit i (0 = least significant) of the OrderDigits-digit
// scalar m. Indices at or beyond orderBits read as 0, matching the
// reference's treatment of the ladder's one-past-the-end iteration.
func bit(m []Digit, i int) Digit {
	if i < 0 || i >= orderBits {
		return 0
	}
	return (m[i/bignum.DigitBits] >> uint(i%bignum.DigitBits)) & 1
}

// Multiply computes dst = [m]p using a signed-digit ladder that walks
// m from its least significant bit upward, doubling the base point
// each step: at each step it recodes two adjacent bits of m into a
// signed digit s in {-1, 0, 1} via a running carry, so the same
// addSigned/double pair handles every step uniformly (no separate
// "subtract" routine is needed — sign is a parameter of addition).
//
// Reports ecerr.ErrPointAtInfinity if [m]p is the identity, rather
// than returning it as an affine point (which has no representation
// for infinity).
func Multiply(dst *Point, p *Point, m []Digit) error {
	var t, tp jacobian
	t.setInfinity()
	tp.setAffine(p)

	var k, c Digit = bit(m, 0), 0
	for i := 0; i < orderBits+1; i++ {
		var kNext Digit
		if i < orderBits-1 {
			kNext = bit(m, i+1)
		}
		cNext := (k + kNext + c) / 2
		s := int(k) + int(c) - 2*int(cNext)
		k, c = kNext, cNext

		if s != 0 {
			t.addSigned(&tp, s)
		}
		tp.double()
	}

	if t.IsInfinity() {
		return ecerr.ErrPointAtInfinity
	}
	t.affine(dst)
	return nil
}

// ScalarProduct computes dst = [mp]p + [mq]q simultaneously via
// Shamir's trick: one doubling per bit shared between both scalars,
// with the P+Q combination precomputed once so mixed bit-pairs cost a
// single addition instead of two.
func ScalarProduct(dst *Point, p, q *Point, mp, mq []Digit) error {
	var t, tp, tq, tpq jacobian
	t.setInfinity()
	tp.setAffine(p)
	tq.setAffine(q)
	tpq.setAffine(p)
	tpq.addSigned(&tq, 1)

	for i := orderBits - 1; i >= 0; i-- {
		t.double()
		mpi, mqi := bit(mp, i), bit(mq, i)
		switch {
		case mpi == 1 && mqi == 1:
			t.addSigned(&tpq, 1)
		case mpi == 1:
			t.addSigned(&tp, 1)
		case mqi == 1:
			t.addSigned(&tq, 1)
		}
	}

	if t.IsInfinity() {
		return ecerr.ErrPointAtInfinity
	}
	t.affine(dst)
	return nil
}
