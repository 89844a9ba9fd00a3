// Package fp192 implements F_p arithmetic for the fixed secp192r1
// prime field, plus reduction modulo the curve's generator order.
//
// A field element is FPDigits little-endian 32-bit digits representing
// an integer in [0, Prime). Every exported operation here both takes
// and leaves its operands in that range; callers never need to
// normalize a value before or after calling into this package.
package fp192

import "github.com/achmie/stake/bignum"

// Digit is re-exported from bignum so callers don't need two imports
// for one notion of "a limb of a curve-sized number".
type Digit = bignum.Digit

const (
	// FPDigits is the number of 32-bit digits in a field element (192 bits).
	FPDigits = 6
	// OrderDigits is the number of 32-bit digits in the group order (192 bits).
	OrderDigits = 6
)

// Prime is p = 2^192 - 2^64 - 1, little-endian digits.
var Prime = [FPDigits]Digit{
	0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFE, 0xFFFFFFFF,
	0xFFFFFFFF, 0xFFFFFFFF,
}

// InvOf2 is the inverse of 2 modulo Prime, precomputed.
var InvOf2 = [FPDigits]Digit{
	0x00000000, 0x80000000, 0xFFFFFFFF, 0xFFFFFFFF,
	0xFFFFFFFF, 0x7FFFFFFF,
}

// GenX, GenY are the affine coordinates of the curve's base point G.
var GenX = [FPDigits]Digit{
	0x82FF1012, 0xF4FF0AFD, 0x43A18800, 0x7CBF20EB,
	0xB03090F6, 0x188DA80E,
}

var GenY = [FPDigits]Digit{
	0x1E794811, 0x73F977A1, 0x6B24CDD5, 0x631011ED,
	0xFFC8DA78, 0x07192B95,
}

// Order is n, the order of G, little-endian digits.
var Order = [OrderDigits]Digit{
	0xB4D22831, 0x146BC9B1, 0x99DEF836, 0xFFFFFFFF,
	0xFFFFFFFF, 0xFFFFFFFF,
}

// IsZero reports whether x (FPDigits digits) is the zero element.
func IsZero(x []Digit) bool {
	return bignum.CmpDigit(x, 0, FPDigits) == 0
}

// IsOne reports whether x (FPDigits digits) is the element 1.
func IsOne(x []Digit) bool {
	return bignum.CmpDigit(x, 1, FPDigits) == 0
}

// Add computes dst = dst + src mod Prime.
func Add(dst, src []Digit) {
	if bignum.Add(dst, src, FPDigits) != 0 {
		bignum.Sub(dst, Prime[:], FPDigits)
	} else if bignum.Cmp(dst, Prime[:], FPDigits) >= 0 {
		bignum.Sub(dst, Prime[:], FPDigits)
	}
}

// Sub computes dst = dst - src mod Prime.
func Sub(dst, src []Digit) {
	if bignum.Sub(dst, src, FPDigits) != 0 {
		bignum.Add(dst, Prime[:], FPDigits)
	}
}

// Minus computes dst = -dst mod Prime (additive inverse).
func Minus(dst []Digit) {
	if bignum.CmpDigit(dst, 0, FPDigits) != 0 {
		var tmp [FPDigits]Digit
		bignum.Assign(tmp[:], Prime[:], FPDigits)
		bignum.Sub(tmp[:], dst, FPDigits)
		bignum.Assign(dst, tmp[:], FPDigits)
	}
}

// Mul computes dst = dst * src mod Prime.
func Mul(dst, src []Digit) {
	var wide [2 * FPDigits]Digit
	bignum.Mul(wide[:], dst, src, FPDigits)
	ModRed(wide[:])
	bignum.Assign(dst, wide[:], FPDigits)
}

// Sqr computes dst = dst * dst mod Prime.
func Sqr(dst []Digit) {
	var wide [2 * FPDigits]Digit
	bignum.Mul(wide[:], dst, dst, FPDigits)
	ModRed(wide[:])
	bignum.Assign(dst, wide[:], FPDigits)
}

// Inv computes dst = dst^-1 mod Prime.
func Inv(dst []Digit) {
	bignum.PrimeInv(dst, dst, Prime[:], FPDigits)
}

// ModRed reduces the 2*FPDigits-digit value in dst modulo Prime in
// place, exploiting the Solinas form p = 2^192 - 2^64 - 1.
//
// Given low half L and high half H = (h0..h5), the unreduced sum is
//
//	L + H + (H << 64) + shuffle(H) << 128
//
// where shuffle(H) = (h4, h5, h4, h5, 0, 0). The carries from those
// three additions are cleared by repeated subtraction of Prime; one
// final conditional subtraction brings the result into [0, Prime).
func ModRed(dst []Digit) {
	high := dst[FPDigits:]

	carry := bignum.Add(dst, high, FPDigits)
	carry += bignum.Add(dst[2:], high, FPDigits-2)

	var shuffled [FPDigits]Digit
	shuffled[0] = high[FPDigits-2]
	shuffled[1] = high[FPDigits-1]
	shuffled[2] = high[FPDigits-2]
	shuffled[3] = high[FPDigits-1]
	shuffled[4] = 0
	shuffled[5] = 0

	carry += bignum.Add(dst, shuffled[:], FPDigits)

	for carry > 0 {
		carry -= bignum.Sub(dst[:FPDigits], Prime[:], FPDigits)
	}

	if bignum.Cmp(dst[:FPDigits], Prime[:], FPDigits) >= 0 {
		bignum.Sub(dst[:FPDigits], Prime[:], FPDigits)
	}
}

// OrderAdd computes dst = dst + src mod Order.
func OrderAdd(dst, src []Digit) {
	if bignum.Add(dst, src, OrderDigits) != 0 {
		bignum.Sub(dst, Order[:], OrderDigits)
	} else if bignum.Cmp(dst, Order[:], OrderDigits) >= 0 {
		bignum.Sub(dst, Order[:], OrderDigits)
	}
}

// OrderMul computes dst = dst * src mod Order.
func OrderMul(dst, src []Digit) {
	var wide [2 * OrderDigits]Digit
	bignum.Mul(wide[:], dst, src, OrderDigits)
	ReduceOrder(wide[:], 2*OrderDigits)
	bignum.Assign(dst, wide[:], OrderDigits)
}

// OrderInv computes dst = dst^-1 mod Order. Order is odd (its least
// significant digit ends in ...1), so the same binary extended
// Euclidean routine used for field inversion applies unchanged.
func OrderInv(dst []Digit) {
	bignum.PrimeInv(dst, dst, Order[:], OrderDigits)
}

// ReduceOrder reduces the n-digit number in dst (n >= OrderDigits)
// modulo Order, processing one extra high digit at a time.
func ReduceOrder(dst []Digit, n int) {
	for n > OrderDigits {
		n--
		win := dst[n-OrderDigits : n]
		d := dst[n]
		d -= bignum.SubMulDigit(win, Order[:], d, OrderDigits)
		for d != 0 {
			d -= bignum.Sub(win, Order[:], OrderDigits)
		}
		dst[n] = d
	}

	if n == OrderDigits && bignum.Cmp(dst[:OrderDigits], Order[:], OrderDigits) >= 0 {
		bignum.Sub(dst[:OrderDigits], Order[:], OrderDigits)
	}
}
