package curve

import (
	"crypto/sha1"
	"testing"

	"github.com/achmie/stake/fp192"
	"github.com/achmie/stake/rng"
	"github.com/davecgh/go-spew/spew"
)

// bigEndianScalar decodes a standard big-endian scalar encoding (the
// convention RFC 6979's x/k/r/s are published in) into an
// OrderDigits-digit little-endian scalar. Unlike digestToScalar, which
// reinterprets a digest's bytes as little-endian words verbatim, this
// does the numeric big-endian-integer conversion the published test
// vectors actually need.
func bigEndianScalar(b []byte) [OrderDigits]Digit {
	var out [OrderDigits]Digit
	for i := 0; i < OrderDigits; i++ {
		off := len(b) - 4*(i+1)
		out[i] = Digit(b[off+3]) | Digit(b[off+2])<<8 | Digit(b[off+1])<<16 | Digit(b[off])<<24
	}
	return out
}

// fixedNonce is an rng.Source that always hands out a single
// precomputed scalar, letting a test force SignDigest's ephemeral k
// to a known value instead of drawing one from the CSPRNG.
type fixedNonce [OrderDigits]Digit

func (f fixedNonce) Fill(dst []rng.Digit, n int) error {
	copy(dst[:n], f[:n])
	return nil
}

func TestGeneratorOnCurve(t *testing.T) {
	if !onCurve(&Generator, &Generator) {
		t.Fatalf("G does not satisfy its own curve-membership check")
	}
}

func TestDoubleMatchesAddToSelf(t *testing.T) {
	var viaDouble, viaAdd jacobian
	viaDouble.setAffine(&Generator)
	viaDouble.double()

	viaAdd.setAffine(&Generator)
	var gLift jacobian
	gLift.setAffine(&Generator)
	viaAdd.addSigned(&gLift, 1)

	var pDouble, pAdd Point
	viaDouble.affine(&pDouble)
	viaAdd.affine(&pAdd)

	if pDouble != pAdd {
		t.Fatalf("[2]G via doubling != G+G via addition:\ndoubling: %saddition: %s", spew.Sdump(pDouble), spew.Sdump(pAdd))
	}
}

func TestAddInverseYieldsInfinity(t *testing.T) {
	neg := Generator
	fp192.Minus(neg.Y())

	var acc, negLift jacobian
	acc.setAffine(&Generator)
	negLift.setAffine(&neg)
	acc.addSigned(&negLift, 1)

	if !acc.IsInfinity() {
		t.Fatalf("G + (-G) did not land at infinity")
	}
}

func TestMultiplyByOrderIsInfinity(t *testing.T) {
	var dst Point
	err := Multiply(&dst, &Generator, fp192.Order[:])
	if err == nil {
		t.Fatalf("[n]G returned an affine point instead of signaling infinity")
	}
}

func TestMultiplyByTwoMatchesDouble(t *testing.T) {
	two := [OrderDigits]Digit{2}
	var viaLadder Point
	if err := Multiply(&viaLadder, &Generator, two[:]); err != nil {
		t.Fatalf("[2]G: %v", err)
	}

	var viaDouble jacobian
	viaDouble.setAffine(&Generator)
	viaDouble.double()
	var want Point
	viaDouble.affine(&want)

	if viaLadder != want {
		t.Fatalf("[2]G via ladder (%#x) != via doubling (%#x)", viaLadder, want)
	}
}

func TestScalarProductMatchesSeparateMultiplies(t *testing.T) {
	mp := [OrderDigits]Digit{3}
	mq := [OrderDigits]Digit{5}

	var combined Point
	if err := ScalarProduct(&combined, &Generator, &Generator, mp[:], mq[:]); err != nil {
		t.Fatalf("ScalarProduct: %v", err)
	}

	var eight Point
	eightDigits := [OrderDigits]Digit{8}
	if err := Multiply(&eight, &Generator, eightDigits[:]); err != nil {
		t.Fatalf("[8]G: %v", err)
	}

	if combined != eight {
		t.Fatalf("[3]G + [5]G via Shamir's trick != [8]G:\nshamir: %sladder: %s", spew.Sdump(combined), spew.Sdump(eight))
	}
}

func TestGeneratedKeyPublicPointIsOnCurve(t *testing.T) {
	kp, err := GenerateKey(nil)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	if !onCurve(&Generator, &kp.Pub) {
		t.Fatalf("generated public key is not on the curve")
	}
}

func TestSignVerifyRoundTrip(t *testing.T) {
	kp, err := GenerateKey(nil)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}

	msg := []byte("sample")
	sig, err := Sign(kp.Priv[:], msg, nil)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if err := Verify(&kp.Pub, msg, sig); err != nil {
		t.Fatalf("Verify: %v", err)
	}

	if err := Verify(&kp.Pub, []byte("tampered"), sig); err == nil {
		t.Fatalf("Verify accepted a signature over the wrong message")
	}
}

// TestECDSAKnownPrivateKey exercises the full RFC 6979 secp192r1/SHA-1
// "sample" test vector (testable property #4): given the vector's
// private key x and its deterministic nonce k forced through a fixed
// rng.Source, SignDigest must reproduce the published (r, s) exactly,
// and VerifyDigest must accept the result. The vector's e is the SHA-1
// digest read as a big-endian integer, while SignDigest reads its
// digest buffer as little-endian words, so the digest is passed with
// its bytes reversed.
func TestECDSAKnownPrivateKey(t *testing.T) {
	priv := bigEndianScalar([]byte{
		0x6F, 0xAB, 0x03, 0x49, 0x34, 0xE4, 0xC0, 0xFC,
		0x9A, 0xE6, 0x7F, 0x5B, 0x56, 0x59, 0xA9, 0xD7,
		0xD1, 0xFE, 0xFD, 0x18, 0x7E, 0xE0, 0x9F, 0xD4,
	})
	k := bigEndianScalar([]byte{
		0x37, 0xD7, 0xCA, 0x00, 0xD2, 0xC7, 0xB0, 0xE5,
		0xE4, 0x12, 0xAC, 0x03, 0xBD, 0x44, 0xBA, 0x83,
		0x7F, 0xDD, 0x5B, 0x28, 0xCD, 0x3B, 0x00, 0x21,
	})
	wantR := bigEndianScalar([]byte{
		0x98, 0xC6, 0xBD, 0x12, 0xB2, 0x3E, 0xAF, 0x5E,
		0x2A, 0x20, 0x45, 0x13, 0x20, 0x86, 0xBE, 0x3E,
		0xB8, 0xEB, 0xD6, 0x2A, 0xBF, 0x66, 0x98, 0xFF,
	})
	wantS := bigEndianScalar([]byte{
		0x57, 0xA2, 0x2B, 0x07, 0xDE, 0xA9, 0x53, 0x0F,
		0x8D, 0xE9, 0x47, 0x1B, 0x1D, 0xC6, 0x62, 0x44,
		0x72, 0xE8, 0xE2, 0x84, 0x4B, 0xC2, 0x5B, 0x64,
	})

	var pub Point
	if err := Multiply(&pub, &Generator, priv[:]); err != nil {
		t.Fatalf("[x]G: %v", err)
	}

	sum := sha1.Sum([]byte("sample"))
	var digest [len(sum)]byte
	for i := range sum {
		digest[i] = sum[len(sum)-1-i]
	}
	sig, err := SignDigest(priv[:], digest[:], fixedNonce(k))
	if err != nil {
		t.Fatalf("SignDigest: %v", err)
	}
	if sig.R != wantR || sig.S != wantS {
		t.Fatalf("SignDigest with the RFC 6979 nonce produced (r, s) != published vector:\ngot:  %swant: %s",
			spew.Sdump(sig), spew.Sdump(Signature{R: wantR, S: wantS}))
	}
	if err := VerifyDigest(&pub, digest[:], sig); err != nil {
		t.Fatalf("VerifyDigest with the RFC 6979 vector: %v", err)
	}
}
