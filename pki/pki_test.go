package pki

import (
	"testing"

	"github.com/achmie/stake"
	"github.com/achmie/stake/ecerr"
)

func TestFullRunMatchingHashes(t *testing.T) {
	kpA, err := curve.GenerateKey(nil)
	if err != nil {
		t.Fatalf("GenerateKey(A): %v", err)
	}
	kpB, err := curve.GenerateKey(nil)
	if err != nil {
		t.Fatalf("GenerateKey(B): %v", err)
	}

	a, err := Init(kpA.Priv[:], &kpB.Pub, nil)
	if err != nil {
		t.Fatalf("Init(A): %v", err)
	}
	b, err := Init(kpB.Priv[:], &kpA.Pub, nil)
	if err != nil {
		t.Fatalf("Init(B): %v", err)
	}

	q1A, signA, err := a.Q1(nil)
	if err != nil {
		t.Fatalf("A.Q1: %v", err)
	}
	q1B, signB, err := b.Q1(nil)
	if err != nil {
		t.Fatalf("B.Q1: %v", err)
	}

	if _, err := a.Q2(q1B, signB); err != nil {
		t.Fatalf("A.Q2: %v", err)
	}
	if _, err := b.Q2(q1A, signA); err != nil {
		t.Fatalf("B.Q2: %v", err)
	}

	hashA, err := a.Hash()
	if err != nil {
		t.Fatalf("A.Hash: %v", err)
	}
	hashB, err := b.Hash()
	if err != nil {
		t.Fatalf("B.Hash: %v", err)
	}

	if hashA != hashB {
		t.Fatalf("session hashes diverged: A=%x B=%x", hashA, hashB)
	}
}

func TestBadSignatureRejected(t *testing.T) {
	kpA, _ := curve.GenerateKey(nil)
	kpB, _ := curve.GenerateKey(nil)
	kpMallory, _ := curve.GenerateKey(nil)

	a, err := Init(kpA.Priv[:], &kpB.Pub, nil)
	if err != nil {
		t.Fatalf("Init(A): %v", err)
	}
	b, err := Init(kpB.Priv[:], &kpA.Pub, nil)
	if err != nil {
		t.Fatalf("Init(B): %v", err)
	}

	q1A, _, err := a.Q1(nil)
	if err != nil {
		t.Fatalf("A.Q1: %v", err)
	}

	if _, _, err := b.Q1(nil); err != nil {
		t.Fatalf("B.Q1: %v", err)
	}

	// Mallory signs A's Q1 with Mallory's own key instead of A's.
	forged, err := curve.SignDigest(kpMallory.Priv[:], q1A.XBytes(), nil)
	if err != nil {
		t.Fatalf("forging signature: %v", err)
	}

	if _, err := b.Q2(q1A, forged); err != ecerr.ErrBadSignature {
		t.Fatalf("Q2 with a forged signature returned %v, want ecerr.ErrBadSignature", err)
	}
}

func TestStepsRejectOutOfOrder(t *testing.T) {
	kpA, _ := curve.GenerateKey(nil)
	kpB, _ := curve.GenerateKey(nil)

	c, err := Init(kpA.Priv[:], &kpB.Pub, nil)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	sig, err := curve.Sign(kpB.Priv[:], []byte("x"), nil)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if _, err := c.Q2(&kpB.Pub, sig); err == nil {
		t.Fatalf("Q2 before Q1 should have been rejected")
	}
	if _, err := c.Hash(); err == nil {
		t.Fatalf("Hash before Q1/Q2 should have been rejected")
	}
}
