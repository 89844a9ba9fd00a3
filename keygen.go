package curve

import (
	"github.com/achmie/stake/fp192"
	"github.com/achmie/stake/rng"
)

// KeyPair is a private scalar and its corresponding public point
// [priv]G.
type KeyPair struct {
	Priv [OrderDigits]Digit
	Pub  Point
}

// GenerateKey draws a private scalar from src (or rng.System() when
// src is nil) and derives the matching public point.
//
// The private scalar is drawn at full width and reduced modulo the
// group order; a draw that reduces to 0 or 1 is discarded and redrawn,
// matching the reference's retry-until-at-least-2 behavior (a private
// key of 0 or 1 would make the public key the identity or G itself).
func GenerateKey(src rng.Source) (*KeyPair, error) {
	kp := &KeyPair{}
	for {
		if err := rng.FillOrDefault(src, kp.Priv[:], OrderDigits); err != nil {
			return nil, err
		}
		fp192.ReduceOrder(kp.Priv[:], OrderDigits)
		if kp.Priv[0] > 1 {
			break
		}
		allZeroOrOne := true
		for i := 1; i < OrderDigits; i++ {
			if kp.Priv[i] != 0 {
				allZeroOrOne = false
				break
			}
		}
		if !allZeroOrOne {
			break
		}
	}

	if err := Multiply(&kp.Pub, &Generator, kp.Priv[:]); err != nil {
		return nil, err
	}
	return kp, nil
}
