// Package pki implements the PKI authenticated key-exchange protocol
// state machine: ephemeral Diffie-Hellman authenticated by ECDSA
// signatures over each party's ephemeral public point, producing a
// shared 16-byte session hash.
//
// A Context walks Init -> AfterQ1 -> AfterQ2 -> HashReady.
package pki

import (
	"github.com/achmie/stake"
	"github.com/achmie/stake/ecerr"
	"github.com/achmie/stake/kdf"
	"github.com/achmie/stake/rng"
)

type state int

const (
	stateInit state = iota
	stateAfterQ1
	stateAfterQ2
	stateHashReady
)

// Context holds one party's view of a single PKI exchange.
type Context struct {
	priv    [curve.OrderDigits]curve.Digit
	peerPub curve.Point

	ephPriv [curve.OrderDigits]curve.Digit
	ephPub  curve.Point

	q1 curve.Point
	q2 curve.Point

	state state
}

// Init starts a new exchange, identically to stake.Init: priv is this
// party's long-term private scalar, peerPub the peer's long-term
// public point, and a fresh ephemeral key pair is drawn from src.
func Init(priv []curve.Digit, peerPub *curve.Point, src rng.Source) (*Context, error) {
	kp, err := curve.GenerateKey(src)
	if err != nil {
		return nil, err
	}

	c := &Context{peerPub: *peerPub, ephPub: kp.Pub, state: stateInit}
	copy(c.priv[:], priv)
	copy(c.ephPriv[:], kp.Priv[:])
	return c, nil
}

// Q1 exposes this party's ephemeral public point together with an
// ECDSA signature over its X coordinate (made with the long-term
// private scalar), so the peer can authenticate that the ephemeral
// key belongs to the long-term identity it already trusts. The X
// octets are signed directly as the ECDSA digest, with no hash
// function applied, matching ecc_iotpki_q1's ecc_ecdsa_sign call.
func (c *Context) Q1(src rng.Source) (*curve.Point, *curve.Signature, error) {
	if c.state != stateInit {
		return nil, nil, ecerr.ErrProtocolState
	}
	c.q1 = c.ephPub
	sig, err := curve.SignDigest(c.priv[:], c.q1.XBytes(), src)
	if err != nil {
		return nil, nil, err
	}
	c.state = stateAfterQ1
	return &c.q1, sig, nil
}

// Q2 verifies the peer's signature over their Q1 against this
// party's record of the peer's long-term public point, then computes
// Q2 <- [ephPriv]peerQ1.
//
// Matching the reference's two distinct failure codes: a signature
// failure (including one masking an off-curve long-term key) returns
// ecerr.ErrBadSignature; an off-curve peerQ1 caught by the subsequent
// multiplication returns ecerr.ErrNotOnCurve.
func (c *Context) Q2(peerQ1 *curve.Point, peerSign *curve.Signature) (*curve.Point, error) {
	if c.state != stateAfterQ1 {
		return nil, ecerr.ErrProtocolState
	}
	if err := curve.VerifyDigest(&c.peerPub, peerQ1.XBytes(), peerSign); err != nil {
		return nil, ecerr.ErrBadSignature
	}
	if err := curve.GatedMultiply(&c.q2, peerQ1, c.ephPriv[:]); err != nil {
		return nil, err
	}
	c.state = stateAfterQ2
	return &c.q2, nil
}

// Hash derives the 16-byte session hash from Q2's X coordinate (the
// same convention curve.ECDH uses for its shared-secret output):
// kdf.FromPoint's key, AES-128-encrypted over an all-zero block,
// matching ecc_iotpki_hash's key-expand-then-encrypt rather than
// stopping at the key.
func (c *Context) Hash() ([kdf.KeyBytes]byte, error) {
	if c.state != stateAfterQ2 {
		return [kdf.KeyBytes]byte{}, ecerr.ErrProtocolState
	}
	c.state = stateHashReady
	return kdf.SessionHash(c.q2.X()), nil
}
