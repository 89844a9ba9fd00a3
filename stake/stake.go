// Package stake implements the STAKE authenticated key-exchange
// protocol state machine: static-ephemeral Diffie-Hellman on both
// parties' long-term and ephemeral key pairs, producing a shared
// 16-byte session hash.
//
// A Context walks Init -> AfterQ1 -> AfterQ2 -> AfterQ3 -> HashReady;
// each step's method is only valid in the state it follows, and
// returns ecerr.ErrProtocolState otherwise.
package stake

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
	stateAfterQ3
	stateHashReady
)

// Context holds one party's view of a single STAKE exchange.
type Context struct {
	priv    [curve.OrderDigits]curve.Digit
	peerPub curve.Point

	ephPriv [curve.OrderDigits]curve.Digit
	ephPub  curve.Point

	q1 curve.Point
	q2 curve.Point
	q3 [curve.FPDigits]curve.Digit

	state state
}

// Init starts a new exchange: priv is this party's long-term private
// scalar, peerPub the other party's long-term public point. A fresh
// ephemeral key pair is drawn from src (or rng.System() if nil).
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

// Q1 computes Q1 <- [ephPriv]peerPub and returns it for transmission
// to the peer. Fails with ecerr.ErrNotOnCurve if this party's own
// record of the peer's long-term public point is off-curve.
func (c *Context) Q1() (*curve.Point, error) {
	if c.state != stateInit {
		return nil, ecerr.ErrProtocolState
	}
	if err := curve.GatedMultiply(&c.q1, &c.peerPub, c.ephPriv[:]); err != nil {
		return nil, err
	}
	c.state = stateAfterQ1
	return &c.q1, nil
}

// Q2 consumes the peer's Q1, computes Q2 <- [ephPriv]peerQ1, and
// returns it for transmission. Fails with ecerr.ErrNotOnCurve if
// peerQ1 is off-curve.
func (c *Context) Q2(peerQ1 *curve.Point) (*curve.Point, error) {
	if c.state != stateAfterQ1 {
		return nil, ecerr.ErrProtocolState
	}
	if err := curve.GatedMultiply(&c.q2, peerQ1, c.ephPriv[:]); err != nil {
		return nil, err
	}
	c.state = stateAfterQ2
	return &c.q2, nil
}

// Q3 consumes the peer's Q2 and computes Q3 <- [priv]peerQ2, using
// this party's long-term private scalar rather than the ephemeral
// one. Fails with ecerr.ErrNotOnCurve if peerQ2 is off-curve.
func (c *Context) Q3(peerQ2 *curve.Point) error {
	if c.state != stateAfterQ2 {
		return ecerr.ErrProtocolState
	}
	var result curve.Point
	if err := curve.GatedMultiply(&result, peerQ2, c.priv[:]); err != nil {
		return err
	}
	copy(c.q3[:], result.X())
	c.state = stateAfterQ3
	return nil
}

// Hash derives the 16-byte session hash from Q3: kdf.FromPoint's key,
// AES-128-encrypted over an all-zero block, matching
// ecc_iotstake_hash's key-expand-then-encrypt rather than stopping at
// the key.
func (c *Context) Hash() ([kdf.KeyBytes]byte, error) {
	if c.state != stateAfterQ3 {
		return [kdf.KeyBytes]byte{}, ecerr.ErrProtocolState
	}
	c.state = stateHashReady
	return kdf.SessionHash(c.q3[:]), nil
}
