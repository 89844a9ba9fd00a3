// Package ecerr holds the sentinel errors shared by every layer above
// the field arithmetic. The reference C implementation overloads a
// single integer return code (0/1, with PKI's q2 overloading 1/2) for
// unrelated failure conditions; callers here get a tagged error
// instead so they can tell "the peer's point is off-curve" apart from
// "the signature didn't verify" without re-deriving it from context.
package ecerr

import "errors"

var (
	// ErrNotOnCurve is returned whenever a point fails the curve-
	// membership check performed before any scalar multiplication of
	// caller- or peer-supplied coordinates.
	ErrNotOnCurve = errors.New("ecerr: point is not on the curve")

	// ErrPointAtInfinity is returned when an operation that requires
	// an affine result would instead produce the point at infinity
	// (e.g. a multiple landing on the identity element).
	ErrPointAtInfinity = errors.New("ecerr: result is the point at infinity")

	// ErrBadSignature is returned by ECDSA verification, and by the
	// PKI protocol's q2 step, when a signature fails to verify.
	ErrBadSignature = errors.New("ecerr: signature verification failed")

	// ErrRNGUnavailable is returned by rng.Require when it is given a
	// nil rng.Source.
	ErrRNGUnavailable = errors.New("ecerr: no random number generator available")

	// ErrZeroSignatureComponent names a signature component that drew
	// zero. No function in this module returns it: SignDigest redraws
	// its nonce until both r and s are nonzero, with no retry limit.
	ErrZeroSignatureComponent = errors.New("ecerr: signature component drew zero")

	// ErrProtocolState is returned when a STAKE or PKI protocol step
	// is called out of order (e.g. calling q2 before q1, or calling a
	// step twice). The reference leaves this as undefined behavior
	// ("the protocol context is in an undefined intermediate state");
	// this package instead rejects it outright.
	ErrProtocolState = errors.New("ecerr: protocol step called out of order")
)
