package curve

// ECDH runs the on-curve gate against peer, then computes [priv]peer
// and returns its X coordinate as the raw shared field element.
//
// This is the reference's standalone ecc_ecdh_shared_info: a field
// element, not a derived key. Callers that need a key (the STAKE and
// PKI protocols, or any new caller) run this output through kdf.
func ECDH(priv []Digit, peer *Point) ([FPDigits]Digit, error) {
	var shared [FPDigits]Digit
	var result Point
	if err := gatedMultiply(&result, peer, priv); err != nil {
		return shared, err
	}
	copy(shared[:], result.X())
	return shared, nil
}
