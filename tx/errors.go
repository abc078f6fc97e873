package tx

import "errors"

var (
	// ErrNilParam indicates a required parameter is nil.
	ErrNilParam = errors.New("tx: required parameter is nil")

	// ErrMalformedTx indicates the hex string does not parse as a transaction.
	ErrMalformedTx = errors.New("tx: malformed transaction")

	// ErrMissingSpendData indicates signing was attempted without the
	// previous-output values and lock scripts the input's script type needs.
	ErrMissingSpendData = errors.New("tx: missing spend data")

	// ErrUnsupportedAddressType indicates the signer has no rule for the
	// configured address's script type.
	ErrUnsupportedAddressType = errors.New("tx: unsupported address type")

	// ErrSigningFailed indicates the signature could not be produced.
	ErrSigningFailed = errors.New("tx: signing failed")
)
