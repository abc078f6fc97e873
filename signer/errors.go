package signer

import "errors"

var (
	// ErrSigningDisabled indicates no key/address pair was configured, so
	// the service can verify but not sign.
	ErrSigningDisabled = errors.New("signer: no signing key configured")

	// ErrInvalidSpendData indicates the caller-supplied lock scripts are not
	// valid hex.
	ErrInvalidSpendData = errors.New("signer: invalid spend data")
)
