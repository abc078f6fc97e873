package wallet

import "errors"

var (
	// ErrMalformedKey indicates the WIF string fails base58check decoding,
	// carries an unknown version byte, or has a wrong payload length.
	ErrMalformedKey = errors.New("wallet: malformed key encoding")

	// ErrPartialSecrets indicates exactly one of the key/address pair is
	// configured. Signing needs both or neither.
	ErrPartialSecrets = errors.New("wallet: signing key and address must be configured together")

	// ErrKeyAddressMismatch indicates the configured address does not belong
	// to the configured private key.
	ErrKeyAddressMismatch = errors.New("wallet: address does not match signing key")

	// ErrInvalidKeyLength indicates a raw private key is not 32 bytes.
	ErrInvalidKeyLength = errors.New("wallet: private key must be 32 bytes")
)
