package config

import "errors"

var (
	// ErrInvalidNetwork indicates the network name is not recognized.
	ErrInvalidNetwork = errors.New("config: invalid network (must be \"mainnet\", \"testnet\", or \"regtest\")")

	// ErrEmptyAPIURL indicates no Counterparty API endpoint is configured.
	ErrEmptyAPIURL = errors.New("config: API URL must not be empty")

	// ErrInvalidURL indicates an endpoint URL is malformed.
	ErrInvalidURL = errors.New("config: invalid endpoint URL")

	// ErrEmptyDataDir indicates the data directory path is empty.
	ErrEmptyDataDir = errors.New("config: data directory must not be empty")

	// ErrPartialSigningSecrets indicates exactly one of the signing key and
	// address is configured.
	ErrPartialSigningSecrets = errors.New("config: signing key and address must be configured together")
)
