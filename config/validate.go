package config

import (
	"fmt"
	"net/url"
)

// validNetworks lists the accepted network names.
var validNetworks = map[string]bool{
	"mainnet": true,
	"testnet": true,
	"regtest": true,
}

// ValidateConfig checks that all configuration values are within acceptable
// ranges and returns the first error encountered, or nil if valid.
func ValidateConfig(cfg Config) error {
	if !validNetworks[cfg.Network] {
		return ErrInvalidNetwork
	}

	if cfg.APIURL == "" {
		return ErrEmptyAPIURL
	}
	if err := validateURL(cfg.APIURL); err != nil {
		return fmt.Errorf("%w: API URL: %w", ErrInvalidURL, err)
	}
	if cfg.RPCURL != "" {
		if err := validateURL(cfg.RPCURL); err != nil {
			return fmt.Errorf("%w: RPC URL: %w", ErrInvalidURL, err)
		}
	}

	if cfg.DataDir == "" {
		return ErrEmptyDataDir
	}

	if (cfg.SigningKey == "") != (cfg.SigningAddress == "") {
		return ErrPartialSigningSecrets
	}

	return nil
}

// validateURL checks that the URL parses and carries an http(s) scheme and
// a host.
func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}
