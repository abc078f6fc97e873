// Package config resolves process configuration once at startup: the
// Counterparty API endpoint, the Bitcoin node RPC endpoint, and the optional
// signing secrets. Nothing else in the repository reads the environment;
// the resolved values are passed down explicitly.
package config

import (
	"os"
	"path/filepath"
)

// Config holds everything the adapter process needs.
type Config struct {
	// APIURL is the base URL of the Counterparty API v2 endpoint.
	APIURL string

	// RPCURL, RPCUser, RPCPass configure the Bitcoin node used for
	// broadcasting. Empty RPCURL disables broadcasting.
	RPCURL  string
	RPCUser string
	RPCPass string

	// Network names the chain: mainnet, testnet, or regtest.
	Network string

	// DataDir is where the signed-transaction store lives.
	DataDir string

	// SigningKey (WIF) and SigningAddress are the optional local signing
	// secrets. Both or neither must be set.
	SigningKey     string
	SigningAddress string
}

// DefaultConfig returns the defaults for a mainnet deployment against the
// public Counterparty API.
func DefaultConfig() Config {
	return Config{
		APIURL:  "https://api.counterparty.io:4000",
		Network: "mainnet",
		DataDir: defaultDataDir(),
	}
}

// FromEnv layers environment variables over the defaults. Unset variables
// leave the default in place.
func FromEnv() Config {
	cfg := DefaultConfig()
	setIfPresent(&cfg.APIURL, "XCP_API_URL")
	setIfPresent(&cfg.RPCURL, "XCP_RPC_URL")
	setIfPresent(&cfg.RPCUser, "XCP_RPC_USER")
	setIfPresent(&cfg.RPCPass, "XCP_RPC_PASS")
	setIfPresent(&cfg.Network, "XCP_NETWORK")
	setIfPresent(&cfg.DataDir, "XCP_DATA_DIR")
	setIfPresent(&cfg.SigningKey, "XCP_SIGNING_KEY")
	setIfPresent(&cfg.SigningAddress, "XCP_SIGNING_ADDRESS")
	return cfg
}

func setIfPresent(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".xcpsigner"
	}
	return filepath.Join(home, ".xcpsigner")
}
