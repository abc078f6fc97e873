// Package wallet handles the single key/address pair this process signs
// with: WIF decoding, address classification, and the immutable
// SigningConfig built from both at startup.
package wallet

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
)

const (
	// WIF version bytes for private keys.
	MainNetKeyVersion = 0x80
	TestNetKeyVersion = 0xef

	// PrivKeyLen is the length of a raw secp256k1 scalar.
	PrivKeyLen = 32

	// compressMarker trails the scalar in a compressed-key WIF payload.
	compressMarker = 0x01
)

// DecodeWIF decodes a wallet-import-format private key. It verifies the
// base58check checksum, accepts mainnet (0x80) and testnet (0xef) version
// bytes, and reads the compression flag from the payload length: 33 bytes
// with a trailing 0x01 means compressed, 32 bytes means uncompressed.
//
// The returned slice is a fresh copy owned by the caller; zero it when done.
func DecodeWIF(encoded string) (key []byte, compressed bool, err error) {
	payload, version, err := base58.CheckDecode(encoded)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrMalformedKey, err)
	}
	if version != MainNetKeyVersion && version != TestNetKeyVersion {
		return nil, false, fmt.Errorf("%w: unknown version byte 0x%02x", ErrMalformedKey, version)
	}

	switch len(payload) {
	case PrivKeyLen + 1:
		if payload[PrivKeyLen] != compressMarker {
			return nil, false, fmt.Errorf("%w: bad compression marker 0x%02x", ErrMalformedKey, payload[PrivKeyLen])
		}
		key = make([]byte, PrivKeyLen)
		copy(key, payload[:PrivKeyLen])
		return key, true, nil
	case PrivKeyLen:
		key = make([]byte, PrivKeyLen)
		copy(key, payload)
		return key, false, nil
	default:
		return nil, false, fmt.Errorf("%w: payload is %d bytes", ErrMalformedKey, len(payload))
	}
}

// EncodeWIF is the exact inverse of DecodeWIF. The version byte selects the
// network: MainNetKeyVersion or TestNetKeyVersion.
func EncodeWIF(key []byte, compressed bool, version byte) (string, error) {
	if len(key) != PrivKeyLen {
		return "", fmt.Errorf("%w: got %d bytes", ErrInvalidKeyLength, len(key))
	}
	payload := make([]byte, 0, PrivKeyLen+1)
	payload = append(payload, key...)
	if compressed {
		payload = append(payload, compressMarker)
	}
	return base58.CheckEncode(payload, version), nil
}
