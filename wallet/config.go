package wallet

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
)

// SigningConfig holds the one key/address pair this process signs for.
// It is built once at startup and never mutated afterwards. PrivKey is the
// raw 32-byte scalar; call Zero on shutdown to wipe it.
type SigningConfig struct {
	PrivKey    []byte
	Compressed bool
	Address    string
	Type       AddressType
}

// NewSigningConfig builds the process signing configuration from a WIF
// string and its address. Both empty returns (nil, nil): signing is simply
// not configured. Exactly one set is a configuration error, surfaced to the
// caller as a startup diagnostic rather than tolerated.
//
// The address is classified by prefix and then cross-checked against the
// decoded key: the address derived from the key for that script type (on
// mainnet or testnet) must reproduce the configured string. A pair that does
// not correspond is rejected before any signing can happen.
func NewSigningConfig(wif, address string) (*SigningConfig, error) {
	if wif == "" && address == "" {
		return nil, nil
	}
	if wif == "" || address == "" {
		return nil, ErrPartialSecrets
	}

	key, compressed, err := DecodeWIF(wif)
	if err != nil {
		return nil, err
	}

	cfg := &SigningConfig{
		PrivKey:    key,
		Compressed: compressed,
		Address:    address,
		Type:       ClassifyAddress(address),
	}

	if err := cfg.checkKeyMatchesAddress(); err != nil {
		cfg.Zero()
		return nil, err
	}
	return cfg, nil
}

// Zero overwrites the private key bytes. The config must not be used for
// signing afterwards.
func (c *SigningConfig) Zero() {
	for i := range c.PrivKey {
		c.PrivKey[i] = 0
	}
}

// checkKeyMatchesAddress derives the address for the config's key and script
// type on mainnet and testnet and requires one of them to equal the
// configured address.
func (c *SigningConfig) checkKeyMatchesAddress() error {
	priv, pub := btcec.PrivKeyFromBytes(c.PrivKey)
	defer priv.Zero()

	for _, params := range []*chaincfg.Params{&chaincfg.MainNetParams, &chaincfg.TestNet3Params} {
		derived, err := deriveAddress(pub, c.Compressed, c.Type, params)
		if err != nil {
			return err
		}
		if derived == c.Address {
			return nil
		}
	}
	return fmt.Errorf("%w: %s key does not produce %q", ErrKeyAddressMismatch, c.Type, c.Address)
}

// deriveAddress encodes pub as an address of the given script type. Witness
// and taproot programs always use the compressed serialization; only legacy
// P2PKH honors an uncompressed-key WIF.
func deriveAddress(pub *btcec.PublicKey, compressed bool, t AddressType, params *chaincfg.Params) (string, error) {
	serialized := pub.SerializeCompressed()
	if t == P2PKH && !compressed {
		serialized = pub.SerializeUncompressed()
	}
	pubKeyHash := btcutil.Hash160(serialized)

	var (
		addr btcutil.Address
		err  error
	)
	switch t {
	case P2PKH:
		addr, err = btcutil.NewAddressPubKeyHash(pubKeyHash, params)
	case P2WPKH:
		addr, err = btcutil.NewAddressWitnessPubKeyHash(pubKeyHash, params)
	case NestedP2WPKH:
		var redeem []byte
		redeem, err = txscript.NewScriptBuilder().
			AddOp(txscript.OP_0).AddData(pubKeyHash).Script()
		if err == nil {
			addr, err = btcutil.NewAddressScriptHash(redeem, params)
		}
	case P2TR:
		outputKey := txscript.ComputeTaprootKeyNoScript(pub)
		addr, err = btcutil.NewAddressTaproot(schnorr.SerializePubKey(outputKey), params)
	default:
		return "", fmt.Errorf("wallet: unknown address type %d", t)
	}
	if err != nil {
		return "", fmt.Errorf("wallet: derive %s address: %w", t, err)
	}
	return addr.EncodeAddress(), nil
}
