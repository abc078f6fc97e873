package tx

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"

	"github.com/xcplabs/libxcp-go/wallet"
)

// testKeyPair returns a fixed secp256k1 key pair for fixtures.
func testKeyPair(t *testing.T) (*btcec.PrivateKey, *btcec.PublicKey) {
	t.Helper()
	keyBytes := bytes.Repeat([]byte{0x2a}, 32)
	priv, pub := btcec.PrivKeyFromBytes(keyBytes)
	return priv, pub
}

// testConfig builds a SigningConfig of the given type for the fixed test key.
func testConfig(t *testing.T, addrType wallet.AddressType) *wallet.SigningConfig {
	t.Helper()
	return &wallet.SigningConfig{
		PrivKey:    bytes.Repeat([]byte{0x2a}, 32),
		Compressed: true,
		Address:    testAddress(t, addrType),
		Type:       addrType,
	}
}

// testAddress derives the mainnet address of the fixed test key for addrType.
func testAddress(t *testing.T, addrType wallet.AddressType) string {
	t.Helper()
	_, pub := testKeyPair(t)
	pubKeyHash := btcutil.Hash160(pub.SerializeCompressed())
	params := &chaincfg.MainNetParams

	var (
		addr btcutil.Address
		err  error
	)
	switch addrType {
	case wallet.P2PKH:
		addr, err = btcutil.NewAddressPubKeyHash(pubKeyHash, params)
	case wallet.P2WPKH:
		addr, err = btcutil.NewAddressWitnessPubKeyHash(pubKeyHash, params)
	case wallet.NestedP2WPKH:
		redeem, rErr := txscript.NewScriptBuilder().
			AddOp(txscript.OP_0).AddData(pubKeyHash).Script()
		require.NoError(t, rErr)
		addr, err = btcutil.NewAddressScriptHash(redeem, params)
	case wallet.P2TR:
		outputKey := txscript.ComputeTaprootKeyNoScript(pub)
		addr, err = btcutil.NewAddressTaproot(schnorr.SerializePubKey(outputKey), params)
	}
	require.NoError(t, err)
	return addr.EncodeAddress()
}

// lockScriptFor returns the previous-output script an input of addrType
// spends from, for the fixed test key.
func lockScriptFor(t *testing.T, addrType wallet.AddressType) []byte {
	t.Helper()
	addr, err := btcutil.DecodeAddress(testAddress(t, addrType), &chaincfg.MainNetParams)
	require.NoError(t, err)
	script, err := txscript.PayToAddrScript(addr)
	require.NoError(t, err)
	return script
}

// testPrevHash is the previous-txid all fixture inputs reference; it doubles
// as the expected ARC4 key in extraction tests.
func testPrevHash(t *testing.T) chainhash.Hash {
	t.Helper()
	var h chainhash.Hash
	copy(h[:], bytes.Repeat([]byte{0xc4}, 32))
	return h
}

// buildUnsignedTx assembles an unsigned transaction with one input per
// element of inputHashes and the given outputs, serialized to hex the way
// the remote composer returns transactions.
func buildUnsignedTx(t *testing.T, inputHashes []chainhash.Hash, outputs []*wire.TxOut) string {
	t.Helper()

	msgTx := wire.NewMsgTx(wire.TxVersion)
	for i, h := range inputHashes {
		in := wire.NewTxIn(wire.NewOutPoint(&h, uint32(i)), nil, nil)
		in.Sequence = DefaultInputSequence
		msgTx.AddTxIn(in)
	}
	for _, out := range outputs {
		msgTx.AddTxOut(out)
	}

	var buf bytes.Buffer
	require.NoError(t, msgTx.Serialize(&buf))
	return hex.EncodeToString(buf.Bytes())
}

// decodeTestTx parses a signed hex transaction produced by Sign.
func decodeTestTx(t *testing.T, rawTxHex string) *wire.MsgTx {
	t.Helper()
	raw, err := hex.DecodeString(rawTxHex)
	require.NoError(t, err)
	var msgTx wire.MsgTx
	require.NoError(t, msgTx.Deserialize(bytes.NewReader(raw)))
	return &msgTx
}

// opReturnScript wraps data in an OP_RETURN output script using the
// canonical push encoding for its length.
func opReturnScript(t *testing.T, data []byte) []byte {
	t.Helper()
	script, err := txscript.NewScriptBuilder().
		AddOp(txscript.OP_RETURN).AddData(data).Script()
	require.NoError(t, err)
	return script
}
