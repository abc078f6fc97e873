// Package tx implements the trustless core of the Counterparty adapter:
// recovering the protocol payload embedded in a raw transaction without any
// network access, and signing unsigned transactions across the four
// supported address types.
package tx

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/wire"

	"github.com/xcplabs/libxcp-go/arc4"
)

const (
	// PayloadTag is the 8-byte ASCII marker at the head of every
	// Counterparty payload.
	PayloadTag = "CNTRPRTY"

	// DefaultInputSequence is the sequence number the remote composer puts
	// on transaction inputs. The signer preserves it; it is exported for
	// fixture building.
	DefaultInputSequence uint32 = 0xfffffffd
)

var payloadTagBytes = []byte(PayloadTag)

// ExtractPayload recovers the embedded Counterparty payload from a raw
// transaction hex string, with no network access, so a compromised composer
// cannot spoof the result.
//
// Payloads sit in an OP_RETURN output, ARC4-encrypted with the first
// input's previous-txid bytes as the key (older transactions carry the
// payload unencrypted; both forms are recognized). Outputs are scanned in
// order and the first push that decrypts to -- or already carries -- the
// CNTRPRTY tag wins. found is false when no output matches.
func ExtractPayload(rawTxHex string) (payloadHex string, found bool, err error) {
	msgTx, err := decodeTx(rawTxHex)
	if err != nil {
		return "", false, err
	}

	var key []byte
	if len(msgTx.TxIn) > 0 {
		// The cipher key is the prevout hash exactly as serialized in the
		// transaction, not its display-order hex.
		h := msgTx.TxIn[0].PreviousOutPoint.Hash
		key = h[:]
	}

	for _, out := range msgTx.TxOut {
		push, ok := extractOpReturnPush(out.PkScript)
		if !ok || len(push) < len(payloadTagBytes) {
			continue
		}

		if decrypted := arc4.Apply(key, push); bytes.HasPrefix(decrypted, payloadTagBytes) {
			return hex.EncodeToString(decrypted), true, nil
		}
		if bytes.HasPrefix(push, payloadTagBytes) {
			return hex.EncodeToString(push), true, nil
		}
	}
	return "", false, nil
}

// decodeTx parses a hex-encoded transaction.
func decodeTx(rawTxHex string) (*wire.MsgTx, error) {
	raw, err := hex.DecodeString(rawTxHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedTx, err)
	}
	var msgTx wire.MsgTx
	if err := msgTx.Deserialize(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedTx, err)
	}
	return &msgTx, nil
}
