package tx

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"github.com/xcplabs/libxcp-go/wallet"
)

// SpendData carries the previous-output values and lock scripts for the
// inputs being signed, index-aligned with the transaction's inputs. The
// signer has no blockchain access of its own, so this is the only source of
// the data every sighash variant commits to. It comes from the remote
// composer; ExtractPayload is the independent check on the composer's work.
type SpendData struct {
	Values  []int64
	Scripts [][]byte
}

// Sign produces a fully signed, broadcast-ready transaction from an
// unsigned raw hex transaction. Every input is signed for cfg's address
// type; outputs pass through byte-identical, so amounts and destinations
// stay exactly as composed.
//
// All four script types need spend data here: segwit and taproot sighashes
// commit to previous-output values and scripts, and the legacy path uses
// the supplied lock script in place of a previous-transaction lookup.
// Spend data covering fewer inputs than the transaction has is rejected
// with ErrMissingSpendData rather than partially signed.
func Sign(rawTxHex string, cfg *wallet.SigningConfig, spend *SpendData) (string, error) {
	if cfg == nil {
		return "", fmt.Errorf("%w: signing config", ErrNilParam)
	}

	msgTx, err := decodeTx(rawTxHex)
	if err != nil {
		return "", err
	}
	if err := checkSpendData(spend, len(msgTx.TxIn), cfg.Type); err != nil {
		return "", err
	}

	priv, pub := btcec.PrivKeyFromBytes(cfg.PrivKey)
	defer priv.Zero()

	fetcher := txscript.NewMultiPrevOutFetcher(nil)
	for i, txIn := range msgTx.TxIn {
		fetcher.AddPrevOut(txIn.PreviousOutPoint, wire.NewTxOut(spend.Values[i], spend.Scripts[i]))
	}
	sigHashes := txscript.NewTxSigHashes(msgTx, fetcher)

	for i := range msgTx.TxIn {
		switch cfg.Type {
		case wallet.P2WPKH:
			witness, err := txscript.WitnessSignature(msgTx, sigHashes, i,
				spend.Values[i], spend.Scripts[i], txscript.SigHashAll, priv, true)
			if err != nil {
				return "", fmt.Errorf("%w: input %d: %w", ErrSigningFailed, i, err)
			}
			msgTx.TxIn[i].Witness = witness

		case wallet.NestedP2WPKH:
			// The witness program spends like native P2WPKH; the redeem
			// script revealing it goes into the unlocking script.
			redeem, err := witnessProgram(pub)
			if err != nil {
				return "", fmt.Errorf("%w: input %d: %w", ErrSigningFailed, i, err)
			}
			witness, err := txscript.WitnessSignature(msgTx, sigHashes, i,
				spend.Values[i], redeem, txscript.SigHashAll, priv, true)
			if err != nil {
				return "", fmt.Errorf("%w: input %d: %w", ErrSigningFailed, i, err)
			}
			sigScript, err := txscript.NewScriptBuilder().AddData(redeem).Script()
			if err != nil {
				return "", fmt.Errorf("%w: input %d: %w", ErrSigningFailed, i, err)
			}
			msgTx.TxIn[i].Witness = witness
			msgTx.TxIn[i].SignatureScript = sigScript

		case wallet.P2PKH:
			sigScript, err := txscript.SignatureScript(msgTx, i,
				spend.Scripts[i], txscript.SigHashAll, priv, cfg.Compressed)
			if err != nil {
				return "", fmt.Errorf("%w: input %d: %w", ErrSigningFailed, i, err)
			}
			msgTx.TxIn[i].SignatureScript = sigScript

		case wallet.P2TR:
			// Key-path spend only. TaprootWitnessSignature applies the
			// no-script tweak and emits the schnorr signature as the sole
			// witness element.
			witness, err := txscript.TaprootWitnessSignature(msgTx, sigHashes, i,
				spend.Values[i], spend.Scripts[i], txscript.SigHashDefault, priv)
			if err != nil {
				return "", fmt.Errorf("%w: input %d: %w", ErrSigningFailed, i, err)
			}
			msgTx.TxIn[i].Witness = witness

		default:
			return "", fmt.Errorf("%w: %d", ErrUnsupportedAddressType, cfg.Type)
		}
	}

	var buf bytes.Buffer
	if err := msgTx.Serialize(&buf); err != nil {
		return "", fmt.Errorf("%w: serialize: %w", ErrSigningFailed, err)
	}
	return hex.EncodeToString(buf.Bytes()), nil
}

// checkSpendData rejects absent or short spend data before any input is
// touched, so a failure never leaves a partially signed result.
func checkSpendData(spend *SpendData, inputs int, addrType wallet.AddressType) error {
	if spend == nil {
		return fmt.Errorf("%w: %s signing requires input values and lock scripts",
			ErrMissingSpendData, addrType)
	}
	if len(spend.Values) < inputs || len(spend.Scripts) < inputs {
		return fmt.Errorf("%w: tx has %d inputs but spend data covers %d values and %d scripts",
			ErrMissingSpendData, inputs, len(spend.Values), len(spend.Scripts))
	}
	for i := 0; i < inputs; i++ {
		if len(spend.Scripts[i]) == 0 {
			return fmt.Errorf("%w: empty lock script for input %d", ErrMissingSpendData, i)
		}
	}
	return nil
}

// witnessProgram builds the v0 pubkey-hash witness program for pub, which
// doubles as the redeem script of a nested P2WPKH spend.
func witnessProgram(pub *btcec.PublicKey) ([]byte, error) {
	return txscript.NewScriptBuilder().
		AddOp(txscript.OP_0).
		AddData(btcutil.Hash160(pub.SerializeCompressed())).
		Script()
}
