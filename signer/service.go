// Package signer is the surface the tool layer calls: payload verification,
// local signing, and broadcast, in that order. The verify step runs before
// any signature so the caller can inspect what a transaction embeds without
// trusting the node that composed it.
package signer

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/xcplabs/libxcp-go/network"
	"github.com/xcplabs/libxcp-go/store"
	"github.com/xcplabs/libxcp-go/tx"
	"github.com/xcplabs/libxcp-go/wallet"
)

// Service bundles the immutable signing configuration with the remote
// collaborators. cfg may be nil: verification still works, signing fails
// with ErrSigningDisabled. records may be nil to skip the audit trail.
type Service struct {
	cfg     *wallet.SigningConfig
	chain   network.Broadcaster
	records *store.TxStore
}

// New creates the signer service.
func New(cfg *wallet.SigningConfig, chain network.Broadcaster, records *store.TxStore) *Service {
	return &Service{cfg: cfg, chain: chain, records: records}
}

// VerifyPayload extracts the embedded Counterparty payload from a raw
// transaction without touching the network.
func (s *Service) VerifyPayload(rawTxHex string) (payloadHex string, found bool, err error) {
	return tx.ExtractPayload(rawTxHex)
}

// SignTransaction signs rawTxHex with the configured key. inputValues and
// lockScripts are the previous-output data for each input, hex-encoded the
// way the composer reports them.
func (s *Service) SignTransaction(rawTxHex string, inputValues []int64, lockScripts []string) (string, error) {
	if s.cfg == nil {
		return "", ErrSigningDisabled
	}

	spend, err := decodeSpendData(inputValues, lockScripts)
	if err != nil {
		return "", err
	}
	return tx.Sign(rawTxHex, s.cfg, spend)
}

// SignAndBroadcast verifies, signs, and broadcasts a composed transaction,
// then records it. The extracted payload is returned alongside the txid so
// the caller sees what was authorized.
func (s *Service) SignAndBroadcast(ctx context.Context, rawTxHex string, inputValues []int64, lockScripts []string) (txid, payloadHex string, err error) {
	payloadHex, _, err = s.VerifyPayload(rawTxHex)
	if err != nil {
		return "", "", err
	}

	signedHex, err := s.SignTransaction(rawTxHex, inputValues, lockScripts)
	if err != nil {
		return "", "", err
	}

	txid, err = s.chain.BroadcastTx(ctx, signedHex)
	if err != nil {
		return "", "", err
	}

	if s.records != nil {
		rec := &store.Record{
			TxID:       txid,
			SignedHex:  signedHex,
			PayloadHex: payloadHex,
			CreatedAt:  time.Now().Unix(),
		}
		if err := s.records.Put(rec); err != nil && !errors.Is(err, store.ErrDuplicateRecord) {
			return txid, payloadHex, fmt.Errorf("broadcast %s succeeded but recording failed: %w", txid, err)
		}
	}
	return txid, payloadHex, nil
}

// decodeSpendData converts the caller's hex lock scripts into the signer's
// spend data. Nil inputs mean no spend data was supplied; the core decides
// whether that is acceptable for the configured address type.
func decodeSpendData(inputValues []int64, lockScripts []string) (*tx.SpendData, error) {
	if inputValues == nil && lockScripts == nil {
		return nil, nil
	}

	scripts := make([][]byte, len(lockScripts))
	for i, scriptHex := range lockScripts {
		script, err := hex.DecodeString(scriptHex)
		if err != nil {
			return nil, fmt.Errorf("%w: lock script %d: %v", ErrInvalidSpendData, i, err)
		}
		scripts[i] = script
	}
	return &tx.SpendData{Values: inputValues, Scripts: scripts}, nil
}
