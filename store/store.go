// Package store persists a record of every transaction this process signed
// and broadcast: the signed hex, the payload that was verified before
// signing, and when it happened. The record is the audit trail for an agent
// authorizing spends, and a duplicate-txid guard against double broadcast.
package store

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"
)

var bucketSignedTxs = []byte("signed_txs")

// Record is one signed-and-broadcast transaction.
type Record struct {
	TxID       string
	SignedHex  string
	PayloadHex string
	CreatedAt  int64 // unix seconds
}

// TxStore wraps a bbolt database of signed-transaction records.
type TxStore struct {
	db *bbolt.DB
}

// Open opens or creates the bbolt database at dbPath. The parent directory
// is created if it does not exist.
func Open(dbPath string) (*TxStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("store: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("store: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSignedTxs)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: create bucket: %w", err)
	}

	return &TxStore{db: db}, nil
}

// Close closes the underlying database.
func (s *TxStore) Close() error { return s.db.Close() }

// Put stores a record keyed by its txid. A second record for the same txid
// is rejected with ErrDuplicateRecord.
func (s *TxStore) Put(rec *Record) error {
	if rec == nil {
		return fmt.Errorf("%w: record", ErrNilParam)
	}
	if rec.TxID == "" {
		return fmt.Errorf("%w: txid is empty", ErrNilParam)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketSignedTxs)
		if b.Get([]byte(rec.TxID)) != nil {
			return fmt.Errorf("%w: %s", ErrDuplicateRecord, rec.TxID)
		}

		data, err := encodeGob(rec)
		if err != nil {
			return fmt.Errorf("store: encode record: %w", err)
		}
		return b.Put([]byte(rec.TxID), data)
	})
}

// Get retrieves a record by txid.
func (s *TxStore) Get(txid string) (*Record, error) {
	var rec Record
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketSignedTxs).Get([]byte(txid))
		if data == nil {
			return fmt.Errorf("%w: %s", ErrRecordNotFound, txid)
		}
		return decodeGob(data, &rec)
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// List returns all records in txid order.
func (s *TxStore) List() ([]*Record, error) {
	var records []*Record
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSignedTxs).ForEach(func(_, data []byte) error {
			var rec Record
			if err := decodeGob(data, &rec); err != nil {
				return fmt.Errorf("store: decode record: %w", err)
			}
			records = append(records, &rec)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// encodeGob serializes a value using gob encoding.
func encodeGob(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeGob deserializes gob-encoded data into a value.
func decodeGob(data []byte, v interface{}) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}
