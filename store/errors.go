package store

import "errors"

var (
	// ErrNilParam indicates a required parameter is nil.
	ErrNilParam = errors.New("store: required parameter is nil")

	// ErrRecordNotFound indicates no record exists for the txid.
	ErrRecordNotFound = errors.New("store: record not found")

	// ErrDuplicateRecord indicates a record for the txid already exists.
	ErrDuplicateRecord = errors.New("store: record already exists")
)
