package network

import "errors"

var (
	// ErrConnectionFailed indicates the client could not reach the node.
	ErrConnectionFailed = errors.New("network: connection failed")

	// ErrInvalidResponse indicates the node returned a malformed or
	// unexpected response.
	ErrInvalidResponse = errors.New("network: invalid response")

	// ErrNodeRejected indicates the Counterparty node rejected the request
	// (compose failure, unknown asset, bad parameters).
	ErrNodeRejected = errors.New("network: node rejected request")

	// ErrBroadcastRejected indicates the Bitcoin node refused the signed
	// transaction.
	ErrBroadcastRejected = errors.New("network: broadcast rejected")
)
