package network

import "context"

// Composer is the query/compose surface of the Counterparty node. The tool
// layer and the signer service depend on this interface, not on Client, so
// tests can substitute MockComposer.
type Composer interface {
	// GetBalances returns all asset balances held by an address.
	GetBalances(ctx context.Context, address string) ([]Balance, error)

	// GetAsset returns the registry entry for an asset name.
	GetAsset(ctx context.Context, asset string) (*Asset, error)

	// GetOrders returns the DEX orders placed by an address.
	GetOrders(ctx context.Context, address string) ([]Order, error)

	// ComposeSend composes an unsigned asset send from source.
	ComposeSend(ctx context.Context, source, destination, asset string, quantity int64) (*ComposeResult, error)

	// ComposeOrder composes an unsigned DEX order from source.
	ComposeOrder(ctx context.Context, source, giveAsset string, giveQuantity int64, getAsset string, getQuantity int64) (*ComposeResult, error)

	// ComposeIssuance composes an unsigned asset issuance from source.
	ComposeIssuance(ctx context.Context, source, asset string, quantity int64, divisible bool, description string) (*ComposeResult, error)
}

// Broadcaster submits signed transactions to the Bitcoin network.
type Broadcaster interface {
	// BroadcastTx submits a signed raw transaction hex and returns the txid.
	BroadcastTx(ctx context.Context, rawTxHex string) (string, error)
}

// Compile-time interface checks.
var (
	_ Composer    = (*Client)(nil)
	_ Broadcaster = (*RPCClient)(nil)
)
