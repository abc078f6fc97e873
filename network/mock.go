package network

import "context"

// MockComposer is a test double for Composer. All function fields must be
// set before the corresponding method is called.
type MockComposer struct {
	GetBalancesFn     func(ctx context.Context, address string) ([]Balance, error)
	GetAssetFn        func(ctx context.Context, asset string) (*Asset, error)
	GetOrdersFn       func(ctx context.Context, address string) ([]Order, error)
	ComposeSendFn     func(ctx context.Context, source, destination, asset string, quantity int64) (*ComposeResult, error)
	ComposeOrderFn    func(ctx context.Context, source, giveAsset string, giveQuantity int64, getAsset string, getQuantity int64) (*ComposeResult, error)
	ComposeIssuanceFn func(ctx context.Context, source, asset string, quantity int64, divisible bool, description string) (*ComposeResult, error)
}

func (m *MockComposer) GetBalances(ctx context.Context, address string) ([]Balance, error) {
	return m.GetBalancesFn(ctx, address)
}
func (m *MockComposer) GetAsset(ctx context.Context, asset string) (*Asset, error) {
	return m.GetAssetFn(ctx, asset)
}
func (m *MockComposer) GetOrders(ctx context.Context, address string) ([]Order, error) {
	return m.GetOrdersFn(ctx, address)
}
func (m *MockComposer) ComposeSend(ctx context.Context, source, destination, asset string, quantity int64) (*ComposeResult, error) {
	return m.ComposeSendFn(ctx, source, destination, asset, quantity)
}
func (m *MockComposer) ComposeOrder(ctx context.Context, source, giveAsset string, giveQuantity int64, getAsset string, getQuantity int64) (*ComposeResult, error) {
	return m.ComposeOrderFn(ctx, source, giveAsset, giveQuantity, getAsset, getQuantity)
}
func (m *MockComposer) ComposeIssuance(ctx context.Context, source, asset string, quantity int64, divisible bool, description string) (*ComposeResult, error) {
	return m.ComposeIssuanceFn(ctx, source, asset, quantity, divisible, description)
}

// MockBroadcaster is a test double for Broadcaster.
type MockBroadcaster struct {
	BroadcastTxFn func(ctx context.Context, rawTxHex string) (string, error)
}

func (m *MockBroadcaster) BroadcastTx(ctx context.Context, rawTxHex string) (string, error) {
	return m.BroadcastTxFn(ctx, rawTxHex)
}
