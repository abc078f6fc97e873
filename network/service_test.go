package network

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMockComposerImplementsInterface(t *testing.T) {
	var _ Composer = (*MockComposer)(nil)
}

func TestMockBroadcasterImplementsInterface(t *testing.T) {
	var _ Broadcaster = (*MockBroadcaster)(nil)
}

func TestMockBroadcaster_DelegatesToFn(t *testing.T) {
	mock := &MockBroadcaster{
		BroadcastTxFn: func(ctx context.Context, rawTxHex string) (string, error) {
			require.Equal(t, "deadbeef", rawTxHex)
			return "txid123", nil
		},
	}

	txid, err := mock.BroadcastTx(context.Background(), "deadbeef")
	require.NoError(t, err)
	require.Equal(t, "txid123", txid)
}
