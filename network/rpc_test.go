package network

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRPCClientBroadcastTx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "rpcuser", user)
		assert.Equal(t, "rpcpass", pass)

		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "sendrawtransaction", req.Method)
		require.Len(t, req.Params, 1)
		assert.Equal(t, "0100beef", req.Params[0])

		_ = json.NewEncoder(w).Encode(rpcResponse{
			ID:     req.ID,
			Result: json.RawMessage(`"deadbeef00"`),
		})
	}))
	defer server.Close()

	client := NewRPCClient(RPCConfig{URL: server.URL, User: "rpcuser", Password: "rpcpass"})
	txid, err := client.BroadcastTx(context.Background(), "0100beef")
	require.NoError(t, err)
	assert.Equal(t, "deadbeef00", txid)
}

func TestRPCClientBroadcastRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(rpcResponse{
			Error: &rpcError{Code: -26, Message: "mandatory-script-verify-flag-failed"},
		})
	}))
	defer server.Close()

	client := NewRPCClient(RPCConfig{URL: server.URL})
	_, err := client.BroadcastTx(context.Background(), "0100beef")
	require.ErrorIs(t, err, ErrBroadcastRejected)
	assert.Contains(t, err.Error(), "mandatory-script-verify-flag-failed")
}

func TestRPCClientGetRawTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "getrawtransaction", req.Method)
		require.Len(t, req.Params, 2)
		assert.Equal(t, false, req.Params[1])

		_ = json.NewEncoder(w).Encode(rpcResponse{ID: req.ID, Result: json.RawMessage(`"01000000"`)})
	}))
	defer server.Close()

	client := NewRPCClient(RPCConfig{URL: server.URL})
	rawHex, err := client.GetRawTransaction(context.Background(), "sometxid")
	require.NoError(t, err)
	assert.Equal(t, "01000000", rawHex)
}

func TestRPCClientConnectionError(t *testing.T) {
	client := NewRPCClient(RPCConfig{URL: "http://localhost:1"})
	err := client.Call(context.Background(), "getblockcount", nil, nil)
	assert.ErrorIs(t, err, ErrConnectionFailed)
}

func TestRPCClientBadResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewRPCClient(RPCConfig{URL: server.URL})
	err := client.Call(context.Background(), "getblockcount", nil, nil)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
