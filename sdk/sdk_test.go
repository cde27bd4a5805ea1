//go:build !wasm

package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvLiftsSender(t *testing.T) {
	env := parseEnv(`{
		"contract.id": "contract:rentacar",
		"tx.id": "abc",
		"block.height": 42,
		"block.timestamp": "2025-09-03T00:00:00",
		"msg.sender": "hive:alice",
		"msg.required_auths": ["hive:alice"],
		"msg.required_posting_auths": []
	}`)

	assert.Equal(t, "contract:rentacar", env.ContractId)
	assert.Equal(t, "abc", env.TxId)
	assert.Equal(t, uint64(42), env.BlockHeight)
	assert.Equal(t, Address("hive:alice"), env.Sender.Address)
	assert.Equal(t, []Address{"hive:alice"}, env.Sender.RequiredAuths)
	assert.Empty(t, env.Sender.RequiredPostingAuths)
}

func TestParseEnvToleratesMissingMsgKeys(t *testing.T) {
	env := parseEnv(`{"tx.id": "abc"}`)
	assert.Equal(t, "abc", env.TxId)
	assert.Equal(t, Address(""), env.Sender.Address)
	assert.NotNil(t, env.Sender.RequiredAuths)
}

func TestMockHostState(t *testing.T) {
	MockReset()
	MockSilence(true)

	assert.Nil(t, StateGetObject("ADMIN"))
	StateSetObject("ADMIN", "hive:alice")
	got := StateGetObject("ADMIN")
	require.NotNil(t, got)
	assert.Equal(t, "hive:alice", *got)
	assert.Equal(t, []string{"ADMIN"}, MockStateKeys())

	MockReset()
	assert.Nil(t, StateGetObject("ADMIN"))
}

func TestMockHostSenderAndLogs(t *testing.T) {
	MockReset()
	MockSilence(true)

	MockSetSender("hive:bob")
	env := GetEnv()
	assert.Equal(t, Address("hive:bob"), env.Sender.Address)
	assert.Equal(t, []Address{"hive:bob"}, env.Sender.RequiredAuths)
	assert.Equal(t, "mock_tx_1", env.TxId)

	Log("one")
	Log("two")
	assert.Equal(t, []string{"one", "two"}, MockLogs())
}

func TestMockAbortPanicsWithAbortError(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(*AbortError)
		require.True(t, ok, "expected *AbortError, got %T", r)
		assert.Equal(t, "bad input", err.Error())
	}()
	Abort("bad input")
}
