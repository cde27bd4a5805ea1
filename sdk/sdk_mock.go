//go:build !wasm

package sdk

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// AbortError is what Abort panics with outside wasm, so native callers can
// tell a contract fault apart from a Go bug.
type AbortError struct {
	Msg string
}

func (e *AbortError) Error() string { return e.Msg }

// mockHost stands in for the chain: one instance storage map, an env and a log sink.
type mockHost struct {
	mu     sync.Mutex
	db     map[string]string
	logs   []string
	env    map[string]interface{}
	txSeq  int
	silent bool
}

var host = newMockHost()

func newMockHost() *mockHost {
	return &mockHost{
		db: make(map[string]string),
		env: map[string]interface{}{
			"contract.id":                "mock_contract",
			"tx.id":                      "mock_tx_0",
			"block.id":                   "mock_block",
			"block.timestamp":            "2025-01-01T00:00:00",
			"msg.sender":                 "hive:mock_sender",
			"msg.required_auths":         []interface{}{"hive:mock_sender"},
			"msg.required_posting_auths": []interface{}{},
		},
	}
}

// MockReset wipes storage, logs and env so every test starts on a fresh instance.
func MockReset() {
	fresh := newMockHost()
	host.mu.Lock()
	defer host.mu.Unlock()
	host.db = fresh.db
	host.logs = fresh.logs
	host.env = fresh.env
	host.txSeq = 0
}

// MockSilence stops the mock host from echoing logs to stdout.
func MockSilence(silent bool) {
	host.mu.Lock()
	defer host.mu.Unlock()
	host.silent = silent
}

// MockSetSender switches msg.sender (and its required auth) and starts a new tx.
func MockSetSender(addr Address) {
	host.mu.Lock()
	defer host.mu.Unlock()
	host.txSeq++
	host.env["tx.id"] = fmt.Sprintf("mock_tx_%d", host.txSeq)
	host.env["msg.sender"] = addr.String()
	host.env["msg.required_auths"] = []interface{}{addr.String()}
}

// MockLogs returns a copy of every line written through Log since the last reset.
func MockLogs() []string {
	host.mu.Lock()
	defer host.mu.Unlock()
	out := make([]string, len(host.logs))
	copy(out, host.logs)
	return out
}

// MockStateSnapshot copies instance storage for assertions.
func MockStateSnapshot() map[string]string {
	host.mu.Lock()
	defer host.mu.Unlock()
	out := make(map[string]string, len(host.db))
	for k, v := range host.db {
		out[k] = v
	}
	return out
}

// MockStateKeys lists the stored keys in sorted order.
func MockStateKeys() []string {
	snap := MockStateSnapshot()
	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func Log(s string) {
	host.mu.Lock()
	host.logs = append(host.logs, s)
	silent := host.silent
	host.mu.Unlock()
	if !silent {
		fmt.Println("SDK log:", s)
	}
}

func Abort(msg string) {
	panic(&AbortError{Msg: msg})
}

func StateSetObject(key string, value string) {
	host.mu.Lock()
	defer host.mu.Unlock()
	host.db[key] = value
}

func StateGetObject(key string) *string {
	host.mu.Lock()
	defer host.mu.Unlock()
	val, ok := host.db[key]
	if !ok {
		return nil
	}
	return &val
}

// GetEnv round-trips through the same JSON blob parser the wasm build uses.
func GetEnv() Env {
	host.mu.Lock()
	blob, err := json.Marshal(host.env)
	host.mu.Unlock()
	if err != nil {
		panic(err)
	}
	return parseEnv(string(blob))
}
