package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"rent_a_car/contract/rentacar"
	"rent_a_car/internal/config"
	"rent_a_car/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCommand(&stdout, &stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestConstructInitializeShow(t *testing.T) {
	for _, backend := range []string{"bolt", "json"} {
		t.Run(backend, func(t *testing.T) {
			statePath := filepath.Join(t.TempDir(), "state")
			common := []string{"--state-backend", backend, "--state-path", statePath}

			out, _, err := run(t, append([]string{"show"}, common...)...)
			require.NoError(t, err)
			assert.Equal(t, "not initialized\n", out)

			_, stderr, err := run(t, append([]string{"construct", "--admin", "GADMIN", "--token", "GTOKEN", "--sender", "GDEPLOYER"}, common...)...)
			require.NoError(t, err)
			assert.Contains(t, stderr, `"kind":"ci"`)
			assert.Contains(t, stderr, `"by":"GDEPLOYER"`)

			out, _, err = run(t, append([]string{"show"}, common...)...)
			require.NoError(t, err)
			assert.Equal(t, "ADMIN=GADMIN\nTOKEN=GTOKEN\n", out)

			_, _, err = run(t, append([]string{"initialize", "--admin", "GADMIN2", "--token", "GTOKEN2"}, common...)...)
			require.NoError(t, err)

			out, _, err = run(t, append([]string{"show"}, common...)...)
			require.NoError(t, err)
			assert.Equal(t, "ADMIN=GADMIN2\nTOKEN=GTOKEN2\n", out)
		})
	}
}

func TestInitializeRequiresBothAddresses(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "state.db")
	_, _, err := run(t, "initialize", "--admin", "GADMIN", "--state-path", statePath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--admin and --token are required")

	out, _, err := run(t, "show", "--state-path", statePath)
	require.NoError(t, err)
	assert.Equal(t, "not initialized\n", out)
}

func TestUnknownBackendFails(t *testing.T) {
	_, _, err := run(t, "show", "--state-backend", "sqlite", "--state-path", filepath.Join(t.TempDir(), "x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown state backend")
}

func TestContractIDsDoNotShareState(t *testing.T) {
	for _, backend := range []string{"bolt", "json"} {
		t.Run(backend, func(t *testing.T) {
			common := []string{"--state-backend", backend, "--state-path", filepath.Join(t.TempDir(), "state")}

			_, _, err := run(t, append([]string{"construct", "--contract-id", "fleet-a", "--admin", "GADMIN", "--token", "GTOKEN"}, common...)...)
			require.NoError(t, err)

			out, _, err := run(t, append([]string{"show", "--contract-id", "fleet-b"}, common...)...)
			require.NoError(t, err)
			assert.Equal(t, "not initialized\n", out)

			out, _, err = run(t, append([]string{"show", "--contract-id", "fleet-a"}, common...)...)
			require.NoError(t, err)
			assert.Equal(t, "ADMIN=GADMIN\nTOKEN=GTOKEN\n", out)
		})
	}
}

func TestShowReportsMissingToken(t *testing.T) {
	for _, backend := range []string{"bolt", "json"} {
		t.Run(backend, func(t *testing.T) {
			statePath := filepath.Join(t.TempDir(), "state")
			st, err := store.Open(config.State{Backend: backend, Path: statePath}, "rentacar")
			require.NoError(t, err)
			st.Set(rentacar.AdminKey, "GADMIN")
			require.NoError(t, st.Close())

			out, _, err := run(t, "show", "--state-backend", backend, "--state-path", statePath)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "TOKEN is not set")
			assert.Equal(t, "ADMIN=GADMIN\n", out)
		})
	}
}

func TestNamedAccountsPickTheSender(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sim.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
state:
  path: `+filepath.Join(dir, "state.db")+`
accounts:
  alice: GALICE
  bob: GBOB
`), 0o644))
	common := []string{"--config", cfgPath}

	out, _, err := run(t, append([]string{"accounts", "list"}, common...)...)
	require.NoError(t, err)
	assert.Equal(t, "  alice GALICE\n  bob GBOB\n", out)

	_, stderr, err := run(t, append([]string{"construct", "--as", "alice", "--admin", "GADMIN", "--token", "GTOKEN"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, stderr, `"by":"GALICE"`)

	out, _, err = run(t, append([]string{"accounts", "use", "Bob"}, common...)...)
	require.NoError(t, err)
	assert.Equal(t, "sending as bob (GBOB)\n", out)

	out, _, err = run(t, append([]string{"accounts", "list"}, common...)...)
	require.NoError(t, err)
	assert.Equal(t, "  alice GALICE\n* bob GBOB\n", out)

	_, stderr, err = run(t, append([]string{"initialize", "--admin", "GADMIN2", "--token", "GTOKEN2"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, stderr, `"by":"GBOB"`)

	_, _, err = run(t, append([]string{"accounts", "use", "carol"}, common...)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown account "carol"`)

	_, _, err = run(t, append([]string{"show", "--as", "carol"}, common...)...)
	require.Error(t, err)
}
