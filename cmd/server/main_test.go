package main

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setArgs(t *testing.T, args ...string) {
	t.Helper()
	prev := os.Args
	os.Args = append([]string{"server"}, args...)
	t.Cleanup(func() { os.Args = prev })
}

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestRun_ConfigErrorIsReturned(t *testing.T) {
	t.Chdir(t.TempDir())
	setArgs(t, "-does-not-exist")

	err := run(context.Background(), logger.Nop())
	assert.ErrorContains(t, err, "error getting configs")
}

// A failure after the database is open comes back from run, so the deferred
// closes get to run before main exits.
func TestRun_LateFailureReturnsAfterOpeningStorage(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	setArgs(t)

	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	dbPath := filepath.Join(dir, "accounts.db")
	unsetEnv(t, "ENV_FILE", "CONFIG", "SERVER_ADDRESS", "ADAPTER_EVENTS_BROKERS")
	t.Setenv("APP_VERSION", "1.0.0")
	t.Setenv("AUTH_ACCESS_TOKEN_SECRET", "access")
	t.Setenv("AUTH_REFRESH_TOKEN_SECRET", "refresh")
	t.Setenv("AUTH_BCRYPT_COST", "4")
	t.Setenv("STORAGE_DB_DRIVER", "sqlite3")
	t.Setenv("STORAGE_DB_DATABASE_URI", dbPath)
	t.Setenv("SERVER_GRPC_ADDRESS", busy.Addr().String())
	t.Setenv("ADAPTER_IMAGE_HOST_PROVIDER", "http")
	t.Setenv("ADAPTER_IMAGE_HOST_CLOUD_NAME", "demo")

	err = run(context.Background(), logger.Nop())

	assert.ErrorContains(t, err, "error creating server")
	assert.FileExists(t, dbPath)
}
