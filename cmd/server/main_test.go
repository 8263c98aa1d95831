package main

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(&out).RunContext(ctx, append([]string{"greeter-api"}, args...))
	return out.String(), err
}

func TestCalcCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"calc", "add", "2", "3"}, "5"},
		{[]string{"calc", "add", "-1", "1"}, "0"},
		{[]string{"calc", "add", "--", "-1", "1"}, "0"},
		{[]string{"calc", "subtract", "-7", "-2"}, "-5"},
		{[]string{"calc", "add", "0", "0"}, "0"},
		{[]string{"calc", "subtract", "5", "3"}, "2"},
		{[]string{"calc", "subtract", "1", "1"}, "0"},
		{[]string{"calc", "subtract", "0", "5"}, "-5"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := run(t, context.Background(), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestCalcRejectsBadArguments(t *testing.T) {
	_, err := run(t, context.Background(), "calc", "add", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 2 integer arguments")

	_, err = run(t, context.Background(), "calc", "subtract", "five", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid integer "five"`)
}

func isolateEnv(t *testing.T) string {
	t.Helper()
	for _, k := range []string{"HOST", "PORT", "LOG_LEVEL", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestServeRejectsInvalidFlags(t *testing.T) {
	envFile := isolateEnv(t)

	_, err := run(t, context.Background(), "serve", "--env-file", envFile, "--port", "70000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")

	_, err = run(t, context.Background(), "--env-file", envFile, "--log-level", "chatty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())
	return port
}

func TestServeAnswersHealthAndStopsOnCancel(t *testing.T) {
	envFile := isolateEnv(t)
	port := freePort(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		_, err := run(t, ctx, "serve", "--env-file", envFile, "--host", "127.0.0.1", "--port", fmt.Sprint(port))
		done <- err
	}()

	url := fmt.Sprintf("http://127.0.0.1:%d/health", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop after cancellation")
	}
}
