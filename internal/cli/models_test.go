package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/ariel-frischer/gitmsg/internal/config"
	"github.com/ariel-frischer/gitmsg/internal/errors"
	"github.com/ariel-frischer/gitmsg/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func endpointConfig(t *testing.T, srv *httptest.Server) *config.Configuration {
	t.Helper()
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	host, portStr, err := net.SplitHostPort(u.Host)
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)
	return &config.Configuration{Host: host, Port: port, ProbeTimeout: 1}
}

func TestListModels(t *testing.T) {
	logging.InitForTesting()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"models": []map[string]any{
			{"name": "llama3.2", "size": 2 * 1 << 30},
			{"name": "mistral", "size": 500 * 1 << 20},
		}})
	}))
	defer srv.Close()

	var out bytes.Buffer
	require.NoError(t, listModels(context.Background(), endpointConfig(t, srv), &out))

	assert.Contains(t, out.String(), "llama3.2")
	assert.Contains(t, out.String(), "2.0 GB")
	assert.Contains(t, out.String(), "500.0 MB")
}

func TestListModelsEmptyInventory(t *testing.T) {
	logging.InitForTesting()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"models": []any{}})
	}))
	defer srv.Close()

	var out bytes.Buffer
	require.NoError(t, listModels(context.Background(), endpointConfig(t, srv), &out))
	assert.Contains(t, out.String(), "No models installed")
}

func TestListModelsUnreachable(t *testing.T) {
	logging.InitForTesting()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	cfg := endpointConfig(t, srv)
	srv.Close()

	var out bytes.Buffer
	err := listModels(context.Background(), cfg, &out)
	require.Error(t, err)

	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, errors.Runtime, cliErr.Category)
	assert.NotEmpty(t, cliErr.Remediation)
}

func TestHumanSize(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		bytes    int64
		expected string
	}{
		"bytes":     {512, "512 B"},
		"megabytes": {5 * 1 << 20, "5.0 MB"},
		"gigabytes": {3 * 1 << 30, "3.0 GB"},
		"fraction":  {1610612736, "1.5 GB"},
		"zero":      {0, "0 B"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, humanSize(tc.bytes))
		})
	}
}
