package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validNetworks = `
networks:
  - name: mainnet
    native_currency: XRP
    explorer_api_url: https://explorer.example/api/v2
    dapps:
      - source_tag: 101102979
        name: Xaman
  - name: xahau
    native_currency: XAH
    explorer_api_url: https://xahau.example/api/v2
`

func TestParseNetworksConfig_Valid(t *testing.T) {
	cfg, err := ParseNetworksConfig([]byte(validNetworks))
	require.NoError(t, err)

	assert.Equal(t, []string{"mainnet", "xahau"}, cfg.Names())

	network, ok := cfg.GetNetwork("xahau")
	require.True(t, ok)
	assert.Equal(t, "XAH", network.NativeCurrency)

	mainnet, ok := cfg.GetNetwork("mainnet")
	require.True(t, ok)
	require.Len(t, mainnet.Dapps, 1)
	assert.Equal(t, uint32(101102979), mainnet.Dapps[0].SourceTag)

	_, ok = cfg.GetNetwork("devnet")
	assert.False(t, ok)
}

func TestParseNetworksConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"empty", "networks: []", "at least one network"},
		{"missing currency", "networks:\n  - name: a\n    explorer_api_url: u\n", "native_currency is required"},
		{"missing url", "networks:\n  - name: a\n    native_currency: XRP\n", "explorer_api_url is required"},
		{"duplicate", "networks:\n  - {name: a, native_currency: XRP, explorer_api_url: u}\n  - {name: a, native_currency: XRP, explorer_api_url: u}\n", "duplicate network"},
		{"duplicate tag", "networks:\n  - name: a\n    native_currency: XRP\n    explorer_api_url: u\n    dapps: [{source_tag: 1, name: x}, {source_tag: 1, name: y}]\n", "duplicate source tag"},
		{"bad yaml", "networks: [", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNetworksConfig([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadNetworksConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "networks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validNetworks), 0o600))

	cfg, err := LoadNetworksConfig(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Networks, 2)

	_, err = LoadNetworksConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read networks config file")
}

func TestLoadNetworksConfig_RepositoryFile(t *testing.T) {
	cfg, err := LoadNetworksConfig("../../config/networks.yaml")
	require.NoError(t, err)

	for _, name := range []string{"mainnet", "testnet", "xahau"} {
		_, ok := cfg.GetNetwork(name)
		assert.True(t, ok, name)
	}
}
