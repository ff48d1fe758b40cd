package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Network describes one ledger network the explorer front-end can serve
type Network struct {
	Name           string    `yaml:"name"`
	NativeCurrency string    `yaml:"native_currency"`
	ExplorerAPIURL string    `yaml:"explorer_api_url"`
	Dapps          []DappTag `yaml:"dapps"`
}

// DappTag maps a well-known source tag to the application that uses it
type DappTag struct {
	SourceTag uint32 `yaml:"source_tag"`
	Name      string `yaml:"name"`
}

// NetworksConfig holds all supported networks
type NetworksConfig struct {
	Networks []Network `yaml:"networks"`

	byName map[string]*Network
}

// LoadNetworksConfig loads network configuration from a YAML file
func LoadNetworksConfig(path string) (*NetworksConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read networks config file: %w", err)
	}
	return ParseNetworksConfig(data)
}

// ParseNetworksConfig parses and validates network configuration YAML
func ParseNetworksConfig(data []byte) (*NetworksConfig, error) {
	var config NetworksConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse networks config: %w", err)
	}

	config.byName = make(map[string]*Network, len(config.Networks))
	for i := range config.Networks {
		network := &config.Networks[i]
		config.byName[network.Name] = network
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate validates the networks configuration
func (c *NetworksConfig) Validate() error {
	if len(c.Networks) == 0 {
		return fmt.Errorf("at least one network must be configured")
	}

	seen := make(map[string]bool)
	for _, network := range c.Networks {
		if network.Name == "" {
			return fmt.Errorf("network name is required")
		}
		if network.NativeCurrency == "" {
			return fmt.Errorf("native_currency is required for network %s", network.Name)
		}
		if network.ExplorerAPIURL == "" {
			return fmt.Errorf("explorer_api_url is required for network %s", network.Name)
		}
		if seen[network.Name] {
			return fmt.Errorf("duplicate network %s", network.Name)
		}
		seen[network.Name] = true

		tags := make(map[uint32]bool)
		for _, dapp := range network.Dapps {
			if dapp.Name == "" {
				return fmt.Errorf("dapp name is required for source tag %d on network %s", dapp.SourceTag, network.Name)
			}
			if tags[dapp.SourceTag] {
				return fmt.Errorf("duplicate source tag %d on network %s", dapp.SourceTag, network.Name)
			}
			tags[dapp.SourceTag] = true
		}
	}

	return nil
}

// GetNetwork returns the configuration for a network name
func (c *NetworksConfig) GetNetwork(name string) (*Network, bool) {
	network, ok := c.byName[name]
	return network, ok
}

// Names returns all configured network names in file order
func (c *NetworksConfig) Names() []string {
	names := make([]string, 0, len(c.Networks))
	for _, network := range c.Networks {
		names = append(names, network.Name)
	}
	return names
}
