package network

import (
	"fmt"

	"github.com/blocklords/contract-caller/blockchain/network/provider"
	"github.com/blocklords/contract-caller/common/data_type/key_value"
	"github.com/blocklords/contract-caller/configuration"
)

// The network parameters
const (
	NetworkId   = "CALLER_NETWORK_ID"
	ProviderUrl = "CALLER_PROVIDER_URL"
	ExplorerUrl = "CALLER_EXPLORER_URL"
)

// NetworkConfigurations are setting the default configuration parameters.
//
// The callers work with the sepolia test network by default.
var NetworkConfigurations = configuration.DefaultConfig{
	Title: "Network",
	Parameters: key_value.Empty().
		Set(NetworkId, "sepolia").
		Set(ProviderUrl, "https://sepolia.infura.io/v3").
		Set(ExplorerUrl, "https://sepolia.etherscan.io"),
}

// New Network from the configuration.
// The access key is the token that user passed to the caller.
func New(config *configuration.Config, access_key string) (*Network, error) {
	config.SetDefaults(NetworkConfigurations)

	network_provider, err := provider.New(config.GetString(ProviderUrl), access_key)
	if err != nil {
		return nil, fmt.Errorf("provider.New: %w", err)
	}

	return &Network{
		Id:       config.GetString(NetworkId),
		Provider: network_provider,
		Explorer: config.GetString(ExplorerUrl),
	}, nil
}
