// The network package is used to get the blockchain network information.
package network

import (
	"fmt"
	"strings"

	"github.com/blocklords/contract-caller/blockchain/network/provider"
	eth_common "github.com/ethereum/go-ethereum/common"
)

// Network is the blockchain that the callers interact with.
type Network struct {
	Id       string
	Provider provider.Provider
	Explorer string // the block explorer url
}

// TransactionUrl returns the link to the transaction in the block explorer
func (n *Network) TransactionUrl(hash eth_common.Hash) string {
	return fmt.Sprintf("%s/tx/%s", strings.TrimSuffix(n.Explorer, "/"), hash.Hex())
}
