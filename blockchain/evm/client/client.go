// The EVM blockchain client.
// It connects to the blockchain node over JSON-RPC.
// Before any request, the connection is checked.
package client

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"strings"

	"github.com/blocklords/contract-caller/blockchain/network"
	"github.com/blocklords/contract-caller/blockchain/network/provider"
	"github.com/blocklords/contract-caller/log"
	"github.com/ethereum/go-ethereum"
	eth_common "github.com/ethereum/go-ethereum/common"
	eth_types "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

// ErrNotConnected is matched by the error returned when the node doesn't reply.
var ErrNotConnected = errors.New("not connected to the blockchain")

// ConnectionError is returned by Connect if the connectivity check failed.
type ConnectionError struct {
	NetworkId string
	Err       error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to the '%s' blockchain: %v", e.NetworkId, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

func (e *ConnectionError) Is(target error) bool {
	return target == ErrNotConnected
}

// Connectivity is the result of the connection check
type Connectivity struct {
	Connected     bool
	ClientVersion string // the node software, empty if not connected
	Err           error  // the reason if not connected
}

// Backend is the part of the blockchain node api that the callers use.
//
// It's implemented by ethclient.Client and by the simulated backend of go-ethereum.
type Backend interface {
	ethereum.ContractCaller
	ethereum.GasEstimator
	ethereum.GasPricer
	ethereum.TransactionSender
	PendingNonceAt(ctx context.Context, account eth_common.Address) (uint64, error)
}

// Client to the blockchain network
type Client struct {
	backend  Backend
	rpc      *rpc.Client // nil if the backend was passed directly
	chain_id *big.Int
	Network  *network.Network
	logger   *log.Logger
}

// Connect to the blockchain of the network.
//
// Returns ConnectionError if the node didn't reply.
func Connect(ctx context.Context, network *network.Network, parent *log.Logger) (*Client, error) {
	logger := parent.Child("client", "network", network.Id)
	// the url has the access key, print the one without it
	logger.Debug("dial", "provider", network.Provider.String())

	rpc_client, err := rpc.DialContext(ctx, network.Provider.Url())
	if err != nil {
		return nil, &ConnectionError{NetworkId: network.Id, Err: fmt.Errorf("rpc.DialContext: %w", redact(network.Provider, err))}
	}

	eth_client := ethclient.NewClient(rpc_client)
	c := &Client{
		backend: eth_client,
		rpc:     rpc_client,
		Network: network,
		logger:  logger,
	}

	connectivity := c.CheckConnection(ctx)
	if !connectivity.Connected {
		rpc_client.Close()
		return nil, &ConnectionError{NetworkId: network.Id, Err: connectivity.Err}
	}

	chain_id, err := eth_client.ChainID(ctx)
	if err != nil {
		rpc_client.Close()
		return nil, fmt.Errorf("eth_chainId: %w", c.redact(err))
	}
	c.chain_id = chain_id

	logger.Info("connected", "client_version", connectivity.ClientVersion, "chain_id", chain_id.String())

	return c, nil
}

// NewFromBackend creates a client on the backend that is already connected.
func NewFromBackend(backend Backend, chain_id *big.Int, network *network.Network, parent *log.Logger) *Client {
	return &Client{
		backend:  backend,
		chain_id: new(big.Int).Set(chain_id),
		Network:  network,
		logger:   parent.Child("client", "network", network.Id),
	}
}

// CheckConnection asks the node for its version.
func (c *Client) CheckConnection(ctx context.Context) Connectivity {
	if c.rpc == nil {
		return Connectivity{Connected: true}
	}

	var version string
	if err := c.rpc.CallContext(ctx, &version, "web3_clientVersion"); err != nil {
		return Connectivity{Err: fmt.Errorf("web3_clientVersion: %w", c.redact(err))}
	}

	return Connectivity{Connected: true, ClientVersion: version}
}

// ChainId of the network
func (c *Client) ChainId() *big.Int {
	return new(big.Int).Set(c.chain_id)
}

// Call the smartcontract function at the latest block without creating a transaction
func (c *Client) Call(ctx context.Context, msg ethereum.CallMsg) ([]byte, error) {
	output, err := c.backend.CallContract(ctx, msg, nil)
	if err != nil {
		return nil, fmt.Errorf("eth_call: %w", c.redact(err))
	}
	return output, nil
}

// EstimateGas returns the gas limit that the transaction needs
func (c *Client) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	gas, err := c.backend.EstimateGas(ctx, msg)
	if err != nil {
		return 0, fmt.Errorf("eth_estimateGas: %w", c.redact(err))
	}
	c.logger.Debug("estimated gas", "gas", gas)
	return gas, nil
}

// GasPrice returns the gas price suggested by the network, in Wei
func (c *Client) GasPrice(ctx context.Context) (*big.Int, error) {
	price, err := c.backend.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("eth_gasPrice: %w", c.redact(err))
	}
	c.logger.Debug("gas price", "wei", price.String())
	return new(big.Int).Set(price), nil
}

// Nonce of the account including the pending transactions
func (c *Client) Nonce(ctx context.Context, account eth_common.Address) (uint64, error) {
	nonce, err := c.backend.PendingNonceAt(ctx, account)
	if err != nil {
		return 0, fmt.Errorf("eth_getTransactionCount: %w", c.redact(err))
	}
	return nonce, nil
}

// Send the signed transaction to the network
func (c *Client) Send(ctx context.Context, tx *eth_types.Transaction) error {
	if err := c.backend.SendTransaction(ctx, tx); err != nil {
		return fmt.Errorf("eth_sendRawTransaction: %w", c.redact(err))
	}
	c.logger.Info("transaction sent", "hash", tx.Hash().Hex(), "nonce", tx.Nonce())
	return nil
}

// redact removes the provider url from the transport errors.
// The url has the access key.
func (c *Client) redact(err error) error {
	return redact(c.Network.Provider, err)
}

func redact(network_provider provider.Provider, err error) error {
	var url_err *url.Error
	if errors.As(err, &url_err) {
		return fmt.Errorf("%s %s: %w", url_err.Op, network_provider.String(), url_err.Err)
	}
	if strings.Contains(err.Error(), network_provider.Url()) {
		return errors.New(strings.ReplaceAll(err.Error(), network_provider.Url(), network_provider.String()))
	}

	return err
}

// Close the connection
func (c *Client) Close() {
	if c.rpc != nil {
		c.rpc.Close()
	}
}
