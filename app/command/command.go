// Package command defines the contract caller applications.
//
// Each application parses the flags, loads the abi and the configuration,
// then connects to the blockchain and invokes the function.
// The results are printed to the standard output, the logs to the standard error.
package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/blocklords/contract-caller/app/account"
	"github.com/blocklords/contract-caller/arg"
	"github.com/blocklords/contract-caller/blockchain/evm/abi"
	"github.com/blocklords/contract-caller/blockchain/evm/client"
	"github.com/blocklords/contract-caller/blockchain/evm/contract"
	"github.com/blocklords/contract-caller/blockchain/network"
	"github.com/blocklords/contract-caller/configuration"
	"github.com/blocklords/contract-caller/log"
	"github.com/blocklords/contract-caller/security"
	eth_types "github.com/ethereum/go-ethereum/core/types"
)

// Dialer connects to the blockchain of the network
type Dialer func(ctx context.Context, network *network.Network, logger *log.Logger) (*client.Client, error)

// KeySourceFactory returns the source of the private key set in the configuration
type KeySourceFactory func(config *configuration.Config, logger *log.Logger) (security.KeySource, error)

// Environment keeps the dependencies of the applications.
type Environment struct {
	Dial   Dialer
	Keys   KeySourceFactory
	Stdout io.Writer
	Logger *log.Logger
}

// NewEnvironment with the blockchain node, the private key source
// and the standard output.
func NewEnvironment(logger *log.Logger) *Environment {
	return &Environment{
		Dial:   client.Connect,
		Keys:   security.NewKeySource,
		Stdout: os.Stdout,
		Logger: logger,
	}
}

// invocation is the function call prepared before connecting to the blockchain.
type invocation struct {
	arguments *arg.Arguments
	config    *configuration.Config
	network   *network.Network
	call      *abi.Call
}

// prepare loads everything that doesn't need the blockchain.
// The errors in the abi or the arguments are returned before any connection.
func (env *Environment) prepare(arguments *arg.Arguments) (*invocation, error) {
	config, err := configuration.New(env.Logger, arguments.EnvPaths)
	if err != nil {
		return nil, fmt.Errorf("configuration.New: %w", err)
	}
	if config.GetBool(configuration.LogDebug) {
		env.Logger.EnableDebug()
	}

	blockchain_network, err := network.New(config, arguments.AccessKey)
	if err != nil {
		return nil, fmt.Errorf("network.New: %w", err)
	}

	contract_abi, err := abi.Load(arguments.AbiFile)
	if err != nil {
		return nil, fmt.Errorf("abi.Load: %w", err)
	}
	env.Logger.Child("abi").Debug("loaded", "path", arguments.AbiFile, "functions", contract_abi.Functions())

	call, err := contract_abi.Resolve(arguments.FunctionName, arguments.Positional, arguments.Keyword)
	if err != nil {
		return nil, fmt.Errorf("abi.Resolve: %w", err)
	}

	return &invocation{
		arguments: arguments,
		config:    config,
		network:   blockchain_network,
		call:      call,
	}, nil
}

// signer asks for the private key
func (env *Environment) signer(ctx context.Context, invocation *invocation) (*account.Account, error) {
	keys, err := env.Keys(invocation.config, env.Logger)
	if err != nil {
		return nil, fmt.Errorf("security.NewKeySource: %w", err)
	}

	private_key, err := keys.PrivateKey(ctx)
	if err != nil {
		return nil, fmt.Errorf("keys.PrivateKey: %w", err)
	}

	signer, err := account.New(private_key)
	if err != nil {
		return nil, fmt.Errorf("account.New: %w", err)
	}
	env.Logger.Debug("signer", "address", signer.Address.Hex())

	return signer, nil
}

// connect to the blockchain.
// The returned context has the request timeout.
func (env *Environment) connect(ctx context.Context, invocation *invocation) (context.Context, func(), *contract.Contract, error) {
	cancel := func() {}
	if timeout := invocation.config.RequestTimeout(); timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
	}

	c, err := env.Dial(ctx, invocation.network, env.Logger)
	if err != nil {
		cancel()
		return nil, nil, nil, fmt.Errorf("client.Connect: %w", err)
	}

	closer := func() {
		c.Close()
		cancel()
	}
	return ctx, closer, contract.New(invocation.arguments.ContractAddress, c, env.Logger), nil
}

// submit the transaction and print its hash
func (env *Environment) submit(ctx context.Context, invocation *invocation, caller *contract.Contract, signer *account.Account, quote *contract.Quote) error {
	tx, err := caller.Submit(ctx, invocation.call, signer, invocation.arguments.Value, quote)
	if err != nil {
		return fmt.Errorf("contract.Submit: %w", err)
	}

	env.printTransaction(invocation.network, tx)
	return nil
}

func (env *Environment) printTransaction(network *network.Network, tx *eth_types.Transaction) {
	hash := tx.Hash()
	fmt.Fprintf(env.Stdout, "Transaction hash: %s. You can check its status at %s\n",
		strings.TrimPrefix(hash.Hex(), "0x"), network.TransactionUrl(hash))
}
