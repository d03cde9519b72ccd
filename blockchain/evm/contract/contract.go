// Package contract invokes the smartcontract functions.
//
// The read-only functions are called without the transaction.
// The other functions are sent as the signed transaction.
package contract

import (
	"context"
	"fmt"
	"math/big"

	"github.com/blocklords/contract-caller/app/account"
	"github.com/blocklords/contract-caller/blockchain/evm/abi"
	"github.com/blocklords/contract-caller/blockchain/evm/client"
	"github.com/blocklords/contract-caller/blockchain/evm/transaction"
	"github.com/blocklords/contract-caller/blockchain/evm/util"
	"github.com/blocklords/contract-caller/log"
	"github.com/ethereum/go-ethereum"
	eth_common "github.com/ethereum/go-ethereum/common"
	eth_types "github.com/ethereum/go-ethereum/core/types"
)

// Contract is the smartcontract on the blockchain
type Contract struct {
	Address eth_common.Address
	client  *client.Client
	logger  *log.Logger
}

// Quote is the gas that the transaction will spend
type Quote struct {
	Gas      uint64   // the gas limit
	GasPrice *big.Int // in Wei, with the multiplier applied
	Fee      *big.Int // Gas * network gas price * multiplier, in Wei
}

// New contract at the address
func New(address eth_common.Address, client *client.Client, parent *log.Logger) *Contract {
	return &Contract{
		Address: address,
		client:  client,
		logger:  parent.Child("contract", "address", address.Hex()),
	}
}

// Call the read-only function. Returns the unpacked outputs.
func (contract *Contract) Call(ctx context.Context, call *abi.Call) ([]interface{}, error) {
	contract.logger.Debug("call", "function", call.Method.Sig)

	output, err := contract.client.Call(ctx, ethereum.CallMsg{
		To:   &contract.Address,
		Data: call.Data,
	})
	if err != nil {
		return nil, fmt.Errorf("client.Call: %w", err)
	}

	values, err := call.Unpack(output)
	if err != nil {
		return nil, fmt.Errorf("call.Unpack: %w", err)
	}
	return values, nil
}

// Quote estimates the gas of the transaction.
//
// The network gas price is multiplied by the multiplier, the result is rounded down.
func (contract *Contract) Quote(ctx context.Context, call *abi.Call, from eth_common.Address, value *big.Int, multiplier *big.Rat) (*Quote, error) {
	gas, err := contract.client.EstimateGas(ctx, ethereum.CallMsg{
		From:  from,
		To:    &contract.Address,
		Value: value,
		Data:  call.Data,
	})
	if err != nil {
		return nil, fmt.Errorf("client.EstimateGas: %w", err)
	}

	price, err := contract.client.GasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("client.GasPrice: %w", err)
	}

	network_fee := new(big.Int).Mul(new(big.Int).SetUint64(gas), price)
	quote := &Quote{
		Gas:      gas,
		GasPrice: util.Multiply(price, multiplier),
		Fee:      util.Multiply(network_fee, multiplier),
	}
	contract.logger.Debug("quote", "gas", gas, "network_gas_price", price.String(), "gas_price", quote.GasPrice.String(), "multiplier", multiplier.RatString())

	return quote, nil
}

// Submit signs and sends the transaction calling the function.
// The nonce includes the pending transactions of the account.
func (contract *Contract) Submit(ctx context.Context, call *abi.Call, signer *account.Account, value *big.Int, quote *Quote) (*eth_types.Transaction, error) {
	nonce, err := contract.client.Nonce(ctx, signer.Address)
	if err != nil {
		return nil, fmt.Errorf("client.Nonce: %w", err)
	}

	parameters := transaction.Parameters{
		From:     signer.Address,
		Nonce:    nonce,
		Gas:      quote.Gas,
		GasPrice: quote.GasPrice,
		Value:    value,
	}
	tx, err := parameters.Build(contract.Address, call.Data)
	if err != nil {
		return nil, fmt.Errorf("parameters.Build: %w", err)
	}

	signed, err := signer.Sign(tx, contract.client.ChainId())
	if err != nil {
		return nil, fmt.Errorf("account.Sign: %w", err)
	}

	if err := contract.client.Send(ctx, signed); err != nil {
		return nil, fmt.Errorf("client.Send: %w", err)
	}

	return signed, nil
}
