// Package transaction builds the transactions that the callers sign and send.
package transaction

import (
	"fmt"
	"math/big"

	eth_common "github.com/ethereum/go-ethereum/common"
	eth_types "github.com/ethereum/go-ethereum/core/types"
)

// Parameters of the transaction, except the destination and the data.
type Parameters struct {
	From     eth_common.Address
	Nonce    uint64
	Gas      uint64   // gas limit
	GasPrice *big.Int // in Wei
	Value    *big.Int // in Wei, nil means zero
}

// Build the legacy transaction calling the smartcontract at the address.
func (parameters *Parameters) Build(to eth_common.Address, data []byte) (*eth_types.Transaction, error) {
	if parameters.GasPrice == nil {
		return nil, fmt.Errorf("missing gas price")
	}
	if parameters.GasPrice.Sign() < 0 {
		return nil, fmt.Errorf("negative gas price %s", parameters.GasPrice.String())
	}
	if parameters.Gas == 0 {
		return nil, fmt.Errorf("zero gas limit")
	}

	value := big.NewInt(0)
	if parameters.Value != nil {
		if parameters.Value.Sign() < 0 {
			return nil, fmt.Errorf("negative value %s", parameters.Value.String())
		}
		value = new(big.Int).Set(parameters.Value)
	}

	payload := make([]byte, len(data))
	copy(payload, data)

	return eth_types.NewTx(&eth_types.LegacyTx{
		Nonce:    parameters.Nonce,
		GasPrice: new(big.Int).Set(parameters.GasPrice),
		Gas:      parameters.Gas,
		To:       &to,
		Value:    value,
		Data:     payload,
	}), nil
}
