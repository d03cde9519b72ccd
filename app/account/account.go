// Package account handles the user's signing key
package account

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	eth_common "github.com/ethereum/go-ethereum/common"
	eth_types "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// Account that signs the transactions.
type Account struct {
	Address     eth_common.Address
	private_key *ecdsa.PrivateKey
}

// New account from the hex encoded private key.
// The key can have the 0x prefix. The spaces around the key are ignored.
func New(private_key string) (*Account, error) {
	raw := strings.TrimSpace(private_key)
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "0x"), "0X")
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty private key")
	}

	key, err := crypto.HexToECDSA(raw)
	if err != nil {
		// the key itself is not printed
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	return &Account{
		Address:     crypto.PubkeyToAddress(key.PublicKey),
		private_key: key,
	}, nil
}

// Sign the transaction for the chain with the EIP-155 replay protection.
func (account *Account) Sign(tx *eth_types.Transaction, chain_id *big.Int) (*eth_types.Transaction, error) {
	signed, err := eth_types.SignTx(tx, eth_types.LatestSignerForChainID(chain_id), account.private_key)
	if err != nil {
		return nil, fmt.Errorf("eth_types.SignTx: %w", err)
	}
	return signed, nil
}
