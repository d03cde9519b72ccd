// The security package returns the private key that signs the transactions.
//
// By default, the user types the key in the terminal.
// Set CALLER_PRIVATE_KEY_SOURCE=vault to read it from the Hashicorp Vault.
package security

import (
	"context"
	"fmt"

	"github.com/blocklords/contract-caller/configuration"
	"github.com/blocklords/contract-caller/log"
	"github.com/blocklords/contract-caller/security/prompt"
	"github.com/blocklords/contract-caller/security/vault"
)

// The private key sources
const (
	PromptSource = "prompt"
	VaultSource  = "vault"
)

// KeySource returns the private key
type KeySource interface {
	PrivateKey(ctx context.Context) (string, error)
}

// NewKeySource returns the source set in the configuration.
func NewKeySource(config *configuration.Config, logger *log.Logger) (KeySource, error) {
	source := config.GetString(configuration.PrivateKeySource)
	logger.Debug("private key source", "source", source)

	switch source {
	case PromptSource:
		return prompt.New(), nil
	case VaultSource:
		key_vault, err := vault.New(config, logger)
		if err != nil {
			return nil, fmt.Errorf("vault.New: %w", err)
		}
		return key_vault, nil
	default:
		return nil, fmt.Errorf("unsupported '%s' private key source. Expected either '%s' or '%s'", source, PromptSource, VaultSource)
	}
}
