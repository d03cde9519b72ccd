// Package vault reads the private key from the Hashicorp Vault.
//
// The caller logs in with the AppRole authentication,
// then reads the key from the Key-Value (version 2) secret.
package vault

import (
	"context"
	"fmt"

	"github.com/blocklords/contract-caller/common/data_type/key_value"
	"github.com/blocklords/contract-caller/configuration"
	"github.com/blocklords/contract-caller/log"
	hashicorp "github.com/hashicorp/vault/api"
	"github.com/hashicorp/vault/api/auth/approle"
)

// The vault parameters
const (
	Host             = "CALLER_VAULT_HOST"
	Port             = "CALLER_VAULT_PORT"
	Https            = "CALLER_VAULT_HTTPS"
	ApproleMountPath = "CALLER_VAULT_APPROLE_MOUNT_PATH"
	ApproleRoleId    = "CALLER_VAULT_APPROLE_ROLE_ID"
	ApproleSecretId  = "CALLER_VAULT_APPROLE_SECRET_ID"
	Path             = "CALLER_VAULT_PATH"
	SecretName       = "CALLER_VAULT_SECRET_NAME"
	SecretKey        = "CALLER_VAULT_SECRET_KEY"
)

// Vault is the wrapper around hashicorp vault client along with
// the path of the private key.
type Vault struct {
	logger      *log.Logger
	client      *hashicorp.Client
	app_config  *configuration.Config
	path        string // Key-Value credentials
	secret_name string
	secret_key  string

	// connection parameters
	approle_role_id    string
	approle_secret_id  string
	approle_mount_path string
}

// VaultConfigurations are setting the default configuration parameters.
//
// The values are the default values if it wasn't provided by the user
// Set the default value to nil, if the parameter is required from the user
var VaultConfigurations = configuration.DefaultConfig{
	Title: "Vault",
	Parameters: key_value.New(map[string]interface{}{
		Host:             "localhost",
		Port:             8200,
		Https:            false,
		ApproleMountPath: "approle",
		Path:             "secret",
		SecretName:       "contract-caller",
		SecretKey:        "private_key",
		ApproleRoleId:    nil,
		ApproleSecretId:  nil,
	}),
}

// New vault client. It doesn't connect to the vault until the key is requested.
func New(app_config *configuration.Config, parent *log.Logger) (*Vault, error) {
	app_config.SetDefaults(VaultConfigurations)

	// AppRole RoleID to log in to Vault
	if !app_config.Exist(ApproleRoleId) {
		return nil, fmt.Errorf("missing '%s' environment variable", ApproleRoleId)
	}
	// AppRole SecretID to log in to Vault
	if !app_config.Exist(ApproleSecretId) {
		return nil, fmt.Errorf("secure, missing '%s' environment variable", ApproleSecretId)
	}

	secure := app_config.GetBool(Https)
	host := app_config.GetString(Host)
	port := app_config.GetString(Port)

	config := hashicorp.DefaultConfig()
	if secure {
		config.Address = fmt.Sprintf("https://%s:%s", host, port)
	} else {
		config.Address = fmt.Sprintf("http://%s:%s", host, port)
	}

	client, err := hashicorp.NewClient(config)
	if err != nil {
		return nil, fmt.Errorf("hashicorp.NewClient: %w", err)
	}

	return &Vault{
		client:             client,
		logger:             parent.Child("vault", "address", config.Address),
		app_config:         app_config,
		path:               app_config.GetString(Path),
		secret_name:        app_config.GetString(SecretName),
		secret_key:         app_config.GetString(SecretKey),
		approle_mount_path: app_config.GetString(ApproleMountPath),
		approle_role_id:    app_config.GetString(ApproleRoleId),
		approle_secret_id:  app_config.GetString(ApproleSecretId),
	}, nil
}

// PrivateKey logs in to the vault and returns the private key.
func (v *Vault) PrivateKey(ctx context.Context) (string, error) {
	if timeout := v.app_config.RequestTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if _, err := v.login(ctx); err != nil {
		return "", fmt.Errorf("vault login error: %w", err)
	}

	value, err := v.get_string(ctx, v.secret_name, v.secret_key)
	if err != nil {
		return "", fmt.Errorf("vault.get_string: %w", err)
	}
	return value, nil
}

// A combination of a RoleID and a SecretID is required to log into Vault
// with AppRole authentication method.
//
// ref: https://learn.hashicorp.com/tutorials/vault/approle-best-practices?in=vault/auth-methods#secretid-delivery-best-practices
func (v *Vault) login(ctx context.Context) (*hashicorp.Secret, error) {
	v.logger.Debug("Vault login: begin")

	approleSecretID := &approle.SecretID{
		FromString: v.approle_secret_id,
	}

	appRoleAuth, err := approle.NewAppRoleAuth(
		v.approle_role_id,
		approleSecretID,
		approle.WithMountPath(v.approle_mount_path),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize approle authentication method: %w", err)
	}

	authInfo, err := v.client.Auth().Login(ctx, appRoleAuth)
	if err != nil {
		return nil, fmt.Errorf("unable to login using approle auth method: %w", err)
	}
	if authInfo == nil {
		return nil, fmt.Errorf("no approle info was returned after login")
	}

	v.logger.Debug("Vault login: success!")

	return authInfo, nil
}

// Returns the String in the secret, by key
func (v *Vault) get_string(ctx context.Context, secret_name string, key string) (string, error) {
	secret, err := v.client.KVv2(v.path).Get(ctx, secret_name)
	if err != nil {
		return "", fmt.Errorf("vault.client.Get: %w", err)
	}

	raw, ok := secret.Data[key]
	if !ok {
		return "", fmt.Errorf("the '%s' secret has no '%s' key", secret_name, key)
	}
	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("the '%s' key of '%s' secret is %T, expected a string", key, secret_name, raw)
	}

	return value, nil
}
