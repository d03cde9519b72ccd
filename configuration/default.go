package configuration

import (
	"github.com/blocklords/contract-caller/common/data_type/key_value"
)

// DefaultConfig keeps the default parameters of the package.
// Set the parameter to nil, if it's required from the user.
type DefaultConfig struct {
	Title      string             // package title
	Parameters key_value.KeyValue // parameters
}

// The parameters shared by all commands
const (
	RequestTimeout   = "CALLER_REQUEST_TIMEOUT"    // seconds, 0 means no timeout
	LogDebug         = "CALLER_LOG_DEBUG"          // print the debug logs
	PrivateKeySource = "CALLER_PRIVATE_KEY_SOURCE" // "prompt" or "vault"
)

// CommonConfigurations are applied before any command starts.
var CommonConfigurations = DefaultConfig{
	Title: "Common",
	Parameters: key_value.Empty().
		Set(RequestTimeout, 0).
		Set(LogDebug, false).
		Set(PrivateKeySource, "prompt"),
}
