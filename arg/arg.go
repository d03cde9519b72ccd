// Package arg is used to read command line flags of the contract callers.
//
// The callers share most of the flags. Each caller defines its own list:
//
//	TransactionFlags() for call_transaction
//	ViewFlags() for call_view_function
//	WriteFlags() for call_write_function
//
// ParseTransaction, ParseView and ParseWrite return the decoded Arguments.
// EnvPaths(args) returns the env file paths among the positional arguments.
package arg

import (
	"errors"
	"strings"
)

// Flag names
const (
	InfuraProjectId      = "infura-project-id"
	MetamaskDeveloperKey = "metamask-developer-key"
	ContractAddress      = "contract-address"
	AbiFile              = "ABI-file"
	FunctionName         = "function-name"
	FunctionArgs         = "function-args"
	FunctionKwargs       = "function-kwargs"
	Value                = "value"
	GasMultiplier        = "gas-multiplier"
)

// The default positional arguments, if --function-args is not given.
//
// The view function caller defaults to the empty object,
// while the transaction callers default to the empty list.
// Both of them mean no positional arguments.
const (
	DefaultPositional     = "[]"
	DefaultViewPositional = "{}"
)

// ErrInvalidArgument is returned when the flag value could not be used
var ErrInvalidArgument = errors.New("invalid argument")

// EnvPaths any command line data that comes after the flags are .env file paths
// Any positional argument that doesn't end with ".env" is skipped.
func EnvPaths(args []string) []string {
	paths := make([]string, 0)

	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			continue
		}

		if !strings.HasSuffix(arg, ".env") {
			continue
		}

		paths = append(paths, arg)
	}

	return paths
}
