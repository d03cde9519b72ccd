package arg

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/blocklords/contract-caller/blockchain/evm/util"
	"github.com/blocklords/contract-caller/common/data_type/key_value"
	eth_common "github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v2"
)

// Arguments of the contract caller, decoded from the flags
type Arguments struct {
	AccessKey       string
	ContractAddress eth_common.Address
	AbiFile         string
	FunctionName    string
	Positional      []interface{}
	Keyword         key_value.KeyValue
	Value           *big.Int // in Wei, nil if not given
	GasMultiplier   *big.Rat
	EnvPaths        []string
}

// ParseTransaction returns the arguments of the transaction caller with gas estimation.
func ParseTransaction(ctx *cli.Context) (*Arguments, error) {
	arguments, err := parse(ctx, InfuraProjectId, DefaultPositional)
	if err != nil {
		return nil, err
	}
	if arguments.Value, err = parseValue(ctx); err != nil {
		return nil, err
	}

	multiplier, err := util.ParseMultiplier(ctx.String(GasMultiplier))
	if err != nil {
		return nil, fmt.Errorf("%w: --%s should be a non negative number: %v", ErrInvalidArgument, GasMultiplier, err)
	}
	arguments.GasMultiplier = multiplier

	return arguments, nil
}

// ParseView returns the arguments of the read-only function caller.
func ParseView(ctx *cli.Context) (*Arguments, error) {
	return parse(ctx, MetamaskDeveloperKey, DefaultViewPositional)
}

// ParseWrite returns the arguments of the transaction caller without gas estimation.
func ParseWrite(ctx *cli.Context) (*Arguments, error) {
	arguments, err := parse(ctx, InfuraProjectId, DefaultPositional)
	if err != nil {
		return nil, err
	}
	if arguments.Value, err = parseValue(ctx); err != nil {
		return nil, err
	}

	return arguments, nil
}

func parse(ctx *cli.Context, access_key_flag string, default_positional string) (*Arguments, error) {
	address, err := util.ParseAddress(ctx.String(ContractAddress))
	if err != nil {
		return nil, fmt.Errorf("%w: --%s: %v", ErrInvalidArgument, ContractAddress, err)
	}

	raw_positional := default_positional
	if ctx.IsSet(FunctionArgs) {
		raw_positional = ctx.String(FunctionArgs)
	}
	positional, err := DecodePositional(raw_positional)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", FunctionArgs, err)
	}

	keyword := key_value.Empty()
	if ctx.IsSet(FunctionKwargs) {
		keyword, err = key_value.NewFromString(ctx.String(FunctionKwargs))
		if err != nil {
			return nil, fmt.Errorf("%w: --%s: %v", ErrInvalidArgument, FunctionKwargs, err)
		}
	}

	return &Arguments{
		AccessKey:       ctx.String(access_key_flag),
		ContractAddress: address,
		AbiFile:         ctx.String(AbiFile),
		FunctionName:    ctx.String(FunctionName),
		Positional:      positional,
		Keyword:         keyword,
		GasMultiplier:   big.NewRat(1, 1),
		EnvPaths:        EnvPaths(ctx.Args().Slice()),
	}, nil
}

func parseValue(ctx *cli.Context) (*big.Int, error) {
	if !ctx.IsSet(Value) {
		return nil, nil
	}

	wei, err := util.ParseEther(ctx.String(Value))
	if err != nil {
		return nil, fmt.Errorf("%w: --%s: %v", ErrInvalidArgument, Value, err)
	}

	return wei, nil
}

// DecodePositional decodes the positional arguments from the json.
//
// The json list elements are the arguments.
// For the json object, its keys are the arguments in the order they appear in the json.
// The numbers are decoded as json.Number.
func DecodePositional(raw string) ([]interface{}, error) {
	decoder := json.NewDecoder(strings.NewReader(raw))
	decoder.UseNumber()

	token, err := decoder.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: json: %v", ErrInvalidArgument, err)
	}
	delim, ok := token.(json.Delim)
	if !ok || (delim != '[' && delim != '{') {
		return nil, fmt.Errorf("%w: expected a json list, got %v", ErrInvalidArgument, token)
	}

	values := make([]interface{}, 0)
	if delim == '[' {
		for decoder.More() {
			var value interface{}
			if err := decoder.Decode(&value); err != nil {
				return nil, fmt.Errorf("%w: json: %v", ErrInvalidArgument, err)
			}
			values = append(values, value)
		}
	} else {
		seen := make(map[string]struct{})
		for decoder.More() {
			key_token, err := decoder.Token()
			if err != nil {
				return nil, fmt.Errorf("%w: json: %v", ErrInvalidArgument, err)
			}
			key := key_token.(string)

			var skip json.RawMessage
			if err := decoder.Decode(&skip); err != nil {
				return nil, fmt.Errorf("%w: json: %v", ErrInvalidArgument, err)
			}

			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			values = append(values, key)
		}
	}

	// the closing delimiter
	if _, err := decoder.Token(); err != nil {
		return nil, fmt.Errorf("%w: json: %v", ErrInvalidArgument, err)
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after the json", ErrInvalidArgument)
	}

	return values, nil
}
