package command

import (
	"fmt"

	"github.com/blocklords/contract-caller/arg"
	"github.com/blocklords/contract-caller/blockchain/evm/abi"
	"github.com/urfave/cli/v2"
)

// View application calls the read-only function and prints the result.
// It doesn't need the private key.
func View(env *Environment) *cli.App {
	return &cli.App{
		Name:      "call_view_function",
		Usage:     "Call the read-only smartcontract function",
		ArgsUsage: "[.env files]",
		Flags:     arg.ViewFlags(),
		Action:    env.view,
	}
}

func (env *Environment) view(ctx *cli.Context) error {
	arguments, err := arg.ParseView(ctx)
	if err != nil {
		return fmt.Errorf("arg.ParseView: %w", err)
	}

	invocation, err := env.prepare(arguments)
	if err != nil {
		return err
	}

	network_ctx, closer, caller, err := env.connect(ctx.Context, invocation)
	if err != nil {
		return err
	}
	defer closer()

	outputs, err := caller.Call(network_ctx, invocation.call)
	if err != nil {
		return fmt.Errorf("contract.Call: %w", err)
	}

	fmt.Fprintf(env.Stdout, "Output: %s\n", abi.Format(outputs))
	return nil
}
