package command

import (
	"fmt"
	"math/big"

	"github.com/blocklords/contract-caller/arg"
	"github.com/urfave/cli/v2"
)

// Write application sends the transaction at the network gas price.
// The gas limit is estimated by the node, nothing is printed before sending.
func Write(env *Environment) *cli.App {
	return &cli.App{
		Name:      "call_write_function",
		Usage:     "Send the transaction to the smartcontract function",
		ArgsUsage: "[.env files]",
		Flags:     arg.WriteFlags(),
		Action:    env.write,
	}
}

func (env *Environment) write(ctx *cli.Context) error {
	arguments, err := arg.ParseWrite(ctx)
	if err != nil {
		return fmt.Errorf("arg.ParseWrite: %w", err)
	}

	invocation, err := env.prepare(arguments)
	if err != nil {
		return err
	}

	signer, err := env.signer(ctx.Context, invocation)
	if err != nil {
		return err
	}

	network_ctx, closer, caller, err := env.connect(ctx.Context, invocation)
	if err != nil {
		return err
	}
	defer closer()

	quote, err := caller.Quote(network_ctx, invocation.call, signer.Address, arguments.Value, big.NewRat(1, 1))
	if err != nil {
		return fmt.Errorf("contract.Quote: %w", err)
	}

	return env.submit(network_ctx, invocation, caller, signer, quote)
}
