package command

import (
	"fmt"

	"github.com/blocklords/contract-caller/arg"
	"github.com/blocklords/contract-caller/blockchain/evm/util"
	"github.com/urfave/cli/v2"
)

// Transaction application estimates the gas, then sends the transaction
// with the gas price multiplied by the --gas-multiplier.
func Transaction(env *Environment) *cli.App {
	return &cli.App{
		Name:      "call_transaction",
		Usage:     "Send the transaction to the smartcontract function with the gas estimation",
		ArgsUsage: "[.env files]",
		Flags:     arg.TransactionFlags(),
		Action:    env.transaction,
	}
}

func (env *Environment) transaction(ctx *cli.Context) error {
	arguments, err := arg.ParseTransaction(ctx)
	if err != nil {
		return fmt.Errorf("arg.ParseTransaction: %w", err)
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

	quote, err := caller.Quote(network_ctx, invocation.call, signer.Address, arguments.Value, arguments.GasMultiplier)
	if err != nil {
		return fmt.Errorf("contract.Quote: %w", err)
	}
	fmt.Fprintf(env.Stdout, "Estimated gas (ETH): %s\n", util.WeiToEther(quote.Fee))

	return env.submit(network_ctx, invocation, caller, signer, quote)
}
