// The call_transaction estimates the gas of the smartcontract function, then sends the transaction.
//
// Usage:
//
//	call_transaction [flags] [.env files]
//
// Run with --help to see the flags.
package main

import (
	"os"

	"github.com/blocklords/contract-caller/app/command"
	"github.com/blocklords/contract-caller/log"
)

func main() {
	logger, err := log.New("call_transaction", false)
	if err != nil {
		log.Fatal("log.New(`call_transaction`)", "error", err)
	}

	app := command.Transaction(command.NewEnvironment(logger))
	if err := app.Run(os.Args); err != nil {
		logger.Fatal("call_transaction", "error", err)
	}
}
