// The call_write_function sends the transaction to the smartcontract function.
//
// Usage:
//
//	call_write_function [flags] [.env files]
//
// Run with --help to see the flags.
package main

import (
	"os"

	"github.com/blocklords/contract-caller/app/command"
	"github.com/blocklords/contract-caller/log"
)

func main() {
	logger, err := log.New("call_write_function", false)
	if err != nil {
		log.Fatal("log.New(`call_write_function`)", "error", err)
	}

	app := command.Write(command.NewEnvironment(logger))
	if err := app.Run(os.Args); err != nil {
		logger.Fatal("call_write_function", "error", err)
	}
}
