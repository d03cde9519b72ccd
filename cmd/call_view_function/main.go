// The call_view_function calls the read-only smartcontract function and prints the result.
//
// Usage:
//
//	call_view_function [flags] [.env files]
//
// Run with --help to see the flags.
package main

import (
	"os"

	"github.com/blocklords/contract-caller/app/command"
	"github.com/blocklords/contract-caller/log"
)

func main() {
	logger, err := log.New("call_view_function", false)
	if err != nil {
		log.Fatal("log.New(`call_view_function`)", "error", err)
	}

	app := command.View(command.NewEnvironment(logger))
	if err := app.Run(os.Args); err != nil {
		logger.Fatal("call_view_function", "error", err)
	}
}
