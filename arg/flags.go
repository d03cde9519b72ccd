package arg

import "github.com/urfave/cli/v2"

func accessKeyFlag(name string) cli.Flag {
	return &cli.StringFlag{
		Name:     name,
		Aliases:  []string{"i"},
		Usage:    "Access key of the RPC provider",
		Required: true,
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     ContractAddress,
			Aliases:  []string{"c"},
			Usage:    "Address of the smartcontract",
			Required: true,
		},
		&cli.StringFlag{
			Name:     AbiFile,
			Aliases:  []string{"a"},
			Usage:    "Path to the ABI json file of the smartcontract",
			Required: true,
		},
		&cli.StringFlag{
			Name:     FunctionName,
			Aliases:  []string{"fn"},
			Usage:    "Name of the function, e.g. declareBounty, requireBounty etc.",
			Required: true,
		},
		&cli.StringFlag{
			Name:    FunctionArgs,
			Aliases: []string{"fa"},
			Usage: "A json list with function positional arguments. " +
				"If not specified, function will be called without positional arguments.",
		},
		&cli.StringFlag{
			Name:    FunctionKwargs,
			Aliases: []string{"fk"},
			Usage: "A json dictionary with function keyword arguments. " +
				"If not specified, function will be called without keyword arguments.",
		},
	}
}

func valueFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    Value,
		Aliases: []string{"v"},
		Usage: "If you call a payable function, specify this argument to pass this much Ether " +
			"(i.e. 0.01 means 0.01 Ether). Ignore this value for functions that are not payable.",
	}
}

// TransactionFlags are the flags of the transaction caller with gas estimation.
func TransactionFlags() []cli.Flag {
	flags := []cli.Flag{accessKeyFlag(InfuraProjectId)}
	flags = append(flags, commonFlags()...)

	return append(flags,
		valueFlag(),
		&cli.StringFlag{
			Name:    GasMultiplier,
			Aliases: []string{"g"},
			Value:   "1",
			Usage: "You can specify this value to pay higher (or lower) transaction fees and ensure your " +
				"transaction is included faster (or slower). E.g. --gas-multiplier=2 will make gas fees " +
				"twice as high.",
		},
	)
}

// ViewFlags are the flags of the read-only function caller.
func ViewFlags() []cli.Flag {
	flags := []cli.Flag{accessKeyFlag(MetamaskDeveloperKey)}
	return append(flags, commonFlags()...)
}

// WriteFlags are the flags of the transaction caller without gas estimation.
func WriteFlags() []cli.Flag {
	flags := []cli.Flag{accessKeyFlag(InfuraProjectId)}
	flags = append(flags, commonFlags()...)

	return append(flags, valueFlag())
}
