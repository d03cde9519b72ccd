package arg

import (
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/urfave/cli/v2"
)

// Define the suite, and absorb the built-in basic suite
// functionality from testify - including a T() method which
// returns the current testing context
type TestArgSuite struct {
	suite.Suite
	address string
}

func (suite *TestArgSuite) SetupTest() {
	suite.address = "0xb7E957790Ea36C7EAC30464dE74F13770fd6dA8A"
}

// run the application with the flags and the parser.
// returns the parsed arguments
func (suite *TestArgSuite) run(flags []cli.Flag, parser func(*cli.Context) (*Arguments, error), args ...string) (*Arguments, error) {
	var arguments *Arguments
	app := &cli.App{
		Name:      "test",
		Flags:     flags,
		Writer:    io.Discard,
		ErrWriter: io.Discard,
		Action: func(ctx *cli.Context) error {
			parsed, err := parser(ctx)
			arguments = parsed
			return err
		},
	}

	err := app.Run(append([]string{"test"}, args...))
	return arguments, err
}

func (suite *TestArgSuite) TestTransaction() {
	arguments, err := suite.run(TransactionFlags(), ParseTransaction,
		"--infura-project-id", "project",
		"-c", suite.address,
		"-a", "abi.json",
		"-fn", "transfer",
	)
	suite.Require().NoError(err)
	suite.Require().Equal("project", arguments.AccessKey)
	suite.Require().Equal(suite.address, arguments.ContractAddress.Hex())
	suite.Require().Equal("abi.json", arguments.AbiFile)
	suite.Require().Equal("transfer", arguments.FunctionName)
	suite.Require().Empty(arguments.Positional)
	suite.Require().Empty(arguments.Keyword)
	suite.Require().Nil(arguments.Value)
	suite.Require().Equal("1", arguments.GasMultiplier.RatString())
	suite.Require().Empty(arguments.EnvPaths)

	arguments, err = suite.run(TransactionFlags(), ParseTransaction,
		"-i", "project",
		"--contract-address", suite.address,
		"--ABI-file", "abi.json",
		"--function-name", "transfer",
		"-fa", `["0xb7E957790Ea36C7EAC30464dE74F13770fd6dA8A", 5]`,
		"-fk", `{"memo":"hello"}`,
		"-v", "0.01",
		"-g", "1.5",
		"./caller.env",
		"ignored.txt",
	)
	suite.Require().NoError(err)
	suite.Require().Equal([]interface{}{suite.address, json.Number("5")}, arguments.Positional)
	suite.Require().Equal("hello", arguments.Keyword["memo"])
	suite.Require().Equal("10000000000000000", arguments.Value.String())
	suite.Require().Equal("3/2", arguments.GasMultiplier.RatString())
	suite.Require().Equal([]string{"./caller.env"}, arguments.EnvPaths)
}

func (suite *TestArgSuite) TestRequired() {
	// missing the function name
	_, err := suite.run(TransactionFlags(), ParseTransaction,
		"-i", "project",
		"-c", suite.address,
		"-a", "abi.json",
	)
	suite.Require().Error(err)

	// the view caller has another name for the access key
	_, err = suite.run(ViewFlags(), ParseView,
		"--infura-project-id", "project",
		"-c", suite.address,
		"-a", "abi.json",
		"-fn", "balanceOf",
	)
	suite.Require().Error(err)

	arguments, err := suite.run(ViewFlags(), ParseView,
		"--metamask-developer-key", "developer",
		"-c", suite.address,
		"-a", "abi.json",
		"-fn", "balanceOf",
	)
	suite.Require().NoError(err)
	suite.Require().Equal("developer", arguments.AccessKey)
}

func (suite *TestArgSuite) TestInvalid() {
	base := []string{"-i", "project", "-c", suite.address, "-a", "abi.json", "-fn", "transfer"}

	// malformed positional arguments
	_, err := suite.run(TransactionFlags(), ParseTransaction, append(base, "-fa", `[1, 2`)...)
	suite.Require().ErrorIs(err, ErrInvalidArgument)

	// keyword arguments should be an object
	_, err = suite.run(TransactionFlags(), ParseTransaction, append(base, "-fk", `[1]`)...)
	suite.Require().ErrorIs(err, ErrInvalidArgument)

	// nothing is allowed after the keyword arguments object
	_, err = suite.run(TransactionFlags(), ParseTransaction, append(base, "-fk", `{"a": 1}}`)...)
	suite.Require().ErrorIs(err, ErrInvalidArgument)
	_, err = suite.run(TransactionFlags(), ParseTransaction, append(base, "-fk", `{"a": 1}]`)...)
	suite.Require().ErrorIs(err, ErrInvalidArgument)

	// value is not a number
	_, err = suite.run(WriteFlags(), ParseWrite, append(base, "-v", "much")...)
	suite.Require().ErrorIs(err, ErrInvalidArgument)

	// negative gas multiplier
	_, err = suite.run(TransactionFlags(), ParseTransaction, append(base, "-g", "-1")...)
	suite.Require().ErrorIs(err, ErrInvalidArgument)

	// the gas multiplier should be a finite decimal number
	for _, multiplier := range []string{"NaN", "Inf", "1/2", "twice"} {
		_, err = suite.run(TransactionFlags(), ParseTransaction, append(base, "-g", multiplier)...)
		suite.Require().ErrorIs(err, ErrInvalidArgument, multiplier)
	}

	// the write caller doesn't support gas multiplier
	_, err = suite.run(WriteFlags(), ParseWrite, append(base, "-g", "2")...)
	suite.Require().Error(err)

	// the view caller doesn't accept value
	view_base := []string{"-i", "developer", "-c", suite.address, "-a", "abi.json", "-fn", "get"}
	_, err = suite.run(ViewFlags(), ParseView, append(view_base, "-v", "1")...)
	suite.Require().Error(err)

	// invalid address
	_, err = suite.run(WriteFlags(), ParseWrite, "-i", "project", "-c", "0x01", "-a", "abi.json", "-fn", "transfer")
	suite.Require().True(errors.Is(err, ErrInvalidArgument))
}

func (suite *TestArgSuite) TestWrite() {
	arguments, err := suite.run(WriteFlags(), ParseWrite,
		"-i", "project",
		"-c", suite.address,
		"-a", "abi.json",
		"-fn", "deposit",
		"--value", "0.01",
	)
	suite.Require().NoError(err)
	suite.Require().Equal("10000000000000000", arguments.Value.String())
	suite.Require().Equal("1", arguments.GasMultiplier.RatString())
	suite.Require().Empty(arguments.Positional)
}

func (suite *TestArgSuite) TestDecodePositional() {
	values, err := DecodePositional(DefaultPositional)
	suite.Require().NoError(err)
	suite.Require().Empty(values)

	values, err = DecodePositional(DefaultViewPositional)
	suite.Require().NoError(err)
	suite.Require().Empty(values)

	values, err = DecodePositional(`[1, "two", true, [3], {"four": 4}]`)
	suite.Require().NoError(err)
	suite.Require().Equal([]interface{}{
		json.Number("1"),
		"two",
		true,
		[]interface{}{json.Number("3")},
		map[string]interface{}{"four": json.Number("4")},
	}, values)

	// the keys of the object are the arguments, in the json order
	values, err = DecodePositional(`{"b": 1, "a": [2], "b": 3}`)
	suite.Require().NoError(err)
	suite.Require().Equal([]interface{}{"b", "a"}, values)

	invalid := []string{``, `5`, `"text"`, `[1,`, `[1] [2]`, `{"a"}`, `nul`}
	for _, raw := range invalid {
		_, err = DecodePositional(raw)
		suite.Require().ErrorIs(err, ErrInvalidArgument, raw)
	}
}

func (suite *TestArgSuite) TestEnvPaths() {
	paths := EnvPaths([]string{"--plain", "./.test.env", "file.txt", "prod.env"})
	suite.Require().Equal([]string{"./.test.env", "prod.env"}, paths)

	suite.Require().Empty(EnvPaths(nil))
}

// In order for 'go test' to run this suite, we need to create
// a normal test function and pass our suite to suite.Run
func TestArg(t *testing.T) {
	suite.Run(t, new(TestArgSuite))
}
