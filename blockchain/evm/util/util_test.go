package util

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/suite"
)

// Define the suite, and absorb the built-in basic suite
// functionality from testify - including a T() method which
// returns the current testing context
type TestUtilSuite struct {
	suite.Suite
}

func (suite *TestUtilSuite) TestParseEther() {
	wei, err := ParseEther("0.01")
	suite.Require().NoError(err)
	suite.Require().Equal("10000000000000000", wei.String())

	wei, err = ParseEther("1")
	suite.Require().NoError(err)
	suite.Require().Equal("1000000000000000000", wei.String())

	wei, err = ParseEther("1e-2")
	suite.Require().NoError(err)
	suite.Require().Equal("10000000000000000", wei.String())

	wei, err = ParseEther("0")
	suite.Require().NoError(err)
	suite.Require().Zero(wei.Sign())

	// the fraction smaller than one wei is truncated
	wei, err = ParseEther("0.0000000000000000019")
	suite.Require().NoError(err)
	suite.Require().Equal("1", wei.String())

	wei, err = ParseEther("0.9999999999999999999")
	suite.Require().NoError(err)
	suite.Require().Equal("999999999999999999", wei.String())

	_, err = ParseEther("-1")
	suite.Require().Error(err)
	_, err = ParseEther("ten")
	suite.Require().Error(err)
	_, err = ParseEther("1/100")
	suite.Require().Error(err)
	_, err = ParseEther("")
	suite.Require().Error(err)
}

func (suite *TestUtilSuite) TestWeiToEther() {
	suite.Require().Equal("0.01", WeiToEther(big.NewInt(10_000_000_000_000_000)))
	suite.Require().Equal("1", WeiToEther(big.NewInt(1_000_000_000_000_000_000)))
	suite.Require().Equal("0", WeiToEther(big.NewInt(0)))
	suite.Require().Equal("0.000000000000000001", WeiToEther(big.NewInt(1)))
	suite.Require().Equal("0.000021", WeiToEther(big.NewInt(21_000_000_000_000)))

	large, ok := new(big.Int).SetString("123456789000000000000000000", 10)
	suite.Require().True(ok)
	suite.Require().Equal("123456789", WeiToEther(large))
}

func (suite *TestUtilSuite) TestParseMultiplier() {
	multiplier, err := ParseMultiplier("0.7")
	suite.Require().NoError(err)
	suite.Require().Equal("7/10", multiplier.RatString())

	multiplier, err = ParseMultiplier(" 2 ")
	suite.Require().NoError(err)
	suite.Require().Equal("2", multiplier.RatString())

	multiplier, err = ParseMultiplier("15e-1")
	suite.Require().NoError(err)
	suite.Require().Equal("3/2", multiplier.RatString())

	multiplier, err = ParseMultiplier("0")
	suite.Require().NoError(err)
	suite.Require().Zero(multiplier.Sign())

	for _, invalid := range []string{"-1", "-0.5", "NaN", "Inf", "+Inf", "-Inf", "1/3", "", "twice"} {
		_, err = ParseMultiplier(invalid)
		suite.Require().Error(err, invalid)
	}
}

func (suite *TestUtilSuite) multiply(amount int64, multiplier string) string {
	parsed, err := ParseMultiplier(multiplier)
	suite.Require().NoError(err)
	return Multiply(big.NewInt(amount), parsed).String()
}

func (suite *TestUtilSuite) TestMultiply() {
	suite.Require().Equal("1000000000", suite.multiply(1_000_000_000, "1"))
	suite.Require().Equal("1500000000", suite.multiply(1_000_000_000, "1.5"))
	suite.Require().Equal("2000000000", suite.multiply(1_000_000_000, "2"))
	suite.Require().Equal("1100000000", suite.multiply(1_000_000_000, "1.1"))
	suite.Require().Equal("0", suite.multiply(1_000_000_000, "0"))

	// decimal fractions that have no exact binary form
	suite.Require().Equal("14000000000", suite.multiply(20_000_000_000, "0.7"))
	suite.Require().Equal("23000000000", suite.multiply(10_000_000_000, "2.3"))
	suite.Require().Equal("7", suite.multiply(10, "0.7"))
	suite.Require().Equal("3", suite.multiply(10, "0.33"))

	// the result is rounded down
	suite.Require().Equal("333333333", Multiply(big.NewInt(1_000_000_000), big.NewRat(1, 3)).String())
	suite.Require().Equal("6", suite.multiply(9, "0.7"))

	// the amount is not modified
	price := big.NewInt(1_000_000_000)
	multiplier, err := ParseMultiplier("2.3")
	suite.Require().NoError(err)
	Multiply(price, multiplier)
	suite.Require().Equal("1000000000", price.String())
	suite.Require().Equal("23/10", multiplier.RatString())

	large, ok := new(big.Int).SetString("123456789123456789123456789", 10)
	suite.Require().True(ok)
	suite.Require().Equal("246913578246913578246913578", Multiply(large, big.NewRat(2, 1)).String())
	suite.Require().Equal("86419752386419752386419752", Multiply(large, big.NewRat(7, 10)).String())
}

func (suite *TestUtilSuite) TestParseAddress() {
	address, err := ParseAddress("0xb7E957790Ea36C7EAC30464dE74F13770fd6dA8A")
	suite.Require().NoError(err)
	suite.Require().Equal("0xb7E957790Ea36C7EAC30464dE74F13770fd6dA8A", address.Hex())

	// all lower case is accepted without checksum
	address, err = ParseAddress("0xb7e957790ea36c7eac30464de74f13770fd6da8a")
	suite.Require().NoError(err)
	suite.Require().Equal("0xb7E957790Ea36C7EAC30464dE74F13770fd6dA8A", address.Hex())

	// invalid checksum, the first letter case is changed
	_, err = ParseAddress("0xB7E957790Ea36C7EAC30464dE74F13770fd6dA8A")
	suite.Require().Error(err)

	// short address
	_, err = ParseAddress("0xb7e957790ea36c7eac30464de74f13770fd6da")
	suite.Require().Error(err)
	_, err = ParseAddress("not an address")
	suite.Require().Error(err)
}

// In order for 'go test' to run this suite, we need to create
// a normal test function and pass our suite to suite.Run
func TestUtil(t *testing.T) {
	suite.Run(t, new(TestUtilSuite))
}
