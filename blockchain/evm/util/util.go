// Package util keeps the conversions between the human readable values
// and the values the EVM blockchains operate with.
package util

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	eth_common "github.com/ethereum/go-ethereum/common"
	eth_parameters "github.com/ethereum/go-ethereum/params"
)

// ParseEther parses the decimal amount of Ether, for example "0.01",
// and returns it in Wei. The fraction smaller than one Wei is truncated.
//
// https://github.com/ethereum/go-ethereum/issues/21221
func ParseEther(value string) (*big.Int, error) {
	value = strings.TrimSpace(value)
	if strings.Contains(value, "/") {
		return nil, fmt.Errorf("'%s' is not a decimal number", value)
	}
	eth, ok := new(big.Rat).SetString(value)
	if !ok {
		return nil, fmt.Errorf("'%s' is not a number", value)
	}
	if eth.Sign() < 0 {
		return nil, fmt.Errorf("'%s' is negative", value)
	}

	wei := new(big.Rat).Mul(eth, new(big.Rat).SetInt64(eth_parameters.Ether))
	return new(big.Int).Quo(wei.Num(), wei.Denom()), nil
}

// WeiToEther returns the Wei amount as decimal Ether string.
// The trailing zeros of the fraction are dropped: 10^16 Wei is "0.01".
func WeiToEther(wei *big.Int) string {
	ether := new(big.Rat).SetFrac(wei, big.NewInt(eth_parameters.Ether))
	text := ether.FloatString(18)
	text = strings.TrimRight(text, "0")
	text = strings.TrimSuffix(text, ".")
	if text == "" || text == "-" {
		return "0"
	}

	return text
}

// ParseMultiplier parses the decimal multiplier, for example "1.5".
// The text is kept exact, "0.7" is 7/10 and not its binary approximation.
func ParseMultiplier(value string) (*big.Rat, error) {
	value = strings.TrimSpace(value)
	if strings.Contains(value, "/") {
		return nil, fmt.Errorf("'%s' is not a decimal number", value)
	}
	multiplier, ok := new(big.Rat).SetString(value)
	if !ok {
		return nil, fmt.Errorf("'%s' is not a number", value)
	}
	if multiplier.Sign() < 0 {
		return nil, fmt.Errorf("'%s' is negative", value)
	}

	return multiplier, nil
}

// Multiply the non negative amount by the multiplier.
// The result is rounded down to the integer.
func Multiply(amount *big.Int, multiplier *big.Rat) *big.Int {
	product := new(big.Rat).Mul(new(big.Rat).SetInt(amount), multiplier)
	return new(big.Int).Quo(product.Num(), product.Denom())
}

// ParseAddress parses the hex address.
// If the address has the upper and lower case letters,
// then it should be a valid EIP-55 checksum address.
func ParseAddress(value string) (eth_common.Address, error) {
	if !eth_common.IsHexAddress(value) {
		return eth_common.Address{}, fmt.Errorf("'%s' is not a hex address", value)
	}
	address := eth_common.HexToAddress(value)

	hex := strings.TrimPrefix(strings.TrimPrefix(value, "0x"), "0X")
	if hex != strings.ToLower(hex) && hex != strings.ToUpper(hex) {
		if address.Hex()[2:] != hex {
			return eth_common.Address{}, errors.New("'" + value + "' has an invalid checksum, expected " + address.Hex())
		}
	}

	return address, nil
}
