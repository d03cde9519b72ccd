package abi

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	eth_common "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Format the unpacked outputs for printing.
//
// The single output is printed as it is, multiple outputs as the list.
// Integers are decimal, addresses are checksummed, bytes are 0x prefixed hex,
// tuples are in the parentheses.
func Format(outputs []interface{}) string {
	if len(outputs) == 1 {
		return format(reflect.ValueOf(outputs[0]), false)
	}

	parts := make([]string, len(outputs))
	for i, output := range outputs {
		parts[i] = format(reflect.ValueOf(output), true)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func format(value reflect.Value, nested bool) string {
	if !value.IsValid() {
		return "null"
	}

	switch v := value.Interface().(type) {
	case *big.Int:
		if v == nil {
			return "0"
		}
		return v.String()
	case eth_common.Address:
		return v.Hex()
	case []byte:
		return hexutil.Encode(v)
	case string:
		if nested {
			return strconv.Quote(v)
		}
		return v
	}

	switch value.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(value.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(value.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(value.Uint(), 10)
	case reflect.Array:
		if value.Type().Elem().Kind() == reflect.Uint8 {
			raw := make([]byte, value.Len())
			reflect.Copy(reflect.ValueOf(raw), value)
			return hexutil.Encode(raw)
		}
		return formatList(value)
	case reflect.Slice:
		return formatList(value)
	case reflect.Struct:
		parts := make([]string, value.NumField())
		for i := 0; i < value.NumField(); i++ {
			parts[i] = format(value.Field(i), true)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case reflect.Ptr:
		if value.IsNil() {
			return "null"
		}
		return format(value.Elem(), nested)
	}

	return fmt.Sprintf("%v", value.Interface())
}

func formatList(value reflect.Value) string {
	parts := make([]string, value.Len())
	for i := 0; i < value.Len(); i++ {
		parts[i] = format(value.Index(i), true)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
