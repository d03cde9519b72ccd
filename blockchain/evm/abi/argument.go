package abi

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"

	"github.com/blocklords/contract-caller/blockchain/evm/util"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
)

// convert the decoded json value into the go type expected by the abi type.
//
// The numbers are json.Number or strings (decimal or 0x prefixed hex).
// The addresses and bytes are 0x prefixed hex strings.
// The arrays are json lists, the tuples are json lists or objects.
func convert(t abi.Type, value interface{}) (interface{}, error) {
	switch t.T {
	case abi.IntTy, abi.UintTy:
		return convertInteger(t, value)
	case abi.BoolTy:
		b, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("expected a boolean, got %v", value)
		}
		return b, nil
	case abi.StringTy:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("expected a string, got %v", value)
		}
		return s, nil
	case abi.AddressTy:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("expected an address string, got %v", value)
		}
		address, err := util.ParseAddress(s)
		if err != nil {
			return nil, err
		}
		return address, nil
	case abi.BytesTy:
		return convertBytes(value)
	case abi.FixedBytesTy, abi.FunctionTy:
		size := t.Size
		if t.T == abi.FunctionTy {
			size = 24
		}
		raw, err := convertBytes(value)
		if err != nil {
			return nil, err
		}
		if len(raw) != size {
			return nil, fmt.Errorf("expected %d bytes, got %d", size, len(raw))
		}
		array := reflect.New(t.GetType()).Elem()
		reflect.Copy(array, reflect.ValueOf(raw))
		return array.Interface(), nil
	case abi.SliceTy, abi.ArrayTy:
		return convertList(t, value)
	case abi.TupleTy:
		return convertTuple(t, value)
	default:
		return nil, fmt.Errorf("the '%s' type is not supported", t.String())
	}
}

func convertInteger(t abi.Type, value interface{}) (interface{}, error) {
	var raw string
	switch v := value.(type) {
	case json.Number:
		raw = v.String()
	case string:
		raw = v
	default:
		return nil, fmt.Errorf("expected an integer, got %v", value)
	}

	// ParseBig256 returns zero for the empty string
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty integer")
	}
	number, ok := math.ParseBig256(raw)
	if !ok {
		return nil, fmt.Errorf("'%s' is not an integer", raw)
	}

	if t.T == abi.UintTy {
		if number.Sign() < 0 {
			return nil, fmt.Errorf("%s is negative", number.String())
		}
		if number.BitLen() > t.Size {
			return nil, fmt.Errorf("%s overflows %s", number.String(), t.String())
		}
	} else {
		upper := new(big.Int).Lsh(big.NewInt(1), uint(t.Size-1))
		lower := new(big.Int).Neg(upper)
		if number.Cmp(lower) < 0 || number.Cmp(upper) >= 0 {
			return nil, fmt.Errorf("%s overflows %s", number.String(), t.String())
		}
	}

	go_type := t.GetType()
	if go_type == reflect.TypeOf(&big.Int{}) {
		return number, nil
	}

	sized := reflect.New(go_type).Elem()
	if t.T == abi.UintTy {
		sized.SetUint(number.Uint64())
	} else {
		sized.SetInt(number.Int64())
	}
	return sized.Interface(), nil
}

func convertBytes(value interface{}) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("expected a 0x prefixed hex string, got %v", value)
	}
	raw, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("hexutil.Decode('%s'): %w", s, err)
	}
	return raw, nil
}

func convertList(t abi.Type, value interface{}) (interface{}, error) {
	list, ok := value.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected a list, got %v", value)
	}

	var result reflect.Value
	if t.T == abi.ArrayTy {
		if len(list) != t.Size {
			return nil, fmt.Errorf("expected %d elements, got %d", t.Size, len(list))
		}
		result = reflect.New(t.GetType()).Elem()
	} else {
		result = reflect.MakeSlice(t.GetType(), len(list), len(list))
	}

	for i, element := range list {
		converted, err := convert(*t.Elem, element)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		result.Index(i).Set(reflect.ValueOf(converted))
	}

	return result.Interface(), nil
}

func convertTuple(t abi.Type, value interface{}) (interface{}, error) {
	var elements []interface{}

	switch v := value.(type) {
	case []interface{}:
		if len(v) != len(t.TupleElems) {
			return nil, fmt.Errorf("expected %d tuple components, got %d", len(t.TupleElems), len(v))
		}
		elements = v
	case map[string]interface{}:
		if len(v) != len(t.TupleRawNames) {
			return nil, fmt.Errorf("expected %d tuple components, got %d", len(t.TupleRawNames), len(v))
		}
		elements = make([]interface{}, len(t.TupleRawNames))
		for i, name := range t.TupleRawNames {
			element, ok := v[name]
			if !ok {
				return nil, fmt.Errorf("missing tuple component '%s'", name)
			}
			elements[i] = element
		}
	default:
		return nil, fmt.Errorf("expected a list or an object, got %v", value)
	}

	tuple := reflect.New(t.TupleType).Elem()
	for i, element := range elements {
		converted, err := convert(*t.TupleElems[i], element)
		if err != nil {
			return nil, fmt.Errorf("tuple component %d: %w", i, err)
		}
		tuple.Field(i).Set(reflect.ValueOf(converted))
	}

	return tuple.Interface(), nil
}
