// Package abi keeps the smartcontract interface used by the contract callers.
//
// It's the wrapper over the go-ethereum abi.
// The functions are found by their name as it's written in the solidity code.
// The JSON arguments are converted into the abi types, then packed into the call data.
package abi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/blocklords/contract-caller/common/data_type/key_value"
	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ErrUnknownFunction is matched by the error returned when the abi has no function with the name.
var ErrUnknownFunction = errors.New("unknown function")

// UnknownFunctionError is returned by Resolve if the function is not in the abi.
type UnknownFunctionError struct {
	Name string
}

func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("method %s not found in abi", e.Name)
}

func (e *UnknownFunctionError) Is(target error) bool {
	return target == ErrUnknownFunction
}

// Abi is the smartcontract interface with the functions indexed by the name.
type Abi struct {
	geth_abi  abi.ABI
	functions map[string][]abi.Method // overloads sorted by the signature
}

// Call is the function with the converted arguments ready to be sent to the blockchain.
type Call struct {
	Method    abi.Method
	Arguments []interface{}
	Data      []byte // method id + packed arguments
}

// artifact is the output of the solidity compilers and frameworks.
// Only the abi is needed.
type artifact struct {
	Abi json.RawMessage `json:"abi"`
}

// Load the abi from the file.
//
// The file is either the abi json array
// or the build artifact with the "abi" field.
func Load(path string) (*Abi, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile('%s'): %w", path, err)
	}

	abi_obj, err := New(raw)
	if err != nil {
		return nil, fmt.Errorf("abi file '%s': %w", path, err)
	}

	return abi_obj, nil
}

// New abi from the json
func New(raw []byte) (*Abi, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var build artifact
		if err := json.Unmarshal(trimmed, &build); err != nil {
			return nil, fmt.Errorf("json.Unmarshal artifact: %w", err)
		}
		if len(build.Abi) == 0 {
			return nil, fmt.Errorf("the json object has no 'abi' field")
		}
		trimmed = build.Abi
	}

	geth_abi, err := abi.JSON(bytes.NewReader(trimmed))
	if err != nil {
		return nil, fmt.Errorf("failed to decompose abi to geth abi: %w", err)
	}

	functions := make(map[string][]abi.Method)
	for _, method := range geth_abi.Methods {
		functions[method.RawName] = append(functions[method.RawName], method)
	}
	for name := range functions {
		overloads := functions[name]
		sort.Slice(overloads, func(i, j int) bool {
			return overloads[i].Sig < overloads[j].Sig
		})
	}

	return &Abi{geth_abi: geth_abi, functions: functions}, nil
}

// Functions returns the sorted function names
func (a *Abi) Functions() []string {
	names := make([]string, 0, len(a.functions))
	for name := range a.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetMethod returns the overloads of the function
func (a *Abi) GetMethod(name string) ([]abi.Method, error) {
	overloads, ok := a.functions[name]
	if !ok {
		return nil, &UnknownFunctionError{Name: name}
	}
	return overloads, nil
}

// Resolve the function and its arguments.
//
// The overloads are tried in order, the first one that accepts the arguments is returned.
func (a *Abi) Resolve(name string, positional []interface{}, keyword key_value.KeyValue) (*Call, error) {
	overloads, err := a.GetMethod(name)
	if err != nil {
		return nil, err
	}

	failures := make([]string, 0, len(overloads))
	var first_err error
	for _, method := range overloads {
		call, err := resolve(method, positional, keyword)
		if err == nil {
			return call, nil
		}
		if first_err == nil {
			first_err = err
		}
		failures = append(failures, fmt.Sprintf("%s: %v", method.Sig, err))
	}

	if len(overloads) == 1 {
		return nil, fmt.Errorf("%s: %w", overloads[0].Sig, first_err)
	}
	return nil, fmt.Errorf("no '%s' overload accepts the arguments: %s", name, strings.Join(failures, "; "))
}

func resolve(method abi.Method, positional []interface{}, keyword key_value.KeyValue) (*Call, error) {
	values, err := bind(method.Inputs, positional, keyword)
	if err != nil {
		return nil, err
	}

	arguments := make([]interface{}, len(values))
	for i, input := range method.Inputs {
		arguments[i], err = convert(input.Type, values[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d '%s' (%s): %w", i, input.Name, input.Type.String(), err)
		}
	}

	packed, err := method.Inputs.Pack(arguments...)
	if err != nil {
		return nil, fmt.Errorf("method.Inputs.Pack: %w", err)
	}

	data := make([]byte, 0, len(method.ID)+len(packed))
	data = append(data, method.ID...)
	data = append(data, packed...)

	return &Call{
		Method:    method,
		Arguments: arguments,
		Data:      data,
	}, nil
}

// bind the positional and keyword arguments to the function inputs.
func bind(inputs abi.Arguments, positional []interface{}, keyword key_value.KeyValue) ([]interface{}, error) {
	if len(positional) > len(inputs) {
		return nil, fmt.Errorf("takes %d arguments but %d positional were given", len(inputs), len(positional))
	}

	values := make([]interface{}, len(inputs))
	bound := make([]bool, len(inputs))
	for i, value := range positional {
		values[i] = value
		bound[i] = true
	}

	names := make([]string, 0, len(keyword))
	for name := range keyword {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		index := -1
		for i, input := range inputs {
			if input.Name == name {
				index = i
				break
			}
		}
		if index == -1 {
			return nil, fmt.Errorf("unexpected keyword argument '%s'", name)
		}
		if bound[index] {
			return nil, fmt.Errorf("multiple values for argument '%s'", name)
		}
		values[index] = keyword[name]
		bound[index] = true
	}

	for i, input := range inputs {
		if !bound[i] {
			return nil, fmt.Errorf("missing argument %d '%s'", i, input.Name)
		}
	}

	return values, nil
}

// Unpack the output returned by the call to the function.
func (call *Call) Unpack(output []byte) ([]interface{}, error) {
	if len(call.Method.Outputs) > 0 && len(output) == 0 {
		return nil, fmt.Errorf("empty output of %s, the address might have no contract", call.Method.Sig)
	}

	values, err := call.Method.Outputs.Unpack(output)
	if err != nil {
		return nil, fmt.Errorf("method.Outputs.Unpack: %w", err)
	}
	return values, nil
}
