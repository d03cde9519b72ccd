// Package key_value defines the map type that keeps the JSON decoded values.
// The numbers are kept as json.Number, so that large integers don't lose the precision.
package key_value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// identical to the golang map
type KeyValue map[string]interface{}

// New converts the map to the key-value data type
func New(key_value map[string]interface{}) KeyValue {
	return KeyValue(key_value)
}

// Empty key value
func Empty() KeyValue {
	return KeyValue(map[string]interface{}{})
}

// NewFromString decodes the JSON object.
// The numbers are decoded as json.Number.
// The null values are not accepted, neither in the nested objects.
func NewFromString(data string) (KeyValue, error) {
	var raw interface{}

	decoder := json.NewDecoder(bytes.NewReader([]byte(data)))
	decoder.UseNumber()
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("json.Decode: %w", err)
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after the json object")
	}

	object, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("expected a json object, got %T", raw)
	}

	key_value := New(object)
	if err := key_value.noNull(); err != nil {
		return nil, err
	}

	return key_value, nil
}

// Set the parameter. Returns the same key value, so the calls could be chained.
func (k KeyValue) Set(name string, value interface{}) KeyValue {
	k[name] = value
	return k
}

// Exist returns true if the parameter is set
func (k KeyValue) Exist(name string) bool {
	_, ok := k[name]
	return ok
}

// noNull returns an error if any value in the tree is null
func (k KeyValue) noNull() error {
	for name, value := range k {
		if err := noNull(value); err != nil {
			return fmt.Errorf("parameter '%s': %w", name, err)
		}
	}

	return nil
}

func noNull(value interface{}) error {
	switch v := value.(type) {
	case nil:
		return errors.New("null value is not supported")
	case map[string]interface{}:
		return New(v).noNull()
	case []interface{}:
		for i, element := range v {
			if err := noNull(element); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}
	}

	return nil
}
