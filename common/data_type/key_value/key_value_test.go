package key_value

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
)

// Define the suite, and absorb the built-in basic suite
// functionality from testify - including a T() method which
// returns the current testing context
type TestKeyValueSuite struct {
	suite.Suite
}

func (suite *TestKeyValueSuite) TestNew() {
	empty := map[string]interface{}{}
	kv := New(empty)
	suite.Require().EqualValues(empty, kv)
	empty_kv := Empty()
	suite.Require().EqualValues(kv, empty_kv)
	suite.Require().Equal(empty, map[string]interface{}(kv))

	kv = Empty().Set("to", "0x01").Set("amount", json.Number("5"))
	suite.Require().True(kv.Exist("to"))
	suite.Require().False(kv.Exist("from"))
}

func (suite *TestKeyValueSuite) TestNewFromString() {
	// no null value could be used
	invalid_str := `{"param_1":null,"param_2":"string_value"}`
	_, err := NewFromString(invalid_str)
	suite.Require().Error(err)

	// no null value could be used in the nested values
	invalid_str = `{"param_1":1,"param_3":{"nested_1":5,"nested_2":[1,null]}}`
	_, err = NewFromString(invalid_str)
	suite.Require().Error(err)

	// not an object
	_, err = NewFromString(`[1,2]`)
	suite.Require().Error(err)
	_, err = NewFromString(`"text"`)
	suite.Require().Error(err)

	// malformed json
	_, err = NewFromString(`{"param_1":}`)
	suite.Require().Error(err)

	// trailing data
	_, err = NewFromString(`{"param_1":1} {}`)
	suite.Require().Error(err)
	_, err = NewFromString(`{"a": 1}}`)
	suite.Require().Error(err)
	_, err = NewFromString(`{"a": 1}]`)
	suite.Require().Error(err)
	_, err = NewFromString(`{"a": 1} 2`)
	suite.Require().Error(err)

	// the trailing white space is allowed
	kv, err := NewFromString("{\"a\": 1}\n ")
	suite.Require().NoError(err)
	suite.Require().Equal(json.Number("1"), kv["a"])

	str := `{"param_1":2,"param_2":"string_value","param_3":{"nested_1":5,"nested_2":"hello"}}`
	str_kv, err := NewFromString(str)
	suite.Require().NoError(err)

	expected := map[string]interface{}{
		"param_1": json.Number("2"),
		"param_2": "string_value",
		"param_3": map[string]interface{}{
			"nested_1": json.Number("5"),
			"nested_2": "hello",
		},
	}
	suite.Require().Equal(expected, map[string]interface{}(str_kv))
}

// In order for 'go test' to run this suite, we need to create
// a normal test function and pass our suite to suite.Run
func TestKeyValue(t *testing.T) {
	suite.Run(t, new(TestKeyValueSuite))
}
