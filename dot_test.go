package textcase

import (
	"errors"
	"fmt"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func TestToDot(t *testing.T) {
	var testCases = []struct {
		input  string
		expect string
	}{
		{input: "first name", expect: "first.name"},
		{input: "user_id", expect: "user.id"},
		{input: "SCREEN_NAME", expect: "screen.name"},
		{input: "convert-to-dot", expect: "convert.to.dot"},
		{input: "myVariable", expect: "my.variable"},
		{input: "JSONData", expect: "jsondata"},
		{input: "..leading.dots", expect: "leading.dots"},
		{input: "double  space", expect: "double.space"},
		{input: "trailing-", expect: "trailing."},
		{input: " - ", expect: ""},
		{input: "", expect: ""},
	}
	for i, testCase := range testCases {
		actual, err := ToDot(testCase.input)
		assert.Nil(t, err, fmt.Sprintf("dot (%v) %v", i, testCase.input))
		assert.EqualValues(t, testCase.expect, actual, fmt.Sprintf("dot (%v) %v", i, testCase.input))
	}
}

func TestToDotInvalid(t *testing.T) {
	for i, input := range []string{"invalid.end.", ".", "nested.also.invalid.."} {
		_, err := ToDot(input)
		assert.NotNil(t, err, fmt.Sprintf("dot invalid (%v)", i))
		var invalid *InvalidInputError
		assert.True(t, errors.As(err, &invalid), fmt.Sprintf("dot invalid kind (%v)", i))
		assert.EqualValues(t, "Invalid input: Strings ending with a dot are not allowed.", err.Error())
	}
}

func TestToDotProperties(t *testing.T) {
	inputs := []string{"first name", "user_id", "SCREEN_NAME", "convert-to-dot", "myVariable"}
	for i, input := range inputs {
		actual, err := ToDot(input)
		assert.Nil(t, err)
		assert.False(t, strings.Contains(actual, ".."), fmt.Sprintf("no double dot (%v)", i))
		assert.False(t, strings.HasPrefix(actual, "."), fmt.Sprintf("no leading dot (%v)", i))

		again, err := ToDot(actual)
		assert.Nil(t, err)
		assert.EqualValues(t, actual, again, fmt.Sprintf("idempotent (%v) %v", i, input))
	}
}

func TestToDotPtr(t *testing.T) {
	actual, err := ToDotPtr(nil)
	assert.Nil(t, err)
	assert.Nil(t, actual, "nil sentinel passes through")

	input := "SCREEN_NAME"
	actual, err = ToDotPtr(&input)
	assert.Nil(t, err)
	if assert.NotNil(t, actual) {
		assert.EqualValues(t, "screen.name", *actual)
	}
}
