package textcase

import (
	"errors"
	"fmt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestToCamel(t *testing.T) {
	var testCases = []struct {
		input  string
		expect string
	}{
		{input: "first name", expect: "firstName"},
		{input: "user_id", expect: "userId"},
		{input: "SCREEN_NAME", expect: "screenName"},
		{input: "mobile-number", expect: "mobileNumber"},
		{input: "Single", expect: "single"},
		{input: "  leading space", expect: "leadingSpace"},
		{input: "double--dash", expect: "doubleDash"},
		{input: "trailing-", expect: "trailing"},
		{input: "version2beta", expect: "version2beta"},
		{input: "", expect: ""},
	}
	for i, testCase := range testCases {
		actual, err := ToCamel(testCase.input)
		assert.Nil(t, err, fmt.Sprintf("camel (%v) %v", i, testCase.input))
		assert.EqualValues(t, testCase.expect, actual, fmt.Sprintf("camel (%v) %v", i, testCase.input))
	}
}

func TestToCamelLoose(t *testing.T) {
	var testCases = []struct {
		input  string
		expect string
	}{
		{input: "first name", expect: "firstName"},
		{input: "user.id", expect: "userId"},
		{input: "wait*for*it", expect: "waitForIt"},
		{input: "SCREEN_NAME", expect: "screenName"},
		{input: "version2beta", expect: "version2beta"},
	}
	for i, testCase := range testCases {
		actual, err := ToCamelLoose(testCase.input)
		assert.Nil(t, err, fmt.Sprintf("loose (%v) %v", i, testCase.input))
		assert.EqualValues(t, testCase.expect, actual, fmt.Sprintf("loose (%v) %v", i, testCase.input))
	}
}

func TestToCamelInvalid(t *testing.T) {
	for i, input := range []string{"invalid_end_", "_", "also__invalid__"} {
		_, err := ToCamel(input)
		assert.NotNil(t, err, fmt.Sprintf("camel invalid (%v)", i))
		var invalid *InvalidInputError
		assert.True(t, errors.As(err, &invalid), fmt.Sprintf("camel invalid kind (%v)", i))
		assert.EqualValues(t, "Invalid input: Strings ending with an underscore are not allowed.", err.Error())

		_, err = ToCamelLoose(input)
		assert.NotNil(t, err, fmt.Sprintf("loose invalid (%v)", i))
	}
}

func TestToCamelPtr(t *testing.T) {
	actual, err := ToCamelPtr(nil)
	assert.Nil(t, err)
	assert.Nil(t, actual, "nil sentinel passes through")

	input := "first name"
	actual, err = ToCamelPtr(&input)
	assert.Nil(t, err)
	if assert.NotNil(t, actual) {
		assert.EqualValues(t, "firstName", *actual)
	}

	invalid := "invalid_end_"
	_, err = ToCamelPtr(&invalid)
	assert.NotNil(t, err)
}
