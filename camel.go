package textcase

import (
	"strings"
	"unicode"
)

// ToCamel converts input to camelCase, treating spaces, hyphens and
// underscores as word boundaries. Input ending with an underscore is rejected.
func ToCamel(input string) (string, error) {
	if strings.HasSuffix(input, "_") {
		return "", NewInvalidInputError(underscoreEndMessage)
	}
	return camelize(input, isCamelSeparator), nil
}

// ToCamelLoose converts input to camelCase, treating every rune that is not
// a letter or digit as a word boundary. Validation matches ToCamel.
func ToCamelLoose(input string) (string, error) {
	if strings.HasSuffix(input, "_") {
		return "", NewInvalidInputError(underscoreEndMessage)
	}
	return camelize(input, isLooseSeparator), nil
}

// ToCamelPtr is the sentinel aware variant of ToCamel, nil passes through
func ToCamelPtr(input *string) (*string, error) {
	if input == nil {
		return nil, nil
	}
	ret, err := ToCamel(*input)
	if err != nil {
		return nil, err
	}
	return &ret, nil
}

func isCamelSeparator(r rune) bool {
	return r == ' ' || r == '-' || r == '_'
}

func isLooseSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// camelize lowers the whole input first so that acronym runs collapse into
// plain words, then upper-cases the rune following each separator run; the
// first rune of the output always stays lower.
func camelize(input string, isSeparator func(r rune) bool) string {
	lowered := strings.ToLower(input)
	var result strings.Builder
	result.Grow(len(lowered))
	boundary := false
	for _, r := range lowered {
		if isSeparator(r) {
			boundary = true
			continue
		}
		if boundary && result.Len() > 0 {
			result.WriteRune(unicode.ToUpper(r))
			boundary = false
			continue
		}
		boundary = false
		result.WriteRune(r)
	}
	return result.String()
}
