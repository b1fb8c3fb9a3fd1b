package textcase

import (
	"strings"
	"unicode"
)

// ToDot converts input to dot.case. A dot is inserted at each lower to upper
// transition, separator runs become a single dot, the result is lower-cased
// with duplicate dots collapsed and leading dots removed. Input ending with
// a dot is rejected. No dot is inserted inside an upper-case run, so
// acronyms stay a single word here, unlike in ToKebab.
func ToDot(input string) (string, error) {
	if strings.HasSuffix(input, ".") {
		return "", NewInvalidInputError(dotEndMessage)
	}
	var result strings.Builder
	result.Grow(len(input) + 3)
	var prev rune
	hasPrev := false
	boundary := false
	for _, r := range input {
		if r == '-' || r == '_' || unicode.IsSpace(r) {
			boundary = true
			hasPrev = false
			continue
		}
		if r == '.' {
			boundary = true
			hasPrev = false
			continue
		}
		if !boundary && hasPrev && unicode.IsLower(prev) && unicode.IsUpper(r) {
			boundary = true
		}
		if boundary && result.Len() > 0 {
			result.WriteRune('.')
		}
		boundary = false
		result.WriteRune(unicode.ToLower(r))
		prev = r
		hasPrev = true
	}
	if boundary && result.Len() > 0 { //trailing separator run still maps to a dot
		result.WriteRune('.')
	}
	return result.String(), nil
}

// ToDotPtr is the sentinel aware variant of ToDot, nil passes through
func ToDotPtr(input *string) (*string, error) {
	if input == nil {
		return nil, nil
	}
	ret, err := ToDot(*input)
	if err != nil {
		return nil, err
	}
	return &ret, nil
}
