package textcase

import (
	"strings"
	"unicode"
)

// ToKebab converts input to kebab-case. Word boundaries come from lower or
// digit to upper transitions, from the last letter of an acronym run
// followed by a capitalized word, and from separator or symbol runs. The
// result is lower-cased with hyphen runs collapsed and outer hyphens
// trimmed. Input ending with an underscore is rejected.
//
// Input with no separator and no upper-case rune short-circuits and is
// returned lower-cased as is, so symbols survive there ("a*b" stays "a*b")
// while on the full path they act as word boundaries ("a*B" gives "a-b").
func ToKebab(input string) (string, error) {
	if strings.HasSuffix(input, "_") {
		return "", NewInvalidInputError(underscoreEndMessage)
	}
	if isKebabPlain(input) {
		return strings.ToLower(input), nil
	}
	runes := []rune(input)
	marked := make([]rune, 0, len(runes)+3)
	for i, r := range runes {
		marked = append(marked, r)
		if i+1 >= len(runes) || !unicode.IsUpper(runes[i+1]) {
			continue
		}
		if unicode.IsLower(r) || unicode.IsDigit(r) {
			marked = append(marked, '-')
			continue
		}
		//acronym run boundary: split before the upper that starts a new word
		if unicode.IsUpper(r) && i+2 < len(runes) && unicode.IsLower(runes[i+2]) {
			marked = append(marked, '-')
		}
	}
	var result strings.Builder
	result.Grow(len(marked))
	boundary := false
	for _, r := range marked {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if boundary && result.Len() > 0 {
				result.WriteRune('-')
			}
			boundary = false
			result.WriteRune(unicode.ToLower(r))
			continue
		}
		boundary = true
	}
	return result.String(), nil
}

// ToKebabPtr is the sentinel aware variant of ToKebab, nil yields an empty
// string rather than passing through.
func ToKebabPtr(input *string) (string, error) {
	if input == nil {
		return "", nil
	}
	return ToKebab(*input)
}

// isKebabPlain reports a short-circuit, no separator and no upper-case rune
// means the input is already a single lower-case word.
func isKebabPlain(input string) bool {
	for _, r := range input {
		if r == '-' || r == '_' || unicode.IsSpace(r) || unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
