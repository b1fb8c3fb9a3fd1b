package textcase

import "unicode"

// Detect guesses the convention the supplied identifiers already follow.
// A dot separator wins over hyphen, camel is reported only for separator
// free words with an internal lower to upper transition; mixed or
// unrecognized shapes yield ConventionUndefined.
func Detect(words ...string) Convention {
	camels := 0
	var sep rune
	for _, word := range words {
		var wasUpper *bool
		for _, r := range word {
			if unicode.IsLetter(r) {
				isUpper := unicode.IsUpper(r)
				if wasUpper != nil && isUpper && !*wasUpper {
					camels++
				}
				wasUpper = &isUpper
				continue
			}
			switch r {
			case '.':
				sep = '.'
			case '-':
				if sep != '.' {
					sep = '-'
				}
			}
			wasUpper = nil
		}
	}
	switch sep {
	case '.':
		return ConventionDot
	case '-':
		return ConventionKebab
	}
	if camels > 0 {
		return ConventionCamel
	}
	return ConventionUndefined
}
