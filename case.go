// Package textcase converts identifiers between naming conventions:
// camelCase, dot.case and kebab-case. All converters are pure functions,
// safe for concurrent use, with per-converter trailing character validation.
package textcase

import "strings"

// Convention defines a target naming convention
type Convention string

const (
	ConventionUndefined  Convention = ""
	ConventionCamel      Convention = "camel"
	ConventionCamelLoose Convention = "camelLoose"
	ConventionDot        Convention = "dot"
	ConventionKebab      Convention = "kebab"
)

// IsDefined returns true if convention is defined
func (c Convention) IsDefined() bool {
	switch c {
	case ConventionCamel, ConventionCamelLoose, ConventionDot, ConventionKebab:
		return true
	}
	return false
}

// Convert applies the convention converter, an undefined convention is a nop
func (c Convention) Convert(text string) (string, error) {
	switch c {
	case ConventionCamel:
		return ToCamel(text)
	case ConventionCamelLoose:
		return ToCamelLoose(text)
	case ConventionDot:
		return ToDot(text)
	case ConventionKebab:
		return ToKebab(text)
	}
	return text, nil
}

// NewConvention creates a convention for the supplied name or alias
func NewConvention(name string) Convention {
	switch strings.ToLower(name) {
	case "camel", "camelcase", "lowercamel", "lc":
		return ConventionCamel
	case "camelloose", "loosecamel":
		return ConventionCamelLoose
	case "dot", "dotcase", "d":
		return ConventionDot
	case "kebab", "kebabcase", "dash", "kb":
		return ConventionKebab
	default:
		return ConventionUndefined
	}
}
