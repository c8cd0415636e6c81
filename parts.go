package patternexp

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// https://urlpattern.spec.whatwg.org/#full-wildcard-regexp-value
const fullWildcardRegexpValue = ".*"

type partType uint8

const (
	// partFixedText represents a simple fixed text string.
	partFixedText partType = iota
	// partRegexp represents a matching group with a custom regular expression.
	partRegexp
	// partSegmentWildcard represents a matching group that matches code points up to the next delimiter code point, like ":foo" without a custom regular expression.
	partSegmentWildcard
	// partFullWildcard represents a matching group that greedily matches all code points, like the "*" wildcard.
	partFullWildcard
)

type partModifier uint8

const (
	// The part does not have a modifier.
	partModifierNone partModifier = iota
	// The part has an optional modifier indicated by the U+003F (?) code point.
	partModifierOptional
	// The part has a "zero or more" modifier indicated by the U+002A (*) code point.
	partModifierZeroOrMore
	// The part has a "one or more" modifier indicated by the U+002B (+) code point.
	partModifierOneOrMore
)

type part struct {
	pType    partType
	value    string
	modifier partModifier
	name     string
	prefix   string
	suffix   string
}

type partList []part

// https://urlpattern.spec.whatwg.org/#generate-a-segment-wildcard-regexp
func generateSegmentWildcardRegexp(options Options) string {
	delimiter := ""
	if options.Delimiter != 0 {
		delimiter = string(options.Delimiter)
	}

	return "[^" + escapeRegexpString(delimiter) + "]+?"
}

// generateRegexpAndNameList renders the part sequence as one anchored regular
// expression and returns it together with the capture-group names in group
// order. Parts produced by parsePattern cannot make this fail.
// https://urlpattern.spec.whatwg.org/#generate-a-regular-expression-and-name-list
func (pl partList) generateRegexpAndNameList(options Options) (string, []string) {
	var result strings.Builder
	nameList := make([]string, 0, len(pl))

	if options.IgnoreCase {
		result.WriteString("(?i)")
	}

	result.WriteByte('^')

	for _, p := range pl {
		if p.pType == partFixedText {
			if p.modifier == partModifierNone {
				result.WriteString(escapeRegexpString(p.value))

				continue
			}

			result.WriteString("(?:")
			result.WriteString(escapeRegexpString(p.value))
			result.WriteByte(')')
			result.WriteByte(convertModifierToString(p.modifier))

			continue
		}

		nameList = append(nameList, p.name)

		regexpValue := p.value
		switch p.pType {
		case partSegmentWildcard:
			regexpValue = generateSegmentWildcardRegexp(options)
		case partFullWildcard:
			regexpValue = fullWildcardRegexpValue
		}

		if p.prefix == "" && p.suffix == "" {
			switch p.modifier {
			case partModifierNone, partModifierOptional:
				result.WriteByte('(')
				result.WriteString(regexpValue)
				result.WriteByte(')')

				if m := convertModifierToString(p.modifier); m != 0 {
					result.WriteByte(m)
				}

			default:
				result.WriteString("((?:")
				result.WriteString(regexpValue)
				result.WriteByte(')')
				result.WriteByte(convertModifierToString(p.modifier))
				result.WriteByte(')')
			}

			continue
		}

		if p.modifier == partModifierNone || p.modifier == partModifierOptional {
			result.WriteString("(?:")
			result.WriteString(escapeRegexpString(p.prefix))
			result.WriteByte('(')
			result.WriteString(regexpValue)
			result.WriteByte(')')
			result.WriteString(escapeRegexpString(p.suffix))
			result.WriteByte(')')

			if m := convertModifierToString(p.modifier); m != 0 {
				result.WriteByte(m)
			}

			continue
		}

		// Repetition with affixes: each repetition's suffix binds to the
		// next repetition's prefix inside a single capturing group.
		escapedPrefix := escapeRegexpString(p.prefix)
		escapedSuffix := escapeRegexpString(p.suffix)

		result.WriteString("(?:")
		result.WriteString(escapedPrefix)
		result.WriteString("((?:")
		result.WriteString(regexpValue)
		result.WriteString(")(?:")
		result.WriteString(escapedSuffix)
		result.WriteString(escapedPrefix)
		result.WriteString("(?:")
		result.WriteString(regexpValue)
		result.WriteString("))*)")
		result.WriteString(escapedSuffix)
		result.WriteByte(')')

		if p.modifier == partModifierZeroOrMore {
			result.WriteByte('?')
		}
	}

	result.WriteByte('$')

	return result.String(), nameList
}

// generatePatternString re-emits the part sequence as a canonical pattern
// string.
// https://urlpattern.spec.whatwg.org/#generate-a-pattern-string
func (pl partList) generatePatternString(options Options) string {
	var result strings.Builder

	maxIndex := len(pl) - 1
	for index := range pl {
		p := &pl[index]

		var previousPart, nextPart *part
		if index > 0 {
			previousPart = &pl[index-1]
		}
		if index < maxIndex {
			nextPart = &pl[index+1]
		}

		if p.pType == partFixedText {
			if p.modifier == partModifierNone {
				result.WriteString(escapePatternString(p.value))

				continue
			}

			result.WriteByte('{')
			result.WriteString(escapePatternString(p.value))
			result.WriteByte('}')
			result.WriteByte(convertModifierToString(p.modifier))

			continue
		}

		customName := isCustomName(p.name)
		needGrouping := p.suffix != "" ||
			(p.prefix != "" && (options.Prefix == 0 || p.prefix != string(options.Prefix)))

		// A following part that would be absorbed into the ":name" syntax
		// forces explicit grouping.
		if !needGrouping && customName &&
			p.pType == partSegmentWildcard &&
			p.modifier == partModifierNone &&
			nextPart != nil && nextPart.prefix == "" && nextPart.suffix == "" {
			if nextPart.pType == partFixedText {
				r, _ := utf8.DecodeRuneInString(nextPart.value)
				if isASCIILetter(r) {
					needGrouping = true
				}
			} else if !isCustomName(nextPart.name) {
				needGrouping = true
			}
		}

		if !needGrouping && p.prefix == "" &&
			previousPart != nil &&
			previousPart.pType == partFixedText &&
			options.Prefix != 0 {
			r, _ := utf8.DecodeLastRuneInString(previousPart.value)
			if r == options.Prefix {
				needGrouping = true
			}
		}

		if needGrouping {
			result.WriteByte('{')
		}

		result.WriteString(escapePatternString(p.prefix))

		if customName {
			result.WriteByte(':')
			result.WriteString(p.name)
		}

		switch p.pType {
		case partRegexp:
			result.WriteByte('(')
			result.WriteString(p.value)
			result.WriteByte(')')

		case partSegmentWildcard:
			if !customName {
				result.WriteByte('(')
				result.WriteString(generateSegmentWildcardRegexp(options))
				result.WriteByte(')')
			}

		case partFullWildcard:
			if !customName && (previousPart == nil ||
				previousPart.pType == partFixedText ||
				previousPart.modifier != partModifierNone ||
				needGrouping ||
				p.prefix != "") {
				result.WriteByte('*')
			} else {
				result.WriteByte('(')
				result.WriteString(fullWildcardRegexpValue)
				result.WriteByte(')')
			}
		}

		// A suffix starting with a letter would extend the ":name" run.
		if p.pType == partSegmentWildcard && customName && p.suffix != "" {
			r, _ := utf8.DecodeRuneInString(p.suffix)
			if isASCIILetter(r) {
				result.WriteByte('\\')
			}
		}

		result.WriteString(escapePatternString(p.suffix))

		if needGrouping {
			result.WriteByte('}')
		}

		if m := convertModifierToString(p.modifier); m != 0 {
			result.WriteByte(m)
		}
	}

	return result.String()
}

// isCustomName reports whether name was written by the pattern author rather
// than assigned as an ordinal (or left empty).
func isCustomName(name string) bool {
	if name == "" {
		return false
	}

	r, _ := utf8.DecodeRuneInString(name)

	return !unicode.IsDigit(r)
}

// https://urlpattern.spec.whatwg.org/#convert-a-modifier-to-a-string
func convertModifierToString(m partModifier) byte {
	switch m {
	case partModifierZeroOrMore:
		return '*'
	case partModifierOptional:
		return '?'
	case partModifierOneOrMore:
		return '+'
	default:
		return 0
	}
}
