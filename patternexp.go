// Package patternexp compiles URL-routing pattern strings into regular
// expressions, following the pattern-string grammar of the WHATWG URL Pattern
// standard (https://urlpattern.spec.whatwg.org/).
//
// A pattern mixes literal text with named placeholders (":name"), full
// wildcards ("*"), custom regular-expression groups ("(...)"), grouping
// braces ("{...}") and the "?", "*" and "+" repetition modifiers. Compile
// turns such a pattern into one anchored regular expression plus the ordered
// list of capture-group names; executing the expression against real strings
// is left to the caller.
package patternexp

// Options configures a single compilation. The zero value compiles patterns
// with no delimiter, no prefix handling, case-sensitively, and without
// literal encoding.
// https://urlpattern.spec.whatwg.org/#options-header
type Options struct {
	// Delimiter is the code point separating segments, typically '/' for
	// pathnames: segment wildcards match one or more code points excluding
	// it. Zero means unset.
	Delimiter rune
	// Prefix is the code point absorbed as a group's prefix when it
	// immediately precedes one, typically '/' for pathnames. Zero means
	// unset; any candidate prefix then stays literal text.
	Prefix rune
	// IgnoreCase makes the generated expression case-insensitive.
	IgnoreCase bool
	// EncodeLiteral, when non-nil, is applied to every run of literal text,
	// group prefixes and suffixes included, before it is stored. See
	// PathnameEncoder and the other encoders in this package.
	// https://urlpattern.spec.whatwg.org/#encoding-callback
	EncodeLiteral func(string) (string, error)
}

// Compile parses pattern and returns an anchored regular-expression string
// together with the capture-group names in group order. The expression
// matches whole inputs, never substrings.
//
// Compilation is deterministic and free of shared state; concurrent calls
// need no coordination. Errors are one of UnexpectedEndError,
// ParenthesesMismatchError, MissingClosingCurlyError and DuplicateNameError,
// matchable with errors.Is.
func Compile(pattern string, options Options) (string, []string, error) {
	tokenList, err := tokenize(pattern, tokenizePolicyStrict)
	if err != nil {
		return "", nil, err
	}

	pl, err := parsePattern(tokenList, options)
	if err != nil {
		return "", nil, err
	}

	regexp, nameList := pl.generateRegexpAndNameList(options)

	return regexp, nameList, nil
}

// Normalize parses pattern and re-emits it in canonical form: redundant
// braces are dropped, required ones added, and code points that would change
// meaning are escaped. Patterns with the same canonical form compile to the
// same regular expression.
func Normalize(pattern string, options Options) (string, error) {
	tokenList, err := tokenize(pattern, tokenizePolicyStrict)
	if err != nil {
		return "", err
	}

	pl, err := parsePattern(tokenList, options)
	if err != nil {
		return "", err
	}

	return pl.generatePatternString(options), nil
}
