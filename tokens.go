package patternexp

// token is the tokenizer's unit of output. index is the rune offset of the
// token within the pattern string.
type token struct {
	tType tokenType
	index int
	value string
}

type tokenType uint8

const (
	// tokenOpen represents a U+007B ({) code point.
	tokenOpen tokenType = iota
	// tokenClose represents a U+007D (}) code point.
	tokenClose
	// tokenRegexp represents the body of a "(<regular expression>)" group, surrounding parentheses stripped.
	tokenRegexp
	// tokenName represents the identifier following a U+003A (:) code point. Identifiers are runs of ASCII letters and may be empty.
	tokenName
	// tokenChar represents a pattern code point without any special syntactical meaning.
	tokenChar
	// tokenEscapedChar represents a code point escaped using a backslash like "\<char>". Its value is the escaped code point.
	tokenEscapedChar
	// tokenOtherModifier represents a matching group modifier that is either the U+003F (?) or U+002B (+) code points.
	tokenOtherModifier
	// tokenAsterisk represents a U+002A (*) code point that can be either a wildcard matching group or a matching group modifier.
	tokenAsterisk
	// tokenEnd represents the end of the pattern string. Exactly one is produced, always last.
	tokenEnd
	// tokenInvalidChar represents input rejected under the strict policy; only the lenient policy produces it.
	tokenInvalidChar
)
