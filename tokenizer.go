package patternexp

import (
	"errors"
	"fmt"

	"golang.org/x/exp/utf8string"
)

var (
	// UnexpectedEndError is returned when a pattern ends in the middle of an
	// escape sequence, or when the parser hits something other than the end
	// of the pattern where the pattern must end.
	UnexpectedEndError = errors.New("unexpected end of pattern")
	// ParenthesesMismatchError is returned when a "(<regexp>)" group is never
	// closed before the pattern ends.
	ParenthesesMismatchError = errors.New("unbalanced parenthesis in regexp group")
)

// tokenizePolicy selects how the tokenizer reacts to malformed input: the
// strict policy fails, the lenient policy emits tokenInvalidChar tokens and
// keeps scanning.
type tokenizePolicy bool

const (
	tokenizePolicyLenient tokenizePolicy = false
	tokenizePolicyStrict  tokenizePolicy = true
)

type tokenizer struct {
	input     *utf8string.String
	policy    tokenizePolicy
	tokenList []token
	index     int
	nextIndex int
	codePoint rune
}

// tokenize scans input left to right in a single pass and returns the token
// sequence, terminated by exactly one tokenEnd.
func tokenize(input string, policy tokenizePolicy) ([]token, error) {
	t := tokenizer{
		input:     utf8string.NewString(input),
		policy:    policy,
		tokenList: make([]token, 0, len(input)),
	}

	length := t.input.RuneCount()

	for t.index < length {
		t.seekAndGetNextCodePoint(t.index)

		switch t.codePoint {
		case '*':
			t.addTokenWithDefaultPositionAndLength(tokenAsterisk)

		case '+', '?':
			t.addTokenWithDefaultPositionAndLength(tokenOtherModifier)

		case '{':
			t.addTokenWithDefaultPositionAndLength(tokenOpen)

		case '}':
			t.addTokenWithDefaultPositionAndLength(tokenClose)

		case '\\':
			if t.index == length-1 {
				if err := t.processTokenizingError(UnexpectedEndError, t.nextIndex, t.index); err != nil {
					return nil, err
				}

				continue
			}

			escapedIndex := t.nextIndex
			t.getNextCodePoint()
			t.addTokenWithDefaultLength(tokenEscapedChar, t.nextIndex, escapedIndex)

		case ':':
			namePosition := t.nextIndex
			nameStart := namePosition

			for namePosition < length {
				t.seekAndGetNextCodePoint(namePosition)
				if !isASCIILetter(t.codePoint) {
					break
				}

				namePosition = t.nextIndex
			}

			// The run may be empty: ":" followed by a non-letter yields a
			// name token with an empty value.
			t.addTokenWithDefaultLength(tokenName, namePosition, nameStart)

		case '(':
			depth := 1
			regexpPosition := t.nextIndex
			regexpStart := regexpPosition

			for depth > 0 && regexpPosition < length {
				t.seekAndGetNextCodePoint(regexpPosition)

				switch t.codePoint {
				case '(':
					depth++
				case ')':
					depth--
				}

				regexpPosition = t.nextIndex
			}

			if depth != 0 {
				if err := t.processTokenizingError(ParenthesesMismatchError, regexpStart, t.index); err != nil {
					return nil, err
				}

				continue
			}

			t.addToken(tokenRegexp, regexpPosition, regexpStart, regexpPosition-regexpStart-1)

		default:
			t.addTokenWithDefaultPositionAndLength(tokenChar)
		}
	}

	t.addTokenWithDefaultLength(tokenEnd, t.index, t.index)

	return t.tokenList, nil
}

func (t *tokenizer) getNextCodePoint() {
	t.codePoint = t.input.At(t.nextIndex)
	t.nextIndex++
}

func (t *tokenizer) seekAndGetNextCodePoint(index int) {
	t.nextIndex = index
	t.getNextCodePoint()
}

func (t *tokenizer) addToken(tType tokenType, nextPosition, valuePosition, valueLength int) {
	t.tokenList = append(t.tokenList, token{
		tType: tType,
		index: t.index,
		value: t.input.Slice(valuePosition, valuePosition+valueLength),
	})
	t.index = nextPosition
}

func (t *tokenizer) addTokenWithDefaultLength(tType tokenType, nextPosition, valuePosition int) {
	t.addToken(tType, nextPosition, valuePosition, nextPosition-valuePosition)
}

func (t *tokenizer) addTokenWithDefaultPositionAndLength(tType tokenType) {
	t.addTokenWithDefaultLength(tType, t.nextIndex, t.index)
}

func (t *tokenizer) processTokenizingError(kind error, nextPosition, valuePosition int) error {
	if t.policy == tokenizePolicyStrict {
		return fmt.Errorf("%w at offset %d", kind, t.index)
	}

	t.addTokenWithDefaultLength(tokenInvalidChar, nextPosition, valuePosition)

	return nil
}

func isASCIILetter(codePoint rune) bool {
	return (codePoint >= 'A' && codePoint <= 'Z') || (codePoint >= 'a' && codePoint <= 'z')
}
