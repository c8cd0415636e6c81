package patternexp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// MissingClosingCurlyError is returned when a "{...}" group is never
	// closed before the pattern ends.
	MissingClosingCurlyError = errors.New("missing closing '}' in group")
	// DuplicateNameError is returned when two matching groups of one pattern
	// resolve to the same name.
	DuplicateNameError = errors.New("duplicate group name")
)

// patternParser consumes a token sequence exactly once, left to right, with
// one token of lookahead. All state is local to a single parsePattern call.
type patternParser struct {
	tokenList             []token
	options               Options
	encode                func(string) (string, error)
	segmentWildcardRegexp string
	partList              partList
	seenNames             map[string]struct{}
	pendingFixedValue     string
	index                 int
	nextOrdinalName       int
}

// parsePattern runs the parse-a-pattern-string algorithm over tokenList and
// returns the ordered part sequence.
// https://urlpattern.spec.whatwg.org/#parse-a-pattern-string
func parsePattern(tokenList []token, options Options) (partList, error) {
	encode := options.EncodeLiteral
	if encode == nil {
		encode = func(value string) (string, error) { return value, nil }
	}

	p := patternParser{
		tokenList:             tokenList,
		options:               options,
		encode:                encode,
		segmentWildcardRegexp: generateSegmentWildcardRegexp(options),
		seenNames:             make(map[string]struct{}),
	}

	for p.index < len(p.tokenList) {
		charToken := p.tryConsumeToken(tokenChar)
		nameToken := p.tryConsumeToken(tokenName)
		regexpOrWildcardToken := p.tryConsumeRegexpOrWildcardToken(nameToken)

		if nameToken != nil || regexpOrWildcardToken != nil {
			prefix := ""
			if charToken != nil {
				prefix = charToken.value
			}

			// A candidate prefix that is not the configured prefix code
			// point is ordinary literal text.
			if prefix != "" && (p.options.Prefix == 0 || prefix != string(p.options.Prefix)) {
				p.pendingFixedValue += prefix
				prefix = ""
			}

			if err := p.maybeAddPartFromPendingFixedValue(); err != nil {
				return nil, err
			}

			modifierToken := p.tryConsumeModifierToken()

			if err := p.addPart(prefix, nameToken, regexpOrWildcardToken, "", modifierToken); err != nil {
				return nil, err
			}

			continue
		}

		fixedToken := charToken
		if fixedToken == nil {
			fixedToken = p.tryConsumeToken(tokenEscapedChar)
		}
		if fixedToken != nil {
			p.pendingFixedValue += fixedToken.value

			continue
		}

		if openToken := p.tryConsumeToken(tokenOpen); openToken != nil {
			prefix := p.consumeText()
			nameToken := p.tryConsumeToken(tokenName)
			regexpOrWildcardToken := p.tryConsumeRegexpOrWildcardToken(nameToken)
			suffix := p.consumeText()

			if err := p.consumeRequiredToken(tokenClose, MissingClosingCurlyError); err != nil {
				return nil, err
			}

			modifierToken := p.tryConsumeModifierToken()

			if err := p.addPart(prefix, nameToken, regexpOrWildcardToken, suffix, modifierToken); err != nil {
				return nil, err
			}

			continue
		}

		if err := p.maybeAddPartFromPendingFixedValue(); err != nil {
			return nil, err
		}

		if err := p.consumeRequiredToken(tokenEnd, UnexpectedEndError); err != nil {
			return nil, err
		}
	}

	return p.partList, nil
}

// https://urlpattern.spec.whatwg.org/#try-to-consume-a-token
func (p *patternParser) tryConsumeToken(tType tokenType) *token {
	if p.index >= len(p.tokenList) {
		return nil
	}

	nextToken := p.tokenList[p.index]
	if nextToken.tType != tType {
		return nil
	}

	p.index++

	return &nextToken
}

// A bare asterisk is a wildcard only when it is not already attached to a
// name.
// https://urlpattern.spec.whatwg.org/#try-to-consume-a-regexp-or-wildcard-token
func (p *patternParser) tryConsumeRegexpOrWildcardToken(nameToken *token) *token {
	t := p.tryConsumeToken(tokenRegexp)
	if nameToken == nil && t == nil {
		return p.tryConsumeToken(tokenAsterisk)
	}

	return t
}

// https://urlpattern.spec.whatwg.org/#try-to-consume-a-modifier-token
func (p *patternParser) tryConsumeModifierToken() *token {
	if t := p.tryConsumeToken(tokenOtherModifier); t != nil {
		return t
	}

	return p.tryConsumeToken(tokenAsterisk)
}

// https://urlpattern.spec.whatwg.org/#consume-text
func (p *patternParser) consumeText() string {
	var result strings.Builder

	for {
		t := p.tryConsumeToken(tokenChar)
		if t == nil {
			t = p.tryConsumeToken(tokenEscapedChar)
		}
		if t == nil {
			break
		}

		result.WriteString(t.value)
	}

	return result.String()
}

// https://urlpattern.spec.whatwg.org/#consume-a-required-token
func (p *patternParser) consumeRequiredToken(tType tokenType, kind error) error {
	if p.tryConsumeToken(tType) != nil {
		return nil
	}

	offset := 0
	if p.index < len(p.tokenList) {
		offset = p.tokenList[p.index].index
	}

	return fmt.Errorf("%w at offset %d", kind, offset)
}

// https://urlpattern.spec.whatwg.org/#maybe-add-a-part-from-the-pending-fixed-value
func (p *patternParser) maybeAddPartFromPendingFixedValue() error {
	if p.pendingFixedValue == "" {
		return nil
	}

	encodedValue, err := p.encode(p.pendingFixedValue)
	if err != nil {
		return err
	}

	p.pendingFixedValue = ""

	p.partList = append(p.partList, part{pType: partFixedText, value: encodedValue, modifier: partModifierNone})

	return nil
}

// https://urlpattern.spec.whatwg.org/#add-a-part
func (p *patternParser) addPart(prefix string, nameToken, regexpOrWildcardToken *token, suffix string, modifierToken *token) error {
	modifier := partModifierNone
	if modifierToken != nil {
		switch modifierToken.value {
		case "?":
			modifier = partModifierOptional
		case "*":
			modifier = partModifierZeroOrMore
		case "+":
			modifier = partModifierOneOrMore
		}
	}

	if nameToken == nil && regexpOrWildcardToken == nil && modifier == partModifierNone {
		// A "{...}" group around pure literal text.
		p.pendingFixedValue += prefix

		return nil
	}

	if err := p.maybeAddPartFromPendingFixedValue(); err != nil {
		return err
	}

	if nameToken == nil && regexpOrWildcardToken == nil {
		// A braced literal with a modifier, such as "{/}?". The grammar
		// cannot produce a suffix here.
		if prefix == "" {
			return nil
		}

		encodedValue, err := p.encode(prefix)
		if err != nil {
			return err
		}

		p.partList = append(p.partList, part{pType: partFixedText, value: encodedValue, modifier: modifier})

		return nil
	}

	regexpValue := ""
	if regexpOrWildcardToken == nil {
		regexpValue = p.segmentWildcardRegexp
	} else if regexpOrWildcardToken.tType == tokenAsterisk {
		regexpValue = fullWildcardRegexpValue
	} else {
		regexpValue = regexpOrWildcardToken.value
	}

	pType := partRegexp
	switch regexpValue {
	case p.segmentWildcardRegexp:
		pType = partSegmentWildcard
		regexpValue = ""
	case fullWildcardRegexpValue:
		pType = partFullWildcard
		regexpValue = ""
	}

	name := ""
	if nameToken != nil {
		name = nameToken.value
	} else {
		// Unnamed wildcard and regexp groups get ordinal names, scoped to
		// this compilation.
		name = strconv.Itoa(p.nextOrdinalName)
		p.nextOrdinalName++
	}

	if _, duplicate := p.seenNames[name]; duplicate {
		return fmt.Errorf("%w: %q", DuplicateNameError, name)
	}
	p.seenNames[name] = struct{}{}

	encodedPrefix, err := p.encode(prefix)
	if err != nil {
		return err
	}

	encodedSuffix, err := p.encode(suffix)
	if err != nil {
		return err
	}

	p.partList = append(p.partList, part{
		pType:    pType,
		value:    regexpValue,
		modifier: modifier,
		name:     name,
		prefix:   encodedPrefix,
		suffix:   encodedSuffix,
	})

	return nil
}
