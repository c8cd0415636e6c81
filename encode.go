package patternexp

import (
	"github.com/dunglas/whatwg-url/url"
)

var urlParser = url.NewParser()

// PathnameEncoder percent-encodes literal pattern text the way a URL
// pathname component is encoded. Pass it as Options.EncodeLiteral when the
// compiled pattern will match canonicalized pathnames.
// https://urlpattern.spec.whatwg.org/#canonicalize-a-pathname
func PathnameEncoder(value string) (string, error) {
	if value == "" {
		return value, nil
	}

	// The URL path parser prepends a slash to relative paths; shield
	// slash-less literals behind a dummy segment and strip it afterwards.
	leadingSlash := value[0] == '/'
	modifiedValue := value
	if !leadingSlash {
		modifiedValue = "/-" + value
	}

	u, err := urlParser.BasicParser(modifiedValue, nil, urlParser.NewUrl(), url.StatePathStart)
	if err != nil {
		return "", err
	}

	result := u.Pathname()
	if !leadingSlash {
		result = result[2:]
	}

	return result, nil
}

// OpaquePathnameEncoder percent-encodes literal pattern text the way an
// opaque (non-hierarchical) URL path is encoded.
// https://urlpattern.spec.whatwg.org/#canonicalize-an-opaque-pathname
func OpaquePathnameEncoder(value string) (string, error) {
	if value == "" {
		return value, nil
	}

	u, err := urlParser.BasicParser(value, nil, urlParser.NewUrl(), url.StateOpaquePath)
	if err != nil {
		return "", err
	}

	return u.Pathname(), nil
}

// SearchEncoder percent-encodes literal pattern text the way a URL query
// component is encoded.
// https://urlpattern.spec.whatwg.org/#canonicalize-a-search
func SearchEncoder(value string) (string, error) {
	if value == "" {
		return value, nil
	}

	u, err := urlParser.BasicParser(value, nil, urlParser.NewUrl(), url.StateQuery)
	if err != nil {
		return "", err
	}

	return u.Query(), nil
}

// HashEncoder percent-encodes literal pattern text the way a URL fragment
// component is encoded.
// https://urlpattern.spec.whatwg.org/#canonicalize-a-hash
func HashEncoder(value string) (string, error) {
	if value == "" {
		return value, nil
	}

	u, err := urlParser.BasicParser(value, nil, urlParser.NewUrl(), url.StateFragment)
	if err != nil {
		return "", err
	}

	return u.Fragment(), nil
}
