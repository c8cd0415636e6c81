package patternexp

import "unicode/utf8"

// Adapted from regexp.QuoteMeta ('/' added to the set of special characters):
// https://cs.opensource.google/go/go/+/refs/tags/go1.23.0:src/regexp/regexp.go;l=705-747

// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found at https://go.dev/LICENSE.

// Bitmaps used to check whether a byte needs to be escaped. Written once at
// init, read-only afterwards.
var (
	specialRegexpBytes  [16]byte
	specialPatternBytes [16]byte
)

func init() {
	for _, b := range []byte(`\.+*?()|[]{}^$/`) {
		specialRegexpBytes[b%16] |= 1 << (b / 16)
	}
	for _, b := range []byte(`\+*?(){}:`) {
		specialPatternBytes[b%16] |= 1 << (b / 16)
	}
}

// escapeRegexpString backslash-escapes every regular-expression metacharacter
// in s, including the path delimiter '/'.
// https://urlpattern.spec.whatwg.org/#escape-a-regexp-string
func escapeRegexpString(s string) string {
	return escapeSpecial(s, &specialRegexpBytes)
}

// escapePatternString backslash-escapes the characters carrying syntactical
// meaning in a pattern string.
// https://urlpattern.spec.whatwg.org/#escape-a-pattern-string
func escapePatternString(s string) string {
	return escapeSpecial(s, &specialPatternBytes)
}

func special(bitmap *[16]byte, b byte) bool {
	return b < utf8.RuneSelf && bitmap[b%16]&(1<<(b/16)) != 0
}

// A byte loop is correct because all metacharacters are ASCII.
func escapeSpecial(s string, bitmap *[16]byte) string {
	var i int
	for i = 0; i < len(s); i++ {
		if special(bitmap, s[i]) {
			break
		}
	}
	// No metacharacters found, return the original string.
	if i >= len(s) {
		return s
	}

	b := make([]byte, 2*len(s)-i)
	copy(b, s[:i])
	j := i
	for ; i < len(s); i++ {
		if special(bitmap, s[i]) {
			b[j] = '\\'
			j++
		}
		b[j] = s[i]
		j++
	}

	return string(b[:j])
}
