package patternexp_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/velora-dev/patternexp"
)

func pathOptions() patternexp.Options {
	return patternexp.Options{Delimiter: '/', Prefix: '/'}
}

func TestCompile(t *testing.T) {
	cases := []struct {
		pattern string
		want    string
	}{
		{"abc", `^abc$`},
		{"{foo}", `^foo$`},
		{"{bar}?", `^(?:bar)?$`},
		{"/", `^\/$`},
		{":foo", `^([^\/]+?)$`},
		{"/:bar", `^(?:\/([^\/]+?))$`},
		{"/:foo?", `^(?:\/([^\/]+?))?$`},
		{"/:foo/:bar", `^(?:\/([^\/]+?))(?:\/([^\/]+?))$`},
		{"/:foo/:bar?", `^(?:\/([^\/]+?))(?:\/([^\/]+?))?$`},
		{"/:foo?/:bar?", `^(?:\/([^\/]+?))?(?:\/([^\/]+?))?$`},
		{"/:foo?/:bar", `^(?:\/([^\/]+?))?(?:\/([^\/]+?))$`},
		{"/:foo(bar)?", `^(?:\/(bar))?$`},
		{"{a:foo(bar)b}?", `^(?:a(bar)b)?$`},
		{"{:foo}?", `^([^\/]+?)?$`},
		{"{ab}?", `^(?:ab)?$`},
		{"*", `^(.*)$`},
		{"/*", `^(?:\/(.*))$`},
		{"/books/:id(\\d+)", `^\/books(?:\/(\d+))$`},
		{"{/:id}+", `^(?:\/((?:[^\/]+?)(?:\/(?:[^\/]+?))*))$`},
		{"{/:id}*", `^(?:\/((?:[^\/]+?)(?:\/(?:[^\/]+?))*))?$`},
		{"\\/foo", `^\/foo$`},
		{"{.}?", `^(?:\.)?$`},
		// A candidate prefix that is not the configured prefix code point
		// stays literal text.
		{"x:foo", `^x([^\/]+?)$`},
	}

	for _, tc := range cases {
		t.Run(tc.pattern, func(t *testing.T) {
			got, _, err := patternexp.Compile(tc.pattern, pathOptions())
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCompileNameList(t *testing.T) {
	cases := []struct {
		pattern string
		want    []string
	}{
		{"abc", []string{}},
		{"/:foo/:bar", []string{"foo", "bar"}},
		{"/:id/*", []string{"id", "0"}},
		// Unnamed groups get per-compile ordinals.
		{"(a)(b)c*", []string{"0", "1", "2"}},
		{"{a:foo(bar)b}?", []string{"foo"}},
	}

	for _, tc := range cases {
		t.Run(tc.pattern, func(t *testing.T) {
			_, names, err := patternexp.Compile(tc.pattern, pathOptions())
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if !reflect.DeepEqual(names, tc.want) {
				t.Errorf("got %v, want %v", names, tc.want)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	cases := []struct {
		pattern string
		want    error
	}{
		{"(abc", patternexp.ParenthesesMismatchError},
		{"{abc", patternexp.MissingClosingCurlyError},
		{"\\", patternexp.UnexpectedEndError},
		{"abc\\", patternexp.UnexpectedEndError},
		{"a?b", patternexp.UnexpectedEndError},
		{"}", patternexp.UnexpectedEndError},
		{"/:foo/:foo", patternexp.DuplicateNameError},
		{"{:foo}{x:foo}", patternexp.DuplicateNameError},
	}

	for _, tc := range cases {
		t.Run(tc.pattern, func(t *testing.T) {
			_, _, err := patternexp.Compile(tc.pattern, pathOptions())
			if !errors.Is(err, tc.want) {
				t.Errorf("got error %v, want %v", err, tc.want)
			}
		})
	}
}

func TestCompileDeterministic(t *testing.T) {
	first, _, err := patternexp.Compile("/users/:id/posts/*", pathOptions())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	second, _, err := patternexp.Compile("/users/:id/posts/*", pathOptions())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if first != second {
		t.Errorf("compiling twice gave %q then %q", first, second)
	}
}

func TestCompileIgnoreCase(t *testing.T) {
	opts := pathOptions()
	opts.IgnoreCase = true

	got, _, err := patternexp.Compile("/files/:name", opts)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	want := `(?i)^\/files(?:\/([^\/]+?))$`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCompileZeroOptions(t *testing.T) {
	got, _, err := patternexp.Compile("/:foo", patternexp.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	// Without a configured prefix the slash stays literal text, and segment
	// wildcards exclude nothing.
	want := `^\/([^]+?)$`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		pattern string
		want    string
	}{
		{"/users/:id", "/users/:id"},
		{"{foo}", "foo"},
		{"{a}?", "{a}?"},
		{":foo*", ":foo*"},
		{"{:foo}bar", "{:foo}bar"},
		{":foo(.*)", ":foo(.*)"},
		{"(.*)", "*"},
		{"*", "*"},
		// A placeholder right after a trailing prefix character keeps its
		// grouping, since "/:id" would absorb the slash into the part.
		{"{/}:id", "/{:id}"},
	}

	for _, tc := range cases {
		t.Run(tc.pattern, func(t *testing.T) {
			got, err := patternexp.Normalize(tc.pattern, pathOptions())
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNormalizeCompilesSame(t *testing.T) {
	patterns := []string{"{foo}", "/users/:id", "{/}:id", "(.*)", "{:foo}bar"}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			normalized, err := patternexp.Normalize(pattern, pathOptions())
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}

			want, _, err := patternexp.Compile(pattern, pathOptions())
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}

			got, _, err := patternexp.Compile(normalized, pathOptions())
			if err != nil {
				t.Fatalf("unexpected error compiling %q: %s", normalized, err)
			}

			if got != want {
				t.Errorf("normalized %q compiles to %q, original to %q", normalized, got, want)
			}
		})
	}
}
