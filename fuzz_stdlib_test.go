// Fuzz tests comparing nfamatch against stdlib regexp.
//
// Every pattern both packages accept has the same meaning in each, so
// anchoring it as ^(?:pattern)$ gives a reference matcher. Stdlib rejects
// a ')' that closes no group, which nfamatch matches literally; such
// patterns are skipped.
//
// Run with:
//
//	go test -fuzz=FuzzMatchStdlib -fuzztime=30s
package nfamatch

import (
	"regexp"
	"testing"
)

var seedPatterns = []string{
	"",
	"a",
	"ab",
	"a*",
	"a+",
	"a?",
	"(ab)*",
	"(a*b)+",
	"(a?b?)+",
	"((ab)?c)+",
	"(a*)*",
	"()+",
	"(foo(ba)?)*(bar)+",
	"x*(ab)+y*(ba)+z?",
}

var seedInputs = []string{
	"",
	"a",
	"b",
	"ab",
	"aab",
	"abab",
	"abcabc",
	"foobabar",
	"xxabbaz",
}

// fuzzable reports whether pattern uses only bytes stdlib reads as
// literals or as the operators nfamatch supports.
func fuzzable(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '(' || c == ')' || c == '*' || c == '+' || c == '?':
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}

func FuzzMatchStdlib(f *testing.F) {
	for _, p := range seedPatterns {
		for _, in := range seedInputs {
			f.Add(p, in)
		}
	}

	f.Fuzz(func(t *testing.T, pattern, input string) {
		if len(pattern) > 64 || !fuzzable(pattern) {
			return
		}
		re, err := Compile(pattern)
		if err != nil {
			return
		}
		std, err := regexp.Compile(`^(?:` + pattern + `)$`)
		if err != nil {
			return
		}

		want := std.MatchString(input)
		if got := re.MatchString(input); got != want {
			t.Errorf("pattern %q input %q: nfamatch %v, stdlib %v", pattern, input, got, want)
		}

		noPF, err := CompileWithConfig(pattern, DefaultConfig().WithPrefilter(false).WithCacheCapacity(0))
		if err != nil {
			t.Fatalf("CompileWithConfig(%q): %v", pattern, err)
		}
		if got := noPF.MatchString(input); got != want {
			t.Errorf("pattern %q input %q: unfiltered nfamatch %v, stdlib %v", pattern, input, got, want)
		}
	})
}
