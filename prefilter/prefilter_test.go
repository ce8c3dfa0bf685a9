package prefilter

import (
	"strings"
	"testing"

	"github.com/coregx/nfamatch/literal"
)

func build(t *testing.T, pattern string) Prefilter {
	t.Helper()
	info, err := literal.Extract(pattern)
	if err != nil {
		t.Fatalf("Extract(%q): %v", pattern, err)
	}
	return New(info, DefaultConfig())
}

func TestNew_Nil(t *testing.T) {
	for _, pattern := range []string{"a*", "(ab)?", "(a*b*)*"} {
		if pf := build(t, pattern); pf != nil {
			t.Errorf("New(%q) = %v, want nil", pattern, pf)
		}
	}
	if New(nil, DefaultConfig()) != nil {
		t.Error("New(nil) should be nil")
	}
}

func TestExactPrefilter(t *testing.T) {
	pf := build(t, "a(bc)")
	if !pf.IsComplete() {
		t.Fatal("exact pattern should give a complete prefilter")
	}
	if pf.Reject([]byte("abc")) {
		t.Error(`exact prefilter rejected "abc"`)
	}
	for _, s := range []string{"", "ab", "abcd", "xbc"} {
		if !pf.Reject([]byte(s)) {
			t.Errorf("exact prefilter accepted %q", s)
		}
	}
	if got := pf.String(); got != `exact("abc")` {
		t.Errorf("String() = %q", got)
	}

	empty := build(t, "")
	if empty.Reject(nil) || !empty.Reject([]byte("a")) {
		t.Error("empty pattern prefilter must accept only the empty string")
	}
}

func TestLiteralPrefilter_Reject(t *testing.T) {
	tests := []struct {
		pattern string
		reject  []string
		pass    []string
	}{
		{
			pattern: "ab(c)+d",
			reject:  []string{"", "abd", "abcx", "xbcd", "abdd"},
			pass:    []string{"abcd", "abccd", "abcxcd"},
		},
		{
			pattern: "(foo(ba)?)*(bar)+",
			reject:  []string{"", "ba", "foo", "barx"},
			pass:    []string{"bar", "foobar", "xxbar"},
		},
		{
			pattern: "x*(hello)+y*(world)+z?",
			reject:  []string{"helloworl", "abcdefghijk", "xxxxxxxxxxxx"},
			pass:    []string{"helloworld", "xhelloyworldz", "worldhelloab"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			pf := build(t, tt.pattern)
			if pf == nil {
				t.Fatal("expected a prefilter")
			}
			if pf.IsComplete() {
				t.Fatal("pattern with repetition cannot be complete")
			}
			for _, s := range tt.reject {
				if !pf.Reject([]byte(s)) {
					t.Errorf("Reject(%q) = false, want true", s)
				}
			}
			for _, s := range tt.pass {
				if pf.Reject([]byte(s)) {
					t.Errorf("Reject(%q) = true, want false", s)
				}
			}
		})
	}
}

func TestLiteralPrefilter_InnerLimit(t *testing.T) {
	info, err := literal.Extract("x*(hello)+y*(world)+z?")
	if err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.MaxInnerLiterals = 0
	pf := New(info, cfg)
	if strings.Contains(pf.String(), "inner") {
		t.Errorf("inner scan should be disabled: %s", pf)
	}
	// Only the length bound remains.
	if pf.Reject([]byte("0123456789")) {
		t.Error("without inner literals a long candidate must pass")
	}

	pf = New(info, DefaultConfig())
	if !strings.Contains(pf.String(), `inner(["hello" "world"])`) {
		t.Errorf("String() = %q, want inner literals hello and world", pf)
	}
}
