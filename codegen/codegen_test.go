package codegen

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strconv"
	"strings"
	"testing"

	"github.com/coregx/nfamatch/nfa"
)

func compile(t *testing.T, pattern string) *nfa.NFA {
	t.Helper()
	n, err := nfa.Compile(pattern)
	if err != nil {
		t.Fatalf("nfa.Compile(%q): %v", pattern, err)
	}
	return n
}

// typeCheck parses and type-checks generated source. The generated file has
// no imports, so no importer is needed.
func typeCheck(t *testing.T, src []byte) *ast.File {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "gen.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, src)
	}
	conf := types.Config{}
	if _, err := conf.Check(file.Name.Name, fset, []*ast.File{file}, nil); err != nil {
		t.Fatalf("generated code does not type-check: %v\n%s", err, src)
	}
	return file
}

func TestGenerate(t *testing.T) {
	patterns := []string{
		"",
		"a",
		"ab",
		"a*",
		"(foo(ba)?)*(bar)+",
		"x*(hello)+y*(world)+z?",
		"\x00+\xff",
	}

	for _, p := range patterns {
		t.Run(p, func(t *testing.T) {
			src, err := Generate(compile(t, p), Config{Package: "matchers", Name: "Test", Pattern: p})
			if err != nil {
				t.Fatalf("Generate(): %v", err)
			}
			file := typeCheck(t, src)

			if file.Name.Name != "matchers" {
				t.Errorf("package = %q, want matchers", file.Name.Name)
			}
			var funcs []string
			for _, d := range file.Decls {
				if fd, ok := d.(*ast.FuncDecl); ok {
					funcs = append(funcs, fd.Name.Name)
				}
			}
			if strings.Join(funcs, ",") != "MatchTest,testClosure" {
				t.Errorf("functions = %v", funcs)
			}
			if !strings.Contains(string(src), "DO NOT EDIT.") {
				t.Error("missing generated-code marker")
			}
		})
	}
}

func TestGenerate_Tables(t *testing.T) {
	src, err := Generate(compile(t, "ab"), Config{Package: "p", Name: "ab"})
	if err != nil {
		t.Fatal(err)
	}
	out := string(src)

	for _, want := range []string{
		"func MatchAb(s string) bool",
		"var abStart = []int{0}",
		"'a': {1}",
		"'b': {3}",
		"var abAccept = []bool{false, false, false, true}",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated code missing %q:\n%s", want, out)
		}
	}
	if !strings.HasPrefix(out, "// Code generated by nfamatch. DO NOT EDIT.") {
		t.Errorf("unexpected header:\n%s", out)
	}
}

// tables is the automaton of a generated file, read back from its syntax
// tree.
type tables struct {
	epsilon [][]int
	trans   []map[byte][]int
	start   []int
	accept  []bool
}

// readTables extracts the <prefix>Epsilon, Trans, Start and Accept
// variables of a generated file.
func readTables(t *testing.T, file *ast.File, prefix string) *tables {
	t.Helper()
	vars := map[string]*ast.CompositeLit{}
	for _, d := range file.Decls {
		gd, ok := d.(*ast.GenDecl)
		if !ok || gd.Tok != token.VAR {
			continue
		}
		for _, spec := range gd.Specs {
			vs := spec.(*ast.ValueSpec)
			if len(vs.Names) != 1 || len(vs.Values) != 1 {
				t.Fatalf("unexpected var declaration %v", vs.Names)
			}
			lit, ok := vs.Values[0].(*ast.CompositeLit)
			if !ok {
				t.Fatalf("%s is not a composite literal", vs.Names[0].Name)
			}
			vars[vs.Names[0].Name] = lit
		}
	}
	table := func(name string) *ast.CompositeLit {
		lit, ok := vars[prefix+name]
		if !ok {
			t.Fatalf("generated file has no %s%s", prefix, name)
		}
		return lit
	}

	tab := &tables{start: intList(t, table("Start"))}
	for _, e := range table("Epsilon").Elts {
		tab.epsilon = append(tab.epsilon, intList(t, e))
	}
	for _, e := range table("Trans").Elts {
		m := map[byte][]int{}
		if lit, ok := e.(*ast.CompositeLit); ok {
			for _, elt := range lit.Elts {
				kv := elt.(*ast.KeyValueExpr)
				m[byteKey(t, kv.Key)] = intList(t, kv.Value)
			}
		} else if !isNil(e) {
			t.Fatalf("transition entry %T is neither a map nor nil", e)
		}
		tab.trans = append(tab.trans, m)
	}
	for _, e := range table("Accept").Elts {
		id, ok := e.(*ast.Ident)
		if !ok || (id.Name != "true" && id.Name != "false") {
			t.Fatalf("accept entry %T is not a bool constant", e)
		}
		tab.accept = append(tab.accept, id.Name == "true")
	}
	return tab
}

func isNil(e ast.Expr) bool {
	id, ok := e.(*ast.Ident)
	return ok && id.Name == "nil"
}

func intList(t *testing.T, e ast.Expr) []int {
	t.Helper()
	if isNil(e) {
		return nil
	}
	lit, ok := e.(*ast.CompositeLit)
	if !ok {
		t.Fatalf("%T is not an int list", e)
	}
	out := make([]int, 0, len(lit.Elts))
	for _, elt := range lit.Elts {
		bl, ok := elt.(*ast.BasicLit)
		if !ok || bl.Kind != token.INT {
			t.Fatalf("%T is not an int literal", elt)
		}
		v, err := strconv.Atoi(bl.Value)
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, v)
	}
	return out
}

func byteKey(t *testing.T, e ast.Expr) byte {
	t.Helper()
	bl, ok := e.(*ast.BasicLit)
	if !ok {
		t.Fatalf("map key %T is not a literal", e)
	}
	switch bl.Kind {
	case token.CHAR:
		s, err := strconv.Unquote(bl.Value)
		if err != nil || len(s) != 1 {
			t.Fatalf("bad rune key %s", bl.Value)
		}
		return s[0]
	case token.INT:
		v, err := strconv.ParseUint(bl.Value, 0, 8)
		if err != nil {
			t.Fatalf("bad int key %s: %v", bl.Value, err)
		}
		return byte(v)
	}
	t.Fatalf("map key %s has kind %s", bl.Value, bl.Kind)
	return 0
}

// match runs the tables the way the generated Match function does.
func (tab *tables) match(s string) bool {
	cur := tab.closure(tab.start)
	for i := 0; i < len(s); i++ {
		var next []int
		for _, id := range cur {
			next = append(next, tab.trans[id][s[i]]...)
		}
		if len(next) == 0 {
			return false
		}
		cur = tab.closure(next)
	}
	for _, id := range cur {
		if tab.accept[id] {
			return true
		}
	}
	return false
}

func (tab *tables) closure(ids []int) []int {
	seen := make([]bool, len(tab.epsilon))
	var out []int
	stack := append([]int(nil), ids...)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
		stack = append(stack, tab.epsilon[id]...)
	}
	return out
}

// allWords returns every word over alphabet of length at most n.
func allWords(alphabet string, n int) []string {
	words := []string{""}
	level := []string{""}
	for l := 0; l < n; l++ {
		var nextLevel []string
		for _, w := range level {
			for i := 0; i < len(alphabet); i++ {
				nextLevel = append(nextLevel, w+alphabet[i:i+1])
			}
		}
		words = append(words, nextLevel...)
		level = nextLevel
	}
	return words
}

func TestGenerate_MatchesAutomaton(t *testing.T) {
	tests := []struct {
		pattern  string
		alphabet string
		maxLen   int
		extra    []string
	}{
		{"", "a", 2, nil},
		{"a*", "ab", 5, nil},
		{"a+", "ab", 5, nil},
		{"a?b?", "ab", 4, nil},
		{"(a*)*b", "abc", 6, nil},
		{"(a?b?)+", "ab", 6, nil},
		{"((ab)?c)+", "abc", 5, nil},
		{"(foo(ba)?)*(bar)+", "fobar", 4, []string{"foofoobabarbar", "foobabarbar", "foobar", "foobafoo", "barbarbar"}},
		{"x*(hello)+y*(world)+z?", "xyz", 2, []string{"xxhellohelloyworldz", "helloworld", "helloworldzz"}},
		{"\x00+\xff", "\x00\xff", 4, nil},
		{"a)", "a)", 3, nil},
		{"'\\\\+", "'\\\\", 4, nil},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			n := compile(t, tt.pattern)
			src, err := Generate(n, Config{Package: "p", Name: "Gen", Pattern: tt.pattern})
			if err != nil {
				t.Fatalf("Generate(): %v", err)
			}
			tab := readTables(t, typeCheck(t, src), "gen")
			if num := n.NumStates(); len(tab.epsilon) != num || len(tab.trans) != num || len(tab.accept) != num {
				t.Fatalf("table sizes %d/%d/%d, want %d", len(tab.epsilon), len(tab.trans), len(tab.accept), num)
			}

			var accepted, rejected int
			for _, w := range append(allWords(tt.alphabet, tt.maxLen), tt.extra...) {
				want := n.AcceptString(w)
				if got := tab.match(w); got != want {
					t.Errorf("generated matcher on %q = %v, automaton %v", w, got, want)
				}
				if want {
					accepted++
				} else {
					rejected++
				}
			}
			if accepted == 0 || rejected == 0 {
				t.Errorf("word set is one-sided: %d accepted, %d rejected", accepted, rejected)
			}
		})
	}

	// Matching the empty word relies on the closure of the start states.
	tab := readTables(t, typeCheck(t, mustGenerate(t, "a*")), "gen")
	if !tab.match("") {
		t.Error(`generated matcher for "a*" rejects ""`)
	}
}

func mustGenerate(t *testing.T, pattern string) []byte {
	t.Helper()
	src, err := Generate(compile(t, pattern), Config{Package: "p", Name: "Gen"})
	if err != nil {
		t.Fatal(err)
	}
	return src
}

func TestGenerate_NonPrintable(t *testing.T) {
	src, err := Generate(compile(t, "\x00"), Config{Package: "p", Name: "Nul"})
	if err != nil {
		t.Fatal(err)
	}
	typeCheck(t, src)
	if !strings.Contains(string(src), "0: {1}") {
		t.Errorf("NUL transition should be an integer key:\n%s", src)
	}
}

func TestGenerate_InvalidConfig(t *testing.T) {
	n := compile(t, "a")
	tests := []struct {
		cfg   Config
		field string
	}{
		{Config{Package: "", Name: "A"}, "Package"},
		{Config{Package: "func", Name: "A"}, "Package"},
		{Config{Package: "_", Name: "A"}, "Package"},
		{Config{Package: "p", Name: ""}, "Name"},
		{Config{Package: "p", Name: "_x"}, "Name"},
		{Config{Package: "p", Name: "9x"}, "Name"},
		{Config{Package: "p", Name: "a-b"}, "Name"},
	}

	for _, tt := range tests {
		_, err := Generate(n, tt.cfg)
		var cerr *ConfigError
		if !errors.As(err, &cerr) {
			t.Errorf("Generate(%+v) error = %v, want *ConfigError", tt.cfg, err)
			continue
		}
		if cerr.Field != tt.field {
			t.Errorf("Generate(%+v) field = %q, want %q", tt.cfg, cerr.Field, tt.field)
		}
	}
}

func TestGenerate_NilNFA(t *testing.T) {
	if _, err := Generate(nil, Config{Package: "p", Name: "X"}); err == nil {
		t.Error("Generate(nil) should fail")
	}
}

func TestLowerUpperFirst(t *testing.T) {
	tests := []struct {
		in, lower, upper string
	}{
		{"", "", ""},
		{"Foo", "foo", "Foo"},
		{"bar", "bar", "Bar"},
		{"X", "x", "X"},
	}
	for _, tt := range tests {
		if got := lowerFirst(tt.in); got != tt.lower {
			t.Errorf("lowerFirst(%q) = %q, want %q", tt.in, got, tt.lower)
		}
		if got := upperFirst(tt.in); got != tt.upper {
			t.Errorf("upperFirst(%q) = %q, want %q", tt.in, got, tt.upper)
		}
	}
}
