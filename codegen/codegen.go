package codegen

import (
	"bytes"
	"fmt"

	"github.com/coregx/nfamatch/nfa"
	"github.com/dave/jennifer/jen"
)

// generator holds the identifiers of one generated file.
type generator struct {
	n       *nfa.NFA
	cfg     Config
	match   string
	closure string
	epsilon string
	trans   string
	start   string
	accept  string
}

// Generate renders a gofmt-formatted Go file implementing n as a
// Match<Name>(s string) bool function.
func Generate(n *nfa.NFA, cfg Config) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if n == nil || n.NumStates() == 0 {
		return nil, fmt.Errorf("codegen: automaton has no states")
	}

	prefix := lowerFirst(cfg.Name)
	g := &generator{
		n:       n,
		cfg:     cfg,
		match:   "Match" + upperFirst(cfg.Name),
		closure: prefix + "Closure",
		epsilon: prefix + "Epsilon",
		trans:   prefix + "Trans",
		start:   prefix + "Start",
		accept:  prefix + "Accept",
	}

	f := jen.NewFile(cfg.Package)
	if cfg.Pattern != "" {
		f.HeaderComment(fmt.Sprintf("Code generated by nfamatch for pattern %q. DO NOT EDIT.", cfg.Pattern))
	} else {
		f.HeaderComment("Code generated by nfamatch. DO NOT EDIT.")
	}

	g.tables(f)
	g.matchFunc(f)
	g.closureFunc(f)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("codegen: render %s: %w", g.match, err)
	}
	return buf.Bytes(), nil
}

// tables emits the epsilon, transition, start and accept tables, indexed by
// state handle.
func (g *generator) tables(f *jen.File) {
	num := g.n.NumStates()
	eps := make([]jen.Code, num)
	trans := make([]jen.Code, num)
	accept := make([]jen.Code, num)
	acceptSet := g.n.AcceptStates()

	for i := 0; i < num; i++ {
		id := nfa.StateID(i)
		s := g.n.State(id)

		eps[i] = idList(s.EpsilonStates())

		symbols := s.Symbols()
		if len(symbols) == 0 {
			trans[i] = jen.Nil()
		} else {
			d := jen.Dict{}
			for _, c := range symbols {
				d[byteLit(c)] = idList(s.TransitionStates(c))
			}
			trans[i] = jen.Values(d)
		}

		accept[i] = jen.Lit(acceptSet.Contains(id))
	}

	f.Comment(fmt.Sprintf("%s lists the epsilon successors of each state.", g.epsilon))
	f.Var().Id(g.epsilon).Op("=").Index().Index().Int().Values(eps...)
	f.Line()
	f.Comment(fmt.Sprintf("%s maps each state's input bytes to successor states.", g.trans))
	f.Var().Id(g.trans).Op("=").Index().Map(jen.Byte()).Index().Int().Values(trans...)
	f.Line()
	start := g.n.StartStates().IDs()
	startVals := make([]jen.Code, len(start))
	for i, id := range start {
		startVals[i] = jen.Lit(int(id))
	}
	f.Var().Id(g.start).Op("=").Index().Int().Values(startVals...)
	f.Line()
	f.Var().Id(g.accept).Op("=").Index().Bool().Values(accept...)
}

// matchFunc emits the simulation loop.
func (g *generator) matchFunc(f *jen.File) {
	if g.cfg.Pattern != "" {
		f.Comment(fmt.Sprintf("%s reports whether %s matches %q in its entirety.", g.match, inputName, g.cfg.Pattern))
	} else {
		f.Comment(fmt.Sprintf("%s reports whether %s matches in its entirety.", g.match, inputName))
	}
	f.Func().Id(g.match).Params(jen.Id(inputName).String()).Bool().Block(
		jen.Id(curName).Op(":=").Id(g.closure).Call(jen.Id(g.start)),
		jen.For(
			jen.Id("i").Op(":=").Lit(0),
			jen.Id("i").Op("<").Len(jen.Id(inputName)),
			jen.Id("i").Op("++"),
		).Block(
			jen.Var().Id(nextName).Index().Int(),
			jen.For(jen.List(jen.Id("_"), jen.Id(idName)).Op(":=").Range().Id(curName)).Block(
				jen.Id(nextName).Op("=").Append(
					jen.Id(nextName),
					jen.Id(g.trans).Index(jen.Id(idName)).Index(jen.Id(inputName).Index(jen.Id("i"))).Op("..."),
				),
			),
			jen.If(jen.Len(jen.Id(nextName)).Op("==").Lit(0)).Block(jen.Return(jen.False())),
			jen.Id(curName).Op("=").Id(g.closure).Call(jen.Id(nextName)),
		),
		jen.For(jen.List(jen.Id("_"), jen.Id(idName)).Op(":=").Range().Id(curName)).Block(
			jen.If(jen.Id(g.accept).Index(jen.Id(idName))).Block(jen.Return(jen.True())),
		),
		jen.Return(jen.False()),
	)
}

// closureFunc emits the epsilon closure helper. The result holds each
// reachable state once.
func (g *generator) closureFunc(f *jen.File) {
	f.Func().Id(g.closure).Params(jen.Id("ids").Index().Int()).Index().Int().Block(
		jen.Id(seenName).Op(":=").Make(jen.Index().Bool(), jen.Len(jen.Id(g.epsilon))),
		jen.Id(resultName).Op(":=").Make(jen.Index().Int(), jen.Lit(0), jen.Len(jen.Id("ids"))),
		jen.Id(stackName).Op(":=").Append(jen.Index().Int().Parens(jen.Nil()), jen.Id("ids").Op("...")),
		jen.For(jen.Len(jen.Id(stackName)).Op(">").Lit(0)).Block(
			jen.Id(idName).Op(":=").Id(stackName).Index(jen.Len(jen.Id(stackName)).Op("-").Lit(1)),
			jen.Id(stackName).Op("=").Id(stackName).Index(jen.Empty(), jen.Len(jen.Id(stackName)).Op("-").Lit(1)),
			jen.If(jen.Id(seenName).Index(jen.Id(idName))).Block(jen.Continue()),
			jen.Id(seenName).Index(jen.Id(idName)).Op("=").True(),
			jen.Id(resultName).Op("=").Append(jen.Id(resultName), jen.Id(idName)),
			jen.Id(stackName).Op("=").Append(jen.Id(stackName), jen.Id(g.epsilon).Index(jen.Id(idName)).Op("...")),
		),
		jen.Return(jen.Id(resultName)),
	)
}

// idList renders a state set as an int slice literal body, or nil.
func idList(set nfa.StateSet) *jen.Statement {
	if set.IsEmpty() {
		return jen.Nil()
	}
	ids := set.IDs()
	vals := make([]jen.Code, len(ids))
	for i, id := range ids {
		vals[i] = jen.Lit(int(id))
	}
	return jen.Values(vals...)
}

// byteLit renders c as a rune literal when printable, otherwise as an
// integer constant.
func byteLit(c byte) *jen.Statement {
	if c >= 0x20 && c < 0x7f {
		return jen.LitRune(rune(c))
	}
	return jen.Lit(int(c))
}
