package meta

import (
	"fmt"

	"github.com/coregx/nfamatch/literal"
	"github.com/coregx/nfamatch/nfa"
	"github.com/coregx/nfamatch/prefilter"
	"github.com/coregx/nfamatch/syntax"
)

// Compile compiles pattern with the default configuration.
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles pattern with a custom configuration.
//
// Syntax errors are returned as *syntax.Error, so errors.Is matches
// syntax.ErrUnbalancedGroup and syntax.ErrDanglingOperator. No engine is
// returned on error.
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	automaton, err := syntax.ParseWithLimit[*nfa.NFA](pattern, nfa.Builder{}, config.MaxDepth)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", pattern, err)
	}
	automaton.SetCacheCapacity(config.CacheCapacity)

	// The second parse cannot fail: the pattern was accepted above.
	info, err := syntax.ParseWithLimit[*literal.Info](pattern, literal.Extractor{}, config.MaxDepth)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", pattern, err)
	}

	var pf prefilter.Prefilter
	if config.EnablePrefilter {
		pfConfig := prefilter.DefaultConfig()
		pfConfig.MaxInnerLiterals = config.MaxInnerLiterals
		pf = prefilter.New(info, pfConfig)
	}

	return &Engine{
		pattern:   pattern,
		nfa:       automaton,
		literals:  info,
		prefilter: pf,
		config:    config,
	}, nil
}
