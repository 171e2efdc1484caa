// Package argv parses process command-line arguments into strongly typed
// program configuration with automatic, localizable help text.
//
// Arguments are declared one leaf at a time - a Flag, a Value argument or
// an EarlyExit flag - and merged with Combine into a parser producing an
// arbitrary aggregate type:
//
//	verbose := argv.Flag("verbose", argv.WithShort("v"), argv.WithDefault(false))
//	count := argv.Value("count", argv.ToInt, argv.WithShort("c"), argv.WithDefault(1))
//	parser, err := argv.Combine2(func(v bool, c int) Config {
//	    return Config{Verbose: v, Count: c}
//	}, verbose, count)
//
// Parse consumes a raw token stream (without the program name) and
// returns a tri-state result: the aggregate value, an early-exit message,
// or every error found in one pass.
package argv

import (
	"github.com/combin/argv/errs"
	"github.com/combin/argv/internal/parse"
)

// Parser parses a token stream into a value of type T. A Parser is
// immutable once built; concurrent Parse calls are safe, and a parser
// stays usable after being combined into a larger tree.
type Parser[T any] struct {
	root   node
	leaves []*Argument
	index  map[*Argument]int
	err    error
}

// Arguments returns the flattened leaf arguments in declaration order.
func (p *Parser[T]) Arguments() []*Argument {
	return p.leaves
}

// Err returns the construction error of the parser, if any.
func (p *Parser[T]) Err() error {
	return p.err
}

// Parse fully consumes the token stream and resolves every leaf: an
// explicit binding wins over the declared default, and a leaf with
// neither reports a missing argument. All errors of a pass are collected
// so a caller sees every problem at once; an early-exit match discards
// them and short-circuits instead.
func (p *Parser[T]) Parse(args []string) Result[T] {
	if p.err != nil {
		return Result[T]{Outcome: OutcomeFailure, Errors: []error{p.err}}
	}

	st := newParseState(p.leaves, p.index, args)
	matchAll(p.leaves, st)
	if st.exited {
		return Result[T]{Outcome: OutcomeEarlyExit, Message: st.exitMessage}
	}

	errors := append([]error{}, st.errors...)
	vals := make([]any, len(p.leaves))
	for i, a := range p.leaves {
		b := st.bindings[i]
		switch {
		case b.kind == bindNamed:
			vals[i] = b.value
		case a.HasDefault:
			vals[i] = a.Default
		default:
			errors = append(errors, missingArgument(a))
		}
	}
	if len(st.leftover) > 0 {
		errors = append(errors, &errs.ExtraArgumentsError{Tokens: st.leftover})
	}
	if len(errors) > 0 {
		return Result[T]{Outcome: OutcomeFailure, Errors: errors}
	}

	return Result[T]{Outcome: OutcomeSuccess, Value: p.root.eval(vals, p.index).(T)}
}

// ParseString splits s using shell quoting rules and parses the tokens.
func (p *Parser[T]) ParseString(s string) (Result[T], error) {
	args, err := parse.Split(s)
	if err != nil {
		return Result[T]{}, err
	}
	return p.Parse(args), nil
}

// Help renders the usage text for the parser's arguments.
func (p *Parser[T]) Help(program, version, about string, lang Language) string {
	return NewRenderer(lang).Usage(p.leaves, program, version, about)
}

// WithAffixes returns a parser whose every leaf uses the given affix
// configuration, e.g. to switch the whole tree to a "/name" syntax.
// The receiver and any tree sharing its leaves are unchanged.
func (p *Parser[T]) WithAffixes(affixes Affixes) *Parser[T] {
	mapping := make(map[*Argument]*Argument, len(p.leaves))
	leaves := make([]*Argument, len(p.leaves))
	for i, a := range p.leaves {
		clone := *a
		clone.Affixes = affixes
		mapping[a] = &clone
		leaves[i] = &clone
	}
	return newParser[T](remapTree(p.root, mapping), leaves, p.err)
}

// remapTree rebuilds a subtree with its leaf arguments substituted per
// the mapping. Nodes without leaves are reused as-is.
func remapTree(n node, mapping map[*Argument]*Argument) node {
	switch n := n.(type) {
	case *leafNode:
		return &leafNode{arg: mapping[n.arg]}
	case *combineNode:
		children := make([]node, len(n.children))
		for i, child := range n.children {
			children[i] = remapTree(child, mapping)
		}
		return &combineNode{children: children, agg: n.agg}
	default:
		return n
	}
}

// WithHelpFlag adds an early-exit flag (--help/-h in English) whose
// message is the rendered usage text, including the flag itself.
func (p *Parser[T]) WithHelpFlag(program, version, about string, lang Language) *Parser[T] {
	arg := exitArgument(lang.HelpLong, lang.HelpShort, lang.HelpDescription, "", lang)
	leaves := append(append([]*Argument{}, p.leaves...), arg)
	arg.message = NewRenderer(lang).Usage(leaves, program, version, about)
	return withExit(p, arg)
}

// WithVersionFlag adds an early-exit flag (--version/-v in English)
// displaying "program version".
func (p *Parser[T]) WithVersionFlag(program, version string, lang Language) *Parser[T] {
	arg := exitArgument(lang.VersionLong, lang.VersionShort, lang.VersionDescription, program+" "+version, lang)
	return withExit(p, arg)
}

// WithHelpAndVersion adds both the help and the version flag.
func (p *Parser[T]) WithHelpAndVersion(program, version, about string, lang Language) *Parser[T] {
	return p.WithVersionFlag(program, version, lang).WithHelpFlag(program, version, about, lang)
}

// WithEarlyExitFlag adds an early-exit flag with the given message.
func (p *Parser[T]) WithEarlyExitFlag(long, message string, configs ...ConfigureArgumentFunc) *Parser[T] {
	a := newArgument(KindEarlyExit, long, configs...)
	a.message = message
	a.HasDefault = true
	a.Default = struct{}{}
	return withExit(p, a)
}

func withExit[T any](p *Parser[T], arg *Argument) *Parser[T] {
	leaves := append(append([]*Argument{}, p.leaves...), arg)
	err := p.err
	if err == nil {
		err = arg.err
	}
	if err == nil {
		err = validateNames(leaves)
	}
	root := &combineNode{
		children: []node{p.root, &leafNode{arg: arg}},
		agg:      func(vs []any) any { return vs[0] },
	}
	return newParser[T](root, leaves, err)
}
