package argv

import (
	"github.com/combin/argv/errs"
	"github.com/combin/argv/types/orderedmap"
)

// node evaluates a subtree against per-leaf values. Leaf positions are
// resolved through the owning parser's index so a leaf argument shared
// with another tree carries no per-tree state itself.
type node interface {
	eval(vals []any, index map[*Argument]int) any
}

type leafNode struct {
	arg *Argument
}

func (n *leafNode) eval(vals []any, index map[*Argument]int) any {
	return vals[index[n.arg]]
}

type combineNode struct {
	children []node
	agg      func(parts []any) any
}

func (n *combineNode) eval(vals []any, index map[*Argument]int) any {
	parts := make([]any, len(n.children))
	for i, child := range n.children {
		parts[i] = child.eval(vals, index)
	}
	return n.agg(parts)
}

type constNode struct {
	value any
}

func (n *constNode) eval([]any, map[*Argument]int) any {
	return n.value
}

// Part is any parser usable as a child of Combine, regardless of its
// result type.
type Part interface {
	subtree() node
	leafArguments() []*Argument
	buildError() error
}

func (p *Parser[T]) subtree() node              { return p.root }
func (p *Parser[T]) leafArguments() []*Argument { return p.leaves }
func (p *Parser[T]) buildError() error          { return p.err }

func newParser[T any](root node, leaves []*Argument, err error) *Parser[T] {
	index := make(map[*Argument]int, len(leaves))
	for i, a := range leaves {
		index[a] = i
	}
	return &Parser[T]{root: root, leaves: leaves, index: index, err: err}
}

// Combine merges independently defined parsers into one parser producing
// an aggregate. The aggregation function receives the children's results
// in declaration order. Name uniqueness is validated across every leaf
// reachable from the new root; a clash is reported here and the returned
// parser refuses to parse.
func Combine[T any](agg func(parts []any) T, parts ...Part) (*Parser[T], error) {
	var leaves []*Argument
	children := make([]node, 0, len(parts))
	var err error
	for _, part := range parts {
		if cerr := part.buildError(); cerr != nil && err == nil {
			err = cerr
		}
		leaves = append(leaves, part.leafArguments()...)
		children = append(children, part.subtree())
	}
	if err == nil {
		err = validateNames(leaves)
	}
	root := &combineNode{children: children, agg: func(vs []any) any { return agg(vs) }}
	return newParser[T](root, leaves, err), err
}

// Map converts a parser's result through a pure function.
func Map[A, T any](p *Parser[A], f func(A) T) *Parser[T] {
	root := &combineNode{
		children: []node{p.root},
		agg:      func(vs []any) any { return f(vs[0].(A)) },
	}
	return newParser[T](root, p.leaves, p.err)
}

// Const creates a parser which consumes nothing and always produces v.
func Const[T any](v T) *Parser[T] {
	return newParser[T](&constNode{value: v}, nil, nil)
}

// Combine2 merges two parsers with a typed aggregation function.
func Combine2[A, B, T any](f func(A, B) T, a *Parser[A], b *Parser[B]) (*Parser[T], error) {
	return Combine(func(vs []any) T {
		return f(vs[0].(A), vs[1].(B))
	}, a, b)
}

// Combine3 merges three parsers with a typed aggregation function.
func Combine3[A, B, C, T any](f func(A, B, C) T, a *Parser[A], b *Parser[B], c *Parser[C]) (*Parser[T], error) {
	return Combine(func(vs []any) T {
		return f(vs[0].(A), vs[1].(B), vs[2].(C))
	}, a, b, c)
}

// Combine4 merges four parsers with a typed aggregation function.
func Combine4[A, B, C, D, T any](f func(A, B, C, D) T, a *Parser[A], b *Parser[B], c *Parser[C], d *Parser[D]) (*Parser[T], error) {
	return Combine(func(vs []any) T {
		return f(vs[0].(A), vs[1].(B), vs[2].(C), vs[3].(D))
	}, a, b, c, d)
}

// Combine5 merges five parsers with a typed aggregation function.
func Combine5[A, B, C, D, E, T any](f func(A, B, C, D, E) T, a *Parser[A], b *Parser[B], c *Parser[C], d *Parser[D], e *Parser[E]) (*Parser[T], error) {
	return Combine(func(vs []any) T {
		return f(vs[0].(A), vs[1].(B), vs[2].(C), vs[3].(D), vs[4].(E))
	}, a, b, c, d, e)
}

// Combine6 merges six parsers with a typed aggregation function.
func Combine6[A, B, C, D, E, F, T any](f func(A, B, C, D, E, F) T, a *Parser[A], b *Parser[B], c *Parser[C], d *Parser[D], e *Parser[E], g *Parser[F]) (*Parser[T], error) {
	return Combine(func(vs []any) T {
		return f(vs[0].(A), vs[1].(B), vs[2].(C), vs[3].(D), vs[4].(E), vs[5].(F))
	}, a, b, c, d, e, g)
}

// Combine7 merges seven parsers with a typed aggregation function.
func Combine7[A, B, C, D, E, F, G, T any](f func(A, B, C, D, E, F, G) T, a *Parser[A], b *Parser[B], c *Parser[C], d *Parser[D], e *Parser[E], g *Parser[F], h *Parser[G]) (*Parser[T], error) {
	return Combine(func(vs []any) T {
		return f(vs[0].(A), vs[1].(B), vs[2].(C), vs[3].(D), vs[4].(E), vs[5].(F), vs[6].(G))
	}, a, b, c, d, e, g, h)
}

// Combine8 merges eight parsers with a typed aggregation function.
func Combine8[A, B, C, D, E, F, G, H, T any](f func(A, B, C, D, E, F, G, H) T, a *Parser[A], b *Parser[B], c *Parser[C], d *Parser[D], e *Parser[E], g *Parser[F], h *Parser[G], i *Parser[H]) (*Parser[T], error) {
	return Combine(func(vs []any) T {
		return f(vs[0].(A), vs[1].(B), vs[2].(C), vs[3].(D), vs[4].(E), vs[5].(F), vs[6].(G), vs[7].(H))
	}, a, b, c, d, e, g, h, i)
}

// Combine9 merges nine parsers with a typed aggregation function.
func Combine9[A, B, C, D, E, F, G, H, I, T any](f func(A, B, C, D, E, F, G, H, I) T, a *Parser[A], b *Parser[B], c *Parser[C], d *Parser[D], e *Parser[E], g *Parser[F], h *Parser[G], i *Parser[H], j *Parser[I]) (*Parser[T], error) {
	return Combine(func(vs []any) T {
		return f(vs[0].(A), vs[1].(B), vs[2].(C), vs[3].(D), vs[4].(E), vs[5].(F), vs[6].(G), vs[7].(H), vs[8].(I))
	}, a, b, c, d, e, g, h, i, j)
}

// validateNames rejects trees in which two leaves could claim the same
// token. Long and short names live in one namespace each, independent of
// argument kind. Names are compared in normalized form; a folded
// comparison applies as soon as either side is case-insensitive, so
// "verbose" declared case-insensitively clashes with "VERBOSE".
func validateNames(leaves []*Argument) error {
	exact := orderedmap.New[string, *Argument]()
	folded := orderedmap.New[string, Text]()
	for _, a := range leaves {
		for _, l := range a.Long {
			if err := registerName(exact, folded, a, "long", l); err != nil {
				return err
			}
		}
		for _, s := range a.Short {
			if err := registerName(exact, folded, a, "short", s); err != nil {
				return err
			}
		}
	}
	return nil
}

func registerName(exact *orderedmap.OrderedMap[string, *Argument], folded *orderedmap.OrderedMap[string, Text], a *Argument, space string, t Text) error {
	dup := &errs.DuplicateNameError{Name: t.Value, Kind: a.Kind.String()}
	name := Normalize(t.Value)
	if _, existed := exact.Set(space+"\x00"+name, a); existed {
		return dup
	}
	key := space + "\x00" + fold(name)
	if prev, existed := folded.Set(key, t); existed {
		if !t.CaseSensitive || !prev.CaseSensitive {
			return dup
		}
	}
	return nil
}
