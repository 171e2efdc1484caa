package argv

import (
	"github.com/combin/argv/errs"
	"github.com/combin/argv/types/queue"
)

type bindKind uint8

const (
	bindUnset bindKind = iota
	bindNamed
)

type binding struct {
	kind  bindKind
	value any
}

// parseState is created fresh per Parse call and discarded afterwards.
// It owns the remaining token stream and the per-leaf bindings, indexed
// through the calling parser's leaf positions.
type parseState struct {
	stream      *queue.Q[string]
	bindings    []binding
	index       map[*Argument]int
	errors      []error
	exitMessage string
	exited      bool
	leftover    []string
}

func newParseState(leaves []*Argument, index map[*Argument]int, args []string) *parseState {
	return &parseState{
		stream:   queue.FromSlice(args),
		bindings: make([]binding, len(leaves)),
		index:    index,
	}
}

func (st *parseState) bind(a *Argument, v any) {
	st.bindings[st.index[a]] = binding{kind: bindNamed, value: v}
}

func (st *parseState) exit(a *Argument) {
	st.exited = true
	st.exitMessage = a.message
}

func (st *parseState) fail(err error) {
	st.errors = append(st.errors, err)
}

// matchAll consumes the token stream against the leaf set. It stops as
// soon as an early-exit flag matched; remaining tokens stay unread.
func matchAll(leaves []*Argument, st *parseState) {
	for !st.exited {
		tok, ok := st.stream.Dequeue()
		if !ok {
			return
		}
		matchToken(leaves, st, tok)
	}
}

// matchToken resolves one raw token. Long-name forms across every leaf
// are tried first, then short-name interpretations, and an unmatched
// token is recorded so the remainder of the stream is still evaluated.
func matchToken(leaves []*Argument, st *parseState, tok string) {
	for _, a := range leaves {
		if tryLong(st, a, tok) {
			return
		}
	}
	if tryShort(leaves, st, tok) {
		return
	}
	if prefixShaped(leaves, tok) {
		st.fail(&errs.UnrecognizedArgumentError{Token: tok})
		return
	}
	st.leftover = append(st.leftover, tok)
}

// tryLong attempts the long-name forms of a single leaf: the plain name,
// the value-infix form and, for negatable flags, the negated form.
func tryLong(st *parseState, a *Argument, tok string) bool {
	rest, ok := a.Affixes.Long.StripPrefix(tok)
	if !ok || rest == "" {
		return false
	}

	if a.Kind == KindValue {
		if name, value, found := a.Affixes.ValueInfix.SplitOnce(rest); found && a.matchesLong(name) {
			bindConverted(st, a, value)
			return true
		}
	}

	if a.matchesLong(rest) {
		switch a.Kind {
		case KindFlag:
			st.bind(a, a.mapBool(true))
		case KindEarlyExit:
			st.exit(a)
		case KindValue:
			raw, ok := st.stream.Dequeue()
			if !ok {
				st.fail(&errs.InvalidValueError{Name: a.primaryLong(), Cause: errs.MissingValue()})
				return true
			}
			bindConverted(st, a, raw)
		}
		return true
	}

	if a.Kind == KindFlag && a.negatable {
		if afterPrefix, ok := a.Affixes.Negation.StripPrefix(rest); ok {
			if name, ok := a.Affixes.NegationInfix.StripPrefix(afterPrefix); ok && a.matchesLong(name) {
				st.bind(a, a.mapBool(false))
				return true
			}
		}
	}

	return false
}

// tryShort attempts the short-name interpretations of a token: a single
// short name, a grouped run of flag names, and the value forms with an
// attached or infix-separated value. The grouped interpretation is only
// taken when the entire run validates as flags.
func tryShort(leaves []*Argument, st *parseState, tok string) bool {
	for _, prefix := range shortPrefixes(leaves) {
		rest, ok := prefix.StripPrefix(tok)
		if !ok || rest == "" {
			continue
		}
		if matchShortRun(leaves, st, rest) {
			return true
		}
	}
	return false
}

func matchShortRun(leaves []*Argument, st *parseState, run string) bool {
	first, remainder := splitFirstGrapheme(run)
	if remainder == "" {
		return bindShortSingle(leaves, st, first)
	}

	if flags := resolveFlagRun(leaves, run); flags != nil {
		for _, a := range flags {
			if a.Kind == KindEarlyExit {
				st.exit(a)
				return true
			}
			st.bind(a, a.mapBool(true))
		}
		return true
	}

	for _, a := range leaves {
		if a.Kind != KindValue || !a.matchesShort(first) {
			continue
		}
		raw := remainder
		if after, ok := a.Affixes.ValueInfix.StripPrefix(remainder); ok {
			raw = after
		}
		bindConverted(st, a, raw)
		return true
	}
	return false
}

func bindShortSingle(leaves []*Argument, st *parseState, grapheme string) bool {
	for _, a := range leaves {
		if !a.matchesShort(grapheme) {
			continue
		}
		switch a.Kind {
		case KindFlag:
			st.bind(a, a.mapBool(true))
		case KindEarlyExit:
			st.exit(a)
		case KindValue:
			raw, ok := st.stream.Dequeue()
			if !ok {
				st.fail(&errs.InvalidValueError{Name: a.primaryLong(), Cause: errs.MissingValue()})
				return true
			}
			bindConverted(st, a, raw)
		}
		return true
	}
	return false
}

// resolveFlagRun maps every user-perceived character of run to a declared
// flag or early-exit short name. It returns nil unless the whole run
// validates.
func resolveFlagRun(leaves []*Argument, run string) []*Argument {
	var flags []*Argument
	for _, g := range graphemes(run) {
		var match *Argument
		for _, a := range leaves {
			if (a.Kind == KindFlag || a.Kind == KindEarlyExit) && a.matchesShort(g) {
				match = a
				break
			}
		}
		if match == nil {
			return nil
		}
		flags = append(flags, match)
	}
	return flags
}

func bindConverted(st *parseState, a *Argument, raw string) {
	v, err := a.convert(raw)
	if err != nil {
		st.fail(&errs.InvalidValueError{Name: a.primaryLong(), Raw: raw, Cause: err})
		return
	}
	if len(a.Allowed) > 0 && !a.allowedContains(v) {
		st.fail(&errs.UnknownVariantError{Name: a.primaryLong(), Raw: raw, Allowed: a.Allowed})
		return
	}
	st.bind(a, v)
}

// shortPrefixes returns the distinct short prefixes across the leaf set
// in declaration order.
func shortPrefixes(leaves []*Argument) []Text {
	var prefixes []Text
	for _, a := range leaves {
		found := false
		for _, p := range prefixes {
			if p == a.Affixes.Short {
				found = true
				break
			}
		}
		if !found {
			prefixes = append(prefixes, a.Affixes.Short)
		}
	}
	return prefixes
}

// prefixShaped reports whether tok starts with any declared long or
// short prefix; such tokens are reported individually as unrecognized
// while bare tokens are collected as leftovers.
func prefixShaped(leaves []*Argument, tok string) bool {
	for _, a := range leaves {
		if _, ok := a.Affixes.Long.StripPrefix(tok); ok {
			return true
		}
		if _, ok := a.Affixes.Short.StripPrefix(tok); ok {
			return true
		}
	}
	return false
}
