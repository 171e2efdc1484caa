package argv

import (
	"fmt"

	"github.com/combin/argv/errs"
)

// Argument is one leaf of a combinator tree: a flag, a value argument or
// an early-exit flag, together with its names, affixes and help metadata.
type Argument struct {
	Kind    ArgKind
	Long    []Text // at least one; the first is primary
	Short   []Text // each exactly one user-perceived character
	Help    string
	MetaVar string
	Affixes Affixes

	HasDefault  bool
	Default     any
	DefaultText string
	Allowed     []string

	convert         func(raw string) (any, error)
	mapBool         func(v bool) any
	message         string
	negatable       bool
	caseInsensitive bool
	err             error
}

func (a *Argument) caseSensitiveNames() bool {
	return !a.caseInsensitive
}

func newArgument(kind ArgKind, long string, configs ...ConfigureArgumentFunc) *Argument {
	a := &Argument{
		Kind:      kind,
		Long:      []Text{Exact(long)},
		Affixes:   DefaultAffixes(),
		negatable: kind == KindFlag,
	}
	for _, config := range configs {
		config(a, &a.err)
		if a.err != nil {
			return a
		}
	}
	if kind == KindValue && a.MetaVar == "" {
		a.MetaVar = English.MetaVar
	}
	if a.err == nil {
		a.err = a.validate()
	}
	return a
}

func (a *Argument) validate() error {
	for _, l := range a.Long {
		if l.Value == "" {
			return &errs.InvalidNameError{Name: l.Value, Reason: "long name must not be empty"}
		}
	}
	for _, s := range a.Short {
		if graphemeCount(s.Value) != 1 {
			return &errs.InvalidNameError{Name: s.Value, Reason: "short name must be a single character"}
		}
	}
	if a.Kind == KindEarlyExit && a.negatable {
		return &errs.InvalidNameError{Name: a.primaryLong(), Reason: "an early-exit flag cannot be negated"}
	}
	if a.Kind != KindFlag && a.mapBool != nil {
		return &errs.InvalidNameError{Name: a.primaryLong(), Reason: "only flags carry a bool mapping"}
	}
	return nil
}

func (a *Argument) primaryLong() string {
	return a.Long[0].Value
}

func (a *Argument) matchesLong(name string) bool {
	for _, l := range a.Long {
		if l.Equals(name) {
			return true
		}
	}
	return false
}

func (a *Argument) matchesShort(grapheme string) bool {
	for _, s := range a.Short {
		if s.Equals(grapheme) {
			return true
		}
	}
	return false
}

func (a *Argument) allowedContains(v any) bool {
	display := Normalize(fmt.Sprint(v))
	for _, allowed := range a.Allowed {
		if Normalize(allowed) == display {
			return true
		}
	}
	return false
}

// longNames returns the display form of every long name.
func (a *Argument) longNames() []string {
	names := make([]string, len(a.Long))
	for i, l := range a.Long {
		names[i] = l.Value
	}
	return names
}

// shortNames returns the display form of every short name.
func (a *Argument) shortNames() []string {
	names := make([]string, len(a.Short))
	for i, s := range a.Short {
		names[i] = s.Value
	}
	return names
}

// Flag creates a parser for a single boolean flag. Without a default the
// flag is required; parsing neither the plain nor the negated form then
// reports a missing argument.
func Flag(long string, configs ...ConfigureArgumentFunc) *Parser[bool] {
	return FlagMap(long, func(v bool) bool { return v }, configs...)
}

// FlagMap creates a flag parser whose bound or negated state is mapped
// through convert to the result type.
func FlagMap[T any](long string, convert func(v bool) T, configs ...ConfigureArgumentFunc) *Parser[T] {
	a := newArgument(KindFlag, long, configs...)
	a.mapBool = func(v bool) any { return convert(v) }
	return leafParser[T](a)
}

// Value creates a parser for an argument carrying a value obtained by
// applying convert to the raw text following the name.
func Value[T any](long string, convert Converter[T], configs ...ConfigureArgumentFunc) *Parser[T] {
	a := newArgument(KindValue, long, configs...)
	a.convert = func(raw string) (any, error) {
		v, err := convert(raw)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
	return leafParser[T](a)
}

// Enum creates a value parser accepting only the given variants. The
// variants are listed in the help text and any other input reports an
// unknown-variant error.
func Enum(long string, variants []string, configs ...ConfigureArgumentFunc) *Parser[string] {
	configs = append([]ConfigureArgumentFunc{WithAllowed(variants...)}, configs...)
	return Value(long, ToString, configs...)
}

// EarlyExit creates a parser for a flag which terminates parsing with the
// given message the moment its name matches, used for help and version
// display. Its absence is never an error.
func EarlyExit(long string, message string, configs ...ConfigureArgumentFunc) *Parser[struct{}] {
	a := newArgument(KindEarlyExit, long, configs...)
	a.message = message
	a.HasDefault = true
	a.Default = struct{}{}
	return leafParser[struct{}](a)
}

func exitArgument(long, short, help, message string, lang Language) *Argument {
	configs := []ConfigureArgumentFunc{WithHelpText(help)}
	if short != "" {
		configs = append(configs, WithShort(short))
	}
	a := newArgument(KindEarlyExit, long, configs...)
	a.Affixes = AffixesFor(lang)
	a.message = message
	a.HasDefault = true
	a.Default = struct{}{}
	return a
}

func leafParser[T any](a *Argument) *Parser[T] {
	err := a.err
	if err == nil {
		err = validateNames([]*Argument{a})
	}
	if err == nil && a.HasDefault {
		if _, ok := a.Default.(T); !ok {
			err = fmt.Errorf("argument %s: default value of type %T does not match the argument type", a.primaryLong(), a.Default)
		}
	}
	return newParser[T](&leafNode{arg: a}, []*Argument{a}, err)
}
