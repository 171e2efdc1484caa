package argv

import (
	"fmt"
)

// WithShort adds a short name. Short names must be a single
// user-perceived character.
func WithShort(name string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Short = append(argument.Short, Text{Value: name, CaseSensitive: argument.caseSensitiveNames()})
	}
}

// WithLongAlias adds an additional long name. The name given at
// construction stays primary.
func WithLongAlias(name string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Long = append(argument.Long, Text{Value: name, CaseSensitive: argument.caseSensitiveNames()})
	}
}

// WithHelpText sets the text shown for the argument in rendered help.
func WithHelpText(help string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Help = help
	}
}

// WithDefault sets the value used when the argument is absent. Without a
// default the argument is required.
func WithDefault(value any) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.HasDefault = true
		argument.Default = value
		if argument.DefaultText == "" {
			argument.DefaultText = fmt.Sprint(value)
		}
	}
}

// WithDefaultText overrides how the default value is displayed in help.
func WithDefaultText(text string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.DefaultText = text
	}
}

// WithMetaVar sets the meta variable shown in place of a value in help,
// e.g. VALUE in "--name VALUE".
func WithMetaVar(metaVar string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.MetaVar = metaVar
	}
}

// WithAllowed declares the displayable values accepted by a value
// argument. Converted values outside the list report an unknown variant.
func WithAllowed(values ...string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Allowed = append(argument.Allowed, values...)
	}
}

// WithAffixes replaces the affix configuration of the argument.
func WithAffixes(affixes Affixes) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Affixes = affixes
	}
}

// WithLanguage applies the locale's negation word and meta variable.
func WithLanguage(lang Language) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Affixes.Negation = Text{Value: lang.NegationPrefix, CaseSensitive: argument.Affixes.Negation.CaseSensitive}
		if argument.MetaVar == "" {
			argument.MetaVar = lang.MetaVar
		}
	}
}

// WithCaseInsensitiveNames makes all declared names of the argument,
// including ones added later, compare case-insensitively.
func WithCaseInsensitiveNames() ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		for i := range argument.Long {
			argument.Long[i].CaseSensitive = false
		}
		for i := range argument.Short {
			argument.Short[i].CaseSensitive = false
		}
		argument.caseInsensitive = true
	}
}

// WithoutNegation removes the negated form of a flag.
func WithoutNegation() ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.negatable = false
	}
}
