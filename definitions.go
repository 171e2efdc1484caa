package argv

import (
	"golang.org/x/text/language"

	"github.com/combin/argv/i18n"
)

// ArgKind enumerates the leaf argument kinds.
type ArgKind int

const (
	// KindFlag denotes a boolean argument which may be negated.
	KindFlag ArgKind = iota
	// KindValue denotes an argument carrying a converted value.
	KindValue
	// KindEarlyExit denotes a flag which terminates parsing with a message.
	KindEarlyExit
)

func (k ArgKind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindValue:
		return "value"
	case KindEarlyExit:
		return "early-exit"
	default:
		return "unknown"
	}
}

// Converter turns raw command-line text into a typed value.
type Converter[T any] func(raw string) (T, error)

// ConfigureArgumentFunc is used when defining leaf arguments.
type ConfigureArgumentFunc func(argument *Argument, err *error)

// Affixes carries the configurable syntax surrounding argument names.
// Each slot has its own case-sensitivity rule.
type Affixes struct {
	// Long precedes long names, "--" by default.
	Long Text
	// Short precedes short names, "-" by default.
	Short Text
	// Negation precedes a negated long flag name, the locale word for
	// "no" by default.
	Negation Text
	// NegationInfix joins the negation word and the name, "-" by default.
	NegationInfix Text
	// ValueInfix joins a long name and an attached value, "=" by default.
	ValueInfix Text
}

// DefaultAffixes returns the affix configuration for English.
func DefaultAffixes() Affixes {
	return AffixesFor(English)
}

// AffixesFor returns the default affix configuration with the locale's
// negation word.
func AffixesFor(lang Language) Affixes {
	return Affixes{
		Long:          Exact("--"),
		Short:         Exact("-"),
		Negation:      Exact(lang.NegationPrefix),
		NegationInfix: Exact("-"),
		ValueInfix:    Exact("="),
	}
}

// Language carries the locale strings consulted while a parser tree is
// built. Parsing itself is locale-agnostic once the tree exists.
type Language struct {
	Tag            language.Tag
	NegationPrefix string
	MetaVar        string
	Options        string
	Default        string
	AllowedValues  string

	HelpLong        string
	HelpShort       string
	HelpDescription string

	VersionLong        string
	VersionShort       string
	VersionDescription string
}

// NewLanguage assembles a Language from the i18n bundle.
func NewLanguage(tag language.Tag) Language {
	b := i18n.Default()
	return Language{
		Tag:                tag,
		NegationPrefix:     b.TL(tag, i18n.MsgNegationPrefixKey),
		MetaVar:            b.TL(tag, i18n.MsgMetaVarKey),
		Options:            b.TL(tag, i18n.MsgOptionsKey),
		Default:            b.TL(tag, i18n.MsgDefaultKey),
		AllowedValues:      b.TL(tag, i18n.MsgAllowedValuesKey),
		HelpLong:           b.TL(tag, i18n.MsgHelpLongKey),
		HelpShort:          b.TL(tag, i18n.MsgHelpShortKey),
		HelpDescription:    b.TL(tag, i18n.MsgHelpDescriptionKey),
		VersionLong:        b.TL(tag, i18n.MsgVersionLongKey),
		VersionShort:       b.TL(tag, i18n.MsgVersionShortKey),
		VersionDescription: b.TL(tag, i18n.MsgVersionDescriptionKey),
	}
}

// Built-in locales.
var (
	English = NewLanguage(language.English)
	German  = NewLanguage(language.German)
)
