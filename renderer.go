package argv

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/combin/argv/errs"
	"github.com/combin/argv/util"
)

// Renderer derives formatted usage text from the description metadata of
// a parser's leaves. Rendering has no effect on parsing.
type Renderer struct {
	lang  Language
	width int
}

// NewRenderer creates a renderer using the locale's help labels. The
// name column is sized to the longest name form, bounded by the terminal
// width.
func NewRenderer(lang Language) *Renderer {
	return &Renderer{lang: lang}
}

// SetWidth fixes the total width used to bound the name column instead
// of querying the terminal.
func (r *Renderer) SetWidth(width int) *Renderer {
	r.width = width
	return r
}

// Usage renders the complete help text: a title line, the about text,
// the invocation line and one line per leaf in declaration order.
func (r *Renderer) Usage(leaves []*Argument, program, version, about string) string {
	var b strings.Builder
	b.WriteString(program)
	if version != "" {
		b.WriteString(" ")
		b.WriteString(version)
	}
	b.WriteString("\n\n")
	if about != "" {
		b.WriteString(about)
		b.WriteString("\n\n")
	}
	b.WriteString(program)
	b.WriteString(" [")
	b.WriteString(r.lang.Options)
	b.WriteString("]\n\n")
	b.WriteString(r.lang.Options)
	b.WriteString(":\n")

	nameWidth := r.nameWidth(leaves)
	for _, a := range leaves {
		b.WriteString(r.Line(a, nameWidth))
	}
	return b.String()
}

// Line renders one leaf: its name forms, padded to nameWidth, the help
// text and the bracketed default/allowed-values annotation.
func (r *Renderer) Line(a *Argument, nameWidth int) string {
	name := NameForms(a)
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(name)
	pad := nameWidth - uniseg.StringWidth(name)
	if pad < 2 {
		pad = 2
	}
	b.WriteString(strings.Repeat(" ", pad))
	if a.Help != "" {
		b.WriteString(a.Help)
	}
	if annotation := r.annotation(a); annotation != "" {
		if a.Help != "" {
			b.WriteString(" ")
		}
		b.WriteString(annotation)
	}
	b.WriteString("\n")
	return b.String()
}

func (r *Renderer) annotation(a *Argument) string {
	hasAllowed := len(a.Allowed) > 0
	hasDefault := a.HasDefault && a.Kind != KindEarlyExit && a.DefaultText != ""

	switch {
	case hasAllowed && hasDefault:
		return "[" + r.lang.AllowedValues + ": " + strings.Join(a.Allowed, ", ") +
			" | " + r.lang.Default + ": " + a.DefaultText + "]"
	case hasAllowed:
		return "[" + r.lang.AllowedValues + ": " + strings.Join(a.Allowed, ", ") + "]"
	case hasDefault:
		return "[" + r.lang.Default + ": " + a.DefaultText + "]"
	default:
		return ""
	}
}

func (r *Renderer) nameWidth(leaves []*Argument) int {
	width := r.width
	if width <= 0 {
		width = util.TerminalWidth(80)
	}
	longest := 0
	for _, a := range leaves {
		if w := uniseg.StringWidth(NameForms(a)); w > longest {
			longest = w
		}
	}
	// keep at least half the line for descriptions
	if limit := width/2 - 2; longest > limit {
		longest = limit
	}
	return longest + 2
}

// NameForms renders every name form of a leaf the way it is written on
// the command line: the negated form of a flag as prefix[negation]name,
// value names with their meta variable, e.g. "--count(=| )VALUE | -c".
func NameForms(a *Argument) string {
	var b strings.Builder
	for i, l := range a.Long {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(a.Affixes.Long.Value)
		if a.Kind == KindFlag && a.negatable {
			b.WriteString("[")
			b.WriteString(a.Affixes.Negation.Value)
			b.WriteString(a.Affixes.NegationInfix.Value)
			b.WriteString("]")
		}
		b.WriteString(l.Value)
		if a.Kind == KindValue {
			b.WriteString("(")
			b.WriteString(a.Affixes.ValueInfix.Value)
			b.WriteString("| )")
			b.WriteString(a.MetaVar)
		}
	}
	for _, s := range a.Short {
		b.WriteString(" | ")
		b.WriteString(a.Affixes.Short.Value)
		b.WriteString(s.Value)
		if a.Kind == KindValue {
			b.WriteString("[")
			b.WriteString(a.Affixes.ValueInfix.Value)
			b.WriteString("| ]")
			b.WriteString(a.MetaVar)
		}
	}
	return b.String()
}

func missingArgument(a *Argument) error {
	return &errs.MissingArgumentError{
		Long:  a.longNames(),
		Short: a.shortNames(),
		Forms: NameForms(a),
	}
}
