package argv

import (
	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns s in Unicode normalization form C. All name and affix
// comparison happens on normalized text so that visually identical inputs
// compare equal regardless of their encoding variant.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

func fold(s string) string {
	return cases.Fold().String(s)
}

// Text is a name or affix together with its comparison rule.
type Text struct {
	Value         string
	CaseSensitive bool
}

// Exact creates a case-sensitively compared Text.
func Exact(s string) Text {
	return Text{Value: s, CaseSensitive: true}
}

// AnyCase creates a case-insensitively compared Text.
func AnyCase(s string) Text {
	return Text{Value: s, CaseSensitive: false}
}

// Equals reports whether s equals the stored text after NFC normalization,
// honoring the configured case sensitivity.
func (t Text) Equals(s string) bool {
	a := Normalize(t.Value)
	b := Normalize(s)
	if t.CaseSensitive {
		return a == b
	}
	return fold(a) == fold(b)
}

// StripPrefix removes the stored text from the front of s, comparing
// grapheme cluster by grapheme cluster. The remainder is returned in
// normalized form.
func (t Text) StripPrefix(s string) (rest string, ok bool) {
	p := Normalize(t.Value)
	n := Normalize(s)
	gp := uniseg.NewGraphemes(p)
	gn := uniseg.NewGraphemes(n)
	consumed := 0
	for gp.Next() {
		if !gn.Next() {
			return "", false
		}
		a, b := gp.Str(), gn.Str()
		if t.CaseSensitive {
			if a != b {
				return "", false
			}
		} else if fold(a) != fold(b) {
			return "", false
		}
		consumed += len(b)
	}
	return n[consumed:], true
}

// SplitOnce splits s at the first occurrence of the stored text. Both
// returned halves are in normalized form.
func (t Text) SplitOnce(s string) (before, after string, found bool) {
	n := Normalize(s)
	offset := 0
	g := uniseg.NewGraphemes(n)
	for {
		if rest, ok := t.StripPrefix(n[offset:]); ok {
			return n[:offset], rest, true
		}
		if !g.Next() {
			return "", "", false
		}
		offset += len(g.Str())
	}
}

// graphemes splits s into user-perceived characters.
func graphemes(s string) []string {
	var gs []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		gs = append(gs, g.Str())
	}
	return gs
}

// splitFirstGrapheme returns the first user-perceived character of s and
// the remaining bytes.
func splitFirstGrapheme(s string) (first, rest string) {
	g := uniseg.NewGraphemes(s)
	if !g.Next() {
		return "", ""
	}
	first = g.Str()
	return first, s[len(first):]
}

// graphemeCount returns the number of user-perceived characters in s.
func graphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}
