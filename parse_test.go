package argv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/combin/argv/errs"
)

type fixture struct {
	Verbose bool
	Force   bool
	Grow    bool
	Count   int
}

func fixtureParser(t *testing.T) *Parser[fixture] {
	t.Helper()
	p, err := Combine4(func(v, f, g bool, c int) fixture {
		return fixture{Verbose: v, Force: f, Grow: g, Count: c}
	},
		Flag("verbose", WithShort("v"), WithDefault(false)),
		Flag("force", WithShort("f"), WithDefault(false)),
		Flag("grow", WithShort("g"), WithDefault(false)),
		Value("count", ToInt, WithShort("c"), WithDefault(1)),
	)
	require.NoError(t, err)
	return p
}

func TestParseLongForms(t *testing.T) {
	p := fixtureParser(t)

	tests := []struct {
		name string
		args []string
		want fixture
	}{
		{name: "empty stream uses defaults", args: nil, want: fixture{Count: 1}},
		{name: "plain flag", args: []string{"--verbose"}, want: fixture{Verbose: true, Count: 1}},
		{name: "negated flag", args: []string{"--no-verbose"}, want: fixture{Count: 1}},
		{name: "separate value", args: []string{"--count", "3"}, want: fixture{Count: 3}},
		{name: "infix value", args: []string{"--count=3"}, want: fixture{Count: 3}},
		{name: "order does not matter", args: []string{"--count", "3", "--verbose"}, want: fixture{Verbose: true, Count: 3}},
		{name: "last occurrence wins", args: []string{"--count", "3", "--count", "7"}, want: fixture{Count: 7}},
		{name: "negation after assertion wins", args: []string{"--verbose", "--no-verbose"}, want: fixture{Count: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := p.Parse(tt.args)
			require.True(t, res.Ok(), "errors: %v", res.Errors)
			assert.Equal(t, tt.want, res.Value)
		})
	}
}

func TestParseShortForms(t *testing.T) {
	p := fixtureParser(t)

	tests := []struct {
		name string
		args []string
		want fixture
	}{
		{name: "single short flag", args: []string{"-v"}, want: fixture{Verbose: true, Count: 1}},
		{name: "separate short value", args: []string{"-c", "3"}, want: fixture{Count: 3}},
		{name: "infix short value", args: []string{"-c=3"}, want: fixture{Count: 3}},
		{name: "attached short value", args: []string{"-c3"}, want: fixture{Count: 3}},
		{name: "grouped flags", args: []string{"-vfg"}, want: fixture{Verbose: true, Force: true, Grow: true, Count: 1}},
		{name: "grouped flags any order", args: []string{"-gfv"}, want: fixture{Verbose: true, Force: true, Grow: true, Count: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := p.Parse(tt.args)
			require.True(t, res.Ok(), "errors: %v", res.Errors)
			assert.Equal(t, tt.want, res.Value)
		})
	}
}

func TestGroupedShortsEqualSeparateShorts(t *testing.T) {
	p := fixtureParser(t)

	grouped := p.Parse([]string{"-vfg"})
	separate := p.Parse([]string{"-v", "-f", "-g"})
	require.True(t, grouped.Ok())
	require.True(t, separate.Ok())
	assert.Equal(t, separate.Value, grouped.Value)
}

func TestAttachedValueBeatsPartialGroup(t *testing.T) {
	p := fixtureParser(t)

	// "c3" is not a valid flag run, so it reads as -c with value 3
	res := p.Parse([]string{"-c3"})
	require.True(t, res.Ok())
	assert.Equal(t, 3, res.Value.Count)

	// a flag run containing a value name does not fall apart silently
	res = p.Parse([]string{"-vc"})
	assert.Equal(t, OutcomeFailure, res.Outcome)
}

func TestFlagThenAttachedValueDoesNotMatch(t *testing.T) {
	p, err := Combine2(func(f bool, w int) int { return w },
		Flag("force", WithShort("f"), WithDefault(false)),
		Value("width", ToInt, WithShort("w"), WithDefault(0)),
	)
	require.NoError(t, err)

	// "fw3" is neither a pure flag run nor a value short in first position
	res := p.Parse([]string{"-fw3"})
	require.Equal(t, OutcomeFailure, res.Outcome)
	require.Len(t, res.Errors, 1)
	assert.ErrorIs(t, res.Errors[0], errs.ErrUnrecognizedArgument)

	res = p.Parse([]string{"-f", "-w3"})
	require.True(t, res.Ok())
	assert.Equal(t, 3, res.Value)
}

func TestParseIsIdempotent(t *testing.T) {
	p := fixtureParser(t)
	args := []string{"--verbose", "-c", "3"}

	first := p.Parse(args)
	second := p.Parse(args)
	assert.Equal(t, first, second)

	assert.Equal(t, p.Parse(nil), p.Parse(nil))
}

func TestTreeAffixOverride(t *testing.T) {
	base := fixtureParser(t)
	p := base.WithAffixes(Affixes{
		Long:          Exact("/"),
		Short:         Exact("+"),
		Negation:      Exact("no"),
		NegationInfix: Exact("-"),
		ValueInfix:    Exact(":"),
	})

	res := p.Parse([]string{"/verbose", "/count:3", "+f"})
	require.True(t, res.Ok(), "errors: %v", res.Errors)
	assert.Equal(t, fixture{Verbose: true, Force: true, Count: 3}, res.Value)

	res = p.Parse([]string{"--verbose"})
	assert.Equal(t, OutcomeFailure, res.Outcome)

	// the parser the override was derived from keeps its affixes
	res = base.Parse([]string{"--verbose", "-c", "3"})
	require.True(t, res.Ok(), "errors: %v", res.Errors)
	assert.Equal(t, fixture{Verbose: true, Count: 3}, res.Value)
}

func TestMissingArgumentsAreAllReported(t *testing.T) {
	p, err := Combine2(func(a, b int) [2]int { return [2]int{a, b} },
		Value("width", ToInt, WithShort("w")),
		Value("height", ToInt, WithShort("h")),
	)
	require.NoError(t, err)

	res := p.Parse(nil)
	require.Equal(t, OutcomeFailure, res.Outcome)
	require.Len(t, res.Errors, 2)
	assert.ErrorIs(t, res.Errors[0], errs.ErrMissingArgument)
	assert.ErrorIs(t, res.Errors[1], errs.ErrMissingArgument)

	var missing *errs.MissingArgumentError
	require.ErrorAs(t, res.Errors[0], &missing)
	assert.Contains(t, missing.Long, "width")
}

func TestErrorsAccumulateAcrossTheStream(t *testing.T) {
	p := fixtureParser(t)

	res := p.Parse([]string{"--count", "x", "--bogus", "-z"})
	require.Equal(t, OutcomeFailure, res.Outcome)
	require.Len(t, res.Errors, 3)
	assert.ErrorIs(t, res.Errors[0], errs.ErrInvalidValue)
	assert.ErrorIs(t, res.Errors[1], errs.ErrUnrecognizedArgument)
	assert.ErrorIs(t, res.Errors[2], errs.ErrUnrecognizedArgument)
}

func TestBareTokensReportedAsExtraArguments(t *testing.T) {
	p := fixtureParser(t)

	res := p.Parse([]string{"--verbose", "stray", "tokens"})
	require.Equal(t, OutcomeFailure, res.Outcome)
	require.Len(t, res.Errors, 1)

	var extra *errs.ExtraArgumentsError
	require.ErrorAs(t, res.Errors[0], &extra)
	assert.Equal(t, []string{"stray", "tokens"}, extra.Tokens)
}

func TestMissingValueAfterName(t *testing.T) {
	p := fixtureParser(t)

	res := p.Parse([]string{"--count"})
	require.Equal(t, OutcomeFailure, res.Outcome)
	require.Len(t, res.Errors, 1)
	assert.ErrorIs(t, res.Errors[0], errs.ErrInvalidValue)
	assert.ErrorIs(t, res.Errors[0], errs.ErrMissingValue)
}

func TestInvalidValueKeepsRawText(t *testing.T) {
	p := fixtureParser(t)

	res := p.Parse([]string{"--count", "many"})
	require.Equal(t, OutcomeFailure, res.Outcome)

	var invalid *errs.InvalidValueError
	require.ErrorAs(t, res.Errors[0], &invalid)
	assert.Equal(t, "count", invalid.Name)
	assert.Equal(t, "many", invalid.Raw)
}

func TestFlagRejectsInfixValue(t *testing.T) {
	p := fixtureParser(t)

	res := p.Parse([]string{"--verbose=true"})
	require.Equal(t, OutcomeFailure, res.Outcome)
	assert.ErrorIs(t, res.Errors[0], errs.ErrUnrecognizedArgument)
}

func TestEnumParsing(t *testing.T) {
	p := Enum("color", []string{"auto", "always", "never"}, WithDefault("auto"))
	require.NoError(t, p.Err())

	res := p.Parse([]string{"--color", "never"})
	require.True(t, res.Ok())
	assert.Equal(t, "never", res.Value)

	res = p.Parse([]string{"--color", "sometimes"})
	require.Equal(t, OutcomeFailure, res.Outcome)

	var unknown *errs.UnknownVariantError
	require.ErrorAs(t, res.Errors[0], &unknown)
	assert.Equal(t, "sometimes", unknown.Raw)
	assert.Equal(t, []string{"auto", "always", "never"}, unknown.Allowed)
}

func TestEarlyExitShortCircuits(t *testing.T) {
	p, err := Combine2(func(v bool, _ struct{}) bool { return v },
		Flag("verbose", WithDefault(false)),
		EarlyExit("version", "demo 1.2.3"),
	)
	require.NoError(t, err)

	// errors before the exit are discarded, tokens after stay unread
	res := p.Parse([]string{"--bogus", "--version", "--also-bogus"})
	require.Equal(t, OutcomeEarlyExit, res.Outcome)
	assert.Equal(t, "demo 1.2.3", res.Message)
	assert.Empty(t, res.Errors)
}

func TestEarlyExitInsideGroupedShorts(t *testing.T) {
	p, err := Combine2(func(v bool, _ struct{}) bool { return v },
		Flag("verbose", WithShort("v"), WithDefault(false)),
		EarlyExit("help", "usage...", WithShort("h")),
	)
	require.NoError(t, err)

	res := p.Parse([]string{"-vh"})
	require.Equal(t, OutcomeEarlyExit, res.Outcome)
	assert.Equal(t, "usage...", res.Message)
}

func TestUnicodeNames(t *testing.T) {
	p := Value("größe", ToInt, WithShort("ö"), WithCaseInsensitiveNames())
	require.NoError(t, p.Err())

	tests := []struct {
		name string
		args []string
	}{
		{name: "precomposed long name", args: []string{"--größe", "5"}},
		{name: "decomposed long name", args: []string{"--größe", "5"}},
		{name: "folded long name", args: []string{"--GRÖSSE", "5"}},
		{name: "decomposed short name", args: []string{"-ö", "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := p.Parse(tt.args)
			require.True(t, res.Ok(), "errors: %v", res.Errors)
			assert.Equal(t, 5, res.Value)
		})
	}
}

func TestParseString(t *testing.T) {
	p := fixtureParser(t)

	res, err := p.ParseString(`--verbose --count 3`)
	require.NoError(t, err)
	require.True(t, res.Ok())
	assert.Equal(t, fixture{Verbose: true, Count: 3}, res.Value)

	// shell quoting keeps a spaced value together
	q := Value("name", ToString)
	res2, err := q.ParseString(`--name "Ada Lovelace"`)
	require.NoError(t, err)
	require.True(t, res2.Ok())
	assert.Equal(t, "Ada Lovelace", res2.Value)
}
