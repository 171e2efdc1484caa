package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	args, err := Split(`--name "a value" -v`)
	require.NoError(t, err)
	assert.Equal(t, []string{"--name", "a value", "-v"}, args)
}

func TestSplit_SingleQuotes(t *testing.T) {
	args, err := Split(`--path '/tmp/my dir'`)
	require.NoError(t, err)
	assert.Equal(t, []string{"--path", "/tmp/my dir"}, args)
}

func TestSplit_UnterminatedQuote(t *testing.T) {
	_, err := Split(`--name "unterminated`)
	assert.Error(t, err)
}

func TestSplit_Empty(t *testing.T) {
	args, err := Split("")
	require.NoError(t, err)
	assert.Empty(t, args)
}
