package argv

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverters(t *testing.T) {
	s, err := ToString("anything at all")
	require.NoError(t, err)
	assert.Equal(t, "anything at all", s)

	i, err := ToInt("-42")
	require.NoError(t, err)
	assert.Equal(t, -42, i)
	_, err = ToInt("4.2")
	assert.Error(t, err)

	i64, err := ToInt64("9007199254740993")
	require.NoError(t, err)
	assert.Equal(t, int64(9007199254740993), i64)

	u, err := ToUint64("18446744073709551615")
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), u)
	_, err = ToUint64("-1")
	assert.Error(t, err)

	f, err := ToFloat64("2.5")
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)

	b, err := ToBool("true")
	require.NoError(t, err)
	assert.True(t, b)
	_, err = ToBool("yes")
	assert.Error(t, err)

	d, err := ToDuration("1h30m")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, d)
}

func TestToTime(t *testing.T) {
	tests := []string{
		"2026-08-29",
		"2026-08-29 15:04:05",
		"08/29/2026",
	}
	for _, raw := range tests {
		ts, err := ToTime(raw)
		require.NoError(t, err, "input %q", raw)
		assert.Equal(t, 2026, ts.Year())
		assert.Equal(t, time.August, ts.Month())
		assert.Equal(t, 29, ts.Day())
	}

	_, err := ToTime("not a date")
	assert.Error(t, err)
}
