package cprofile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchStatLineCanonical(t *testing.T) {
	stat, err := MatchStatLine(strings.Fields("10 0.001 0.0001 0.002 0.0002 foo.py:12(bar)"), false)
	require.NoError(t, err)
	assert.Equal(t, StatLine{
		NCalls:         10,
		TotTime:        0.001,
		TotTimePerCall: 0.0001,
		CumTime:        0.002,
		CumTimePerCall: 0.0002,
		Location:       "foo.py:12(bar)",
	}, stat)
}

func TestMatchStatLineRecursiveCallCount(t *testing.T) {
	stat, err := MatchStatLine(strings.Fields("12/8 0.001 0.0001 0.002 0.0002 foo.py:12(bar)"), false)
	require.NoError(t, err)
	assert.Equal(t, 12, stat.NCalls)
}

func TestMatchStatLineRejectsWrongWidth(t *testing.T) {
	// the width check is strict and independent of content
	for _, line := range []string{
		"",
		"10 0.001 0.0001 0.002 0.0002",
		"10 0.001 0.0001 0.002 0.0002 foo.py:12(bar) extra",
		"1 0.000 0.000 0.000 0.000 {built-in method builtins.print}",
	} {
		_, err := MatchStatLine(strings.Fields(line), false)
		assert.ErrorIs(t, err, ErrFieldCount, "line %q", line)
	}
}

func TestMatchStatLineRejectsWrongTypes(t *testing.T) {
	for _, line := range []string{
		"ncalls tottime percall cumtime percall filename:lineno(function)",
		"x 0.001 0.0001 0.002 0.0002 foo.py:12(bar)",
		"10 1 0.0001 0.002 0.0002 foo.py:12(bar)",
		"10 0.001 0.0001 0.002 0.0002 42",
	} {
		_, err := MatchStatLine(strings.Fields(line), false)
		assert.ErrorIs(t, err, ErrFieldType, "line %q", line)
	}
}
