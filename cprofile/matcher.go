package cprofile

import (
	"errors"
	"fmt"
)

var (
	// ErrFieldCount rejects lines that do not have exactly six fields.
	ErrFieldCount = errors.New("stat line does not have exactly 6 fields")
	// ErrFieldType rejects lines where a field classifies to the wrong type.
	ErrFieldType = errors.New("stat line field has the wrong type")
)

// StatLine is one matched per-function row of the report,
// e.g. "10 0.001 0.0001 0.002 0.0002 foo.py:12(bar)".
type StatLine struct {
	NCalls         int
	TotTime        float64
	TotTimePerCall float64
	CumTime        float64
	CumTimePerCall float64
	Location       string
}

// The fixed shape every stat row must have, position by position.
var statPattern = [...]Kind{KindInt, KindFloat, KindFloat, KindFloat, KindFloat, KindString}

// MatchStatLine tests whether a whitespace-split line matches the
// (int, float, float, float, float, string) shape of a stat row and returns
// the coerced values. The width check comes first: anything other than six
// tokens is rejected regardless of content. A single field classifying to the
// wrong type rejects the whole line - no partial rows are ever built, so a
// bad middle field can never shift the later positions.
func MatchStatLine(tokens []string, verbose bool) (StatLine, error) {
	if len(tokens) != len(statPattern) {
		return StatLine{}, fmt.Errorf("%w: got %d", ErrFieldCount, len(tokens))
	}

	var fields [len(statPattern)]Field
	for i, token := range tokens {
		field := Classify(token, verbose)
		if field.Kind != statPattern[i] {
			return StatLine{}, fmt.Errorf("%w: field %d %q is %s, want %s",
				ErrFieldType, i, token, field.Kind, statPattern[i])
		}
		fields[i] = field
	}

	return StatLine{
		NCalls:         fields[0].Int,
		TotTime:        fields[1].Float,
		TotTimePerCall: fields[2].Float,
		CumTime:        fields[3].Float,
		CumTimePerCall: fields[4].Float,
		Location:       fields[5].Str,
	}, nil
}
