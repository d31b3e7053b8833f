package cprofile

import (
	"strconv"
	"strings"
)

// Kind is the classified type of a report token.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "string"
	}
}

// Field is one classified token. Str always holds the original token, the
// numeric payload is only meaningful for the matching Kind.
type Field struct {
	Kind  Kind
	Int   int
	Float float64
	Str   string
}

// Classify coerces a report token to the most specific type it matches.
// Tokens without a decimal point are tried as integers first. A slash form
// like "12/8" is the profiler's primitive/total call count pair; the larger
// of the two halves wins. Anything that fails integer coercion is tried as a
// float, and anything that fails both comes back unchanged as a string.
// Classify never fails, it only degrades.
func Classify(token string, verbose bool) Field {
	if !strings.Contains(token, ".") {
		if left, right, found := strings.Cut(token, "/"); found {
			a, errA := strconv.Atoi(left)
			b, errB := strconv.Atoi(right)
			if errA == nil && errB == nil {
				if a > b {
					return Field{Kind: KindInt, Int: a, Str: token}
				}
				return Field{Kind: KindInt, Int: b, Str: token}
			}
			if verbose {
				println("Verbose: Classify: " + token + " is not an int/int pair")
			}
		} else if n, err := strconv.Atoi(token); err == nil {
			return Field{Kind: KindInt, Int: n, Str: token}
		} else if verbose {
			println("Verbose: Classify: " + token + " is not an int")
		}
	}

	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return Field{Kind: KindFloat, Float: f, Str: token}
	} else if verbose {
		println("Verbose: Classify: " + token + " is not a float, keeping string")
	}

	return Field{Kind: KindString, Str: token}
}
