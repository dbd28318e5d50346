package quiz

import (
	"strings"

	"golang.org/x/text/cases"

	"langlearn/internal/vocab"
)

// Evaluation is the outcome of checking one typed answer against a record.
type Evaluation struct {
	// Correct is true when the answer matched at least one alternative.
	Correct bool

	// Matched is the alternative the answer matched, in its original
	// spelling. Empty when Correct is false.
	Matched string

	// Others lists the correct alternatives the user did not type.
	Others []string

	// All lists every correct alternative, for display on a wrong answer.
	All []string
}

// Evaluate checks answer against rec's translation alternatives. The
// comparison trims whitespace and applies Unicode case folding on both
// sides, so "LIS " matches "lis".
func Evaluate(rec vocab.Record, answer string) Evaluation {
	alts := rec.Alternatives()
	ev := Evaluation{All: alts}

	folded := foldKey(answer)
	for _, alt := range alts {
		if foldKey(alt) == folded {
			ev.Correct = true
			ev.Matched = alt
			continue
		}
		ev.Others = append(ev.Others, alt)
	}
	if !ev.Correct {
		ev.Others = nil
	}
	return ev
}

// foldKey normalizes a word for comparison.
func foldKey(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
