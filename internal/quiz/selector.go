package quiz

import (
	"math/rand/v2"
	"time"

	"langlearn/internal/vocab"
)

// Selector picks the next record to present. Randomness is injected so
// tests can supply a fixed seed and assert exact selection order.
type Selector struct {
	rnd *rand.Rand
}

// NewSelector creates a selector using rnd. Passing nil seeds one from the
// current time.
func NewSelector(rnd *rand.Rand) *Selector {
	if rnd == nil {
		now := uint64(time.Now().UnixNano())
		rnd = rand.New(rand.NewPCG(now, now>>32))
	}
	return &Selector{rnd: rnd}
}

// Pick returns the next unmastered record, never repeating last when an
// alternative exists.
//
// When exactly one unmastered record remains it is returned directly, even
// if it equals last; otherwise the resampling loop below could never
// terminate. With two or more candidates, Pick draws uniformly from the
// full set and re-rolls while the draw is already mastered or equals last.
func (s *Selector) Pick(records []vocab.Record, tracker *Tracker, last *vocab.Record) vocab.Record {
	var remaining []vocab.Record
	for _, r := range records {
		if !tracker.Contains(r) {
			remaining = append(remaining, r)
		}
	}
	if len(remaining) == 1 {
		return remaining[0]
	}

	for {
		r := records[s.rnd.IntN(len(records))]
		if tracker.Contains(r) {
			continue
		}
		if last != nil && r == *last {
			continue
		}
		return r
	}
}
