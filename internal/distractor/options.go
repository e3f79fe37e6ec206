// Package distractor builds plausible-but-wrong answer options around a
// correct answer, one generator per drill domain. Every generator follows
// the same pattern: build a candidate set from domain rules, drop anything
// case-insensitively equal to the correct answer, deduplicate
// case-insensitively, random-sample three, and top up from a broader
// fallback pool when the preferred set runs short. A pool too small to
// yield three unique distractors degrades to fewer, never to an error or a
// duplicate.
package distractor

import (
	"strings"

	"github.com/wortwahl/wortwahl-api/internal/selection"
)

// optionCount is the number of wrong options a generator aims for.
const optionCount = 3

// Compose combines the correct answer with its distractors into the final
// shuffled choice set. The correct answer appears exactly once.
func Compose(correct string, wrong []string) []string {
	return selection.Shuffle(append([]string{correct}, wrong...))
}

// pickWrong samples up to optionCount distractors, preferring the
// preferred set and falling back to fallback when short. Both sets are
// filtered against the correct answer and deduplicated, all
// case-insensitively.
func pickWrong(correct string, preferred, fallback []string) []string {
	taken := map[string]bool{strings.ToLower(correct): true}
	wrong := make([]string, 0, optionCount)

	for _, pool := range [][]string{preferred, fallback} {
		for _, candidate := range selection.Shuffle(pool) {
			if len(wrong) == optionCount {
				return wrong
			}
			key := strings.ToLower(candidate)
			if candidate == "" || taken[key] {
				continue
			}
			taken[key] = true
			wrong = append(wrong, candidate)
		}
	}
	return wrong
}
