package distractor

import "strings"

// inseparablePrefixes are the verb prefixes whose participles do not take
// "ge-" (besuchen -> besucht, not gebesucht).
var inseparablePrefixes = []string{"be", "ver", "er", "ent", "zer"}

// PraeteritumOptions returns a shuffled choice set for a simple-past
// drill. Distractors prefer other conjugated forms of the same verb and
// top up from the global pool of correct forms across the exercise bank.
func PraeteritumOptions(sameVerbForms, globalPool []string, correct string) []string {
	return Compose(correct, pickWrong(correct, sameVerbForms, globalPool))
}

// PartizipOptions returns a shuffled choice set for a past-participle
// drill. Same-verb alternate forms get a "ge-" prefix so they resemble
// real participles. Verbs with an inseparable prefix form unprefixed
// participles, so their alternates are used as-is. The global participle
// pool tops up short sets.
func PartizipOptions(verb string, sameVerbForms, globalPool []string, correct string) []string {
	prefixed := make([]string, 0, len(sameVerbForms))
	for _, form := range sameVerbForms {
		prefixed = append(prefixed, participleLike(verb, form))
	}
	return Compose(correct, pickWrong(correct, prefixed, globalPool))
}

// participleLike makes a conjugated form resemble a participle of the
// given verb.
func participleLike(verb, form string) string {
	if hasInseparablePrefix(verb) || strings.HasPrefix(form, "ge") {
		return form
	}
	return "ge" + form
}

func hasInseparablePrefix(verb string) bool {
	for _, prefix := range inseparablePrefixes {
		if strings.HasPrefix(verb, prefix) {
			return true
		}
	}
	return false
}
