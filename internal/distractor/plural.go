package distractor

// pluralSuffixes are the common German plural endings applied to the
// singular stem when generating wrong plurals.
var pluralSuffixes = []string{"e", "en", "n", "er", "s"}

// umlauts maps plain vowels to their umlauted forms.
var umlauts = map[byte]string{'a': "ä", 'o': "ö", 'u': "ü"}

// PluralOptions returns a shuffled choice set for a plural drill. Wrong
// plurals are generated by attaching suffix patterns to the singular stem,
// with and without umlauting the stem vowel.
func PluralOptions(singular, correctPlural string) []string {
	return Compose(correctPlural, pickWrong(correctPlural, pluralCandidates(singular), nil))
}

// pluralCandidates builds every plausible wrong plural for a singular.
func pluralCandidates(singular string) []string {
	stems := []string{singular}
	if umlauted, ok := umlautStem(singular); ok {
		stems = append(stems, umlauted)
	}

	var candidates []string
	for _, stem := range stems {
		if stem != singular {
			candidates = append(candidates, stem)
		}
		for _, suffix := range pluralSuffixes {
			candidates = append(candidates, stem+suffix)
		}
	}
	return candidates
}

// umlautStem substitutes the last umlautable vowel of the word
// (a→ä, o→ö, u→ü), treating "au" as one unit (au→äu, so Haus becomes
// Häus-, not Haüs-). The second return value is false when the word has
// no umlautable vowel.
func umlautStem(word string) (string, bool) {
	for i := len(word) - 1; i >= 0; i-- {
		replacement, ok := umlauts[word[i]]
		if !ok {
			continue
		}
		if word[i] == 'u' && i > 0 && word[i-1] == 'a' {
			return word[:i-1] + "äu" + word[i+1:], true
		}
		return word[:i] + replacement + word[i+1:], true
	}
	return "", false
}
