package distractor

// allAdjectiveEndings is the full universe of German adjective endings
// used in the ending drills.
var allAdjectiveEndings = []string{"-e", "-en", "-em", "-er", "-es"}

// AdjectiveEndingOptions returns a shuffled choice set for an adjective
// ending drill: the correct ending plus up to three of the other valid
// endings.
func AdjectiveEndingOptions(correct string) []string {
	return Compose(correct, pickWrong(correct, allAdjectiveEndings, nil))
}
