package distractor

// prepositionPool is the flat pool of prepositions across all three
// case-government categories. Distractor sampling is deliberately not
// case-aware: mixing governments is what makes the drill hard.
var prepositionPool = []string{
	// akkusativ
	"bis", "durch", "für", "gegen", "ohne", "um",
	// dativ
	"aus", "bei", "mit", "nach", "seit", "von", "zu", "gegenüber",
	// genitiv
	"während", "wegen", "trotz", "statt", "innerhalb", "außerhalb",
}

// PrepositionOptions returns a shuffled choice set for a preposition
// drill: the correct preposition plus up to three others from the flat
// pool.
func PrepositionOptions(correct string) []string {
	return Compose(correct, pickWrong(correct, prepositionPool, nil))
}
