package distractor

import "github.com/wortwahl/wortwahl-api/internal/domain"

// possessiveStems maps each grammatical person to its possessive stem.
var possessiveStems = map[domain.Person]string{
	domain.PersonIch:     "mein",
	domain.PersonDu:      "dein",
	domain.PersonEr:      "sein",
	domain.PersonSieSg:   "ihr",
	domain.PersonEs:      "sein",
	domain.PersonWir:     "unser",
	domain.PersonIhr:     "euer",
	domain.PersonSiePl:   "ihr",
	domain.PersonSieForm: "Ihr",
}

// possessiveEndings are the declension endings attached to a possessive
// stem across case and gender.
var possessiveEndings = []string{"", "e", "en", "em", "er", "es"}

// euerForms are the inflected forms of "euer", which contracts its inner
// "e" before an ending (euer -> eure, not euere).
var euerForms = []string{"euer", "eure", "euren", "eurem", "eurer", "eures"}

// possessiveForms builds every inflected form of the person's possessive
// stem.
func possessiveForms(person domain.Person) []string {
	stem, ok := possessiveStems[person]
	if !ok {
		return nil
	}
	if stem == "euer" {
		return euerForms
	}
	forms := make([]string, len(possessiveEndings))
	for i, ending := range possessiveEndings {
		forms[i] = stem + ending
	}
	return forms
}

// PossessiveOptions returns a shuffled choice set for a possessive
// pronoun drill: the correct form plus up to three other inflections of
// the same person's stem.
func PossessiveOptions(person domain.Person, correct string) []string {
	return Compose(correct, pickWrong(correct, possessiveForms(person), nil))
}
