package distractor

import "github.com/wortwahl/wortwahl-api/internal/domain"

// ModalVerbs lists the six German modal verbs.
var ModalVerbs = []string{"können", "müssen", "dürfen", "sollen", "wollen", "mögen"}

// modalConjugations is the full present-tense conjugation table of the
// six modal verbs.
var modalConjugations = map[string]map[domain.ModalPerson]string{
	"können": {
		domain.ModalIch: "kann", domain.ModalDu: "kannst", domain.ModalErSie: "kann",
		domain.ModalWir: "können", domain.ModalIhr: "könnt", domain.ModalSiePl: "können",
	},
	"müssen": {
		domain.ModalIch: "muss", domain.ModalDu: "musst", domain.ModalErSie: "muss",
		domain.ModalWir: "müssen", domain.ModalIhr: "müsst", domain.ModalSiePl: "müssen",
	},
	"dürfen": {
		domain.ModalIch: "darf", domain.ModalDu: "darfst", domain.ModalErSie: "darf",
		domain.ModalWir: "dürfen", domain.ModalIhr: "dürft", domain.ModalSiePl: "dürfen",
	},
	"sollen": {
		domain.ModalIch: "soll", domain.ModalDu: "sollst", domain.ModalErSie: "soll",
		domain.ModalWir: "sollen", domain.ModalIhr: "sollt", domain.ModalSiePl: "sollen",
	},
	"wollen": {
		domain.ModalIch: "will", domain.ModalDu: "willst", domain.ModalErSie: "will",
		domain.ModalWir: "wollen", domain.ModalIhr: "wollt", domain.ModalSiePl: "wollen",
	},
	"mögen": {
		domain.ModalIch: "mag", domain.ModalDu: "magst", domain.ModalErSie: "mag",
		domain.ModalWir: "mögen", domain.ModalIhr: "mögt", domain.ModalSiePl: "mögen",
	},
}

// ModalConjugation looks up the conjugated form of a modal verb for a
// person. Returns "" when the verb or person is unknown.
func ModalConjugation(verb string, person domain.ModalPerson) string {
	return modalConjugations[verb][person]
}

// ModalOptions returns a shuffled choice set for a modal verb drill.
// Distractors prefer the same person's conjugated form of the other five
// modal verbs, topped up with other persons' forms of the same verb when
// forms collide.
func ModalOptions(verb string, person domain.ModalPerson, correct string) []string {
	var samePerson []string
	for _, other := range ModalVerbs {
		if other == verb {
			continue
		}
		if form := modalConjugations[other][person]; form != "" {
			samePerson = append(samePerson, form)
		}
	}

	var sameVerb []string
	for _, form := range modalConjugations[verb] {
		sameVerb = append(sameVerb, form)
	}

	return Compose(correct, pickWrong(correct, samePerson, sameVerb))
}
