package distractor

import "github.com/wortwahl/wortwahl-api/internal/domain"

// pronounForms maps each person to its personal pronoun surface form per
// case. Pronoun drills cover nominative, accusative and dative.
var pronounForms = map[domain.Person]map[domain.GrammaticalCase]string{
	domain.PersonIch:     {domain.CaseNominativ: "ich", domain.CaseAkkusativ: "mich", domain.CaseDativ: "mir"},
	domain.PersonDu:      {domain.CaseNominativ: "du", domain.CaseAkkusativ: "dich", domain.CaseDativ: "dir"},
	domain.PersonEr:      {domain.CaseNominativ: "er", domain.CaseAkkusativ: "ihn", domain.CaseDativ: "ihm"},
	domain.PersonSieSg:   {domain.CaseNominativ: "sie", domain.CaseAkkusativ: "sie", domain.CaseDativ: "ihr"},
	domain.PersonEs:      {domain.CaseNominativ: "es", domain.CaseAkkusativ: "es", domain.CaseDativ: "ihm"},
	domain.PersonWir:     {domain.CaseNominativ: "wir", domain.CaseAkkusativ: "uns", domain.CaseDativ: "uns"},
	domain.PersonIhr:     {domain.CaseNominativ: "ihr", domain.CaseAkkusativ: "euch", domain.CaseDativ: "euch"},
	domain.PersonSiePl:   {domain.CaseNominativ: "sie", domain.CaseAkkusativ: "sie", domain.CaseDativ: "ihnen"},
	domain.PersonSieForm: {domain.CaseNominativ: "Sie", domain.CaseAkkusativ: "Sie", domain.CaseDativ: "Ihnen"},
}

// pronounCases in a fixed order, for iterating the form table.
var pronounCases = []domain.GrammaticalCase{domain.CaseNominativ, domain.CaseAkkusativ, domain.CaseDativ}

// PronounOptions returns a shuffled choice set for a personal pronoun
// drill. Distractors prefer the same person's forms in the other two
// cases; when that yields fewer than three unique forms (several persons
// share surface forms across cases), the set is topped up with other
// persons' forms in the same case.
func PronounOptions(person domain.Person, grammaticalCase domain.GrammaticalCase, correct string) []string {
	var sameOtherCases []string
	for _, c := range pronounCases {
		if c == grammaticalCase {
			continue
		}
		if form, ok := pronounForms[person][c]; ok {
			sameOtherCases = append(sameOtherCases, form)
		}
	}

	var otherPersonsSameCase []string
	for p, forms := range pronounForms {
		if p == person {
			continue
		}
		if form, ok := forms[grammaticalCase]; ok {
			otherPersonsSameCase = append(otherPersonsSameCase, form)
		}
	}

	return Compose(correct, pickWrong(correct, sameOtherCases, otherPersonsSameCase))
}
