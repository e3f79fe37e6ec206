package content

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

// possessiveEndings follow the indefinite article pattern.
var possessiveEndings = map[domain.GrammaticalCase]map[domain.Gender]string{
	domain.CaseNominativ: {domain.GenderMasculine: "", domain.GenderFeminine: "e", domain.GenderNeuter: ""},
	domain.CaseAkkusativ: {domain.GenderMasculine: "en", domain.GenderFeminine: "e", domain.GenderNeuter: ""},
	domain.CaseDativ:     {domain.GenderMasculine: "em", domain.GenderFeminine: "er", domain.GenderNeuter: "em"},
	domain.CaseGenitiv:   {domain.GenderMasculine: "es", domain.GenderFeminine: "er", domain.GenderNeuter: "es"},
}

// PossessiveForm derives the inflected possessive pronoun for a person,
// case and gender. "euer" drops its inner e before an ending (euer ->
// eure, eurem).
func PossessiveForm(person domain.Person, grammaticalCase domain.GrammaticalCase, gender domain.Gender) string {
	stem := possessiveStems[person]
	ending := possessiveEndings[grammaticalCase][gender]
	if stem == "euer" && ending != "" {
		return "eur" + ending
	}
	return stem + ending
}

// possessiveDrill is one fill-the-gap possessive exercise.
type possessiveDrill struct {
	person      domain.Person
	grammatical domain.GrammaticalCase
	gender      domain.Gender
	noun        string
	before      string
	after       string
	translation string
}

var possessiveDrills = []possessiveDrill{
	{domain.PersonIch, domain.CaseNominativ, domain.GenderMasculine, "Bruder", "Das ist", "Bruder.", "This is my brother."},
	{domain.PersonDu, domain.CaseAkkusativ, domain.GenderFeminine, "Tasche", "Hast du", "Tasche dabei?", "Do you have your bag with you?"},
	{domain.PersonEr, domain.CaseDativ, domain.GenderNeuter, "Auto", "Er fährt mit", "Auto zur Arbeit.", "He drives to work in his car."},
	{domain.PersonSieSg, domain.CaseAkkusativ, domain.GenderMasculine, "Schlüssel", "Sie sucht", "Schlüssel.", "She is looking for her key."},
	{domain.PersonWir, domain.CaseNominativ, domain.GenderFeminine, "Wohnung", "", "Wohnung ist im dritten Stock.", "Our apartment is on the third floor."},
	{domain.PersonIhr, domain.CaseAkkusativ, domain.GenderMasculine, "Hund", "Bringt ihr", "Hund mit?", "Are you bringing your dog?"},
	{domain.PersonSiePl, domain.CaseDativ, domain.GenderFeminine, "Tochter", "Sie schenken", "Tochter ein Fahrrad.", "They give their daughter a bicycle."},
	{domain.PersonSieForm, domain.CaseAkkusativ, domain.GenderNeuter, "Gepäck", "Haben Sie", "Gepäck gefunden?", "Have you found your luggage?"},
	{domain.PersonIch, domain.CaseDativ, domain.GenderFeminine, "Schwester", "Ich wohne bei", "Schwester.", "I live at my sister's."},
	{domain.PersonDu, domain.CaseNominativ, domain.GenderNeuter, "Zimmer", "Ist das", "Zimmer?", "Is this your room?"},
	{domain.PersonEr, domain.CaseGenitiv, domain.GenderMasculine, "Vater", "Das Haus", "Vaters steht am See.", "His father's house is by the lake."},
	{domain.PersonIhr, domain.CaseDativ, domain.GenderNeuter, "Haus", "Wir treffen uns vor", "Haus.", "We meet in front of your house."},
	{domain.PersonWir, domain.CaseAkkusativ, domain.GenderMasculine, "Garten", "Wir zeigen euch", "Garten.", "We show you our garden."},
	{domain.PersonSieSg, domain.CaseNominativ, domain.GenderFeminine, "Katze", "", "Katze schläft den ganzen Tag.", "Her cat sleeps all day."},
}

// possessivePool builds the possessive pronoun drill.
func possessivePool() []domain.Exercise {
	pool := make([]domain.Exercise, len(possessiveDrills))
	for i, d := range possessiveDrills {
		pool[i] = domain.Exercise{
			Mode:           domain.ModePossessives,
			Word:           d.noun,
			Translation:    d.translation,
			SentenceBefore: d.before,
			SentenceAfter:  d.after,
			Case:           d.grammatical,
			Gender:         d.gender,
			Person:         d.person,
			Answer:         PossessiveForm(d.person, d.grammatical, d.gender),
		}
	}
	return pool
}
