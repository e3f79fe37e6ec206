package content

import "github.com/wortwahl/wortwahl-api/internal/domain"

// caseDrill asks the learner to identify the grammatical case of one
// highlighted noun phrase inside a sentence.
type caseDrill struct {
	sentence    string
	phrase      string
	grammatical domain.GrammaticalCase
	translation string
}

var caseDrills = []caseDrill{
	{"Der Hund frisst den Knochen.", "Der Hund", domain.CaseNominativ, "The dog eats the bone."},
	{"Der Hund frisst den Knochen.", "den Knochen", domain.CaseAkkusativ, "The dog eats the bone."},
	{"Die Frau gibt dem Kind ein Buch.", "dem Kind", domain.CaseDativ, "The woman gives the child a book."},
	{"Die Frau gibt dem Kind ein Buch.", "ein Buch", domain.CaseAkkusativ, "The woman gives the child a book."},
	{"Das Auto des Mannes ist rot.", "des Mannes", domain.CaseGenitiv, "The man's car is red."},
	{"Ich helfe dem alten Mann.", "dem alten Mann", domain.CaseDativ, "I help the old man."},
	{"Wir besuchen unsere Großeltern.", "unsere Großeltern", domain.CaseAkkusativ, "We visit our grandparents."},
	{"Die Tasche der Lehrerin ist schwer.", "der Lehrerin", domain.CaseGenitiv, "The teacher's bag is heavy."},
	{"Der Brief liegt auf dem Tisch.", "Der Brief", domain.CaseNominativ, "The letter lies on the table."},
	{"Der Brief liegt auf dem Tisch.", "dem Tisch", domain.CaseDativ, "The letter lies on the table."},
	{"Die Kinder spielen im Garten.", "Die Kinder", domain.CaseNominativ, "The children play in the garden."},
	{"Er kauft seiner Mutter Blumen.", "seiner Mutter", domain.CaseDativ, "He buys his mother flowers."},
	{"Er kauft seiner Mutter Blumen.", "Blumen", domain.CaseAkkusativ, "He buys his mother flowers."},
	{"Trotz des Regens gehen wir spazieren.", "des Regens", domain.CaseGenitiv, "Despite the rain we go for a walk."},
}

// casePool builds the case identification drill.
func casePool() []domain.Exercise {
	pool := make([]domain.Exercise, len(caseDrills))
	for i, d := range caseDrills {
		pool[i] = domain.Exercise{
			Mode:           domain.ModeCases,
			Word:           d.phrase,
			Translation:    d.translation,
			SentenceBefore: d.sentence,
			Case:           d.grammatical,
			Answer:         string(d.grammatical),
		}
	}
	return pool
}
