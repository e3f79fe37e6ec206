package content

import "github.com/wortwahl/wortwahl-api/internal/domain"

// prepositionDrill is one fill-the-gap preposition exercise.
type prepositionDrill struct {
	preposition string
	grammatical domain.GrammaticalCase
	before      string
	after       string
	translation string
}

var prepositionDrills = []prepositionDrill{
	{"durch", domain.CaseAkkusativ, "Wir gehen", "den Park.", "We walk through the park."},
	{"für", domain.CaseAkkusativ, "Das Geschenk ist", "meine Mutter.", "The gift is for my mother."},
	{"gegen", domain.CaseAkkusativ, "Er ist", "den Plan.", "He is against the plan."},
	{"ohne", domain.CaseAkkusativ, "Ich trinke Kaffee", "Zucker.", "I drink coffee without sugar."},
	{"um", domain.CaseAkkusativ, "Der Unterricht beginnt", "acht Uhr.", "The class starts at eight o'clock."},
	{"bis", domain.CaseAkkusativ, "Der Laden ist", "20 Uhr geöffnet.", "The store is open until 8 PM."},
	{"aus", domain.CaseDativ, "Sie kommt", "der Schweiz.", "She comes from Switzerland."},
	{"bei", domain.CaseDativ, "Er wohnt noch", "seinen Eltern.", "He still lives with his parents."},
	{"mit", domain.CaseDativ, "Wir fahren", "dem Zug.", "We travel by train."},
	{"nach", domain.CaseDativ, "Der Zug fährt", "Berlin.", "The train goes to Berlin."},
	{"seit", domain.CaseDativ, "Ich lerne", "einem Jahr Deutsch.", "I have been learning German for a year."},
	{"von", domain.CaseDativ, "Das Buch ist", "meinem Bruder.", "The book is from my brother."},
	{"zu", domain.CaseDativ, "Wir gehen", "Fuß.", "We walk."},
	{"gegenüber", domain.CaseDativ, "Die Bäckerei liegt", "dem Bahnhof.", "The bakery is opposite the station."},
	{"während", domain.CaseGenitiv, "", "des Essens spricht er nicht.", "He doesn't talk during the meal."},
	{"wegen", domain.CaseGenitiv, "", "des Wetters bleiben wir zu Hause.", "Because of the weather we stay home."},
	{"trotz", domain.CaseGenitiv, "", "des Regens gehen wir spazieren.", "Despite the rain we go for a walk."},
	{"statt", domain.CaseGenitiv, "Er trinkt Tee", "des Kaffees.", "He drinks tea instead of coffee."},
}

// prepositionPool builds the preposition drill.
func prepositionPool() []domain.Exercise {
	pool := make([]domain.Exercise, len(prepositionDrills))
	for i, d := range prepositionDrills {
		pool[i] = domain.Exercise{
			Mode:           domain.ModePrepositions,
			Translation:    d.translation,
			SentenceBefore: d.before,
			SentenceAfter:  d.after,
			Case:           d.grammatical,
			Answer:         d.preposition,
		}
	}
	return pool
}
