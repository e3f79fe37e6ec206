package content

import "github.com/wortwahl/wortwahl-api/internal/domain"

// verbDrill is one fill-the-gap verb form exercise. forms lists the
// other correct forms of the same verb (other persons for Präteritum,
// present/past forms for Partizip II), which the distractor generators
// prefer over the global pool.
type verbDrill struct {
	verb        string
	form        string
	forms       []string
	before      string
	after       string
	translation string
}

// praeteritumDrills cover the simple past of common verbs.
var praeteritumDrills = []verbDrill{
	{"gehen", "ging", []string{"gingst", "gingen", "gingt"}, "Gestern", "ich früh nach Hause.", "Yesterday I went home early."},
	{"sein", "war", []string{"warst", "waren", "wart"}, "Der Film", "sehr langweilig.", "The film was very boring."},
	{"haben", "hatte", []string{"hattest", "hatten", "hattet"}, "Sie", "keine Zeit.", "She had no time."},
	{"kommen", "kam", []string{"kamst", "kamen", "kamt"}, "Der Zug", "zu spät.", "The train came too late."},
	{"sehen", "sah", []string{"sahst", "sahen", "saht"}, "Ich", "ihn im Park.", "I saw him in the park."},
	{"lesen", "las", []string{"lasest", "lasen", "last"}, "Er", "die Zeitung.", "He read the newspaper."},
	{"fahren", "fuhr", []string{"fuhrst", "fuhren", "fuhrt"}, "Wir", "mit dem Bus.", "We went by bus."},
	{"essen", "aß", []string{"aßest", "aßen", "aßt"}, "Das Kind", "einen Apfel.", "The child ate an apple."},
	{"trinken", "trank", []string{"trankst", "tranken", "trankt"}, "Sie", "einen Kaffee.", "She drank a coffee."},
	{"schreiben", "schrieb", []string{"schriebst", "schrieben", "schriebt"}, "Ich", "einen langen Brief.", "I wrote a long letter."},
	{"finden", "fand", []string{"fandest", "fanden", "fandet"}, "Er", "seinen Schlüssel nicht.", "He didn't find his key."},
	{"nehmen", "nahm", []string{"nahmst", "nahmen", "nahmt"}, "Sie", "den letzten Zug.", "She took the last train."},
}

// perfektDrills cover the past participle. forms hold non-participle
// forms of the same verb; the generator applies its ge- heuristic to
// them.
var perfektDrills = []verbDrill{
	{"machen", "gemacht", []string{"macht", "machte", "machten"}, "Ich habe meine Hausaufgaben", ".", "I have done my homework."},
	{"kaufen", "gekauft", []string{"kauft", "kaufte", "kauften"}, "Wir haben ein neues Auto", ".", "We have bought a new car."},
	{"sehen", "gesehen", []string{"sieht", "sahen", "seht"}, "Hast du den Film", "?", "Have you seen the film?"},
	{"essen", "gegessen", []string{"isst", "aßen", "esst"}, "Die Kinder haben schon", ".", "The children have already eaten."},
	{"trinken", "getrunken", []string{"trinkt", "tranken", "trinkst"}, "Er hat zu viel Kaffee", ".", "He has drunk too much coffee."},
	{"schreiben", "geschrieben", []string{"schreibt", "schrieben", "schreibst"}, "Sie hat mir eine E-Mail", ".", "She has written me an email."},
	{"besuchen", "besucht", []string{"besuchte", "besuchten", "besuchst"}, "Wir haben unsere Oma", ".", "We have visited our grandma."},
	{"verstehen", "verstanden", []string{"versteht", "verstand", "verstehst"}, "Ich habe die Frage nicht", ".", "I haven't understood the question."},
	{"erklären", "erklärt", []string{"erklärte", "erklärten", "erklärst"}, "Der Lehrer hat die Regel", ".", "The teacher has explained the rule."},
	{"entdecken", "entdeckt", []string{"entdeckte", "entdeckten", "entdeckst"}, "Sie haben einen Fehler", ".", "They have discovered a mistake."},
	{"zerbrechen", "zerbrochen", []string{"zerbricht", "zerbrach", "zerbrachen"}, "Das Glas ist", ".", "The glass is broken."},
	{"arbeiten", "gearbeitet", []string{"arbeitet", "arbeitete", "arbeiteten"}, "Er hat den ganzen Tag", ".", "He has worked all day."},
}

func verbPool(mode domain.Mode, drills []verbDrill) []domain.Exercise {
	pool := make([]domain.Exercise, len(drills))
	for i, d := range drills {
		pool[i] = domain.Exercise{
			Mode:           mode,
			Translation:    d.translation,
			SentenceBefore: d.before,
			SentenceAfter:  d.after,
			Verb:           d.verb,
			VerbForms:      d.forms,
			Answer:         d.form,
		}
	}
	return pool
}

// globalForms collects every correct answer across a verb drill bank,
// used as the distractor fallback pool.
func globalForms(drills []verbDrill) []string {
	forms := make([]string, len(drills))
	for i, d := range drills {
		forms[i] = d.form
	}
	return forms
}
