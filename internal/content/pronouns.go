package content

import "github.com/wortwahl/wortwahl-api/internal/domain"

// pronounDrill is one fill-the-gap personal pronoun exercise.
type pronounDrill struct {
	person      domain.Person
	grammatical domain.GrammaticalCase
	form        string
	before      string
	after       string
	translation string
}

var pronounDrills = []pronounDrill{
	{domain.PersonIch, domain.CaseNominativ, "ich", "Morgen komme", "zu dir.", "Tomorrow I'll come to your place."},
	{domain.PersonDu, domain.CaseNominativ, "du", "Wann kommst", "nach Hause?", "When are you coming home?"},
	{domain.PersonEr, domain.CaseNominativ, "er", "Heute arbeitet", "nicht.", "He is not working today."},
	{domain.PersonSieSg, domain.CaseNominativ, "sie", "Warum lacht", "so laut?", "Why is she laughing so loudly?"},
	{domain.PersonWir, domain.CaseNominativ, "wir", "Am Sonntag fahren", "ans Meer.", "On Sunday we drive to the sea."},
	{domain.PersonIhr, domain.CaseNominativ, "ihr", "Habt", "schon gegessen?", "Have you all eaten yet?"},
	{domain.PersonIch, domain.CaseAkkusativ, "mich", "Er sieht", "nicht.", "He doesn't see me."},
	{domain.PersonDu, domain.CaseAkkusativ, "dich", "Ich rufe", "morgen an.", "I'll call you tomorrow."},
	{domain.PersonEr, domain.CaseAkkusativ, "ihn", "Wir besuchen", "im Krankenhaus.", "We visit him in the hospital."},
	{domain.PersonSiePl, domain.CaseAkkusativ, "sie", "Der Lehrer lobt", "alle.", "The teacher praises them all."},
	{domain.PersonIch, domain.CaseDativ, "mir", "Kannst du", "helfen?", "Can you help me?"},
	{domain.PersonDu, domain.CaseDativ, "dir", "Das Buch gehört", ".", "The book belongs to you."},
	{domain.PersonEr, domain.CaseDativ, "ihm", "Sie gibt", "einen Apfel.", "She gives him an apple."},
	{domain.PersonWir, domain.CaseDativ, "uns", "Der Film gefällt", "sehr.", "We like the film a lot."},
	{domain.PersonSieForm, domain.CaseDativ, "Ihnen", "Wie geht es", "?", "How are you?"},
	{domain.PersonIhr, domain.CaseDativ, "euch", "Ich danke", "für die Einladung.", "Thank you all for the invitation."},
}

// pronounPool builds the personal pronoun drill.
func pronounPool() []domain.Exercise {
	pool := make([]domain.Exercise, len(pronounDrills))
	for i, d := range pronounDrills {
		pool[i] = domain.Exercise{
			Mode:           domain.ModePronouns,
			Translation:    d.translation,
			SentenceBefore: d.before,
			SentenceAfter:  d.after,
			Case:           d.grammatical,
			Person:         d.person,
			Answer:         d.form,
		}
	}
	return pool
}
