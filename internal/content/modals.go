package content

import (
	"github.com/wortwahl/wortwahl-api/internal/distractor"
	"github.com/wortwahl/wortwahl-api/internal/domain"
)

// modalDrill is one fill-the-gap modal verb exercise. The answer is
// derived from the conjugation table rather than stored, so the drills
// can never drift out of sync with the distractor generator.
type modalDrill struct {
	verb        string
	person      domain.ModalPerson
	before      string
	after       string
	translation string
}

var modalDrills = []modalDrill{
	{"können", domain.ModalIch, "Ich", "gut schwimmen.", "I can swim well."},
	{"müssen", domain.ModalDu, "Du", "jetzt gehen.", "You have to go now."},
	{"dürfen", domain.ModalErSie, "Er", "hier nicht parken.", "He is not allowed to park here."},
	{"wollen", domain.ModalWir, "Wir", "nach Berlin fahren.", "We want to go to Berlin."},
	{"sollen", domain.ModalIhr, "Ihr", "mehr Wasser trinken.", "You should drink more water."},
	{"mögen", domain.ModalSiePl, "Sie", "keinen Fisch.", "They don't like fish."},
	{"müssen", domain.ModalIch, "Ich", "heute lange arbeiten.", "I have to work long today."},
	{"können", domain.ModalDu, "", "du mir helfen?", "Can you help me?"},
	{"wollen", domain.ModalErSie, "Sie", "Ärztin werden.", "She wants to become a doctor."},
	{"dürfen", domain.ModalWir, "", "wir hier rauchen?", "May we smoke here?"},
	{"sollen", domain.ModalIch, "Was", "ich machen?", "What should I do?"},
	{"mögen", domain.ModalIch, "Ich", "diesen Film sehr.", "I like this film a lot."},
}

func modalPool() []domain.Exercise {
	pool := make([]domain.Exercise, len(modalDrills))
	for i, d := range modalDrills {
		pool[i] = domain.Exercise{
			Mode:           domain.ModeModals,
			Translation:    d.translation,
			SentenceBefore: d.before,
			SentenceAfter:  d.after,
			Verb:           d.verb,
			ModalPerson:    d.person,
			Answer:         distractor.ModalConjugation(d.verb, d.person),
		}
	}
	return pool
}
