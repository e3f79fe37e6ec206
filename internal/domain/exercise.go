package domain

// GrammaticalCase is one of the four German cases.
type GrammaticalCase string

// German grammatical cases.
const (
	CaseNominativ GrammaticalCase = "nominativ"
	CaseAkkusativ GrammaticalCase = "akkusativ"
	CaseDativ     GrammaticalCase = "dativ"
	CaseGenitiv   GrammaticalCase = "genitiv"
)

// Gender is a German grammatical gender code.
type Gender string

// Grammatical genders.
const (
	GenderMasculine Gender = "m"
	GenderFeminine  Gender = "f"
	GenderNeuter    Gender = "n"
)

// ArticleType distinguishes the three article declension patterns.
type ArticleType string

// Article types.
const (
	ArticleDefinite   ArticleType = "definite"
	ArticleIndefinite ArticleType = "indefinite"
	ArticleNone       ArticleType = "none"
)

// ModalPerson identifies a conjugation row in the modal verb table. The
// third person singular and the plural/formal rows each share one form,
// so the table collapses them.
type ModalPerson string

// Modal conjugation persons.
const (
	ModalIch   ModalPerson = "ich"
	ModalDu    ModalPerson = "du"
	ModalErSie ModalPerson = "er/sie/es"
	ModalWir   ModalPerson = "wir"
	ModalIhr   ModalPerson = "ihr"
	ModalSiePl ModalPerson = "sie/Sie"
)

// Person identifies a grammatical person for pronoun and possessive drills.
// sie_sg and sie_pl distinguish singular "sie" (she) from plural "sie"
// (they); "Sie" is the formal address.
type Person string

// Grammatical persons.
const (
	PersonIch     Person = "ich"
	PersonDu      Person = "du"
	PersonEr      Person = "er"
	PersonSieSg   Person = "sie_sg"
	PersonEs      Person = "es"
	PersonWir     Person = "wir"
	PersonIhr     Person = "ihr"
	PersonSiePl   Person = "sie_pl"
	PersonSieForm Person = "Sie"
)

// Exercise is one drill item served to the learner. A single flat shape
// covers all modes: the prompt is SentenceBefore + gap + SentenceAfter (or
// just Word for bare-word drills), Answer is the expected surface form, and
// Options is the shuffled multiple-choice set filled in at selection time.
//
// The remaining fields carry the grammatical context the distractor
// generators need; which ones are populated depends on the mode.
type Exercise struct {
	Mode           Mode     `json:"mode"`
	Word           string   `json:"word,omitempty"`
	Translation    string   `json:"translation,omitempty"`
	SentenceBefore string   `json:"sentence_before,omitempty"`
	SentenceAfter  string   `json:"sentence_after,omitempty"`
	Answer         string   `json:"answer"`
	Options        []string `json:"options,omitempty"`

	Case        GrammaticalCase `json:"case,omitempty"`
	Gender      Gender          `json:"gender,omitempty"`
	ArticleType ArticleType     `json:"article_type,omitempty"`
	Person      Person          `json:"person,omitempty"`

	// Verb context for Präteritum, Partizip II and modal drills. Verb is
	// the infinitive; VerbForms lists the other correct conjugated forms
	// of the same verb, which the generators prefer as distractors.
	Verb        string      `json:"verb,omitempty"`
	VerbForms   []string    `json:"-"`
	ModalPerson ModalPerson `json:"modal_person,omitempty"`

	// Plural drills carry the singular in Word and the true plural in
	// Answer.
}
