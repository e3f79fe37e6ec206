package content

import "github.com/wortwahl/wortwahl-api/internal/domain"

// adjectiveDrill is one adjective-ending exercise blueprint. The correct
// ending and the displayed article come from the declension tables so the
// data cannot drift out of sync with German grammar.
type adjectiveDrill struct {
	articleType domain.ArticleType
	grammatical domain.GrammaticalCase
	gender      domain.Gender
	adjective   string
	noun        string
	translation string
	before      string
	after       string
}

var adjectiveDrills = []adjectiveDrill{
	{domain.ArticleDefinite, domain.CaseNominativ, domain.GenderMasculine, "groß", "Mann", "the tall man", "Der", "Mann wohnt nebenan."},
	{domain.ArticleDefinite, domain.CaseAkkusativ, domain.GenderMasculine, "neu", "Film", "the new film", "Wir sehen den", "Film."},
	{domain.ArticleDefinite, domain.CaseDativ, domain.GenderFeminine, "alt", "Frau", "the old woman", "Ich helfe der", "Frau."},
	{domain.ArticleDefinite, domain.CaseNominativ, domain.GenderFeminine, "schön", "Blume", "the beautiful flower", "Die", "Blume blüht."},
	{domain.ArticleDefinite, domain.CaseGenitiv, domain.GenderNeuter, "klein", "Kind", "the small child", "Das Spielzeug des", "Kindes liegt hier."},
	{domain.ArticleIndefinite, domain.CaseNominativ, domain.GenderMasculine, "schnell", "Zug", "a fast train", "Ein", "Zug fährt ab."},
	{domain.ArticleIndefinite, domain.CaseAkkusativ, domain.GenderFeminine, "lang", "Straße", "a long street", "Wir überqueren eine", "Straße."},
	{domain.ArticleIndefinite, domain.CaseNominativ, domain.GenderNeuter, "gut", "Buch", "a good book", "Das ist ein", "Buch."},
	{domain.ArticleIndefinite, domain.CaseDativ, domain.GenderNeuter, "billig", "Hotel", "a cheap hotel", "Wir übernachten in einem", "Hotel."},
	{domain.ArticleIndefinite, domain.CaseAkkusativ, domain.GenderMasculine, "lecker", "Kuchen", "a delicious cake", "Sie backt einen", "Kuchen."},
	{domain.ArticleNone, domain.CaseNominativ, domain.GenderMasculine, "kalt", "Winter", "cold winter", "", "Winter kommt bald."},
	{domain.ArticleNone, domain.CaseAkkusativ, domain.GenderNeuter, "frisch", "Brot", "fresh bread", "Ich kaufe", "Brot."},
	{domain.ArticleNone, domain.CaseDativ, domain.GenderFeminine, "warm", "Milch", "warm milk", "Der Kaffee mit", "Milch schmeckt gut."},
	{domain.ArticleDefinite, domain.CaseDativ, domain.GenderMasculine, "langsam", "Bus", "the slow bus", "Wir fahren mit dem", "Bus."},
	{domain.ArticleIndefinite, domain.CaseNominativ, domain.GenderFeminine, "interessant", "Vorlesung", "an interesting lecture", "Das war eine", "Vorlesung."},
	{domain.ArticleDefinite, domain.CaseAkkusativ, domain.GenderNeuter, "rot", "Auto", "the red car", "Er fährt das", "Auto."},
}

// adjectivePool builds the adjective-ending drill: pick the ending that
// completes "<before> <adjective>___ <after>".
func adjectivePool() []domain.Exercise {
	pool := make([]domain.Exercise, len(adjectiveDrills))
	for i, d := range adjectiveDrills {
		pool[i] = domain.Exercise{
			Mode:           domain.ModeAdjectives,
			Word:           d.adjective,
			Translation:    d.translation,
			SentenceBefore: d.before,
			SentenceAfter:  d.after,
			Case:           d.grammatical,
			Gender:         d.gender,
			ArticleType:    d.articleType,
			Answer:         "-" + AdjectiveEnding(d.articleType, d.grammatical, d.gender),
		}
	}
	return pool
}
