package content

import "github.com/wortwahl/wortwahl-api/internal/domain"

// noun is one dictionary entry used by the gender and plural drills.
type noun struct {
	word        string
	gender      domain.Gender
	plural      string
	translation string
}

// nouns is the shared noun list. Order is load-bearing: question
// identifiers are derived from pool indexes, so new entries go at the
// end.
var nouns = []noun{
	{"Mann", domain.GenderMasculine, "Männer", "man"},
	{"Frau", domain.GenderFeminine, "Frauen", "woman"},
	{"Kind", domain.GenderNeuter, "Kinder", "child"},
	{"Tisch", domain.GenderMasculine, "Tische", "table"},
	{"Lampe", domain.GenderFeminine, "Lampen", "lamp"},
	{"Fenster", domain.GenderNeuter, "Fenster", "window"},
	{"Stuhl", domain.GenderMasculine, "Stühle", "chair"},
	{"Tür", domain.GenderFeminine, "Türen", "door"},
	{"Bild", domain.GenderNeuter, "Bilder", "picture"},
	{"Garten", domain.GenderMasculine, "Gärten", "garden"},
	{"Straße", domain.GenderFeminine, "Straßen", "street"},
	{"Zimmer", domain.GenderNeuter, "Zimmer", "room"},
	{"Arzt", domain.GenderMasculine, "Ärzte", "doctor"},
	{"Schule", domain.GenderFeminine, "Schulen", "school"},
	{"Restaurant", domain.GenderNeuter, "Restaurants", "restaurant"},
	{"Hund", domain.GenderMasculine, "Hunde", "dog"},
	{"Katze", domain.GenderFeminine, "Katzen", "cat"},
	{"Haus", domain.GenderNeuter, "Häuser", "house"},
	{"Baum", domain.GenderMasculine, "Bäume", "tree"},
	{"Blume", domain.GenderFeminine, "Blumen", "flower"},
	{"Buch", domain.GenderNeuter, "Bücher", "book"},
	{"Zug", domain.GenderMasculine, "Züge", "train"},
	{"Stadt", domain.GenderFeminine, "Städte", "city"},
	{"Auto", domain.GenderNeuter, "Autos", "car"},
	{"Apfel", domain.GenderMasculine, "Äpfel", "apple"},
	{"Wohnung", domain.GenderFeminine, "Wohnungen", "apartment"},
	{"Mädchen", domain.GenderNeuter, "Mädchen", "girl"},
	{"Schlüssel", domain.GenderMasculine, "Schlüssel", "key"},
	{"Zeitung", domain.GenderFeminine, "Zeitungen", "newspaper"},
	{"Brot", domain.GenderNeuter, "Brote", "bread"},
	{"Kopf", domain.GenderMasculine, "Köpfe", "head"},
	{"Hand", domain.GenderFeminine, "Hände", "hand"},
	{"Land", domain.GenderNeuter, "Länder", "country"},
	{"Freund", domain.GenderMasculine, "Freunde", "friend"},
	{"Nacht", domain.GenderFeminine, "Nächte", "night"},
	{"Fahrrad", domain.GenderNeuter, "Fahrräder", "bicycle"},
}

// genderPool builds the gender drill: guess the nominative definite
// article of a bare noun.
func genderPool() []domain.Exercise {
	pool := make([]domain.Exercise, len(nouns))
	for i, n := range nouns {
		pool[i] = domain.Exercise{
			Mode:        domain.ModeGender,
			Word:        n.word,
			Translation: n.translation,
			Gender:      n.gender,
			Answer:      Article(domain.ArticleDefinite, domain.CaseNominativ, n.gender),
		}
	}
	return pool
}

// pluralPool builds the plural drill: produce the plural of a singular
// noun.
func pluralPool() []domain.Exercise {
	pool := make([]domain.Exercise, len(nouns))
	for i, n := range nouns {
		pool[i] = domain.Exercise{
			Mode:        domain.ModePlurals,
			Word:        n.word,
			Translation: n.translation,
			Gender:      n.gender,
			Answer:      n.plural,
		}
	}
	return pool
}
