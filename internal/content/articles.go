package content

import "github.com/wortwahl/wortwahl-api/internal/domain"

// articleDrill is one fill-the-gap article exercise. The correct surface
// form comes from the article declension table.
type articleDrill struct {
	articleType domain.ArticleType
	grammatical domain.GrammaticalCase
	gender      domain.Gender
	noun        string
	before      string
	after       string
	translation string
}

var articleDrills = []articleDrill{
	{domain.ArticleDefinite, domain.CaseNominativ, domain.GenderMasculine, "Mann", "", "Mann ist hier.", "The man is here."},
	{domain.ArticleDefinite, domain.CaseAkkusativ, domain.GenderMasculine, "Tisch", "Ich sehe", "Tisch.", "I see the table."},
	{domain.ArticleDefinite, domain.CaseDativ, domain.GenderFeminine, "Frau", "Er dankt", "Frau.", "He thanks the woman."},
	{domain.ArticleDefinite, domain.CaseGenitiv, domain.GenderNeuter, "Kind", "Das Spielzeug", "Kindes ist kaputt.", "The child's toy is broken."},
	{domain.ArticleDefinite, domain.CaseAkkusativ, domain.GenderFeminine, "Lampe", "Wir kaufen", "Lampe.", "We buy the lamp."},
	{domain.ArticleDefinite, domain.CaseDativ, domain.GenderNeuter, "Fenster", "Die Katze sitzt an", "Fenster.", "The cat sits at the window."},
	{domain.ArticleIndefinite, domain.CaseNominativ, domain.GenderFeminine, "Schule", "Das ist", "Schule.", "That is a school."},
	{domain.ArticleIndefinite, domain.CaseAkkusativ, domain.GenderMasculine, "Stuhl", "Sie braucht", "Stuhl.", "She needs a chair."},
	{domain.ArticleIndefinite, domain.CaseDativ, domain.GenderNeuter, "Restaurant", "Wir essen in", "Restaurant.", "We eat in a restaurant."},
	{domain.ArticleIndefinite, domain.CaseNominativ, domain.GenderNeuter, "Bild", "Das ist", "Bild von meiner Familie.", "That is a picture of my family."},
	{domain.ArticleIndefinite, domain.CaseGenitiv, domain.GenderMasculine, "Garten", "Der Zaun", "Gartens ist neu.", "The fence of a garden is new."},
	{domain.ArticleIndefinite, domain.CaseDativ, domain.GenderFeminine, "Straße", "Sie wohnt an", "Straße.", "She lives on a street."},
	{domain.ArticleDefinite, domain.CaseNominativ, domain.GenderNeuter, "Zimmer", "", "Zimmer ist groß.", "The room is big."},
	{domain.ArticleIndefinite, domain.CaseAkkusativ, domain.GenderNeuter, "Auto", "Er kauft", "Auto.", "He buys a car."},
}

// articlePool builds the article drill.
func articlePool() []domain.Exercise {
	pool := make([]domain.Exercise, len(articleDrills))
	for i, d := range articleDrills {
		pool[i] = domain.Exercise{
			Mode:           domain.ModeArticles,
			Word:           d.noun,
			Translation:    d.translation,
			SentenceBefore: d.before,
			SentenceAfter:  d.after,
			Case:           d.grammatical,
			Gender:         d.gender,
			ArticleType:    d.articleType,
			Answer:         Article(d.articleType, d.grammatical, d.gender),
		}
	}
	return pool
}
