package content

import "github.com/wortwahl/wortwahl-api/internal/domain"

// declensionKey indexes the lookup tables by article type, case and
// gender.
type declensionKey struct {
	articleType domain.ArticleType
	grammatical domain.GrammaticalCase
	gender      domain.Gender
}

// adjectiveEndings holds the three German adjective declension patterns:
// weak (after der/die/das), mixed (after ein/eine/ein) and strong (no
// article).
var adjectiveEndings = map[declensionKey]string{
	{domain.ArticleDefinite, domain.CaseNominativ, domain.GenderMasculine}: "e",
	{domain.ArticleDefinite, domain.CaseNominativ, domain.GenderFeminine}:  "e",
	{domain.ArticleDefinite, domain.CaseNominativ, domain.GenderNeuter}:    "e",
	{domain.ArticleDefinite, domain.CaseAkkusativ, domain.GenderMasculine}: "en",
	{domain.ArticleDefinite, domain.CaseAkkusativ, domain.GenderFeminine}:  "e",
	{domain.ArticleDefinite, domain.CaseAkkusativ, domain.GenderNeuter}:    "e",
	{domain.ArticleDefinite, domain.CaseDativ, domain.GenderMasculine}:     "en",
	{domain.ArticleDefinite, domain.CaseDativ, domain.GenderFeminine}:      "en",
	{domain.ArticleDefinite, domain.CaseDativ, domain.GenderNeuter}:        "en",
	{domain.ArticleDefinite, domain.CaseGenitiv, domain.GenderMasculine}:   "en",
	{domain.ArticleDefinite, domain.CaseGenitiv, domain.GenderFeminine}:    "en",
	{domain.ArticleDefinite, domain.CaseGenitiv, domain.GenderNeuter}:      "en",

	{domain.ArticleIndefinite, domain.CaseNominativ, domain.GenderMasculine}: "er",
	{domain.ArticleIndefinite, domain.CaseNominativ, domain.GenderFeminine}:  "e",
	{domain.ArticleIndefinite, domain.CaseNominativ, domain.GenderNeuter}:    "es",
	{domain.ArticleIndefinite, domain.CaseAkkusativ, domain.GenderMasculine}: "en",
	{domain.ArticleIndefinite, domain.CaseAkkusativ, domain.GenderFeminine}:  "e",
	{domain.ArticleIndefinite, domain.CaseAkkusativ, domain.GenderNeuter}:    "es",
	{domain.ArticleIndefinite, domain.CaseDativ, domain.GenderMasculine}:     "en",
	{domain.ArticleIndefinite, domain.CaseDativ, domain.GenderFeminine}:      "en",
	{domain.ArticleIndefinite, domain.CaseDativ, domain.GenderNeuter}:        "en",
	{domain.ArticleIndefinite, domain.CaseGenitiv, domain.GenderMasculine}:   "en",
	{domain.ArticleIndefinite, domain.CaseGenitiv, domain.GenderFeminine}:    "en",
	{domain.ArticleIndefinite, domain.CaseGenitiv, domain.GenderNeuter}:      "en",

	{domain.ArticleNone, domain.CaseNominativ, domain.GenderMasculine}: "er",
	{domain.ArticleNone, domain.CaseNominativ, domain.GenderFeminine}:  "e",
	{domain.ArticleNone, domain.CaseNominativ, domain.GenderNeuter}:    "es",
	{domain.ArticleNone, domain.CaseAkkusativ, domain.GenderMasculine}: "en",
	{domain.ArticleNone, domain.CaseAkkusativ, domain.GenderFeminine}:  "e",
	{domain.ArticleNone, domain.CaseAkkusativ, domain.GenderNeuter}:    "es",
	{domain.ArticleNone, domain.CaseDativ, domain.GenderMasculine}:     "em",
	{domain.ArticleNone, domain.CaseDativ, domain.GenderFeminine}:      "er",
	{domain.ArticleNone, domain.CaseDativ, domain.GenderNeuter}:        "em",
	{domain.ArticleNone, domain.CaseGenitiv, domain.GenderMasculine}:   "en",
	{domain.ArticleNone, domain.CaseGenitiv, domain.GenderFeminine}:    "er",
	{domain.ArticleNone, domain.CaseGenitiv, domain.GenderNeuter}:      "en",
}

// articleForms holds the surface form of the definite and indefinite
// articles per case and gender.
var articleForms = map[declensionKey]string{
	{domain.ArticleDefinite, domain.CaseNominativ, domain.GenderMasculine}: "der",
	{domain.ArticleDefinite, domain.CaseNominativ, domain.GenderFeminine}:  "die",
	{domain.ArticleDefinite, domain.CaseNominativ, domain.GenderNeuter}:    "das",
	{domain.ArticleDefinite, domain.CaseAkkusativ, domain.GenderMasculine}: "den",
	{domain.ArticleDefinite, domain.CaseAkkusativ, domain.GenderFeminine}:  "die",
	{domain.ArticleDefinite, domain.CaseAkkusativ, domain.GenderNeuter}:    "das",
	{domain.ArticleDefinite, domain.CaseDativ, domain.GenderMasculine}:     "dem",
	{domain.ArticleDefinite, domain.CaseDativ, domain.GenderFeminine}:      "der",
	{domain.ArticleDefinite, domain.CaseDativ, domain.GenderNeuter}:        "dem",
	{domain.ArticleDefinite, domain.CaseGenitiv, domain.GenderMasculine}:   "des",
	{domain.ArticleDefinite, domain.CaseGenitiv, domain.GenderFeminine}:    "der",
	{domain.ArticleDefinite, domain.CaseGenitiv, domain.GenderNeuter}:      "des",

	{domain.ArticleIndefinite, domain.CaseNominativ, domain.GenderMasculine}: "ein",
	{domain.ArticleIndefinite, domain.CaseNominativ, domain.GenderFeminine}:  "eine",
	{domain.ArticleIndefinite, domain.CaseNominativ, domain.GenderNeuter}:    "ein",
	{domain.ArticleIndefinite, domain.CaseAkkusativ, domain.GenderMasculine}: "einen",
	{domain.ArticleIndefinite, domain.CaseAkkusativ, domain.GenderFeminine}:  "eine",
	{domain.ArticleIndefinite, domain.CaseAkkusativ, domain.GenderNeuter}:    "ein",
	{domain.ArticleIndefinite, domain.CaseDativ, domain.GenderMasculine}:     "einem",
	{domain.ArticleIndefinite, domain.CaseDativ, domain.GenderFeminine}:      "einer",
	{domain.ArticleIndefinite, domain.CaseDativ, domain.GenderNeuter}:        "einem",
	{domain.ArticleIndefinite, domain.CaseGenitiv, domain.GenderMasculine}:   "eines",
	{domain.ArticleIndefinite, domain.CaseGenitiv, domain.GenderFeminine}:    "einer",
	{domain.ArticleIndefinite, domain.CaseGenitiv, domain.GenderNeuter}:      "eines",
}

// AdjectiveEnding returns the correct adjective ending for the given
// article type, case and gender.
func AdjectiveEnding(articleType domain.ArticleType, grammaticalCase domain.GrammaticalCase, gender domain.Gender) string {
	return adjectiveEndings[declensionKey{articleType, grammaticalCase, gender}]
}

// Article returns the article surface form for the given article type,
// case and gender. The "none" article type has no surface form and
// returns "".
func Article(articleType domain.ArticleType, grammaticalCase domain.GrammaticalCase, gender domain.Gender) string {
	return articleForms[declensionKey{articleType, grammaticalCase, gender}]
}
