package distractor

import "github.com/wortwahl/wortwahl-api/internal/domain"

// Surface forms of the definite and indefinite articles across all cases
// and genders.
var (
	definiteForms   = []string{"der", "die", "das", "den", "dem", "des"}
	indefiniteForms = []string{"ein", "eine", "einen", "einem", "einer", "eines"}
)

// ArticleOptions returns a shuffled choice set for an article drill. The
// distractors are other surface forms of the same article type; definite
// and indefinite forms are never mixed in one set.
func ArticleOptions(articleType domain.ArticleType, correct string) []string {
	pool := definiteForms
	if articleType == domain.ArticleIndefinite {
		pool = indefiniteForms
	}
	return Compose(correct, pickWrong(correct, pool, nil))
}

// GenderArticleOptions returns the three nominative definite articles in
// shuffled order, for the noun gender drill.
func GenderArticleOptions(correct string) []string {
	return Compose(correct, pickWrong(correct, []string{"der", "die", "das"}, nil))
}
