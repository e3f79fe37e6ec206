package distractor

import "github.com/wortwahl/wortwahl-api/internal/domain"

// caseNames is the universe for case identification drills.
var caseNames = []string{
	string(domain.CaseNominativ),
	string(domain.CaseAkkusativ),
	string(domain.CaseDativ),
	string(domain.CaseGenitiv),
}

// CaseOptions returns a shuffled choice set for a case identification
// drill: the correct case plus the other three.
func CaseOptions(correct string) []string {
	return Compose(correct, pickWrong(correct, caseNames, nil))
}
