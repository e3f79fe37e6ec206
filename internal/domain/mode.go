package domain

// Mode identifies one drill domain (one content pool and one aggregate
// stats bucket). Mode names are part of the persisted question identifier
// format and must stay stable across releases.
type Mode string

// All supported drill modes.
const (
	ModeGender       Mode = "gender"
	ModePlurals      Mode = "plurals"
	ModeAdjectives   Mode = "adjectives"
	ModeCases        Mode = "cases"
	ModePossessives  Mode = "possessives"
	ModeArticles     Mode = "articles"
	ModePronouns     Mode = "pronouns"
	ModePraeteritum  Mode = "praeteritum"
	ModePerfekt      Mode = "perfekt"
	ModePrepositions Mode = "prepositions"
	ModeModals       Mode = "modals"
)

// AllModes lists every supported mode. The order is presentation order,
// not significant to selection or storage.
var AllModes = []Mode{
	ModeGender,
	ModePlurals,
	ModeAdjectives,
	ModeCases,
	ModePossessives,
	ModeArticles,
	ModePronouns,
	ModePraeteritum,
	ModePerfekt,
	ModePrepositions,
	ModeModals,
}

// IsValid reports whether m is one of the supported drill modes.
func (m Mode) IsValid() bool {
	for _, known := range AllModes {
		if m == known {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	return string(m)
}
