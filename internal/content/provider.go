// Package content holds the built-in German drill banks and the
// declension tables used to derive their correct answers. Pools are
// ordered slices; an exercise's position in its pool is part of its
// identity, so entries must only ever be appended, never reordered or
// removed.
package content

import "github.com/wortwahl/wortwahl-api/internal/domain"

// Provider serves the exercise pool for each drill mode. Pools are
// built once at construction and shared, so callers must treat the
// returned slices as read-only.
type Provider struct {
	pools map[domain.Mode][]domain.Exercise

	praeteritumForms []string
	partizipForms    []string
}

// NewProvider builds the drill banks for every mode.
func NewProvider() *Provider {
	return &Provider{
		pools: map[domain.Mode][]domain.Exercise{
			domain.ModeGender:       genderPool(),
			domain.ModePlurals:      pluralPool(),
			domain.ModeAdjectives:   adjectivePool(),
			domain.ModeCases:        casePool(),
			domain.ModePossessives:  possessivePool(),
			domain.ModeArticles:     articlePool(),
			domain.ModePronouns:     pronounPool(),
			domain.ModePraeteritum:  verbPool(domain.ModePraeteritum, praeteritumDrills),
			domain.ModePerfekt:      verbPool(domain.ModePerfekt, perfektDrills),
			domain.ModePrepositions: prepositionPool(),
			domain.ModeModals:       modalPool(),
		},
		praeteritumForms: globalForms(praeteritumDrills),
		partizipForms:    globalForms(perfektDrills),
	}
}

// Pool returns the ordered exercise bank for mode. The second return
// is false for unknown modes.
func (p *Provider) Pool(mode domain.Mode) ([]domain.Exercise, bool) {
	pool, ok := p.pools[mode]
	return pool, ok
}

// PraeteritumForms is the cross-verb fallback pool for simple past
// distractors.
func (p *Provider) PraeteritumForms() []string {
	return p.praeteritumForms
}

// PartizipForms is the cross-verb fallback pool for past participle
// distractors.
func (p *Provider) PartizipForms() []string {
	return p.partizipForms
}
