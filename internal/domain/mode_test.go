package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wortwahl/wortwahl-api/internal/domain"
)

func TestModeIsValid(t *testing.T) {
	t.Parallel()

	for _, mode := range domain.AllModes {
		assert.True(t, mode.IsValid(), "mode %q should be valid", mode)
	}

	assert.False(t, domain.Mode("kasusjagd").IsValid())
	assert.False(t, domain.Mode("").IsValid())
	assert.False(t, domain.Mode("Gender").IsValid(), "mode names are case sensitive")
}

func TestModeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "praeteritum", domain.ModePraeteritum.String())
}

func TestAllModesAreDistinct(t *testing.T) {
	t.Parallel()

	seen := make(map[domain.Mode]bool, len(domain.AllModes))
	for _, mode := range domain.AllModes {
		assert.False(t, seen[mode], "mode %q listed twice", mode)
		seen[mode] = true
	}
}
