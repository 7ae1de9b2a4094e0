package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "seki turlari", NormalizeName("  Şəki Turları "))
	assert.Equal(t, "baku travel", NormalizeName("BAKU TRAVEL"))
	assert.Equal(t, "", NormalizeName("   "))
}

func TestContainsNormalized(t *testing.T) {
	assert.True(t, containsNormalized("Şəki Turları MMC", "seki"))
	assert.True(t, containsNormalized("Baku Travel", "TRAVEL"))
	assert.False(t, containsNormalized("Baku Travel", "gence"))
}

func TestSuggestCompany(t *testing.T) {
	companies := []string{"Şəki Turları", "Baku Travel", "Gəncə Tour"}

	assert.Equal(t, "Baku Travel", SuggestCompany("baku travl", companies))
	assert.Empty(t, SuggestCompany("", companies))
	assert.Empty(t, SuggestCompany("baku", nil))
}

func TestClosestRezNomresi(t *testing.T) {
	candidates := []string{"REZ-1001", "REZ-1002", "ABC-555"}

	got, ok := closestRezNomresi("REZ-1003", candidates)
	assert.True(t, ok)
	assert.Equal(t, "REZ-1001", got)

	_, ok = closestRezNomresi("XXXXXXXX", candidates)
	assert.False(t, ok)
}
