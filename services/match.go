package services

import (
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"golang.org/x/text/unicode/norm"
)

// NormalizeName ad müqayisəsi üçün mətni sadələşdirir: unicode normallaşma,
// diakritiklərin atılması (ə→e, ş→s və s.), kiçik hərf, artıq boşluqsuz.
func NormalizeName(s string) string {
	s = norm.NFC.String(s)
	s = unidecode.Unidecode(s)
	return strings.ToLower(strings.TrimSpace(s))
}

// containsNormalized hərf registri və diakritikdən asılı olmayan substring
// yoxlaması.
func containsNormalized(haystack, needle string) bool {
	return strings.Contains(NormalizeName(haystack), NormalizeName(needle))
}

// SuggestCompany verilən ada ən yaxın şirkət adını qaytarır; namizəd yoxdursa
// boş sətir.
func SuggestCompany(name string, companies []string) string {
	if name == "" || len(companies) == 0 {
		return ""
	}
	cm := closestmatch.New(companies, []int{2, 3, 4})
	return cm.Closest(name)
}

// closestRezNomresi səhv yazılmış rezervasiya nömrəsi üçün "bunu nəzərdə
// tutdunuz?" namizədini tapır. Məsafə 2-dən böyükdürsə namizəd yoxdur.
func closestRezNomresi(query string, candidates []string) (string, bool) {
	const maxDistance = 2

	best := ""
	bestDistance := maxDistance + 1
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		d := levenshtein.DistanceForStrings(
			[]rune(NormalizeName(query)),
			[]rune(NormalizeName(candidate)),
			levenshtein.DefaultOptions,
		)
		if d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}
	return best, best != ""
}
