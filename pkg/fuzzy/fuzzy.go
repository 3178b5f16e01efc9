// Package fuzzy scores free-text task searches with typo tolerance.
package fuzzy

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// LevenshteinDistance is the number of single-rune edits turning s1 into s2.
func LevenshteinDistance(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)
	if len(r1) == 0 {
		return len(r2)
	}
	if len(r2) == 0 {
		return len(r1)
	}

	// Two rows are enough; the full matrix is never read back.
	prev := make([]int, len(r2)+1)
	curr := make([]int, len(r2)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(r1); i++ {
		curr[0] = i
		for j := 1; j <= len(r2); j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(r2)]
}

// threshold grows with the query so short words must match almost exactly.
func threshold(query string) int {
	n := len([]rune(query))
	switch {
	case n <= 3:
		return 0
	case n <= 5:
		return 1
	case n >= 8:
		return 3
	default:
		return 2
	}
}

// fieldScore rates one text field against a normalized query.
func fieldScore(query, text string, weight float64) float64 {
	text = Normalize(text)
	if text == "" {
		return 0
	}
	if strings.Contains(text, query) {
		score := weight
		if containsWord(text, query) {
			score += weight / 2
		}
		return score
	}

	best := 0.0
	limit := threshold(query)
	for _, word := range strings.Fields(text) {
		if strings.HasPrefix(word, query) {
			best = max(best, weight*0.4)
			continue
		}
		if dist := LevenshteinDistance(query, word); dist <= limit {
			best = max(best, weight/2-float64(dist)*weight/8)
		}
	}
	return best
}

// TaskScore is zero when neither title nor description matches. Title hits
// weigh more than description hits.
func TaskScore(query, title, description string) float64 {
	query = Normalize(query)
	if query == "" {
		return 0
	}
	return fieldScore(query, title, 100) + fieldScore(query, description, 60)
}

func MatchTask(query, title, description string) bool {
	return TaskScore(query, title, description) > 0
}

// Normalize lowercases, strips diacritics and collapses whitespace.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = removeAccents(s)
	return strings.Join(strings.Fields(s), " ")
}

func containsWord(text, query string) bool {
	for _, word := range strings.Fields(text) {
		if word == query {
			return true
		}
	}
	return false
}

func removeAccents(s string) string {
	var result strings.Builder
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		switch r {
		case 'đ':
			result.WriteRune('d')
		case 'ø':
			result.WriteRune('o')
		case 'ß':
			result.WriteString("ss")
		default:
			result.WriteRune(r)
		}
	}
	return result.String()
}
