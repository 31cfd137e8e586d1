// Package textdist provides case-insensitive edit-distance matching for
// "did you mean" suggestions during command and option resolution.
package textdist

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Distance calculates the Levenshtein edit distance between two strings.
// Comparison is case-insensitive.
func Distance(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if len(a) == 0 {
		return utf8.RuneCountInString(b)
	}
	if len(b) == 0 {
		return utf8.RuneCountInString(a)
	}

	ra := []rune(a)
	rb := []rune(b)

	matrix := make([][]int, len(ra)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(rb)+1)
	}

	for i := 0; i <= len(ra); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(rb); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(ra)][len(rb)]
}

// Threshold returns the maximum distance at which a candidate still counts
// as similar to the input. Short tokens tolerate up to two edits; longer
// tokens scale with length so that long command names keep suggesting.
func Threshold(input string) int {
	n := utf8.RuneCountInString(input)
	if n < 8 {
		return 2
	}
	return n/4 + 1
}

type scored struct {
	name     string
	distance int
	index    int
}

// FindMostSimilar returns the candidate closest to input, if any candidate
// is within the similarity threshold. Ties are broken by candidate order.
func FindMostSimilar(input string, candidates []string) (string, bool) {
	best := ""
	bestDist := Threshold(input) + 1

	for _, c := range candidates {
		d := Distance(input, c)
		if d < bestDist {
			best = c
			bestDist = d
		}
	}

	if best == "" {
		return "", false
	}
	return best, true
}

// FindSimilar returns up to maxResults candidates within the similarity
// threshold, sorted by ascending distance. Equal distances keep the
// original candidate order.
func FindSimilar(input string, candidates []string, maxResults int) []string {
	threshold := Threshold(input)

	var matches []scored
	for i, c := range candidates {
		d := Distance(input, c)
		if d <= threshold {
			matches = append(matches, scored{name: c, distance: d, index: i})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].distance != matches[j].distance {
			return matches[i].distance < matches[j].distance
		}
		return matches[i].index < matches[j].index
	})

	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}

	result := make([]string, len(matches))
	for i, m := range matches {
		result[i] = m.name
	}
	return result
}
