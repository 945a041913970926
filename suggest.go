package levdistance

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// defaultDivisor tolerates roughly one typo per three runes of name.
const defaultDivisor = 3

// A Matcher finds the candidate name closest to a misspelled target.
// The zero value is ready to use.
type Matcher struct {
	// Divisor controls the length-proportional acceptance threshold: a
	// candidate qualifies when its distance to the target is at most
	// max(len(target), len(candidate)) / Divisor, with a minimum of 1.
	// Zero means the default of 3. Larger values demand closer matches.
	Divisor int
}

// BestMatch returns the candidate with the smallest edit distance to
// target among those close enough to count as a plausible typo, or
// false if there is none. Ties go to the earliest candidate.
//
// Comparison is case-sensitive; callers wanting case-insensitive
// suggestions normalize the inputs first.
//
// When no candidate is within distance, a candidate whose
// underscore-separated words are a reordering of target's words is
// returned instead ("name_file_new" suggests "new_file_name").
func (m Matcher) BestMatch(candidates []string, target string) (string, bool) {
	div := m.Divisor
	if div <= 0 {
		div = defaultDivisor
	}
	tlen := utf8.RuneCountInString(target)

	best := ""
	bestDist := -1
	for _, c := range candidates {
		limit := max(tlen, utf8.RuneCountInString(c)) / div
		if limit < 1 {
			limit = 1
		}
		d := DistanceWithLimit(target, c, limit)
		if d > limit {
			continue
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist >= 0 {
		return best, true
	}
	return matchBySortedWords(candidates, target)
}

// BestMatch searches candidates with the default length-proportional
// threshold. See Matcher.BestMatch.
func BestMatch(candidates []string, target string) (string, bool) {
	return Matcher{}.BestMatch(candidates, target)
}

// BestMatchWithin is like BestMatch but accepts only candidates within
// maxDist edits of target, regardless of name length. A maxDist of 0
// accepts exact matches only.
func BestMatchWithin(candidates []string, target string, maxDist int) (string, bool) {
	best := ""
	bestDist := -1
	for _, c := range candidates {
		d := DistanceWithLimit(target, c, maxDist)
		if d > maxDist {
			continue
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist >= 0 {
		return best, true
	}
	return matchBySortedWords(candidates, target)
}

// matchBySortedWords returns the first candidate made up of the same
// underscore-separated words as target, in any order.
func matchBySortedWords(candidates []string, target string) (string, bool) {
	want := sortWords(target)
	for _, c := range candidates {
		if sortWords(c) == want {
			return c, true
		}
	}
	return "", false
}

func sortWords(name string) string {
	words := strings.Split(name, "_")
	sort.Strings(words)
	return strings.Join(words, "_")
}
