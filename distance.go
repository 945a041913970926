package levdistance

// Distance returns the Levenshtein edit distance between a and b: the
// minimum number of single-rune insertions, deletions and substitutions
// required to transform one string into the other.
func Distance(a, b string) int {
	return distance(a, b, -1)
}

// DistanceWithLimit returns the Levenshtein edit distance between a and
// b, abandoning the computation once the distance provably exceeds
// limit. The result is exact when it is <= limit; otherwise it is some
// value greater than limit and callers must only test result <= limit.
// A negative limit behaves as 0.
func DistanceWithLimit(a, b string, limit int) int {
	if limit < 0 {
		limit = 0
	}
	return distance(a, b, limit)
}

// distance runs a single-row dynamic program over the runes of a and b.
// The row buffer is sized to the shorter input. A negative limit
// disables early exit.
func distance(a, b string, limit int) int {
	if a == b {
		return 0
	}
	ar, br := []rune(a), []rune(b)
	if len(ar) > len(br) {
		ar, br = br, ar
	}
	if len(ar) == 0 {
		return len(br)
	}
	// The length difference is a lower bound on the distance.
	if limit >= 0 && len(br)-len(ar) > limit {
		return len(br) - len(ar)
	}

	row := make([]int, len(ar)+1)
	for j := range row {
		row[j] = j
	}
	for i := 1; i <= len(br); i++ {
		prev := i - 1 // row[0] from the previous iteration
		row[0] = i
		best := i
		for j := 1; j <= len(ar); j++ {
			cur := prev // runes match, no edit
			if br[i-1] != ar[j-1] {
				cur = min(prev, row[j], row[j-1]) + 1
			}
			prev, row[j] = row[j], cur
			best = min(best, cur)
		}
		// The minimum of a row never decreases in later rows, so the
		// final distance is at least best.
		if limit >= 0 && best > limit {
			return best
		}
	}
	return row[len(ar)]
}
