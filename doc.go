// Package levdistance computes Levenshtein edit distances and uses them
// to produce "did you mean ...?" suggestions for misspelled names.
//
// Distance and DistanceWithLimit measure how many single-rune edits
// (insertions, deletions, substitutions) separate two strings. BestMatch
// and BestMatchWithin scan a list of candidate names and pick the one
// closest to a target, rejecting candidates that are too far away to be
// a plausible typo.
//
// All functions are pure: they hold no state, perform no I/O and are
// safe to call from multiple goroutines.
package levdistance
