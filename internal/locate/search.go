// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package locate

import (
	"unicode"
	"unicode/utf8"
)

// FindAllSubstrings returns every byte offset in haystack where needle
// starts, in ascending order. Overlapping occurrences are included: the
// scan resumes one rune past the previous match start. An empty needle
// yields no matches. With ignoreCase, runes are compared under Unicode
// simple case folding, so offsets always index the original haystack.
func FindAllSubstrings(haystack, needle string, ignoreCase bool) []int {
	hits := []int{}
	if needle == "" || len(haystack) == 0 {
		return hits
	}
	for i := 0; i < len(haystack); {
		if hasPrefixAt(haystack, i, needle, ignoreCase) {
			hits = append(hits, i)
		}
		_, size := utf8.DecodeRuneInString(haystack[i:])
		i += size
	}
	return hits
}

// ContainsString reports whether needle occurs in haystack.
func ContainsString(haystack, needle string, ignoreCase bool) bool {
	if needle == "" {
		return false
	}
	for i := 0; i < len(haystack); {
		if hasPrefixAt(haystack, i, needle, ignoreCase) {
			return true
		}
		_, size := utf8.DecodeRuneInString(haystack[i:])
		i += size
	}
	return false
}

// matchLen returns the number of haystack bytes consumed by matching needle
// at offset i, or -1 when needle does not match there.
func matchLen(haystack string, i int, needle string, ignoreCase bool) int {
	if !ignoreCase {
		if len(haystack)-i >= len(needle) && haystack[i:i+len(needle)] == needle {
			return len(needle)
		}
		return -1
	}
	j, k := i, 0
	for k < len(needle) {
		if j >= len(haystack) {
			return -1
		}
		hr, hs := utf8.DecodeRuneInString(haystack[j:])
		nr, ns := utf8.DecodeRuneInString(needle[k:])
		if !equalFold(hr, nr) {
			return -1
		}
		j += hs
		k += ns
	}
	return j - i
}

func hasPrefixAt(haystack string, i int, needle string, ignoreCase bool) bool {
	return matchLen(haystack, i, needle, ignoreCase) >= 0
}

// equalFold reports whether a and b are equal under simple case folding.
func equalFold(a, b rune) bool {
	if a == b {
		return true
	}
	for f := unicode.SimpleFold(a); f != a; f = unicode.SimpleFold(f) {
		if f == b {
			return true
		}
	}
	return false
}

// FindSubsequence returns every index in haystack where needle occurs as a
// contiguous run, in ascending order, using Knuth-Morris-Pratt. Overlapping
// runs are all reported. An empty needle yields no matches.
func FindSubsequence[T comparable](haystack, needle []T) []int {
	return findSubsequenceFunc(haystack, needle, func(a, b T) bool { return a == b })
}

func findSubsequenceFunc[T any](haystack, needle []T, eq func(a, b T) bool) []int {
	hits := []int{}
	m := len(needle)
	if m == 0 || len(haystack) < m {
		return hits
	}

	// failure[i] is the length of the longest proper prefix of
	// needle[:i+1] that is also a suffix of it.
	failure := make([]int, m)
	for i, k := 1, 0; i < m; i++ {
		for k > 0 && !eq(needle[i], needle[k]) {
			k = failure[k-1]
		}
		if eq(needle[i], needle[k]) {
			k++
		}
		failure[i] = k
	}

	for i, k := 0, 0; i < len(haystack); i++ {
		for k > 0 && !eq(haystack[i], needle[k]) {
			k = failure[k-1]
		}
		if eq(haystack[i], needle[k]) {
			k++
		}
		if k == m {
			hits = append(hits, i-m+1)
			k = failure[k-1]
		}
	}
	return hits
}

// FindWordSequence is FindSubsequence over word tokens, optionally
// comparing them case-insensitively.
func FindWordSequence(haystack, needle []string, ignoreCase bool) []int {
	if !ignoreCase {
		return FindSubsequence(haystack, needle)
	}
	return findSubsequenceFunc(haystack, needle, func(a, b string) bool {
		return matchLen(a, 0, b, true) == len(a)
	})
}
