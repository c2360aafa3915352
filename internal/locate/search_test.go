// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package locate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindAllSubstrings(t *testing.T) {
	tests := []struct {
		name       string
		haystack   string
		needle     string
		ignoreCase bool
		want       []int
	}{
		{"single", "Bob replied.", "replied", false, []int{4}},
		{"overlapping", "aaaa", "aa", false, []int{0, 1, 2}},
		{"none", "Bob replied.", "Alice", false, []int{}},
		{"empty needle", "anything", "", false, []int{}},
		{"empty haystack", "", "a", false, []int{}},
		{"case sensitive", "Bob bob", "bob", false, []int{4}},
		{"ignore case", "Bob bob", "bob", true, []int{0, 4}},
		{"multibyte folding", "ÉCOLE école", "école", true, []int{0, 7}},
		{"needle longer", "ab", "abc", false, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindAllSubstrings(tt.haystack, tt.needle, tt.ignoreCase))
		})
	}
}

func TestFindAllSubstringsContainsInsertion(t *testing.T) {
	needles := []string{"x", "ab", "the game", "é"}
	prefixes := []string{"", "a", "aba", "the game the", "naïve "}
	for _, needle := range needles {
		for _, prefix := range prefixes {
			haystack := prefix + needle + "ab the game"
			hits := FindAllSubstrings(haystack, needle, false)
			assert.Contains(t, hits, len(prefix), "needle %q in %q", needle, haystack)
			assert.True(t, ascending(hits))
		}
	}
}

func TestContainsString(t *testing.T) {
	assert.True(t, ContainsString("Hello World", "world", true))
	assert.False(t, ContainsString("Hello World", "world", false))
	assert.False(t, ContainsString("Hello", "", false))
}

func TestFindSubsequence(t *testing.T) {
	tests := []struct {
		name     string
		haystack []string
		needle   []string
		want     []int
	}{
		{"repeating needle", strings.Fields("a a b a a b a a b"), strings.Fields("a a b a a b"), []int{0, 3}},
		{"at end", strings.Fields("x y z"), strings.Fields("y z"), []int{1}},
		{"absent", strings.Fields("x y z"), strings.Fields("z y"), []int{}},
		{"empty needle", strings.Fields("x y"), nil, []int{}},
		{"needle longer", strings.Fields("x"), strings.Fields("x y"), []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindSubsequence(tt.haystack, tt.needle))
		})
	}
}

func TestFindSubsequenceSelf(t *testing.T) {
	for _, s := range []string{"a", "a a", "a b a", "the game ended in a tie", "x x x x"} {
		tokens := strings.Fields(s)
		assert.Equal(t, []int{0}, FindSubsequence(tokens, tokens), "tokens %q", s)
	}
	assert.Equal(t, []int{0}, FindSubsequence([]int{1, 2, 1}, []int{1, 2, 1}))
}

func TestFindWordSequence(t *testing.T) {
	words := strings.Fields("The game ended. the GAME")
	assert.Equal(t, []int{3}, FindWordSequence(words, []string{"the", "GAME"}, false))
	assert.Equal(t, []int{0, 3}, FindWordSequence(words, []string{"the", "game"}, true))
}

func ascending(xs []int) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return false
		}
	}
	return true
}
