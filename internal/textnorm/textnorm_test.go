// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts Options
		want string
	}{
		{"markup removed", "<p>Alice <b>said</b> hello.</p>", Options{RemoveMarkup: true}, "Alice said hello."},
		{"entities decoded", "Smith &amp; Sons", Plain, "Smith & Sons"},
		{"whitespace collapsed", "  one\n\ttwo   three ", Options{CollapseWhitespace: true}, "one two three"},
		{"punctuation removed", `"Smith," he said.`, Options{RemovePunctuation: true}, "Smith he said"},
		{"all steps", "<p> Hello,\n world! </p>", Options{RemoveMarkup: true, RemovePunctuation: true, CollapseWhitespace: true}, "Hello world"},
		{"no options", " a  b ", Options{}, " a  b "},
		{"tag free input untouched", "plain text", Options{RemoveMarkup: true}, "plain text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in, tt.opts))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"<p id=\"1\">First</p><p id=\"2\">Second &amp; third</p>",
		"&lt;b&gt;escaped&lt;/b&gt; markup",
		"AT&T said <i>no</i> comment",
		"a < b and c > d",
		"e&#769;t&eacute;",
		"<script>alert(1)</script>body",
		"\n\t spaced \n",
	}
	for _, opts := range []Options{{RemoveMarkup: true}, Plain} {
		for _, in := range inputs {
			once := Normalize(in, opts)
			assert.Equal(t, once, Normalize(once, opts), "input %q", in)
		}
	}
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{}, Tokenize(""))
	assert.Equal(t, []string{}, Tokenize("   \n\t"))
	assert.NotNil(t, Tokenize(""))
	assert.Equal(t, []string{"the", "game", "ended."}, Tokenize(" the\ngame  ended. "))
}

func TestStripTokenPunctuation(t *testing.T) {
	got := StripTokenPunctuation([]string{"Smith,", "--", "\"", "tie."})
	assert.Equal(t, []string{"Smith", "--", "tie"}, got)
}

func TestIsPunctuation(t *testing.T) {
	assert.True(t, IsPunctuation(','))
	assert.True(t, IsPunctuation('”'))
	assert.False(t, IsPunctuation('a'))
	assert.False(t, IsPunctuation('-'))
}
