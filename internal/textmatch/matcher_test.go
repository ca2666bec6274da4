package textmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentences(t *testing.T) {
	m := NewRegex()

	tests := []struct {
		name   string
		text   string
		phrase string
		want   []string
	}{
		{
			name:   "single match keeps punctuation",
			text:   "We love ChatGPT. Nobody uses Excel anymore.",
			phrase: "chatgpt",
			want:   []string{"We love ChatGPT."},
		},
		{
			name:   "multiple matches",
			text:   "No plan exists. We should make a plan! Something else entirely.",
			phrase: "plan",
			want:   []string{"No plan exists.", "We should make a plan!"},
		},
		{
			name:   "no match",
			text:   "Nothing relevant here.",
			phrase: "automation",
			want:   nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, m.Sentences(tc.text, tc.phrase))
		})
	}
}

func TestCountWord(t *testing.T) {
	m := NewRegex()

	assert.Equal(t, 2, m.CountWord("AI here, ai there", "ai"))
	// word boundary: "training" must not count as "train"
	assert.Equal(t, 0, m.CountWord("training all week", "train"))
	assert.Equal(t, 1, m.CountWord("We use Builder.io daily", "Builder.io"))
}

func TestCountPhrase(t *testing.T) {
	m := NewRegex()

	assert.Equal(t, 2, m.CountPhrase("No plan. Really NO PLAN.", "no plan"))
	assert.Equal(t, 0, m.CountPhrase("a plan exists", "no plan"))
}

func TestSplitDropsShortFragments(t *testing.T) {
	m := NewRegex()

	got := m.Split("Yes. This sentence is long enough to keep. Ok!")
	assert.Equal(t, []string{"This sentence is long enough to keep"}, got)
}
