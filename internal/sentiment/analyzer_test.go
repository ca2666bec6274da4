package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maturity-insights-go/internal/config"
	"maturity-insights-go/internal/textmatch"
	"maturity-insights-go/internal/types"
)

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(textmatch.NewRegex(), DefaultLexicon(), config.DefaultCalibration())
}

func transcript(content string) types.Transcript {
	return types.Transcript{
		ID:          "t-001",
		Interviewee: types.Interviewee{Name: "Dana Reyes"},
		RawContent:  content,
	}
}

func TestAnalyzeOverallSentiment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"all positive", "This is a great success with huge potential ahead.", 1},
		{"all negative", "A difficult problem and a constant struggle for us.", -1},
		{"no lexicon hits", "The office has four rooms and a kitchen downstairs.", 0},
		{"balanced", "A great opportunity but also a real problem and struggle.", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestAnalyzer().Analyze(transcript(tc.text))
			assert.InDelta(t, tc.want, p.OverallSentiment, 0.01)
		})
	}
}

func TestAnalyzeConfidenceDefaultsToHalf(t *testing.T) {
	p := newTestAnalyzer().Analyze(transcript("The office has four rooms."))
	assert.InDelta(t, 0.5, p.ConfidenceLevel, 0.001)
}

func TestAnalyzeConfidenceRatio(t *testing.T) {
	// two confidence hits, one uncertainty hit
	p := newTestAnalyzer().Analyze(transcript(
		"We definitely ship this quarter. Absolutely committed. Maybe the scope shifts."))
	assert.InDelta(t, 2.0/3.0, p.ConfidenceLevel, 0.01)
}

func TestTopicSentimentsOmitAbsentTopics(t *testing.T) {
	p := newTestAnalyzer().Analyze(transcript(
		"Our strategy has been a great success so far and keeps improving quarterly."))

	_, hasStrategy := p.TopicSentiments["strategy"]
	assert.True(t, hasStrategy)
	_, hasClients := p.TopicSentiments["clients"]
	assert.False(t, hasClients)
}

func TestEmotionalMomentCaps(t *testing.T) {
	text := ""
	for i := 0; i < 10; i++ {
		text += "This part is absolutely wild stuff! "
	}
	p := newTestAnalyzer().Analyze(transcript(text))

	emphasis := 0
	for _, m := range p.EmotionalMoments {
		if m.Emotion == "emphasis" {
			emphasis++
		}
	}
	assert.Equal(t, config.DefaultCalibration().MaxExclamationMoments, emphasis)
}

func TestInsightsFlagFrustration(t *testing.T) {
	p := newTestAnalyzer().Analyze(transcript(
		"The approval flow frustrates everyone on the team every week."))

	require.NotEmpty(t, p.KeyInsights)
	found := false
	for _, ins := range p.KeyInsights {
		if ins == "Expressed frustration 1 time(s) - identify pain points" {
			found = true
		}
	}
	assert.True(t, found)
}
