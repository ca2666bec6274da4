package gaps

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maturity-insights-go/internal/config"
	"maturity-insights-go/internal/textmatch"
	"maturity-insights-go/internal/types"
)

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(textmatch.NewRegex(), Indicators(), config.DefaultCalibration())
}

func transcript(content string) types.Transcript {
	return types.Transcript{
		ID:          "t-001",
		Interviewee: types.Interviewee{Name: "Dana Reyes"},
		RawContent:  content,
	}
}

func TestGapEqualsPerceptionMinusEvidence(t *testing.T) {
	res := newTestAnalyzer().Analyze(transcript(
		"We have a clear strategy and a roadmap. In truth there is no plan. " +
			"Only 20 percent of the team uses AI. Everything stays manual and repetitive."))

	require.NotEmpty(t, res.Gaps)
	for _, g := range res.Gaps {
		assert.InDelta(t, g.LeadershipPerception-g.ActualEvidence, g.Gap, 1e-9,
			"dimension %s", g.Dimension)
	}
}

func TestEvidenceScoreFromPercentages(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    float64
	}{
		{"no percentages stays neutral", "nobody quoted numbers at all", 5},
		{"single percentage", "only 20 percent of people use it", 2},
		{"averaged percentages", "20 percent here and 40% there", 3},
		{"absurd percentage clamps to ten", "we grew 150 percent this year", 10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, evidenceScore(tc.content), 1e-9)
		})
	}
}

func TestScoresStayInBounds(t *testing.T) {
	res := newTestAnalyzer().Analyze(transcript(
		"We grew 300 percent. Our strategy is perfect but there is no plan. " +
			"Manual and repetitive work everywhere, no one owns governance."))

	for _, g := range res.Gaps {
		assert.GreaterOrEqual(t, g.LeadershipPerception, 0.0)
		assert.LessOrEqual(t, g.LeadershipPerception, 10.0)
		assert.GreaterOrEqual(t, g.ActualEvidence, 0.0)
		assert.LessOrEqual(t, g.ActualEvidence, 10.0)
		assert.GreaterOrEqual(t, g.Confidence, 0.0)
		assert.LessOrEqual(t, g.Confidence, 1.0)
	}
}

func TestGapsSortedByMagnitude(t *testing.T) {
	res := newTestAnalyzer().Analyze(transcript(
		"Only 10 percent adoption. We have a vision and a roadmap and a strategy. " +
			"There is no plan though. Work is manual, repetitive, old school."))

	require.NotEmpty(t, res.Gaps)
	for i := 1; i < len(res.Gaps); i++ {
		assert.GreaterOrEqual(t,
			math.Abs(res.Gaps[i-1].Gap), math.Abs(res.Gaps[i].Gap))
	}
	assert.LessOrEqual(t, len(res.LargestGaps), 3)
	if len(res.LargestGaps) > 0 {
		assert.Equal(t, res.Gaps[0].Dimension, res.LargestGaps[0])
	}
}

func TestNoSignalProducesNoGaps(t *testing.T) {
	res := newTestAnalyzer().Analyze(transcript(
		"The cafeteria reopened on Tuesday with a new menu."))

	assert.Empty(t, res.Gaps)
	assert.Zero(t, res.MeanSignedGap)
}
